package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

func TestLoan_DaysLate(t *testing.T) {
	t.Parallel()

	due := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	loan := model.Loan{DueAt: due}

	var tests = []struct {
		name       string
		returnedAt time.Time
		want       int
	}{
		{name: "returned early", returnedAt: due.Add(-48 * time.Hour), want: 0},
		{name: "returned exactly at due", returnedAt: due, want: 0},
		{name: "an hour late counts as a day", returnedAt: due.Add(time.Hour), want: 1},
		{name: "three days and an hour rounds up", returnedAt: due.Add(3*24*time.Hour + time.Hour), want: 4},
		{name: "exact multiple of a day", returnedAt: due.Add(5 * 24 * time.Hour), want: 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, loan.DaysLate(tt.returnedAt))
		})
	}
}

func TestCopy_Lendable(t *testing.T) {
	t.Parallel()

	var tests = []struct {
		name string
		copy model.Copy
		want bool
	}{
		{name: "available and good", copy: model.Copy{Available: true, Condition: model.ConditionGood}, want: true},
		{name: "available and excellent", copy: model.Copy{Available: true, Condition: model.ConditionExcellent}, want: true},
		{name: "not available", copy: model.Copy{Available: false, Condition: model.ConditionGood}, want: false},
		{name: "damaged even if available", copy: model.Copy{Available: true, Condition: model.ConditionDamaged}, want: false},
		{name: "lost even if available", copy: model.Copy{Available: true, Condition: model.ConditionLost}, want: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.copy.Lendable())
		})
	}
}

func TestParseStatuses(t *testing.T) {
	t.Parallel()

	t.Run("known values round-trip", func(t *testing.T) {
		t.Parallel()
		cond, err := model.ParseCondition("DAMAGED")
		require.NoError(t, err)
		require.Equal(t, model.ConditionDamaged, cond)

		ls, err := model.ParseLoanStatus("OVERDUE")
		require.NoError(t, err)
		require.Equal(t, model.LoanOverdue, ls)

		fs, err := model.ParseFineStatus("PAID")
		require.NoError(t, err)
		require.Equal(t, model.FinePaid, fs)

		rs, err := model.ParseReservationStatus("NOTIFIED")
		require.NoError(t, err)
		require.Equal(t, model.ReservationNotified, rs)
	})

	t.Run("unknown values are typed parse errors", func(t *testing.T) {
		t.Parallel()
		_, err := model.ParseCondition("Bueno")
		var parseErr *model.ParseError
		require.ErrorAs(t, err, &parseErr)
		require.Equal(t, "condition", parseErr.Kind)

		_, err = model.ParseReservationStatus("")
		require.ErrorAs(t, err, &parseErr)
	})
}

func TestReservationStatus_Terminal(t *testing.T) {
	t.Parallel()
	require.False(t, model.ReservationPending.Terminal())
	require.False(t, model.ReservationNotified.Terminal())
	require.True(t, model.ReservationCancelled.Terminal())
	require.True(t, model.ReservationCompleted.Terminal())
}
