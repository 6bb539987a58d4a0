package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
	repo_mocks "github.com/bibliotek/circulation-service/circulation/internal/repository/mocks"
)

const (
	testMemberUid = "9d256481-0c96-48a5-9e75-a2ba77f4b193"
	testTitleUid  = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	testCopyUid   = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	testLoanUid   = "0b6a818f-6a0f-4f59-88f4-63b2fc6f8f4b"
)

var testNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestService(repo *repo_mocks.MockRepository) *Service {
	rules := Rules{
		LoanPeriodDays:  14,
		MaxOpenLoans:    3,
		MaxReservations: 5,
		DailyFineRate:   5.0,
	}
	s := NewService(repo, nil, rules, zap.NewExample().Named("test"))
	s.now = func() time.Time { return testNow }
	return s
}

// passThroughTx makes the mocked WithinTx run its body directly.
func passThroughTx(repo *repo_mocks.MockRepository) {
	repo.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

func TestService_Issue(t *testing.T) {
	t.Parallel()

	member := model.Member{MemberUid: testMemberUid, Name: "Ana Torres"}
	goodCopy := model.Copy{CopyUid: testCopyUid, TitleUid: testTitleUid, Condition: model.ConditionGood, Available: true}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "ok",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(false, nil)
				r.EXPECT().CountOpenLoans(gomock.Any(), testMemberUid).Return(0, nil)
				r.EXPECT().GetCopyForUpdate(gomock.Any(), testCopyUid).Return(goodCopy, nil)
				r.EXPECT().InsertLoan(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, loan model.Loan) (model.Loan, error) {
						return loan, nil
					})
				r.EXPECT().SetCopyAvailability(gomock.Any(), testCopyUid, false).Return(nil)
			},
		},
		{
			name: "member not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).
					Return(model.Member{}, errs.ErrMemberNotFound)
			},
			wantErr: errs.ErrMemberNotFound,
		},
		{
			name: "outstanding fine blocks issue",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(true, nil)
			},
			wantErr: errs.ErrOutstandingFine,
		},
		{
			name: "loan limit reached",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(false, nil)
				r.EXPECT().CountOpenLoans(gomock.Any(), testMemberUid).Return(3, nil)
			},
			wantErr: errs.ErrLoanLimitExceeded,
		},
		{
			name: "copy not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(false, nil)
				r.EXPECT().CountOpenLoans(gomock.Any(), testMemberUid).Return(0, nil)
				r.EXPECT().GetCopyForUpdate(gomock.Any(), testCopyUid).
					Return(model.Copy{}, errs.ErrCopyNotFound)
			},
			wantErr: errs.ErrCopyNotFound,
		},
		{
			name: "copy already loaned",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(false, nil)
				r.EXPECT().CountOpenLoans(gomock.Any(), testMemberUid).Return(0, nil)
				r.EXPECT().GetCopyForUpdate(gomock.Any(), testCopyUid).
					Return(model.Copy{CopyUid: testCopyUid, Condition: model.ConditionGood, Available: false}, nil)
			},
			wantErr: errs.ErrCopyUnavailable,
		},
		{
			name: "lost copy is never lendable",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetMember(gomock.Any(), testMemberUid).Return(member, nil)
				r.EXPECT().HasPendingFine(gomock.Any(), testMemberUid).Return(false, nil)
				r.EXPECT().CountOpenLoans(gomock.Any(), testMemberUid).Return(0, nil)
				r.EXPECT().GetCopyForUpdate(gomock.Any(), testCopyUid).
					Return(model.Copy{CopyUid: testCopyUid, Condition: model.ConditionLost, Available: true}, nil)
			},
			wantErr: errs.ErrCopyUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			passThroughTx(repo)
			tt.mockBehavior(repo)

			svc := newTestService(repo)
			loan, err := svc.Issue(context.Background(), testMemberUid, testCopyUid)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.LoanActive, loan.Status)
			require.Equal(t, testMemberUid, loan.MemberUid)
			require.Equal(t, testCopyUid, loan.CopyUid)
			require.Equal(t, testNow, loan.CheckoutAt)
			require.Equal(t, testNow.Add(14*24*time.Hour), loan.DueAt)
			require.NotEmpty(t, loan.LoanUid)
		})
	}
}

func TestService_Return(t *testing.T) {
	t.Parallel()

	openLoan := func(due time.Time) model.Loan {
		return model.Loan{
			LoanUid:    testLoanUid,
			MemberUid:  testMemberUid,
			CopyUid:    testCopyUid,
			Status:     model.LoanActive,
			CheckoutAt: due.Add(-14 * 24 * time.Hour),
			DueAt:      due,
		}
	}

	var tests = []struct {
		name         string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name: "on time, no fine",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).
					Return(openLoan(testNow.Add(24*time.Hour)), nil)
				r.EXPECT().MarkLoanReturned(gomock.Any(), testLoanUid, testNow).Return(nil)
				r.EXPECT().SetCopyAvailability(gomock.Any(), testCopyUid, true).Return(nil)
			},
		},
		{
			name: "five days late creates a pending fine",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).
					Return(openLoan(testNow.Add(-5*24*time.Hour)), nil)
				r.EXPECT().MarkLoanReturned(gomock.Any(), testLoanUid, testNow).Return(nil)
				r.EXPECT().InsertFine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fine model.Fine) (model.Fine, error) {
						require.Equal(t, testLoanUid, fine.LoanUid)
						require.Equal(t, 25.0, fine.Amount)
						require.Equal(t, "late return, 5 days", fine.Reason)
						require.Equal(t, model.FinePending, fine.Status)
						return fine, nil
					})
				r.EXPECT().SetCopyAvailability(gomock.Any(), testCopyUid, true).Return(nil)
			},
		},
		{
			name: "overdue loan can still be returned",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				l := openLoan(testNow.Add(-3*24*time.Hour - time.Hour))
				l.Status = model.LoanOverdue
				r.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).Return(l, nil)
				r.EXPECT().MarkLoanReturned(gomock.Any(), testLoanUid, testNow).Return(nil)
				r.EXPECT().InsertFine(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fine model.Fine) (model.Fine, error) {
						require.Equal(t, 20.0, fine.Amount) // ceil(3d1h) = 4 days
						require.Equal(t, "late return, 4 days", fine.Reason)
						return fine, nil
					})
				r.EXPECT().SetCopyAvailability(gomock.Any(), testCopyUid, true).Return(nil)
			},
		},
		{
			name: "loan not found",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).
					Return(model.Loan{}, errs.ErrLoanNotFound)
			},
			wantErr: errs.ErrLoanNotFound,
		},
		{
			name: "second return is rejected",
			mockBehavior: func(r *repo_mocks.MockRepository) {
				l := openLoan(testNow)
				l.Status = model.LoanReturned
				returned := testNow.Add(-time.Hour)
				l.ReturnedAt = &returned
				r.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).Return(l, nil)
			},
			wantErr: errs.ErrAlreadyReturned,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			passThroughTx(repo)
			tt.mockBehavior(repo)

			svc := newTestService(repo)
			loan, err := svc.Return(context.Background(), testLoanUid)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.LoanReturned, loan.Status)
			require.NotNil(t, loan.ReturnedAt)
			require.Equal(t, testNow, *loan.ReturnedAt)
		})
	}
}

func TestService_Return_RollsBackOnFineFailure(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	passThroughTx(repo)

	l := model.Loan{
		LoanUid: testLoanUid,
		CopyUid: testCopyUid,
		Status:  model.LoanActive,
		DueAt:   testNow.Add(-24 * time.Hour),
	}
	dbErr := errors.New("db down")
	repo.EXPECT().GetLoanForUpdate(gomock.Any(), testLoanUid).Return(l, nil)
	repo.EXPECT().MarkLoanReturned(gomock.Any(), testLoanUid, testNow).Return(nil)
	repo.EXPECT().InsertFine(gomock.Any(), gomock.Any()).Return(model.Fine{}, dbErr)

	svc := newTestService(repo)
	_, err := svc.Return(context.Background(), testLoanUid)
	require.ErrorIs(t, err, dbErr)
}

func TestService_MarkOverdueLoans(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)

	repo.EXPECT().MarkLoansOverdue(gomock.Any(), testNow).Return(int64(2), nil)

	svc := newTestService(repo)
	n, err := svc.MarkOverdueLoans(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
