package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

// IssueLateFine creates the PENDING fine for a late return. The loan must
// already carry its actual return time, past due. At most one fine can ever
// exist per loan; the unique index behind InsertFine backs that up.
func (s *Service) IssueLateFine(ctx context.Context, loan model.Loan) (model.Fine, error) {
	if loan.ReturnedAt == nil {
		return model.Fine{}, errors.New("loan has no return time")
	}
	days := loan.DaysLate(*loan.ReturnedAt)
	if days == 0 {
		return model.Fine{}, errors.New("loan was returned on time")
	}

	fine, err := s.repo.InsertFine(ctx, model.Fine{
		FineUid:   uuid.New().String(),
		LoanUid:   loan.LoanUid,
		Amount:    float64(days) * s.rules.DailyFineRate,
		Reason:    fmt.Sprintf("late return, %d days", days),
		Status:    model.FinePending,
		CreatedAt: s.now(),
	})
	if err != nil {
		return model.Fine{}, err
	}

	s.log.Info("late fine issued",
		zap.String("fine_uid", fine.FineUid),
		zap.String("loan_uid", fine.LoanUid),
		zap.Int("days_late", days),
		zap.Float64("amount", fine.Amount))
	return fine, nil
}

// PayFine confirms payment: PENDING -> PAID, ErrAlreadyPaid otherwise.
func (s *Service) PayFine(ctx context.Context, fineUid string) (model.Fine, error) {
	fine, err := s.repo.MarkFinePaid(ctx, fineUid)
	if err != nil {
		return model.Fine{}, err
	}
	s.log.Info("fine paid", zap.String("fine_uid", fine.FineUid))
	return fine, nil
}

func (s *Service) HasPendingFine(ctx context.Context, memberUid string) (bool, error) {
	return s.repo.HasPendingFine(ctx, memberUid)
}

func (s *Service) PendingFinesOf(ctx context.Context, memberUid string) ([]model.Fine, error) {
	if _, err := s.repo.GetMember(ctx, memberUid); err != nil {
		return nil, err
	}
	return s.repo.ListPendingFinesByMember(ctx, memberUid)
}
