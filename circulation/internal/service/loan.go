package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

// Issue lends a copy to a member. The validations run strictly in order and
// the first failure wins; the loan insert and the availability flip commit
// as one transaction, with the copy row locked before the lendability check
// so two competing issues for the same copy cannot both pass it.
func (s *Service) Issue(ctx context.Context, memberUid, copyUid string) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.repo.GetMember(ctx, memberUid)
		if err != nil {
			return err
		}

		pending, err := s.repo.HasPendingFine(ctx, member.MemberUid)
		if err != nil {
			return err
		}
		if pending {
			return errs.ErrOutstandingFine
		}

		open, err := s.repo.CountOpenLoans(ctx, member.MemberUid)
		if err != nil {
			return err
		}
		if open >= s.rules.MaxOpenLoans {
			return errs.ErrLoanLimitExceeded
		}

		cp, err := s.repo.GetCopyForUpdate(ctx, copyUid)
		if err != nil {
			return err
		}
		if !cp.Lendable() {
			return errs.ErrCopyUnavailable
		}

		now := s.now()
		loan, err = s.repo.InsertLoan(ctx, model.Loan{
			LoanUid:    uuid.New().String(),
			MemberUid:  member.MemberUid,
			CopyUid:    cp.CopyUid,
			Status:     model.LoanActive,
			CheckoutAt: now,
			DueAt:      now.Add(s.rules.loanPeriod()),
		})
		if err != nil {
			return err
		}

		return s.repo.SetCopyAvailability(ctx, cp.CopyUid, false)
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.log.Info("loan issued",
		zap.String("loan_uid", loan.LoanUid),
		zap.String("member_uid", loan.MemberUid),
		zap.String("copy_uid", loan.CopyUid),
		zap.Time("due_at", loan.DueAt))
	return loan, nil
}

// Return closes a loan: the status change, the late fine (if any) and the
// availability flip are one transaction. Returning an already closed loan
// fails with ErrAlreadyReturned and changes nothing.
func (s *Service) Return(ctx context.Context, loanUid string) (model.Loan, error) {
	var loan model.Loan
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		l, err := s.repo.GetLoanForUpdate(ctx, loanUid)
		if err != nil {
			return err
		}
		if !l.Open() {
			return errs.ErrAlreadyReturned
		}

		now := s.now()
		if err := s.repo.MarkLoanReturned(ctx, l.LoanUid, now); err != nil {
			return err
		}
		l.Status = model.LoanReturned
		l.ReturnedAt = &now

		if l.DaysLate(now) > 0 {
			if _, err := s.IssueLateFine(ctx, l); err != nil {
				return err
			}
		}

		if err := s.repo.SetCopyAvailability(ctx, l.CopyUid, true); err != nil {
			return err
		}
		loan = l
		return nil
	})
	if err != nil {
		return model.Loan{}, err
	}

	s.publishLoanReturned(ctx, loan)
	return loan, nil
}

// MarkOverdueLoans is the periodic sweep: every ACTIVE loan past due flips
// to OVERDUE. No fines here; those are created only at actual return.
func (s *Service) MarkOverdueLoans(ctx context.Context) (int64, error) {
	n, err := s.repo.MarkLoansOverdue(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("overdue sweep", zap.Int64("loans_marked", n))
	}
	return n, nil
}

func (s *Service) ActiveLoansOf(ctx context.Context, memberUid string) ([]model.Loan, error) {
	return s.repo.ListLoansByMemberAndStatus(ctx, memberUid, model.LoanActive)
}

func (s *Service) OverdueLoans(ctx context.Context) ([]model.Loan, error) {
	return s.repo.ListLoansByStatus(ctx, model.LoanOverdue)
}
