package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

// Reserve puts a member on the wait-list for a title. A reservation is
// advisory: it never touches copy availability, borrowing still goes
// through Issue.
func (s *Service) Reserve(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error) {
	var res model.Reservation
	err := s.repo.WithinTx(ctx, func(ctx context.Context) error {
		member, err := s.repo.GetMember(ctx, req.MemberUid)
		if err != nil {
			return err
		}
		title, err := s.repo.GetTitle(ctx, req.TitleUid)
		if err != nil {
			return err
		}

		dup, err := s.repo.HasActiveReservation(ctx, member.MemberUid, title.TitleUid)
		if err != nil {
			return err
		}
		if dup {
			return errs.ErrDuplicateReservation
		}

		active, err := s.repo.CountActiveReservations(ctx, member.MemberUid)
		if err != nil {
			return err
		}
		if active >= s.rules.MaxReservations {
			return errs.ErrReservationLimit
		}

		res, err = s.repo.InsertReservation(ctx, model.Reservation{
			ReservationUid: uuid.New().String(),
			MemberUid:      member.MemberUid,
			TitleUid:       title.TitleUid,
			Status:         model.ReservationPending,
			CreatedAt:      s.now(),
		})
		return err
	})
	if err != nil {
		return model.Reservation{}, err
	}

	s.log.Info("reservation created",
		zap.String("reservation_uid", res.ReservationUid),
		zap.String("member_uid", res.MemberUid),
		zap.String("title_uid", res.TitleUid))
	return res, nil
}

// NotifyReservation: staff marks that a copy of the reserved title became
// available. PENDING -> NOTIFIED.
func (s *Service) NotifyReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	res, err := s.repo.UpdateReservationStatus(ctx, reservationUid,
		model.ReservationPending, model.ReservationNotified)
	if err != nil {
		return model.Reservation{}, err
	}
	s.publishReservationNotified(ctx, res)
	return res, nil
}

// CancelReservation: member or staff drops the wait-list entry.
// PENDING -> CANCELLED.
func (s *Service) CancelReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	return s.repo.UpdateReservationStatus(ctx, reservationUid,
		model.ReservationPending, model.ReservationCancelled)
}

// CompleteReservation: the member picked the title up, staff confirms.
// NOTIFIED -> COMPLETED.
func (s *Service) CompleteReservation(ctx context.Context, reservationUid string) (model.Reservation, error) {
	return s.repo.UpdateReservationStatus(ctx, reservationUid,
		model.ReservationNotified, model.ReservationCompleted)
}

func (s *Service) ReservationsOf(ctx context.Context, memberUid string) ([]model.Reservation, error) {
	if _, err := s.repo.GetMember(ctx, memberUid); err != nil {
		return nil, err
	}
	return s.repo.ListReservationsByMember(ctx, memberUid)
}

// PendingReservationsFor lists the wait-list of a title, oldest first.
func (s *Service) PendingReservationsFor(ctx context.Context, titleUid string) ([]model.Reservation, error) {
	if _, err := s.repo.GetTitle(ctx, titleUid); err != nil {
		return nil, err
	}
	return s.repo.ListPendingReservationsByTitle(ctx, titleUid)
}
