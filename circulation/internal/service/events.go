package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/pkg/kafka"

	"github.com/bibliotek/circulation-service/circulation/internal/model"
)

const (
	eventLoanReturned        = "loan.returned"
	eventReservationNotified = "reservation.notified"
)

type LoanReturnedEvent struct {
	Type                string `json:"type"`
	LoanUid             string `json:"loanUid"`
	CopyUid             string `json:"copyUid"`
	TitleUid            string `json:"titleUid"`
	PendingReservations int    `json:"pendingReservations"`
}

type ReservationNotifiedEvent struct {
	Type           string `json:"type"`
	ReservationUid string `json:"reservationUid"`
	MemberUid      string `json:"memberUid"`
	TitleUid       string `json:"titleUid"`
}

// publishLoanReturned tells downstream consumers (notification screen,
// stats) that a copy came back, with a hint on how many members are
// waiting for its title. Publishing is best effort: the return itself has
// already committed.
func (s *Service) publishLoanReturned(ctx context.Context, loan model.Loan) {
	if s.producer == nil {
		return
	}

	cp, err := s.repo.GetCopy(ctx, loan.CopyUid)
	if err != nil {
		s.log.Error("publishLoanReturned: get copy", zap.Error(err))
		return
	}
	waiting, err := s.repo.ListPendingReservationsByTitle(ctx, cp.TitleUid)
	if err != nil {
		s.log.Error("publishLoanReturned: pending reservations", zap.Error(err))
		return
	}

	event := LoanReturnedEvent{
		Type:                eventLoanReturned,
		LoanUid:             loan.LoanUid,
		CopyUid:             loan.CopyUid,
		TitleUid:            cp.TitleUid,
		PendingReservations: len(waiting),
	}
	if err := s.cb.Call(func() error {
		return kafka.Publish(s.producer, kafka.CirculationTopic, cp.TitleUid, event)
	}); err != nil {
		s.log.Error("publishLoanReturned: send", zap.Error(err))
	}
}

func (s *Service) publishReservationNotified(_ context.Context, res model.Reservation) {
	if s.producer == nil {
		return
	}

	event := ReservationNotifiedEvent{
		Type:           eventReservationNotified,
		ReservationUid: res.ReservationUid,
		MemberUid:      res.MemberUid,
		TitleUid:       res.TitleUid,
	}
	if err := s.cb.Call(func() error {
		return kafka.Publish(s.producer, kafka.CirculationTopic, res.TitleUid, event)
	}); err != nil {
		s.log.Error("publishReservationNotified: send", zap.Error(err))
	}
}
