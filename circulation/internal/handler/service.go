package handler

import (
	"context"

	"github.com/bibliotek/circulation-service/circulation/internal/model"
	"github.com/bibliotek/circulation-service/circulation/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	Issue(ctx context.Context, memberUid, copyUid string) (model.Loan, error)
	Return(ctx context.Context, loanUid string) (model.Loan, error)
	MarkOverdueLoans(ctx context.Context) (int64, error)
	ActiveLoansOf(ctx context.Context, memberUid string) ([]model.Loan, error)
	OverdueLoans(ctx context.Context) ([]model.Loan, error)

	PayFine(ctx context.Context, fineUid string) (model.Fine, error)
	PendingFinesOf(ctx context.Context, memberUid string) ([]model.Fine, error)

	Reserve(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	NotifyReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	CancelReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	CompleteReservation(ctx context.Context, reservationUid string) (model.Reservation, error)
	ReservationsOf(ctx context.Context, memberUid string) ([]model.Reservation, error)
	PendingReservationsFor(ctx context.Context, titleUid string) ([]model.Reservation, error)
}

var _ CirculationService = (*service.Service)(nil)
