package model

import "fmt"

// ParseError reports a string that does not name any value of a status enum.
type ParseError struct {
	Kind  string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown %s: %q", e.Kind, e.Value)
}

type Condition string

const (
	ConditionExcellent Condition = "EXCELLENT"
	ConditionGood      Condition = "GOOD"
	ConditionDamaged   Condition = "DAMAGED"
	ConditionLost      Condition = "LOST"
)

func ParseCondition(s string) (Condition, error) {
	switch Condition(s) {
	case ConditionExcellent, ConditionGood, ConditionDamaged, ConditionLost:
		return Condition(s), nil
	}
	return "", &ParseError{Kind: "condition", Value: s}
}

type LoanStatus string

const (
	LoanActive   LoanStatus = "ACTIVE"
	LoanOverdue  LoanStatus = "OVERDUE"
	LoanReturned LoanStatus = "RETURNED"
)

func ParseLoanStatus(s string) (LoanStatus, error) {
	switch LoanStatus(s) {
	case LoanActive, LoanOverdue, LoanReturned:
		return LoanStatus(s), nil
	}
	return "", &ParseError{Kind: "loan status", Value: s}
}

type FineStatus string

const (
	FinePending FineStatus = "PENDING"
	FinePaid    FineStatus = "PAID"
)

func ParseFineStatus(s string) (FineStatus, error) {
	switch FineStatus(s) {
	case FinePending, FinePaid:
		return FineStatus(s), nil
	}
	return "", &ParseError{Kind: "fine status", Value: s}
}

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "PENDING"
	ReservationNotified  ReservationStatus = "NOTIFIED"
	ReservationCancelled ReservationStatus = "CANCELLED"
	ReservationCompleted ReservationStatus = "COMPLETED"
)

func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case ReservationPending, ReservationNotified, ReservationCancelled, ReservationCompleted:
		return ReservationStatus(s), nil
	}
	return "", &ParseError{Kind: "reservation status", Value: s}
}

// Terminal reports whether no further transition may leave the status.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}
