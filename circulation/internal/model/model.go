package model

import (
	"time"
)

type Member struct {
	ID        int    `json:"-" db:"id"`
	MemberUid string `json:"memberUid" db:"member_uid"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Role      string `json:"role" db:"role"`
}

type Title struct {
	ID        int    `json:"-" db:"id"`
	TitleUid  string `json:"titleUid" db:"title_uid"`
	ISBN      string `json:"isbn" db:"isbn"`
	Name      string `json:"name" db:"name"`
	Year      int    `json:"year" db:"year"`
	Publisher string `json:"publisher" db:"publisher"`
	Category  string `json:"category" db:"category"`
}

type Copy struct {
	ID        int       `json:"-" db:"id"`
	CopyUid   string    `json:"copyUid" db:"copy_uid"`
	TitleUid  string    `json:"titleUid" db:"title_uid"`
	Barcode   string    `json:"barcode" db:"barcode"`
	Condition Condition `json:"condition" db:"condition"`
	Available bool      `json:"available" db:"available"`
}

// Lendable reports whether the copy may be the subject of a new loan:
// it must be on the shelf and in a physical condition fit for lending.
func (c Copy) Lendable() bool {
	return c.Available && c.Condition != ConditionDamaged && c.Condition != ConditionLost
}

type Loan struct {
	ID         int        `json:"-" db:"id"`
	LoanUid    string     `json:"loanUid" db:"loan_uid"`
	MemberUid  string     `json:"memberUid" db:"member_uid"`
	CopyUid    string     `json:"copyUid" db:"copy_uid"`
	Status     LoanStatus `json:"status" db:"status"`
	CheckoutAt time.Time  `json:"checkoutAt" db:"checkout_at"`
	DueAt      time.Time  `json:"dueAt" db:"due_at"`
	ReturnedAt *time.Time `json:"returnedAt,omitempty" db:"returned_at"`
}

// Open reports whether the loan still holds the copy.
func (l Loan) Open() bool {
	return l.Status == LoanActive || l.Status == LoanOverdue
}

// DaysLate is the ceiling of the lateness of returnedAt against the due
// time, in whole days. Zero for an on-time return.
func (l Loan) DaysLate(returnedAt time.Time) int {
	late := returnedAt.Sub(l.DueAt)
	if late <= 0 {
		return 0
	}
	const day = 24 * time.Hour
	days := int(late / day)
	if late%day != 0 {
		days++
	}
	return days
}

type Fine struct {
	ID        int        `json:"-" db:"id"`
	FineUid   string     `json:"fineUid" db:"fine_uid"`
	LoanUid   string     `json:"loanUid" db:"loan_uid"`
	Amount    float64    `json:"amount" db:"amount"`
	Reason    string     `json:"reason" db:"reason"`
	Status    FineStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Reservation struct {
	ID             int               `json:"-" db:"id"`
	ReservationUid string            `json:"reservationUid" db:"reservation_uid"`
	MemberUid      string            `json:"memberUid" db:"member_uid"`
	TitleUid       string            `json:"titleUid" db:"title_uid"`
	Status         ReservationStatus `json:"status" db:"status"`
	CreatedAt      time.Time         `json:"createdAt" db:"created_at"`
}

type IssueLoanRequest struct {
	MemberUid string `json:"memberUid" validate:"required,uuid"`
	CopyUid   string `json:"copyUid" validate:"required,uuid"`
}

type CreateReservationRequest struct {
	MemberUid string `json:"memberUid" validate:"required,uuid"`
	TitleUid  string `json:"titleUid" validate:"required,uuid"`
}
