package errs

import (
	"errors"
)

// Not-found: the caller must re-prompt, nothing to retry.
var (
	ErrMemberNotFound      = errors.New("member not found")
	ErrTitleNotFound       = errors.New("title not found")
	ErrCopyNotFound        = errors.New("copy not found")
	ErrLoanNotFound        = errors.New("loan not found")
	ErrFineNotFound        = errors.New("fine not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

// Precondition violations: business-rule rejections, never retried automatically.
var (
	ErrOutstandingFine      = errors.New("member has pending fines")
	ErrLoanLimitExceeded    = errors.New("simultaneous loan limit exceeded")
	ErrCopyUnavailable      = errors.New("copy is not available for lending")
	ErrDuplicateReservation = errors.New("member already holds an active reservation for this title")
	ErrReservationLimit     = errors.New("simultaneous reservation limit exceeded")
)

// State violations: the operation does not apply to the entity's current state.
var (
	ErrAlreadyReturned   = errors.New("loan has already been returned")
	ErrFineExists        = errors.New("loan already has a fine")
	ErrAlreadyPaid       = errors.New("fine has already been paid")
	ErrInvalidTransition = errors.New("invalid state transition")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
