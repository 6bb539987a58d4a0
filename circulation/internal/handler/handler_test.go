package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/handler"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
	"github.com/bibliotek/circulation-service/pkg/validate"

	service_mocks "github.com/bibliotek/circulation-service/circulation/internal/handler/mocks"
)

const (
	memberUid = "9d256481-0c96-48a5-9e75-a2ba77f4b193"
	copyUid   = "f7cdc58f-2caf-4b15-9727-f89dcc629b27"
	titleUid  = "83575e12-7ce0-48ee-9931-51919ff3c9ee"
	loanUid   = "0b6a818f-6a0f-4f59-88f4-63b2fc6f8f4b"
	fineUid   = "e5a0c9d4-3d27-4b83-8f05-50c2a17b6a0e"
)

func TestHandler_IssueLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockCirculationService)

	checkoutAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"memberUid":%q,"copyUid":%q}`, memberUid, copyUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Issue(gomock.Any(), memberUid, copyUid).
					Return(model.Loan{
						LoanUid:    loanUid,
						MemberUid:  memberUid,
						CopyUid:    copyUid,
						Status:     model.LoanActive,
						CheckoutAt: checkoutAt,
						DueAt:      checkoutAt.Add(14 * 24 * time.Hour),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"loanUid":"0b6a818f-6a0f-4f59-88f4-63b2fc6f8f4b","memberUid":"9d256481-0c96-48a5-9e75-a2ba77f4b193","copyUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","status":"ACTIVE","checkoutAt":"2024-03-01T12:00:00Z","dueAt":"2024-03-15T12:00:00Z"}`,
			},
		},
		{
			name:         "err. not a uuid",
			body:         `{"memberUid":"not-a-uuid","copyUid":"also-not"}`,
			mockBehavior: func(r *service_mocks.MockCirculationService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. outstanding fine",
			body: fmt.Sprintf(`{"memberUid":%q,"copyUid":%q}`, memberUid, copyUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Issue(gomock.Any(), memberUid, copyUid).
					Return(model.Loan{}, errs.ErrOutstandingFine)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"member has pending fines"}`,
			},
		},
		{
			name: "err. copy unavailable",
			body: fmt.Sprintf(`{"memberUid":%q,"copyUid":%q}`, memberUid, copyUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Issue(gomock.Any(), memberUid, copyUid).
					Return(model.Loan{}, errs.ErrCopyUnavailable)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"copy is not available for lending"}`,
			},
		},
		{
			name: "err. member not found",
			body: fmt.Sprintf(`{"memberUid":%q,"copyUid":%q}`, memberUid, copyUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Issue(gomock.Any(), memberUid, copyUid).
					Return(model.Loan{}, errs.ErrMemberNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"member not found"}`,
			},
		},
		{
			name: "err. internal",
			body: fmt.Sprintf(`{"memberUid":%q,"copyUid":%q}`, memberUid, copyUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Issue(gomock.Any(), memberUid, copyUid).
					Return(model.Loan{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans", h.IssueLoan)

			r := httptest.NewRequest(http.MethodPost, "/loans", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ReturnLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}

	checkoutAt := time.Date(2024, 2, 16, 12, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockCirculationService)
		response     response
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid).
					Return(model.Loan{
						LoanUid:    loanUid,
						MemberUid:  memberUid,
						CopyUid:    copyUid,
						Status:     model.LoanReturned,
						CheckoutAt: checkoutAt,
						DueAt:      checkoutAt.Add(14 * 24 * time.Hour),
						ReturnedAt: &returnedAt,
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"loanUid":"0b6a818f-6a0f-4f59-88f4-63b2fc6f8f4b","memberUid":"9d256481-0c96-48a5-9e75-a2ba77f4b193","copyUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","status":"RETURNED","checkoutAt":"2024-02-16T12:00:00Z","dueAt":"2024-03-01T12:00:00Z","returnedAt":"2024-03-01T12:00:00Z"}`,
			},
		},
		{
			name: "err. second return",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid).
					Return(model.Loan{}, errs.ErrAlreadyReturned)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"loan has already been returned"}`,
			},
		},
		{
			name: "err. loan not found",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Return(gomock.Any(), loanUid).
					Return(model.Loan{}, errs.ErrLoanNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"loan not found"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/loans/:loanUid/return", h.ReturnLoan)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/loans/%s/return", loanUid), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_PayFine(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		mockBehavior func(r *service_mocks.MockCirculationService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PayFine(gomock.Any(), fineUid).
					Return(model.Fine{
						FineUid:   fineUid,
						LoanUid:   loanUid,
						Amount:    25,
						Reason:    "late return, 5 days",
						Status:    model.FinePaid,
						CreatedAt: createdAt,
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"fineUid":"e5a0c9d4-3d27-4b83-8f05-50c2a17b6a0e","loanUid":"0b6a818f-6a0f-4f59-88f4-63b2fc6f8f4b","amount":25,"reason":"late return, 5 days","status":"PAID","createdAt":"2024-03-01T12:00:00Z"}`,
		},
		{
			name: "err. already paid",
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					PayFine(gomock.Any(), fineUid).
					Return(model.Fine{}, errs.ErrAlreadyPaid)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"fine has already been paid"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/fines/:fineUid/pay", h.PayFine)

			r := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/fines/%s/pay", fineUid), http.NoBody)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	reservationUid := "71c0a51e-4bb1-49a9-a7a9-6cf84c61be58"

	var tests = []struct {
		name         string
		body         string
		mockBehavior func(r *service_mocks.MockCirculationService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "ok",
			body: fmt.Sprintf(`{"memberUid":%q,"titleUid":%q}`, memberUid, titleUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), model.CreateReservationRequest{MemberUid: memberUid, TitleUid: titleUid}).
					Return(model.Reservation{
						ReservationUid: reservationUid,
						MemberUid:      memberUid,
						TitleUid:       titleUid,
						Status:         model.ReservationPending,
						CreatedAt:      createdAt,
					}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"reservationUid":"71c0a51e-4bb1-49a9-a7a9-6cf84c61be58","memberUid":"9d256481-0c96-48a5-9e75-a2ba77f4b193","titleUid":"83575e12-7ce0-48ee-9931-51919ff3c9ee","status":"PENDING","createdAt":"2024-03-01T12:00:00Z"}`,
		},
		{
			name: "err. reservation limit",
			body: fmt.Sprintf(`{"memberUid":%q,"titleUid":%q}`, memberUid, titleUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrReservationLimit)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"simultaneous reservation limit exceeded"}`,
		},
		{
			name: "err. duplicate",
			body: fmt.Sprintf(`{"memberUid":%q,"titleUid":%q}`, memberUid, titleUid),
			mockBehavior: func(r *service_mocks.MockCirculationService) {
				r.EXPECT().
					Reserve(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, errs.ErrDuplicateReservation)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"member already holds an active reservation for this title"}`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockCirculationService(c)
			h := handler.New(svc, zap.NewExample().Named("test"))

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/reservations", h.CreateReservation)

			r := httptest.NewRequest(http.MethodPost, "/reservations", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
