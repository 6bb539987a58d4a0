package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bibliotek/circulation-service/circulation/internal/errs"
	"github.com/bibliotek/circulation-service/circulation/internal/model"
	"github.com/bibliotek/circulation-service/pkg/validate"
)

type Handler struct {
	svc CirculationService
	log *zap.Logger
}

func New(svc CirculationService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", newRateLimiterMW(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(requestLoggerConfig()),
		middleware.RequestID(),
		newRateLimiterMW(apiRPS),
	)

	api.POST("/loans", h.IssueLoan)
	api.POST("/loans/:loanUid/return", h.ReturnLoan)
	api.POST("/loans/sweep", h.SweepOverdueLoans)
	api.GET("/loans/overdue", h.GetOverdueLoans)
	api.GET("/members/:memberUid/loans", h.GetActiveLoans)
	api.GET("/members/:memberUid/fines", h.GetPendingFines)
	api.GET("/members/:memberUid/reservations", h.GetReservations)
	api.POST("/fines/:fineUid/pay", h.PayFine)
	api.POST("/reservations", h.CreateReservation)
	api.POST("/reservations/:reservationUid/notify", h.NotifyReservation)
	api.POST("/reservations/:reservationUid/cancel", h.CancelReservation)
	api.POST("/reservations/:reservationUid/complete", h.CompleteReservation)
	api.GET("/titles/:titleUid/reservations", h.GetTitleWaitList)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// httpError maps the circulation error taxonomy onto status codes: missing
// entities are 404, business-rule and state rejections are 409, anything
// else is an infrastructure failure.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrMemberNotFound),
		errors.Is(err, errs.ErrTitleNotFound),
		errors.Is(err, errs.ErrCopyNotFound),
		errors.Is(err, errs.ErrLoanNotFound),
		errors.Is(err, errs.ErrFineNotFound),
		errors.Is(err, errs.ErrReservationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrOutstandingFine),
		errors.Is(err, errs.ErrLoanLimitExceeded),
		errors.Is(err, errs.ErrCopyUnavailable),
		errors.Is(err, errs.ErrDuplicateReservation),
		errors.Is(err, errs.ErrReservationLimit),
		errors.Is(err, errs.ErrAlreadyReturned),
		errors.Is(err, errs.ErrFineExists),
		errors.Is(err, errs.ErrAlreadyPaid),
		errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

func (h *Handler) IssueLoan(c echo.Context) error {
	var req model.IssueLoanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	loan, err := h.svc.Issue(c.Request().Context(), req.MemberUid, req.CopyUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, loan)
}

func (h *Handler) ReturnLoan(c echo.Context) error {
	loanUid := c.Param("loanUid")
	if loanUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "loanUid is empty")
	}

	loan, err := h.svc.Return(c.Request().Context(), loanUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loan)
}

func (h *Handler) SweepOverdueLoans(c echo.Context) error {
	n, err := h.svc.MarkOverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"loansMarked": n})
}

func (h *Handler) GetActiveLoans(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}

	loans, err := h.svc.ActiveLoansOf(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetOverdueLoans(c echo.Context) error {
	loans, err := h.svc.OverdueLoans(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *Handler) GetPendingFines(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}

	fines, err := h.svc.PendingFinesOf(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fines)
}

func (h *Handler) PayFine(c echo.Context) error {
	fineUid := c.Param("fineUid")
	if fineUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "fineUid is empty")
	}

	fine, err := h.svc.PayFine(c.Request().Context(), fineUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, fine)
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	res, err := h.svc.Reserve(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *Handler) NotifyReservation(c echo.Context) error {
	return h.transitionReservation(c, h.svc.NotifyReservation)
}

func (h *Handler) CancelReservation(c echo.Context) error {
	return h.transitionReservation(c, h.svc.CancelReservation)
}

func (h *Handler) CompleteReservation(c echo.Context) error {
	return h.transitionReservation(c, h.svc.CompleteReservation)
}

func (h *Handler) transitionReservation(c echo.Context, fn func(ctx context.Context, reservationUid string) (model.Reservation, error)) error {
	reservationUid := c.Param("reservationUid")
	if reservationUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "reservationUid is empty")
	}

	res, err := fn(c.Request().Context(), reservationUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *Handler) GetReservations(c echo.Context) error {
	memberUid := c.Param("memberUid")
	if memberUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "memberUid is empty")
	}

	items, err := h.svc.ReservationsOf(c.Request().Context(), memberUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) GetTitleWaitList(c echo.Context) error {
	titleUid := c.Param("titleUid")
	if titleUid == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "titleUid is empty")
	}

	items, err := h.svc.PendingReservationsFor(c.Request().Context(), titleUid)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}
