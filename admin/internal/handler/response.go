package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
)

type envelope struct {
	Success    bool     `json:"success"`
	Data       any      `json:"data,omitempty"`
	Message    string   `json:"message,omitempty"`
	Error      string   `json:"error,omitempty"`
	Expected   []string `json:"expected,omitempty"`
	Provided   []string `json:"provided,omitempty"`
	PenaltyIDs []int64  `json:"penalty_ids,omitempty"`
}

func ok(c echo.Context, code int, data any, msg string) error {
	return c.JSON(code, envelope{Success: true, Data: data, Message: msg})
}

// httpError maps domain errors onto status codes; the original error is kept
// as Internal so the error handler can render its details.
func httpError(err error) *echo.HTTPError {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he
	}
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValidation),
		errors.Is(err, errs.ErrItemMismatch),
		errors.Is(err, errs.ErrAlreadySettled):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrUnpaidPenalty):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrUnavailable),
		errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrLLMUnavailable):
		code = http.StatusServiceUnavailable
	}
	return echo.NewHTTPError(code, err.Error()).SetInternal(err)
}

// errorHandler renders every error in the response envelope.
func (h *Handler) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he := httpError(err)
	body := envelope{Error: http.StatusText(he.Code)}
	if msg, ok := he.Message.(string); ok {
		body.Message = msg
	} else {
		body.Message = http.StatusText(he.Code)
	}

	var mismatch *errs.MismatchError
	if errors.As(he.Internal, &mismatch) {
		body.Expected, body.Provided = mismatch.Expected, mismatch.Provided
	}
	var unpaid *errs.UnpaidError
	if errors.As(he.Internal, &unpaid) {
		body.PenaltyIDs = unpaid.PenaltyIDs
	}
	if he.Code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.String("uri", c.Request().RequestURI), zap.Error(err))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(he.Code)
	} else {
		err = c.JSON(he.Code, body)
	}
	if err != nil {
		h.log.Error("write error response", zap.Error(err))
	}
}

func paramID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return id, nil
}

func paramInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
	}
	return n, nil
}

func queryInt64(c echo.Context, name string) (int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return n, nil
}

// bind decodes and validates the request body.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return echo.NewHTTPError(http.StatusBadRequest, he.Message)
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(req)
}
