package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/auth"
)

func (h *Handler) ListPenalties(c echo.Context) error {
	userID, err := queryInt64(c, "user_id")
	if err != nil {
		return err
	}
	filter := model.PenaltyFilter{Status: c.QueryParam("status"), UserID: userID}
	list, err := h.penaltySvc.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) PenaltySummary(c echo.Context) error {
	sum, err := h.penaltySvc.Summary(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, sum, "")
}

func (h *Handler) GetPenalty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.penaltySvc.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, p, "")
}

func (h *Handler) ProcessOverdue(c echo.Context) error {
	rep, err := h.penaltySvc.ProcessOverdue(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, batchMessage("processed", rep))
}

func (h *Handler) RecalculatePenalties(c echo.Context) error {
	rep, err := h.penaltySvc.Recalculate(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, batchMessage("recalculated", rep))
}

func (h *Handler) MarkLost(c echo.Context) error {
	var req model.MarkLostRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	rep, err := h.penaltySvc.MarkLost(c.Request().Context(), req.TransactionIDs)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, batchMessage("marked as lost", rep))
}

func (h *Handler) CleanupPenalties(c echo.Context) error {
	rep, err := h.penaltySvc.Cleanup(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, fmt.Sprintf("removed %d on-time and %d duplicate penalties", rep.OnTimeRemoved, rep.DuplicateRemoved))
}

type waiveRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) WaivePenalty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req waiveRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	ctx := c.Request().Context()
	p, err := h.penaltySvc.Waive(ctx, id, req.Reason, auth.Actor(ctx))
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, p, "penalty waived")
}

func (h *Handler) PayPenalty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var info model.PaymentInfo
	if c.Request().ContentLength != 0 {
		if err := bind(c, &info); err != nil {
			return err
		}
	}
	ctx := c.Request().Context()
	if info.Admin == "" {
		info.Admin = auth.Actor(ctx)
	}
	res, err := h.penaltySvc.Pay(ctx, id, info)
	if err != nil {
		return httpError(err)
	}
	msg := "penalty paid"
	if res.AlreadyPaid {
		msg = "penalty was already paid"
	}
	return ok(c, http.StatusOK, res, msg)
}

func (h *Handler) DeletePenalty(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if err := h.penaltySvc.Delete(ctx, id, auth.Actor(ctx)); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "penalty deleted")
}

func (h *Handler) GetFineSettings(c echo.Context) error {
	return ok(c, http.StatusOK, h.penaltySvc.Settings(c.Request().Context()), "")
}

func (h *Handler) UpdateFineSettings(c echo.Context) error {
	var set model.FineSettings
	if err := bind(c, &set); err != nil {
		return err
	}
	if err := h.penaltySvc.UpdateSettings(c.Request().Context(), set); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, set, "fine settings updated")
}

func batchMessage(verb string, rep model.BatchReport) string {
	return fmt.Sprintf("%d %s, %d failed", rep.Processed, verb, rep.Failed)
}
