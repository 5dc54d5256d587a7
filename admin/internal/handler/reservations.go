package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func (h *Handler) ListReservations(c echo.Context) error {
	list, err := h.librarySvc.ListReservations(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) CreateReservation(c echo.Context) error {
	var req model.CreateReservationRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.librarySvc.CreateReservation(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, r, "reservation created")
}

func (h *Handler) ApproveReservation(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.librarySvc.ApproveReservation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, r, "reservation approved")
}

func (h *Handler) RejectReservation(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	r, err := h.librarySvc.RejectReservation(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, r, "reservation rejected")
}

func (h *Handler) DeleteReservation(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteReservation(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "reservation deleted")
}
