package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

type shelfRequest struct {
	ShelfNumber int    `json:"shelf_number" validate:"required,min=1"`
	ShelfColumn string `json:"shelf_column" validate:"required,max=2"`
	ShelfRow    int    `json:"shelf_row" validate:"required,min=1"`
}

func (h *Handler) ListShelves(c echo.Context) error {
	list, err := h.librarySvc.ListShelves(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) CreateShelf(c echo.Context) error {
	var req shelfRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	loc, err := h.librarySvc.CreateShelf(c.Request().Context(), model.ShelfLocation{
		ShelfNumber: req.ShelfNumber,
		ShelfColumn: req.ShelfColumn,
		ShelfRow:    req.ShelfRow,
	})
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, loc, "shelf location created")
}

func (h *Handler) DeleteShelf(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteShelf(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "shelf location deleted")
}

func (h *Handler) AddShelfGrid(c echo.Context) error {
	number, err := paramInt(c, "number")
	if err != nil {
		return err
	}
	var req model.ShelfGridRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	rep, err := h.librarySvc.AddShelfGrid(c.Request().Context(), number, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, "")
}

func (h *Handler) RemoveShelfRow(c echo.Context) error {
	number, err := paramInt(c, "number")
	if err != nil {
		return err
	}
	row, err := paramInt(c, "row")
	if err != nil {
		return err
	}
	rep, err := h.librarySvc.RemoveShelfRow(c.Request().Context(), number, row)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, "")
}

func (h *Handler) RemoveShelfColumn(c echo.Context) error {
	number, err := paramInt(c, "number")
	if err != nil {
		return err
	}
	rep, err := h.librarySvc.RemoveShelfColumn(c.Request().Context(), number, c.Param("column"))
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, "")
}

func (h *Handler) RemoveShelfNumber(c echo.Context) error {
	number, err := paramInt(c, "number")
	if err != nil {
		return err
	}
	rep, err := h.librarySvc.RemoveShelfNumber(c.Request().Context(), number)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, rep, "")
}
