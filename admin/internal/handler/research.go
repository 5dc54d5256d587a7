package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func (h *Handler) ListResearch(c echo.Context) error {
	return h.listResearch(c, c.QueryParam("status"))
}

func (h *Handler) AvailableResearch(c echo.Context) error {
	return h.listResearch(c, string(model.ItemAvailable))
}

func (h *Handler) listResearch(c echo.Context, status string) error {
	filter := model.ResearchFilter{
		Status:     status,
		Search:     c.QueryParam("search"),
		Department: c.QueryParam("department"),
	}
	list, err := h.librarySvc.ListResearch(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) GetResearch(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	p, err := h.librarySvc.GetResearch(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, p, "")
}

func (h *Handler) CreateResearch(c echo.Context) error {
	var req model.ResearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.librarySvc.CreateResearch(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, p, "research paper created")
}

func (h *Handler) UpdateResearch(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.ResearchRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	p, err := h.librarySvc.UpdateResearch(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, p, "research paper updated")
}

func (h *Handler) RemoveResearch(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.RemoveResearch(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "research paper removed")
}
