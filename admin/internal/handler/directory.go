package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

func (h *Handler) ListAdministrators(c echo.Context) error {
	list, err := h.librarySvc.ListAdministrators(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) GetAdministrator(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	a, err := h.librarySvc.GetAdministrator(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, a, "")
}

func (h *Handler) CreateAdministrator(c echo.Context) error {
	var req model.AdministratorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.librarySvc.CreateAdministrator(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, a, "administrator created")
}

func (h *Handler) UpdateAdministrator(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.AdministratorRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	a, err := h.librarySvc.UpdateAdministrator(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, a, "administrator updated")
}

func (h *Handler) DeleteAdministrator(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteAdministrator(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "administrator deleted")
}

func (h *Handler) ListRules(c echo.Context) error {
	list, err := h.librarySvc.ListRules(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) CreateRule(c echo.Context) error {
	var req model.RuleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.librarySvc.CreateRule(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, r, "rule created")
}

func (h *Handler) UpdateRule(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.RuleRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	r, err := h.librarySvc.UpdateRule(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, r, "rule updated")
}

func (h *Handler) DeleteRule(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteRule(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "rule deleted")
}

func (h *Handler) ListFAQs(c echo.Context) error {
	list, err := h.librarySvc.ListFAQs(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) CreateFAQ(c echo.Context) error {
	var req model.FAQRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.librarySvc.CreateFAQ(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusCreated, f, "faq created")
}

func (h *Handler) UpdateFAQ(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.FAQRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	f, err := h.librarySvc.UpdateFAQ(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, f, "faq updated")
}

func (h *Handler) DeleteFAQ(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.DeleteFAQ(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "faq deleted")
}
