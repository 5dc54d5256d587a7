package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const maxCoverSize = 5 << 20

func (h *Handler) ListBooks(c echo.Context) error {
	return h.listBooks(c, c.QueryParam("status"))
}

func (h *Handler) AvailableBooks(c echo.Context) error {
	return h.listBooks(c, string(model.ItemAvailable))
}

func (h *Handler) listBooks(c echo.Context, status string) error {
	page, _ := strconv.Atoi(c.QueryParam("page")) //nolint:errcheck
	size, _ := strconv.Atoi(c.QueryParam("size")) //nolint:errcheck
	filter := model.BookFilter{
		Status: status,
		Search: c.QueryParam("search"),
		Page:   page,
		Size:   size,
	}
	list, err := h.librarySvc.ListBooks(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

func (h *Handler) GetBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	b, err := h.librarySvc.GetBook(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, b, "")
}

// RegisterBooks accepts JSON, or multipart with the JSON in "data" and an
// optional "cover" image.
func (h *Handler) RegisterBooks(c echo.Context) error {
	var req model.RegisterBooksRequest
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		if err := json.Unmarshal([]byte(c.FormValue("data")), &req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "data: "+err.Error())
		}
		if up, err := formFile(c, "cover", maxCoverSize); err != nil {
			return err
		} else if up != nil {
			req.CoverBlob = up.Data
		}
		if err := c.Validate(req); err != nil {
			return err
		}
	} else if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.RegisterBooks(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	msg := strconv.Itoa(len(res.Copies)) + " copies registered"
	if len(res.Errors) > 0 {
		msg += ", " + strconv.Itoa(len(res.Errors)) + " failed"
	}
	return ok(c, http.StatusCreated, res, msg)
}

func (h *Handler) UpdateBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	b, err := h.librarySvc.UpdateBook(c.Request().Context(), id, req)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, b, "book updated")
}

func (h *Handler) RemoveBook(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.librarySvc.RemoveBook(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "book removed")
}

type copyStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *Handler) SetCopyStatus(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req copyStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	cp, err := h.librarySvc.SetCopyStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, cp, "copy status updated")
}

func (h *Handler) ScanCopy(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}
	cp, err := h.librarySvc.ScanCopy(c.Request().Context(), code)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, cp, "")
}

func (h *Handler) BookCover(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	cover, err := h.librarySvc.BookCover(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	if len(cover.Blob) > 0 {
		return c.Blob(http.StatusOK, http.DetectContentType(cover.Blob), cover.Blob)
	}
	return c.Redirect(http.StatusFound, *cover.Path)
}

// formFile reads an optional multipart file; a missing field yields nil.
func formFile(c echo.Context, field string, limit int64) (*model.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+": "+err.Error())
	}
	if fh.Size > limit {
		return nil, echo.NewHTTPError(http.StatusRequestEntityTooLarge, field+" is too large")
	}
	f, err := fh.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+": "+err.Error())
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit))
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, field+": "+err.Error())
	}
	return &model.Upload{Name: fh.Filename, ContentType: fh.Header.Get(echo.HeaderContentType), Data: data}, nil
}
