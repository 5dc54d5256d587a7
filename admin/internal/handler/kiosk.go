package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const maxReceiptSize = 10 << 20

func (h *Handler) KioskBorrow(c echo.Context) error {
	var req model.BorrowRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.librarySvc.Borrow(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	msg := strconv.Itoa(len(res.Transactions)) + " items borrowed"
	if len(res.Errors) > 0 {
		msg += ", " + strconv.Itoa(len(res.Errors)) + " failed"
	}
	return ok(c, http.StatusCreated, res, msg)
}

// KioskReturn accepts JSON or a multipart form carrying reference_number,
// items and an optional receipt image.
func (h *Handler) KioskReturn(c echo.Context) error {
	var (
		req     model.ReturnRequest
		receipt *model.Upload
	)
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		req.ReferenceNumber = strings.TrimSpace(c.FormValue("reference_number"))
		if req.Items, err = parseItemRefs(form.Value["items"]); err != nil {
			return err
		}
		if receipt, err = formFile(c, "receipt", maxReceiptSize); err != nil {
			return err
		}
		if err := c.Validate(req); err != nil {
			return err
		}
	} else if err := bind(c, &req); err != nil {
		return err
	}

	res, err := h.librarySvc.Return(c.Request().Context(), req, receipt)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, res, strconv.Itoa(len(res.Returned))+" items returned")
}

func (h *Handler) ReplaceReceipt(c echo.Context) error {
	reference := c.Param("reference")
	receipt, err := formFile(c, "receipt", maxReceiptSize)
	if err != nil {
		return err
	}
	ref, err := h.librarySvc.ReplaceReceipt(c.Request().Context(), reference, receipt)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, map[string]string{"receipt_image": ref}, "receipt replaced")
}

func (h *Handler) ListTransactions(c echo.Context) error {
	userID, err := queryInt64(c, "user_id")
	if err != nil {
		return err
	}
	filter := model.TransactionFilter{
		Status:          c.QueryParam("status"),
		UserID:          userID,
		ReferenceNumber: c.QueryParam("reference_number"),
	}
	list, err := h.librarySvc.ListTransactions(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, list, "")
}

// parseItemRefs accepts repeated fields, comma separated lists or a JSON array.
func parseItemRefs(values []string) ([]model.ItemRef, error) {
	var refs []model.ItemRef
	for _, v := range values {
		v = strings.TrimSpace(v)
		if strings.HasPrefix(v, "[") {
			var arr []model.ItemRef
			if err := json.Unmarshal([]byte(v), &arr); err != nil {
				return nil, echo.NewHTTPError(http.StatusBadRequest, "items: "+err.Error())
			}
			refs = append(refs, arr...)
			continue
		}
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			ref, err := model.ParseItemRef(part)
			if err != nil {
				return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
