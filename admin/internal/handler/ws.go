package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/pkg/auth"
)

// Notifications upgrades to a websocket. Anonymous clients only receive broadcasts.
func (h *Handler) Notifications(c echo.Context) error {
	userID, _ := auth.UserID(c.Request().Context())
	if err := h.hub.Serve(c.Request().Context(), c.Response(), c.Request(), userID); err != nil {
		h.log.Debug("notifications socket closed", zap.Error(err))
	}
	return nil
}
