package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/chatbot"
	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/auth"
)

func (h *Handler) chatRequest(c echo.Context) (model.ChatRequest, error) {
	var req model.ChatRequest
	if err := bind(c, &req); err != nil {
		return req, err
	}
	if req.UserID == nil {
		if id, ok := auth.UserID(c.Request().Context()); ok {
			req.UserID = &id
		}
	}
	return req, nil
}

func (h *Handler) Chat(c echo.Context) error {
	req, err := h.chatRequest(c)
	if err != nil {
		return err
	}
	resp, err := h.chatSvc.Chat(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, errs.ErrValidation) {
			return httpError(err)
		}
		// the fallback path failed as well
		return echo.NewHTTPError(http.StatusServiceUnavailable, "assistant is unavailable").SetInternal(err)
	}
	return ok(c, http.StatusOK, resp, "")
}

// ChatStream answers over server-sent events terminated by a [DONE] frame.
func (h *Handler) ChatStream(c echo.Context) error {
	req, err := h.chatRequest(c)
	if err != nil {
		return err
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	emit := func(chunk model.StreamChunk) error {
		if chunk.Status == chatbot.StatusKeepAlive {
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return err
			}
			w.Flush()
			return nil
		}
		return writeEvent(w, chunk)
	}

	ctx := c.Request().Context()
	if err := h.chatSvc.Stream(ctx, req, emit); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		h.log.Warn("chat stream", zap.Error(err))
		msg := "assistant is unavailable"
		if errors.Is(err, errs.ErrValidation) {
			msg = err.Error()
		}
		if err := writeEvent(w, model.StreamChunk{Error: msg, SessionID: req.SessionID}); err != nil {
			return nil
		}
	}
	if _, err := fmt.Fprint(w, "data: [DONE]\n\n"); err == nil {
		w.Flush()
	}
	return nil
}

func writeEvent(w *echo.Response, chunk model.StreamChunk) error {
	data, err := json.Marshal(chunk)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	w.Flush()
	return nil
}

func (h *Handler) ChatStatus(c echo.Context) error {
	return ok(c, http.StatusOK, h.chatSvc.Status(), "")
}

func (h *Handler) ChatHistory(c echo.Context) error {
	sid := c.Param("sessionId")
	history, err := h.chatSvc.History(c.Request().Context(), sid)
	if err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, history, "")
}

func (h *Handler) ClearChatHistory(c echo.Context) error {
	sid := c.Param("sessionId")
	if err := h.chatSvc.ClearHistory(c.Request().Context(), sid); err != nil {
		return httpError(err)
	}
	return ok(c, http.StatusOK, nil, "history cleared")
}

func (h *Handler) GenerateSession(c echo.Context) error {
	return ok(c, http.StatusOK, map[string]string{"session_id": chatbot.NewSessionID()}, "")
}
