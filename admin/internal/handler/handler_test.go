package handler_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/handler"
	"github.com/Astemirdum/library-admin/pkg/auth"

	service_mocks "github.com/Astemirdum/library-admin/admin/internal/handler/mocks"
)

type mocks struct {
	penalty *service_mocks.MockPenaltyService
	library *service_mocks.MockLibraryService
	chat    *service_mocks.MockChatService
}

func newTestRouter(t *testing.T) (*echo.Echo, mocks) {
	t.Helper()
	c := gomock.NewController(t)
	m := mocks{
		penalty: service_mocks.NewMockPenaltyService(c),
		library: service_mocks.NewMockLibraryService(c),
		chat:    service_mocks.NewMockChatService(c),
	}
	h := handler.New(m.penalty, m.library, m.chat, nil, zap.NewNop())
	return h.NewRouter(), m
}

func asAdmin(r *http.Request) *http.Request {
	r.Header.Set(auth.XUserNameHeader, "librarian")
	r.Header.Set(auth.XUserRoleHeader, auth.RoleAdmin)
	return r
}

func jsonRequest(method, target string, body string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return r
}

func body(w *httptest.ResponseRecorder) string {
	return strings.Trim(w.Body.String(), "\n")
}
