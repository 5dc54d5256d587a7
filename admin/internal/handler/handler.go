package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	mw "github.com/Astemirdum/library-admin/pkg/middleware"
	"github.com/Astemirdum/library-admin/pkg/validate"
	_ "github.com/Astemirdum/library-admin/swagger"
)

// NotificationHub upgrades a request to a websocket that receives the user's events.
type NotificationHub interface {
	Serve(ctx context.Context, w http.ResponseWriter, r *http.Request, userID int64) error
}

type Handler struct {
	penaltySvc PenaltyService
	librarySvc LibraryService
	chatSvc    ChatService
	hub        NotificationHub
	log        *zap.Logger
}

func New(penaltySvc PenaltyService, librarySvc LibraryService, chatSvc ChatService, hub NotificationHub, log *zap.Logger) *Handler {
	return &Handler{
		penaltySvc: penaltySvc,
		librarySvc: librarySvc,
		chatSvc:    chatSvc,
		hub:        hub,
		log:        log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.HideBanner = true
	e.HTTPErrorHandler = h.errorHandler
	e.Validator = validate.NewCustomValidator()
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", mw.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)
	base.GET("/ws/notifications", h.Notifications, mw.AuthContext)

	api := e.Group("/api",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.AuthContext,
	)
	admin := api.Group("", mw.RequireAdmin)

	api.GET("/penalties", h.ListPenalties)
	api.GET("/penalties/summary", h.PenaltySummary)
	api.GET("/penalties/:id", h.GetPenalty)
	admin.POST("/penalties/process-overdue", h.ProcessOverdue)
	admin.POST("/penalties/recalculate", h.RecalculatePenalties)
	admin.POST("/penalties/mark-as-lost", h.MarkLost)
	admin.POST("/penalties/cleanup", h.CleanupPenalties)
	admin.PUT("/penalties/:id/waive", h.WaivePenalty)
	admin.PUT("/penalties/:id/pay", h.PayPenalty)
	admin.DELETE("/penalties/:id", h.DeletePenalty)

	api.GET("/settings/fines", h.GetFineSettings)
	admin.PUT("/settings/fines", h.UpdateFineSettings)

	api.GET("/books", h.ListBooks)
	api.GET("/available-books", h.AvailableBooks)
	api.GET("/books/scan", h.ScanCopy)
	api.GET("/books/:id", h.GetBook)
	api.GET("/books/:id/cover", h.BookCover)
	api.POST("/books", h.RegisterBooks)
	api.PUT("/books/:id", h.UpdateBook)
	api.DELETE("/books/:id", h.RemoveBook)
	api.PUT("/copies/:id/status", h.SetCopyStatus)

	api.GET("/research-papers", h.ListResearch)
	api.GET("/available-research", h.AvailableResearch)
	api.GET("/research-papers/:id", h.GetResearch)
	api.POST("/research-papers", h.CreateResearch)
	api.PUT("/research-papers/:id", h.UpdateResearch)
	api.DELETE("/research-papers/:id", h.RemoveResearch)

	api.GET("/reservations", h.ListReservations)
	api.POST("/reservations", h.CreateReservation)
	api.PUT("/reservations/:id/approve", h.ApproveReservation)
	api.PUT("/reservations/:id/reject", h.RejectReservation)
	api.DELETE("/reservations/:id", h.DeleteReservation)

	api.GET("/shelves", h.ListShelves)
	api.POST("/shelves", h.CreateShelf)
	api.DELETE("/shelves/:id", h.DeleteShelf)
	api.POST("/shelves/:number/grid", h.AddShelfGrid)
	api.DELETE("/shelves/:number/rows/:row", h.RemoveShelfRow)
	api.DELETE("/shelves/:number/columns/:column", h.RemoveShelfColumn)
	api.DELETE("/shelves/:number/grid", h.RemoveShelfNumber)

	admin.GET("/administrators", h.ListAdministrators)
	admin.GET("/administrators/:id", h.GetAdministrator)
	admin.POST("/administrators", h.CreateAdministrator)
	admin.PUT("/administrators/:id", h.UpdateAdministrator)
	admin.DELETE("/administrators/:id", h.DeleteAdministrator)

	api.GET("/rules", h.ListRules)
	api.POST("/rules", h.CreateRule)
	api.PUT("/rules/:id", h.UpdateRule)
	api.DELETE("/rules/:id", h.DeleteRule)
	api.GET("/faqs", h.ListFAQs)
	api.POST("/faqs", h.CreateFAQ)
	api.PUT("/faqs/:id", h.UpdateFAQ)
	api.DELETE("/faqs/:id", h.DeleteFAQ)

	api.GET("/transactions", h.ListTransactions)

	chat := api.Group("/chatbot")
	chat.POST("/chat", h.Chat)
	chat.POST("/chat/stream", h.ChatStream)
	chat.GET("/status", h.ChatStatus)
	chat.GET("/history/:sessionId", h.ChatHistory)
	chat.DELETE("/history/:sessionId", h.ClearChatHistory)
	chat.POST("/generate-session", h.GenerateSession)

	kiosk := e.Group("/kiosk",
		middleware.RequestLoggerWithConfig(mw.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		mw.NewRateLimiter(apiRPS),
		mw.AuthContext,
	)
	kiosk.POST("/borrow", h.KioskBorrow)
	kiosk.POST("/return", h.KioskReturn)
	kiosk.PUT("/receipts/:reference", h.ReplaceReceipt)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
