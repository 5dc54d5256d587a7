package handler

import (
	"context"

	"github.com/Astemirdum/library-admin/admin/internal/chatbot"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/service"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type PenaltyService interface {
	Settings(ctx context.Context) model.FineSettings
	UpdateSettings(ctx context.Context, set model.FineSettings) error
	ProcessOverdue(ctx context.Context) (model.BatchReport, error)
	Recalculate(ctx context.Context) (model.BatchReport, error)
	MarkLost(ctx context.Context, transactionIDs []int64) (model.BatchReport, error)
	Waive(ctx context.Context, id int64, reason, actor string) (model.Penalty, error)
	Pay(ctx context.Context, id int64, info model.PaymentInfo) (model.PayResult, error)
	Cleanup(ctx context.Context) (model.CleanupReport, error)
	Get(ctx context.Context, id int64) (model.Penalty, error)
	List(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyDetail, error)
	Summary(ctx context.Context) (model.PenaltySummary, error)
	Delete(ctx context.Context, id int64, actor string) error
}

var _ PenaltyService = (*penalty.Service)(nil)

type LibraryService interface {
	RegisterBooks(ctx context.Context, req model.RegisterBooksRequest) (model.RegisterResult, error)
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int64) (model.BookWithCopies, error)
	UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error)
	RemoveBook(ctx context.Context, id int64) error
	SetCopyStatus(ctx context.Context, copyID int64, status string) (model.BookCopy, error)
	ScanCopy(ctx context.Context, code string) (model.CatalogBook, error)
	BookCover(ctx context.Context, bookID int64) (model.Cover, error)

	CreateResearch(ctx context.Context, req model.ResearchRequest) (model.ResearchPaper, error)
	ListResearch(ctx context.Context, filter model.ResearchFilter) ([]model.ResearchPaper, error)
	GetResearch(ctx context.Context, id int64) (model.ResearchPaper, error)
	UpdateResearch(ctx context.Context, id int64, req model.ResearchRequest) (model.ResearchPaper, error)
	RemoveResearch(ctx context.Context, id int64) error

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	ListReservations(ctx context.Context, status string) ([]model.ReservationDetail, error)
	ApproveReservation(ctx context.Context, id int64) (model.Reservation, error)
	RejectReservation(ctx context.Context, id int64) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	ListShelves(ctx context.Context) ([]model.ShelfLocation, error)
	CreateShelf(ctx context.Context, loc model.ShelfLocation) (model.ShelfLocation, error)
	DeleteShelf(ctx context.Context, id int64) error
	AddShelfGrid(ctx context.Context, shelfNumber int, req model.ShelfGridRequest) (model.GridReport, error)
	RemoveShelfRow(ctx context.Context, shelfNumber, row int) (model.GridReport, error)
	RemoveShelfColumn(ctx context.Context, shelfNumber int, column string) (model.GridReport, error)
	RemoveShelfNumber(ctx context.Context, shelfNumber int) (model.GridReport, error)

	ListAdministrators(ctx context.Context) ([]model.Administrator, error)
	GetAdministrator(ctx context.Context, id int64) (model.Administrator, error)
	CreateAdministrator(ctx context.Context, req model.AdministratorRequest) (model.Administrator, error)
	UpdateAdministrator(ctx context.Context, id int64, req model.AdministratorRequest) (model.Administrator, error)
	DeleteAdministrator(ctx context.Context, id int64) error
	ListRules(ctx context.Context) ([]model.Rule, error)
	CreateRule(ctx context.Context, req model.RuleRequest) (model.Rule, error)
	UpdateRule(ctx context.Context, id int64, req model.RuleRequest) (model.Rule, error)
	DeleteRule(ctx context.Context, id int64) error
	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	CreateFAQ(ctx context.Context, req model.FAQRequest) (model.FAQ, error)
	UpdateFAQ(ctx context.Context, id int64, req model.FAQRequest) (model.FAQ, error)
	DeleteFAQ(ctx context.Context, id int64) error

	Borrow(ctx context.Context, req model.BorrowRequest) (model.BorrowResult, error)
	Return(ctx context.Context, req model.ReturnRequest, receipt *model.Upload) (model.ReturnResult, error)
	ReplaceReceipt(ctx context.Context, reference string, receipt *model.Upload) (string, error)
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
}

var _ LibraryService = (*service.Service)(nil)

type ChatService interface {
	Chat(ctx context.Context, req model.ChatRequest) (model.ChatResponse, error)
	Stream(ctx context.Context, req model.ChatRequest, emit func(model.StreamChunk) error) error
	Status() model.ChatStatus
	History(ctx context.Context, sid string) ([]model.ChatMessage, error)
	ClearHistory(ctx context.Context, sid string) error
}

var _ ChatService = (*chatbot.Router)(nil)
