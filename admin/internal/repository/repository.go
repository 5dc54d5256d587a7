package repository

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

type Repository interface {
	CreateBook(ctx context.Context, book model.Book, cover model.Cover) (int64, error)
	CreateCopy(ctx context.Context, c model.BookCopy) (model.BookCopy, error)
	ListCatalogBooks(ctx context.Context, filter model.BookFilter) ([]model.CatalogBook, int, error)
	GetBook(ctx context.Context, id int64) (model.Book, error)
	ListCopies(ctx context.Context, bookID int64) ([]model.BookCopy, error)
	UpdateBook(ctx context.Context, id int64, book model.Book) (model.Book, error)
	SetBookCopiesStatus(ctx context.Context, bookID int64, status model.ItemStatus) (int64, error)
	SetCopyStatus(ctx context.Context, copyID int64, status model.ItemStatus) (model.BookCopy, error)
	CopyByNumber(ctx context.Context, bookID int64, copyNumber int) (model.CatalogBook, error)
	BookCover(ctx context.Context, bookID int64) (model.Cover, error)

	CreateResearch(ctx context.Context, p model.ResearchPaper) (model.ResearchPaper, error)
	ListResearch(ctx context.Context, filter model.ResearchFilter) ([]model.ResearchPaper, error)
	GetResearch(ctx context.Context, id int64) (model.ResearchPaper, error)
	UpdateResearch(ctx context.Context, id int64, p model.ResearchPaper) (model.ResearchPaper, error)
	SetResearchStatus(ctx context.Context, id int64, status model.ItemStatus) error

	CreateReservation(ctx context.Context, req model.CreateReservationRequest) (model.Reservation, error)
	ListReservations(ctx context.Context, status string) ([]model.ReservationDetail, error)
	DecideReservation(ctx context.Context, id int64, status model.ReservationStatus, itemStatus model.ItemStatus) (model.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error

	ListShelves(ctx context.Context) ([]model.ShelfLocation, error)
	CreateShelf(ctx context.Context, loc model.ShelfLocation) (model.ShelfLocation, error)
	InsertShelfCell(ctx context.Context, loc model.ShelfLocation) (bool, error)
	DeleteShelf(ctx context.Context, id int64) error
	DeleteShelfCells(ctx context.Context, filter model.ShelfCellFilter) (int64, error)

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

	Settings(ctx context.Context) (model.FineSettings, error)
	GetUser(ctx context.Context, id int64) (model.User, error)
	BorrowItem(ctx context.Context, tx model.Transaction) (model.Transaction, error)
	ActiveByReference(ctx context.Context, reference string) ([]model.Transaction, error)
	UnpaidPenaltyIDs(ctx context.Context, transactionIDs []int64) ([]int64, error)
	ReturnItems(ctx context.Context, transactionIDs []int64, returnedAt time.Time, receipt *string) ([]model.Transaction, error)
	SetReceipt(ctx context.Context, reference, receipt string) (int64, error)
	ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error)
}

var _ Repository = (*repository)(nil)

type repository struct {
	db  *pgxpool.Pool
	log *zap.Logger
}

func NewRepository(db *pgxpool.Pool, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName           = `users`
	administratorsTableName  = `administrators`
	shelvesTableName         = `shelf_locations`
	booksTableName           = `books`
	copiesTableName          = `book_copies`
	researchTableName        = `research_papers`
	researchAuthorsTableName = `research_authors`
	transactionsTableName    = `transactions`
	reservationsTableName    = `reservations`
	settingsTableName        = `library_settings`
	penaltiesTableName       = `penalties`
	auditTableName           = `penalty_audit_log`
	rulesTableName           = `rules`
	faqsTableName            = `faqs`
	schedulerRunsTableName   = `scheduler_runs`
	reminderLogTableName     = `reminder_log`
	chatMessagesTableName    = `chat_messages`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// querier is satisfied by both the pool and an open pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func selectAll[T any](ctx context.Context, q querier, b sq.Sqlizer) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	return queryAll[T](ctx, q, query, args...)
}

func queryAll[T any](ctx context.Context, q querier, query string, args ...any) ([]T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func selectOne[T any](ctx context.Context, q querier, b sq.Sqlizer) (T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		var zero T
		return zero, err
	}
	return queryOne[T](ctx, q, query, args...)
}

func queryOne[T any](ctx context.Context, q querier, query string, args ...any) (T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		var zero T
		return zero, err
	}
	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[T])
	if err != nil {
		return item, notFound(err)
	}
	return item, nil
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.ErrNotFound
	}
	return err
}

func exec(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// execOne expects exactly one affected row and reports ErrNotFound otherwise.
func execOne(ctx context.Context, q querier, b sq.Sqlizer) error {
	n, err := exec(ctx, q, b)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func insertReturningID(ctx context.Context, q querier, b sq.InsertBuilder) (int64, error) {
	query, args, err := b.Suffix("returning id").ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, mapPgError(err)
	}
	return id, nil
}

func (r *repository) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	return pgx.BeginFunc(ctx, r.db, fn)
}

func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return errors.Wrap(errs.ErrAlreadyExists, pgErr.Detail)
		case pgerrcode.ForeignKeyViolation:
			return errors.Wrap(errs.ErrNotFound, pgErr.Detail)
		case pgerrcode.CheckViolation:
			return errs.Validation(pgErr.Message)
		}
	}
	return err
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
