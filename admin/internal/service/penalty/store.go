package penalty

import (
	"context"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/shopspring/decimal"
)

// Store is the persistence the penalty engine needs.
type Store interface {
	Settings(ctx context.Context) (model.FineSettings, error)
	UpdateSettings(ctx context.Context, s model.FineSettings) error

	// WithPairLock runs fn in one database transaction holding a lock keyed on
	// (transactionID, userID). fn must only use the PairStore it is given.
	WithPairLock(ctx context.Context, transactionID, userID int64, fn func(ctx context.Context, q PairStore) error) error

	OverdueCandidates(ctx context.Context) ([]model.OverdueCandidate, error)
	LostItem(ctx context.Context, transactionID int64) (model.LostItem, error)

	GetPenalty(ctx context.Context, id int64) (model.Penalty, error)
	ListPenalties(ctx context.Context, filter model.PenaltyFilter) ([]model.PenaltyDetail, error)
	DeletePenalty(ctx context.Context, id int64) error
	Summary(ctx context.Context) (model.PenaltySummary, error)

	DeleteOnTimePenalties(ctx context.Context) (int64, error)
	DeleteDuplicateUnpaid(ctx context.Context) (int64, error)

	WriteAudit(ctx context.Context, entry model.AuditEntry) error
}

// PairStore is scoped to one locked (transaction, borrower) pair.
type PairStore interface {
	Transaction(ctx context.Context, transactionID int64) (model.Transaction, error)
	LatestPenalty(ctx context.Context, transactionID, userID int64) (model.Penalty, error)
	PenaltyForUpdate(ctx context.Context, id int64) (model.Penalty, error)
	InsertPenalty(ctx context.Context, transactionID, userID int64, fine decimal.Decimal) (int64, error)
	UpdateFine(ctx context.Context, id int64, fine decimal.Decimal) error
	// DeleteUnpaid removes unpaid rows of the pair with id < belowID; belowID <= 0 removes all of them.
	DeleteUnpaid(ctx context.Context, transactionID, userID, belowID int64) (int64, error)
	Settle(ctx context.Context, id int64, status model.PenaltyStatus, reason, actor *string) (model.Penalty, error)
	MarkItemLost(ctx context.Context, item model.LostItem) error
}

type Publisher interface {
	Publish(ctx context.Context, event model.Event) error
}
