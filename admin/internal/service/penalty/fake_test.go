package penalty_test

import (
	"context"
	"sort"
	"sync"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/service/penalty"
	"github.com/shopspring/decimal"
)

type fakeStore struct {
	mu sync.Mutex

	settings     *model.FineSettings
	transactions map[int64]model.Transaction
	roles        map[int64]*string
	prices       map[int64]decimal.Decimal
	penalties    map[int64]model.Penalty
	lost         map[int64]bool
	lostErr      error
	audits       []model.AuditEntry
	auditErr     error
	nextID       int64
	writes       int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		transactions: map[int64]model.Transaction{},
		roles:        map[int64]*string{},
		prices:       map[int64]decimal.Decimal{},
		penalties:    map[int64]model.Penalty{},
		lost:         map[int64]bool{},
	}
}

func (f *fakeStore) addPenalty(p model.Penalty) int64 {
	f.nextID++
	p.ID = f.nextID
	f.penalties[p.ID] = p
	return p.ID
}

func (f *fakeStore) unpaid(txID, userID int64) []model.Penalty {
	var out []model.Penalty
	for _, p := range f.penalties {
		if p.TransactionID == txID && p.UserID == userID && !p.Settled() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeStore) Settings(context.Context) (model.FineSettings, error) {
	if f.settings == nil {
		return model.FineSettings{}, errs.ErrNotFound
	}
	return *f.settings, nil
}

func (f *fakeStore) UpdateSettings(_ context.Context, s model.FineSettings) error {
	f.settings = &s
	return nil
}

// WithPairLock rolls back penalty and lost-item changes when fn fails.
func (f *fakeStore) WithPairLock(ctx context.Context, _, _ int64, fn func(ctx context.Context, q penalty.PairStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	penalties := make(map[int64]model.Penalty, len(f.penalties))
	for id, p := range f.penalties {
		penalties[id] = p
	}
	lost := make(map[int64]bool, len(f.lost))
	for id, v := range f.lost {
		lost[id] = v
	}
	nextID := f.nextID
	if err := fn(ctx, f); err != nil {
		f.penalties, f.lost, f.nextID = penalties, lost, nextID
		return err
	}
	return nil
}

func (f *fakeStore) OverdueCandidates(context.Context) ([]model.OverdueCandidate, error) {
	var out []model.OverdueCandidate
	for _, tx := range f.transactions {
		if tx.Type != model.TransactionBorrow || tx.Status != model.StatusBorrowed {
			continue
		}
		out = append(out, model.OverdueCandidate{
			TransactionID:   tx.ID,
			UserID:          tx.UserID,
			Role:            f.roles[tx.UserID],
			TransactionDate: tx.TransactionDate,
			DueDate:         tx.DueDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TransactionID < out[j].TransactionID })
	return out, nil
}

func (f *fakeStore) LostItem(_ context.Context, id int64) (model.LostItem, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return model.LostItem{}, errs.ErrNotFound
	}
	return model.LostItem{
		TransactionID:   id,
		UserID:          tx.UserID,
		Role:            f.roles[tx.UserID],
		Status:          tx.Status,
		TransactionDate: tx.TransactionDate,
		BookCopyID:      tx.BookCopyID,
		Price:           f.prices[id],
		Title:           "Dune",
	}, nil
}

func (f *fakeStore) MarkItemLost(_ context.Context, item model.LostItem) error {
	if f.lostErr != nil {
		return f.lostErr
	}
	f.lost[item.TransactionID] = true
	return nil
}

func (f *fakeStore) GetPenalty(_ context.Context, id int64) (model.Penalty, error) {
	p, ok := f.penalties[id]
	if !ok {
		return model.Penalty{}, errs.ErrNotFound
	}
	return p, nil
}

func (f *fakeStore) ListPenalties(context.Context, model.PenaltyFilter) ([]model.PenaltyDetail, error) {
	return nil, nil
}

func (f *fakeStore) DeletePenalty(_ context.Context, id int64) error {
	if _, ok := f.penalties[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.penalties, id)
	return nil
}

func (f *fakeStore) Summary(context.Context) (model.PenaltySummary, error) {
	return model.PenaltySummary{}, nil
}

func (f *fakeStore) DeleteOnTimePenalties(context.Context) (int64, error) {
	var n int64
	for id, p := range f.penalties {
		if !p.Settled() && f.transactions[p.TransactionID].ReturnedOnTime() {
			delete(f.penalties, id)
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) DeleteDuplicateUnpaid(context.Context) (int64, error) {
	var n int64
	seen := map[[2]int64]bool{}
	for _, p := range f.penalties {
		key := [2]int64{p.TransactionID, p.UserID}
		if seen[key] || p.Settled() {
			continue
		}
		seen[key] = true
		rows := f.unpaid(p.TransactionID, p.UserID)
		for _, r := range rows[:len(rows)-1] {
			delete(f.penalties, r.ID)
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) WriteAudit(_ context.Context, e model.AuditEntry) error {
	if f.auditErr != nil {
		return f.auditErr
	}
	f.audits = append(f.audits, e)
	return nil
}

func (f *fakeStore) Transaction(_ context.Context, id int64) (model.Transaction, error) {
	tx, ok := f.transactions[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	return tx, nil
}

func (f *fakeStore) LatestPenalty(_ context.Context, txID, userID int64) (model.Penalty, error) {
	var (
		latest model.Penalty
		found  bool
	)
	for _, p := range f.penalties {
		if p.TransactionID != txID || p.UserID != userID {
			continue
		}
		if !found || p.UpdatedAt.After(latest.UpdatedAt) || (p.UpdatedAt.Equal(latest.UpdatedAt) && p.ID > latest.ID) {
			latest, found = p, true
		}
	}
	if !found {
		return model.Penalty{}, errs.ErrNotFound
	}
	return latest, nil
}

func (f *fakeStore) PenaltyForUpdate(ctx context.Context, id int64) (model.Penalty, error) {
	return f.GetPenalty(ctx, id)
}

func (f *fakeStore) InsertPenalty(_ context.Context, txID, userID int64, fine decimal.Decimal) (int64, error) {
	f.writes++
	return f.addPenalty(model.Penalty{TransactionID: txID, UserID: userID, Fine: fine}), nil
}

func (f *fakeStore) UpdateFine(_ context.Context, id int64, fine decimal.Decimal) error {
	f.writes++
	p := f.penalties[id]
	p.Fine = fine
	f.penalties[id] = p
	return nil
}

func (f *fakeStore) DeleteUnpaid(_ context.Context, txID, userID, belowID int64) (int64, error) {
	var n int64
	for _, p := range f.unpaid(txID, userID) {
		if belowID > 0 && p.ID >= belowID {
			continue
		}
		delete(f.penalties, p.ID)
		n++
	}
	return n, nil
}

func (f *fakeStore) Settle(_ context.Context, id int64, status model.PenaltyStatus, reason, actor *string) (model.Penalty, error) {
	f.writes++
	p := f.penalties[id]
	st := string(status)
	p.Status = &st
	p.WaiveReason = reason
	p.WaivedBy = actor
	f.penalties[id] = p
	return p, nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Event
}

func (r *recordingPublisher) Publish(_ context.Context, ev model.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}
