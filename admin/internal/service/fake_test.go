package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/admin/internal/repository"
)

// fakeRepo implements the calls exercised here; anything else panics through
// the nil embedded interface.
type fakeRepo struct {
	repository.Repository

	mu       sync.Mutex
	users    map[int64]model.User
	copies   map[string]model.CatalogBook
	active   map[string][]model.Transaction
	unpaid   []int64
	borrowed []model.Transaction
	returned []int64
	receipt  *string
	cells    map[model.ShelfLocation]bool
	failCopy int
	cover    model.Cover
	book     model.Book
	created  []model.BookCopy
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:  map[int64]model.User{},
		copies: map[string]model.CatalogBook{},
		active: map[string][]model.Transaction{},
		cells:  map[model.ShelfLocation]bool{},
	}
}

func (f *fakeRepo) Settings(context.Context) (model.FineSettings, error) {
	return model.DefaultFineSettings(), nil
}

func (f *fakeRepo) GetUser(_ context.Context, id int64) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, errs.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) CopyByNumber(_ context.Context, bookID int64, copyNumber int) (model.CatalogBook, error) {
	c, ok := f.copies[key(bookID, copyNumber)]
	if !ok {
		return model.CatalogBook{}, errs.ErrNotFound
	}
	return c, nil
}

func (f *fakeRepo) BorrowItem(_ context.Context, tx model.Transaction) (model.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.borrowed {
		if b.Item() == tx.Item() {
			return model.Transaction{}, errors.Wrap(errs.ErrUnavailable, "already borrowed")
		}
	}
	tx.ID = int64(len(f.borrowed) + 1)
	f.borrowed = append(f.borrowed, tx)
	return tx, nil
}

func (f *fakeRepo) ActiveByReference(_ context.Context, ref string) ([]model.Transaction, error) {
	return f.active[ref], nil
}

func (f *fakeRepo) UnpaidPenaltyIDs(context.Context, []int64) ([]int64, error) {
	return f.unpaid, nil
}

func (f *fakeRepo) ReturnItems(_ context.Context, ids []int64, at time.Time, receipt *string) ([]model.Transaction, error) {
	f.returned = append(f.returned, ids...)
	f.receipt = receipt
	out := make([]model.Transaction, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Transaction{ID: id, Status: model.StatusReturned, ReturnDate: &at, ReceiptImage: receipt})
	}
	return out, nil
}

func (f *fakeRepo) SetReceipt(_ context.Context, ref, receipt string) (int64, error) {
	if _, ok := f.active[ref]; !ok {
		return 0, nil
	}
	f.receipt = &receipt
	return 1, nil
}

func (f *fakeRepo) InsertShelfCell(_ context.Context, loc model.ShelfLocation) (bool, error) {
	if f.cells[loc] {
		return false, nil
	}
	f.cells[loc] = true
	return true, nil
}

func (f *fakeRepo) DeleteShelfCells(_ context.Context, filter model.ShelfCellFilter) (int64, error) {
	var n int64
	for loc := range f.cells {
		if loc.ShelfNumber != filter.ShelfNumber ||
			(filter.Column != nil && loc.ShelfColumn != *filter.Column) ||
			(filter.Row != nil && loc.ShelfRow != *filter.Row) {
			continue
		}
		delete(f.cells, loc)
		n++
	}
	return n, nil
}

func (f *fakeRepo) CreateBook(_ context.Context, book model.Book, cover model.Cover) (int64, error) {
	f.book, f.cover = book, cover
	return 42, nil
}

func (f *fakeRepo) CreateCopy(_ context.Context, c model.BookCopy) (model.BookCopy, error) {
	if c.CopyNumber == f.failCopy {
		return model.BookCopy{}, errs.ErrAlreadyExists
	}
	c.ID = int64(100 + c.CopyNumber)
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeRepo) BookCover(context.Context, int64) (model.Cover, error) {
	return f.cover, nil
}

func key(bookID int64, copyNumber int) string {
	return fmt.Sprintf("%d:%d", bookID, copyNumber)
}

type memStore struct {
	saved map[string][]byte
}

func (m *memStore) Save(_ context.Context, name string, data []byte) (string, error) {
	if m.saved == nil {
		m.saved = map[string][]byte{}
	}
	m.saved[name] = data
	return "receipts/" + name, nil
}

type stamper struct{ err error }

func (s stamper) Stamp(img []byte) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]byte("stamped:"), img...), nil
}

func ptr[T any](v T) *T { return &v }
