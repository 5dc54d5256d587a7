package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
)

var fixedNow = time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

func newTestService(repo *fakeRepo, opts ...Option) *Service {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewService(repo, zap.NewNop(), opts...)
}

func TestService_Borrow(t *testing.T) {
	t.Parallel()
	t.Run("student gets student days and one reference", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.users[1] = model.User{ID: 1, Role: ptr(model.RoleStudent)}
		repo.copies[key(7, 1)] = model.CatalogBook{BookID: 7, CopyID: 70, CopyNumber: 1}
		svc := newTestService(repo)

		res, err := svc.Borrow(context.Background(), model.BorrowRequest{
			UserID:  1,
			QRCodes: []string{qrcode.Encode(7, 1), qrcode.EncodeResearch(3), "garbage"},
		})
		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^TXN-20240304-[0-9A-F]{8}$`), res.ReferenceNumber)
		assert.Equal(t, fixedNow.AddDate(0, 0, 3), res.DueDate)
		require.Len(t, res.Transactions, 2)
		for _, tx := range res.Transactions {
			assert.Equal(t, res.ReferenceNumber, tx.ReferenceNumber)
			assert.Equal(t, model.StatusBorrowed, tx.Status)
		}
		assert.Equal(t, int64(70), *res.Transactions[0].BookCopyID)
		assert.Equal(t, int64(3), *res.Transactions[1].ResearchPaperID)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "garbage", res.Errors[0].Code)
	})
	t.Run("faculty due date", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.users[2] = model.User{ID: 2, Role: ptr("Faculty")}
		svc := newTestService(repo)

		res, err := svc.Borrow(context.Background(), model.BorrowRequest{UserID: 2, QRCodes: []string{qrcode.EncodeResearch(9)}})
		require.NoError(t, err)
		assert.Equal(t, fixedNow.AddDate(0, 0, 7), res.DueDate)
	})
	t.Run("nothing borrowable", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.users[1] = model.User{ID: 1}
		repo.borrowed = []model.Transaction{{ResearchPaperID: ptr(int64(5))}}
		svc := newTestService(repo)

		res, err := svc.Borrow(context.Background(), model.BorrowRequest{UserID: 1, QRCodes: []string{qrcode.EncodeResearch(5)}})
		require.ErrorIs(t, err, errs.ErrUnavailable)
		require.Len(t, res.Errors, 1)
	})
	t.Run("unknown borrower", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepo())
		_, err := svc.Borrow(context.Background(), model.BorrowRequest{UserID: 9, QRCodes: []string{"x"}})
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

var (
	copy1     = model.ItemRef{Kind: model.ItemCopy, ID: 1}
	research2 = model.ItemRef{Kind: model.ItemResearch, ID: 2}
)

func activeLoans(ref string) []model.Transaction {
	return []model.Transaction{
		{ID: 11, ReferenceNumber: ref, BookCopyID: ptr(int64(1)), Status: model.StatusBorrowed},
		{ID: 12, ReferenceNumber: ref, ResearchPaperID: ptr(int64(2)), Status: model.StatusBorrowed},
	}
}

func TestService_Return(t *testing.T) {
	t.Parallel()
	const ref = "TXN-20240304-AAAAAAAA"

	t.Run("exact set with stamped receipt", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = activeLoans(ref)
		store := &memStore{}
		svc := newTestService(repo, WithReceipts(store, stamper{}))

		res, err := svc.Return(context.Background(),
			model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{research2, copy1}},
			&model.Upload{Name: "photo.JPG", Data: []byte("img")})
		require.NoError(t, err)
		assert.Equal(t, []int64{11, 12}, repo.returned)
		assert.Len(t, res.Returned, 2)
		require.Len(t, store.saved, 1)
		for name, data := range store.saved {
			assert.Regexp(t, `^TXN-20240304-AAAAAAAA-\d+\.jpg$`, name)
			assert.Equal(t, []byte("stamped:img"), data)
			assert.Equal(t, "receipts/"+name, res.ReceiptImage)
		}
	})
	t.Run("stamp failure keeps original", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = activeLoans(ref)
		store := &memStore{}
		svc := newTestService(repo, WithReceipts(store, stamper{err: errors.New("bad image")}))

		_, err := svc.Return(context.Background(),
			model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{copy1, research2}},
			&model.Upload{Name: "r.png", Data: []byte("img")})
		require.NoError(t, err)
		for _, data := range store.saved {
			assert.Equal(t, []byte("img"), data)
		}
	})
	t.Run("mismatch lists both sets", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = activeLoans(ref)
		svc := newTestService(repo)

		_, err := svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{research2}}, nil)
		var mismatch *errs.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, []string{"copy:1", "research:2"}, mismatch.Expected)
		assert.Equal(t, []string{"research:2"}, mismatch.Provided)
		assert.Empty(t, repo.returned)
	})
	t.Run("copy and paper sharing an id are distinct items", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = []model.Transaction{
			{ID: 21, ReferenceNumber: ref, BookCopyID: ptr(int64(5)), Status: model.StatusBorrowed},
			{ID: 22, ReferenceNumber: ref, ResearchPaperID: ptr(int64(5)), Status: model.StatusBorrowed},
		}
		svc := newTestService(repo)

		_, err := svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{{Kind: model.ItemCopy, ID: 5}}}, nil)
		var mismatch *errs.MismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, []string{"copy:5", "research:5"}, mismatch.Expected)
		assert.Equal(t, []string{"copy:5"}, mismatch.Provided)
		assert.Empty(t, repo.returned)

		_, err = svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{
			{Kind: model.ItemResearch, ID: 5}, {Kind: model.ItemCopy, ID: 5},
		}}, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{21, 22}, repo.returned)
	})
	t.Run("extra item is a mismatch", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = activeLoans(ref)
		svc := newTestService(repo)

		_, err := svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{copy1, research2, {Kind: model.ItemCopy, ID: 3}}}, nil)
		require.ErrorIs(t, err, errs.ErrItemMismatch)
	})
	t.Run("unpaid penalty blocks", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.active[ref] = activeLoans(ref)
		repo.unpaid = []int64{31}
		svc := newTestService(repo)

		_, err := svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: ref, Items: []model.ItemRef{copy1, research2}}, nil)
		var unpaid *errs.UnpaidError
		require.ErrorAs(t, err, &unpaid)
		assert.Equal(t, []int64{31}, unpaid.PenaltyIDs)
		assert.Empty(t, repo.returned)
	})
	t.Run("unknown reference", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepo())
		_, err := svc.Return(context.Background(), model.ReturnRequest{ReferenceNumber: "nope", Items: []model.ItemRef{copy1}}, nil)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_ReplaceReceipt(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	repo.active["TXN-1"] = nil
	svc := newTestService(repo, WithReceipts(&memStore{}, nil))

	_, err := svc.ReplaceReceipt(context.Background(), "TXN-1", nil)
	require.ErrorIs(t, err, errs.ErrValidation)

	ref, err := svc.ReplaceReceipt(context.Background(), "TXN-1", &model.Upload{Name: "a.png", Data: []byte("x")})
	require.NoError(t, err)
	assert.Equal(t, ref, *repo.receipt)

	_, err = svc.ReplaceReceipt(context.Background(), "TXN-2", &model.Upload{Name: "a.png", Data: []byte("x")})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSameSet(t *testing.T) {
	t.Parallel()
	research1 := model.ItemRef{Kind: model.ItemResearch, ID: 1}
	assert.True(t, sameSet([]model.ItemRef{copy1, research2}, []model.ItemRef{research2, copy1}))
	assert.True(t, sameSet([]model.ItemRef{copy1, research2}, []model.ItemRef{research2, copy1, copy1}))
	assert.False(t, sameSet([]model.ItemRef{copy1, research2}, []model.ItemRef{copy1}))
	assert.False(t, sameSet([]model.ItemRef{copy1}, []model.ItemRef{research1}))
}

func TestParseItemRef(t *testing.T) {
	t.Parallel()
	ref, err := model.ParseItemRef(" Research:7 ")
	require.NoError(t, err)
	assert.Equal(t, model.ItemRef{Kind: model.ItemResearch, ID: 7}, ref)
	assert.Equal(t, "research:7", ref.String())

	for _, bad := range []string{"7", "book:7", "copy:", "copy:-1", "copy:x"} {
		_, err := model.ParseItemRef(bad)
		assert.Error(t, err, bad)
	}
}
