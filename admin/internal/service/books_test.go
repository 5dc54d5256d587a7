package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
)

func TestService_RegisterBooks(t *testing.T) {
	t.Parallel()
	t.Run("copies numbered from one with QR payloads", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		repo.failCopy = 2
		svc := newTestService(repo, WithCatalog("https://cdn.example.edu/", CoverPath, ClassGenreOrDepartment))

		res, err := svc.RegisterBooks(context.Background(), model.RegisterBooksRequest{
			Title:     "  Go in Practice ",
			Author:    "Butcher",
			Genre:     ptr("Programming"),
			Price:     decimal.NewFromInt(300),
			Quantity:  3,
			CoverPath: ptr("uploads/covers/go.png"),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(42), res.Book.ID)
		assert.Equal(t, "Go in Practice", repo.book.Title)
		assert.NotEmpty(t, repo.book.BatchKey)
		assert.Equal(t, "https://cdn.example.edu/uploads/covers/go.png", *res.Book.CoverPath)

		require.Len(t, res.Copies, 2)
		assert.Equal(t, qrcode.Encode(42, 1), res.Copies[0].QRPayload)
		assert.Equal(t, 3, res.Copies[1].CopyNumber)
		assert.Equal(t, model.ItemAvailable, res.Copies[1].Status)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, int64(2), res.Errors[0].ItemID)
	})
	t.Run("department variant requires department", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepo())
		_, err := svc.RegisterBooks(context.Background(), model.RegisterBooksRequest{
			Title: "T", Author: "A", IsUsingDepartment: true, Quantity: 1,
		})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
	t.Run("genre-only schema ignores department flag", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		svc := newTestService(repo, WithCatalog("", CoverPath, ClassGenre))
		_, err := svc.RegisterBooks(context.Background(), model.RegisterBooksRequest{
			Title: "T", Author: "A", Genre: ptr("Fiction"), Department: ptr("CS"), IsUsingDepartment: true, Quantity: 1,
		})
		require.NoError(t, err)
		assert.False(t, repo.book.IsUsingDepartment)
		assert.Nil(t, repo.book.Department)
	})
	t.Run("negative price", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepo())
		_, err := svc.RegisterBooks(context.Background(), model.RegisterBooksRequest{
			Title: "T", Author: "A", Genre: ptr("Fiction"), Price: decimal.NewFromInt(-1), Quantity: 1,
		})
		require.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestService_BookCover(t *testing.T) {
	t.Parallel()
	t.Run("blob mode serves through the API", func(t *testing.T) {
		t.Parallel()
		repo := newFakeRepo()
		svc := newTestService(repo, WithCatalog("", CoverBlob, ClassGenreOrDepartment))
		res, err := svc.RegisterBooks(context.Background(), model.RegisterBooksRequest{
			Title: "T", Author: "A", Genre: ptr("Fiction"), Quantity: 1, CoverBlob: []byte("png"),
		})
		require.NoError(t, err)
		assert.Equal(t, "/api/books/42/cover", *res.Book.CoverPath)

		cover, err := svc.BookCover(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, []byte("png"), cover.Blob)
	})
	t.Run("missing cover", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newFakeRepo())
		_, err := svc.BookCover(context.Background(), 1)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_ScanCopy(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	repo.copies[key(5, 2)] = model.CatalogBook{BookID: 5, CopyID: 52, CopyNumber: 2, Cover: ptr("https://x/y.png")}
	svc := newTestService(repo)

	c, err := svc.ScanCopy(context.Background(), qrcode.Encode(5, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(52), c.CopyID)
	assert.Equal(t, "https://x/y.png", *c.Cover)

	_, err = svc.ScanCopy(context.Background(), "BookID:x")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestService_ShelfGrid(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	rep, err := svc.AddShelfGrid(ctx, 1, model.ShelfGridRequest{Rows: 2, Columns: 3})
	require.NoError(t, err)
	assert.Equal(t, 6, rep.Created)

	rep, err = svc.AddShelfGrid(ctx, 1, model.ShelfGridRequest{Rows: 3, Columns: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Created)
	assert.Equal(t, 6, rep.Existed)

	rep, err = svc.RemoveShelfColumn(ctx, 1, "b")
	require.NoError(t, err)
	assert.Equal(t, int64(3), rep.Removed)

	rep, err = svc.RemoveShelfRow(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rep.Removed)

	_, err = svc.RemoveShelfColumn(ctx, 1, "AA")
	require.ErrorIs(t, err, errs.ErrValidation)

	rep, err = svc.RemoveShelfNumber(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rep.Removed)

	_, err = svc.RemoveShelfNumber(ctx, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
