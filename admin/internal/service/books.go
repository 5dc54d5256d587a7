package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// RegisterBooks creates one batch and its numbered copies. A failing copy is
// reported and the rest of the batch continues.
func (s *Service) RegisterBooks(ctx context.Context, req model.RegisterBooksRequest) (model.RegisterResult, error) {
	book := model.Book{
		BatchKey:          uuid.NewString(),
		Title:             strings.TrimSpace(req.Title),
		Author:            strings.TrimSpace(req.Author),
		Genre:             req.Genre,
		Department:        req.Department,
		IsUsingDepartment: req.IsUsingDepartment,
		Publisher:         req.Publisher,
		PublicationYear:   req.PublicationYear,
		ISBN:              req.ISBN,
		Price:             req.Price,
		ShelfLocationID:   req.ShelfLocationID,
	}
	if err := s.normalizeClassification(&book); err != nil {
		return model.RegisterResult{}, err
	}
	if book.Price.IsNegative() {
		return model.RegisterResult{}, errs.Validation("price must not be negative")
	}

	var cover model.Cover
	switch s.coverMode {
	case CoverBlob:
		cover.Blob = req.CoverBlob
	default:
		cover.Path = req.CoverPath
	}

	id, err := s.repo.CreateBook(ctx, book, cover)
	if err != nil {
		return model.RegisterResult{}, errors.Wrap(err, "create book")
	}
	book.ID = id
	book.CoverPath = s.coverURL(id, cover.Path, len(cover.Blob) > 0)

	res := model.RegisterResult{Book: book, Copies: make([]model.BookCopy, 0, req.Quantity), Errors: []model.ItemError{}}
	for n := 1; n <= req.Quantity; n++ {
		c, err := s.repo.CreateCopy(ctx, model.BookCopy{
			BookID:     id,
			CopyNumber: n,
			QRPayload:  qrcode.Encode(id, n),
			Status:     model.ItemAvailable,
			Price:      book.Price,
		})
		if err != nil {
			s.log.Warn("create copy", zap.Int64("book_id", id), zap.Int("copy", n), zap.Error(err))
			res.Errors = append(res.Errors, model.ItemError{ItemID: int64(n), Code: qrcode.Encode(id, n), Error: err.Error()})
			continue
		}
		res.Copies = append(res.Copies, c)
	}
	return res, nil
}

func (s *Service) normalizeClassification(b *model.Book) error {
	if s.classification == ClassGenre {
		b.IsUsingDepartment = false
		b.Department = nil
	}
	if b.IsUsingDepartment {
		if b.Department == nil || strings.TrimSpace(*b.Department) == "" {
			return errs.Validation("department is required when is_using_department is set")
		}
		return nil
	}
	if b.Genre == nil || strings.TrimSpace(*b.Genre) == "" {
		return errs.Validation("genre is required")
	}
	return nil
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	if filter.Status != "" && !model.IsValidItemStatus(filter.Status) {
		return model.ListBooks{}, errs.Validation("unknown status " + filter.Status)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Size < 1 {
		filter.Size = defaultPageSize
	}
	if filter.Size > maxPageSize {
		filter.Size = maxPageSize
	}
	items, total, err := s.repo.ListCatalogBooks(ctx, filter)
	if err != nil {
		return model.ListBooks{}, err
	}
	for i := range items {
		items[i].Cover = s.coverURL(items[i].BookID, items[i].Cover, false)
	}
	return model.ListBooks{
		Paging: model.Paging{
			Page:          filter.Page,
			PageSize:      filter.Size,
			TotalElements: total,
		},
		Items: items,
	}, nil
}

func (s *Service) GetBook(ctx context.Context, id int64) (model.BookWithCopies, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.BookWithCopies{}, err
	}
	copies, err := s.repo.ListCopies(ctx, id)
	if err != nil {
		return model.BookWithCopies{}, err
	}
	book.CoverPath = s.coverURL(id, book.CoverPath, false)
	return model.BookWithCopies{Book: book, Copies: copies}, nil
}

func (s *Service) UpdateBook(ctx context.Context, id int64, req model.UpdateBookRequest) (model.Book, error) {
	book := model.Book{
		Title:             strings.TrimSpace(req.Title),
		Author:            strings.TrimSpace(req.Author),
		Genre:             req.Genre,
		Department:        req.Department,
		IsUsingDepartment: req.IsUsingDepartment,
		Publisher:         req.Publisher,
		PublicationYear:   req.PublicationYear,
		ISBN:              req.ISBN,
		Price:             req.Price,
		ShelfLocationID:   req.ShelfLocationID,
	}
	if err := s.normalizeClassification(&book); err != nil {
		return model.Book{}, err
	}
	updated, err := s.repo.UpdateBook(ctx, id, book)
	if err != nil {
		return model.Book{}, err
	}
	updated.CoverPath = s.coverURL(id, updated.CoverPath, false)
	return updated, nil
}

// RemoveBook soft-deletes every copy of the batch.
func (s *Service) RemoveBook(ctx context.Context, id int64) error {
	n, err := s.repo.SetBookCopiesStatus(ctx, id, model.ItemRemoved)
	if err != nil {
		return err
	}
	if n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (s *Service) SetCopyStatus(ctx context.Context, copyID int64, status string) (model.BookCopy, error) {
	if !model.IsValidItemStatus(status) {
		return model.BookCopy{}, errs.Validation("unknown status " + status)
	}
	return s.repo.SetCopyStatus(ctx, copyID, model.ItemStatus(status))
}

// ScanCopy resolves a scanned label to the single copy it identifies.
func (s *Service) ScanCopy(ctx context.Context, code string) (model.CatalogBook, error) {
	p, err := qrcode.Decode(code)
	if err != nil {
		return model.CatalogBook{}, errs.Validation("invalid QR code format")
	}
	c, err := s.repo.CopyByNumber(ctx, p.BookID, p.CopyNumber)
	if err != nil {
		return model.CatalogBook{}, err
	}
	c.Cover = s.coverURL(c.BookID, c.Cover, false)
	return c, nil
}

func (s *Service) BookCover(ctx context.Context, bookID int64) (model.Cover, error) {
	c, err := s.repo.BookCover(ctx, bookID)
	if err != nil {
		return model.Cover{}, err
	}
	if len(c.Blob) == 0 && c.Path == nil {
		return model.Cover{}, errors.Wrap(errs.ErrNotFound, "book has no cover")
	}
	if c.Path != nil {
		c.Path = s.coverURL(bookID, c.Path, false)
	}
	return c, nil
}

// coverURL makes stored image references absolute. In blob mode the image is
// served by this service.
func (s *Service) coverURL(bookID int64, path *string, hasBlob bool) *string {
	if s.coverMode == CoverBlob {
		if path == nil && !hasBlob {
			return nil
		}
		u := fmt.Sprintf("/api/books/%d/cover", bookID)
		return &u
	}
	if path == nil || *path == "" {
		return nil
	}
	p := *path
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") || s.uploadDomain == "" {
		return &p
	}
	u := strings.TrimRight(s.uploadDomain, "/") + "/" + strings.TrimLeft(p, "/")
	return &u
}
