package service

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/qrcode"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Borrow checks out every scanned item under one shared reference number.
// Due date follows the borrower's role.
func (s *Service) Borrow(ctx context.Context, req model.BorrowRequest) (model.BorrowResult, error) {
	user, err := s.repo.GetUser(ctx, req.UserID)
	if err != nil {
		return model.BorrowResult{}, errors.Wrap(err, "borrower")
	}
	settings, err := s.repo.Settings(ctx)
	if err != nil {
		settings = model.DefaultFineSettings()
	}
	_, days := settings.ForRole(user.Role)

	now := s.now()
	res := model.BorrowResult{
		ReferenceNumber: referenceNumber(now.Format("20060102")),
		DueDate:         now.AddDate(0, 0, days),
		Transactions:    []model.Transaction{},
		Errors:          []model.ItemError{},
	}
	for i, code := range req.QRCodes {
		tx := model.Transaction{
			Type:            model.TransactionBorrow,
			UserID:          user.ID,
			ReferenceNumber: res.ReferenceNumber,
			TransactionDate: now,
			DueDate:         res.DueDate,
			Status:          model.StatusBorrowed,
		}
		if err := s.resolveItem(ctx, code, &tx); err != nil {
			res.Errors = append(res.Errors, model.ItemError{ItemID: int64(i + 1), Code: code, Error: err.Error()})
			continue
		}
		created, err := s.repo.BorrowItem(ctx, tx)
		if err != nil {
			s.log.Warn("borrow item", zap.String("code", code), zap.Error(err))
			res.Errors = append(res.Errors, model.ItemError{ItemID: tx.Item().ID, Code: code, Error: err.Error()})
			continue
		}
		res.Transactions = append(res.Transactions, created)
	}
	if len(res.Transactions) == 0 {
		return res, errors.Wrap(errs.ErrUnavailable, "no item could be borrowed")
	}
	return res, nil
}

func (s *Service) resolveItem(ctx context.Context, code string, tx *model.Transaction) error {
	if id, err := qrcode.DecodeResearch(code); err == nil {
		tx.ResearchPaperID = &id
		return nil
	}
	p, err := qrcode.Decode(code)
	if err != nil {
		return err
	}
	c, err := s.repo.CopyByNumber(ctx, p.BookID, p.CopyNumber)
	if err != nil {
		return err
	}
	tx.BookCopyID = &c.CopyID
	return nil
}

// Return accepts exactly the set of items still out under the reference.
// Any unpaid penalty on those transactions blocks the whole return.
func (s *Service) Return(ctx context.Context, req model.ReturnRequest, receipt *model.Upload) (model.ReturnResult, error) {
	active, err := s.repo.ActiveByReference(ctx, req.ReferenceNumber)
	if err != nil {
		return model.ReturnResult{}, err
	}
	if len(active) == 0 {
		return model.ReturnResult{}, errors.Wrap(errs.ErrNotFound, "no active items for reference")
	}

	expected := make([]model.ItemRef, 0, len(active))
	txIDs := make([]int64, 0, len(active))
	for _, t := range active {
		expected = append(expected, t.Item())
		txIDs = append(txIDs, t.ID)
	}
	if !sameSet(expected, req.Items) {
		return model.ReturnResult{}, &errs.MismatchError{Expected: sortedRefs(expected), Provided: sortedRefs(req.Items)}
	}

	unpaid, err := s.repo.UnpaidPenaltyIDs(ctx, txIDs)
	if err != nil {
		return model.ReturnResult{}, err
	}
	if len(unpaid) > 0 {
		return model.ReturnResult{}, &errs.UnpaidError{PenaltyIDs: unpaid}
	}

	var stored *string
	if receipt != nil && len(receipt.Data) > 0 {
		ref, err := s.storeReceipt(ctx, req.ReferenceNumber, receipt)
		if err != nil {
			return model.ReturnResult{}, err
		}
		stored = &ref
	}

	returned, err := s.repo.ReturnItems(ctx, txIDs, s.now(), stored)
	if err != nil {
		return model.ReturnResult{}, err
	}
	res := model.ReturnResult{ReferenceNumber: req.ReferenceNumber, Returned: returned}
	if stored != nil {
		res.ReceiptImage = *stored
	}
	return res, nil
}

// ReplaceReceipt swaps the receipt image of an already processed reference.
func (s *Service) ReplaceReceipt(ctx context.Context, reference string, receipt *model.Upload) (string, error) {
	if receipt == nil || len(receipt.Data) == 0 {
		return "", errs.Validation("receipt image is required")
	}
	ref, err := s.storeReceipt(ctx, reference, receipt)
	if err != nil {
		return "", err
	}
	n, err := s.repo.SetReceipt(ctx, reference, ref)
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", errors.Wrap(errs.ErrNotFound, "unknown reference")
	}
	return ref, nil
}

// storeReceipt stamps the image and saves it. A failed stamp keeps the original.
func (s *Service) storeReceipt(ctx context.Context, reference string, receipt *model.Upload) (string, error) {
	if s.receipts == nil {
		return "", errors.New("receipt storage is not configured")
	}
	data := receipt.Data
	if s.stamper != nil {
		stamped, err := s.stamper.Stamp(data)
		if err != nil {
			s.log.Warn("stamp receipt, keeping original", zap.String("reference", reference), zap.Error(err))
		} else {
			data = stamped
		}
	}
	ext := strings.ToLower(filepath.Ext(receipt.Name))
	if ext == "" {
		ext = ".png"
	}
	name := fmt.Sprintf("%s-%d%s", sanitize(reference), s.now().UnixNano(), ext)
	ref, err := s.receipts.Save(ctx, name, data)
	if err != nil {
		return "", errors.Wrap(err, "save receipt")
	}
	return ref, nil
}

func (s *Service) ListTransactions(ctx context.Context, filter model.TransactionFilter) ([]model.Transaction, error) {
	switch model.TransactionStatus(filter.Status) {
	case "", model.StatusBorrowed, model.StatusReturned:
	default:
		return nil, errs.Validation("unknown status " + filter.Status)
	}
	return s.repo.ListTransactions(ctx, filter)
}

func referenceNumber(day string) string {
	return "TXN-" + day + "-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, s)
}

func sameSet(a, b []model.ItemRef) bool {
	set := make(map[model.ItemRef]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	seen := make(map[model.ItemRef]struct{}, len(b))
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
		seen[v] = struct{}{}
	}
	return len(seen) == len(set)
}

// sortedRefs renders refs in their text form, copies before papers.
func sortedRefs(refs []model.ItemRef) []string {
	sorted := append([]model.ItemRef{}, refs...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Kind != sorted[j].Kind {
			return sorted[i].Kind < sorted[j].Kind
		}
		return sorted[i].ID < sorted[j].ID
	})
	out := make([]string, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, r.String())
	}
	return out
}
