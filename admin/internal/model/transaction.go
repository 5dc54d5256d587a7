package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionBorrow  TransactionType = "borrow"
	TransactionReturn  TransactionType = "return"
	TransactionReserve TransactionType = "reserve"
)

type TransactionStatus string

const (
	StatusBorrowed TransactionStatus = "Borrowed"
	StatusReturned TransactionStatus = "Returned"
)

type Transaction struct {
	ID              int64             `json:"id" db:"id"`
	Type            TransactionType   `json:"type" db:"transaction_type"`
	BookCopyID      *int64            `json:"book_copy_id" db:"book_copy_id"`
	ResearchPaperID *int64            `json:"research_paper_id" db:"research_paper_id"`
	UserID          int64             `json:"user_id" db:"user_id"`
	ReferenceNumber string            `json:"reference_number" db:"reference_number"`
	TransactionDate time.Time         `json:"transaction_date" db:"transaction_date"`
	DueDate         time.Time         `json:"due_date" db:"due_date"`
	ReturnDate      *time.Time        `json:"return_date" db:"return_date"`
	Status          TransactionStatus `json:"status" db:"status"`
	ReceiptImage    *string           `json:"receipt_image" db:"receipt_image"`
}

type ItemKind string

const (
	ItemCopy     ItemKind = "copy"
	ItemResearch ItemKind = "research"
)

// ItemRef names one lendable item. Copy and paper ids live in separate tables,
// so the kind is part of the identity. Its text form is "copy:12" or "research:4".
type ItemRef struct {
	Kind ItemKind
	ID   int64
}

func (r ItemRef) String() string {
	return string(r.Kind) + ":" + strconv.FormatInt(r.ID, 10)
}

func (r ItemRef) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *ItemRef) UnmarshalText(text []byte) error {
	ref, err := ParseItemRef(string(text))
	if err != nil {
		return err
	}
	*r = ref
	return nil
}

func ParseItemRef(raw string) (ItemRef, error) {
	kind, id, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return ItemRef{}, errors.Errorf("item %q must be copy:ID or research:ID", raw)
	}
	ref := ItemRef{Kind: ItemKind(strings.ToLower(strings.TrimSpace(kind)))}
	if ref.Kind != ItemCopy && ref.Kind != ItemResearch {
		return ItemRef{}, errors.Errorf("item %q has unknown kind", raw)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(id), 10, 64)
	if err != nil || n <= 0 {
		return ItemRef{}, errors.Errorf("item %q has invalid id", raw)
	}
	ref.ID = n
	return ref, nil
}

// Item is the copy or paper the transaction references.
func (t Transaction) Item() ItemRef {
	if t.BookCopyID != nil {
		return ItemRef{Kind: ItemCopy, ID: *t.BookCopyID}
	}
	if t.ResearchPaperID != nil {
		return ItemRef{Kind: ItemResearch, ID: *t.ResearchPaperID}
	}
	return ItemRef{}
}

// ReturnedOnTime is true when the item came back on or before the due date.
func (t Transaction) ReturnedOnTime() bool {
	if t.Status != StatusReturned || t.ReturnDate == nil {
		return false
	}
	return !dateOnly(*t.ReturnDate).After(dateOnly(t.DueDate))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type TransactionFilter struct {
	Status          string
	UserID          int64
	ReferenceNumber string
}

// OverdueCandidate is an active borrow considered by the sweep.
type OverdueCandidate struct {
	TransactionID   int64     `db:"transaction_id"`
	UserID          int64     `db:"user_id"`
	Role            *string   `db:"role"`
	TransactionDate time.Time `db:"transaction_date"`
	DueDate         time.Time `db:"due_date"`
}

type LostItem struct {
	TransactionID   int64             `db:"transaction_id"`
	UserID          int64             `db:"user_id"`
	Role            *string           `db:"role"`
	Status          TransactionStatus `db:"status"`
	TransactionDate time.Time         `db:"transaction_date"`
	BookCopyID      *int64            `db:"book_copy_id"`
	ResearchPaperID *int64            `db:"research_paper_id"`
	Price           decimal.Decimal   `db:"price"`
	Title           string            `db:"title"`
}

type MarkLostRequest struct {
	TransactionIDs []int64 `json:"transaction_ids" validate:"required,min=1"`
}

type BorrowRequest struct {
	UserID  int64    `json:"user_id" validate:"required"`
	QRCodes []string `json:"qr_codes" validate:"required,min=1"`
}

type BorrowResult struct {
	ReferenceNumber string        `json:"reference_number"`
	DueDate         time.Time     `json:"due_date"`
	Transactions    []Transaction `json:"transactions"`
	Errors          []ItemError   `json:"errors"`
}

type ReturnRequest struct {
	ReferenceNumber string    `json:"reference_number" form:"reference_number" validate:"required"`
	Items           []ItemRef `json:"items" form:"items" validate:"required,min=1"`
	ReceiptImage    string    `json:"-" form:"-"`
}

type ReturnResult struct {
	ReferenceNumber string        `json:"reference_number"`
	Returned        []Transaction `json:"returned"`
	ReceiptImage    string        `json:"receipt_image,omitempty"`
}

// Reminder is one row of the daily due/overdue notification queries.
type Reminder struct {
	TransactionID int64           `db:"transaction_id"`
	UserID        int64           `db:"user_id"`
	UserName      string          `db:"user_name"`
	Email         string          `db:"email"`
	ItemTitle     string          `db:"item_title"`
	DueDate       time.Time       `db:"due_date"`
	Fine          decimal.Decimal `db:"fine"`
}

// Upload is a file received from a multipart form.
type Upload struct {
	Name        string
	ContentType string
	Data        []byte
}
