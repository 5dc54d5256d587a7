package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type PenaltyStatus string

const (
	PenaltyPending PenaltyStatus = "Pending Payment"
	PenaltyPaid    PenaltyStatus = "Paid"
	PenaltyWaived  PenaltyStatus = "Waived"
)

type Penalty struct {
	ID            int64           `json:"id" db:"id"`
	TransactionID int64           `json:"transaction_id" db:"transaction_id"`
	UserID        int64           `json:"user_id" db:"user_id"`
	Fine          decimal.Decimal `json:"fine" db:"fine"`
	Status        *string         `json:"status" db:"status"`
	WaiveReason   *string         `json:"waive_reason,omitempty" db:"waive_reason"`
	WaivedBy      *string         `json:"waived_by,omitempty" db:"waived_by"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

// EffectiveStatus maps a NULL status to pending.
func (p Penalty) EffectiveStatus() PenaltyStatus {
	if p.Status == nil || *p.Status == "" {
		return PenaltyPending
	}
	return PenaltyStatus(*p.Status)
}

// Settled penalties are never touched by automated recomputation.
func (p Penalty) Settled() bool {
	s := p.EffectiveStatus()
	return s == PenaltyPaid || s == PenaltyWaived
}

type PenaltyDetail struct {
	Penalty         `json:",inline"`
	UserName        string     `json:"user_name" db:"user_name"`
	Email           *string    `json:"email" db:"email"`
	ItemTitle       string     `json:"item_title" db:"item_title"`
	TransactionDate time.Time  `json:"transaction_date" db:"transaction_date"`
	DueDate         time.Time  `json:"due_date" db:"due_date"`
	ReturnDate      *time.Time `json:"return_date" db:"return_date"`
}

type PenaltyFilter struct {
	Status string
	UserID int64
}

type UpsertAction string

const (
	ActionCreated UpsertAction = "created"
	ActionUpdated UpsertAction = "updated"
	ActionSkipped UpsertAction = "skipped"
)

type UpsertResult struct {
	Action    UpsertAction `json:"action"`
	PenaltyID int64        `json:"penalty_id,omitempty"`
	Message   string       `json:"message"`
}

func (r UpsertResult) Skipped() bool { return r.Action == ActionSkipped }

type ItemError struct {
	ItemID int64  `json:"item_id"`
	Code   string `json:"code,omitempty"`
	Error  string `json:"error"`
}

type BatchReport struct {
	Processed int         `json:"processed"`
	Created   int         `json:"created"`
	Updated   int         `json:"updated"`
	Skipped   int         `json:"skipped"`
	Failed    int         `json:"failed"`
	Errors    []ItemError `json:"errors"`
}

func (r *BatchReport) Add(res UpsertResult) {
	r.Processed++
	switch res.Action {
	case ActionCreated:
		r.Created++
	case ActionUpdated:
		r.Updated++
	default:
		r.Skipped++
	}
}

func (r *BatchReport) Fail(id int64, err error) {
	r.Processed++
	r.Failed++
	r.Errors = append(r.Errors, ItemError{ItemID: id, Error: err.Error()})
}

type CleanupReport struct {
	OnTimeRemoved    int64 `json:"on_time_removed"`
	DuplicateRemoved int64 `json:"duplicate_removed"`
}

type PaymentInfo struct {
	Method string `json:"method"`
	Admin  string `json:"admin"`
	Note   string `json:"note"`
}

type PayResult struct {
	Penalty     Penalty `json:"penalty"`
	AlreadyPaid bool    `json:"already_paid"`
}

type PenaltySummary struct {
	UnpaidCount  int64           `json:"unpaid_count" db:"unpaid_count"`
	UnpaidTotal  decimal.Decimal `json:"unpaid_total" db:"unpaid_total"`
	OverdueCount int64           `json:"overdue_count" db:"overdue_count"`
	PaidCount    int64           `json:"paid_count" db:"paid_count"`
	PaidTotal    decimal.Decimal `json:"paid_total" db:"paid_total"`
	WaivedCount  int64           `json:"waived_count" db:"waived_count"`
	Recent7Days  int64           `json:"recent_7_days" db:"recent_7_days"`
	Recent30Days int64           `json:"recent_30_days" db:"recent_30_days"`
}

type AuditEntry struct {
	PenaltyID int64          `json:"penalty_id"`
	Action    string         `json:"action"`
	Actor     string         `json:"actor"`
	Details   map[string]any `json:"details"`
}
