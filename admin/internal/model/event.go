package model

import "time"

type EventType string

const (
	EventPenaltyWaived       EventType = "penalty_waived"
	EventPenaltyPaid         EventType = "penalty_paid"
	EventItemLost            EventType = "item_lost"
	EventDueReminder         EventType = "due_reminder"
	EventOverdueNotice       EventType = "overdue_notice"
	EventReservationApproved EventType = "reservation_approved"
	EventReservationRejected EventType = "reservation_rejected"
)

// Event is a user-facing notification; UserID 0 with Broadcast set goes to every connected client.
type Event struct {
	Type      EventType      `json:"type"`
	UserID    int64          `json:"user_id"`
	Broadcast bool           `json:"broadcast"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
