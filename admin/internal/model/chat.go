package model

import "time"

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

type ChatRequest struct {
	Message   string `json:"message" validate:"required,max=2000"`
	SessionID string `json:"session_id"`
	UserID    *int64 `json:"user_id"`
}

type ChatSource string

const (
	SourceLLM      ChatSource = "llm"
	SourceTools    ChatSource = "tools"
	SourceFallback ChatSource = "fallback"
)

type ChatResponse struct {
	Reply     string     `json:"reply"`
	SessionID string     `json:"session_id"`
	Source    ChatSource `json:"source"`
	ToolsUsed []string   `json:"tools_used,omitempty"`
}

type ChatMessage struct {
	Role      ChatRole  `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// StreamChunk is one SSE payload.
type StreamChunk struct {
	Content   string `json:"content,omitempty"`
	Status    string `json:"status,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

type ChatStatus struct {
	LLMAvailable bool   `json:"llm_available"`
	Model        string `json:"model"`
	Breaker      string `json:"breaker"`
}

// Catalog rows returned by the chat tools.
type ResearchHit struct {
	ID              int64    `json:"id" db:"id"`
	Title           string   `json:"title" db:"title"`
	Abstract        *string  `json:"abstract" db:"abstract"`
	Department      *string  `json:"department" db:"department"`
	YearPublication *int     `json:"year_publication" db:"year_publication"`
	Status          string   `json:"status" db:"status"`
	Authors         []string `json:"authors" db:"authors"`
}

type PopularBook struct {
	BookID      int64   `json:"book_id" db:"book_id"`
	Title       string  `json:"title" db:"title"`
	Author      string  `json:"author" db:"author"`
	BorrowCount int64   `json:"borrow_count" db:"borrow_count"`
	Available   int64   `json:"available" db:"available"`
	Rating      float64 `json:"rating" db:"rating"`
}

type BorrowedItem struct {
	TransactionID int64     `json:"transaction_id" db:"transaction_id"`
	Title         string    `json:"title" db:"title"`
	ItemType      string    `json:"item_type" db:"item_type"`
	DueDate       time.Time `json:"due_date" db:"due_date"`
	Overdue       bool      `json:"overdue" db:"overdue"`
}

type HistoryItem struct {
	TransactionID   int64      `json:"transaction_id" db:"transaction_id"`
	Title           string     `json:"title" db:"title"`
	TransactionType string     `json:"transaction_type" db:"transaction_type"`
	TransactionDate time.Time  `json:"transaction_date" db:"transaction_date"`
	ReturnDate      *time.Time `json:"return_date" db:"return_date"`
	Status          string     `json:"status" db:"status"`
}

type Recommendation struct {
	Kind   string `json:"kind" db:"kind"`
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Basis  string `json:"basis" db:"basis"`
}
