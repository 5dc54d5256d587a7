package chatbot

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

// SessionStore keeps conversation history per session id.
type SessionStore interface {
	History(ctx context.Context, sessionID string, limit int) ([]model.ChatMessage, error)
	Append(ctx context.Context, sessionID string, msgs ...model.ChatMessage) error
	Clear(ctx context.Context, sessionID string) error
	Trim(ctx context.Context, sessionID string, keep int) error
	// Expire drops sessions idle since before and reports how many messages went.
	Expire(ctx context.Context, before time.Time) (int64, error)
}

type memorySession struct {
	msgs    []model.ChatMessage
	touched time.Time
}

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*memorySession
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memorySession), now: time.Now}
}

func (m *MemoryStore) History(_ context.Context, sessionID string, limit int) ([]model.ChatMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, nil
	}
	msgs := s.msgs
	if limit > 0 && len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return append([]model.ChatMessage(nil), msgs...), nil
}

func (m *MemoryStore) Append(_ context.Context, sessionID string, msgs ...model.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[sessionID]
	if !ok {
		s = &memorySession{}
		m.sessions[sessionID] = s
	}
	now := m.now()
	for _, msg := range msgs {
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = now
		}
		s.msgs = append(s.msgs, msg)
	}
	s.touched = now
	return nil
}

func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

func (m *MemoryStore) Trim(_ context.Context, sessionID string, keep int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok && len(s.msgs) > keep {
		s.msgs = append([]model.ChatMessage(nil), s.msgs[len(s.msgs)-keep:]...)
	}
	return nil
}

func (m *MemoryStore) Expire(_ context.Context, before time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for id, s := range m.sessions {
		if s.touched.Before(before) {
			n += int64(len(s.msgs))
			delete(m.sessions, id)
		}
	}
	return n, nil
}
