package chatbot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/circuit_breaker"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestRouter(llm LLM, reader *fakeReader, opts ...Option) (*Router, *MemoryStore) {
	store := NewMemoryStore()
	cfg := Config{
		MaxIterations:      3,
		SimpleMessageLen:   20,
		SessionMaxMessages: 4,
		StreamDebounce:     5 * time.Millisecond,
		StreamKeepAlive:    time.Hour,
	}
	if llm == nil {
		return NewRouter(nil, reader, store, cfg, zap.NewNop(), opts...), store
	}
	return NewRouter(llm, reader, store, cfg, zap.NewNop(), opts...), store
}

func TestRouter_Chat(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		llm        *fakeLLM
		reader     *fakeReader
		msg        string
		wantReply  string
		wantSource model.ChatSource
		wantTools  []string
		wantCalls  int
	}{
		{
			name:       "tool results are formatted, model text dropped",
			llm:        &fakeLLM{replies: []Reply{{Calls: []Call{{Name: ToolSearchBooks, Args: map[string]any{"query": "dune"}}}}, {Text: "Dune and The Hobbit are available"}}},
			reader:     &fakeReader{books: catalog[:2]},
			msg:        "do you have the book dune?",
			wantReply:  "Books found:\n- Dune by Frank Herbert (Fiction): 1 of 2 copies available, shelf 2 B3",
			wantSource: model.SourceTools,
			wantTools:  []string{ToolSearchBooks},
			wantCalls:  2,
		},
		{
			name:       "empty search falls back to popular books",
			llm:        &fakeLLM{replies: []Reply{{Calls: []Call{{Name: ToolSearchBooks, Args: map[string]any{"query": "zzz"}}}}, {Text: "Try The Invented Book"}}},
			reader:     &fakeReader{popular: []model.PopularBook{{Title: "Emma", Author: "Jane Austen", BorrowCount: 4, Available: 1}}},
			msg:        "do you have the book zzz?",
			wantReply:  popularPrefix + "\n\nPopular books:\n- Emma by Jane Austen: borrowed 4 times, 1 available",
			wantSource: model.SourceTools,
			wantTools:  []string{ToolSearchBooks},
			wantCalls:  2,
		},
		{
			name:       "empty search and no popular books",
			llm:        &fakeLLM{replies: []Reply{{Calls: []Call{{Name: ToolSearchBooks}}}, {Text: "Try The Invented Book"}}},
			reader:     &fakeReader{},
			msg:        "do you have the book zzz?",
			wantReply:  noResultsMessage,
			wantSource: model.SourceTools,
			wantTools:  []string{ToolSearchBooks},
			wantCalls:  2,
		},
		{
			name:       "iteration cap",
			llm:        &fakeLLM{replies: []Reply{{Calls: []Call{{Name: ToolListRules}}}}},
			reader:     &fakeReader{rules: []model.Rule{{Title: "Silence", Description: "Keep quiet."}}},
			msg:        "what are the library rules?",
			wantReply:  strings.Repeat("Library rules:\n- Silence: Keep quiet.\n\n", 2) + "Library rules:\n- Silence: Keep quiet.",
			wantSource: model.SourceTools,
			wantTools:  []string{ToolListRules, ToolListRules, ToolListRules},
			wantCalls:  3,
		},
		{
			name:       "tool call written as text",
			llm:        &fakeLLM{replies: []Reply{{Text: `{"name":"list_rules","args":{}}`}, {Text: "done"}}},
			reader:     &fakeReader{rules: []model.Rule{{Title: "Silence", Description: "Keep quiet."}}},
			msg:        "what are the library rules?",
			wantReply:  "Library rules:\n- Silence: Keep quiet.",
			wantSource: model.SourceTools,
			wantTools:  []string{ToolListRules},
			wantCalls:  2,
		},
		{
			name:       "plain answer",
			llm:        &fakeLLM{replies: []Reply{{Text: "We are on the second floor."}}},
			reader:     &fakeReader{},
			msg:        "where can I find the borrowing desk?",
			wantReply:  "We are on the second floor.",
			wantSource: model.SourceLLM,
			wantCalls:  1,
		},
		{
			name:       "research intent skips the model",
			llm:        &fakeLLM{replies: []Reply{{Text: "invented paper"}}},
			reader:     &fakeReader{research: []model.ResearchHit{{Title: "Soil Health", Status: "Available", Authors: []string{"Ana Lee"}}}},
			msg:        "find research papers about soil by Ana Lee",
			wantReply:  "Research papers:\n- Soil Health by Ana Lee",
			wantSource: model.SourceTools,
			wantTools:  []string{ToolSearchResearch},
			wantCalls:  0,
		},
		{
			name:       "backend down uses rule-based responder",
			llm:        &fakeLLM{err: errBackend},
			reader:     &fakeReader{},
			msg:        "what are the opening hours of the library building?",
			wantReply:  "The library is open Monday to Friday, 8:00 to 17:00. Please check the rules page for holiday schedules.",
			wantSource: model.SourceFallback,
			wantCalls:  1,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, _ := newTestRouter(tt.llm, tt.reader)
			resp, err := r.Chat(context.Background(), model.ChatRequest{Message: tt.msg, SessionID: "s1"})
			require.NoError(t, err)
			require.Equal(t, tt.wantReply, resp.Reply)
			require.Equal(t, tt.wantSource, resp.Source)
			require.Equal(t, tt.wantTools, resp.ToolsUsed)
			require.Equal(t, "s1", resp.SessionID)
			require.Equal(t, tt.wantCalls, tt.llm.calls())
		})
	}
}

func TestRouter_ResearchQueryAndAuthor(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{}
	r, _ := newTestRouter(nil, reader)
	_, err := r.Chat(context.Background(), model.ChatRequest{Message: "find research papers about soil by Ana Lee"})
	require.NoError(t, err)
	require.Equal(t, []string{"research:soil|Ana Lee", "popular:most_borrowed"}, reader.queries)
}

func TestRouter_OwnRecordsNeedCaller(t *testing.T) {
	t.Parallel()
	forged := []Reply{
		{Text: `{"name":"get_transaction_history","args":{"user_id":5}}`},
		{Calls: []Call{{Name: ToolBorrowedItems, Args: map[string]any{"user_id": 5}}}},
		{Text: "done"},
	}

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		reader := &fakeReader{}
		r, _ := newTestRouter(&fakeLLM{replies: forged}, reader)
		resp, err := r.Chat(context.Background(), model.ChatRequest{Message: "show the transaction history of user 5"})
		require.NoError(t, err)
		require.Equal(t, model.SourceTools, resp.Source)
		require.Equal(t, "Please sign in to see your own library records.\n\nPlease sign in to see your own library records.", resp.Reply)
		require.Empty(t, reader.queries)
	})

	t.Run("signed in user keeps own id", func(t *testing.T) {
		t.Parallel()
		reader := &fakeReader{}
		r, _ := newTestRouter(&fakeLLM{replies: forged}, reader)
		_, err := r.Chat(context.Background(), model.ChatRequest{Message: "show my transaction history", UserID: ptr(int64(9))})
		require.NoError(t, err)
		require.Equal(t, []string{"history:9", "borrowed:9"}, reader.queries)
	})
}

func TestRouter_SimpleMessage(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{replies: []Reply{{Text: "Hi!"}}}
	r, store := newTestRouter(llm, &fakeReader{})

	resp, err := r.Chat(context.Background(), model.ChatRequest{Message: "hello", SessionID: "s1"})
	require.NoError(t, err)
	require.Equal(t, "Hi!", resp.Reply)
	require.Equal(t, int32(150), llm.requests[0].MaxOutput)
	require.False(t, llm.requests[0].Tools)

	history, err := store.History(context.Background(), "s1", 0)
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestRouter_HistoryKeptAndTrimmed(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{replies: []Reply{{Text: "answer"}}}
	r, _ := newTestRouter(llm, &fakeReader{})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := r.Chat(ctx, model.ChatRequest{Message: "where can I find the front desk?", SessionID: "s1"})
		require.NoError(t, err)
	}
	history, err := r.History(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, history, 4)
	require.Equal(t, model.ChatRoleUser, history[0].Role)

	// the third request carried the previous exchanges
	require.Len(t, llm.requests[2].Messages, 5)

	require.NoError(t, r.ClearHistory(ctx, "s1"))
	history, err = r.History(ctx, "s1")
	require.NoError(t, err)
	require.Empty(t, history)
}

func TestRouter_NewSession(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(nil, &fakeReader{})
	resp, err := r.Chat(context.Background(), model.ChatRequest{Message: "hello"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.SessionID)
	require.Equal(t, model.SourceFallback, resp.Source)

	_, err = r.Chat(context.Background(), model.ChatRequest{Message: "   "})
	require.Error(t, err)
}

func TestRouter_BreakerOpens(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{err: errBackend}
	r, _ := newTestRouter(llm, &fakeReader{}, WithBreaker(circuit_breaker.New(1, time.Hour, 1, 1)))
	require.True(t, r.Status().LLMAvailable)

	_, err := r.Chat(context.Background(), model.ChatRequest{Message: "where can I find the front desk?"})
	require.NoError(t, err)
	st := r.Status()
	require.False(t, st.LLMAvailable)
	require.Equal(t, "open", st.Breaker)
	require.Equal(t, "fake-model", st.Model)

	_, err = r.Chat(context.Background(), model.ChatRequest{Message: "where can I find the front desk?"})
	require.NoError(t, err)
	require.Equal(t, 1, llm.calls())
}

func TestRouter_FallbackError(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(nil, &fakeReader{err: errBackend})
	_, err := r.Chat(context.Background(), model.ChatRequest{Message: "what are the rules?"})
	require.ErrorIs(t, err, errBackend)
}

func TestResponder_Order(t *testing.T) {
	t.Parallel()
	resp := NewResponder(NewExecutor(&fakeReader{}, zap.NewNop()))
	tests := map[string]string{
		"hello!":                          "greeting",
		"recommend a research paper":      "research",
		"recommend me something":          "recommend",
		"can I borrow a laptop?":          "borrow",
		"what are my borrowed books":      "borrowed",
		"search for clean code":           "book_search",
		"how much is the fine per day":    "penalties",
		"thank you so much":               "thanks",
		"what can you do":                 "help",
		"tell me about quantum mechanics": "",
	}
	for msg, want := range tests {
		assert.Equal(t, want, resp.Intent(msg), msg)
	}
}

func TestResponder_ResearchRecommendation(t *testing.T) {
	t.Parallel()
	reader := &fakeReader{research: []model.ResearchHit{{ID: 4, Title: "Soil Health", Authors: []string{"Ana Lee"}}}}
	resp := NewResponder(NewExecutor(reader, zap.NewNop()))
	text, err := resp.Respond(context.Background(), "recommend a research paper", nil)
	require.NoError(t, err)
	require.Equal(t, "You might like:\n- Soil Health by Ana Lee", text)
}

func TestRouter_Stream(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{replies: []Reply{{Text: "We are on the second floor."}}}
	r, _ := newTestRouter(llm, &fakeReader{})

	var chunks []model.StreamChunk
	err := r.Stream(context.Background(), model.ChatRequest{Message: "where can I find the front desk?", SessionID: "s1"},
		func(c model.StreamChunk) error {
			chunks = append(chunks, c)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, model.StreamChunk{Status: StatusThinking, SessionID: "s1"}, chunks[0])
	require.Equal(t, model.StreamChunk{Status: StatusDone, SessionID: "s1"}, chunks[len(chunks)-1])
	require.Equal(t, "We are on the second floor.", content(chunks))
	require.Equal(t, 1, llm.streams)
}

func TestRouter_StreamSuppressesToolJSON(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{replies: []Reply{
		{Text: `{"name": "search_books", "args": {"query": "dune"}}`},
		{Text: "Dune and The Hobbit"},
	}}
	r, _ := newTestRouter(llm, &fakeReader{books: catalog[:2]})

	var chunks []model.StreamChunk
	err := r.Stream(context.Background(), model.ChatRequest{Message: "do you have the book dune?"},
		func(c model.StreamChunk) error {
			chunks = append(chunks, c)
			return nil
		})
	require.NoError(t, err)
	require.Equal(t, "Books found:\n- Dune by Frank Herbert (Fiction): 1 of 2 copies available, shelf 2 B3", content(chunks))
	require.Contains(t, chunks, model.StreamChunk{Status: StatusTools})
	require.Equal(t, 1, llm.streams)
}

func TestRouter_StreamClientGone(t *testing.T) {
	t.Parallel()
	llm := &fakeLLM{replies: []Reply{{Text: strings.Repeat("long answer ", 50)}}}
	r, _ := newTestRouter(llm, &fakeReader{})
	errGone := errors.New("client gone")

	err := r.Stream(context.Background(), model.ChatRequest{Message: "where can I find the front desk?"},
		func(c model.StreamChunk) error {
			if c.Content != "" {
				return errGone
			}
			return nil
		})
	require.ErrorIs(t, err, errGone)
	require.True(t, r.Status().LLMAvailable)
}

func content(chunks []model.StreamChunk) string {
	var b strings.Builder
	for _, c := range chunks {
		b.WriteString(c.Content)
	}
	return b.String()
}
