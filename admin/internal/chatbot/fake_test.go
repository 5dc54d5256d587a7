package chatbot

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

type fakeLLM struct {
	mu       sync.Mutex
	replies  []Reply
	err      error
	requests []Request
	streams  int
}

func (f *fakeLLM) next(req Request) (Reply, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return Reply{}, f.err
	}
	i := len(f.requests) - 1
	if i >= len(f.replies) {
		i = len(f.replies) - 1
	}
	return f.replies[i], nil
}

func (f *fakeLLM) Generate(_ context.Context, req Request) (Reply, error) {
	return f.next(req)
}

// Stream emits the reply text in three-byte fragments.
func (f *fakeLLM) Stream(ctx context.Context, req Request, onText func(string) error) (Reply, error) {
	f.mu.Lock()
	f.streams++
	f.mu.Unlock()
	reply, err := f.next(req)
	if err != nil {
		return Reply{}, err
	}
	for text := reply.Text; text != ""; {
		n := 3
		if len(text) < n {
			n = len(text)
		}
		if err := onText(text[:n]); err != nil {
			return Reply{}, err
		}
		if err := ctx.Err(); err != nil {
			return Reply{}, err
		}
		text = text[n:]
	}
	return reply, nil
}

func (f *fakeLLM) Model() string {
	return "fake-model"
}

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeReader struct {
	books      []model.CatalogBook
	research   []model.ResearchHit
	history    []model.Recommendation
	department []model.Recommendation
	popular    []model.PopularBook
	borrowed   []model.BorrowedItem
	faqs       []model.FAQ
	rules      []model.Rule
	err        error

	mu      sync.Mutex
	queries []string
}

func (f *fakeReader) record(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
}

func (f *fakeReader) SearchBooks(_ context.Context, query string, _ int) ([]model.CatalogBook, error) {
	f.record("books:" + query)
	return f.books, f.err
}

func (f *fakeReader) BookAvailability(_ context.Context, bookID int64) ([]model.CatalogBook, error) {
	var out []model.CatalogBook
	for _, b := range f.books {
		if b.BookID == bookID {
			out = append(out, b)
		}
	}
	return out, f.err
}

func (f *fakeReader) SearchResearch(_ context.Context, query, author string, _ int) ([]model.ResearchHit, error) {
	f.record("research:" + query + "|" + author)
	return f.research, f.err
}

func (f *fakeReader) RecommendFromHistory(context.Context, int64, string, int) ([]model.Recommendation, error) {
	return f.history, f.err
}

func (f *fakeReader) RecommendByDepartment(context.Context, int64, string, int) ([]model.Recommendation, error) {
	return f.department, f.err
}

func (f *fakeReader) PopularBooks(_ context.Context, metric string, _ int) ([]model.PopularBook, error) {
	f.record("popular:" + metric)
	return f.popular, f.err
}

func (f *fakeReader) BorrowedItems(_ context.Context, userID int64) ([]model.BorrowedItem, error) {
	f.record("borrowed:" + strconv.FormatInt(userID, 10))
	return f.borrowed, f.err
}

func (f *fakeReader) TransactionHistory(_ context.Context, userID int64, _ int) ([]model.HistoryItem, error) {
	f.record("history:" + strconv.FormatInt(userID, 10))
	return nil, f.err
}

func (f *fakeReader) Categories(context.Context) ([]string, error) {
	return []string{"Fiction", "Science"}, f.err
}

func (f *fakeReader) ListFAQs(context.Context) ([]model.FAQ, error) {
	return f.faqs, f.err
}

func (f *fakeReader) ListRules(context.Context) ([]model.Rule, error) {
	return f.rules, f.err
}

var errBackend = errors.New("backend down")

func ptr[T any](v T) *T {
	return &v
}
