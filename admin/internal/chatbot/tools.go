package chatbot

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const (
	ToolSearchBooks        = "search_books"
	ToolBookAvailability   = "get_book_availability"
	ToolSearchResearch     = "search_research_papers"
	ToolRecommend          = "recommend"
	ToolListFAQs           = "list_faqs"
	ToolListRules          = "list_rules"
	ToolPopularBooks       = "popular_books"
	ToolBorrowedItems      = "get_borrowed_items"
	ToolTransactionHistory = "get_transaction_history"
	ToolCategories         = "list_categories"
)

const (
	defaultLimit = 10
	maxLimit     = 25
)

var errNoUser = errors.New("this lookup needs a signed-in user")

// CatalogReader is the read-only data behind the tools.
type CatalogReader interface {
	SearchBooks(ctx context.Context, query string, limit int) ([]model.CatalogBook, error)
	BookAvailability(ctx context.Context, bookID int64) ([]model.CatalogBook, error)
	SearchResearch(ctx context.Context, query, author string, limit int) ([]model.ResearchHit, error)
	RecommendFromHistory(ctx context.Context, userID int64, kind string, limit int) ([]model.Recommendation, error)
	RecommendByDepartment(ctx context.Context, userID int64, kind string, limit int) ([]model.Recommendation, error)
	PopularBooks(ctx context.Context, metric string, limit int) ([]model.PopularBook, error)
	BorrowedItems(ctx context.Context, userID int64) ([]model.BorrowedItem, error)
	TransactionHistory(ctx context.Context, userID int64, limit int) ([]model.HistoryItem, error)
	Categories(ctx context.Context) ([]string, error)
	ListFAQs(ctx context.Context) ([]model.FAQ, error)
	ListRules(ctx context.Context) ([]model.Rule, error)
}

type Call struct {
	ID   string
	Name string
	Args map[string]any
}

type Result struct {
	Call  Call
	Data  any
	Count int
	Err   error
}

// Response is the payload handed back to the model for this result.
func (r Result) Response() map[string]any {
	if r.Err != nil {
		return map[string]any{"error": r.Err.Error()}
	}
	return map[string]any{"count": r.Count, "results": r.Data}
}

func (r Result) String() string {
	data, _ := json.Marshal(r.Response()) //nolint:errcheck
	return string(data)
}

type Executor struct {
	reader CatalogReader
	log    *zap.Logger
}

func NewExecutor(reader CatalogReader, log *zap.Logger) *Executor {
	return &Executor{reader: reader, log: log.Named("tools")}
}

// RunAll executes the calls concurrently and returns results in call order.
// A failing tool yields a Result with Err set; it never aborts the others.
func (e *Executor) RunAll(ctx context.Context, calls []Call, userID *int64) []Result {
	results := make([]Result, len(calls))
	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		i, call := i, call
		g.Go(func() error {
			results[i] = e.Run(gctx, call, userID)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (e *Executor) Run(ctx context.Context, call Call, userID *int64) Result {
	res := Result{Call: call}
	var err error
	switch call.Name {
	case ToolSearchBooks:
		var rows []model.CatalogBook
		rows, err = e.reader.SearchBooks(ctx, argString(call.Args, "query"), argLimit(call.Args))
		res.Data, res.Count = rows, len(groupBooks(rows))
	case ToolBookAvailability:
		id, ok := argInt(call.Args, "book_id")
		if !ok {
			err = errors.New("book_id is required")
			break
		}
		var rows []model.CatalogBook
		rows, err = e.reader.BookAvailability(ctx, id)
		res.Data, res.Count = rows, len(rows)
	case ToolSearchResearch:
		var rows []model.ResearchHit
		rows, err = e.reader.SearchResearch(ctx, argString(call.Args, "query"), argString(call.Args, "author"), argLimit(call.Args))
		res.Data, res.Count = rows, len(rows)
	case ToolRecommend:
		var rows []model.Recommendation
		rows, err = e.recommend(ctx, argString(call.Args, "kind"), userID, argLimit(call.Args))
		res.Data, res.Count = rows, len(rows)
	case ToolListFAQs:
		var rows []model.FAQ
		rows, err = e.reader.ListFAQs(ctx)
		res.Data, res.Count = rows, len(rows)
	case ToolListRules:
		var rows []model.Rule
		rows, err = e.reader.ListRules(ctx)
		res.Data, res.Count = rows, len(rows)
	case ToolPopularBooks:
		var rows []model.PopularBook
		rows, err = e.reader.PopularBooks(ctx, popularMetric(argString(call.Args, "metric")), argLimit(call.Args))
		res.Data, res.Count = rows, len(rows)
	case ToolBorrowedItems:
		if userID == nil {
			err = errNoUser
			break
		}
		var rows []model.BorrowedItem
		rows, err = e.reader.BorrowedItems(ctx, *userID)
		res.Data, res.Count = rows, len(rows)
	case ToolTransactionHistory:
		if userID == nil {
			err = errNoUser
			break
		}
		var rows []model.HistoryItem
		rows, err = e.reader.TransactionHistory(ctx, *userID, argLimit(call.Args))
		res.Data, res.Count = rows, len(rows)
	case ToolCategories:
		var rows []string
		rows, err = e.reader.Categories(ctx)
		res.Data, res.Count = rows, len(rows)
	default:
		err = errors.Errorf("unknown tool %q", call.Name)
	}
	if err != nil {
		e.log.Warn("tool failed", zap.String("tool", call.Name), zap.Error(err))
		res.Err = err
		res.Data, res.Count = nil, 0
	}
	return res
}

// recommend walks history, then department, then global popularity.
func (e *Executor) recommend(ctx context.Context, kind string, userID *int64, limit int) ([]model.Recommendation, error) {
	if kind != "research" {
		kind = "book"
	}
	if userID != nil {
		recs, err := e.reader.RecommendFromHistory(ctx, *userID, kind, limit)
		if err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return recs, nil
		}
		if recs, err = e.reader.RecommendByDepartment(ctx, *userID, kind, limit); err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return recs, nil
		}
	}
	if kind == "research" {
		hits, err := e.reader.SearchResearch(ctx, "", "", limit)
		if err != nil {
			return nil, err
		}
		recs := make([]model.Recommendation, 0, len(hits))
		for _, h := range hits {
			recs = append(recs, model.Recommendation{Kind: kind, ID: h.ID, Title: h.Title, Author: joinAuthors(h.Authors), Basis: "recent"})
		}
		return recs, nil
	}
	books, err := e.reader.PopularBooks(ctx, "most_borrowed", limit)
	if err != nil {
		return nil, err
	}
	recs := make([]model.Recommendation, 0, len(books))
	for _, b := range books {
		recs = append(recs, model.Recommendation{Kind: kind, ID: b.BookID, Title: b.Title, Author: b.Author, Basis: "popular"})
	}
	return recs, nil
}

func popularMetric(m string) string {
	switch m {
	case "highest_rated", "recently_added":
		return m
	}
	return "most_borrowed"
}

func argString(args map[string]any, key string) string {
	v, _ := args[key].(string) //nolint:errcheck
	return strings.TrimSpace(v)
}

func argInt(args map[string]any, key string) (int64, bool) {
	switch v := args[key].(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func argLimit(args map[string]any) int {
	n, ok := argInt(args, "limit")
	if !ok || n <= 0 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return int(n)
}

// Declarations describes the tools for function calling.
func Declarations() []*genai.FunctionDeclaration {
	str := func(desc string) *genai.Schema { return &genai.Schema{Type: genai.TypeString, Description: desc} }
	num := func(desc string) *genai.Schema { return &genai.Schema{Type: genai.TypeInteger, Description: desc} }
	obj := func(props map[string]*genai.Schema, required ...string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeObject, Properties: props, Required: required}
	}
	return []*genai.FunctionDeclaration{
		{
			Name:        ToolSearchBooks,
			Description: "Search the book catalog by title, author, genre, department or ISBN.",
			Parameters:  obj(map[string]*genai.Schema{"query": str("search text"), "limit": num("max results")}, "query"),
		},
		{
			Name:        ToolBookAvailability,
			Description: "Get copy-level availability and shelf location of one book.",
			Parameters:  obj(map[string]*genai.Schema{"book_id": num("book id")}, "book_id"),
		},
		{
			Name:        ToolSearchResearch,
			Description: "Search research papers by topic and/or author.",
			Parameters: obj(map[string]*genai.Schema{
				"query": str("topic or title words"), "author": str("author name"), "limit": num("max results"),
			}),
		},
		{
			Name:        ToolRecommend,
			Description: "Recommend books or research papers for the current user.",
			Parameters: obj(map[string]*genai.Schema{
				"kind":  {Type: genai.TypeString, Enum: []string{"book", "research"}},
				"limit": num("max results"),
			}),
		},
		{Name: ToolListFAQs, Description: "List frequently asked questions about the library."},
		{Name: ToolListRules, Description: "List library rules and policies."},
		{
			Name:        ToolPopularBooks,
			Description: "List popular books.",
			Parameters: obj(map[string]*genai.Schema{
				"metric": {Type: genai.TypeString, Enum: []string{"most_borrowed", "highest_rated", "recently_added"}},
				"limit":  num("max results"),
			}),
		},
		{Name: ToolBorrowedItems, Description: "List items the current user has borrowed and not returned."},
		{
			Name:        ToolTransactionHistory,
			Description: "List the current user's borrow and return history.",
			Parameters:  obj(map[string]*genai.Schema{"limit": num("max results")}),
		},
		{Name: ToolCategories, Description: "List book genres and departments."},
	}
}
