// Package chatbot answers library questions with an LLM that can call
// read-only catalog tools, and degrades to a rule-based responder.
package chatbot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
	"github.com/Astemirdum/library-admin/pkg/circuit_breaker"
)

const systemPrompt = `You are the assistant of a university library. Answer briefly and politely.
Use the provided tools for anything about the catalog, research papers, availability,
recommendations, rules, FAQs or the user's own loans. Never invent titles or authors.`

type Config struct {
	MaxIterations      int
	SimpleMessageLen   int
	SimpleMaxOutput    int32
	SessionMaxMessages int
	SessionTTL         time.Duration
	Timeout            time.Duration
	StreamDebounce     time.Duration
	StreamKeepAlive    time.Duration
}

func (c *Config) setDefaults() {
	if c.MaxIterations <= 0 {
		c.MaxIterations = 3
	}
	if c.SimpleMaxOutput <= 0 {
		c.SimpleMaxOutput = 150
	}
	if c.SessionMaxMessages <= 0 {
		c.SessionMaxMessages = 20
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 24 * time.Hour
	}
	if c.Timeout <= 0 {
		c.Timeout = time.Minute
	}
	if c.StreamDebounce <= 0 {
		c.StreamDebounce = 150 * time.Millisecond
	}
	if c.StreamKeepAlive <= 0 {
		c.StreamKeepAlive = 15 * time.Second
	}
}

type Router struct {
	llm      LLM
	exec     *Executor
	fallback *Responder
	sessions SessionStore
	breaker  circuit_breaker.CircuitBreaker
	cfg      Config
	log      *zap.Logger
}

type Option func(*Router)

func WithBreaker(cb circuit_breaker.CircuitBreaker) Option {
	return func(r *Router) { r.breaker = cb }
}

// NewRouter builds a router. A nil llm runs the rule-based responder only.
func NewRouter(llm LLM, reader CatalogReader, sessions SessionStore, cfg Config, log *zap.Logger, opts ...Option) *Router {
	cfg.setDefaults()
	log = log.Named("chatbot")
	exec := NewExecutor(reader, log)
	r := &Router{
		llm:      llm,
		exec:     exec,
		fallback: NewResponder(exec),
		sessions: sessions,
		breaker:  circuit_breaker.New(10, 30*time.Second, 0.5, 2),
		cfg:      cfg,
		log:      log,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

func NewSessionID() string {
	return uuid.NewString()
}

// sink receives streamed output; the zero value discards it.
type sink struct {
	text   func(string) error
	status func(string) error
}

func (s sink) setStatus(st string) error {
	if s.status == nil {
		return nil
	}
	return s.status(st)
}

type answer struct {
	text     string
	source   model.ChatSource
	tools    []string
	streamed bool
	persist  bool
}

func (r *Router) Chat(ctx context.Context, req model.ChatRequest) (model.ChatResponse, error) {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return model.ChatResponse{}, errs.Validation("message is required")
	}
	sid := req.SessionID
	if sid == "" {
		sid = NewSessionID()
	}
	ans, err := r.respond(ctx, msg, sid, req.UserID, sink{})
	if err != nil {
		return model.ChatResponse{}, err
	}
	r.remember(ctx, sid, msg, ans)
	return model.ChatResponse{Reply: ans.text, SessionID: sid, Source: ans.source, ToolsUsed: ans.tools}, nil
}

func (r *Router) respond(ctx context.Context, msg, sid string, userID *int64, out sink) (answer, error) {
	if query, author, ok := ResearchIntent(msg); ok {
		call := Call{Name: ToolSearchResearch, Args: map[string]any{"query": query, "author": author}}
		results := []Result{r.exec.Run(ctx, call, userID)}
		return answer{
			text:    renderWithFallback(ctx, r.exec, results, userID),
			source:  model.SourceTools,
			tools:   []string{ToolSearchResearch},
			persist: true,
		}, nil
	}
	if !r.llmAvailable() {
		return r.degrade(ctx, msg, userID)
	}

	if IsSimpleMessage(msg, r.cfg.SimpleMessageLen) {
		req := Request{System: systemPrompt, Messages: []Message{{Role: RoleUser, Text: msg}}, MaxOutput: r.cfg.SimpleMaxOutput}
		f := newToolFilter(out.text)
		reply, err := r.call(ctx, req, f.writer())
		if err != nil {
			if ctx.Err() != nil {
				return answer{}, err
			}
			r.log.Warn("llm unavailable, using fallback", zap.Error(err))
			return r.degrade(ctx, msg, userID)
		}
		if err := f.end(); err != nil {
			return answer{}, err
		}
		return answer{text: reply.Text, source: model.SourceLLM, streamed: out.text != nil}, nil
	}

	history, err := r.sessions.History(ctx, sid, r.cfg.SessionMaxMessages)
	if err != nil {
		r.log.Warn("load chat history", zap.String("session_id", sid), zap.Error(err))
	}
	msgs := make([]Message, 0, len(history)+1)
	for _, h := range history {
		role := RoleUser
		if h.Role == model.ChatRoleAssistant {
			role = RoleModel
		}
		msgs = append(msgs, Message{Role: role, Text: h.Content})
	}
	msgs = append(msgs, Message{Role: RoleUser, Text: msg})

	useTools := NeedsTools(msg, userID != nil)
	var (
		results []Result
		used    []string
	)
	for i := 0; i < r.cfg.MaxIterations; i++ {
		req := Request{System: systemPrompt, Messages: msgs, Tools: useTools}
		// once tools ran, model text is never shown
		var f *toolFilter
		if len(results) == 0 {
			f = newToolFilter(out.text)
		} else {
			f = newToolFilter(nil)
		}
		reply, err := r.call(ctx, req, f.writer())
		if err != nil {
			if ctx.Err() != nil {
				return answer{}, err
			}
			if len(results) > 0 {
				r.log.Warn("llm failed after tools, formatting collected results", zap.Error(err))
				break
			}
			r.log.Warn("llm unavailable, using fallback", zap.Error(err))
			return r.degrade(ctx, msg, userID)
		}
		calls := reply.Calls
		if len(calls) == 0 {
			if recovered, ok := parseToolCalls(reply.Text); ok {
				calls = recovered
			}
		}
		if len(calls) == 0 {
			if err := f.end(); err != nil {
				return answer{}, err
			}
			if len(results) == 0 {
				return answer{text: reply.Text, source: model.SourceLLM, streamed: out.text != nil, persist: true}, nil
			}
			break
		}
		if err := out.setStatus(StatusTools); err != nil {
			return answer{}, err
		}
		res := r.exec.RunAll(ctx, calls, userID)
		for _, c := range calls {
			used = append(used, c.Name)
		}
		results = append(results, res...)
		msgs = append(msgs,
			Message{Role: RoleModel, Text: reply.Text, Calls: calls},
			Message{Role: RoleTool, Results: res})
	}
	return answer{
		text:    renderWithFallback(ctx, r.exec, results, userID),
		source:  model.SourceTools,
		tools:   used,
		persist: true,
	}, nil
}

func (r *Router) degrade(ctx context.Context, msg string, userID *int64) (answer, error) {
	text, err := r.fallback.Respond(ctx, msg, userID)
	if err != nil {
		return answer{}, err
	}
	return answer{text: text, source: model.SourceFallback, persist: true}, nil
}

// call runs one model request through the breaker. Errors from onText mean the
// client went away and do not count against the backend.
func (r *Router) call(ctx context.Context, req Request, onText func(string) error) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	var (
		reply   Reply
		sinkErr error
	)
	err := r.breaker.Call(func() error {
		var err error
		if onText == nil {
			reply, err = r.llm.Generate(ctx, req)
			return err
		}
		reply, err = r.llm.Stream(ctx, req, func(s string) error {
			if err := onText(s); err != nil {
				sinkErr = err
				return err
			}
			return nil
		})
		if sinkErr != nil {
			return nil
		}
		return err
	})
	if sinkErr != nil {
		return Reply{}, sinkErr
	}
	return reply, err
}

func (r *Router) llmAvailable() bool {
	return r.llm != nil && r.breaker.State() != circuit_breaker.Open
}

func (r *Router) remember(ctx context.Context, sid, msg string, ans answer) {
	if !ans.persist {
		return
	}
	err := r.sessions.Append(ctx, sid,
		model.ChatMessage{Role: model.ChatRoleUser, Content: msg},
		model.ChatMessage{Role: model.ChatRoleAssistant, Content: ans.text})
	if err == nil {
		err = r.sessions.Trim(ctx, sid, r.cfg.SessionMaxMessages)
	}
	if err != nil {
		r.log.Warn("save chat history", zap.String("session_id", sid), zap.Error(err))
	}
}

func (r *Router) Status() model.ChatStatus {
	st := model.ChatStatus{Breaker: r.breaker.State().String()}
	if r.llm != nil {
		st.Model = r.llm.Model()
	}
	st.LLMAvailable = r.llmAvailable()
	return st
}

func (r *Router) History(ctx context.Context, sid string) ([]model.ChatMessage, error) {
	return r.sessions.History(ctx, sid, r.cfg.SessionMaxMessages)
}

func (r *Router) ClearHistory(ctx context.Context, sid string) error {
	return r.sessions.Clear(ctx, sid)
}

// ExpireSessions drops sessions idle for longer than the configured TTL.
func (r *Router) ExpireSessions(ctx context.Context, now time.Time) (int64, error) {
	return r.sessions.Expire(ctx, now.Add(-r.cfg.SessionTTL))
}

// renderWithFallback formats results; empty searches are answered with popular
// books, never with model text.
func renderWithFallback(ctx context.Context, exec *Executor, results []Result, userID *int64) string {
	if text, ok := Format(results); ok {
		return text
	}
	popular := exec.Run(ctx, Call{Name: ToolPopularBooks, Args: map[string]any{"metric": "most_borrowed", "limit": 5}}, userID)
	if popular.Err == nil && popular.Count > 0 {
		text, _ := Format([]Result{popular})
		return popularPrefix + "\n\n" + text
	}
	return noResultsMessage
}

func isUserErr(err error) bool {
	return errors.Is(err, errNoUser)
}
