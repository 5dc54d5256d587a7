package chatbot

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/library-admin/admin/internal/errs"
	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const (
	StatusThinking  = "thinking"
	StatusTools     = "invoking tools…"
	StatusKeepAlive = "keep-alive"
	StatusDone      = "done"
)

// Stream answers like Chat but emits chunks as they are produced. Content is
// coalesced for the debounce interval and keep-alive chunks are sent while idle.
// An emit error cancels the model call.
func (r *Router) Stream(ctx context.Context, req model.ChatRequest, emit func(model.StreamChunk) error) error {
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		return errs.Validation("message is required")
	}
	sid := req.SessionID
	if sid == "" {
		sid = NewSessionID()
	}

	chunks := make(chan model.StreamChunk)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pump(gctx, chunks, emit, r.cfg.StreamDebounce, r.cfg.StreamKeepAlive)
	})
	g.Go(func() error {
		defer close(chunks)
		send := func(c model.StreamChunk) error {
			select {
			case chunks <- c:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		if err := send(model.StreamChunk{Status: StatusThinking, SessionID: sid}); err != nil {
			return err
		}
		out := sink{
			text:   func(s string) error { return send(model.StreamChunk{Content: s}) },
			status: func(s string) error { return send(model.StreamChunk{Status: s}) },
		}
		ans, err := r.respond(gctx, msg, sid, req.UserID, out)
		if err != nil {
			if gctx.Err() != nil {
				return err
			}
			r.log.Error("stream answer", zap.Error(err))
			return send(model.StreamChunk{Error: "assistant is unavailable", SessionID: sid})
		}
		if !ans.streamed {
			if err := send(model.StreamChunk{Content: ans.text}); err != nil {
				return err
			}
		}
		r.remember(context.WithoutCancel(gctx), sid, msg, ans)
		return send(model.StreamChunk{Status: StatusDone, SessionID: sid})
	})
	return g.Wait()
}

func pump(ctx context.Context, in <-chan model.StreamChunk, emit func(model.StreamChunk) error, debounce, keepAlive time.Duration) error {
	flushTicker := time.NewTicker(debounce)
	defer flushTicker.Stop()
	keepTicker := time.NewTicker(keepAlive)
	defer keepTicker.Stop()

	var (
		buf    strings.Builder
		active bool
	)
	flush := func() error {
		if buf.Len() == 0 {
			return nil
		}
		c := model.StreamChunk{Content: buf.String()}
		buf.Reset()
		active = true
		return emit(c)
	}
	for {
		select {
		case c, ok := <-in:
			if !ok {
				return flush()
			}
			if c.Content != "" && c.Status == "" && c.Error == "" {
				buf.WriteString(c.Content)
				continue
			}
			if err := flush(); err != nil {
				return err
			}
			active = true
			if err := emit(c); err != nil {
				return err
			}
		case <-flushTicker.C:
			if err := flush(); err != nil {
				return err
			}
		case <-keepTicker.C:
			if !active {
				if err := emit(model.StreamChunk{Status: StatusKeepAlive}); err != nil {
					return err
				}
			}
			active = false
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// toolFilter forwards streamed text unless the turn opens like a JSON payload;
// such turns are held back so a literal tool call never reaches the client.
type toolFilter struct {
	emit    func(string) error
	pending strings.Builder
	started bool
	holding bool
}

func newToolFilter(emit func(string) error) *toolFilter {
	return &toolFilter{emit: emit}
}

// writer returns nil when there is nowhere to stream to, selecting Generate.
func (f *toolFilter) writer() func(string) error {
	if f.emit == nil {
		return nil
	}
	return f.write
}

func (f *toolFilter) write(s string) error {
	if f.holding {
		f.pending.WriteString(s)
		return nil
	}
	if !f.started {
		f.pending.WriteString(s)
		head := strings.TrimSpace(f.pending.String())
		if head == "" {
			return nil
		}
		f.started = true
		if strings.HasPrefix(head, "{") || strings.HasPrefix(head, "[") || strings.HasPrefix(head, "```") {
			f.holding = true
			return nil
		}
		s = f.pending.String()
		f.pending.Reset()
	}
	return f.emit(s)
}

// end releases held text that turned out not to be a tool call.
func (f *toolFilter) end() error {
	if f.emit == nil || !f.holding {
		return nil
	}
	text := f.pending.String()
	f.pending.Reset()
	f.holding = false
	if _, ok := parseToolCalls(text); ok || strings.TrimSpace(text) == "" {
		return nil
	}
	return f.emit(text)
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

type rawToolCall struct {
	Name       string          `json:"name"`
	Function   json.RawMessage `json:"function"`
	Args       json.RawMessage `json:"args"`
	Arguments  json.RawMessage `json:"arguments"`
	Parameters json.RawMessage `json:"parameters"`
}

// parseToolCalls recovers tool calls that a model wrote out as JSON text, in
// either {"name","args"} or {"function":{"name","arguments"}} shape.
func parseToolCalls(text string) ([]Call, bool) {
	text = stripFences(text)
	if text == "" {
		return nil, false
	}
	var raws []rawToolCall
	if strings.HasPrefix(text, "[") {
		if err := json.Unmarshal([]byte(text), &raws); err != nil {
			return nil, false
		}
	} else {
		var one rawToolCall
		if err := json.Unmarshal([]byte(text), &one); err != nil {
			return nil, false
		}
		raws = []rawToolCall{one}
	}
	calls := make([]Call, 0, len(raws))
	for _, raw := range raws {
		c, ok := raw.call()
		if !ok {
			return nil, false
		}
		calls = append(calls, c)
	}
	return calls, len(calls) > 0
}

func (raw rawToolCall) call() (Call, bool) {
	name := raw.Name
	args := firstArgs(raw.Args, raw.Arguments, raw.Parameters)
	if len(raw.Function) > 0 {
		var fn rawToolCall
		if err := json.Unmarshal(raw.Function, &fn); err == nil && fn.Name != "" {
			name = fn.Name
			args = firstArgs(fn.Args, fn.Arguments, fn.Parameters)
		} else if err := json.Unmarshal(raw.Function, &name); err != nil {
			return Call{}, false
		}
	}
	if name == "" {
		return Call{}, false
	}
	return Call{Name: name, Args: args}, true
}

// firstArgs decodes the first non-empty argument object; arguments may also
// arrive as a JSON encoded string.
func firstArgs(candidates ...json.RawMessage) map[string]any {
	for _, raw := range candidates {
		if len(raw) == 0 {
			continue
		}
		var args map[string]any
		if err := json.Unmarshal(raw, &args); err == nil {
			return args
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if err := json.Unmarshal([]byte(s), &args); err == nil {
				return args
			}
		}
	}
	return map[string]any{}
}
