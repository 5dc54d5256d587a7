package chatbot

import (
	"context"
	"regexp"
	"strings"
)

const helpMessage = `I can help you with:
- finding books and research papers
- checking availability of a book
- recommendations and popular titles
- your borrowed items and history
- library rules, hours and fines`

type intent struct {
	name string
	re   *regexp.Regexp
	// respond builds the answer; static intents leave it nil and use reply
	respond func(ctx context.Context, msg string, userID *int64) (string, error)
	reply   string
}

// Responder answers from fixed templates and the tool catalog when the
// model is unreachable. Intents are matched in order.
type Responder struct {
	exec    *Executor
	intents []intent
}

func NewResponder(exec *Executor) *Responder {
	r := &Responder{exec: exec}
	r.intents = []intent{
		{name: "greeting", re: regexp.MustCompile(`(?i)^\s*(hi|hello|hey|good (morning|afternoon|evening))\b`),
			reply: "Hello! I'm the library assistant. Ask me about books, research papers or your account."},
		{name: "farewell", re: regexp.MustCompile(`(?i)\b(bye|goodbye|see you)\b`),
			reply: "Goodbye! Come back any time."},
		{name: "thanks", re: regexp.MustCompile(`(?i)\b(thanks|thank you|thx)\b`),
			reply: "You're welcome!"},
		{name: "hours", re: regexp.MustCompile(`(?i)\b(hours|opening|closing|what time|when .*\bopen)\b`),
			reply: "The library is open Monday to Friday, 8:00 to 17:00. Please check the rules page for holiday schedules."},
		{name: "borrowed", re: regexp.MustCompile(`(?i)\bmy\b.*\b(borrow(ed|ings)?|loans?|books)\b`),
			respond: r.tool(ToolBorrowedItems, nil)},
		{name: "borrow", re: regexp.MustCompile(`(?i)\b(borrow|check ?out|loan|return)\b`),
			reply: "Scan the QR code of the item at the kiosk to borrow it. To return, scan the same items at the kiosk with your reference number. Items with unpaid fines cannot be returned until the fine is settled."},
		{name: "penalties", re: regexp.MustCompile(`(?i)\b(fines?|penalt(y|ies)|overdue|late fee)\b`),
			reply: "Overdue items accrue a daily fine after the allowed borrowing period for your role. Unpaid fines block returns; pay them at the circulation desk."},
		{name: "research", re: regexp.MustCompile(`(?i)\b(research|thesis|theses|dissertations?|journals?|papers?)\b`),
			respond: r.research},
		{name: "recommend", re: regexp.MustCompile(`(?i)\b(recommend|suggest|popular|what should i read)\b`),
			respond: r.tool(ToolRecommend, nil)},
		{name: "book_search", re: regexp.MustCompile(`(?i)\b(find|search|look(ing)? for|books? (about|on|by))\b`),
			respond: r.bookSearch},
		{name: "rules", re: regexp.MustCompile(`(?i)\b(rules?|polic(y|ies)|allowed)\b`),
			respond: r.tool(ToolListRules, nil)},
		{name: "faq", re: regexp.MustCompile(`(?i)\b(faq|questions?)\b`),
			respond: r.tool(ToolListFAQs, nil)},
		{name: "help", re: regexp.MustCompile(`(?i)\b(help|what can you do)\b`),
			reply: helpMessage},
	}
	return r
}

// Intent names the first matching intent or "".
func (r *Responder) Intent(msg string) string {
	for _, in := range r.intents {
		if in.re.MatchString(msg) {
			return in.name
		}
	}
	return ""
}

// Respond never fails for static intents; data-backed intents may return the
// tool error. Unmatched messages get the FAQ list, or the help text.
func (r *Responder) Respond(ctx context.Context, msg string, userID *int64) (string, error) {
	for _, in := range r.intents {
		if !in.re.MatchString(msg) {
			continue
		}
		if in.respond == nil {
			return in.reply, nil
		}
		return in.respond(ctx, msg, userID)
	}
	res := r.exec.Run(ctx, Call{Name: ToolListFAQs}, userID)
	if res.Err == nil && res.Count > 0 {
		text, _ := Format([]Result{res})
		return "I'm not sure about that one. These might help:\n\n" + text, nil
	}
	return helpMessage, nil
}

func (r *Responder) tool(name string, args map[string]any) func(context.Context, string, *int64) (string, error) {
	return func(ctx context.Context, _ string, userID *int64) (string, error) {
		return r.render(ctx, []Result{r.exec.Run(ctx, Call{Name: name, Args: args}, userID)}, userID)
	}
}

func (r *Responder) research(ctx context.Context, msg string, userID *int64) (string, error) {
	if recommendRe.MatchString(msg) {
		call := Call{Name: ToolRecommend, Args: map[string]any{"kind": "research"}}
		return r.render(ctx, []Result{r.exec.Run(ctx, call, userID)}, userID)
	}
	query, author := researchQuery(msg)
	call := Call{Name: ToolSearchResearch, Args: map[string]any{"query": query, "author": author}}
	return r.render(ctx, []Result{r.exec.Run(ctx, call, userID)}, userID)
}

var recommendRe = regexp.MustCompile(`(?i)\b(recommend|suggest)`)

var searchPrefixRe = regexp.MustCompile(`(?i)^.*?\b(find|search( for)?|look(ing)? for|books? (about|on|by))\b`)

func (r *Responder) bookSearch(ctx context.Context, msg string, userID *int64) (string, error) {
	query := strings.TrimSpace(searchPrefixRe.ReplaceAllString(msg, ""))
	query = strings.Trim(strings.TrimPrefix(strings.TrimPrefix(query, "a "), "the "), " ?.!")
	call := Call{Name: ToolSearchBooks, Args: map[string]any{"query": query}}
	return r.render(ctx, []Result{r.exec.Run(ctx, call, userID)}, userID)
}

func (r *Responder) render(ctx context.Context, results []Result, userID *int64) (string, error) {
	for _, res := range results {
		if res.Err != nil && !isUserErr(res.Err) {
			return "", res.Err
		}
	}
	return renderWithFallback(ctx, r.exec, results, userID), nil
}
