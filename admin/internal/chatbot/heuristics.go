package chatbot

import (
	"regexp"
	"strings"
)

var toolKeywords = []string{
	"book", "author", "title", "isbn", "genre", "category", "categories",
	"research", "paper", "thesis", "journal", "study",
	"available", "availability", "copies", "copy", "shelf",
	"recommend", "suggest", "popular", "trending", "best",
	"borrow", "borrowed", "loan", "return", "due", "overdue",
	"fine", "penalty", "penalties", "history", "rule", "faq", "policy",
}

// heavy words keep a short message off the fast path
var heavyKeywords = []string{
	"book", "research", "paper", "recommend", "borrow", "overdue",
	"fine", "penalty", "available", "history", "rule", "search", "find",
}

var (
	wordRe     = regexp.MustCompile(`[a-z0-9']+`)
	pronounRe  = regexp.MustCompile(`\b(i|me|my|mine|i'm|i've)\b`)
	researchRe = regexp.MustCompile(`\b(research(\s+(papers?|articles?|works?))?|thesis|theses|dissertations?)\b`)
	searchRe   = regexp.MustCompile(`\b(find|search|show|list|browse|get|give|look(ing)?\s+for|any|do\s+you\s+have|are\s+there)\b`)
	ownLoanRe  = regexp.MustCompile(`\b(my|mine)\b|\b(have|did|do)\s+i\b|\bi\s+(have\s+)?(borrowed|returned|reserved)\b`)
	byAuthorRe = regexp.MustCompile(`(?i)\bby\s+([\p{L}][\p{L}.'\- ]{1,60})$`)
	fillerRe   = regexp.MustCompile(`(?i)\b(find|search|show|list|give|get|look|looking|for|me|any|some|a|an|the|about|on|research|papers?|thesis|theses|dissertations?|journals?|studies|study|please|can|you|i|want|need|related|to|regarding)\b`)
)

func words(msg string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range wordRe.FindAllString(strings.ToLower(msg), -1) {
		out[w] = struct{}{}
		out[strings.TrimSuffix(w, "s")] = struct{}{}
	}
	return out
}

func containsAny(set map[string]struct{}, keys []string) bool {
	for _, k := range keys {
		if _, ok := set[k]; ok {
			return true
		}
	}
	return false
}

// NeedsTools reports whether the message should be answered with catalog tools.
// First-person messages qualify only when the caller is a known user.
func NeedsTools(msg string, hasUser bool) bool {
	if containsAny(words(msg), toolKeywords) {
		return true
	}
	return hasUser && pronounRe.MatchString(strings.ToLower(msg))
}

// IsSimpleMessage reports whether the message is small talk that can skip tools and history.
func IsSimpleMessage(msg string, minLen int) bool {
	msg = strings.TrimSpace(msg)
	if len([]rune(msg)) < minLen {
		return !NeedsTools(msg, false)
	}
	return !containsAny(words(msg), heavyKeywords)
}

// ResearchIntent detects an explicit search for research papers and
// extracts the topic and an optional "by <author>" suffix. Questions about the
// caller's own loans are left to the model.
func ResearchIntent(msg string) (query, author string, ok bool) {
	lower := strings.ToLower(msg)
	if !researchRe.MatchString(lower) || !searchRe.MatchString(lower) || ownLoanRe.MatchString(lower) {
		return "", "", false
	}
	if strings.Contains(lower, "recommend") || strings.Contains(lower, "suggest") {
		return "", "", false
	}
	query, author = researchQuery(msg)
	return query, author, true
}

func researchQuery(msg string) (query, author string) {
	msg = strings.TrimSpace(strings.TrimRight(strings.TrimSpace(msg), "?.!"))
	rest := msg
	if m := byAuthorRe.FindStringSubmatchIndex(msg); m != nil {
		author = strings.TrimSpace(msg[m[2]:m[3]])
		rest = msg[:m[0]]
	}
	query = strings.Join(strings.Fields(fillerRe.ReplaceAllString(rest, " ")), " ")
	return query, author
}
