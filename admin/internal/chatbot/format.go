package chatbot

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-admin/admin/internal/model"
)

const (
	noResultsMessage = "I couldn't find anything in the catalog matching that. Try different keywords or ask a librarian."
	popularPrefix    = "I couldn't find an exact match. Here are some popular books in the library:"
)

type bookGroup struct {
	title, author, class string
	copies, available    int
	shelves              []string
}

func groupBooks(rows []model.CatalogBook) []*bookGroup {
	var out []*bookGroup
	index := make(map[string]*bookGroup)
	for _, r := range rows {
		key := strings.ToLower(strings.TrimSpace(r.Title)) + "\x00" + strings.ToLower(strings.TrimSpace(r.Author))
		g, ok := index[key]
		if !ok {
			g = &bookGroup{title: strings.TrimSpace(r.Title), author: strings.TrimSpace(r.Author), class: r.Classification}
			index[key] = g
			out = append(out, g)
		}
		g.copies++
		if r.Status == model.ItemAvailable {
			g.available++
			if s := shelf(r); s != "" && !contains(g.shelves, s) {
				g.shelves = append(g.shelves, s)
			}
		}
	}
	return out
}

func shelf(r model.CatalogBook) string {
	if r.ShelfNumber == nil {
		return ""
	}
	s := fmt.Sprintf("shelf %d", *r.ShelfNumber)
	if r.ShelfColumn != nil {
		s += " " + *r.ShelfColumn
	}
	if r.ShelfRow != nil {
		s += fmt.Sprintf("%d", *r.ShelfRow)
	}
	return s
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// joinAuthors normalizes author names: "Last, First" entries, semicolon or
// "and" separated strings, blanks and duplicates.
func joinAuthors(authors []string) string {
	var out []string
	seen := make(map[string]bool)
	for _, a := range authors {
		for _, part := range splitAuthors(a) {
			key := strings.ToLower(part)
			if part == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return "Unknown author"
	}
	return strings.Join(out, ", ")
}

func splitAuthors(s string) []string {
	s = strings.ReplaceAll(s, " and ", ";")
	s = strings.ReplaceAll(s, "&", ";")
	parts := strings.Split(s, ";")
	for i := range parts {
		parts[i] = strings.Join(strings.Fields(parts[i]), " ")
	}
	return parts
}

func isSearchTool(name string) bool {
	return name == ToolSearchBooks || name == ToolSearchResearch
}

// Format renders tool results with a fixed template per tool. ok is false when
// every search came back empty and nothing else produced output.
func Format(results []Result) (text string, ok bool) {
	var sections []string
	for _, r := range results {
		if r.Err != nil {
			if errors.Is(r.Err, errNoUser) {
				sections = append(sections, "Please sign in to see your own library records.")
			}
			continue
		}
		if r.Count == 0 {
			if !isSearchTool(r.Call.Name) {
				sections = append(sections, emptyMessage(r.Call.Name))
			}
			continue
		}
		sections = append(sections, formatOne(r))
	}
	if len(sections) == 0 {
		return "", false
	}
	return strings.Join(sections, "\n\n"), true
}

func emptyMessage(tool string) string {
	switch tool {
	case ToolBorrowedItems:
		return "You have no borrowed items right now."
	case ToolTransactionHistory:
		return "You have no borrowing history yet."
	case ToolRecommend:
		return "I don't have any recommendations yet."
	case ToolListFAQs:
		return "There are no FAQs published yet."
	case ToolListRules:
		return "There are no library rules published yet."
	case ToolBookAvailability:
		return "That book is not in the catalog."
	}
	return "Nothing to show."
}

func formatOne(r Result) string {
	var b strings.Builder
	switch data := r.Data.(type) {
	case []model.CatalogBook:
		if r.Call.Name == ToolBookAvailability {
			b.WriteString("Availability:")
		} else {
			b.WriteString("Books found:")
		}
		for _, g := range groupBooks(data) {
			fmt.Fprintf(&b, "\n- %s by %s", g.title, g.author)
			if g.class != "" {
				fmt.Fprintf(&b, " (%s)", g.class)
			}
			fmt.Fprintf(&b, ": %d of %d copies available", g.available, g.copies)
			if len(g.shelves) > 0 {
				fmt.Fprintf(&b, ", %s", strings.Join(g.shelves, "; "))
			}
		}
	case []model.ResearchHit:
		b.WriteString("Research papers:")
		for _, h := range data {
			fmt.Fprintf(&b, "\n- %s", h.Title)
			if h.YearPublication != nil {
				fmt.Fprintf(&b, " (%d)", *h.YearPublication)
			}
			fmt.Fprintf(&b, " by %s", joinAuthors(h.Authors))
			if h.Department != nil && *h.Department != "" {
				fmt.Fprintf(&b, ", %s", *h.Department)
			}
			if h.Status != string(model.ItemAvailable) {
				fmt.Fprintf(&b, " [%s]", h.Status)
			}
		}
	case []model.Recommendation:
		b.WriteString("You might like:")
		for _, rec := range data {
			fmt.Fprintf(&b, "\n- %s", rec.Title)
			if rec.Author != "" {
				fmt.Fprintf(&b, " by %s", rec.Author)
			}
		}
	case []model.FAQ:
		b.WriteString("Frequently asked questions:")
		for _, f := range data {
			fmt.Fprintf(&b, "\n- %s\n  %s", f.Question, f.Answer)
		}
	case []model.Rule:
		b.WriteString("Library rules:")
		for _, rule := range data {
			fmt.Fprintf(&b, "\n- %s: %s", rule.Title, rule.Description)
		}
	case []model.PopularBook:
		b.WriteString("Popular books:")
		for _, p := range data {
			fmt.Fprintf(&b, "\n- %s by %s: borrowed %d times, %d available", p.Title, p.Author, p.BorrowCount, p.Available)
			if p.Rating > 0 {
				fmt.Fprintf(&b, ", rated %.1f", p.Rating)
			}
		}
	case []model.BorrowedItem:
		b.WriteString("Your borrowed items:")
		for _, it := range data {
			fmt.Fprintf(&b, "\n- %s (%s), due %s", it.Title, it.ItemType, it.DueDate.Format(time.DateOnly))
			if it.Overdue {
				b.WriteString(", OVERDUE")
			}
		}
	case []model.HistoryItem:
		b.WriteString("Your recent activity:")
		for _, h := range data {
			fmt.Fprintf(&b, "\n- %s: %s %s", h.TransactionDate.Format(time.DateOnly), h.TransactionType, h.Title)
			if h.ReturnDate != nil {
				fmt.Fprintf(&b, ", returned %s", h.ReturnDate.Format(time.DateOnly))
			}
		}
	case []string:
		b.WriteString("Categories:")
		for _, c := range data {
			fmt.Fprintf(&b, "\n- %s", c)
		}
	}
	return b.String()
}
