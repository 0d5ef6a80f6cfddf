// Package library implements the filter and sort policy of the document
// library view. It works on snapshots returned by the store and never
// mutates them.
package library

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrijs2005/smartscan/internal/client/models"
	"github.com/dmitrijs2005/smartscan/internal/common"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOrder selects one of the library orderings.
type SortOrder string

const (
	// SortByDate orders by Date, most recent first.
	SortByDate SortOrder = "date"
	// SortByName orders by Title ascending using locale-aware comparison.
	SortByName SortOrder = "name"
	// SortByRecent orders by LastViewed, most recent first.
	SortByRecent SortOrder = "recent"
)

// SortOrders lists the accepted orderings.
var SortOrders = []SortOrder{SortByDate, SortByName, SortByRecent}

// ParseSortOrder validates s as a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	o := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortOrders, o) {
		return o, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", common.ErrorInvalidInput, s)
}

// Query is the library view state. The zero value shows everything sorted
// by date.
type Query struct {
	Search   string
	Category string
	Sort     SortOrder
}

// Matches reports whether d passes both the search and the category filter.
func (q Query) Matches(d models.Document) bool {
	return q.matchesSearch(d) && q.matchesCategory(d)
}

func (q Query) matchesSearch(d models.Document) bool {
	return strings.Contains(strings.ToLower(d.Title), strings.ToLower(q.Search))
}

func (q Query) matchesCategory(d models.Document) bool {
	if q.Category == "" || q.Category == models.CategoryAll {
		return true
	}
	return strings.EqualFold(q.Category, d.Category)
}

// Sorter applies Query values. It holds the collator used for title
// ordering, so it must not be shared between goroutines.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter comparing titles with the rules of locale
// (a BCP 47 tag such as "en" or "de"). An unparsable tag falls back to English.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Sorter{collator: collate.New(tag)}
}

// Apply filters docs with q and returns them in q's order. Ties keep their
// input order.
func (s *Sorter) Apply(docs []models.Document, q Query) []models.Document {
	out := make([]models.Document, 0, len(docs))
	for _, d := range docs {
		if q.Matches(d) {
			out = append(out, d)
		}
	}

	switch q.Sort {
	case SortByName:
		slices.SortStableFunc(out, func(a, b models.Document) int {
			return s.collator.CompareString(a.Title, b.Title)
		})
	case SortByRecent:
		slices.SortStableFunc(out, func(a, b models.Document) int {
			return parseDate(b.LastViewed).Compare(parseDate(a.LastViewed))
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Document) int {
			return parseDate(b.Date).Compare(parseDate(a.Date))
		})
	}
	return out
}

// Apply is a convenience for one-off queries with English collation.
func Apply(docs []models.Document, q Query) []models.Document {
	return NewSorter("en").Apply(docs, q)
}

// parseDate reads an ISO date or timestamp; anything else is the zero time.
func parseDate(s string) time.Time {
	for _, layout := range []string{models.DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
