// Package view implements the list pipeline shared by every board: free
// text search, a category filter, an optional second facet filter, and a
// stable sort, in that order. Each board supplies a Config describing how
// its record type participates.
package view

import (
	"sort"
	"strings"
)

// TotalKey is the synthetic Counts bucket covering every record.
const TotalKey = "total"

// CategoryAll disables the category filter.
const CategoryAll = "all"

// Criteria is one board's current filter and sort selection. The zero
// value means "everything, in store order".
type Criteria struct {
	Query    string
	Category string
	Facet    string
	SortKey  string
}

// Less orders two records. Ties must report false on both orderings so the
// stable sort preserves store order.
type Less[T any] func(a, b T) bool

// Config adapts one record type to the pipeline. Nil fields disable the
// matching stage.
type Config[T any] struct {
	// SearchFields returns the strings the query is matched against.
	SearchFields func(T) []string
	// Category buckets a record for the category filter and for Counts.
	Category func(T) string
	// Facet buckets a record for the board's second filter axis: payment
	// status on the commission board, property type on the listing board.
	Facet func(T) string
	// Sorts maps sort keys to orderings.
	Sorts map[string]Less[T]
}

// Matches reports whether a single record passes the criteria's filters.
func (c Config[T]) Matches(r T, crit Criteria) bool {
	if q := strings.TrimSpace(strings.ToLower(crit.Query)); q != "" {
		if c.SearchFields == nil {
			return false
		}
		hit := false
		for _, field := range c.SearchFields(r) {
			if strings.Contains(strings.ToLower(field), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	if crit.Category != "" && crit.Category != CategoryAll && c.Category != nil {
		if c.Category(r) != crit.Category {
			return false
		}
	}
	if crit.Facet != "" && crit.Facet != CategoryAll && c.Facet != nil {
		if c.Facet(r) != crit.Facet {
			return false
		}
	}
	return true
}

// Apply filters and sorts a snapshot of records. The input slice is never
// modified; filtering the result of a previous Apply with the same
// criteria returns the same rows.
func (c Config[T]) Apply(records []T, crit Criteria) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Matches(r, crit) {
			out = append(out, r)
		}
	}
	if less, ok := c.Sorts[crit.SortKey]; ok && less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}
	return out
}

// Counts buckets every record by category and adds a TotalKey entry. The
// input is the unfiltered store snapshot; filter chips show full-store
// counts no matter what is selected.
func (c Config[T]) Counts(records []T) map[string]int {
	counts := map[string]int{TotalKey: len(records)}
	if c.Category == nil {
		return counts
	}
	for _, r := range records {
		counts[c.Category(r)]++
	}
	return counts
}

// FacetCounts buckets every record by the facet axis and adds a TotalKey
// entry. Like Counts, it runs over the unfiltered store snapshot.
func (c Config[T]) FacetCounts(records []T) map[string]int {
	counts := map[string]int{TotalKey: len(records)}
	if c.Facet == nil {
		return counts
	}
	for _, r := range records {
		counts[c.Facet(r)]++
	}
	return counts
}
