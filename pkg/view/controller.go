package view

import "tableflip.dev/crest/pkg/store"

// Controller binds a store to a pipeline config and holds the board's
// current criteria. It is not safe for concurrent use; each board owns
// one controller on its UI goroutine.
type Controller[T store.Record] struct {
	store  *store.Store[T]
	config Config[T]
	crit   Criteria
}

// NewController returns a controller with zero criteria over the store.
func NewController[T store.Record](s *store.Store[T], cfg Config[T]) *Controller[T] {
	return &Controller[T]{store: s, config: cfg}
}

// Criteria returns the current selection.
func (c *Controller[T]) Criteria() Criteria { return c.crit }

// SetQuery replaces the free text query.
func (c *Controller[T]) SetQuery(q string) { c.crit.Query = q }

// SetCategory replaces the category filter. CategoryAll or "" clears it.
func (c *Controller[T]) SetCategory(cat string) { c.crit.Category = cat }

// SetFacet replaces the second-axis filter. CategoryAll or "" clears it.
func (c *Controller[T]) SetFacet(f string) { c.crit.Facet = f }

// SetSort replaces the sort key. An unknown key leaves rows in store order.
func (c *Controller[T]) SetSort(key string) { c.crit.SortKey = key }

// Reset clears every filter and the sort.
func (c *Controller[T]) Reset() { c.crit = Criteria{} }

// Rows returns the store snapshot filtered and sorted by the current
// criteria.
func (c *Controller[T]) Rows() []T {
	return c.config.Apply(c.store.List(), c.crit)
}

// Counts buckets the unfiltered store by category. Selections never change
// the numbers on the filter chips.
func (c *Controller[T]) Counts() map[string]int {
	return c.config.Counts(c.store.List())
}

// FacetCounts buckets the unfiltered store by the facet axis.
func (c *Controller[T]) FacetCounts() map[string]int {
	return c.config.FacetCounts(c.store.List())
}
