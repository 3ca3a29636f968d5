package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/timeutil"
	"tableflip.dev/crest/pkg/view"
)

// Kind selects which board to list.
type Kind string

const (
	Listings    Kind = "listings"
	Clients     Kind = "clients"
	Commissions Kind = "commissions"
)

type Get struct {
	Kind   Kind
	ShowID bool
	Counts bool

	Search string
	Status string
	// Facet is the board's second filter axis: property type for
	// listings, payment status for commissions.
	Facet   string
	Closing string
	Sort    string

	BackOffice *app.BackOffice
}

func (n *Get) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not get, no back office")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	crit := view.Criteria{
		Query:    n.Search,
		Category: n.Status,
		Facet:    n.Facet,
		SortKey:  n.Sort,
	}
	fmt.Println("")

	switch n.Kind {
	case Listings:
		cfg := view.Properties()
		all, err := n.BackOffice.Listings.List(ctx)
		if err != nil {
			return err
		}
		rows := cfg.Apply(all, crit)
		pp.TitleWithCount("Listings", len(rows))
		if n.Counts {
			n.printCounts(&pp, cfg.Counts(all), statusOrder())
			n.printCounts(&pp, cfg.FacetCounts(all), typeOrder())
		}
		pp.Properties(rows...)
		return nil

	case Clients:
		cfg := view.Clients()
		all, err := n.BackOffice.Clients.List(ctx)
		if err != nil {
			return err
		}
		rows := cfg.Apply(all, crit)
		pp.TitleWithCount("Clients", len(rows))
		if n.Counts {
			n.printCounts(&pp, cfg.Counts(all), clientOrder())
		}
		pp.Clients(rows...)
		return nil

	case Commissions:
		cfg := view.Commissions()
		all, err := n.BackOffice.Commissions.List(ctx)
		if err != nil {
			return err
		}
		rows := cfg.Apply(all, crit)
		title := "Commissions"
		if n.Closing != "" {
			horizon, label, err := timeutil.ParseHorizon(n.Closing)
			if err != nil {
				return err
			}
			rows = closingWithin(rows, time.Now(), horizon)
			title = fmt.Sprintf("Commissions closing within %s", label)
		}
		pp.TitleWithCount(title, len(rows))
		if n.Counts {
			n.printCounts(&pp, cfg.Counts(all), statusOrder())
			n.printCounts(&pp, cfg.FacetCounts(all), paymentOrder())
		}
		pp.Commissions(rows...)
		return nil
	}
	return fmt.Errorf("unknown board %q", n.Kind)
}

func (n *Get) printCounts(pp *printers.PrettyPrint, counts map[string]int, order []string) {
	pp.Counts(order, counts)
	fmt.Println("")
}

// closingWithin keeps rows with a known closing date inside [now, now+horizon].
// TBD closings never match a horizon.
func closingWithin(rows []record.Commission, now time.Time, horizon time.Duration) []record.Commission {
	cutoff := now.Add(horizon)
	out := make([]record.Commission, 0, len(rows))
	for _, c := range rows {
		if c.EstimatedClosing.TBD() {
			continue
		}
		if c.EstimatedClosing.Date.Before(now.Truncate(24*time.Hour)) || c.EstimatedClosing.Date.After(cutoff) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func statusOrder() []string {
	order := []string{view.TotalKey}
	for _, s := range record.AllListingStatuses() {
		order = append(order, string(s))
	}
	return order
}

func typeOrder() []string {
	order := []string{view.TotalKey}
	for _, t := range record.AllPropertyTypes() {
		order = append(order, string(t))
	}
	return order
}

func paymentOrder() []string {
	order := []string{view.TotalKey}
	for _, s := range record.AllPaymentStatuses() {
		order = append(order, string(s))
	}
	return order
}

func clientOrder() []string {
	order := []string{view.TotalKey}
	for _, s := range record.DefaultStatusVocabulary() {
		order = append(order, string(s))
	}
	return order
}
