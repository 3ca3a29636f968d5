package view

import (
	"strings"

	"tableflip.dev/crest/pkg/record"
)

// Sort keys accepted by the stock configs.
const (
	SortDate    = "date"
	SortAddress = "address"
	SortStatus  = "status"
	SortName    = "name"
	SortUpdated = "updated"
	SortClosing = "closing"
	SortLikely  = "likely"
	SortPrice   = "price"
)

// Properties returns the pipeline config for the listing board. The
// category axis is listing status and the facet axis is property type,
// matching the two filter rows on the board.
func Properties() Config[record.Property] {
	return Config[record.Property]{
		SearchFields: func(p record.Property) []string {
			return []string{p.Address, p.Nickname}
		},
		Category: func(p record.Property) string {
			return string(p.Status)
		},
		Facet: func(p record.Property) string {
			return string(p.Type)
		},
		Sorts: map[string]Less[record.Property]{
			SortDate: func(a, b record.Property) bool {
				return a.DateAdded.After(b.DateAdded.Time)
			},
			SortAddress: func(a, b record.Property) bool {
				return strings.ToLower(a.Address) < strings.ToLower(b.Address)
			},
			SortStatus: func(a, b record.Property) bool {
				return a.Status.Label() < b.Status.Label()
			},
		},
	}
}

// Clients returns the pipeline config for the client pipeline. The
// category axis is the client status vocabulary.
func Clients() Config[record.Client] {
	return Config[record.Client]{
		SearchFields: func(c record.Client) []string {
			return []string{c.Name, c.Company, c.Email, c.LookingFor}
		},
		Category: func(c record.Client) string {
			return string(c.Status)
		},
		Sorts: map[string]Less[record.Client]{
			SortUpdated: func(a, b record.Client) bool {
				return a.UpdatedAt.After(b.UpdatedAt.Time)
			},
			SortName: func(a, b record.Client) bool {
				return strings.ToLower(a.Name) < strings.ToLower(b.Name)
			},
		},
	}
}

// Commissions returns the pipeline config for the commission pipeline.
// Category is the listing-status axis; the facet is the payout axis. A TBD
// closing sorts after every known date.
func Commissions() Config[record.Commission] {
	return Config[record.Commission]{
		SearchFields: func(c record.Commission) []string {
			return []string{c.Property, c.Client}
		},
		Category: func(c record.Commission) string {
			return string(c.ListingStatus)
		},
		Facet: func(c record.Commission) string {
			return string(c.CommissionStatus)
		},
		Sorts: map[string]Less[record.Commission]{
			SortClosing: func(a, b record.Commission) bool {
				switch {
				case a.EstimatedClosing.TBD():
					return false
				case b.EstimatedClosing.TBD():
					return true
				default:
					return a.EstimatedClosing.Date.Before(b.EstimatedClosing.Date)
				}
			},
			SortLikely: func(a, b record.Commission) bool {
				return a.Likely > b.Likely
			},
			SortPrice: func(a, b record.Commission) bool {
				return a.ListingPrice > b.ListingPrice
			},
		},
	}
}
