package app

import (
	"context"
	"errors"
	"math"
	"time"

	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/store"
)

// Commissions operates on the commission pipeline.
type Commissions struct {
	Store *store.Store[record.Commission]
}

// List returns every commission in store order.
func (s *Commissions) List(ctx context.Context) ([]record.Commission, error) {
	if s.Store == nil {
		return nil, errors.New("app: no commission store configured")
	}
	return s.Store.List(), nil
}

// Get returns one commission by id.
func (s *Commissions) Get(ctx context.Context, id string) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	return s.Store.Get(id)
}

// Add derives the rate amounts from the listing price and stores a new
// commission row.
func (s *Commissions) Add(ctx context.Context, property, client string, listingPrice float64, rate record.Rate) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	c, err := record.DeriveCommission(property, client, listingPrice, rate)
	if err != nil {
		return record.Commission{}, err
	}
	c.ID = record.NewID()
	if err := s.Store.Create(c); err != nil {
		return record.Commission{}, err
	}
	return c, nil
}

// AddFromListing builds a commission off a property's display price. The
// price string must parse to a positive amount; a listing without a price
// cannot seed a commission.
func (s *Commissions) AddFromListing(ctx context.Context, p record.Property, client string, rate record.Rate) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	price, err := record.ParseMoney(p.Price)
	if err != nil {
		return record.Commission{}, err
	}
	c, err := s.Add(ctx, p.DisplayName(), client, price, rate)
	if err != nil {
		return record.Commission{}, err
	}
	return updated(s.Store, c.ID, func(c *record.Commission) error {
		c.ListingStatus = p.Status
		return nil
	})
}

// SetLikely overrides the expected payout. The derived rate columns stay
// as computed.
func (s *Commissions) SetLikely(ctx context.Context, id string, likely float64) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	if math.IsNaN(likely) || math.IsInf(likely, 0) || likely < 0 {
		return record.Commission{}, errors.New("app: likely amount must be a non-negative number")
	}
	return updated(s.Store, id, func(c *record.Commission) error {
		c.Likely = record.RoundCents(likely)
		return nil
	})
}

// SetPayment moves a commission along the payout axis.
func (s *Commissions) SetPayment(ctx context.Context, id string, raw string) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	status, err := record.ParsePaymentStatus(raw)
	if err != nil {
		return record.Commission{}, err
	}
	return updated(s.Store, id, func(c *record.Commission) error {
		c.CommissionStatus = status
		return nil
	})
}

// MarkPaid is shorthand for the common payout transition.
func (s *Commissions) MarkPaid(ctx context.Context, id string) (record.Commission, error) {
	return s.SetPayment(ctx, id, string(record.PaymentPaid))
}

// SetListingStatus moves a commission along the listing axis.
func (s *Commissions) SetListingStatus(ctx context.Context, id string, status record.ListingStatus) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	if _, err := record.ParseListingStatus(string(status)); err != nil {
		return record.Commission{}, err
	}
	return updated(s.Store, id, func(c *record.Commission) error {
		c.ListingStatus = status
		return nil
	})
}

// SetClosing replaces the estimated closing date. A zero time marks it TBD.
func (s *Commissions) SetClosing(ctx context.Context, id string, date time.Time) (record.Commission, error) {
	if s.Store == nil {
		return record.Commission{}, errors.New("app: no commission store configured")
	}
	return updated(s.Store, id, func(c *record.Commission) error {
		c.EstimatedClosing = record.Closing{Date: date}
		return nil
	})
}

// Remove deletes a commission. Unknown ids surface store.ErrNotFound.
func (s *Commissions) Remove(ctx context.Context, id string) error {
	if s.Store == nil {
		return errors.New("app: no commission store configured")
	}
	return s.Store.Delete(id)
}

// Totals is the footer aggregate for a set of commission rows.
type Totals struct {
	ListingPrice float64
	Rate3        float64
	Rate6        float64
	Likely       float64
	Rows         int
}

// Total sums the rows it is given. Pass the filtered rows; the footer
// follows the current selection, unlike the filter-chip counts.
func Total(rows []record.Commission) Totals {
	var t Totals
	for _, c := range rows {
		t.ListingPrice += c.ListingPrice
		t.Rate3 += c.Rate3
		t.Rate6 += c.Rate6
		t.Likely += c.Likely
		t.Rows++
	}
	t.ListingPrice = record.RoundCents(t.ListingPrice)
	t.Rate3 = record.RoundCents(t.Rate3)
	t.Rate6 = record.RoundCents(t.Rate6)
	t.Likely = record.RoundCents(t.Likely)
	return t
}
