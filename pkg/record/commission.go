package record

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Rate selects which commission percentage a deal is expected to close at.
type Rate string

const (
	Rate3 Rate = "3"
	Rate6 Rate = "6"
)

// ParseRate accepts "3" or "6" (a trailing % is tolerated).
func ParseRate(raw string) (Rate, error) {
	switch strings.TrimSuffix(strings.TrimSpace(raw), "%") {
	case "3":
		return Rate3, nil
	case "6":
		return Rate6, nil
	}
	return "", fmt.Errorf("record: unknown commission rate %q", raw)
}

// Pct returns the fraction the rate represents.
func (r Rate) Pct() float64 {
	if r == Rate6 {
		return 0.06
	}
	return 0.03
}

// PaymentStatus is the payout axis of a commission, kept separate from the
// listing-status axis.
type PaymentStatus string

const (
	PaymentNotPaid PaymentStatus = "not-paid"
	PaymentPaid    PaymentStatus = "paid"
)

// AllPaymentStatuses returns the supported payment statuses.
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentNotPaid, PaymentPaid}
}

// ParsePaymentStatus converts a string to a PaymentStatus. The retired
// tri-state vocabulary is mapped onto the two-axis schema: pending and
// confirmed were both unpaid states.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "not-paid", "notpaid", "unpaid", "pending", "confirmed":
		return PaymentNotPaid, nil
	case "paid":
		return PaymentPaid, nil
	}
	return "", fmt.Errorf("record: unknown payment status %q", raw)
}

// Label renders a payment status for table cells.
func (s PaymentStatus) Label() string {
	if s == PaymentPaid {
		return "Paid"
	}
	return "Not Paid"
}

// Closing is an estimated closing date that may still be unknown ("TBD").
type Closing struct {
	Date time.Time `json:"date,omitempty"`
}

// ClosingOn wraps a known closing date.
func ClosingOn(t time.Time) Closing { return Closing{Date: t} }

// TBD reports whether the closing date is still a placeholder.
func (c Closing) TBD() bool { return c.Date.IsZero() }

func (c Closing) String() string {
	if c.TBD() {
		return "TBD"
	}
	return c.Date.Format("Jan 2, 2006")
}

// Commission is one row of the commission pipeline. Rate3 and Rate6 are
// derived from the listing price; Likely defaults to the selected rate but
// may be overridden manually.
type Commission struct {
	ID               string        `json:"id"`
	Property         string        `json:"property"`
	Client           string        `json:"client"`
	ListingPrice     float64       `json:"listingPrice"`
	Rate3            float64       `json:"rate3"`
	Rate6            float64       `json:"rate6"`
	Likely           float64       `json:"likely"`
	EstimatedClosing Closing       `json:"estimatedClosing"`
	ListingStatus    ListingStatus `json:"listingStatus"`
	CommissionStatus PaymentStatus `json:"commissionStatus"`
}

// RecordID implements the store key contract.
func (c Commission) RecordID() string { return c.ID }

// RoundCents rounds to two decimal places, the resolution every commission
// amount is held at.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// DeriveCommission computes the rate amounts for a listing price and picks
// the likely payout from the selected rate. The price must be a finite
// positive number; unguarded parses upstream used to let NaN through into
// the totals.
func DeriveCommission(property, client string, listingPrice float64, rate Rate) (Commission, error) {
	if math.IsNaN(listingPrice) || math.IsInf(listingPrice, 0) {
		return Commission{}, fmt.Errorf("record: listing price is not a number")
	}
	if listingPrice <= 0 {
		return Commission{}, fmt.Errorf("record: listing price must be positive, got %v", listingPrice)
	}
	if strings.TrimSpace(property) == "" {
		return Commission{}, fmt.Errorf("record: commission property required")
	}
	c := Commission{
		Property:         property,
		Client:           client,
		ListingPrice:     listingPrice,
		Rate3:            RoundCents(listingPrice * Rate3.Pct()),
		Rate6:            RoundCents(listingPrice * Rate6.Pct()),
		ListingStatus:    StatusListed,
		CommissionStatus: PaymentNotPaid,
	}
	if rate == Rate6 {
		c.Likely = c.Rate6
	} else {
		c.Likely = c.Rate3
	}
	return c, nil
}
