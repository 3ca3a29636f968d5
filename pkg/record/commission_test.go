package record_test

import (
	"strings"
	"testing"

	"tableflip.dev/crest/pkg/record"
)

func TestDeriveCommission(t *testing.T) {
	tests := map[string]struct {
		price   float64
		rate    record.Rate
		rate3   float64
		rate6   float64
		likely  float64
		wantErr bool
	}{
		"three percent": {
			price:  386595.00,
			rate:   record.Rate3,
			rate3:  11597.85,
			rate6:  23195.70,
			likely: 11597.85,
		},
		"six percent": {
			price:  464062.50,
			rate:   record.Rate6,
			rate3:  13921.88,
			rate6:  27843.75,
			likely: 27843.75,
		},
		"rounds to cents": {
			price:  404291.33,
			rate:   record.Rate3,
			rate3:  12128.74,
			rate6:  24257.48,
			likely: 12128.74,
		},
		"zero price": {
			price:   0,
			rate:    record.Rate3,
			wantErr: true,
		},
		"negative price": {
			price:   -100,
			rate:    record.Rate3,
			wantErr: true,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := record.DeriveCommission("Tefco Building", "Tefco Corp", tc.price, tc.rate)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error for price %v", tc.price)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Rate3 != tc.rate3 {
				t.Errorf("Rate3 = %v, want %v", c.Rate3, tc.rate3)
			}
			if c.Rate6 != tc.rate6 {
				t.Errorf("Rate6 = %v, want %v", c.Rate6, tc.rate6)
			}
			if c.Likely != tc.likely {
				t.Errorf("Likely = %v, want %v", c.Likely, tc.likely)
			}
			if c.CommissionStatus != record.PaymentNotPaid {
				t.Errorf("CommissionStatus = %q, want %q", c.CommissionStatus, record.PaymentNotPaid)
			}
		})
	}
}

func TestDeriveCommissionRequiresProperty(t *testing.T) {
	if _, err := record.DeriveCommission("  ", "Tefco Corp", 1000, record.Rate3); err == nil {
		t.Fatal("expected an error for a blank property")
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		raw     string
		want    record.Rate
		wantErr bool
	}{
		{raw: "3", want: record.Rate3},
		{raw: "6", want: record.Rate6},
		{raw: "6%", want: record.Rate6},
		{raw: " 3 ", want: record.Rate3},
		{raw: "4", wantErr: true},
		{raw: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := record.ParseRate(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseRate(%q) expected an error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRate(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRate(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    record.PaymentStatus
		wantErr bool
	}{
		{raw: "paid", want: record.PaymentPaid},
		{raw: "Paid", want: record.PaymentPaid},
		{raw: "not-paid", want: record.PaymentNotPaid},
		{raw: "unpaid", want: record.PaymentNotPaid},
		{raw: "pending", want: record.PaymentNotPaid},
		{raw: "confirmed", want: record.PaymentNotPaid},
		{raw: "bogus", wantErr: true},
	}
	for _, tc := range tests {
		got, err := record.ParsePaymentStatus(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePaymentStatus(%q) expected an error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePaymentStatus(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePaymentStatus(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestClosingString(t *testing.T) {
	if got := (record.Closing{}).String(); got != "TBD" {
		t.Errorf("zero closing = %q, want TBD", got)
	}
	c := record.SeedCommissions()[0]
	if got := c.EstimatedClosing.String(); got != "Jun 15, 2025" {
		t.Errorf("closing = %q, want Jun 15, 2025", got)
	}
}

func TestSeedCommissionsConsistent(t *testing.T) {
	for _, c := range record.SeedCommissions() {
		if got := record.RoundCents(c.ListingPrice * 0.03); got != c.Rate3 {
			t.Errorf("commission %s: Rate3 = %v, derived %v", c.ID, c.Rate3, got)
		}
		if got := record.RoundCents(c.ListingPrice * 0.06); got != c.Rate6 {
			t.Errorf("commission %s: Rate6 = %v, derived %v", c.ID, c.Rate6, got)
		}
		if c.Likely <= 0 {
			t.Errorf("commission %s: non-positive likely %v", c.ID, c.Likely)
		}
		if strings.TrimSpace(c.Property) == "" {
			t.Errorf("commission %s: blank property", c.ID)
		}
	}
}
