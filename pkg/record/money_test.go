package record_test

import (
	"testing"

	"tableflip.dev/crest/pkg/record"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		raw     string
		want    float64
		wantErr bool
	}{
		{raw: "$987,900", want: 987900},
		{raw: "$2,500/month", want: 2500},
		{raw: "1650000", want: 1650000},
		{raw: "$404,291.33", want: 404291.33},
		{raw: " $99,000 ", want: 99000},
		{raw: "", wantErr: true},
		{raw: "$", wantErr: true},
		{raw: "call for price", wantErr: true},
		{raw: "/month", wantErr: true},
		{raw: "-500", wantErr: true},
		{raw: "0", wantErr: true},
	}
	for _, tc := range tests {
		got, err := record.ParseMoney(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q) expected an error, got %v", tc.raw, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q) unexpected error: %v", tc.raw, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 11597.85, want: "$11,597.85"},
		{in: 2970, want: "$2,970.00"},
		{in: 464062.5, want: "$464,062.50"},
		{in: 987900, want: "$987,900.00"},
		{in: 5, want: "$5.00"},
		{in: -42.5, want: "-$42.50"},
		{in: 1234567.89, want: "$1,234,567.89"},
	}
	for _, tc := range tests {
		if got := record.FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
