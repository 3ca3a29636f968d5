package get

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/crest/pkg/record"
)

func TestClosingWithin(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	rows := []record.Commission{
		{ID: "soon", EstimatedClosing: record.ClosingOn(time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC))},
		{ID: "later", EstimatedClosing: record.ClosingOn(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "past", EstimatedClosing: record.ClosingOn(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))},
		{ID: "tbd"},
	}

	got := closingWithin(rows, now, 30*24*time.Hour)
	if len(got) != 1 || got[0].ID != "soon" {
		t.Fatalf("closingWithin = %v, want only the row closing this month", ids(got))
	}

	got = closingWithin(rows, now, 120*24*time.Hour)
	if len(got) != 2 {
		t.Fatalf("closingWithin = %v, want two rows inside four months", ids(got))
	}
}

func TestDoWithoutBackOffice(t *testing.T) {
	s := Get{Kind: Listings}
	if err := s.Do(context.Background()); err == nil {
		t.Fatal("expected an error without a back office")
	}
}

func ids(rows []record.Commission) []string {
	out := make([]string, 0, len(rows))
	for _, c := range rows {
		out = append(out, c.ID)
	}
	return out
}
