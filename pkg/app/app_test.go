package app_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/store"
)

func TestSeeded(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	props, err := bo.Listings.List(ctx)
	if err != nil {
		t.Fatalf("list properties: %v", err)
	}
	if len(props) != 7 {
		t.Errorf("properties = %d, want 7", len(props))
	}
	clients, err := bo.Clients.List(ctx)
	if err != nil {
		t.Fatalf("list clients: %v", err)
	}
	if len(clients) != 3 {
		t.Errorf("clients = %d, want 3", len(clients))
	}
	commissions, err := bo.Commissions.List(ctx)
	if err != nil {
		t.Fatalf("list commissions: %v", err)
	}
	if len(commissions) != 9 {
		t.Errorf("commissions = %d, want 9", len(commissions))
	}
}

func TestSetNickname(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	p, err := bo.Listings.SetNickname(ctx, "1", "  Perry House  ")
	if err != nil {
		t.Fatalf("set nickname: %v", err)
	}
	if p.Nickname != "Perry House" {
		t.Errorf("nickname = %q, want trimmed", p.Nickname)
	}
	if p.DisplayName() != "Perry House" {
		t.Errorf("display name = %q, want nickname", p.DisplayName())
	}

	p, err = bo.Listings.SetNickname(ctx, "1", "")
	if err != nil {
		t.Fatalf("clear nickname: %v", err)
	}
	if p.DisplayName() != p.Address {
		t.Errorf("display name = %q, want address after clearing", p.DisplayName())
	}

	if _, err := bo.Listings.SetNickname(ctx, "99", "x"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestSetStatusRejectsUnknown(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	if _, err := bo.Listings.SetStatus(ctx, "1", "active"); err == nil {
		t.Fatal("expected an error for an unknown status")
	}
	p, _ := bo.Listings.Get(ctx, "1")
	if p.Status != record.StatusListed {
		t.Errorf("status changed to %q on a failed set", p.Status)
	}

	p, err := bo.Listings.SetStatus(ctx, "1", record.StatusSold)
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if p.Status != record.StatusSold {
		t.Errorf("status = %q, want sold", p.Status)
	}
}

func TestAddNotePrepends(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	p, err := bo.Listings.AddNote(ctx, "1", "  Buyer toured today  ")
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if len(p.Notes) != 3 {
		t.Fatalf("notes = %d, want 3", len(p.Notes))
	}
	if p.Notes[0].Content != "Buyer toured today" {
		t.Errorf("newest note = %q, want the new one first, trimmed", p.Notes[0].Content)
	}
	if p.Notes[1].Content != "Great location near schools" {
		t.Errorf("older note displaced: %q", p.Notes[1].Content)
	}

	if _, err := bo.Listings.AddNote(ctx, "1", "   "); err == nil {
		t.Error("expected an error for a blank note")
	}
}

func TestClientNoteRefreshesUpdatedAt(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	before, _ := bo.Clients.Get(ctx, "1")
	c, err := bo.Clients.AddNote(ctx, "1", "Sent two new listings")
	if err != nil {
		t.Fatalf("add note: %v", err)
	}
	if !c.UpdatedAt.After(before.UpdatedAt.Time) {
		t.Errorf("UpdatedAt not refreshed: %v -> %v", before.UpdatedAt, c.UpdatedAt)
	}
	if c.Notes[0].Content != "Sent two new listings" {
		t.Errorf("newest note = %q, want the new one first", c.Notes[0].Content)
	}
}

func TestClientSetStatusVocabulary(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	c, err := bo.Clients.SetStatus(ctx, "1", "negotiating")
	if err != nil {
		t.Fatalf("set status: %v", err)
	}
	if c.Status != record.ClientNegotiating {
		t.Errorf("status = %q, want Negotiating", c.Status)
	}

	if _, err := bo.Clients.SetStatus(ctx, "1", "Closed"); err == nil {
		t.Error("expected an error for a status outside the vocabulary")
	}

	bo.Clients.Vocabulary = []record.ClientStatus{"Hot", "Cold"}
	if _, err := bo.Clients.SetStatus(ctx, "1", "hot"); err != nil {
		t.Errorf("custom vocabulary: %v", err)
	}
}

func TestAddProperty(t *testing.T) {
	ctx := context.Background()
	bo := app.New()

	p, err := bo.Listings.Add(ctx, record.Property{
		Address: "42 Elm St, Ogden UT 84401",
		Type:    record.TypeSale,
		Status:  record.StatusListed,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if p.ID == "" {
		t.Error("add did not assign an id")
	}
	if p.DateAdded.IsZero() {
		t.Error("add did not stamp DateAdded")
	}
	if p.Details == nil || p.Details.PropertyType() != record.TypeSale {
		t.Errorf("details = %#v, want the sale variant", p.Details)
	}

	if _, err := bo.Listings.Add(ctx, record.Property{Type: record.TypeSale, Status: record.StatusListed}); err == nil {
		t.Error("expected an error for a blank address")
	}
}

func TestAddClientDefaults(t *testing.T) {
	ctx := context.Background()
	bo := app.New()

	c, err := bo.Clients.Add(ctx, record.Client{
		Name:       "Dana White",
		LookingFor: "Small office, walkable area",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Status != record.ClientNewLead {
		t.Errorf("status = %q, want New Lead", c.Status)
	}
	if c.CreatedAt.IsZero() || !c.UpdatedAt.Equal(c.CreatedAt.Time) {
		t.Errorf("timestamps not initialized together: %v / %v", c.CreatedAt, c.UpdatedAt)
	}
}

func TestCommissionAdd(t *testing.T) {
	ctx := context.Background()
	bo := app.New()

	c, err := bo.Commissions.Add(ctx, "Tefco Building", "Tefco Corp", 386595.00, record.Rate3)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if c.Rate3 != 11597.85 || c.Rate6 != 23195.70 {
		t.Errorf("rates = %v / %v, want 11597.85 / 23195.70", c.Rate3, c.Rate6)
	}
	if c.Likely != c.Rate3 {
		t.Errorf("likely = %v, want the selected rate", c.Likely)
	}

	if _, err := bo.Commissions.Add(ctx, "Bad Deal", "", math.NaN(), record.Rate3); err == nil {
		t.Error("expected an error for a NaN price")
	}
}

func TestAddFromListing(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	p, _ := bo.Listings.Get(ctx, "4") // leased at $2,500/month
	c, err := bo.Commissions.AddFromListing(ctx, p, "Johnson Retail", record.Rate6)
	if err != nil {
		t.Fatalf("add from listing: %v", err)
	}
	if c.ListingPrice != 2500 {
		t.Errorf("listing price = %v, want 2500 parsed from %q", c.ListingPrice, p.Price)
	}
	if c.Likely != 150 {
		t.Errorf("likely = %v, want 150", c.Likely)
	}
	if c.Property != "Downtown Office" {
		t.Errorf("property = %q, want the nickname", c.Property)
	}
	if c.ListingStatus != p.Status {
		t.Errorf("listing status = %q, want %q", c.ListingStatus, p.Status)
	}

	noPrice, _ := bo.Listings.Get(ctx, "5")
	if _, err := bo.Commissions.AddFromListing(ctx, noPrice, "x", record.Rate3); err == nil {
		t.Error("expected an error for a listing without a price")
	}
}

func TestSetLikely(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	c, err := bo.Commissions.SetLikely(ctx, "6", 3800.004)
	if err != nil {
		t.Fatalf("set likely: %v", err)
	}
	if c.Likely != 3800.00 {
		t.Errorf("likely = %v, want rounded to cents", c.Likely)
	}
	if c.Rate3 != 5197.50 {
		t.Errorf("rate3 = %v, the derived columns must not move", c.Rate3)
	}

	if _, err := bo.Commissions.SetLikely(ctx, "6", math.Inf(1)); err == nil {
		t.Error("expected an error for an infinite amount")
	}
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	c, err := bo.Commissions.MarkPaid(ctx, "1")
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if c.CommissionStatus != record.PaymentPaid {
		t.Errorf("status = %q, want paid", c.CommissionStatus)
	}

	if _, err := bo.Commissions.MarkPaid(ctx, "99"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestSetClosing(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	c, err := bo.Commissions.SetClosing(ctx, "1", time.Time{})
	if err != nil {
		t.Fatalf("set closing: %v", err)
	}
	if !c.EstimatedClosing.TBD() {
		t.Error("zero time should mark the closing TBD")
	}
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	if err := bo.Listings.Remove(ctx, "2"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	props, _ := bo.Listings.List(ctx)
	if len(props) != 6 {
		t.Errorf("properties after remove = %d, want 6", len(props))
	}
	if err := bo.Listings.Remove(ctx, "2"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("double remove: err = %v, want ErrNotFound", err)
	}
}

func TestTotal(t *testing.T) {
	bo := app.Seeded()
	rows, _ := bo.Commissions.List(context.Background())

	t.Run("all rows", func(t *testing.T) {
		got := app.Total(rows)
		if got.Rows != 9 {
			t.Errorf("rows = %d, want 9", got.Rows)
		}
		if got.Rate3 != 80156.60 {
			t.Errorf("rate3 total = %v, want 80156.60", got.Rate3)
		}
		if got.Rate6 != 160313.18 {
			t.Errorf("rate6 total = %v, want 160313.18", got.Rate6)
		}
		if got.Likely != 81765.35 {
			t.Errorf("likely total = %v, want 81765.35", got.Likely)
		}
	})

	t.Run("empty", func(t *testing.T) {
		got := app.Total(nil)
		if got.Rows != 0 || got.Likely != 0 {
			t.Errorf("empty total = %+v, want zeros", got)
		}
	})
}

func TestSetDetails(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	closing := record.Date(2025, time.September, 1)
	p, err := bo.Listings.SetDetails(ctx, "1", record.SaleDetails{ClosingDate: closing})
	if err != nil {
		t.Fatalf("set details: %v", err)
	}
	sale, ok := p.Details.(record.SaleDetails)
	if !ok {
		t.Fatalf("details = %T, want SaleDetails", p.Details)
	}
	if !sale.ClosingDate.Equal(closing.Time) {
		t.Errorf("closing = %v, want %v", sale.ClosingDate, closing)
	}

	if _, err := bo.Listings.SetDetails(ctx, "1", record.LeaseDetails{}); err == nil {
		t.Error("lease details on a sale listing should be rejected")
	}
}

func TestClientEdit(t *testing.T) {
	ctx := context.Background()
	bo := app.Seeded()

	before, _ := bo.Clients.Get(ctx, "1")
	c, err := bo.Clients.Edit(ctx, "1", func(c *record.Client) error {
		c.Phone = "(801) 555-0000"
		c.LookingFor = "Acreage in Weber County"
		return nil
	})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if c.Phone != "(801) 555-0000" {
		t.Errorf("phone = %q, want the edited value", c.Phone)
	}
	if !c.UpdatedAt.After(before.UpdatedAt.Time) {
		t.Errorf("updatedAt = %v, want a refresh past %v", c.UpdatedAt, before.UpdatedAt)
	}

	if _, err := bo.Clients.Edit(ctx, "1", func(c *record.Client) error {
		c.Name = ""
		return nil
	}); err == nil {
		t.Error("an edit that clears the name should be rejected")
	}
	after, _ := bo.Clients.Get(ctx, "1")
	if after.Name == "" {
		t.Error("failed edit must not leak into the store")
	}
}
