package teaui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/intel"
	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/store"
)

func newTestModel() Model {
	return New(app.Seeded(), &intel.Analyzer{}, nil)
}

func TestSwitchBoardsWithNumberKeys(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("2", &cmds)
	if m.page != pageClients {
		t.Fatalf("page = %v, want clients", m.page)
	}
	m.handleNormalKey("4", &cmds)
	if m.page != pageIntel {
		t.Fatalf("page = %v, want intel", m.page)
	}
	m.handleNormalKey("tab", &cmds)
	if m.page != pageListings {
		t.Fatalf("page = %v, want tab to wrap back to listings", m.page)
	}
}

func TestSearchNarrowsBoard(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("/", &cmds)
	if m.mode != modeSearch {
		t.Fatalf("mode = %v, want search", m.mode)
	}

	m.setQuery("cambridge")
	m.refreshBoards()

	b := m.boards[pageListings]
	if b.Len() != 1 {
		t.Fatalf("rows = %d, want 1 match", b.Len())
	}
	if b.ActiveID() != "2" {
		t.Errorf("active = %q, want the Cambridge listing", b.ActiveID())
	}

	m.setQuery("")
	m.refreshBoards()
	if b.Len() != 7 {
		t.Errorf("rows = %d, want the full board after clearing", b.Len())
	}
}

func TestCycleStatusFilter(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("f", &cmds)
	if got := m.listings.Criteria().Category; got != "listed" {
		t.Fatalf("category = %q, want listed after one press", got)
	}
	if m.boards[pageListings].Len() != 3 {
		t.Errorf("rows = %d, want 3 listed", m.boards[pageListings].Len())
	}

	for i := 0; i < len(listingFilters)-1; i++ {
		m.handleNormalKey("f", &cmds)
	}
	if got := m.listings.Criteria().Category; got != "" {
		t.Errorf("category = %q, want the cycle to land back on all", got)
	}
}

func TestPaymentFilterOnlyOnCommissions(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("p", &cmds)
	if got := m.commissions.Criteria().Facet; got != "" {
		t.Fatalf("payment = %q, p should be inert off the commissions board", got)
	}

	m.handleNormalKey("3", &cmds)
	m.handleNormalKey("p", &cmds)
	if got := m.commissions.Criteria().Facet; got != "not-paid" {
		t.Errorf("payment = %q, want not-paid", got)
	}
}

func TestTypeFilterOnListings(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("2", &cmds)
	m.handleNormalKey("t", &cmds)
	if got := m.listings.Criteria().Facet; got != "" {
		t.Fatalf("type = %q, t should be inert off the listing board", got)
	}

	m.handleNormalKey("1", &cmds)
	m.handleNormalKey("t", &cmds)
	if got := m.listings.Criteria().Facet; got != "sale" {
		t.Fatalf("type = %q, want sale after one press", got)
	}
	if m.boards[pageListings].Len() != 3 {
		t.Errorf("rows = %d, want 3 sale listings", m.boards[pageListings].Len())
	}

	for i := 0; i < len(typeFilters)-1; i++ {
		m.handleNormalKey("t", &cmds)
	}
	if got := m.listings.Criteria().Facet; got != "" {
		t.Errorf("type = %q, want the cycle to land back on all", got)
	}
}

func TestSortCycleReachesStatus(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("o", &cmds)
	m.handleNormalKey("o", &cmds)
	m.handleNormalKey("o", &cmds)
	if got := m.listings.Criteria().SortKey; got != "status" {
		t.Fatalf("sort = %q, want status after three presses", got)
	}

	rows := m.boards[pageListings].Rows()
	want := []string{"1", "3", "4", "2", "6", "5", "7"}
	for i, id := range want {
		if rows[i].ID != id {
			t.Fatalf("status sort row %d = %s, want %s", i, rows[i].ID, id)
		}
	}
}

func TestToggleExpandShowsNotes(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("enter", &cmds)
	rows := m.boards[pageListings].Rows()
	if !rows[0].Expanded {
		t.Fatal("first row should expand on enter")
	}
	if len(rows[0].Detail) == 0 {
		t.Fatal("expanded row should carry detail lines")
	}

	m.handleNormalKey("enter", &cmds)
	rows = m.boards[pageListings].Rows()
	if rows[0].Expanded {
		t.Error("second enter should collapse the row")
	}
}

func TestNicknameCommitUpdatesListing(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("n", &cmds)
	if m.mode != modeInsert || m.action != actionNickname {
		t.Fatalf("mode = %v action = %v, want nickname insert", m.mode, m.action)
	}

	m.input.SetValue("The Flats")
	m.commitInsert(&cmds)

	p, err := m.bo.Listings.Get(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Nickname != "The Flats" {
		t.Errorf("nickname = %q, want The Flats", p.Nickname)
	}
	if m.mode != modeNormal {
		t.Errorf("mode = %v, want normal after commit", m.mode)
	}
}

func TestNoteCommitPrepends(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("a", &cmds)
	m.input.SetValue("called the inspector")
	m.commitInsert(&cmds)

	p, err := m.bo.Listings.Get(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Notes) == 0 || p.Notes[0].Content != "called the inspector" {
		t.Fatalf("notes = %v, want the new note first", p.Notes)
	}
}

func TestBlankNoteDiscarded(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	before, _ := m.bo.Listings.Get(context.Background(), "1")

	m.handleNormalKey("a", &cmds)
	m.input.SetValue("   ")
	m.commitInsert(&cmds)

	after, _ := m.bo.Listings.Get(context.Background(), "1")
	if len(after.Notes) != len(before.Notes) {
		t.Errorf("notes = %d, want unchanged at %d", len(after.Notes), len(before.Notes))
	}
}

func TestMarkPaidFromBoard(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("3", &cmds)
	m.handleNormalKey("x", &cmds)

	c, err := m.bo.Commissions.Get(context.Background(), "1")
	if err != nil {
		t.Fatal(err)
	}
	if c.CommissionStatus != record.PaymentPaid {
		t.Errorf("status = %q, want paid", c.CommissionStatus)
	}
}

func TestRemoveRequiresDoubleD(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd

	m.handleNormalKey("d", &cmds)
	if _, err := m.bo.Listings.Get(context.Background(), "1"); err != nil {
		t.Fatal("a single d must not remove the row")
	}

	m.handleNormalKey("d", &cmds)
	if _, err := m.bo.Listings.Get(context.Background(), "1"); err == nil {
		t.Fatal("dd should remove the row")
	} else if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.boards[pageListings].Len() != 6 {
		t.Errorf("rows = %d, want 6 after removal", m.boards[pageListings].Len())
	}
}

func TestAnalysisResultShowsSummary(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd
	m.handleNormalKey("4", &cmds)

	s, err := m.analyzer.Analyze(context.Background(), "offer.pdf")
	if err != nil {
		t.Fatal(err)
	}
	model, _ := m.Update(analysisMsg{summary: s})
	m = model.(Model)

	if m.summary == nil {
		t.Fatal("summary should be retained after analysis")
	}
	m.termWidth, m.termHeight = 100, 30
	view := stripANSI(m.View())
	if !strings.Contains(view, "Offer Summary") {
		t.Errorf("view should show the summary card:\n%s", view)
	}
	if !strings.Contains(view, "123 Main St") {
		t.Errorf("view should show the extracted property:\n%s", view)
	}
}

func TestCancelledAnalysisReportsStatus(t *testing.T) {
	m := newTestModel()

	model, _ := m.Update(analysisMsg{err: context.Canceled})
	m = model.(Model)

	if m.summary != nil {
		t.Error("cancelled analysis must not produce a summary")
	}
	if !strings.Contains(m.status, "cancelled") {
		t.Errorf("status = %q, want a cancellation notice", m.status)
	}
}

func TestUploadRejectsNonPDF(t *testing.T) {
	m := newTestModel()
	var cmds []tea.Cmd
	m.handleNormalKey("4", &cmds)
	m.handleNormalKey("u", &cmds)
	m.input.SetValue("notes.txt")
	m.commitInsert(&cmds)

	if len(cmds) == 0 {
		t.Fatal("upload should queue an analysis command")
	}
	raw := cmds[len(cmds)-1]()
	msg, ok := raw.(analysisMsg)
	if !ok {
		t.Fatalf("expected analysisMsg, got %T", raw)
	}
	if msg.err == nil {
		t.Error("analyzing a non-PDF should fail")
	}
}

func TestViewShowsTabsAndCounts(t *testing.T) {
	m := newTestModel()
	m.termWidth, m.termHeight = 100, 30

	view := stripANSI(m.View())
	for _, want := range []string{"1 Listings", "2 Clients", "3 Commissions", "4 Intel", "all 7", "listed 3", "sale 3", "lease 2"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}

	var cmds []tea.Cmd
	m.handleNormalKey("3", &cmds)
	view = stripANSI(m.View())
	if !strings.Contains(view, "totals") {
		t.Errorf("commissions view should carry a totals footer:\n%s", view)
	}
	for _, want := range []string{"not-paid", "paid"} {
		if !strings.Contains(view, want) {
			t.Errorf("commissions counts missing %q:\n%s", want, view)
		}
	}
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	if got := truncate("Crème Brûlée Café", 8); got != "Crème B…" {
		t.Errorf("truncate = %q, want %q", got, "Crème B…")
	}
	if got := truncate("Crème Brûlée Café", 8); !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q, want the input untouched", got)
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
