package rowstate_test

import (
	"testing"

	"tableflip.dev/crest/pkg/rowstate"
)

func TestEditorCommitTrims(t *testing.T) {
	var e rowstate.Editor
	e.Begin("Cambridge Property")
	if !e.Editing() {
		t.Fatal("editor should be open after Begin")
	}
	if e.Buffer() != "Cambridge Property" {
		t.Errorf("buffer = %q, want the seed value", e.Buffer())
	}

	e.SetBuffer("  The Cambridge Deal  ")
	got, ok := e.Commit()
	if !ok {
		t.Fatal("commit while editing should report ok")
	}
	if got != "The Cambridge Deal" {
		t.Errorf("commit = %q, want trimmed", got)
	}
	if e.Editing() {
		t.Error("editor should close on commit")
	}
}

func TestEditorCommitAllowsEmpty(t *testing.T) {
	var e rowstate.Editor
	e.Begin("Tech Hub")
	e.SetBuffer("   ")
	got, ok := e.Commit()
	if !ok || got != "" {
		t.Fatalf("clearing a nickname: got %q ok=%v, want empty commit", got, ok)
	}
}

func TestEditorCancelDiscards(t *testing.T) {
	var e rowstate.Editor
	e.Begin("Downtown Office")
	e.SetBuffer("something else")
	e.Cancel()
	if e.Editing() {
		t.Error("editor should close on cancel")
	}
	if _, ok := e.Commit(); ok {
		t.Error("commit after cancel should report not ok")
	}
}

func TestEditorSetBufferIgnoredWhenClosed(t *testing.T) {
	var e rowstate.Editor
	e.SetBuffer("stray keystrokes")
	if e.Buffer() != "" {
		t.Errorf("buffer = %q, want empty while closed", e.Buffer())
	}
}

func TestComposerSubmit(t *testing.T) {
	var c rowstate.Composer
	c.Show()
	c.SetBuffer("  Offer pending inspection  ")
	got, ok := c.Submit()
	if !ok {
		t.Fatal("submit with content should report ok")
	}
	if got != "Offer pending inspection" {
		t.Errorf("submit = %q, want trimmed", got)
	}
	if c.Open() {
		t.Error("composer should close on submit")
	}
}

func TestComposerRejectsBlank(t *testing.T) {
	var c rowstate.Composer
	c.Show()
	c.SetBuffer("   ")
	if _, ok := c.Submit(); ok {
		t.Fatal("blank submit should report not ok")
	}
	if !c.Open() {
		t.Error("composer should stay open after a blank submit")
	}
	c.Cancel()
	if c.Open() {
		t.Error("composer should close on cancel")
	}
}

func TestRowsAreIndependent(t *testing.T) {
	var tbl rowstate.Table

	tbl.Row("1").Nickname.Begin("")
	tbl.Row("1").Nickname.SetBuffer("Perry House")
	tbl.Row("2").Note.Show()
	tbl.Row("2").Note.SetBuffer("call seller")
	tbl.Row("3").Toggle()

	if tbl.Row("2").Nickname.Editing() {
		t.Error("row 2 nickname editor opened by row 1")
	}
	if tbl.Row("1").Note.Open() {
		t.Error("row 1 composer opened by row 2")
	}
	if !tbl.Row("3").Expanded() {
		t.Error("row 3 should be expanded")
	}
	if tbl.Row("1").Expanded() {
		t.Error("row 1 should not be expanded")
	}

	got, ok := tbl.Row("1").Nickname.Commit()
	if !ok || got != "Perry House" {
		t.Fatalf("row 1 commit = %q ok=%v", got, ok)
	}
}

func TestCancelAllKeepsExpansion(t *testing.T) {
	var tbl rowstate.Table
	tbl.Row("1").Nickname.Begin("x")
	tbl.Row("2").Note.Show()
	tbl.Row("2").Toggle()

	tbl.CancelAll()

	if tbl.Row("1").Nickname.Editing() {
		t.Error("nickname editor survived CancelAll")
	}
	if tbl.Row("2").Note.Open() {
		t.Error("composer survived CancelAll")
	}
	if !tbl.Row("2").Expanded() {
		t.Error("expansion should survive CancelAll")
	}
}
