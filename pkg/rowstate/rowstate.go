// Package rowstate tracks the transient edit state of list rows: an inline
// nickname editor, a note composer, and an expand toggle. The state here is
// UI-only; nothing is written to a store until a Commit or Submit, and a
// Cancel always leaves the record untouched.
package rowstate

import "strings"

// Editor is a single-field inline editor. It moves between viewing and
// editing; the buffer only matters while editing.
type Editor struct {
	editing bool
	buffer  string
}

// Editing reports whether the editor is open.
func (e *Editor) Editing() bool { return e.editing }

// Buffer returns the in-progress text.
func (e *Editor) Buffer() string { return e.buffer }

// Begin opens the editor seeded with the current value. Beginning while
// already editing reseeds the buffer.
func (e *Editor) Begin(current string) {
	e.editing = true
	e.buffer = current
}

// SetBuffer replaces the in-progress text. Ignored while not editing.
func (e *Editor) SetBuffer(s string) {
	if e.editing {
		e.buffer = s
	}
}

// Commit closes the editor and returns the trimmed buffer with ok=true.
// While not editing it reports ok=false.
func (e *Editor) Commit() (string, bool) {
	if !e.editing {
		return "", false
	}
	value := strings.TrimSpace(e.buffer)
	e.editing = false
	e.buffer = ""
	return value, true
}

// Cancel closes the editor and discards the buffer.
func (e *Editor) Cancel() {
	e.editing = false
	e.buffer = ""
}

// Composer is the add-note input. Unlike Editor it refuses to submit
// blank content; an empty submit keeps the composer open.
type Composer struct {
	open   bool
	buffer string
}

// Open reports whether the composer is visible.
func (c *Composer) Open() bool { return c.open }

// Buffer returns the in-progress text.
func (c *Composer) Buffer() string { return c.buffer }

// Show opens the composer with an empty buffer.
func (c *Composer) Show() {
	c.open = true
	c.buffer = ""
}

// SetBuffer replaces the in-progress text. Ignored while hidden.
func (c *Composer) SetBuffer(s string) {
	if c.open {
		c.buffer = s
	}
}

// Submit returns the trimmed content and closes the composer. Whitespace
// only content reports ok=false and leaves the composer open.
func (c *Composer) Submit() (string, bool) {
	if !c.open {
		return "", false
	}
	content := strings.TrimSpace(c.buffer)
	if content == "" {
		return "", false
	}
	c.open = false
	c.buffer = ""
	return content, true
}

// Cancel closes the composer and discards the buffer.
func (c *Composer) Cancel() {
	c.open = false
	c.buffer = ""
}

// Row is the per-row state bundle.
type Row struct {
	Nickname Editor
	Note     Composer
	expanded bool
}

// Expanded reports whether the row's detail section is open.
func (r *Row) Expanded() bool { return r.expanded }

// Toggle flips the detail section.
func (r *Row) Toggle() { r.expanded = !r.expanded }

// Table holds row state keyed by record id. Rows are independent; editing
// one never disturbs another. The zero value is ready to use.
type Table struct {
	rows map[string]*Row
}

// Row returns the state for the given record id, creating it on first use.
func (t *Table) Row(id string) *Row {
	if t.rows == nil {
		t.rows = make(map[string]*Row)
	}
	r, ok := t.rows[id]
	if !ok {
		r = &Row{}
		t.rows[id] = r
	}
	return r
}

// Forget drops the state for a removed record.
func (t *Table) Forget(id string) {
	delete(t.rows, id)
}

// CancelAll closes every open editor and composer, leaving expansion
// toggles alone. Used when a board loses focus.
func (t *Table) CancelAll() {
	for _, r := range t.rows {
		r.Nickname.Cancel()
		r.Note.Cancel()
	}
}
