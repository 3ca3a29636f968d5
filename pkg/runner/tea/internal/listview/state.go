// Package listview tracks cursor and scroll position over a board of
// expandable rows. Rows render as one summary line plus optional detail
// lines when expanded; the state keeps the active row visible as the
// board refreshes underneath it.
package listview

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
)

// Row is one board row ready to render.
type Row struct {
	ID       string
	Summary  string
	Detail   []string
	Expanded bool
}

// State tracks the visible rows and cursor position.
type State struct {
	rows []Row
	// position within rows
	index int
	// virtual scroll offset in rendered lines
	scrollOffset int
	viewHeight   int

	activeStyle lipgloss.Style
	detailStyle lipgloss.Style
}

// NewState constructs an empty state.
func NewState() *State {
	return &State{
		activeStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
		detailStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

// SetRows replaces the board contents. The cursor follows the previously
// active row id when it survives the refresh, otherwise it clamps.
func (s *State) SetRows(rows []Row) {
	prevID := s.ActiveID()
	prevScroll := s.scrollOffset

	s.rows = rows
	if len(rows) == 0 {
		s.index = 0
		s.scrollOffset = 0
		return
	}

	s.index = 0
	if prevID != "" {
		for i, r := range rows {
			if r.ID == prevID {
				s.index = i
				break
			}
		}
	}
	s.scrollOffset = clampScrollOffset(prevScroll, s.maxScrollOffset(s.viewHeight))
	s.ensureScrollVisible()
}

func clampScrollOffset(offset, max int) int {
	if offset < 0 {
		offset = 0
	}
	if max < 0 {
		max = 0
	}
	if offset > max {
		return max
	}
	return offset
}

// Rows returns the currently loaded rows.
func (s *State) Rows() []Row {
	return s.rows
}

// Len reports the number of rows.
func (s *State) Len() int { return len(s.rows) }

// Index returns the cursor position.
func (s *State) Index() int { return s.index }

// Move moves the cursor by delta, clamping at the board edges.
func (s *State) Move(delta int) bool {
	if len(s.rows) == 0 {
		return false
	}
	s.index += delta
	if s.index < 0 {
		s.index = 0
	}
	if s.index >= len(s.rows) {
		s.index = len(s.rows) - 1
	}
	s.ensureScrollVisible()
	return true
}

// Top moves the cursor to the first row.
func (s *State) Top() {
	s.index = 0
	s.scrollOffset = 0
}

// Bottom moves the cursor to the last row.
func (s *State) Bottom() {
	if len(s.rows) == 0 {
		return
	}
	s.index = len(s.rows) - 1
	s.ensureScrollVisible()
}

// ActiveID returns the id of the row under the cursor.
func (s *State) ActiveID() string {
	if len(s.rows) == 0 {
		return ""
	}
	return s.rows[s.index].ID
}

// rowTop returns the rendered line the given row starts at.
func (s *State) rowTop(idx int) int {
	top := 0
	for i := 0; i < idx && i < len(s.rows); i++ {
		top += s.rowHeight(i)
	}
	return top
}

func (s *State) rowHeight(idx int) int {
	if idx < 0 || idx >= len(s.rows) {
		return 0
	}
	r := s.rows[idx]
	if r.Expanded {
		return 1 + len(r.Detail)
	}
	return 1
}

// ensureScrollVisible adjusts scroll offset so the active row is in view.
func (s *State) ensureScrollVisible() {
	height := s.viewHeight
	if height <= 0 {
		height = 25
	}
	cursorTop := s.rowTop(s.index)
	cursorBottom := cursorTop + s.rowHeight(s.index) - 1
	if cursorTop < s.scrollOffset {
		s.scrollOffset = cursorTop
	}
	viewBottom := s.scrollOffset + height - 1
	if cursorBottom > viewBottom {
		s.scrollOffset = cursorBottom - height + 1
		if s.scrollOffset < 0 {
			s.scrollOffset = 0
		}
	}
}

func (s *State) maxScrollOffset(height int) int {
	if height <= 0 {
		return 0
	}
	total := 0
	for i := range s.rows {
		total += s.rowHeight(i)
	}
	max := total - height
	if max < 0 {
		return 0
	}
	return max
}

// Viewport renders the rows within height, returning the visible text and
// the full content height.
func (s *State) Viewport(height int) (string, int) {
	if height <= 0 {
		return "", 0
	}
	s.viewHeight = height
	content := s.renderAll()
	if s.scrollOffset < 0 {
		s.scrollOffset = 0
	}
	if s.scrollOffset >= len(content) {
		s.scrollOffset = 0
	}
	end := s.scrollOffset + height
	if end > len(content) {
		end = len(content)
	}
	return strings.Join(content[s.scrollOffset:end], "\n"), len(content)
}

func (s *State) renderAll() []string {
	var lines []string
	for idx, r := range s.rows {
		caret := "  "
		summary := r.Summary
		if idx == s.index {
			caret = "→ "
			summary = s.activeStyle.Render(summary)
		}
		lines = append(lines, caret+summary)
		if r.Expanded {
			for _, d := range r.Detail {
				lines = append(lines, "    "+s.detailStyle.Render(d))
			}
		}
	}
	return lines
}
