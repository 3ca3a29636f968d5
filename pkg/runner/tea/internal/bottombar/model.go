package bottombar

import (
	"fmt"
	"strings"

	"tableflip.dev/crest/pkg/runner/tea/internal/theme"
)

// Mode represents the UI mode that influences footer layout.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeSearch
	ModeCommand
	ModeHelp
)

// Model tracks footer/help/status rendering state.
type Model struct {
	mode        Mode
	helpLine    string
	statusLine  string
	filterLine  string
	commandView string

	styles theme.FooterTheme
}

// New returns a footer model with sensible defaults.
func New() Model {
	return Model{
		mode:   ModeNormal,
		styles: theme.Default().Footer,
	}
}

// SetMode updates the visual mode.
func (m *Model) SetMode(mode Mode) {
	if m.mode == mode {
		return
	}
	m.mode = mode
	if mode != ModeCommand {
		m.commandView = ""
	}
}

// SetHelp sets the contextual help line.
func (m *Model) SetHelp(help string) {
	m.helpLine = help
}

// SetStatus sets the status message to display.
func (m *Model) SetStatus(status string) {
	m.statusLine = status
}

// SetFilter summarizes the active filters, e.g. `status:pending sort:closing`.
func (m *Model) SetFilter(filter string) {
	m.filterLine = filter
}

// UpdateCommandInput refreshes the rendered command line.
func (m *Model) UpdateCommandInput(view string) {
	m.commandView = ":" + view
}

// Height reports the number of lines consumed by the footer.
func (m Model) Height() int {
	return 1
}

// View renders the footer string.
func (m Model) View() string {
	if m.mode == ModeCommand {
		if m.commandView == "" {
			return ":"
		}
		return m.commandView
	}

	var segments []string
	if m.helpLine != "" {
		segments = append(segments, m.styles.Help.Render(m.helpLine))
	}
	if m.statusLine != "" {
		segments = append(segments, m.styles.Status.Render(m.statusLine))
	}
	if m.filterLine != "" {
		segments = append(segments, m.styles.Filter.Render(fmt.Sprintf("filters %s", m.filterLine)))
	}
	if len(segments) == 0 {
		return " "
	}
	return strings.Join(segments, " │ ")
}
