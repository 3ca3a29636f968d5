package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/intel"
	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/rowstate"
	"tableflip.dev/crest/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/crest/pkg/runner/tea/internal/listview"
	"tableflip.dev/crest/pkg/runner/tea/internal/theme"
	"tableflip.dev/crest/pkg/view"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeSearch
	modeCommand
	modeHelp
)

type page int

const (
	pageListings page = iota
	pageClients
	pageCommissions
	pageIntel
)

var pageNames = map[page]string{
	pageListings:    "Listings",
	pageClients:     "Clients",
	pageCommissions: "Commissions",
	pageIntel:       "Intel",
}

type action int

const (
	actionNone action = iota
	actionNickname
	actionNote
	actionAsk
	actionUpload
)

// Model contains UI state
type Model struct {
	bo       *app.BackOffice
	analyzer *intel.Analyzer
	archive  *intel.Archive
	ctx      context.Context

	mode   mode
	page   page
	action action

	listings    *view.Controller[record.Property]
	clients     *view.Controller[record.Client]
	commissions *view.Controller[record.Commission]

	boards map[page]*listview.State

	listingRows rowstate.Table
	clientRows  rowstate.Table

	// which status chip is active, per board
	listingFilter    int
	clientFilter     int
	commissionFilter int
	typeFilter       int
	paymentFilter    int
	listingSort      int
	clientSort       int
	commissionSort   int

	// intel state
	summary      *intel.Summary
	conversation intel.Conversation
	analyzing    bool
	stopAnalysis context.CancelFunc

	input  textinput.Model
	footer bottombar.Model
	th     theme.Theme

	status string

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int
}

const normalHelp = "1-4 boards, j/k move, / search, f filter, t type, p payment, o sort, enter expand, n nickname, a note, x paid, dd remove, ? help"

// New creates a new UI model backed by the BackOffice.
func New(bo *app.BackOffice, analyzer *intel.Analyzer, archive *intel.Archive) Model {
	ti := textinput.New()
	ti.Placeholder = "Type here"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	m := Model{
		bo:          bo,
		analyzer:    analyzer,
		archive:     archive,
		ctx:         context.Background(),
		mode:        modeNormal,
		page:        pageListings,
		listings:    view.NewController(bo.Listings.Store, view.Properties()),
		clients:     view.NewController(bo.Clients.Store, view.Clients()),
		commissions: view.NewController(bo.Commissions.Store, view.Commissions()),
		boards: map[page]*listview.State{
			pageListings:    listview.NewState(),
			pageClients:     listview.NewState(),
			pageCommissions: listview.NewState(),
		},
		input:  ti,
		footer: bottombar.New(),
		th:     theme.Default(),
		status: "NORMAL",
	}
	m.footer.SetHelp(normalHelp)
	m.refreshBoards()
	return m
}

// Init loads initial data
func (m Model) Init() tea.Cmd {
	return nil
}

// messages
type errMsg struct{ err error }
type analysisMsg struct {
	summary intel.Summary
	err     error
}

// filter and sort cycles per board
var (
	listingFilters = []string{view.CategoryAll, "listed", "pending", "sold", "withdrawn"}
	typeFilters    = []string{view.CategoryAll, "sale", "lease", "business"}
	paymentFilters = []string{view.CategoryAll, "not-paid", "paid"}
	listingSorts   = []string{"", view.SortDate, view.SortAddress, view.SortStatus}
	clientSorts    = []string{"", view.SortUpdated, view.SortName}
	commissionSort = []string{"", view.SortClosing, view.SortLikely, view.SortPrice}
)

func clientFilters(vocab []record.ClientStatus) []string {
	out := []string{view.CategoryAll}
	for _, s := range vocab {
		out = append(out, string(s))
	}
	return out
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case analysisMsg:
		m.analyzing = false
		m.stopAnalysis = nil
		if msg.err != nil {
			if msg.err == context.Canceled {
				m.status = "Analysis cancelled"
			} else {
				m.status = "ERR: " + msg.err.Error()
			}
		} else {
			s := msg.summary
			m.summary = &s
			m.conversation = intel.Conversation{}
			m.status = "Analyzed " + s.Source
		}
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeSearch:
			switch msg.String() {
			case "enter":
				m.mode = modeNormal
				m.input.Blur()
				m.status = "NORMAL"
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.setQuery("")
				m.refreshBoards()
				m.status = "Search cleared"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				m.setQuery(m.input.Value())
				m.refreshBoards()
			}
		case modeInsert:
			switch msg.String() {
			case "enter":
				m.commitInsert(&cmds)
			case "esc":
				m.cancelInsert()
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				switch input {
				case "q", "quit", "exit":
					cmds = append(cmds, tea.Quit)
				case "save":
					m.saveSummary()
				case "":
					// nothing
				default:
					m.status = fmt.Sprintf("Unknown command: %s", input)
				}
				m.mode = modeNormal
				m.footer.SetMode(bottombar.ModeNormal)
				m.input.Reset()
				m.input.Blur()
			case "esc":
				m.mode = modeNormal
				m.footer.SetMode(bottombar.ModeNormal)
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
				m.footer.UpdateCommandInput(m.input.View())
			}
		case modeNormal:
			m.handleNormalKey(msg.String(), &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormalKey(key string, cmds *[]tea.Cmd) {
	switch key {
	case ":":
		m.mode = modeCommand
		m.footer.SetMode(bottombar.ModeCommand)
		m.startInput("command", "")
		*cmds = append(*cmds, textinput.Blink)

	case "1":
		m.switchPage(pageListings)
	case "2":
		m.switchPage(pageClients)
	case "3":
		m.switchPage(pageCommissions)
	case "4":
		m.switchPage(pageIntel)
	case "tab":
		m.switchPage((m.page + 1) % 4)

	case "j", "down":
		if b := m.board(); b != nil {
			b.Move(1)
		}
	case "k", "up":
		if b := m.board(); b != nil {
			b.Move(-1)
		}
	case "g":
		if b := m.board(); b != nil {
			b.Top()
		}
	case "G":
		if b := m.board(); b != nil {
			b.Bottom()
		}

	case "/":
		if m.page != pageIntel {
			m.mode = modeSearch
			m.startInput("Search", m.criteria().Query)
			*cmds = append(*cmds, textinput.Blink)
		}

	case "f":
		m.cycleFilter()
	case "t":
		if m.page == pageListings {
			m.typeFilter = (m.typeFilter + 1) % len(typeFilters)
			m.listings.SetFacet(normalize(typeFilters[m.typeFilter]))
			m.refreshBoards()
		}
	case "p":
		if m.page == pageCommissions {
			m.paymentFilter = (m.paymentFilter + 1) % len(paymentFilters)
			m.commissions.SetFacet(normalize(paymentFilters[m.paymentFilter]))
			m.refreshBoards()
		}
	case "o":
		m.cycleSort()

	case "enter", "space":
		m.toggleExpand()

	case "n":
		if m.page == pageListings {
			if id := m.board().ActiveID(); id != "" {
				p, err := m.bo.Listings.Get(m.ctx, id)
				if err != nil {
					*cmds = append(*cmds, toErr(err))
					return
				}
				m.listingRows.Row(id).Nickname.Begin(p.Nickname)
				m.mode = modeInsert
				m.action = actionNickname
				m.startInput("Nickname", p.Nickname)
				*cmds = append(*cmds, textinput.Blink)
			}
		}

	case "a":
		switch m.page {
		case pageListings, pageClients:
			if id := m.board().ActiveID(); id != "" {
				m.composer(id).Show()
				m.mode = modeInsert
				m.action = actionNote
				m.startInput("Note", "")
				*cmds = append(*cmds, textinput.Blink)
			}
		case pageIntel:
			if m.summary == nil {
				m.status = "Upload an offer first (u)"
				return
			}
			m.mode = modeInsert
			m.action = actionAsk
			m.startInput("Ask about this offer", "")
			*cmds = append(*cmds, textinput.Blink)
		}

	case "u":
		if m.page == pageIntel && !m.analyzing {
			m.mode = modeInsert
			m.action = actionUpload
			m.startInput("Path to offer PDF", "")
			*cmds = append(*cmds, textinput.Blink)
		}

	case "x":
		if m.page == pageCommissions {
			if id := m.board().ActiveID(); id != "" {
				if _, err := m.bo.Commissions.MarkPaid(m.ctx, id); err != nil {
					*cmds = append(*cmds, toErr(err))
				} else {
					m.status = "Marked paid"
					m.refreshBoards()
				}
			}
		}

	case "d":
		if m.page == pageIntel {
			return
		}
		if id := m.board().ActiveID(); id != "" {
			if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
				m.removeActive(id, cmds)
				m.awaitingDD = false
			} else {
				m.awaitingDD = true
				m.lastDTime = time.Now()
			}
		}

	case "esc":
		if m.page == pageIntel && m.analyzing && m.stopAnalysis != nil {
			m.stopAnalysis()
		}

	case "?":
		m.mode = modeHelp

	case "q":
		m.status = "Use :q or :exit to quit"
	}
}

func (m *Model) removeActive(id string, cmds *[]tea.Cmd) {
	var err error
	switch m.page {
	case pageListings:
		err = m.bo.Listings.Remove(m.ctx, id)
		m.listingRows.Forget(id)
	case pageClients:
		err = m.bo.Clients.Remove(m.ctx, id)
		m.clientRows.Forget(id)
	case pageCommissions:
		err = m.bo.Commissions.Remove(m.ctx, id)
	}
	if err != nil {
		*cmds = append(*cmds, toErr(err))
		return
	}
	m.status = "Removed"
	m.refreshBoards()
}

func (m *Model) commitInsert(cmds *[]tea.Cmd) {
	value := m.input.Value()
	prevAction := m.action
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()

	switch prevAction {
	case actionNickname:
		id := m.board().ActiveID()
		if id == "" {
			return
		}
		ed := &m.listingRows.Row(id).Nickname
		ed.SetBuffer(value)
		name, ok := ed.Commit()
		if !ok {
			return
		}
		if _, err := m.bo.Listings.SetNickname(m.ctx, id, name); err != nil {
			*cmds = append(*cmds, toErr(err))
			return
		}
		m.status = "Nickname updated"
		m.refreshBoards()

	case actionNote:
		id := m.board().ActiveID()
		if id == "" {
			return
		}
		comp := m.composer(id)
		comp.SetBuffer(value)
		content, ok := comp.Submit()
		if !ok {
			comp.Cancel()
			m.status = "Empty note discarded"
			return
		}
		var err error
		if m.page == pageListings {
			_, err = m.bo.Listings.AddNote(m.ctx, id, content)
		} else {
			_, err = m.bo.Clients.AddNote(m.ctx, id, content)
		}
		if err != nil {
			*cmds = append(*cmds, toErr(err))
			return
		}
		m.status = "Note added"
		m.refreshBoards()

	case actionAsk:
		question := strings.TrimSpace(value)
		if question == "" {
			return
		}
		if _, err := m.conversation.Exchange(m.ctx, m.analyzer, question); err != nil {
			*cmds = append(*cmds, toErr(err))
			return
		}
		m.status = "Answered"

	case actionUpload:
		path := strings.TrimSpace(value)
		if path == "" {
			return
		}
		ctx, cancel := context.WithCancel(m.ctx)
		m.stopAnalysis = cancel
		m.analyzing = true
		m.status = "Analyzing " + path + " (esc to cancel)"
		analyzer := m.analyzer
		*cmds = append(*cmds, func() tea.Msg {
			s, err := analyzer.Analyze(ctx, path)
			return analysisMsg{summary: s, err: err}
		})
	}
}

func (m *Model) cancelInsert() {
	prevAction := m.action
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()

	if b := m.board(); b != nil && b.ActiveID() != "" {
		id := b.ActiveID()
		switch prevAction {
		case actionNickname:
			m.listingRows.Row(id).Nickname.Cancel()
			m.status = "Nickname unchanged"
			return
		case actionNote:
			m.composer(id).Cancel()
			m.status = "Note cancelled"
			return
		}
	}
	m.status = "Cancelled"
}

func (m *Model) saveSummary() {
	if m.summary == nil {
		m.status = "Nothing to save"
		return
	}
	if m.archive == nil {
		m.status = "No archive configured"
		return
	}
	key, err := m.archive.Save(*m.summary)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = "Saved as " + key
}

func (m *Model) switchPage(p page) {
	if p == m.page {
		return
	}
	// leaving a board abandons any in-progress edits
	m.listingRows.CancelAll()
	m.clientRows.CancelAll()
	m.page = p
	m.status = pageNames[p]
}

func (m *Model) board() *listview.State {
	if b, ok := m.boards[m.page]; ok {
		return b
	}
	return nil
}

func (m *Model) composer(id string) *rowstate.Composer {
	if m.page == pageClients {
		return &m.clientRows.Row(id).Note
	}
	return &m.listingRows.Row(id).Note
}

func (m *Model) criteria() view.Criteria {
	switch m.page {
	case pageClients:
		return m.clients.Criteria()
	case pageCommissions:
		return m.commissions.Criteria()
	default:
		return m.listings.Criteria()
	}
}

func (m *Model) setQuery(q string) {
	switch m.page {
	case pageClients:
		m.clients.SetQuery(q)
	case pageCommissions:
		m.commissions.SetQuery(q)
	default:
		m.listings.SetQuery(q)
	}
}

func (m *Model) cycleFilter() {
	switch m.page {
	case pageListings:
		m.listingFilter = (m.listingFilter + 1) % len(listingFilters)
		m.listings.SetCategory(normalize(listingFilters[m.listingFilter]))
	case pageClients:
		filters := clientFilters(m.bo.Clients.Vocabulary)
		if len(m.bo.Clients.Vocabulary) == 0 {
			filters = clientFilters(record.DefaultStatusVocabulary())
		}
		m.clientFilter = (m.clientFilter + 1) % len(filters)
		m.clients.SetCategory(normalize(filters[m.clientFilter]))
	case pageCommissions:
		m.commissionFilter = (m.commissionFilter + 1) % len(listingFilters)
		m.commissions.SetCategory(normalize(listingFilters[m.commissionFilter]))
	default:
		return
	}
	m.refreshBoards()
}

func (m *Model) cycleSort() {
	switch m.page {
	case pageListings:
		m.listingSort = (m.listingSort + 1) % len(listingSorts)
		m.listings.SetSort(listingSorts[m.listingSort])
	case pageClients:
		m.clientSort = (m.clientSort + 1) % len(clientSorts)
		m.clients.SetSort(clientSorts[m.clientSort])
	case pageCommissions:
		m.commissionSort = (m.commissionSort + 1) % len(commissionSort)
		m.commissions.SetSort(commissionSort[m.commissionSort])
	default:
		return
	}
	m.refreshBoards()
}

func (m *Model) toggleExpand() {
	id := ""
	if b := m.board(); b != nil {
		id = b.ActiveID()
	}
	if id == "" {
		return
	}
	switch m.page {
	case pageListings:
		m.listingRows.Row(id).Toggle()
	case pageClients:
		m.clientRows.Row(id).Toggle()
	default:
		return
	}
	m.refreshBoards()
}

// normalize maps the "all" chip to an unset filter.
func normalize(v string) string {
	if v == view.CategoryAll {
		return ""
	}
	return v
}

func toErr(err error) tea.Cmd {
	return func() tea.Msg { return errMsg{err} }
}

// refreshBoards rebuilds every board's rows from its controller.
func (m *Model) refreshBoards() {
	m.boards[pageListings].SetRows(m.propertyRows())
	m.boards[pageClients].SetRows(m.clientBoardRows())
	m.boards[pageCommissions].SetRows(m.commissionRows())
	m.footer.SetFilter(m.filterSummary())
}

func (m *Model) propertyRows() []listview.Row {
	rows := make([]listview.Row, 0)
	for _, p := range m.listings.Rows() {
		st := m.listingRows.Row(p.ID)
		detail := make([]string, 0, len(p.Notes)+2)
		if p.Nickname != "" {
			detail = append(detail, p.Address)
		}
		if p.SquareFeet != "" || p.LotSize != "" {
			detail = append(detail, strings.TrimSpace(p.SquareFeet+"  "+p.LotSize))
		}
		for _, note := range p.Notes {
			detail = append(detail, fmt.Sprintf("%s  %s", note.Date.DateString(), note.Content))
		}
		rows = append(rows, listview.Row{
			ID: p.ID,
			Summary: fmt.Sprintf("%-42s %-9s %-10s %-14s %d notes",
				truncate(p.DisplayName(), 42), p.Type, p.Status.Label(), p.Price, len(p.Notes)),
			Detail:   detail,
			Expanded: st.Expanded(),
		})
	}
	return rows
}

func (m *Model) clientBoardRows() []listview.Row {
	rows := make([]listview.Row, 0)
	for _, c := range m.clients.Rows() {
		st := m.clientRows.Row(c.ID)
		detail := make([]string, 0, len(c.Notes)+2)
		contact := strings.TrimSpace(strings.Join([]string{c.Phone, c.Email}, "  "))
		if contact != "" {
			detail = append(detail, contact)
		}
		detail = append(detail, "looking for: "+c.LookingFor)
		for _, note := range c.Notes {
			detail = append(detail, fmt.Sprintf("%s  %s", note.Date.DateString(), note.Content))
		}
		rows = append(rows, listview.Row{
			ID: c.ID,
			Summary: fmt.Sprintf("%-24s %-20s %-13s updated %s",
				truncate(c.Name, 24), truncate(c.Company, 20), c.Status, c.UpdatedAt.DateString()),
			Detail:   detail,
			Expanded: st.Expanded(),
		})
	}
	return rows
}

func (m *Model) commissionRows() []listview.Row {
	rows := make([]listview.Row, 0)
	for _, c := range m.commissions.Rows() {
		rows = append(rows, listview.Row{
			ID: c.ID,
			Summary: fmt.Sprintf("%-22s %-20s %-13s %12s %12s %-9s %s",
				truncate(c.Property, 22), truncate(c.Client, 20), c.EstimatedClosing.String(),
				record.FormatMoney(c.ListingPrice), record.FormatMoney(c.Likely),
				c.ListingStatus.Label(), c.CommissionStatus.Label()),
		})
	}
	return rows
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}

func (m *Model) filterSummary() string {
	crit := m.criteria()
	parts := make([]string, 0, 3)
	if crit.Query != "" {
		parts = append(parts, "search:"+crit.Query)
	}
	if crit.Category != "" {
		parts = append(parts, "status:"+crit.Category)
	}
	if crit.Facet != "" {
		label := "type"
		if m.page == pageCommissions {
			label = "payment"
		}
		parts = append(parts, label+":"+crit.Facet)
	}
	if crit.SortKey != "" {
		parts = append(parts, "sort:"+crit.SortKey)
	}
	return strings.Join(parts, " ")
}

func (m *Model) startInput(placeholder, value string) {
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
}

// View renders the active board with tabs, counts, and the footer.
func (m Model) View() string {
	var body string
	if m.page == pageIntel {
		body = m.intelView()
	} else {
		body = m.boardView()
	}

	if m.mode == modeInsert || m.mode == modeSearch {
		body += "\n\n" + m.input.Placeholder + ": " + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: 1-4 or tab switch boards, j/k move, g/G top/bottom, / search, f cycle status filter, p cycle payment (commissions), o cycle sort, enter expand, n nickname, a add note or ask, u upload offer, x mark paid, dd remove, :save archive summary, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(wordwrap.String(help, m.bodyWidth()))
	}

	m.footer.SetMode(footerMode(m.mode))
	m.footer.SetStatus(m.status)
	return m.tabs() + "\n\n" + body + "\n\n" + m.footer.View()
}

func footerMode(md mode) bottombar.Mode {
	switch md {
	case modeInsert:
		return bottombar.ModeInsert
	case modeSearch:
		return bottombar.ModeSearch
	case modeCommand:
		return bottombar.ModeCommand
	case modeHelp:
		return bottombar.ModeHelp
	default:
		return bottombar.ModeNormal
	}
}

func (m Model) tabs() string {
	parts := make([]string, 0, 4)
	for _, p := range []page{pageListings, pageClients, pageCommissions, pageIntel} {
		name := fmt.Sprintf(" %d %s ", int(p)+1, pageNames[p])
		if p == m.page {
			parts = append(parts, m.th.Board.ActiveTab.Render(name))
		} else {
			parts = append(parts, m.th.Board.InactiveTab.Render(name))
		}
	}
	return strings.Join(parts, "│")
}

func (m Model) boardView() string {
	b := m.boards[m.page]
	height := m.bodyHeight()
	viewport, _ := b.Viewport(height)
	if b.Len() == 0 {
		viewport = "  <empty>"
	}

	header := m.th.Board.Counts.Render(m.countsLine())
	out := header + "\n" + viewport

	if m.page == pageCommissions {
		t := app.Total(m.commissions.Rows())
		totals := fmt.Sprintf("totals  price %s  3%%: %s  6%%: %s  likely %s",
			record.FormatMoney(t.ListingPrice), record.FormatMoney(t.Rate3),
			record.FormatMoney(t.Rate6), record.FormatMoney(t.Likely))
		out += "\n" + m.th.Board.Totals.Render(totals)
	}
	return out
}

func (m Model) countsLine() string {
	var counts map[string]int
	var order []string
	switch m.page {
	case pageClients:
		counts = m.clients.Counts()
		vocab := m.bo.Clients.Vocabulary
		if len(vocab) == 0 {
			vocab = record.DefaultStatusVocabulary()
		}
		for _, s := range vocab {
			order = append(order, string(s))
		}
	case pageCommissions:
		counts = m.commissions.Counts()
		for _, s := range record.AllListingStatuses() {
			order = append(order, string(s))
		}
	default:
		counts = m.listings.Counts()
		for _, s := range record.AllListingStatuses() {
			order = append(order, string(s))
		}
	}
	parts := []string{fmt.Sprintf("all %d", counts[view.TotalKey])}
	for _, key := range order {
		parts = append(parts, fmt.Sprintf("%s %d", key, counts[key]))
	}

	// the second filter axis gets its own chip group
	switch m.page {
	case pageListings:
		facets := m.listings.FacetCounts()
		parts = append(parts, "·")
		for _, t := range record.AllPropertyTypes() {
			parts = append(parts, fmt.Sprintf("%s %d", t, facets[string(t)]))
		}
	case pageCommissions:
		facets := m.commissions.FacetCounts()
		parts = append(parts, "·")
		for _, s := range record.AllPaymentStatuses() {
			parts = append(parts, fmt.Sprintf("%s %d", s, facets[string(s)]))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) intelView() string {
	width := m.bodyWidth()
	var b strings.Builder

	switch {
	case m.analyzing:
		b.WriteString("Analyzing offer… (esc to cancel)\n")
	case m.summary == nil:
		b.WriteString("No offer loaded. Press u and enter the path to a contract PDF.\n")
	default:
		s := m.summary
		b.WriteString(m.th.Board.Title.Render("Offer Summary") + "\n")
		pairs := [][2]string{
			{"property", s.Property},
			{"purchase price", s.PurchasePrice},
			{"earnest money", s.EarnestMoney},
			{"closing date", s.ClosingDate},
			{"financing", s.Financing},
			{"inspection period", s.InspectionPeriod},
			{"appraisal contingency", s.AppraisalContingency},
			{"seller rent-back", s.SellerRentBack},
		}
		for _, kv := range pairs {
			b.WriteString(fmt.Sprintf("  %-22s %s\n", kv[0]+":", kv[1]))
		}

		msgs := m.conversation.Messages()
		if len(msgs) == 0 {
			b.WriteString("\nTry asking (a):\n")
			for _, q := range m.analyzer.SuggestedQuestions() {
				b.WriteString("  - " + q + "\n")
			}
		} else {
			b.WriteString("\n")
			for _, msg := range msgs {
				if msg.Role == intel.RoleUser {
					b.WriteString(m.th.Board.Question.Render("> "+msg.Content) + "\n")
				} else {
					b.WriteString(m.th.Board.Answer.Render(wordwrap.String(msg.Content, width)) + "\n\n")
				}
			}
		}
	}
	return b.String()
}

func (m Model) bodyWidth() int {
	if m.termWidth <= 0 {
		return 80
	}
	w := m.termWidth - 2
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) bodyHeight() int {
	if m.termHeight <= 0 {
		return 20
	}
	// tabs, counts, totals, input, and footer rows
	h := m.termHeight - 8
	if h < 5 {
		h = 5
	}
	return h
}

// Program entry
func Run(bo *app.BackOffice, analyzer *intel.Analyzer, archive *intel.Archive) error {
	p := tea.NewProgram(New(bo, analyzer, archive), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
