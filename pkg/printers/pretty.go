package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/record"
)

// PrettyPrint renders board tables for the CLI.
type PrettyPrint struct {
	ShowID bool
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" row")
	default:
		_, _ = c.Println(" rows")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Properties renders the listing board.
func (pp *PrettyPrint) Properties(properties ...record.Property) {
	if len(properties) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "PROPERTY", "TYPE", "STATUS", "PRICE", "NOTES", "ADDED")
	} else {
		tbl.AddRow("PROPERTY", "TYPE", "STATUS", "PRICE", "NOTES", "ADDED")
	}
	for _, p := range properties {
		cells := []interface{}{
			p.DisplayName(),
			string(p.Type),
			p.Status.Label(),
			p.Price,
			len(p.Notes),
			p.DateAdded.DateString(),
		}
		if pp.ShowID {
			cells = append([]interface{}{p.ID}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// PropertyDetail renders one listing with its note thread.
func (pp *PrettyPrint) PropertyDetail(p record.Property) {
	pp.Title(p.DisplayName())
	if p.Nickname != "" {
		_, _ = color.New(color.Faint).Println(p.Address)
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("type:", string(p.Type))
	tbl.AddRow("status:", p.Status.Label())
	if p.Price != "" {
		tbl.AddRow("price:", p.Price)
	}
	if p.SquareFeet != "" {
		tbl.AddRow("size:", p.SquareFeet)
	}
	if p.LotSize != "" {
		tbl.AddRow("lot:", p.LotSize)
	}
	tbl.AddRow("added:", p.DateAdded.DateString())
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.Notes(p.Notes)
}

// Clients renders the client pipeline.
func (pp *PrettyPrint) Clients(clients ...record.Client) {
	if len(clients) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("ID", "NAME", "COMPANY", "LOOKING FOR", "STATUS", "UPDATED")
	} else {
		tbl.AddRow("NAME", "COMPANY", "LOOKING FOR", "STATUS", "UPDATED")
	}
	for _, c := range clients {
		cells := []interface{}{
			c.Name,
			c.Company,
			c.LookingFor,
			string(c.Status),
			c.UpdatedAt.DateString(),
		}
		if pp.ShowID {
			cells = append([]interface{}{c.ID}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// ClientDetail renders one client with contact info and the note thread.
func (pp *PrettyPrint) ClientDetail(c record.Client) {
	pp.Title(c.Name)

	tbl := uitable.New()
	tbl.Separator = "  "
	if c.Company != "" {
		tbl.AddRow("company:", c.Company)
	}
	if c.Phone != "" {
		tbl.AddRow("phone:", c.Phone)
	}
	if c.Email != "" {
		tbl.AddRow("email:", c.Email)
	}
	tbl.AddRow("looking for:", c.LookingFor)
	tbl.AddRow("status:", string(c.Status))
	tbl.AddRow("updated:", c.UpdatedAt.DateString())
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.Notes(c.Notes)
}

// Notes renders a note thread, newest first.
func (pp *PrettyPrint) Notes(notes []record.Note) {
	if len(notes) == 0 {
		pp.none()
		return
	}
	d := color.New(color.Faint)
	for _, n := range notes {
		_, _ = d.Printf("%s  ", n.Date.DateString())
		fmt.Println(n.Content)
	}
	fmt.Println("")
}

// Commissions renders the pipeline with a totals footer over the rows it
// was given.
func (pp *PrettyPrint) Commissions(commissions ...record.Commission) {
	if len(commissions) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	money := 3
	if pp.ShowID {
		// The ID column is prepended, shifting the money columns over.
		money = 4
	}
	for col := money; col < money+4; col++ {
		tbl.RightAlign(col)
	}
	header := []interface{}{"PROPERTY", "CLIENT", "CLOSING", "PRICE", "3%", "6%", "LIKELY", "STATUS", "PAYMENT"}
	if pp.ShowID {
		header = append([]interface{}{"ID"}, header...)
	}
	tbl.AddRow(header...)
	for _, c := range commissions {
		cells := []interface{}{
			c.Property,
			c.Client,
			c.EstimatedClosing.String(),
			record.FormatMoney(c.ListingPrice),
			record.FormatMoney(c.Rate3),
			record.FormatMoney(c.Rate6),
			record.FormatMoney(c.Likely),
			c.ListingStatus.Label(),
			c.CommissionStatus.Label(),
		}
		if pp.ShowID {
			cells = append([]interface{}{c.ID}, cells...)
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.Totals(app.Total(commissions))
}

// Totals renders the commission footer line.
func (pp *PrettyPrint) Totals(t app.Totals) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)
	_, _ = b.Print("totals")
	_, _ = f.Printf("  price %s  3%% %s  6%% %s  ",
		record.FormatMoney(t.ListingPrice),
		record.FormatMoney(t.Rate3),
		record.FormatMoney(t.Rate6),
	)
	_, _ = b.Printf("likely %s\n", record.FormatMoney(t.Likely))
}

// Counts renders the filter chip numbers for a board.
func (pp *PrettyPrint) Counts(order []string, counts map[string]int) {
	f := color.New(color.Faint)
	parts := make([]string, 0, len(order))
	for _, key := range order {
		parts = append(parts, fmt.Sprintf("%s %d", key, counts[key]))
	}
	_, _ = f.Println(strings.Join(parts, "  "))
}
