package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/crest/pkg/intel"
)

// Summary renders an analysis summary card.
func (pp *PrettyPrint) Summary(s intel.Summary) {
	pp.Title("Offer Summary")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("property:", s.Property)
	tbl.AddRow("purchase price:", s.PurchasePrice)
	tbl.AddRow("earnest money:", s.EarnestMoney)
	tbl.AddRow("closing date:", s.ClosingDate)
	tbl.AddRow("financing:", s.Financing)
	tbl.AddRow("inspection period:", s.InspectionPeriod)
	tbl.AddRow("appraisal contingency:", s.AppraisalContingency)
	tbl.AddRow("seller rent-back:", s.SellerRentBack)
	if s.Source != "" {
		tbl.AddRow("source:", s.Source)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Conversation renders a chat transcript, questions bold and answers
// wrapped to a readable width.
func (pp *PrettyPrint) Conversation(messages []intel.Message) {
	if len(messages) == 0 {
		pp.none()
		return
	}
	q := color.New(color.Bold)
	for _, m := range messages {
		if m.Role == intel.RoleUser {
			_, _ = q.Printf("> %s\n", m.Content)
			continue
		}
		fmt.Println(wordwrap.String(m.Content, 78))
		fmt.Println("")
	}
}

// SuggestedQuestions renders the prompt list shown after an analysis.
func (pp *PrettyPrint) SuggestedQuestions(questions []string) {
	f := color.New(color.Faint)
	for _, question := range questions {
		_, _ = f.Printf("  - %s\n", question)
	}
}
