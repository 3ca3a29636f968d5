package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/crest/pkg/app"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "crest",
		Short: base.Wrap80("Crest Realty back office on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addAdd(topLevel)
	addNote(topLevel)
	addNickname(topLevel)
	addStatus(topLevel)
	addRemove(topLevel)
	addIntel(topLevel)
	addVersion(topLevel)
}

// backOffice builds a seeded session for one CLI invocation. There is no
// backend; edits made here do not outlive the command.
func backOffice() *app.BackOffice {
	return app.Seeded()
}
