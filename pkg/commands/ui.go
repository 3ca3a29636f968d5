package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/crest/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
crest ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := newAnalyzer()
			if err != nil {
				return err
			}
			archive, err := openArchive(cfg, "")
			if err != nil {
				return err
			}
			bo := backOffice()
			bo.Clients.Vocabulary = cfg.StatusVocabulary()
			return teaui.Run(bo, a, archive)
		},
	}

	topLevel.AddCommand(cmd)
}
