package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/commands/options"
	"tableflip.dev/crest/pkg/config"
	"tableflip.dev/crest/pkg/intel"
	runner "tableflip.dev/crest/pkg/runner/intel"
)

func addIntel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "intel",
		Short: "Analyze offers and ask questions about them",
		Example: `
crest intel analyze offer.pdf --save
crest intel ask is the earnest money amount typical?
crest intel saved
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addIntelAnalyze(cmd)
	addIntelAsk(cmd)
	addIntelSaved(cmd)

	topLevel.AddCommand(cmd)
}

func newAnalyzer() (*intel.Analyzer, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	return &intel.Analyzer{Delay: cfg.AnalysisDelay()}, cfg, nil
}

func openArchive(cfg config.Config, override string) (*intel.Archive, error) {
	path := cfg.ArchivePath()
	if override != "" {
		path = override
	}
	return intel.OpenArchive(path)
}

func addIntelAnalyze(topLevel *cobra.Command) {
	io := &options.IntelOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [file.pdf]",
		Short: "Analyze an offer PDF and print the summary.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("one contract PDF is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cfg, err := newAnalyzer()
			if err != nil {
				return oo.HandleError(err)
			}
			s := runner.Analyze{
				File:     args[0],
				Save:     io.Save,
				Analyzer: a,
			}
			if io.Save {
				if s.Archive, err = openArchive(cfg, io.Archive); err != nil {
					return oo.HandleError(err)
				}
			}
			err = s.Do(cmd.Context())
			return oo.HandleError(err)
		},
	}

	options.AddIntelArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addIntelAsk(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a question about the analyzed offer.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a question is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := newAnalyzer()
			if err != nil {
				return oo.HandleError(err)
			}
			s := runner.Ask{
				Question: strings.Join(args, " "),
				Analyzer: a,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addIntelSaved(topLevel *cobra.Command) {
	io := &options.IntelOptions{}

	cmd := &cobra.Command{
		Use:   "saved [key]",
		Short: "List archived summaries, or show one by key.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			archive, err := openArchive(cfg, io.Archive)
			if err != nil {
				return oo.HandleError(err)
			}
			s := runner.Saved{Archive: archive}
			if len(args) > 0 {
				s.Key = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&io.Archive, "archive", "",
		"Override the archive path from the config.")

	topLevel.AddCommand(cmd)
}
