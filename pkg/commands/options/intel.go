package options

import (
	"github.com/spf13/cobra"
)

// IntelOptions captures the offer analysis flags.
type IntelOptions struct {
	Save    bool
	Archive string
}

func AddIntelArgs(cmd *cobra.Command, o *IntelOptions) {
	cmd.Flags().BoolVar(&o.Save, "save", false,
		"Archive the summary after the analysis.")
	cmd.Flags().StringVar(&o.Archive, "archive", "",
		"Override the archive path from the config.")
}
