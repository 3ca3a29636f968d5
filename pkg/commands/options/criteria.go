// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// CriteriaOptions captures the board filter and sort flags.
type CriteriaOptions struct {
	Search  string
	Status  string
	Type    string
	Payment string
	Closing string
	Sort    string
	Counts  bool
}

// AddCriteriaArgs wires the common filter flags on the provided command.
func AddCriteriaArgs(cmd *cobra.Command, o *CriteriaOptions) {
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Filter rows by a free text query.")
	cmd.Flags().StringVar(&o.Status, "status", "all",
		"Filter rows by status.")
	cmd.Flags().StringVar(&o.Sort, "sort", "",
		"Sort rows by the given key.")
	cmd.Flags().BoolVar(&o.Counts, "counts", false,
		"Show the per-status counts line.")
}

// AddTypeArg registers the listing type filter.
func AddTypeArg(cmd *cobra.Command, o *CriteriaOptions) {
	cmd.Flags().StringVar(&o.Type, "type", "all",
		"Filter rows by listing type (sale, lease, business).")
}

// AddPaymentArg registers the commission payment filter.
func AddPaymentArg(cmd *cobra.Command, o *CriteriaOptions) {
	cmd.Flags().StringVar(&o.Payment, "payment", "all",
		"Filter rows by payment status (paid, not-paid).")
}

// AddClosingArg registers the commission closing horizon filter.
func AddClosingArg(cmd *cobra.Command, o *CriteriaOptions) {
	cmd.Flags().StringVar(&o.Closing, "closing", "",
		"Only rows closing within the horizon, e.g. 30d, 2w, 1mo.")
}
