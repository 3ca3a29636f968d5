package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/commands/options"
	"tableflip.dev/crest/pkg/runner/get"
	"tableflip.dev/crest/pkg/view"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List a board",
		Example: `
crest get listings
crest get clients --search sarah
crest get commissions --payment not-paid --sort closing
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetBoard(cmd, get.Listings, []string{"listing", "properties"}, "List the property board.")
	addGetBoard(cmd, get.Clients, []string{"client"}, "List the client pipeline.")
	addGetBoard(cmd, get.Commissions, []string{"commission"}, "List the commission pipeline with totals.")

	topLevel.AddCommand(cmd)
}

func addGetBoard(topLevel *cobra.Command, kind get.Kind, aliases []string, short string) {
	co := &options.CriteriaOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     string(kind),
		Short:   short,
		Aliases: aliases,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && co.Search == "" {
				co.Search = strings.Join(args, " ")
			}
			facet := co.Payment
			if kind == get.Listings {
				facet = co.Type
			}
			s := get.Get{
				Kind:       kind,
				ShowID:     io.ShowID,
				Counts:     co.Counts,
				Search:     co.Search,
				Status:     normalizeFilter(co.Status),
				Facet:      normalizeFilter(facet),
				Closing:    co.Closing,
				Sort:       co.Sort,
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCriteriaArgs(cmd, co)
	if kind == get.Listings {
		options.AddTypeArg(cmd, co)
	}
	if kind == get.Commissions {
		options.AddPaymentArg(cmd, co)
		options.AddClosingArg(cmd, co)
	}
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

// normalizeFilter maps the "all" sentinel to an unset filter.
func normalizeFilter(v string) string {
	if v == view.CategoryAll {
		return ""
	}
	return v
}
