package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/runner/status"
)

func addStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Move a record through its lifecycle",
		Example: `
crest status listing 1 sold
crest status client 3 negotiating
crest paid 4
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addStatusListing(cmd)
	addStatusClient(cmd)

	topLevel.AddCommand(cmd)
	addPaid(topLevel)
}

func addStatusListing(topLevel *cobra.Command) {
	valid := make([]string, 0, 4)
	for _, s := range record.AllListingStatuses() {
		valid = append(valid, string(s))
	}

	cmd := &cobra.Command{
		Use:       "listing [id] [status]",
		Short:     "Set a listing's status: " + strings.Join(valid, ", ") + ".",
		ValidArgs: valid,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("a listing id and a status are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := status.Listing{
				ID:         args[0],
				Status:     args[1],
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addStatusClient(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "client [id] [status]",
		Short: "Move a client through the pipeline.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("a client id and a status are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := status.Client{
				ID:         args[0],
				Status:     strings.Join(args[1:], " "),
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addPaid(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "paid [id]",
		Short: "Mark a commission paid.",
		Example: `
crest paid 4
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("a commission id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := status.Paid{
				ID:         args[0],
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
