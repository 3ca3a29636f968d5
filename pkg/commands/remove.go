package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove [listing|client|commission] [id]",
		Short:   "Remove a record from a board.",
		Aliases: []string{"rm", "delete"},
		Example: `
crest remove listing 7
crest remove commission 2
`,
		ValidArgs: []string{string(remove.Listing), string(remove.Client), string(remove.Commission)},
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("a target and an id are required")
			}
			switch remove.Kind(args[0]) {
			case remove.Listing, remove.Client, remove.Commission:
				return nil
			}
			return errors.New("removable targets are listing, client, and commission")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := remove.Remove{
				Kind:       remove.Kind(args[0]),
				ID:         args[1],
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
