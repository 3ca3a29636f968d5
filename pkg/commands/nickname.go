package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/runner/nickname"
)

func addNickname(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "nickname [id] [name]",
		Short: "Set or clear a listing's nickname.",
		Example: `
crest nickname 2 Cambridge Property
crest nickname 2
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("a listing id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := nickname.Nickname{
				ID:         args[0],
				Name:       strings.Join(args[1:], " "),
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
