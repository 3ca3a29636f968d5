package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/crest/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note [listing|client] [id] [content]",
		Short: "Add a note to a listing or client.",
		Example: `
crest note listing 2 buyer countered at asking
crest note client 1 left a voicemail
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 3 {
				return errors.New("a target, an id, and note content are required")
			}
			switch note.Kind(args[0]) {
			case note.Listing, note.Client:
				return nil
			}
			return errors.New("notes go on a listing or a client")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := note.Note{
				Kind:       note.Kind(args[0]),
				ID:         args[1],
				Content:    strings.Join(args[2:], " "),
				BackOffice: backOffice(),
			}
			err := s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
