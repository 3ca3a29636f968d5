package note

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
)

// Kind selects which board the note lands on.
type Kind string

const (
	Listing Kind = "listing"
	Client  Kind = "client"
)

type Note struct {
	Kind    Kind
	ID      string
	Content string

	BackOffice *app.BackOffice
}

func (n *Note) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not add a note, no back office")
	}

	pp := printers.PrettyPrint{}
	switch n.Kind {
	case Listing:
		p, err := n.BackOffice.Listings.AddNote(ctx, n.ID, n.Content)
		if err != nil {
			return err
		}
		pp.Title(p.DisplayName())
		pp.Notes(p.Notes)
		return nil
	case Client:
		c, err := n.BackOffice.Clients.AddNote(ctx, n.ID, n.Content)
		if err != nil {
			return err
		}
		pp.Title(c.Name)
		pp.Notes(c.Notes)
		return nil
	}
	return fmt.Errorf("unknown note target %q", n.Kind)
}
