package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/crest/pkg/app"
)

// Kind selects which board to remove from.
type Kind string

const (
	Listing    Kind = "listing"
	Client     Kind = "client"
	Commission Kind = "commission"
)

type Remove struct {
	Kind Kind
	ID   string

	BackOffice *app.BackOffice
}

func (n *Remove) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not remove, no back office")
	}
	switch n.Kind {
	case Listing:
		return n.BackOffice.Listings.Remove(ctx, n.ID)
	case Client:
		return n.BackOffice.Clients.Remove(ctx, n.ID)
	case Commission:
		return n.BackOffice.Commissions.Remove(ctx, n.ID)
	}
	return fmt.Errorf("unknown remove target %q", n.Kind)
}
