package nickname

import (
	"context"
	"errors"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
)

type Nickname struct {
	ID   string
	Name string

	BackOffice *app.BackOffice
}

func (n *Nickname) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not set a nickname, no back office")
	}
	p, err := n.BackOffice.Listings.SetNickname(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.PropertyDetail(p)
	return nil
}
