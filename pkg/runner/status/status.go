package status

import (
	"context"
	"errors"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
	"tableflip.dev/crest/pkg/record"
)

type Listing struct {
	ID     string
	Status string

	BackOffice *app.BackOffice
}

func (n *Listing) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not set status, no back office")
	}
	status, err := record.ParseListingStatus(n.Status)
	if err != nil {
		return err
	}
	p, err := n.BackOffice.Listings.SetStatus(ctx, n.ID, status)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Properties(p)
	return nil
}

type Client struct {
	ID     string
	Status string

	BackOffice *app.BackOffice
}

func (n *Client) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not set status, no back office")
	}
	c, err := n.BackOffice.Clients.SetStatus(ctx, n.ID, n.Status)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Clients(c)
	return nil
}

// Paid flips a commission to the paid side of the payout axis.
type Paid struct {
	ID string

	BackOffice *app.BackOffice
}

func (n *Paid) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not mark paid, no back office")
	}
	c, err := n.BackOffice.Commissions.MarkPaid(ctx, n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Commissions(c)
	return nil
}
