package add

import (
	"context"
	"errors"

	"tableflip.dev/crest/pkg/app"
	"tableflip.dev/crest/pkg/printers"
	"tableflip.dev/crest/pkg/record"
)

type Listing struct {
	Address    string
	Type       record.PropertyType
	Status     record.ListingStatus
	Nickname   string
	Price      string
	SquareFeet string
	LotSize    string

	BackOffice *app.BackOffice
}

func (n *Listing) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not add, no back office")
	}
	p, err := n.BackOffice.Listings.Add(ctx, record.Property{
		Address:    n.Address,
		Type:       n.Type,
		Status:     n.Status,
		Nickname:   n.Nickname,
		Price:      n.Price,
		SquareFeet: n.SquareFeet,
		LotSize:    n.LotSize,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.PropertyDetail(p)
	return nil
}

type Client struct {
	Name       string
	Company    string
	Phone      string
	Email      string
	LookingFor string
	Status     string

	BackOffice *app.BackOffice
}

func (n *Client) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not add, no back office")
	}
	c := record.Client{
		Name:       n.Name,
		Company:    n.Company,
		Phone:      n.Phone,
		Email:      n.Email,
		LookingFor: n.LookingFor,
	}
	if n.Status != "" {
		status, err := record.ParseClientStatus(n.Status, n.BackOffice.Clients.Vocabulary)
		if err != nil {
			return err
		}
		c.Status = status
	}
	c, err := n.BackOffice.Clients.Add(ctx, c)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.ClientDetail(c)
	return nil
}

type Commission struct {
	Property    string
	Client      string
	Price       string
	Rate        record.Rate
	FromListing string

	BackOffice *app.BackOffice
}

func (n *Commission) Do(ctx context.Context) error {
	if n.BackOffice == nil {
		return errors.New("can not add, no back office")
	}

	var c record.Commission
	if n.FromListing != "" {
		p, err := n.BackOffice.Listings.Get(ctx, n.FromListing)
		if err != nil {
			return err
		}
		c, err = n.BackOffice.Commissions.AddFromListing(ctx, p, n.Client, n.Rate)
		if err != nil {
			return err
		}
	} else {
		price, err := record.ParseMoney(n.Price)
		if err != nil {
			return err
		}
		c, err = n.BackOffice.Commissions.Add(ctx, n.Property, n.Client, price, n.Rate)
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.Commissions(c)
	return nil
}
