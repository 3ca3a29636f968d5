// Package app provides the high-level operations behind the boards. It
// wraps the record stores so the TUI and CLI runners share one set of
// mutation rules.
package app

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/crest/pkg/record"
	"tableflip.dev/crest/pkg/store"
)

// BackOffice bundles the three boards' services over their stores.
type BackOffice struct {
	Listings    *Listings
	Clients     *Clients
	Commissions *Commissions
}

// New returns a BackOffice over empty stores.
func New() *BackOffice {
	return &BackOffice{
		Listings:    &Listings{Store: store.New[record.Property]("property")},
		Clients:     &Clients{Store: store.New[record.Client]("client")},
		Commissions: &Commissions{Store: store.New[record.Commission]("commission")},
	}
}

// Seeded returns a BackOffice preloaded with the stock records.
func Seeded() *BackOffice {
	return &BackOffice{
		Listings:    &Listings{Store: store.Seed("property", record.SeedProperties())},
		Clients:     &Clients{Store: store.Seed("client", record.SeedClients())},
		Commissions: &Commissions{Store: store.Seed("commission", record.SeedCommissions())},
	}
}

// Listings operates on the property board.
type Listings struct {
	Store *store.Store[record.Property]
}

// List returns every property in store order.
func (s *Listings) List(ctx context.Context) ([]record.Property, error) {
	if s.Store == nil {
		return nil, errors.New("app: no property store configured")
	}
	return s.Store.List(), nil
}

// Get returns one property by id.
func (s *Listings) Get(ctx context.Context, id string) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	return s.Store.Get(id)
}

// Add validates and stores a new property. A missing id, date, or details
// variant is filled in.
func (s *Listings) Add(ctx context.Context, p record.Property) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	if p.ID == "" {
		p.ID = record.NewID()
	}
	if p.DateAdded.IsZero() {
		p.DateAdded = record.Now()
	}
	if p.Details == nil {
		p.Details = record.DetailsFor(p.Type)
	}
	if p.Notes == nil {
		p.Notes = []record.Note{}
	}
	if err := p.Validate(); err != nil {
		return record.Property{}, err
	}
	if err := s.Store.Create(p); err != nil {
		return record.Property{}, err
	}
	return p, nil
}

// SetNickname replaces the nickname. An empty value clears it and the
// board falls back to the address.
func (s *Listings) SetNickname(ctx context.Context, id, nickname string) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	return updated(s.Store, id, func(p *record.Property) error {
		p.Nickname = strings.TrimSpace(nickname)
		return nil
	})
}

// SetStatus moves a property through its lifecycle.
func (s *Listings) SetStatus(ctx context.Context, id string, status record.ListingStatus) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	if _, err := record.ParseListingStatus(string(status)); err != nil {
		return record.Property{}, err
	}
	return updated(s.Store, id, func(p *record.Property) error {
		p.Status = status
		return nil
	})
}

// AddNote prepends a note so the newest reads first.
func (s *Listings) AddNote(ctx context.Context, id, content string) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return record.Property{}, errors.New("app: note content required")
	}
	return updated(s.Store, id, func(p *record.Property) error {
		p.Notes = append([]record.Note{record.NewNote(content, "")}, p.Notes...)
		return nil
	})
}

// SetDetails replaces the type-specific deadline dates. The variant must
// match the property's type.
func (s *Listings) SetDetails(ctx context.Context, id string, details record.TypeDetails) (record.Property, error) {
	if s.Store == nil {
		return record.Property{}, errors.New("app: no property store configured")
	}
	return updated(s.Store, id, func(p *record.Property) error {
		if details != nil && details.PropertyType() != p.Type {
			return errors.New("app: details do not match the property type")
		}
		p.Details = details
		return nil
	})
}

// Remove deletes a property. Unknown ids surface store.ErrNotFound.
func (s *Listings) Remove(ctx context.Context, id string) error {
	if s.Store == nil {
		return errors.New("app: no property store configured")
	}
	return s.Store.Delete(id)
}

// Clients operates on the client pipeline.
type Clients struct {
	Store *store.Store[record.Client]

	// Vocabulary overrides the status set; empty means the default one.
	Vocabulary []record.ClientStatus
}

// List returns every client in store order.
func (s *Clients) List(ctx context.Context) ([]record.Client, error) {
	if s.Store == nil {
		return nil, errors.New("app: no client store configured")
	}
	return s.Store.List(), nil
}

// Get returns one client by id.
func (s *Clients) Get(ctx context.Context, id string) (record.Client, error) {
	if s.Store == nil {
		return record.Client{}, errors.New("app: no client store configured")
	}
	return s.Store.Get(id)
}

// Add validates and stores a new client. New clients start as a new lead
// unless a status is given.
func (s *Clients) Add(ctx context.Context, c record.Client) (record.Client, error) {
	if s.Store == nil {
		return record.Client{}, errors.New("app: no client store configured")
	}
	if c.ID == "" {
		c.ID = record.NewID()
	}
	if c.Status == "" {
		c.Status = record.ClientNewLead
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = record.Now()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = c.CreatedAt
	}
	if c.Notes == nil {
		c.Notes = []record.Note{}
	}
	if err := c.Validate(); err != nil {
		return record.Client{}, err
	}
	if err := s.Store.Create(c); err != nil {
		return record.Client{}, err
	}
	return c, nil
}

// SetStatus moves a client through the pipeline. The raw value is matched
// against the configured vocabulary.
func (s *Clients) SetStatus(ctx context.Context, id, raw string) (record.Client, error) {
	if s.Store == nil {
		return record.Client{}, errors.New("app: no client store configured")
	}
	status, err := record.ParseClientStatus(raw, s.Vocabulary)
	if err != nil {
		return record.Client{}, err
	}
	return updated(s.Store, id, func(c *record.Client) error {
		c.Status = status
		c.UpdatedAt = record.Now()
		return nil
	})
}

// Edit applies a field-level change, revalidates, and refreshes the
// updated-at stamp.
func (s *Clients) Edit(ctx context.Context, id string, apply func(*record.Client) error) (record.Client, error) {
	if s.Store == nil {
		return record.Client{}, errors.New("app: no client store configured")
	}
	return updated(s.Store, id, func(c *record.Client) error {
		if err := apply(c); err != nil {
			return err
		}
		if err := c.Validate(); err != nil {
			return err
		}
		c.UpdatedAt = record.Now()
		return nil
	})
}

// AddNote prepends a note and refreshes the updated-at stamp.
func (s *Clients) AddNote(ctx context.Context, id, content string) (record.Client, error) {
	if s.Store == nil {
		return record.Client{}, errors.New("app: no client store configured")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return record.Client{}, errors.New("app: note content required")
	}
	return updated(s.Store, id, func(c *record.Client) error {
		c.Notes = append([]record.Note{record.NewNote(content, "")}, c.Notes...)
		c.UpdatedAt = record.Now()
		return nil
	})
}

// Remove deletes a client. Unknown ids surface store.ErrNotFound.
func (s *Clients) Remove(ctx context.Context, id string) error {
	if s.Store == nil {
		return errors.New("app: no client store configured")
	}
	return s.Store.Delete(id)
}

// updated applies a store mutation and reads back the result.
func updated[T store.Record](s *store.Store[T], id string, apply func(*T) error) (T, error) {
	if err := s.Update(id, apply); err != nil {
		var zero T
		return zero, err
	}
	return s.Get(id)
}
