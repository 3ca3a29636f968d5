package record

import (
	"fmt"
	"strings"
)

// ClientStatus is a stage in the client pipeline. The vocabulary is
// configurable because it drifted between revisions of the board; see
// DefaultStatusVocabulary for the stock set.
type ClientStatus string

const (
	ClientNewLead     ClientStatus = "New Lead"
	ClientLooking     ClientStatus = "Looking"
	ClientNegotiating ClientStatus = "Negotiating"
	ClientOnHold      ClientStatus = "On Hold"
	ClientDone        ClientStatus = "Done"
	ClientLost        ClientStatus = "Lost"
)

// DefaultStatusVocabulary returns the stock pipeline stages in display
// order.
func DefaultStatusVocabulary() []ClientStatus {
	return []ClientStatus{
		ClientNewLead,
		ClientLooking,
		ClientNegotiating,
		ClientOnHold,
		ClientDone,
		ClientLost,
	}
}

// ParseClientStatus matches raw (case-insensitively) against the given
// vocabulary. An empty vocabulary falls back to the default one.
func ParseClientStatus(raw string, vocabulary []ClientStatus) (ClientStatus, error) {
	if len(vocabulary) == 0 {
		vocabulary = DefaultStatusVocabulary()
	}
	needle := strings.TrimSpace(raw)
	for _, candidate := range vocabulary {
		if strings.EqualFold(string(candidate), needle) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("record: unknown client status %q", raw)
}

// Client is a contact working through the pipeline.
type Client struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Company    string       `json:"company,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	Email      string       `json:"email,omitempty"`
	LookingFor string       `json:"looking_for"`
	Status     ClientStatus `json:"status"`
	CreatedAt  Timestamp    `json:"created_at"`
	UpdatedAt  Timestamp    `json:"updated_at"`
	Notes      []Note       `json:"notes"`
}

// RecordID implements the store key contract.
func (c Client) RecordID() string { return c.ID }

// Validate checks the fields required before a client enters the store.
func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("record: client name required")
	}
	if strings.TrimSpace(c.LookingFor) == "" {
		return fmt.Errorf("record: client looking-for required")
	}
	return nil
}
