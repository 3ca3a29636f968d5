package record

import (
	"fmt"
	"strings"
)

// PropertyType identifies what kind of deal a listing is.
type PropertyType string

const (
	TypeSale     PropertyType = "sale"
	TypeLease    PropertyType = "lease"
	TypeBusiness PropertyType = "business"
)

// AllPropertyTypes returns the supported listing types.
func AllPropertyTypes() []PropertyType {
	return []PropertyType{TypeSale, TypeLease, TypeBusiness}
}

// ParsePropertyType converts a string to a PropertyType or returns an error
// for unknown values.
func ParsePropertyType(raw string) (PropertyType, error) {
	t := PropertyType(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllPropertyTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("record: unknown property type %q", raw)
}

// ListingStatus tracks where a listing sits in its lifecycle. Commissions
// share the same vocabulary for their listing-status axis.
type ListingStatus string

const (
	StatusListed    ListingStatus = "listed"
	StatusPending   ListingStatus = "pending"
	StatusSold      ListingStatus = "sold"
	StatusWithdrawn ListingStatus = "withdrawn"
)

// AllListingStatuses returns the supported listing statuses.
func AllListingStatuses() []ListingStatus {
	return []ListingStatus{StatusListed, StatusPending, StatusSold, StatusWithdrawn}
}

// ParseListingStatus converts a string to a ListingStatus or returns an
// error for unknown values.
func ParseListingStatus(raw string) (ListingStatus, error) {
	s := ListingStatus(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllListingStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("record: unknown listing status %q", raw)
}

// Label renders a status for table cells ("listed" -> "Listed").
func (s ListingStatus) Label() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// TypeDetails carries the deadline dates that only make sense for one
// listing type. Modeling them as a variant keyed by type keeps invalid
// field/type combinations unrepresentable.
type TypeDetails interface {
	PropertyType() PropertyType
}

// SaleDetails holds the contract deadlines tracked on sale listings.
type SaleDetails struct {
	SellerDisclosureDeadline Timestamp `json:"sellerDisclosureDeadline,omitempty"`
	DueDiligenceDeadline     Timestamp `json:"dueDiligenceDeadline,omitempty"`
	ClosingDate              Timestamp `json:"closingDate,omitempty"`
}

func (SaleDetails) PropertyType() PropertyType { return TypeSale }

// LeaseDetails holds lease-specific dates.
type LeaseDetails struct {
	Commencement Timestamp `json:"leaseCommencement,omitempty"`
}

func (LeaseDetails) PropertyType() PropertyType { return TypeLease }

// BusinessDetails is the (empty) variant for business listings.
type BusinessDetails struct{}

func (BusinessDetails) PropertyType() PropertyType { return TypeBusiness }

// DetailsFor returns the zero variant matching the listing type.
func DetailsFor(t PropertyType) TypeDetails {
	switch t {
	case TypeLease:
		return LeaseDetails{}
	case TypeBusiness:
		return BusinessDetails{}
	default:
		return SaleDetails{}
	}
}

// Property is a listing on the board. Price, square footage, and lot size
// are display strings exactly as entered.
type Property struct {
	ID         string        `json:"id"`
	Address    string        `json:"address"`
	Type       PropertyType  `json:"type"`
	Status     ListingStatus `json:"status"`
	Nickname   string        `json:"nickname,omitempty"`
	Price      string        `json:"price,omitempty"`
	SquareFeet string        `json:"squareFeet,omitempty"`
	LotSize    string        `json:"lotSize,omitempty"`
	Notes      []Note        `json:"notes"`
	DateAdded  Timestamp     `json:"dateAdded"`
	Details    TypeDetails   `json:"details,omitempty"`
}

// RecordID implements the store key contract.
func (p Property) RecordID() string { return p.ID }

// DisplayName prefers the nickname over the street address.
func (p Property) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Address
}

// Validate checks the fields required before a property enters the store.
func (p Property) Validate() error {
	if strings.TrimSpace(p.Address) == "" {
		return fmt.Errorf("record: property address required")
	}
	if _, err := ParsePropertyType(string(p.Type)); err != nil {
		return err
	}
	if _, err := ParseListingStatus(string(p.Status)); err != nil {
		return err
	}
	if p.Details != nil && p.Details.PropertyType() != p.Type {
		return fmt.Errorf("record: %s details on %s property", p.Details.PropertyType(), p.Type)
	}
	return nil
}
