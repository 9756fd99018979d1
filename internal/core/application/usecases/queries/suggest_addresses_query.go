package queries

import (
	"errors"
	"strings"

	"courier/internal/pkg/guard"
)

var ErrSuggestAddressesQueryIsNotConstructed = errors.New(
	"SuggestAddressesQuery must be created via NewSuggestAddressesQuery constructor",
)

// SuggestAddressesQuery asks for address suggestions matching a free-text
// fragment typed by an operator.
type SuggestAddressesQuery struct {
	text string

	guard guard.ConstructorGuard
}

// NewSuggestAddressesQuery creates a suggestion query for the given fragment.
// The fragment is trimmed; anything is accepted, short fragments simply
// produce no suggestions.
func NewSuggestAddressesQuery(text string) SuggestAddressesQuery {
	return SuggestAddressesQuery{
		text:  strings.TrimSpace(text),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrSuggestAddressesQueryIsNotConstructed if validation fails.
func (q SuggestAddressesQuery) Validate() error {
	return q.guard.Validate(ErrSuggestAddressesQueryIsNotConstructed)
}

// Text returns the trimmed search fragment.
func (q SuggestAddressesQuery) Text() string {
	return q.text
}

// AddressSuggestion is one proposed address. Curated suggestions come from
// the tariff city table and carry no coordinates; provider suggestions carry
// coordinates and have their city and postal code canonicalized against the
// same table, which guarantees every accepted suggestion prices cleanly.
type AddressSuggestion struct {
	Label      string
	City       string
	PostalCode string
	Latitude   *float64
	Longitude  *float64
	Curated    bool
}
