package ports

import (
	"context"
)

// RawSuggestion is a single address suggestion as returned by a third-party
// geocoding provider, before canonicalization against the tariff city table.
type RawSuggestion struct {
	// DisplayName is the provider's full human-readable address line.
	DisplayName string

	// City is the locality the provider attached to the result, when present.
	City string

	// PostalCode is the postal code the provider attached to the result,
	// when present.
	PostalCode string

	Latitude  float64
	Longitude float64
}

// Geocoder resolves free-text address fragments into candidate suggestions.
// Implementations call external services and must honor ctx cancellation.
// A failed call is a transient condition: callers degrade to curated results
// rather than surfacing the failure to the operator.
type Geocoder interface {
	Autocomplete(ctx context.Context, query string) ([]RawSuggestion, error)
}
