package queries

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/ports"
)

// maxSuggestions caps the merged suggestion list.
const maxSuggestions = 10

// minQueryRunes is the threshold below which no lookup happens at all,
// keeping keystroke-level queries free of I/O.
const minQueryRunes = 2

// SuggestAddressesQueryHandler resolves a typed fragment into address
// suggestions. Curated cities from the tariff table come first; third-party
// results follow, kept only when their postal code and city match a curated
// city (and rewritten to the canonical spelling). A provider outage degrades
// the response to curated-only, it never fails the query.
//
// Example:
//
//	handler := NewSuggestAddressesQueryHandler(tariff.DefaultTable(), geocoder, logger)
//	suggestions, _ := handler.Handle(ctx, NewSuggestAddressesQuery("versail"))
//	for _, s := range suggestions {
//	    fmt.Println(s.Label)
//	}
type SuggestAddressesQueryHandler struct {
	table    *tariff.Table
	geocoder ports.Geocoder
	logger   *slog.Logger
}

// NewSuggestAddressesQueryHandler creates a handler for address suggestion queries.
func NewSuggestAddressesQueryHandler(
	table *tariff.Table,
	geocoder ports.Geocoder,
	logger *slog.Logger,
) SuggestAddressesQueryHandler {
	return SuggestAddressesQueryHandler{
		table:    table,
		geocoder: geocoder,
		logger:   logger,
	}
}

// Handle executes the suggestion query.
// Fragments shorter than two runes return an empty list without any I/O.
// Suggestions are deduplicated by display label and capped at ten.
func (h SuggestAddressesQueryHandler) Handle(
	ctx context.Context,
	query SuggestAddressesQuery,
) ([]AddressSuggestion, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	text := query.Text()
	suggestions := make([]AddressSuggestion, 0, maxSuggestions)
	if utf8.RuneCountInString(text) < minQueryRunes {
		return suggestions, nil
	}

	seen := make(map[string]struct{})
	appendUnique := func(s AddressSuggestion) {
		key := strings.ToLower(s.Label)
		if _, dup := seen[key]; dup || len(suggestions) >= maxSuggestions {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, city := range h.table.SearchCities(text, maxSuggestions) {
		appendUnique(AddressSuggestion{
			Label:      fmt.Sprintf("%s (%s)", city.Name, city.PostalCode),
			City:       city.Name,
			PostalCode: city.PostalCode,
			Curated:    true,
		})
	}

	raw, err := h.geocoder.Autocomplete(ctx, text)
	if err != nil {
		h.logger.Warn("address autocomplete degraded to curated results",
			"query", text, "error", err)
		return suggestions, nil
	}

	for _, r := range raw {
		city, ok := h.table.FindCity(r.PostalCode, r.City)
		if !ok {
			continue
		}
		lat, lng := r.Latitude, r.Longitude
		appendUnique(AddressSuggestion{
			Label:      r.DisplayName,
			City:       city.Name,
			PostalCode: city.PostalCode,
			Latitude:   &lat,
			Longitude:  &lng,
		})
	}

	return suggestions, nil
}
