package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/ports"
)

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Autocomplete(ctx context.Context, query string) ([]ports.RawSuggestion, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.RawSuggestion), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSuggestHandler(geocoder ports.Geocoder) queries.SuggestAddressesQueryHandler {
	return queries.NewSuggestAddressesQueryHandler(tariff.DefaultTable(), geocoder, discardLogger())
}

func TestSuggestAddressesQueryHandler_Handle_ShortFragmentSkipsIO(t *testing.T) {
	geocoder := new(MockGeocoder)
	h := newSuggestHandler(geocoder)

	for _, fragment := range []string{"", "v", "  p  "} {
		got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery(fragment))
		require.NoError(t, err)
		assert.Empty(t, got)
	}
	geocoder.AssertNotCalled(t, "Autocomplete")
}

func TestSuggestAddressesQueryHandler_Handle_CuratedFirstThenProvider(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Autocomplete", mock.Anything, "versail").Return([]ports.RawSuggestion{
		{
			DisplayName: "2 Avenue de Paris, Versailles, 78000",
			City:        "Versailles",
			PostalCode:  "78000",
			Latitude:    48.8014,
			Longitude:   2.1305,
		},
	}, nil).Once()

	h := newSuggestHandler(geocoder)
	got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery("versail"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].Curated)
	assert.Equal(t, "Versailles (78000)", got[0].Label)
	assert.Nil(t, got[0].Latitude)

	assert.False(t, got[1].Curated)
	assert.Equal(t, "Versailles", got[1].City)
	assert.Equal(t, "78000", got[1].PostalCode)
	require.NotNil(t, got[1].Latitude)
	assert.InDelta(t, 48.8014, *got[1].Latitude, 0.0001)
}

func TestSuggestAddressesQueryHandler_Handle_UnservedProviderResultsDropped(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Autocomplete", mock.Anything, mock.Anything).Return([]ports.RawSuggestion{
		{DisplayName: "Place Bellecour, Lyon", City: "Lyon", PostalCode: "69002", Latitude: 45.7578, Longitude: 4.8320},
	}, nil).Once()

	h := newSuggestHandler(geocoder)
	got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery("bellecour lyon"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSuggestAddressesQueryHandler_Handle_CanonicalizesProviderCity(t *testing.T) {
	geocoder := new(MockGeocoder)
	// Provider spells the city with accents and a leading article.
	geocoder.On("Autocomplete", mock.Anything, mock.Anything).Return([]ports.RawSuggestion{
		{DisplayName: "1 Allée du Jardin, Le Raincy", City: "Le Raincy", PostalCode: "93340", Latitude: 48.8987, Longitude: 2.5134},
	}, nil).Once()

	h := newSuggestHandler(geocoder)
	got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery("raincy"))
	require.NoError(t, err)
	require.NotEmpty(t, got)

	last := got[len(got)-1]
	assert.False(t, last.Curated)
	assert.Equal(t, "Raincy (le)", last.City)
	assert.Equal(t, "93340", last.PostalCode)
}

func TestSuggestAddressesQueryHandler_Handle_ProviderFailureDegrades(t *testing.T) {
	geocoder := new(MockGeocoder)
	geocoder.On("Autocomplete", mock.Anything, mock.Anything).
		Return(nil, errors.New("upstream timeout")).Once()

	h := newSuggestHandler(geocoder)
	got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery("versail"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Curated)
}

func TestSuggestAddressesQueryHandler_Handle_DedupesAndCaps(t *testing.T) {
	raw := make([]ports.RawSuggestion, 0, 6)
	for range 3 {
		// Same display line repeated: only one survives.
		raw = append(raw, ports.RawSuggestion{
			DisplayName: "10 Rue de la Paroisse, Versailles",
			City:        "Versailles",
			PostalCode:  "78000",
			Latitude:    48.8049,
			Longitude:   2.1322,
		})
	}
	geocoder := new(MockGeocoder)
	geocoder.On("Autocomplete", mock.Anything, mock.Anything).Return(raw, nil).Once()

	h := newSuggestHandler(geocoder)
	got, err := h.Handle(t.Context(), queries.NewSuggestAddressesQuery("versail"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Paris prefix matches every arrondissement: the cap bounds the list.
	geocoder2 := new(MockGeocoder)
	geocoder2.On("Autocomplete", mock.Anything, mock.Anything).Return([]ports.RawSuggestion{}, nil).Once()
	h2 := newSuggestHandler(geocoder2)
	capped, err := h2.Handle(t.Context(), queries.NewSuggestAddressesQuery("750"))
	require.NoError(t, err)
	assert.Len(t, capped, 10)
}

func TestSuggestAddressesQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.SuggestAddressesQuery
	err := query.Validate()
	require.ErrorIs(t, err, queries.ErrSuggestAddressesQueryIsNotConstructed)
}
