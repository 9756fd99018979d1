package locationiq_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/adapters/out/locationiq"
	"courier/internal/pkg/errs"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	_, err := locationiq.NewClient("", "  ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAutocomplete_ParsesSuggestions(t *testing.T) {
	var capturedQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.RawQuery
		assert.Equal(t, "/v1/autocomplete", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"display_name": "10, Avenue de Paris, Versailles, Yvelines, France",
				"lat": "48.8014",
				"lon": "2.1305",
				"address": {
					"house_number": "10",
					"road": "Avenue de Paris",
					"city": "Versailles",
					"postcode": "78000"
				}
			},
			{
				"display_name": "Rue de Rivoli, Paris, France",
				"lat": "not-a-number",
				"lon": "2.3571",
				"address": {"road": "Rue de Rivoli", "city": "Paris", "postcode": "75004"}
			},
			{
				"display_name": "Mairie, Le Raincy, Seine-Saint-Denis, France",
				"lat": "48.8972",
				"lon": "2.5186",
				"address": {"town": "Le Raincy", "postcode": "93340"}
			}
		]`))
	}))
	defer server.Close()

	client, err := locationiq.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	suggestions, err := client.Autocomplete(context.Background(), "avenue de paris")
	require.NoError(t, err)

	// Unparseable coordinates are skipped.
	require.Len(t, suggestions, 2)

	assert.Equal(t, "10 Avenue de Paris, 78000 Versailles", suggestions[0].DisplayName)
	assert.Equal(t, "Versailles", suggestions[0].City)
	assert.Equal(t, "78000", suggestions[0].PostalCode)
	assert.InDelta(t, 48.8014, suggestions[0].Latitude, 0.0001)
	assert.InDelta(t, 2.1305, suggestions[0].Longitude, 0.0001)

	// Town fills in when city is absent; street falls back to display_name.
	assert.Equal(t, "Mairie, 93340 Le Raincy", suggestions[1].DisplayName)
	assert.Equal(t, "Le Raincy", suggestions[1].City)

	assert.Contains(t, capturedQuery, "countrycodes=fr")
	assert.Contains(t, capturedQuery, "limit=10")
	assert.Contains(t, capturedQuery, "key=test-key")
	assert.Contains(t, capturedQuery, "viewbox=")
}

func TestAutocomplete_NoMatchIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := locationiq.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	suggestions, err := client.Autocomplete(context.Background(), "zzzzzz")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestAutocomplete_ServerErrorIsReturned(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := locationiq.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	_, err = client.Autocomplete(context.Background(), "avenue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestAutocomplete_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client, err := locationiq.NewClient(server.URL, "test-key")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Autocomplete(ctx, "avenue")
	require.Error(t, err)
}
