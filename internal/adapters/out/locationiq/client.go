// Package locationiq implements the Geocoder port against the LocationIQ
// autocomplete API. Results are restricted to France and biased towards the
// Île-de-France service area.
package locationiq

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

const (
	// DefaultBaseURL is the public LocationIQ API endpoint.
	DefaultBaseURL = "https://api.locationiq.com"

	defaultTimeout = 5 * time.Second
	resultLimit    = 10

	// Île-de-France bounding box (west,north,east,south), used to bias
	// the provider towards the service area.
	serviceAreaViewBox = "1.44,49.25,3.56,48.12"
)

// Client calls the LocationIQ autocomplete endpoint. It implements
// ports.Geocoder.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a LocationIQ client. baseURL may be empty, in which case
// the public API endpoint is used.
func NewClient(baseURL string, apiKey string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errs.NewValueIsRequiredError("apiKey")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

// suggestionDTO mirrors one element of the LocationIQ autocomplete response.
type suggestionDTO struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Address     struct {
		HouseNumber  string `json:"house_number"`
		Road         string `json:"road"`
		City         string `json:"city"`
		Town         string `json:"town"`
		Village      string `json:"village"`
		Municipality string `json:"municipality"`
		Postcode     string `json:"postcode"`
	} `json:"address"`
}

// Autocomplete queries the provider for address suggestions matching the
// free-text query. The caller owns retry and degradation policy; every
// failure is returned as a wrapped error.
func (c *Client) Autocomplete(ctx context.Context, query string) ([]ports.RawSuggestion, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(resultLimit))
	params.Set("countrycodes", "fr")
	params.Set("normalizecity", "1")
	params.Set("dedupe", "1")
	params.Set("viewbox", serviceAreaViewBox)
	params.Set("accept-language", "fr")

	requestURL := c.baseURL + "/v1/autocomplete?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build autocomplete request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call autocomplete: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// LocationIQ answers 404 when nothing matches the query.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("autocomplete returned status %d", resp.StatusCode)
	}

	var dtos []suggestionDTO
	if err := json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, fmt.Errorf("decode autocomplete response: %w", err)
	}

	suggestions := make([]ports.RawSuggestion, 0, len(dtos))
	for _, dto := range dtos {
		lat, latErr := strconv.ParseFloat(dto.Lat, 64)
		lon, lonErr := strconv.ParseFloat(dto.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}

		suggestions = append(suggestions, ports.RawSuggestion{
			DisplayName: displayName(dto),
			City:        cityOf(dto),
			PostalCode:  dto.Address.Postcode,
			Latitude:    lat,
			Longitude:   lon,
		})
	}
	return suggestions, nil
}

// displayName builds the "street, postcode city" line shown to operators,
// falling back to the provider's display_name when parts are missing.
func displayName(dto suggestionDTO) string {
	street := strings.TrimSpace(dto.Address.HouseNumber + " " + dto.Address.Road)
	if street == "" {
		if idx := strings.Index(dto.DisplayName, ","); idx > 0 {
			street = dto.DisplayName[:idx]
		} else {
			street = dto.DisplayName
		}
	}

	city := cityOf(dto)
	if dto.Address.Postcode != "" && city != "" {
		return street + ", " + dto.Address.Postcode + " " + city
	}
	return dto.DisplayName
}

// cityOf picks the most specific locality field the provider filled in.
func cityOf(dto suggestionDTO) string {
	for _, candidate := range []string{
		dto.Address.City,
		dto.Address.Town,
		dto.Address.Village,
		dto.Address.Municipality,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
