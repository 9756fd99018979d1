// Package geocache decorates a Geocoder with a redis cache so repeated
// address fragments do not hit the third-party provider on every keystroke.
package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// DefaultTTL bounds how long a suggestion list stays fresh. Street-level
// geocoding data changes rarely, operator sessions are short.
const DefaultTTL = 15 * time.Minute

const keyPrefix = "geocode:autocomplete:"

// store is the slice of the redis client the cache needs.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachingGeocoder caches suggestion lists per normalized query. Cache
// failures are logged and fall through to the wrapped geocoder, so a redis
// outage degrades to slower autocomplete rather than broken autocomplete.
type CachingGeocoder struct {
	inner  ports.Geocoder
	client store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachingGeocoder wraps inner with a redis-backed cache. A non-positive
// ttl falls back to DefaultTTL.
func NewCachingGeocoder(
	inner ports.Geocoder,
	client *redis.Client,
	ttl time.Duration,
	logger *slog.Logger,
) (*CachingGeocoder, error) {
	if inner == nil {
		return nil, errs.NewValueIsRequiredError("inner")
	}
	if client == nil {
		return nil, errs.NewValueIsRequiredError("client")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &CachingGeocoder{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

// Autocomplete returns the cached suggestion list for the query when present,
// otherwise delegates to the wrapped geocoder and stores the result.
func (c *CachingGeocoder) Autocomplete(ctx context.Context, query string) ([]ports.RawSuggestion, error) {
	key := cacheKey(query)

	payload, err := c.client.Get(ctx, key).Result()
	if err == nil {
		var suggestions []ports.RawSuggestion
		if unmarshalErr := json.Unmarshal([]byte(payload), &suggestions); unmarshalErr == nil {
			return suggestions, nil
		}
		c.logger.Warn("discarding corrupt geocode cache entry", "key", key)
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("geocode cache read failed", "key", key, "error", err)
	}

	suggestions, err := c.inner.Autocomplete(ctx, query)
	if err != nil {
		return nil, err
	}

	// Empty lists are cached too: a fragment with no match stays without
	// match for the whole TTL.
	encoded, err := json.Marshal(suggestions)
	if err == nil {
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.logger.Warn("geocode cache write failed", "key", key, "error", setErr)
		}
	}
	return suggestions, nil
}

// cacheKey normalizes the query so trivially different fragments share an
// entry: lowercased, whitespace collapsed to single spaces.
func cacheKey(query string) string {
	return keyPrefix + strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
