// Package pricing orchestrates live quote computation for an order draft.
// One Session runs per open draft: operator keystrokes feed Update, a
// debounce window coalesces them, and each settled input resolves missing
// coordinates and fans out one tariff lookup per eligible formula. Results
// surface on a latest-wins channel so the UI never blocks the pipeline.
package pricing

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/core/domain/model/tariff"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
)

const (
	// DefaultDebounce is the pause after the last keystroke before a
	// pricing cycle starts.
	DefaultDebounce = 600 * time.Millisecond

	defaultResolveTimeout = 10 * time.Second

	parisPostalPrefix = "75"
)

// Input is a snapshot of the draft fields that affect pricing. Coordinates
// are optional; a side without them is geocoded during the cycle.
type Input struct {
	PickupText       string
	PickupCity       string
	PickupPostalCode string
	PickupPoint      *kernel.GeoPoint

	DeliveryText       string
	DeliveryCity       string
	DeliveryPostalCode string
	DeliveryPoint      *kernel.GeoPoint

	Schedule order.Schedule
	Vehicle  order.VehicleType
}

// FormulaPrice is the outcome of one tariff lookup. Exactly one of the
// three states holds: priced (Quote set), unserved (the route has no rate
// for this formula, a final answer), or failed (a transient error, Err set).
type FormulaPrice struct {
	Formula  order.Formula
	Quote    *tariff.Quote
	Unserved bool
	Err      error
}

// Result is the outcome of one pricing cycle.
// AllFailed is set only when every lookup failed transiently; unserved
// routes are definitive answers, not failures.
type Result struct {
	Generation uint64
	DistanceKm float64
	Prices     map[order.Formula]FormulaPrice
	AllFailed  bool

	// Resolved coordinates, when the cycle obtained them. The draft adopts
	// these so the eventual commit carries resolved addresses.
	PickupPoint   *kernel.GeoPoint
	DeliveryPoint *kernel.GeoPoint
}

// Session computes quotes for one order draft. Safe for concurrent use;
// a later Update supersedes any cycle still in flight (its result is
// discarded, never delivered out of order).
type Session struct {
	table    *tariff.Table
	geocoder ports.Geocoder
	logger   *slog.Logger

	debounce       time.Duration
	resolveTimeout time.Duration

	generation atomic.Uint64
	results    chan Result

	mu    sync.Mutex
	timer *time.Timer
	input Input
}

// NewSession creates a pricing session. A non-positive debounce falls back
// to DefaultDebounce.
func NewSession(
	table *tariff.Table,
	geocoder ports.Geocoder,
	logger *slog.Logger,
	debounce time.Duration,
) *Session {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Session{
		table:          table,
		geocoder:       geocoder,
		logger:         logger,
		debounce:       debounce,
		resolveTimeout: defaultResolveTimeout,
		results:        make(chan Result, 1),
	}
}

// Quotes returns the channel pricing results arrive on. The channel holds
// only the freshest result: a slow consumer sees the latest state, not a
// backlog.
func (s *Session) Quotes() <-chan Result {
	return s.results
}

// Update feeds the latest draft snapshot and restarts the debounce window.
// Nothing runs until the window elapses without another Update.
func (s *Session) Update(input Input) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = input
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		generation := s.generation.Add(1)
		ctx, cancel := context.WithTimeout(context.Background(), s.resolveTimeout)
		defer cancel()
		s.publish(s.resolve(ctx, generation, input))
	})
}

// ForceResolve runs one synchronous best-effort cycle on the latest input,
// cancelling any pending debounce. Used right before commit: a failure does
// not block submission, the order is simply committed with unresolved
// addresses and flagged for background geocoding.
func (s *Session) ForceResolve(ctx context.Context) Result {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	input := s.input
	s.mu.Unlock()

	generation := s.generation.Add(1)
	result := s.resolve(ctx, generation, input)
	s.publish(result)
	return result
}

// Close cancels any pending cycle. Results already published stay readable.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.generation.Add(1)
}

// publish delivers a result unless a newer cycle has started, replacing any
// unread older result. The generation is re-checked on every eviction pass:
// a newer cycle can start between the initial check and the send, and a
// stale result must never evict its successor.
func (s *Session) publish(result Result) {
	for {
		if result.Generation != s.generation.Load() {
			return
		}
		select {
		case s.results <- result:
			return
		default:
			select {
			case <-s.results:
			default:
			}
		}
	}
}

func (s *Session) resolve(ctx context.Context, generation uint64, input Input) Result {
	result := Result{
		Generation: generation,
		Prices:     make(map[order.Formula]FormulaPrice),
	}

	eligible := services.EligibleFormulas(input.Schedule, time.Now())
	if len(eligible) == 0 {
		return result
	}

	pickup, delivery, distanceKm, haveDistance := s.resolveSides(ctx, input)

	result.PickupPoint = pickup.point
	result.DeliveryPoint = delivery.point
	result.DistanceKm = distanceKm

	// A Paris side means no per-km supplement, so missing coordinates only
	// block suburb-to-suburb quotes.
	distanceRequired := !parisInvolved(pickup, delivery)

	prices := make([]FormulaPrice, len(eligible))
	lookups, _ := errgroup.WithContext(ctx)
	for i, formula := range eligible {
		lookups.Go(func() error {
			prices[i] = s.lookup(pickup, delivery, input.Vehicle, formula,
				result.DistanceKm, distanceRequired && !haveDistance)
			return nil
		})
	}
	_ = lookups.Wait()

	failed := 0
	for _, price := range prices {
		result.Prices[price.Formula] = price
		if price.Err != nil {
			failed++
		}
	}
	result.AllFailed = failed == len(eligible)

	return result
}

// ComputeOne prices a single caller-chosen formula synchronously, outside
// the debounce pipeline. Used when a formula was already picked (the
// recommended one, typically) and only its price is needed. Eligibility is
// the caller's concern.
func (s *Session) ComputeOne(ctx context.Context, input Input, formula order.Formula) FormulaPrice {
	pickup, delivery, distanceKm, haveDistance := s.resolveSides(ctx, input)
	distanceRequired := !parisInvolved(pickup, delivery)
	return s.lookup(pickup, delivery, input.Vehicle, formula,
		distanceKm, distanceRequired && !haveDistance)
}

// resolveSides geocodes both sides concurrently (one side failing must not
// rob the other of its resolution) and computes the crow-flight distance
// when both ended up with coordinates.
func (s *Session) resolveSides(ctx context.Context, input Input) (side, side, float64, bool) {
	pickup := side{
		text:       input.PickupText,
		city:       input.PickupCity,
		postalCode: input.PickupPostalCode,
		point:      input.PickupPoint,
	}
	delivery := side{
		text:       input.DeliveryText,
		city:       input.DeliveryCity,
		postalCode: input.DeliveryPostalCode,
		point:      input.DeliveryPoint,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.locate(gctx, &pickup)
		return nil
	})
	g.Go(func() error {
		s.locate(gctx, &delivery)
		return nil
	})
	_ = g.Wait()

	var distanceKm float64
	haveDistance := pickup.point != nil && delivery.point != nil
	if haveDistance {
		km, err := pickup.point.DistanceKm(*delivery.point)
		if err != nil {
			// Points come validated out of their constructor.
			haveDistance = false
		} else {
			distanceKm = km
		}
	}
	return pickup, delivery, distanceKm, haveDistance
}

func parisInvolved(pickup, delivery side) bool {
	return strings.HasPrefix(pickup.postalCode, parisPostalPrefix) ||
		strings.HasPrefix(delivery.postalCode, parisPostalPrefix)
}

func (s *Session) lookup(
	pickup side,
	delivery side,
	vehicle order.VehicleType,
	formula order.Formula,
	distanceKm float64,
	distanceMissing bool,
) FormulaPrice {
	if distanceMissing {
		return FormulaPrice{
			Formula: formula,
			Err:     errors.New("distance unavailable: addresses not resolved"),
		}
	}

	quote, err := s.table.Lookup(
		pickup.postalCode, pickup.city,
		delivery.postalCode, delivery.city,
		vehicle, formula, distanceKm,
	)
	if errors.Is(err, tariff.ErrRouteUnserved) {
		return FormulaPrice{Formula: formula, Unserved: true}
	}
	if err != nil {
		return FormulaPrice{Formula: formula, Err: err}
	}
	return FormulaPrice{Formula: formula, Quote: &quote}
}

type side struct {
	text       string
	city       string
	postalCode string
	point      *kernel.GeoPoint
}

// locate fills in missing coordinates (and, when absent, the canonical city
// and postal code) from the geocoder. A transient failure is retried once
// per cycle; still failing leaves the side unresolved.
func (s *Session) locate(ctx context.Context, side *side) {
	if side.point != nil || strings.TrimSpace(side.text) == "" {
		return
	}

	suggestions, err := s.geocoder.Autocomplete(ctx, side.text)
	if err != nil {
		suggestions, err = s.geocoder.Autocomplete(ctx, side.text)
	}
	if err != nil {
		s.logger.Warn("geocoding failed for pricing cycle",
			"address", side.text, "error", err)
		return
	}

	for _, raw := range suggestions {
		city, ok := s.table.FindCity(raw.PostalCode, raw.City)
		if !ok {
			continue
		}
		point, pointErr := kernel.NewGeoPoint(raw.Latitude, raw.Longitude)
		if pointErr != nil {
			continue
		}
		side.point = &point
		if side.city == "" {
			side.city = city.Name
		}
		if side.postalCode == "" {
			side.postalCode = city.PostalCode
		}
		return
	}
}
