package tariff

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
)

// ErrRouteUnserved marks a legitimate "no price available" outcome: an
// address outside the covered zone, or a vehicle/formula combination the grid
// has no column for. It is a first-class result, distinguishable from
// transient failure, and must never be retried.
var ErrRouteUnserved = errors.New("route is not served")

// Rates is the per-city pickup charge card in bons, one column per
// vehicle/formula combination. There is no column for a light vehicle on the
// Urgence formula.
type Rates struct {
	Normal    float64
	Express   float64
	Urgence   float64
	VLNormal  float64
	VLExpress float64
}

// Bons returns the pickup charge for the given vehicle and formula, and
// false when the grid has no such column.
func (r Rates) Bons(vehicle order.VehicleType, formula order.Formula) (float64, bool) {
	switch vehicle {
	case order.VehicleMoto:
		switch formula {
		case order.FormulaNormal:
			return r.Normal, true
		case order.FormulaExpress:
			return r.Express, true
		case order.FormulaUrgence:
			return r.Urgence, true
		}
	case order.VehicleVL:
		switch formula {
		case order.FormulaNormal:
			return r.VLNormal, true
		case order.FormulaExpress:
			return r.VLExpress, true
		case order.FormulaUrgence:
			return 0, false
		}
	}
	return 0, false
}

// City is one row of the rate grid.
type City struct {
	Name       string
	PostalCode string
	Rates      Rates
}

// IsParis reports whether the city is a Paris arrondissement. Paris runs
// never pay the kilometric supplement.
func (c City) IsParis() bool {
	return strings.HasPrefix(c.PostalCode, "75")
}

// Config carries the tunable pricing constants.
type Config struct {
	// BonValueCents is the value of one bon in euro cents excluding tax.
	BonValueCents int64
	// SupplementPerKmBons is the kilometric supplement, in bons per km,
	// charged on suburb-to-suburb runs.
	SupplementPerKmBons float64
}

// DefaultConfig returns the standard pricing constants: one bon is 5.50 € HT
// and suburb-to-suburb runs pay 0.1 bon per kilometer.
func DefaultConfig() Config {
	return Config{
		BonValueCents:       550,
		SupplementPerKmBons: 0.1,
	}
}

// Quote is the detailed outcome of one tariff lookup.
type Quote struct {
	PickupCity        string
	DeliveryCity      string
	Vehicle           order.VehicleType
	Formula           order.Formula
	DistanceKm        float64
	BaseBons          float64
	SupplementBons    float64
	TotalBons         float64
	PriceHTCents      int64
	ParisInvolved     bool
	SupplementApplied bool
}

// Table resolves cities and prices routes against the rate grid. Lookups are
// pure and deterministic: the same inputs always produce the same quote, so
// results are freely memoizable.
type Table struct {
	cities []City
	config Config
}

// NewTable builds a Table over the given grid.
func NewTable(cities []City, config Config) *Table {
	return &Table{cities: cities, config: config}
}

// DefaultTable builds a Table over the curated Île-de-France grid with the
// standard constants.
func DefaultTable() *Table {
	return NewTable(Cities(), DefaultConfig())
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeName flattens a city name for comparison: lowercase, accents
// stripped, hyphens as spaces, parenthesized articles dropped.
func normalizeName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, "-", " ")
	if i := strings.IndexByte(s, '('); i >= 0 {
		if j := strings.IndexByte(s[i:], ')'); j >= 0 {
			s = s[:i] + s[i+j+1:]
		}
	}
	if flat, _, err := transform.String(deaccent, s); err == nil {
		s = flat
	}
	return strings.Join(strings.Fields(s), " ")
}

// stripArticle removes a leading or parenthesized French article so that
// "Le Raincy" and "Raincy (le)" compare equal.
func stripArticle(name string) string {
	for _, article := range []string{"le ", "la ", "les "} {
		name = strings.ReplaceAll(name, article, "")
	}
	return strings.TrimSpace(name)
}

// FindCity resolves a grid row from a postal code and an optional city name.
//
// Resolution order: exact postal code + normalized name, then postal code +
// fuzzy name inclusion (geocoder spellings rarely match the grid exactly),
// then the first row with the postal code alone.
func (t *Table) FindCity(postalCode string, name string) (City, bool) {
	zip := strings.TrimSpace(postalCode)
	if zip == "" {
		return City{}, false
	}

	if name != "" {
		target := normalizeName(name)

		for _, c := range t.cities {
			if c.PostalCode == zip && normalizeName(c.Name) == target {
				return c, true
			}
		}

		for _, c := range t.cities {
			if c.PostalCode != zip {
				continue
			}
			n := normalizeName(c.Name)
			if strings.Contains(n, target) || strings.Contains(target, n) {
				return c, true
			}
		}
	}

	for _, c := range t.cities {
		if c.PostalCode == zip {
			return c, true
		}
	}
	return City{}, false
}

// SearchCities returns up to limit grid rows matching the query by postal
// code prefix or by name, article-insensitive. An empty query matches
// nothing.
func (t *Table) SearchCities(query string, limit int) []City {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" || limit <= 0 {
		return nil
	}
	termClean := stripArticle(normalizeName(term))

	var out []City
	for _, c := range t.cities {
		if len(out) == limit {
			break
		}

		if strings.HasPrefix(c.PostalCode, term) {
			out = append(out, c)
			continue
		}
		name := normalizeName(c.Name)
		if strings.Contains(name, normalizeName(term)) || strings.Contains(stripArticle(name), termClean) {
			out = append(out, c)
		}
	}
	return out
}

// Lookup prices a route for one vehicle/formula combination.
//
// The rules, in order:
//  1. universal rule: the pickup charge is the MAX of the two cities' bons
//     for the column
//  2. suburb-to-suburb only: kilometric supplement of distanceKm x 0.1 bon
//  3. Paris as pickup or delivery: no supplement, the MAX alone
//
// Total € HT = total bons x the bon value. Unknown postal codes and the
// (VL, Urgence) combination return ErrRouteUnserved.
func (t *Table) Lookup(
	pickupPostal string, pickupName string,
	deliveryPostal string, deliveryName string,
	vehicle order.VehicleType, formula order.Formula,
	distanceKm float64,
) (Quote, error) {
	if err := errors.Join(vehicle.Validate(), formula.Validate()); err != nil {
		return Quote{}, err
	}
	if distanceKm < 0 {
		return Quote{}, errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%f is negative", distanceKm))
	}

	pickup, ok := t.FindCity(pickupPostal, pickupName)
	if !ok {
		return Quote{}, fmt.Errorf("%w: pickup postal code %s", ErrRouteUnserved, pickupPostal)
	}
	delivery, ok := t.FindCity(deliveryPostal, deliveryName)
	if !ok {
		return Quote{}, fmt.Errorf("%w: delivery postal code %s", ErrRouteUnserved, deliveryPostal)
	}

	pickupBons, ok := pickup.Rates.Bons(vehicle, formula)
	if !ok {
		return Quote{}, fmt.Errorf("%w: no %s column for %s", ErrRouteUnserved, formula, vehicle)
	}
	deliveryBons, _ := delivery.Rates.Bons(vehicle, formula)

	base := math.Max(pickupBons, deliveryBons)
	parisInvolved := pickup.IsParis() || delivery.IsParis()

	var supplement float64
	if !parisInvolved {
		supplement = distanceKm * t.config.SupplementPerKmBons
	}

	totalBons := base + supplement

	return Quote{
		PickupCity:        pickup.Name,
		DeliveryCity:      delivery.Name,
		Vehicle:           vehicle,
		Formula:           formula,
		DistanceKm:        distanceKm,
		BaseBons:          base,
		SupplementBons:    supplement,
		TotalBons:         totalBons,
		PriceHTCents:      int64(math.Round(totalBons * float64(t.config.BonValueCents))),
		ParisInvolved:     parisInvolved,
		SupplementApplied: !parisInvolved,
	}, nil
}
