package order

import (
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress or NewResolvedAddress")

// Address is a pickup or delivery address. It always carries the free-text
// line typed by the operator; city, postal code and coordinates are present
// only once geocoding has resolved them.
//
// An address without coordinates is valid: the order it belongs to is flagged
// for background geocoding instead of being rejected.
type Address struct { //nolint:recvcheck //using for validation
	text       string
	city       string
	postalCode string
	point      *kernel.GeoPoint
	guard      guard.ConstructorGuard
}

// NewAddress creates an unresolved Address from the operator's free text.
func NewAddress(text string) (Address, error) {
	if strings.TrimSpace(text) == "" {
		return Address{}, errs.NewValueIsRequiredError("address text")
	}

	return Address{
		text:  text,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewResolvedAddress creates an Address with its geocoded city, postal code
// and coordinates.
func NewResolvedAddress(text string, city string, postalCode string, point kernel.GeoPoint) (Address, error) {
	addr, err := NewAddress(text)
	if err != nil {
		return Address{}, err
	}
	if err := point.Validate(); err != nil {
		return Address{}, err
	}
	if strings.TrimSpace(postalCode) == "" {
		return Address{}, errs.NewValueIsRequiredError("postalCode")
	}

	addr.city = city
	addr.postalCode = postalCode
	addr.point = &point
	return addr, nil
}

// Validate checks that the Address was created through a constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Text returns the free-form address line.
func (a Address) Text() string {
	return a.text
}

// City returns the resolved city name, empty when unresolved.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the resolved postal code, empty when unresolved.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Point returns the resolved coordinates, nil when unresolved.
func (a Address) Point() *kernel.GeoPoint {
	return a.point
}

// NeedsGeocoding reports whether the address still lacks coordinates.
func (a Address) NeedsGeocoding() bool {
	return a.point == nil
}

// Contact holds the hand-off details for one side of a delivery. All fields
// are optional free text.
type Contact struct {
	Name         string
	Phone        string
	AccessCode   string
	Instructions string
}
