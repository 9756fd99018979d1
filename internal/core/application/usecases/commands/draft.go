package commands

import (
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"
)

// Draft is the loose, in-progress form of an order as operators type it.
// Every field is optional while the draft is open; the pricing session
// fills Formula and PriceHTCents as quotes land. ToCommand is the single
// gate between this permissive shape and the strict create command.
type Draft struct {
	OrderID   *kernel.UUID
	Reference string

	PickupText       string
	PickupCity       string
	PickupPostalCode string
	PickupLatitude   *float64
	PickupLongitude  *float64

	DeliveryText       string
	DeliveryCity       string
	DeliveryPostalCode string
	DeliveryLatitude   *float64
	DeliveryLongitude  *float64

	PickupContact   order.Contact
	DeliveryContact order.Contact

	ScheduleType string
	PickupAt     *time.Time
	Deadline     *time.Time

	Vehicle      string
	Formula      string
	PriceHTCents *int64
}

// ToCommand converts the draft into a CreateOrderCommand, generating an
// order ID when the draft has none. It fails when any required field is
// still missing: both address texts, a schedule type (with pickup time if
// deferred), a vehicle, and the quoted formula/price pair. Coordinates stay
// optional; an address without them is committed unresolved and geocoded in
// the background.
func (d Draft) ToCommand() (CreateOrderCommand, error) {
	orderID := kernel.NewUUID()
	if d.OrderID != nil {
		orderID = *d.OrderID
	}

	pickup, err := d.buildAddress(d.PickupText, d.PickupCity, d.PickupPostalCode,
		d.PickupLatitude, d.PickupLongitude, "pickupAddress")
	if err != nil {
		return CreateOrderCommand{}, err
	}

	delivery, err := d.buildAddress(d.DeliveryText, d.DeliveryCity, d.DeliveryPostalCode,
		d.DeliveryLatitude, d.DeliveryLongitude, "deliveryAddress")
	if err != nil {
		return CreateOrderCommand{}, err
	}

	scheduleType, err := order.ScheduleTypeFromCode(d.ScheduleType)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	schedule, err := order.NewSchedule(scheduleType, d.PickupAt, d.Deadline)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	vehicle, err := order.VehicleTypeFromCode(d.Vehicle)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	formula, err := order.FormulaFromCode(d.Formula)
	if err != nil {
		return CreateOrderCommand{}, err
	}
	if d.PriceHTCents == nil {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("priceHTCents")
	}

	return NewCreateOrderCommand(
		orderID,
		d.Reference,
		pickup,
		delivery,
		d.PickupContact,
		d.DeliveryContact,
		schedule,
		vehicle,
		formula,
		*d.PriceHTCents,
	)
}

func (d Draft) buildAddress(
	text string,
	city string,
	postalCode string,
	latitude *float64,
	longitude *float64,
	paramName string,
) (order.Address, error) {
	if strings.TrimSpace(text) == "" {
		return order.Address{}, errs.NewValueIsRequiredError(paramName)
	}

	if latitude == nil || longitude == nil {
		return order.NewAddress(text)
	}

	point, err := kernel.NewGeoPoint(*latitude, *longitude)
	if err != nil {
		return order.Address{}, err
	}
	return order.NewResolvedAddress(text, city, postalCode, point)
}
