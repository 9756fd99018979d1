package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrPriceAlreadyFrozen is returned when attempting to set the price of
	// an order that already has one. Price and formula are set once at
	// commit and never recomputed, even if tariffs later change.
	ErrPriceAlreadyFrozen = errors.New("order price is already frozen")

	// ErrReassignmentNeedsConfirmation classifies ReassignmentError for
	// errors.Is checks.
	ErrReassignmentNeedsConfirmation = errors.New("reassignment requires confirmation")
)

// ReassignmentError is returned by Dispatch when the order already has a
// different driver and the caller did not confirm the reassignment. The
// previous driver's outstanding mission disappears from their task list, so
// the swap is destructive for them and must be explicitly confirmed.
type ReassignmentError struct {
	PreviousDriverID kernel.UUID
}

func (e *ReassignmentError) Error() string {
	return fmt.Sprintf("reassignment requires confirmation: driver %s still holds this order", e.PreviousDriverID)
}

func (e *ReassignmentError) Unwrap() error {
	return ErrReassignmentNeedsConfirmation
}

// DispatchOptions modify the behavior of Order.Dispatch.
type DispatchOptions struct {
	// ConfirmReassign acknowledges that dispatching over an existing
	// different driver removes that driver's mission.
	ConfirmReassign bool
}

// Order is the aggregate root of the dispatch domain. It owns the lifecycle
// from creation through assignment and pickup to delivery, and is mutated
// exclusively through its transition methods.
//
// Invariants maintained:
//   - a driver is recorded only once the order is Assigned or later, and a
//     PickedUp order always has one
//   - no transition is applied to a terminal order (Delivered, Cancelled)
//   - formula and price are frozen once set
//   - rejected transitions leave the aggregate untouched
type Order struct {
	id              kernel.UUID
	reference       string
	status          Status
	driverID        *kernel.UUID
	pickupAddress   Address
	deliveryAddress Address
	pickupContact   Contact
	deliveryContact Contact
	schedule        Schedule
	vehicle         VehicleType
	formula         *Formula
	priceHTCents    *int64
	cancelReason    string

	createdAt    time.Time
	dispatchedAt *time.Time
	pickedUpAt   *time.Time
	deliveredAt  *time.Time
	cancelledAt  *time.Time

	isConstructed bool
}

// NewOrder creates a pending Order from committed draft data. The schedule is
// validated with its strict commit rules (a deferred schedule must carry its
// pickup time). Addresses may still lack coordinates; such orders report
// NeedsGeocoding and are resolved in the background.
func NewOrder(
	id kernel.UUID,
	reference string,
	pickupAddress Address,
	deliveryAddress Address,
	pickupContact Contact,
	deliveryContact Contact,
	schedule Schedule,
	vehicle VehicleType,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		pickupAddress.Validate(),
		deliveryAddress.Validate(),
		schedule.ValidateForCommit(),
		vehicle.Validate(),
	); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errs.NewValueIsRequiredError("reference")
	}

	return &Order{
		id:              id,
		reference:       reference,
		status:          StatusPending,
		pickupAddress:   pickupAddress,
		deliveryAddress: deliveryAddress,
		pickupContact:   pickupContact,
		deliveryContact: deliveryContact,
		schedule:        schedule,
		vehicle:         vehicle,
		createdAt:       createdAt,
		isConstructed:   true,
	}, nil
}

// RestoreOrderParams carries the persisted state needed to reconstruct an
// Order from storage.
type RestoreOrderParams struct {
	ID              kernel.UUID
	Reference       string
	Status          Status
	DriverID        *kernel.UUID
	PickupAddress   Address
	DeliveryAddress Address
	PickupContact   Contact
	DeliveryContact Contact
	Schedule        Schedule
	Vehicle         VehicleType
	Formula         *Formula
	PriceHTCents    *int64
	CancelReason    string
	CreatedAt       time.Time
	DispatchedAt    *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
	CancelledAt     *time.Time
}

// RestoreOrder reconstructs an Order from persistence, re-checking the
// status/driver consistency rules so corrupt rows never become live
// aggregates.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		p.ID.Validate(),
		p.Status.Validate(),
		p.Status.ValidateCanHaveDriver(p.DriverID != nil),
		p.PickupAddress.Validate(),
		p.DeliveryAddress.Validate(),
		p.Schedule.Validate(),
		p.Vehicle.Validate(),
	); err != nil {
		return nil, err
	}
	if p.Formula != nil {
		if err := p.Formula.Validate(); err != nil {
			return nil, err
		}
	}
	if p.PriceHTCents != nil && p.Formula == nil {
		return nil, errs.NewValueIsRequiredError("formula")
	}

	return &Order{
		id:              p.ID,
		reference:       p.Reference,
		status:          p.Status,
		driverID:        p.DriverID,
		pickupAddress:   p.PickupAddress,
		deliveryAddress: p.DeliveryAddress,
		pickupContact:   p.PickupContact,
		deliveryContact: p.DeliveryContact,
		schedule:        p.Schedule,
		vehicle:         p.Vehicle,
		formula:         p.Formula,
		priceHTCents:    p.PriceHTCents,
		cancelReason:    p.CancelReason,
		createdAt:       p.CreatedAt,
		dispatchedAt:    p.DispatchedAt,
		pickedUpAt:      p.PickedUpAt,
		deliveredAt:     p.DeliveredAt,
		cancelledAt:     p.CancelledAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Reference returns the human-readable order reference.
func (o *Order) Reference() string {
	return o.reference
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the assigned driver's ID, nil when none is assigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// PickupAddress returns the pickup address.
func (o *Order) PickupAddress() Address {
	return o.pickupAddress
}

// DeliveryAddress returns the delivery address.
func (o *Order) DeliveryAddress() Address {
	return o.deliveryAddress
}

// PickupContact returns the pickup hand-off details.
func (o *Order) PickupContact() Contact {
	return o.pickupContact
}

// DeliveryContact returns the delivery hand-off details.
func (o *Order) DeliveryContact() Contact {
	return o.deliveryContact
}

// Schedule returns the pickup schedule.
func (o *Order) Schedule() Schedule {
	return o.schedule
}

// Vehicle returns the requested vehicle type.
func (o *Order) Vehicle() VehicleType {
	return o.vehicle
}

// Formula returns the chosen formula, nil until one was frozen.
func (o *Order) Formula() *Formula {
	return o.formula
}

// PriceHTCents returns the frozen price excluding tax in euro cents, nil when
// pricing never succeeded.
func (o *Order) PriceHTCents() *int64 {
	return o.priceHTCents
}

// CancelReason returns the recorded cancellation reason, empty unless the
// order was cancelled.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DispatchedAt returns when the order was last dispatched, nil if never.
func (o *Order) DispatchedAt() *time.Time {
	return o.dispatchedAt
}

// PickedUpAt returns when the parcel was collected, nil if not yet.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the parcel was delivered, nil if not yet.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns when the order was cancelled, nil unless cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// NeedsGeocoding reports whether either address still lacks coordinates.
func (o *Order) NeedsGeocoding() bool {
	return o.pickupAddress.NeedsGeocoding() || o.deliveryAddress.NeedsGeocoding()
}

// FreezePrice records the chosen formula and its price. It may be called at
// most once: price and formula are immutable after commit even if tariffs
// later change.
func (o *Order) FreezePrice(formula Formula, priceHTCents int64) error {
	if o.priceHTCents != nil || o.formula != nil {
		return ErrPriceAlreadyFrozen
	}
	if err := formula.Validate(); err != nil {
		return err
	}
	if priceHTCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceHTCents", fmt.Errorf("%d is negative", priceHTCents))
	}

	o.formula = &formula
	o.priceHTCents = &priceHTCents
	return nil
}

// ResolveAddresses replaces both addresses with geocoded versions. Used by the
// background backfill once coordinates become available. Terminal orders are
// left untouched.
func (o *Order) ResolveAddresses(pickup Address, delivery Address) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s order addresses are frozen", o.status))
	}
	if err := errors.Join(pickup.Validate(), delivery.Validate()); err != nil {
		return err
	}

	o.pickupAddress = pickup
	o.deliveryAddress = delivery
	return nil
}

// Accept transitions the order from Pending to Assigned without choosing a
// driver. Acceptance and driver choice are decoupled.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Dispatch assigns the order to a driver, transitioning to Assigned from
// Pending or Assigned.
//
// If a different driver already holds the order this is a reassignment:
// without opts.ConfirmReassign it is rejected with a ReassignmentError
// carrying the previous driver's ID, and nothing is mutated. With
// confirmation the driver is swapped and the previous driver's ID is
// returned so the caller can emit the reassignment warning exactly once.
//
// Whether the driver is currently online is a guard of the command layer,
// not of the aggregate: online-ness is a snapshot that may go stale between
// read and commit.
func (o *Order) Dispatch(driverID kernel.UUID, opts DispatchOptions, now time.Time) (*kernel.UUID, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := o.status.Dispatch()
	if err != nil {
		return nil, err
	}

	var previous *kernel.UUID
	if o.driverID != nil && !o.driverID.IsEqual(driverID) {
		if !opts.ConfirmReassign {
			return nil, &ReassignmentError{PreviousDriverID: *o.driverID}
		}
		prev := *o.driverID
		previous = &prev
	}

	o.status = newStatus
	o.driverID = &driverID
	o.dispatchedAt = &now
	return previous, nil
}

// PickUp marks the parcel as collected. Requires an assigned driver.
func (o *Order) PickUp(now time.Time) error {
	if o.driverID == nil {
		return errs.NewValueIsRequiredError("driverId")
	}

	newStatus, err := o.status.PickUp()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.pickedUpAt = &now
	return nil
}

// Deliver marks the parcel as delivered. Terminal.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// Cancel cancels the order, recording the reason. Allowed from Pending and
// Assigned only: a collected parcel cannot be cancelled. An assigned driver,
// if any, loses the mission.
func (o *Order) Cancel(reason string, now time.Time) error {
	if strings.TrimSpace(reason) == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = nil
	o.cancelReason = reason
	o.cancelledAt = &now
	return nil
}

// IsLate reports whether the parcel is picked up but past its delivery
// deadline. Lateness is a derived view, never a status mutation.
func (o *Order) IsLate(now time.Time) bool {
	deadline := o.schedule.Deadline()
	return o.status == StatusPickedUp && deadline != nil && now.After(*deadline)
}
