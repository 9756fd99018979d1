package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders follow the dispatch workflow.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> Delivered
//	   │            │ │
//	   │            │ └──────┐ (re-dispatch allowed)
//	   │            │ <──────┘
//	   └──────┬─────┘
//	          v
//	      Cancelled
//
// Delivered and Cancelled are terminal: no transition is ever applied to an
// order in either state. A physically collected parcel cannot be cancelled,
// only completed, so Cancelled is unreachable from PickedUp.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is created.
	StatusPending

	// StatusAssigned indicates the order has been accepted and possibly
	// dispatched to a driver. Re-dispatch is allowed in this status.
	StatusAssigned

	// StatusPickedUp indicates the driver has collected the parcel.
	StatusPickedUp

	// StatusDelivered indicates successful delivery. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before pickup.
	// Terminal.
	StatusCancelled
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusCodes() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAssigned:  "assigned",
		StatusPickedUp:  "picked_up",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromCode parses the persisted status code.
func StatusFromCode(code string) (Status, error) {
	for s, c := range getValidStatusCodes() {
		if c == code {
			return s, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid status code", code))
}

// Validate checks if the Status value is valid.
// Valid statuses are pending, assigned, picked_up, delivered, cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted status code, or "unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transition.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateDispatch checks if the status allows dispatching to a driver without
// performing the transition. Dispatch is valid from Pending (accept and assign
// collapse into one action) and from Assigned (re-dispatch).
func (s Status) ValidateDispatch() error {
	if s != StatusPending && s != StatusAssigned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s.String()),
		)
	}
	return nil
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Rules:
//   - a driver may be recorded only once the order is Assigned or later
//   - a PickedUp order must have a driver
//   - a Pending order must not have a driver
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if hasDriver && (s == StatusPending || s == StatusCancelled) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a driver", s.String()),
		)
	}

	if !hasDriver && (s == StatusPickedUp || s == StatusDelivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no driver", s.String()),
		)
	}

	return nil
}

// Accept transitions the status from Pending to Assigned. Acceptance is
// decoupled from driver choice: no driver is required at this step.
//
// Returns (StatusAssigned, nil) on success, or an error if the order is not
// Pending.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return StatusAssigned, nil
}

// Dispatch transitions the status to Assigned.
//
// Valid transitions:
//   - Pending -> Assigned (accept and assign in one action)
//   - Assigned -> Assigned (re-dispatch, possibly to another driver)
//
// Returns (StatusAssigned, nil) on success, or an error if dispatch is not
// allowed from the current status.
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateDispatch(); err != nil {
		return 0, err
	}
	return StatusAssigned, nil
}

// PickUp transitions the status from Assigned to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}
	return StatusPickedUp, nil
}

// Deliver transitions the status from PickedUp to Delivered.
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != StatusPickedUp {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Assigned -> Cancelled
//
// Cancellation is never allowed from PickedUp or Delivered.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusAssigned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return StatusCancelled, nil
}
