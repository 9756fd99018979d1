package order

import (
	"fmt"
	"time"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// ScheduleType describes when the parcel should be picked up.
type ScheduleType int

const (
	// ScheduleUnknown represents an invalid or undefined schedule type.
	ScheduleUnknown ScheduleType = iota

	// ScheduleImmediate means pickup as soon as possible.
	ScheduleImmediate

	// ScheduleInOneHour means pickup roughly one hour from now.
	ScheduleInOneHour

	// ScheduleDeferred means pickup at an explicit future date and time.
	ScheduleDeferred
)

func getScheduleTypeCodes() map[ScheduleType]string {
	return map[ScheduleType]string{
		ScheduleImmediate: "IMMEDIATE",
		ScheduleInOneHour: "IN_ONE_HOUR",
		ScheduleDeferred:  "DEFERRED",
	}
}

// ScheduleTypeFromCode parses the persisted code.
func ScheduleTypeFromCode(code string) (ScheduleType, error) {
	for s, c := range getScheduleTypeCodes() {
		if c == code {
			return s, nil
		}
	}
	return ScheduleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"scheduleType", fmt.Errorf("%q is not a valid schedule type code", code))
}

// Validate checks that the ScheduleType is one of the defined kinds.
func (s ScheduleType) Validate() error {
	if _, ok := getScheduleTypeCodes()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"scheduleType", fmt.Errorf("%d is not a valid schedule type", s))
	}
	return nil
}

// String returns the stable code used in persistence and on the wire.
func (s ScheduleType) String() string {
	if code, ok := getScheduleTypeCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// ErrScheduleIsNotConstructed is returned when attempting to use an
// improperly initialized Schedule.
var ErrScheduleIsNotConstructed = errs.NewValueIsRequiredError(
	"schedule must be created via the NewSchedule constructor")

// Schedule is an immutable value object pairing a schedule type with an
// optional explicit pickup time and an optional delivery deadline.
//
// A deferred schedule requires the pickup time at commit; while an order is
// still being drafted the time may be absent, so the constructor only rejects
// a deferred schedule without pickup time when strict is requested via
// ValidateForCommit.
type Schedule struct { //nolint:recvcheck //using for validation
	scheduleType ScheduleType
	pickupAt     *time.Time
	deadline     *time.Time
	guard        guard.ConstructorGuard
}

// NewSchedule creates a Schedule. pickupAt is meaningful only for deferred
// schedules; deadline is optional for all types.
func NewSchedule(scheduleType ScheduleType, pickupAt *time.Time, deadline *time.Time) (Schedule, error) {
	if err := scheduleType.Validate(); err != nil {
		return Schedule{}, err
	}

	return Schedule{
		scheduleType: scheduleType,
		pickupAt:     pickupAt,
		deadline:     deadline,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the Schedule was created through its constructor.
func (s Schedule) Validate() error {
	return s.guard.Validate(ErrScheduleIsNotConstructed)
}

// ValidateForCommit applies the strict rules an order creation demands: a
// deferred schedule must carry its pickup time.
func (s Schedule) ValidateForCommit() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.scheduleType == ScheduleDeferred && s.pickupAt == nil {
		return errs.NewValueIsRequiredError("pickupAt")
	}
	return nil
}

// Type returns the schedule type.
func (s Schedule) Type() ScheduleType {
	return s.scheduleType
}

// PickupAt returns the explicit pickup time, or nil when not set.
func (s Schedule) PickupAt() *time.Time {
	return s.pickupAt
}

// Deadline returns the delivery deadline, or nil when not set.
func (s Schedule) Deadline() *time.Time {
	return s.deadline
}

// EffectivePickupTime resolves the moment the parcel is expected to be
// collected: now for immediate, now plus one hour for in-one-hour, the
// explicit time for deferred. A deferred schedule without its time falls back
// to now.
func (s Schedule) EffectivePickupTime(now time.Time) time.Time {
	switch s.scheduleType {
	case ScheduleInOneHour:
		return now.Add(time.Hour)
	case ScheduleDeferred:
		if s.pickupAt != nil {
			return *s.pickupAt
		}
		return now
	default:
		return now
	}
}
