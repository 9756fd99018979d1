package services

import (
	"time"

	"courier/internal/core/domain/model/order"
)

const (
	// minNormalLeadTime is the minimum lead time the Normal formula needs.
	// Schedules tighter than this can only use the faster tiers.
	minNormalLeadTime = 60 * time.Minute

	// urgenceWindow and expressWindow bound the pickup-to-deadline spans
	// the recommendation maps to each tier.
	urgenceWindow = 90 * time.Minute
	expressWindow = 180 * time.Minute
)

// EligibleFormulas returns the formulas an order with the given schedule may
// legally use at the moment now. Pure: no I/O, no clock access.
//
// Rules:
//   - immediate and in-one-hour pickups leave too little lead time for the
//     Normal formula; only the faster tiers remain
//   - a deferred pickup excludes Normal only when its lead time is strictly
//     under sixty minutes; exactly sixty stays eligible
//   - a deferred schedule whose date or time is not yet known is treated
//     permissively, all formulas stay selectable until the input completes
func EligibleFormulas(schedule order.Schedule, now time.Time) []order.Formula {
	if schedule.Validate() != nil {
		return nil
	}

	normalEligible := true
	switch schedule.Type() {
	case order.ScheduleImmediate, order.ScheduleInOneHour:
		normalEligible = false
	case order.ScheduleDeferred:
		if pickupAt := schedule.PickupAt(); pickupAt != nil {
			normalEligible = pickupAt.Sub(now) >= minNormalLeadTime
		}
	}

	eligible := make([]order.Formula, 0, 3)
	for _, f := range order.AllFormulas() {
		if f == order.FormulaNormal && !normalEligible {
			continue
		}
		eligible = append(eligible, f)
	}
	return eligible
}

// RecommendFormula suggests the tier matching the span between pickup and the
// delivery deadline: up to ninety minutes calls for Urgence, up to three
// hours for Express, anything longer (or a deadline already passed) falls
// back to Normal.
func RecommendFormula(pickupTime time.Time, deadline time.Time) order.Formula {
	span := deadline.Sub(pickupTime)
	switch {
	case span <= 0:
		return order.FormulaNormal
	case span <= urgenceWindow:
		return order.FormulaUrgence
	case span <= expressWindow:
		return order.FormulaExpress
	default:
		return order.FormulaNormal
	}
}

// ClearIneligibleSelection returns nil when the previously selected formula
// is no longer in the eligible set, forcing an explicit re-selection instead
// of silently keeping a formula the schedule forbids. A still-eligible
// selection is returned unchanged.
func ClearIneligibleSelection(selected *order.Formula, eligible []order.Formula) *order.Formula {
	if selected == nil {
		return nil
	}
	for _, f := range eligible {
		if f == *selected {
			return selected
		}
	}
	return nil
}
