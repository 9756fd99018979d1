package services

// PayoutPolicy computes the driver's share in euro cents from an order's
// total price in euro cents. The policy is pluggable so commercial terms can
// change without touching call sites.
type PayoutPolicy func(totalCents int64) int64

const (
	defaultPayoutThresholdCents = 1000 // 10 € inclusive
	defaultLowShare             = 0.5
	defaultHighShare            = 0.4
)

// DefaultPayoutPolicy is the standard driver share: half of the total up to
// and including ten euros, forty percent above.
func DefaultPayoutPolicy(totalCents int64) int64 {
	if totalCents <= defaultPayoutThresholdCents {
		return int64(float64(totalCents) * defaultLowShare)
	}
	return int64(float64(totalCents) * defaultHighShare)
}

var _ PayoutPolicy = DefaultPayoutPolicy
