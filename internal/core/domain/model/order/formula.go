package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Formula is the speed-of-service tier of an order. The tier decides the
// tariff column used for pricing and the minimum lead time the schedule must
// allow.
type Formula int

const (
	// FormulaUnknown represents an invalid or undefined formula.
	FormulaUnknown Formula = iota

	// FormulaNormal is the standard same-day tier.
	FormulaNormal

	// FormulaExpress is the faster tier, pickup within three hours.
	FormulaExpress

	// FormulaUrgence is the fastest tier, pickup within ninety minutes.
	// Not served for light vehicles.
	FormulaUrgence
)

func getFormulaCodes() map[Formula]string {
	return map[Formula]string{
		FormulaNormal:  "NORMAL",
		FormulaExpress: "EXPRESS",
		FormulaUrgence: "URGENCE",
	}
}

// AllFormulas returns every valid formula in tariff-column order.
func AllFormulas() []Formula {
	return []Formula{FormulaNormal, FormulaExpress, FormulaUrgence}
}

// FormulaFromCode parses the persisted code ("NORMAL", "EXPRESS", "URGENCE").
func FormulaFromCode(code string) (Formula, error) {
	for f, c := range getFormulaCodes() {
		if c == code {
			return f, nil
		}
	}
	return FormulaUnknown, errs.NewValueIsInvalidErrorWithCause(
		"formula", fmt.Errorf("%q is not a valid formula code", code))
}

// Validate checks that the Formula is one of the defined tiers.
func (f Formula) Validate() error {
	if _, ok := getFormulaCodes()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"formula", fmt.Errorf("%d is not a valid formula", f))
	}
	return nil
}

// String returns the stable code used in persistence and on the wire.
func (f Formula) String() string {
	if code, ok := getFormulaCodes()[f]; ok {
		return code
	}
	return "UNKNOWN"
}

// Label returns the customer-facing display name of the tier.
func (f Formula) Label() string {
	switch f {
	case FormulaNormal:
		return "Standard"
	case FormulaExpress:
		return "Express"
	case FormulaUrgence:
		return "Flash"
	default:
		return "Unknown"
	}
}
