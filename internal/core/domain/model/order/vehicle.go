package order

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// VehicleType is the kind of vehicle requested for an order. It selects the
// tariff columns used for pricing.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleMoto is a two-wheeler.
	VehicleMoto

	// VehicleVL is a light vehicle (voiture légère). Light vehicles have no
	// Urgence tariff column: that combination is an unserved route, not an
	// error.
	VehicleVL
)

func getVehicleCodes() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleMoto: "MOTO",
		VehicleVL:   "VL",
	}
}

// VehicleTypeFromCode parses the persisted code ("MOTO", "VL").
func VehicleTypeFromCode(code string) (VehicleType, error) {
	for v, c := range getVehicleCodes() {
		if c == code {
			return v, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType", fmt.Errorf("%q is not a valid vehicle type code", code))
}

// Validate checks that the VehicleType is one of the defined kinds.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleCodes()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

// String returns the stable code used in persistence and on the wire.
func (v VehicleType) String() string {
	if code, ok := getVehicleCodes()[v]; ok {
		return code
	}
	return "UNKNOWN"
}
