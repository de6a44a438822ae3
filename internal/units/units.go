// Package units converts cable weight-per-length figures between the unit
// systems used on cable engineering datasheets. The solver core works in
// N/m only; conversion happens at the input layer.
package units

import "fmt"

const (
	// StandardGravity in m/s² (ISO 80000-3).
	StandardGravity = 9.80665

	// NewtonsPerLbf is the exact definition of the pound-force.
	NewtonsPerLbf = 4.4482216152605

	// MetresPerFoot is the exact international foot.
	MetresPerFoot = 0.3048
)

// WeightUnit is a weight-per-length unit.
type WeightUnit string

const (
	NewtonPerMetre WeightUnit = "n/m"
	KgfPerMetre    WeightUnit = "kgf/m"
	LbfPerFoot     WeightUnit = "lbf/ft"
)

// ParseWeightUnit maps a unit label to a WeightUnit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case NewtonPerMetre, KgfPerMetre, LbfPerFoot:
		return WeightUnit(s), nil
	}
	return "", fmt.Errorf("unknown weight unit %q (want n/m, kgf/m or lbf/ft)", s)
}

// ToNewtonsPerMetre converts a weight per length to N/m.
func ToNewtonsPerMetre(value float64, from WeightUnit) (float64, error) {
	switch from {
	case NewtonPerMetre:
		return value, nil
	case KgfPerMetre:
		return value * StandardGravity, nil
	case LbfPerFoot:
		return value * NewtonsPerLbf / MetresPerFoot, nil
	}
	return 0, fmt.Errorf("unknown weight unit %q", from)
}

// FromNewtonsPerMetre converts a weight per length in N/m to the target unit.
func FromNewtonsPerMetre(value float64, to WeightUnit) (float64, error) {
	switch to {
	case NewtonPerMetre:
		return value, nil
	case KgfPerMetre:
		return value / StandardGravity, nil
	case LbfPerFoot:
		return value * MetresPerFoot / NewtonsPerLbf, nil
	}
	return 0, fmt.Errorf("unknown weight unit %q", to)
}

// Convert converts a weight per length between any two supported units.
func Convert(value float64, from, to WeightUnit) (float64, error) {
	npm, err := ToNewtonsPerMetre(value, from)
	if err != nil {
		return 0, err
	}
	return FromNewtonsPerMetre(npm, to)
}
