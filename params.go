package labormarket

import (
	"errors"
	"fmt"
)

// The two error kinds cover every construction failure. Both surface
// immediately at New; the model is never instantiated outside the valid,
// binding-floor regime, and all downstream formulas are total.
var (
	// ErrInvalidParameter reports a violated structural numeric constraint
	// on a slope, the shift magnitude, or the time index.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrNonBindingFloor reports a wage floor at or below the computed
	// equilibrium wage w*.
	ErrNonBindingFloor = errors.New("non-binding wage floor")
)

// Params holds the market's coefficients and the time index. Values are
// copied into the Model at construction and never mutated afterwards; a new
// coefficient or time index means constructing a new Model.
type Params struct {
	SupplyIntercept float64 // aS: wage at which the first unit of labor is supplied
	SupplySlope     float64 // bS: wage increase per unit of labor supplied (> 0)
	DemandIntercept float64 // aD0: demand intercept at t = 0
	DemandSlope     float64 // bD: wage decrease per unit of labor demanded (> 0)
	ShiftMagnitude  float64 // k: inward demand shift over the full horizon (≥ 0)
	WageFloor       float64 // wBar: minimum wage, must exceed w* to bind
	Time            float64 // t ∈ [0, 1]: 0 = short run, 1 = long run
}

// Validate checks the structural numeric constraints and fails on the first
// violation, in fixed priority order: supply slope, demand slope, shift
// magnitude, time index. The binding-floor condition needs the equilibrium
// wage and is therefore checked by New, after these pass.
func (p Params) Validate() error {
	if p.SupplySlope <= 0 {
		return fmt.Errorf("%w: supply slope bS = %g (must be > 0)",
			ErrInvalidParameter, p.SupplySlope)
	}
	if p.DemandSlope <= 0 {
		return fmt.Errorf("%w: demand slope bD = %g (must be > 0)",
			ErrInvalidParameter, p.DemandSlope)
	}
	if p.ShiftMagnitude < 0 {
		return fmt.Errorf("%w: shift magnitude k = %g (must be ≥ 0)",
			ErrInvalidParameter, p.ShiftMagnitude)
	}
	if p.Time < 0 || p.Time > 1 {
		return fmt.Errorf("%w: time index t = %g (must be in [0, 1])",
			ErrInvalidParameter, p.Time)
	}
	return nil
}
