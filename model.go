package labormarket

import (
	"fmt"
	"math"
)

// TimeIndex selects the time at which a time-dependent quantity is
// evaluated. The zero value evaluates at the time index stored in the
// model's parameters; At(x) evaluates at an explicit x instead, without
// mutating the model.
//
// Explicit overrides are not range-checked. The curves are linear, so a t
// outside [0, 1] extrapolates rather than fails; callers needing strict
// bounds validate before calling.
type TimeIndex struct {
	t        float64
	explicit bool
}

// At returns a TimeIndex evaluating at the explicit time t.
func At(t float64) TimeIndex { return TimeIndex{t: t, explicit: true} }

// or resolves the index against the stored time.
func (ti TimeIndex) or(stored float64) float64 {
	if ti.explicit {
		return ti.t
	}
	return stored
}

// Model is a validated labor market. All query methods are pure functions of
// the parameters fixed at construction; the Model holds no other state and
// is safe for concurrent use.
type Model struct {
	params Params
}

// New constructs a Model from validated parameters.
//
// Validation is two-phase. Phase one checks the simple numeric ranges
// (Params.Validate, ErrInvalidParameter). Phase two computes the initial
// equilibrium wage w* and requires wBar > w* strictly (ErrNonBindingFloor):
// the model only represents the binding-floor regime.
func New(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	m := &Model{params: p}
	if wStar := m.EquilibriumWage(); p.WageFloor <= wStar {
		return nil, fmt.Errorf("%w: wage floor wBar = %.4f must exceed the equilibrium wage w* = %.4f",
			ErrNonBindingFloor, p.WageFloor, wStar)
	}
	return m, nil
}

// Params returns a copy of the model's parameters.
func (m *Model) Params() Params { return m.params }

// LaborSupply returns the wage that elicits L units of labor:
// wS(L) = aS + bS·L.
func (m *Model) LaborSupply(L float64) float64 {
	return m.params.SupplyIntercept + m.params.SupplySlope*L
}

// DemandIntercept returns the demand intercept at the given time:
// aD(t) = aD0 - k·t.
func (m *Model) DemandIntercept(at TimeIndex) float64 {
	return m.params.DemandIntercept - m.params.ShiftMagnitude*at.or(m.params.Time)
}

// LaborDemand returns the wage at which L units of labor are demanded at the
// given time: wD(L, t) = aD(t) - bD·L.
func (m *Model) LaborDemand(L float64, at TimeIndex) float64 {
	return m.DemandIntercept(at) - m.params.DemandSlope*L
}

// EquilibriumLabor returns the initial (t = 0) market-clearing quantity:
// L* = (aD0 - aS) / (bS + bD).
func (m *Model) EquilibriumLabor() float64 {
	return (m.params.DemandIntercept - m.params.SupplyIntercept) /
		(m.params.SupplySlope + m.params.DemandSlope)
}

// EquilibriumWage returns the initial (t = 0) market-clearing wage:
// w* = aS + bS·L*.
func (m *Model) EquilibriumWage() float64 {
	return m.params.SupplyIntercept + m.params.SupplySlope*m.EquilibriumLabor()
}

// EmploymentAtFloor returns actual hires under the wage floor at the given
// time: L(t) = max{0, (aD(t) - wBar) / bD}. The clamp reflects that the
// demand curve cannot employ a negative quantity.
func (m *Model) EmploymentAtFloor(at TimeIndex) float64 {
	return math.Max(0, (m.DemandIntercept(at)-m.params.WageFloor)/m.params.DemandSlope)
}

// LaborSuppliedAtFloor returns the quantity willing to work at the floor
// wage: LS = (wBar - aS) / bS. Time-invariant, since supply does not shift.
func (m *Model) LaborSuppliedAtFloor() float64 {
	return (m.params.WageFloor - m.params.SupplyIntercept) / m.params.SupplySlope
}

// Unemployment returns excess supply at the floor wage at the given time:
// U(t) = max{0, LS - L(t)}.
func (m *Model) Unemployment(at TimeIndex) float64 {
	return math.Max(0, m.LaborSuppliedAtFloor()-m.EmploymentAtFloor(at))
}

// EmploymentDerivative returns the rate of employment change per unit time:
// dL/dt = -k / bD. Constant in t because the demand shift is linear.
func (m *Model) EmploymentDerivative() float64 {
	return -m.params.ShiftMagnitude / m.params.DemandSlope
}
