package labormarket

import (
	"math"
	"testing"
)

// Tolerance for the algebraic identity checks. The formulas are exact; the
// slack only absorbs float64 rounding.
const assertTolerance = 1e-9

// AssertEquilibriumConsistency verifies supply and demand intersect at the
// initial equilibrium:
//
//	w* == wS(L*) == wD(L*, 0)
func AssertEquilibriumConsistency(t *testing.T, m *Model) {
	t.Helper()

	lStar := m.EquilibriumLabor()
	wStar := m.EquilibriumWage()

	if d := math.Abs(wStar - m.LaborSupply(lStar)); d > assertTolerance {
		t.Errorf("equilibrium off the supply curve: w* = %.6f, wS(L*) = %.6f (Δ = %g)",
			wStar, m.LaborSupply(lStar), d)
	}
	if d := math.Abs(wStar - m.LaborDemand(lStar, At(0))); d > assertTolerance {
		t.Errorf("equilibrium off the demand curve: w* = %.6f, wD(L*, 0) = %.6f (Δ = %g)",
			wStar, m.LaborDemand(lStar, At(0)), d)
	}

	t.Logf("✓ Equilibrium consistent: L* = %.4f, w* = %.4f", lStar, wStar)
}

// AssertNonNegative verifies the clamped quantities never go negative at any
// of the given time indices:
//
//	L(t) ≥ 0 and U(t) ≥ 0
//
// Times outside [0, 1] are allowed; the clamps must hold under extrapolation
// too.
func AssertNonNegative(t *testing.T, m *Model, times []float64) {
	t.Helper()

	for _, tt := range times {
		if l := m.EmploymentAtFloor(At(tt)); l < 0 {
			t.Errorf("employment negative at t = %g: L(t) = %g", tt, l)
		}
		if u := m.Unemployment(At(tt)); u < 0 {
			t.Errorf("unemployment negative at t = %g: U(t) = %g", tt, u)
		}
	}

	t.Logf("✓ Non-negativity holds at %d time indices", len(times))
}

// AssertLinearDecline verifies the constant derivative matches the secant
// between the horizon endpoints:
//
//	dL/dt == L(1) - L(0)
//
// The check is skipped when either endpoint is clamped at zero, where the
// path is piecewise rather than linear.
func AssertLinearDecline(t *testing.T, m *Model) {
	t.Helper()

	l0 := m.EmploymentAtFloor(At(0))
	l1 := m.EmploymentAtFloor(At(1))
	if l0 == 0 || l1 == 0 {
		t.Logf("employment clamped at an endpoint (L(0) = %.4f, L(1) = %.4f); secant check skipped", l0, l1)
		return
	}

	want := m.EmploymentDerivative()
	got := l1 - l0
	if math.Abs(got-want) > assertTolerance {
		t.Errorf("employment path not linear: secant L(1)-L(0) = %.6f, dL/dt = %.6f", got, want)
	}

	t.Logf("✓ Linear decline: dL/dt = %.4f", want)
}
