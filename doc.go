// Package labormarket models a perfectly competitive labor market with a
// binding wage floor and long-run demand adjustment.
//
// # Overview
//
// The market is linear and closed-form. Labor supply and demand are straight
// lines, a minimum wage wBar is imposed above the market-clearing wage, and
// over a normalized time horizon t ∈ [0, 1] firms adjust through capital
// substitution, automation, or exit - modeled as an inward shift of the
// demand curve:
//
//	wS(L)    = aS + bS·L            (supply)
//	wD(L, t) = aD(t) - bD·L         (demand)
//	aD(t)    = aD0 - k·t            (inward shift)
//
// Every quantity of interest follows algebraically:
//
//	L*     = (aD0 - aS) / (bS + bD)          (equilibrium labor, t = 0)
//	w*     = aS + bS·L*                      (equilibrium wage, t = 0)
//	L(t)   = max{0, (aD(t) - wBar) / bD}     (employment under the floor)
//	LS     = (wBar - aS) / bS                (labor supplied at the floor)
//	U(t)   = max{0, LS - L(t)}               (unemployment)
//	dL/dt  = -k / bD                         (employment decline rate)
//
// The model only represents the binding-floor regime: construction fails
// unless wBar > w*. A non-binding floor is a different model, not a
// degenerate case of this one.
//
// # Quick Start
//
//	m, err := labormarket.New(labormarket.Params{
//	    SupplyIntercept: 5,
//	    SupplySlope:     0.5,
//	    DemandIntercept: 20,
//	    DemandSlope:     1,
//	    ShiftMagnitude:  3,
//	    WageFloor:       12,
//	    Time:            0,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Equilibrium: L* = %.2f, w* = %.2f\n",
//	    m.EquilibriumLabor(), m.EquilibriumWage())
//	fmt.Printf("Short run:   L(0) = %.2f, U(0) = %.2f\n",
//	    m.EmploymentAtFloor(labormarket.At(0)), m.Unemployment(labormarket.At(0)))
//	fmt.Printf("Long run:    L(1) = %.2f, U(1) = %.2f\n",
//	    m.EmploymentAtFloor(labormarket.At(1)), m.Unemployment(labormarket.At(1)))
//
// # Time Indices
//
// Time-dependent queries take a TimeIndex. The zero value evaluates at the t
// stored in Params; At(x) evaluates a counterfactual at an explicit x without
// touching the model:
//
//	m.Unemployment(labormarket.TimeIndex{}) // at the stored t
//	m.Unemployment(labormarket.At(0.75))    // three quarters into the horizon
//
// Explicit overrides are deliberately not range-checked: the curves are
// linear, so t outside [0, 1] extrapolates rather than fails.
//
// # Errors
//
// Construction fails two ways, distinguished with errors.Is:
//
//   - ErrInvalidParameter: a slope, shift magnitude, or time index violates
//     its numeric constraint (bS > 0, bD > 0, k ≥ 0, t ∈ [0, 1]).
//   - ErrNonBindingFloor: wBar does not exceed the computed w*.
//
// All downstream formulas are total over valid parameters; no other runtime
// errors exist outside chart rendering I/O.
//
// # Reports and Charts
//
// Summary produces a deterministic textual report of parameters, equilibrium,
// the time-t state, and comparative statics. PlotMarket renders the annotated
// supply/demand diagram and PlotDynamics the employment/unemployment paths
// over the horizon; both return explicit *plot.Plot handles (no process-wide
// figure state) and write a PNG when a save path is configured.
//
// # Testing
//
// The package exports assertion helpers for the model's algebraic
// invariants:
//
//	func TestMyScenario(t *testing.T) {
//	    m, _ := labormarket.New(params)
//	    labormarket.AssertEquilibriumConsistency(t, m)
//	    labormarket.AssertNonNegative(t, m, []float64{0, 0.5, 1, 1.5})
//	    labormarket.AssertLinearDecline(t, m)
//	}
//
// # See Also
//
//   - examples/laborfloor - end-to-end driver: summary, four charts, and a
//     comparative-statics table
package labormarket
