package labormarket

import (
	"fmt"
	"strings"
)

// Summary returns a deterministic, formatted report of the model state at
// the given time: echoed parameters, the initial equilibrium, the time-t
// quantities, and qualitative comparative-statics phrases selected by the
// sign of the derivative and the magnitude of unemployment. Pure; identical
// inputs always produce the identical string.
func (m *Model) Summary(at TimeIndex) string {
	t := at.or(m.params.Time)

	lStar := m.EquilibriumLabor()
	wStar := m.EquilibriumWage()
	lT := m.EmploymentAtFloor(At(t))
	lS := m.LaborSuppliedAtFloor()
	uT := m.Unemployment(At(t))
	dLdt := m.EmploymentDerivative()

	rule := strings.Repeat("=", 50)

	var b strings.Builder
	fmt.Fprintf(&b, "Labor Market Model Summary\n%s\n", rule)

	fmt.Fprintf(&b, "Parameters:\n")
	fmt.Fprintf(&b, "  Supply intercept (aS): %.4f\n", m.params.SupplyIntercept)
	fmt.Fprintf(&b, "  Supply slope (bS): %.4f\n", m.params.SupplySlope)
	fmt.Fprintf(&b, "  Demand intercept at t=0 (aD0): %.4f\n", m.params.DemandIntercept)
	fmt.Fprintf(&b, "  Demand slope (bD): %.4f\n", m.params.DemandSlope)
	fmt.Fprintf(&b, "  Demand shift magnitude (k): %.4f\n", m.params.ShiftMagnitude)
	fmt.Fprintf(&b, "  Wage floor (wBar): %.4f\n", m.params.WageFloor)
	fmt.Fprintf(&b, "  Time index (t): %.4f\n\n", t)

	fmt.Fprintf(&b, "Initial Equilibrium (Pre-Wage Floor):\n")
	fmt.Fprintf(&b, "  Equilibrium labor (L*): %.4f\n", lStar)
	fmt.Fprintf(&b, "  Equilibrium wage (w*): %.4f\n\n", wStar)

	fmt.Fprintf(&b, "At Time t = %.4f:\n", t)
	fmt.Fprintf(&b, "  Demand intercept (aD(t)): %.4f\n", m.DemandIntercept(At(t)))
	fmt.Fprintf(&b, "  Employment (L(t)): %.4f\n", lT)
	fmt.Fprintf(&b, "  Labor supplied (LS): %.4f\n", lS)
	fmt.Fprintf(&b, "  Unemployment (U(t)): %.4f\n", uT)
	fmt.Fprintf(&b, "  Employment derivative (dL/dt): %.4f\n\n", dLdt)

	fmt.Fprintf(&b, "Comparative Statics:\n")
	fmt.Fprintf(&b, "  Employment change rate: %.4f (negative for k>0)\n", dLdt)
	fmt.Fprintf(&b, "  %s\n", employmentPhrase(dLdt))
	fmt.Fprintf(&b, "  %s\n", unemploymentPhrase(uT, dLdt))
	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

func employmentPhrase(dLdt float64) string {
	switch {
	case dLdt < 0:
		return "Employment declining"
	case dLdt == 0:
		return "Employment constant"
	default:
		return "Employment increasing"
	}
}

func unemploymentPhrase(u, dLdt float64) string {
	switch {
	case u > 0 && dLdt < 0:
		return "Unemployment increasing"
	case u == 0:
		return "No unemployment"
	default:
		return "Unemployment present"
	}
}
