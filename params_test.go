package labormarket

import (
	"errors"
	"strings"
	"testing"
)

// canonicalParams is the worked example from the package documentation:
// w* = 10, floor at 12, inward shift k = 3.
func canonicalParams() Params {
	return Params{
		SupplyIntercept: 5.0,
		SupplySlope:     0.5,
		DemandIntercept: 20.0,
		DemandSlope:     1.0,
		ShiftMagnitude:  3.0,
		WageFloor:       12.0,
		Time:            0.0,
	}
}

func newCanonicalModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(canonicalParams())
	if err != nil {
		t.Fatalf("canonical parameters rejected: %v", err)
	}
	return m
}

func TestParamsValidate_RangeViolations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"ZeroSupplySlope", func(p *Params) { p.SupplySlope = 0 }, "supply slope"},
		{"NegativeDemandSlope", func(p *Params) { p.DemandSlope = -1 }, "demand slope"},
		{"NegativeShift", func(p *Params) { p.ShiftMagnitude = -1 }, "shift magnitude"},
		{"TimeAboveOne", func(p *Params) { p.Time = 1.5 }, "time index"},
		{"TimeBelowZero", func(p *Params) { p.Time = -0.1 }, "time index"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := canonicalParams()
			tc.mutate(&p)

			err := p.Validate()
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error should name the %s, got: %v", tc.field, err)
			}

			if _, err := New(p); !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("New should reject the same parameters, got %v", err)
			}
		})
	}
}

func TestParamsValidate_FirstViolationWins(t *testing.T) {
	// Everything wrong at once: the supply slope is reported because it is
	// first in the priority order.
	p := Params{
		SupplySlope:    0,
		DemandSlope:    -1,
		ShiftMagnitude: -1,
		Time:           1.5,
	}

	err := p.Validate()
	if !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if !strings.Contains(err.Error(), "supply slope") {
		t.Errorf("priority order broken: expected the supply slope first, got: %v", err)
	}

	t.Logf("✓ First violation wins: %v", err)
}

func TestNew_NonBindingFloor(t *testing.T) {
	// w* = 10 here, so a floor of 8 does not bind.
	p := canonicalParams()
	p.WageFloor = 8.0

	_, err := New(p)
	if !errors.Is(err, ErrNonBindingFloor) {
		t.Fatalf("expected ErrNonBindingFloor, got %v", err)
	}
	if !strings.Contains(err.Error(), "10.0000") {
		t.Errorf("error should carry the computed w*, got: %v", err)
	}

	t.Logf("✓ Non-binding floor rejected: %v", err)
}

func TestNew_FloorEqualToEquilibriumIsNonBinding(t *testing.T) {
	// wBar must exceed w* strictly: at wBar = w* there is no excess supply
	// and the model is undefined.
	p := canonicalParams()
	p.WageFloor = 10.0

	if _, err := New(p); !errors.Is(err, ErrNonBindingFloor) {
		t.Fatalf("floor equal to w* must be rejected, got %v", err)
	}
}

func TestNew_BindingFloorSucceeds(t *testing.T) {
	m, err := New(canonicalParams())
	if err != nil {
		t.Fatalf("binding floor rejected: %v", err)
	}

	if got := m.Params(); got != canonicalParams() {
		t.Errorf("parameters not stored verbatim: %+v", got)
	}

	t.Logf("✓ wBar = 12 binds above w* = %.4f", m.EquilibriumWage())
}
