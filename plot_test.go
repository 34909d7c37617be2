package labormarket

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlotMarket_Handle(t *testing.T) {
	m := newCanonicalModel(t)

	p, err := m.PlotMarket(MarketPlotConfig{Time: At(0.5), Samples: 50})
	if err != nil {
		t.Fatalf("PlotMarket: %v", err)
	}
	if p == nil {
		t.Fatal("PlotMarket returned a nil chart handle")
	}
	if !strings.Contains(p.Title.Text, "t=0.50") {
		t.Errorf("title should carry the evaluated time, got %q", p.Title.Text)
	}
	if p.X.Max <= m.EquilibriumLabor() {
		t.Errorf("auto labor axis too short: X.Max = %g, L* = %g", p.X.Max, m.EquilibriumLabor())
	}
}

func TestPlotMarket_ZeroConfigUsesDefaults(t *testing.T) {
	m := newCanonicalModel(t)

	// The zero config and the explicit defaults must describe the same chart.
	p, err := m.PlotMarket(MarketPlotConfig{})
	if err != nil {
		t.Fatalf("PlotMarket with zero config: %v", err)
	}
	q, err := m.PlotMarket(DefaultMarketPlotConfig())
	if err != nil {
		t.Fatalf("PlotMarket with default config: %v", err)
	}
	if p.Title.Text != q.Title.Text || p.X.Max != q.X.Max || p.Y.Max != q.Y.Max {
		t.Errorf("zero config diverges from defaults: %q vs %q", p.Title.Text, q.Title.Text)
	}
}

func TestPlotMarket_SavesPNG(t *testing.T) {
	m := newCanonicalModel(t)

	path := filepath.Join(t.TempDir(), "market.png")
	cfg := DefaultMarketPlotConfig()
	cfg.Samples = 100
	cfg.SavePath = path

	if _, err := m.PlotMarket(cfg); err != nil {
		t.Fatalf("PlotMarket: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved chart missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved chart is empty")
	}

	t.Logf("✓ Market diagram written: %s (%d bytes)", path, info.Size())
}

func TestPlotDynamics_Handle(t *testing.T) {
	m := newCanonicalModel(t)

	p, err := m.PlotDynamics(DynamicsPlotConfig{Samples: 25})
	if err != nil {
		t.Fatalf("PlotDynamics: %v", err)
	}
	if p == nil {
		t.Fatal("PlotDynamics returned a nil chart handle")
	}
	if p.X.Min != 0 || p.X.Max != 1 {
		t.Errorf("time axis should span [0, 1], got [%g, %g]", p.X.Min, p.X.Max)
	}
}

func TestPlotDynamics_SavesPNG(t *testing.T) {
	m := newCanonicalModel(t)

	path := filepath.Join(t.TempDir(), "dynamics.png")
	if _, err := m.PlotDynamics(DynamicsPlotConfig{Samples: 25, SavePath: path}); err != nil {
		t.Fatalf("PlotDynamics: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("saved chart missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved chart is empty")
	}

	t.Logf("✓ Dynamics chart written: %s (%d bytes)", path, info.Size())
}

func TestPlotMarket_ClampedEmploymentOmitsMarker(t *testing.T) {
	// With k = 10 demand falls below the floor by t = 1; the render must
	// still succeed with the employment marker omitted.
	p := canonicalParams()
	p.ShiftMagnitude = 10
	m, err := New(p)
	if err != nil {
		t.Fatalf("parameters rejected: %v", err)
	}

	if _, err := m.PlotMarket(MarketPlotConfig{Time: At(1), Samples: 50}); err != nil {
		t.Fatalf("PlotMarket with clamped employment: %v", err)
	}
}
