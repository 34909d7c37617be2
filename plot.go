package labormarket

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Chart palette. Matches the conventional coloring of supply (blue), demand
// (red), and the policy floor (green).
var (
	supplyColor = color.RGBA{R: 0x1f, G: 0x4e, B: 0xd8, A: 0xff}
	demandColor = color.RGBA{R: 0xd6, G: 0x2b, B: 0x2b, A: 0xff}
	floorColor  = color.RGBA{R: 0x1a, G: 0x8a, B: 0x3c, A: 0xff}
	pointBlack  = color.RGBA{A: 0xff}
)

// MarketPlotConfig controls the single-time supply/demand diagram.
// The zero value of each field selects its default.
type MarketPlotConfig struct {
	Time     TimeIndex // evaluation time (zero value: the stored t)
	LaborMax float64   // right edge of the labor axis (0 = auto from L*, LS)
	Samples  int       // points per curve (0 = 1000)
	SavePath string    // write a PNG here when non-empty
	Width    vg.Length // canvas width (0 = 10in)
	Height   vg.Length // canvas height (0 = 8in)
}

// DefaultMarketPlotConfig returns the defaults made explicit.
func DefaultMarketPlotConfig() MarketPlotConfig {
	return MarketPlotConfig{
		Samples: 1000,
		Width:   10 * vg.Inch,
		Height:  8 * vg.Inch,
	}
}

// DynamicsPlotConfig controls the dynamics-over-time chart.
// The zero value of each field selects its default.
type DynamicsPlotConfig struct {
	Samples  int       // time sweep resolution (0 = 50)
	SavePath string    // write a PNG here when non-empty
	Width    vg.Length // canvas width (0 = 14in)
	Height   vg.Length // canvas height (0 = 6in)
}

// DefaultDynamicsPlotConfig returns the defaults made explicit.
func DefaultDynamicsPlotConfig() DynamicsPlotConfig {
	return DynamicsPlotConfig{
		Samples: 50,
		Width:   14 * vg.Inch,
		Height:  6 * vg.Inch,
	}
}

// PlotMarket renders the supply/demand diagram at a single time: both
// curves sampled over [0, LaborMax], the dashed wage-floor line, and marked
// equilibrium, employment, and floor-supply points. The employment marker is
// omitted when demand clamps at zero hires.
//
// The returned *plot.Plot is an explicit chart object owned by the caller.
// When SavePath is set, the chart is also written there as a raster image
// within this call (scoped open/write/close).
func (m *Model) PlotMarket(cfg MarketPlotConfig) (*plot.Plot, error) {
	t := cfg.Time.or(m.params.Time)
	if cfg.Samples <= 0 {
		cfg.Samples = 1000
	}
	if cfg.Width <= 0 {
		cfg.Width = 10 * vg.Inch
	}
	if cfg.Height <= 0 {
		cfg.Height = 8 * vg.Inch
	}

	lStar := m.EquilibriumLabor()
	wStar := m.EquilibriumWage()
	lT := m.EmploymentAtFloor(At(t))
	lS := m.LaborSuppliedAtFloor()

	lMax := cfg.LaborMax
	if lMax <= 0 {
		lMax = math.Max(math.Max(lStar*1.5, lS*1.2), 1.0)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Labor Market with Binding Wage Floor (t=%.2f)", t)
	p.X.Label.Text = "Labor (L)"
	p.Y.Label.Text = "Wage (w)"
	p.Add(plotter.NewGrid())

	supply := make(plotter.XYs, cfg.Samples)
	demand := make(plotter.XYs, cfg.Samples)
	for i := range supply {
		l := lMax * float64(i) / float64(cfg.Samples-1)
		supply[i] = plotter.XY{X: l, Y: m.LaborSupply(l)}
		demand[i] = plotter.XY{X: l, Y: m.LaborDemand(l, At(t))}
	}

	supplyLine, err := plotter.NewLine(supply)
	if err != nil {
		return nil, fmt.Errorf("supply curve: %w", err)
	}
	supplyLine.Color = supplyColor
	supplyLine.Width = vg.Points(2)
	p.Add(supplyLine)
	p.Legend.Add("Labor Supply", supplyLine)

	demandLine, err := plotter.NewLine(demand)
	if err != nil {
		return nil, fmt.Errorf("demand curve: %w", err)
	}
	demandLine.Color = demandColor
	demandLine.Width = vg.Points(2)
	p.Add(demandLine)
	p.Legend.Add(fmt.Sprintf("Labor Demand (t=%.2f)", t), demandLine)

	floorLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: m.params.WageFloor},
		{X: lMax, Y: m.params.WageFloor},
	})
	if err != nil {
		return nil, fmt.Errorf("wage floor line: %w", err)
	}
	floorLine.Color = floorColor
	floorLine.Width = vg.Points(2)
	floorLine.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(floorLine)
	p.Legend.Add(fmt.Sprintf("Wage Floor (wBar=%.2f)", m.params.WageFloor), floorLine)

	if err := addMarker(p, lStar, wStar, pointBlack, "(L*, w*)",
		fmt.Sprintf("Initial Equilibrium (L*=%.2f, w*=%.2f)", lStar, wStar)); err != nil {
		return nil, err
	}
	if lT > 0 {
		if err := addMarker(p, lT, m.params.WageFloor, demandColor, "(L(t), wBar)",
			fmt.Sprintf("Employment (L(t)=%.2f)", lT)); err != nil {
			return nil, err
		}
	}
	if err := addMarker(p, lS, m.params.WageFloor, supplyColor, "(LS, wBar)",
		fmt.Sprintf("Labor Supplied (LS=%.2f)", lS)); err != nil {
		return nil, err
	}

	p.X.Min, p.X.Max = 0, lMax
	p.Y.Min, p.Y.Max = 0, math.Max(m.params.WageFloor*1.1, wStar*1.2)
	p.Legend.Top = true
	p.Legend.Left = true

	if cfg.SavePath != "" {
		if err := p.Save(cfg.Width, cfg.Height, cfg.SavePath); err != nil {
			return nil, fmt.Errorf("save market diagram: %w", err)
		}
	}
	return p, nil
}

// PlotDynamics renders employment L(t) and unemployment U(t) across a time
// sweep over [0, 1] as two lines on one chart. Same handle and SavePath
// contract as PlotMarket.
func (m *Model) PlotDynamics(cfg DynamicsPlotConfig) (*plot.Plot, error) {
	if cfg.Samples <= 0 {
		cfg.Samples = 50
	}
	if cfg.Width <= 0 {
		cfg.Width = 14 * vg.Inch
	}
	if cfg.Height <= 0 {
		cfg.Height = 6 * vg.Inch
	}

	pts := m.Sweep(cfg.Samples)
	employment := make(plotter.XYs, len(pts))
	unemployment := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		employment[i] = plotter.XY{X: pt.Time, Y: pt.Employment}
		unemployment[i] = plotter.XY{X: pt.Time, Y: pt.Unemployment}
	}

	p := plot.New()
	p.Title.Text = "Employment and Unemployment Over Time"
	p.X.Label.Text = "Time (t)"
	p.Y.Label.Text = "Labor"
	p.Add(plotter.NewGrid())

	empLine, err := plotter.NewLine(employment)
	if err != nil {
		return nil, fmt.Errorf("employment path: %w", err)
	}
	empLine.Color = supplyColor
	empLine.Width = vg.Points(2)
	p.Add(empLine)
	p.Legend.Add("Employment L(t)", empLine)

	unempLine, err := plotter.NewLine(unemployment)
	if err != nil {
		return nil, fmt.Errorf("unemployment path: %w", err)
	}
	unempLine.Color = demandColor
	unempLine.Width = vg.Points(2)
	p.Add(unempLine)
	p.Legend.Add("Unemployment U(t)", unempLine)

	p.X.Min, p.X.Max = 0, 1
	p.Y.Min = 0
	p.Legend.Top = true

	if cfg.SavePath != "" {
		if err := p.Save(cfg.Width, cfg.Height, cfg.SavePath); err != nil {
			return nil, fmt.Errorf("save dynamics chart: %w", err)
		}
	}
	return p, nil
}

// addMarker places one annotated scalar point on the chart.
func addMarker(p *plot.Plot, x, y float64, c color.Color, tag, legend string) error {
	pts := plotter.XYs{{X: x, Y: y}}

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("marker %s: %w", tag, err)
	}
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  c,
		Radius: vg.Points(5),
		Shape:  draw.CircleGlyph{},
	}
	p.Add(scatter)
	p.Legend.Add(legend, scatter)

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    pts,
		Labels: []string{tag},
	})
	if err != nil {
		return fmt.Errorf("marker label %s: %w", tag, err)
	}
	labels.Offset = vg.Point{X: vg.Points(8), Y: vg.Points(8)}
	p.Add(labels)
	return nil
}
