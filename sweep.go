package labormarket

// Point is one sample of the market's path under the wage floor.
type Point struct {
	Time         float64 // t ∈ [0, 1]
	Employment   float64 // L(t)
	Unemployment float64 // U(t)
}

// Sweep samples employment and unemployment at n evenly spaced time indices
// across [0, 1], endpoints included. This is the pure sampling layer the
// dynamics chart and comparative-statics tables consume; it touches nothing
// but the evaluator.
//
// n below 2 is raised to 2 so both endpoints always appear.
func (m *Model) Sweep(n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	for i := range pts {
		t := float64(i) / float64(n-1)
		pts[i] = Point{
			Time:         t,
			Employment:   m.EmploymentAtFloor(At(t)),
			Unemployment: m.Unemployment(At(t)),
		}
	}
	return pts
}
