package Advection1D

// ExplicitUpwindStencil is first order and stable only for CFL <= 1.
type ExplicitUpwindStencil struct{}

func (e *ExplicitUpwindStencil) Name() string               { return ExplicitUpwind.Print() }
func (e *ExplicitUpwindStencil) MinSpacePoints() int        { return 1 }
func (e *ExplicitUpwindStencil) Prepare(p Parameters) error { return nil }

func (e *ExplicitUpwindStencil) Advance(p Parameters, left, right float64, Q []float64) (Qn []float64, err error) {
	var (
		N = p.SpacePoints
		c = p.WaveSpeed * (p.DeltaT / p.DeltaX)
	)
	Qn = make([]float64, N+1)
	Qn[0] = left
	for i := 1; i < N; i++ {
		Qn[i] = Q[i] - c*(Q[i]-Q[i-1])
	}
	Qn[N] = right
	return
}
