package Advection1D

// RichtmyerStencil is the two step Lax-Wendroff variant. The predicted
// values at i+1 and i-1 reach two nodes out, so two nodes are pinned at each end.
type RichtmyerStencil struct{}

func (r *RichtmyerStencil) Name() string               { return Richtmyer.Print() }
func (r *RichtmyerStencil) MinSpacePoints() int        { return 3 }
func (r *RichtmyerStencil) Prepare(p Parameters) error { return nil }

func (r *RichtmyerStencil) Advance(p Parameters, left, right float64, Q []float64) (Qn []float64, err error) {
	var (
		N          = p.SpacePoints
		u, dt, dx  = p.WaveSpeed, p.DeltaT, p.DeltaX
		next, prev float64
	)
	Qn = make([]float64, N+1)
	Qn[0], Qn[1] = left, left
	for i := 2; i < N-1; i++ {
		// Predictor, half step values
		next = 0.5*(Q[i+2]+Q[i]) - u*dt/(4*dx)*(Q[i+2]-Q[i])
		prev = 0.5*(Q[i]+Q[i-2]) - u*dt/(4*dx)*(Q[i]-Q[i-2])
		// Corrector
		Qn[i] = Q[i] - u*dt/(2*dx)*(next-prev)
	}
	Qn[N-1], Qn[N] = right, right
	return
}
