package Advection1D

import (
	"github.com/notargets/advect1d/utils"
)

// LaxWendroffStencil is the second order central difference with the
// u^2*dt^2/2 diffusion correction.
type LaxWendroffStencil struct{}

func (lw *LaxWendroffStencil) Name() string               { return LaxWendroff.Print() }
func (lw *LaxWendroffStencil) MinSpacePoints() int        { return 1 }
func (lw *LaxWendroffStencil) Prepare(p Parameters) error { return nil }

func (lw *LaxWendroffStencil) Advance(p Parameters, left, right float64, Q []float64) (Qn []float64, err error) {
	var (
		N     = p.SpacePoints
		u, dt = p.WaveSpeed, p.DeltaT
		dx    = p.DeltaX
		diff  = 0.5 * utils.POW(u, 2) * utils.POW(dt, 2) / utils.POW(dx, 2)
	)
	Qn = make([]float64, N+1)
	Qn[0] = left
	for i := 1; i < N; i++ {
		Qn[i] = Q[i] - u*dt*((Q[i+1]-Q[i-1])/(2*dx)) +
			diff*(Q[i+1]-2*Q[i]+Q[i-1])
	}
	Qn[N] = right
	return
}
