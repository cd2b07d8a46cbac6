package Advection1D

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/advect1d/utils"
)

var (
	// ErrUnboundFunction is returned by Evaluate before SetFunction was called.
	ErrUnboundFunction = errors.New("Advection1D: analytical function is not set")

	// ErrInvalidConfiguration is returned when the discretization violates
	// DeltaX > 0, DeltaT > 0, u != 0 or the stencil's minimum node count.
	ErrInvalidConfiguration = errors.New("Advection1D: invalid configuration")

	ErrUnknownScheme = errors.New("Advection1D: unknown scheme")
)

// AnalyticalFunc is the exact solution q(x, t).
type AnalyticalFunc func(x, t float64) float64

// InitialFunc gives the interior values at t = 0.
type InitialFunc func(x float64) float64

// Parameters is the discretization, fixed once a Scheme is constructed.
type Parameters struct {
	XStart, XEnd, FinalTime float64
	SpacePoints             int // Number of intervals, the grid has SpacePoints+1 nodes
	WaveSpeed, CFL          float64
	DeltaX, DeltaT          float64
}

func NewParameters(xStart, xEnd, finalTime float64, spacePoints int, u, cfl float64) (p Parameters, err error) {
	p = Parameters{
		XStart:      xStart,
		XEnd:        xEnd,
		FinalTime:   finalTime,
		SpacePoints: spacePoints,
		WaveSpeed:   u,
		CFL:         cfl,
	}
	if spacePoints <= 0 {
		err = fmt.Errorf("spacePoints = %d must be positive: %w", spacePoints, ErrInvalidConfiguration)
		return
	}
	if u == 0 {
		err = fmt.Errorf("wave speed must be non zero: %w", ErrInvalidConfiguration)
		return
	}
	p.DeltaX = (math.Abs(xStart) + math.Abs(xEnd)) / float64(spacePoints)
	p.DeltaT = (cfl * p.DeltaX) / u
	if !(p.DeltaX > 0) || !(p.DeltaT > 0) || math.IsInf(p.DeltaT, 0) {
		err = fmt.Errorf("deltaX = %v, deltaT = %v must be positive: %w", p.DeltaX, p.DeltaT, ErrInvalidConfiguration)
		return
	}
	return
}

// X is the position of grid node i.
func (p Parameters) X(i int) float64 { return p.XStart + float64(i)*p.DeltaX }

// Courant recomputes u*dt/dx from the derived deltas.
func (p Parameters) Courant() float64 { return p.DeltaT * p.WaveSpeed / p.DeltaX }

// Stencil is the update rule of one scheme. Prepare runs before the first
// Advance of an evaluation, Advance returns a new grid state and must not modify Q.
type Stencil interface {
	Name() string
	MinSpacePoints() int
	Prepare(p Parameters) error
	Advance(p Parameters, left, right float64, Q []float64) ([]float64, error)
}

type SchemeType uint8

const (
	ExplicitUpwind SchemeType = iota
	ImplicitUpwind
	LaxWendroff
	Richtmyer
)

var (
	SchemeNames = map[string]SchemeType{
		"explicit":       ExplicitUpwind,
		"explicitupwind": ExplicitUpwind,
		"implicit":       ImplicitUpwind,
		"implicitupwind": ImplicitUpwind,
		"laxwendroff":    LaxWendroff,
		"lw":             LaxWendroff,
		"richtmyer":      Richtmyer,
	}
	SchemePrintNames = []string{
		"Explicit Upwind Scheme",
		"Implicit Upwind Scheme",
		"Lax-Wendroff Scheme",
		"Richtmyer Scheme",
	}
)

func (st SchemeType) Print() (txt string) {
	if int(st) >= len(SchemePrintNames) {
		return fmt.Sprintf("SchemeType(%d)", st)
	}
	return SchemePrintNames[st]
}

func NewSchemeType(label string) (st SchemeType, err error) {
	var (
		ok bool
	)
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(label))
	key = strings.TrimSuffix(key, "scheme")
	if st, ok = SchemeNames[key]; !ok {
		names := make([]string, 0, len(SchemeNames))
		for name := range SchemeNames {
			names = append(names, name)
		}
		sort.Strings(names)
		err = fmt.Errorf("unable to use scheme named %q, have %v: %w", label, names, ErrUnknownScheme)
	}
	return
}

// AllSchemes lists the schemes in the order they are reported.
func AllSchemes() []SchemeType {
	return []SchemeType{ExplicitUpwind, ImplicitUpwind, LaxWendroff, Richtmyer}
}

func (st SchemeType) newStencil() (s Stencil, err error) {
	switch st {
	case ExplicitUpwind:
		s = &ExplicitUpwindStencil{}
	case ImplicitUpwind:
		s = &ImplicitUpwindStencil{}
	case LaxWendroff:
		s = &LaxWendroffStencil{}
	case Richtmyer:
		s = &RichtmyerStencil{}
	default:
		err = fmt.Errorf("scheme type %d: %w", st, ErrUnknownScheme)
	}
	return
}

type State uint8

const (
	Constructed State = iota
	Bound
	Evaluating
	Done
)

func (s State) String() string {
	return [...]string{"Constructed", "Bound", "Evaluating", "Done"}[s]
}

type Scheme struct {
	Parameters
	Type        SchemeType
	stencil     Stencil
	analytical  AnalyticalFunc
	left, right float64
	state       State
	prepared    bool
	Q           []float64 // Grid state at the current time, SpacePoints+1 values
}

func NewScheme(st SchemeType, p Parameters) (s *Scheme, err error) {
	var (
		stencil Stencil
	)
	if stencil, err = st.newStencil(); err != nil {
		return
	}
	if p.SpacePoints < stencil.MinSpacePoints() {
		err = fmt.Errorf("%s needs at least %d space points, have %d: %w",
			stencil.Name(), stencil.MinSpacePoints(), p.SpacePoints, ErrInvalidConfiguration)
		return
	}
	if !(p.DeltaX > 0) || !(p.DeltaT > 0) || p.WaveSpeed == 0 {
		err = fmt.Errorf("deltaX = %v, deltaT = %v, u = %v: %w", p.DeltaX, p.DeltaT, p.WaveSpeed, ErrInvalidConfiguration)
		return
	}
	s = &Scheme{
		Parameters: p,
		Type:       st,
		stencil:    stencil,
		state:      Constructed,
	}
	return
}

func (s *Scheme) Name() string { return s.stencil.Name() }

func (s *Scheme) State() State { return s.state }

// SetFunction binds the exact solution and the boundary values used to pin
// the first and last grid nodes.
func (s *Scheme) SetFunction(analytical AnalyticalFunc, left, right float64) {
	s.analytical = analytical
	s.left, s.right = left, right
	if analytical == nil {
		s.state = Constructed
		return
	}
	s.state = Bound
}

// BoundaryCondition rebuilds the grid state at t = 0.
func (s *Scheme) BoundaryCondition(initial InitialFunc) {
	var (
		N = s.SpacePoints
	)
	s.Q = make([]float64, N+1)
	s.Q[0] = s.left
	for i := 1; i < N; i++ {
		s.Q[i] = initial(s.X(i))
	}
	s.Q[N] = s.right
}

// Analytical evaluates the exact solution on every grid node at time t.
func (s *Scheme) Analytical(t float64) (A []float64) {
	A = make([]float64, s.SpacePoints+1)
	for i := range A {
		A[i] = s.analytical(s.X(i), t)
	}
	return
}

// Iterate advances the grid state by one time step to time t. The stencil is
// prepared on first use.
func (s *Scheme) Iterate(t float64) (Qn []float64, err error) {
	if len(s.Q) != s.SpacePoints+1 {
		err = fmt.Errorf("%s: no grid state at t = %v, BoundaryCondition was not applied: %w",
			s.Name(), t, ErrUnboundFunction)
		return
	}
	if !s.prepared {
		if err = s.prepare(); err != nil {
			return
		}
	}
	if Qn, err = s.stencil.Advance(s.Parameters, s.left, s.right, s.Q); err != nil {
		err = fmt.Errorf("%s: %w", s.Name(), err)
		return
	}
	s.Q = Qn
	return
}

func (s *Scheme) prepare() (err error) {
	if err = s.stencil.Prepare(s.Parameters); err != nil {
		err = fmt.Errorf("%s: %w", s.Name(), err)
		return
	}
	s.prepared = true
	return
}

// Evaluate time steps the scheme from the initial profile to FinalTime. Steps
// within one DeltaT of FinalTime are compared with the analytical solution,
// passed to rep when it is not nil, and returned. On error the scheme goes
// back to Bound, the next Evaluate rebuilds the grid state.
func (s *Scheme) Evaluate(initial InitialFunc, rep Reporter) (snaps []Snapshot, err error) {
	var (
		dt  = s.DeltaT
		tf  = s.FinalTime
		tol = utils.NODETOL * math.Max(1, tf)
	)
	if s.analytical == nil {
		err = fmt.Errorf("%s: %w", s.Name(), ErrUnboundFunction)
		return
	}
	defer func() {
		if err != nil {
			s.state = Bound
		}
	}()
	if err = s.prepare(); err != nil {
		return
	}
	if rep != nil {
		if err = rep.Begin(s.Name()); err != nil {
			return
		}
	}
	s.state = Evaluating
	s.BoundaryCondition(initial)
	for n := 1; ; n++ {
		Time := float64(n) * dt
		if Time > tf+tol {
			break
		}
		analytical := s.Analytical(Time)
		var numerical []float64
		if numerical, err = s.Iterate(Time); err != nil {
			return
		}
		if Time < tf-dt-tol {
			continue
		}
		var snap Snapshot
		if snap, err = NewSnapshot(Time, s.grid(), analytical, numerical); err != nil {
			return
		}
		snaps = append(snaps, snap)
		if rep != nil {
			if err = rep.Report(snap); err != nil {
				return
			}
		}
	}
	s.state = Done
	return
}

func (s *Scheme) grid() (X []float64) {
	X = make([]float64, s.SpacePoints+1)
	for i := range X {
		X[i] = s.X(i)
	}
	return
}
