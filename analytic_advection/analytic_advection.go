package analytic_advection

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/notargets/advect1d/utils"
)

var ErrUnknownFunction = errors.New("analytic_advection: unknown function")

// Solution is an exact traveling wave q(x,t) = q0(x - u*t) of the linear
// advection equation, with the Dirichlet values held at the domain ends.
type Solution struct {
	Name        string
	Analytical  func(x, t float64) float64
	Initial     func(x float64) float64
	Left, Right float64
}

type builder func(u float64) Solution

var solutions = map[string]builder{
	"sgn": Step,
	"exp": Gaussian,
}

// Step is the unit jump 0.5*(sgn(x-u*t)+1), zero upstream and one downstream.
func Step(u float64) Solution {
	q0 := func(x float64) float64 { return 0.5 * (utils.Sgn(x) + 1) }
	return Solution{
		Name:       "sgn",
		Analytical: func(x, t float64) float64 { return q0(x - u*t) },
		Initial:    q0,
		Left:       0,
		Right:      1,
	}
}

// Gaussian is the pulse 0.5*exp(-(x-u*t)^2).
func Gaussian(u float64) Solution {
	q0 := func(x float64) float64 { return 0.5 * math.Exp(-utils.POW(x, 2)) }
	return Solution{
		Name:       "exp",
		Analytical: func(x, t float64) float64 { return q0(x - u*t) },
		Initial:    q0,
		Left:       0,
		Right:      0,
	}
}

func NewSolution(label string, u float64) (s Solution, err error) {
	var (
		b  builder
		ok bool
	)
	if b, ok = solutions[strings.ToLower(label)]; !ok {
		err = fmt.Errorf("unable to use function named %q, have %v: %w", label, Names(), ErrUnknownFunction)
		return
	}
	s = b(u)
	return
}

func Names() (names []string) {
	for name := range solutions {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}
