package Advection1D

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/notargets/advect1d/utils"
)

// Snapshot is the comparison of the numerical and analytical solutions at
// one reported time step.
type Snapshot struct {
	Time                                 float64
	X, Analytical, Numerical, Difference []float64
	InfNorm, L1Norm, L2Norm              float64
}

func NewSnapshot(time float64, X, analytical, numerical []float64) (snap Snapshot, err error) {
	if len(analytical) != len(numerical) || len(X) != len(numerical) {
		err = fmt.Errorf("snapshot at t = %v: len(X) = %d, len(analytical) = %d, len(numerical) = %d: %w",
			time, len(X), len(analytical), len(numerical), utils.ErrDimensionMismatch)
		return
	}
	snap = Snapshot{
		Time:       time,
		X:          X,
		Analytical: analytical,
		Numerical:  numerical,
		Difference: make([]float64, len(numerical)),
	}
	for i := range numerical {
		snap.Difference[i] = math.Abs(analytical[i] - numerical[i])
	}
	if snap.InfNorm, err = utils.InfiniteNorm(snap.Difference); err != nil {
		return
	}
	snap.L1Norm = utils.PNorm(snap.Difference, 1)
	snap.L2Norm = utils.PNorm(snap.Difference, 2)
	return
}

// Diverged is true once the numerical state has overflowed.
func (s Snapshot) Diverged() bool { return !utils.IsFinite(s.Numerical) }

// Reporter receives the snapshots of an evaluation.
type Reporter interface {
	Begin(name string) error
	Report(snap Snapshot) error
}

// SummaryReporter writes a banner per scheme and the three norms per step.
type SummaryReporter struct {
	W io.Writer
}

func NewSummaryReporter(w io.Writer) *SummaryReporter { return &SummaryReporter{W: w} }

func (r *SummaryReporter) Begin(name string) (err error) {
	_, err = fmt.Fprintf(r.W, "\n-----------------------\n%s\n-----------------------\n\n", name)
	return
}

func (r *SummaryReporter) Report(snap Snapshot) (err error) {
	_, err = fmt.Fprintf(r.W, "t = %.6g\ninfinite norm is %.6g\n1st norm is %.6g\n2nd norm is %.6g\n",
		snap.Time, snap.InfNorm, snap.L1Norm, snap.L2Norm)
	if err != nil {
		return
	}
	if snap.Diverged() {
		_, err = fmt.Fprintf(r.W, "solution diverged\n")
		if err != nil {
			return
		}
	}
	_, err = fmt.Fprintln(r.W)
	return
}

// TableReporter writes the norms followed by the grid, analytical and
// numerical value of every node.
type TableReporter struct {
	W io.Writer
}

func NewTableReporter(w io.Writer) *TableReporter { return &TableReporter{W: w} }

func (r *TableReporter) Begin(name string) error { return nil }

func (r *TableReporter) Report(snap Snapshot) (err error) {
	bw := bufio.NewWriter(r.W)
	fmt.Fprintf(bw, "infinite %.6g\n1st %.6g\n2nd %.6g\n\n", snap.InfNorm, snap.L1Norm, snap.L2Norm)
	fmt.Fprintf(bw, "grid, Analytical, Numerical\n")
	for i := range snap.X {
		fmt.Fprintf(bw, "%.6g, %.6g, %.6g\n", snap.X[i], snap.Analytical[i], snap.Numerical[i])
	}
	return bw.Flush()
}

// MultiReporter fans the snapshots out to several reporters.
type MultiReporter []Reporter

func (m MultiReporter) Begin(name string) (err error) {
	for _, r := range m {
		if err = r.Begin(name); err != nil {
			return
		}
	}
	return
}

func (m MultiReporter) Report(snap Snapshot) (err error) {
	for _, r := range m {
		if err = r.Report(snap); err != nil {
			return
		}
	}
	return
}
