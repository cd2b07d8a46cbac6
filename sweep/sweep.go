package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/multierr"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/analytic_advection"
	"github.com/notargets/advect1d/model_problems/Advection1D"
)

type Case = InputParameters.Case

// DefaultCases is the reference study: every Courant number for N = 100 at
// t = 5 and t = 10, then N = 200 and N = 400 at t = 5.
func DefaultCases() (cases []Case) {
	cfls := []float64{0.5, 0.99, 1.01, 1.99}
	for _, nt := range []struct {
		N  int
		tf float64
	}{{100, 5}, {100, 10}, {200, 5}, {400, 5}} {
		for _, cfl := range cfls {
			cases = append(cases, Case{SpacePoints: nt.N, FinalTime: nt.tf, CFL: cfl})
		}
	}
	return
}

type Config struct {
	XStart, XEnd, WaveSpeed float64
	Schemes                 []Advection1D.SchemeType
	Functions               []analytic_advection.Solution
	Cases                   []Case
	OutputDir               string    // Per case result files, none written when empty
	Out                     io.Writer // One line per case
	Summary                 io.Writer // Norms of every reported step, none when nil
}

// NewConfig converts an input deck, filling the reference defaults for
// anything left empty.
func NewConfig(ip *InputParameters.InputParameters1D) (cfg Config, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	cfg = Config{
		XStart:    ip.XStart,
		XEnd:      ip.XEnd,
		WaveSpeed: ip.WaveSpeed,
		Cases:     ip.Cases,
		OutputDir: ip.OutputDir,
		Out:       os.Stdout,
	}
	if len(cfg.Cases) == 0 {
		cfg.Cases = DefaultCases()
	}
	if len(ip.Schemes) == 0 {
		cfg.Schemes = Advection1D.AllSchemes()
	}
	for _, label := range ip.Schemes {
		var st Advection1D.SchemeType
		if st, err = Advection1D.NewSchemeType(label); err != nil {
			return
		}
		cfg.Schemes = append(cfg.Schemes, st)
	}
	functions := ip.Functions
	if len(functions) == 0 {
		functions = []string{"exp", "sgn"}
	}
	for _, label := range functions {
		var f analytic_advection.Solution
		if f, err = analytic_advection.NewSolution(label, ip.WaveSpeed); err != nil {
			return
		}
		cfg.Functions = append(cfg.Functions, f)
	}
	return
}

// FileName is "<scheme> <function> <N> <int(t)> <cfl>.txt" with the Courant
// number printed as %f and cut to four characters.
func FileName(schemeName, functionName string, c Case) string {
	cfl := fmt.Sprintf("%f", c.CFL)
	if len(cfl) > 4 {
		cfl = cfl[:4]
	}
	return fmt.Sprintf("%s %s %d %d %s.txt", schemeName, functionName, c.SpacePoints, int(c.FinalTime), cfl)
}

// Result is the last reported step of one scheme, function and case.
type Result struct {
	Scheme   string
	Function string
	Case
	File  string
	Final Advection1D.Snapshot
	Err   error
}

// Run evaluates every scheme against every function for every case. A failed
// case is recorded in its Result and the sweep continues; the failures are
// returned combined.
func Run(cfg Config) (results []Result, err error) {
	if cfg.OutputDir != "" {
		if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return
		}
	}
	for _, st := range cfg.Schemes {
		for _, f := range cfg.Functions {
			for _, c := range cfg.Cases {
				r := runCase(cfg, st, f, c)
				if r.Err != nil {
					err = multierr.Append(err, fmt.Errorf("%s %s %+v: %w", r.Scheme, r.Function, c, r.Err))
					if cfg.Out != nil {
						fmt.Fprintf(cfg.Out, "%s %s N = %d, t = %v, CFL = %v failed: %v\n",
							r.Scheme, r.Function, c.SpacePoints, c.FinalTime, c.CFL, r.Err)
					}
				}
				results = append(results, r)
			}
		}
	}
	return
}

func runCase(cfg Config, st Advection1D.SchemeType, f analytic_advection.Solution, c Case) (r Result) {
	var (
		p     Advection1D.Parameters
		s     *Advection1D.Scheme
		reps  Advection1D.MultiReporter
		rep   Advection1D.Reporter
		snaps []Advection1D.Snapshot
		file  *os.File
	)
	r = Result{Scheme: st.Print(), Function: f.Name, Case: c}
	if p, r.Err = Advection1D.NewParameters(cfg.XStart, cfg.XEnd, c.FinalTime, c.SpacePoints, cfg.WaveSpeed, c.CFL); r.Err != nil {
		return
	}
	if s, r.Err = Advection1D.NewScheme(st, p); r.Err != nil {
		return
	}
	s.SetFunction(f.Analytical, f.Left, f.Right)
	if cfg.OutputDir != "" {
		r.File = filepath.Join(cfg.OutputDir, FileName(s.Name(), f.Name, c))
		if file, r.Err = os.Create(r.File); r.Err != nil {
			return
		}
		defer func() {
			r.Err = multierr.Append(r.Err, file.Close())
		}()
		reps = append(reps, Advection1D.NewTableReporter(file))
	}
	if cfg.Summary != nil {
		reps = append(reps, Advection1D.NewSummaryReporter(cfg.Summary))
	}
	if len(reps) != 0 {
		rep = reps
	}
	if snaps, r.Err = s.Evaluate(f.Initial, rep); r.Err != nil {
		return
	}
	if len(snaps) == 0 {
		r.Err = fmt.Errorf("no time step reached t = %v with dt = %v: %w",
			c.FinalTime, p.DeltaT, Advection1D.ErrInvalidConfiguration)
		return
	}
	r.Final = snaps[len(snaps)-1]
	if cfg.Out != nil {
		fmt.Fprintf(cfg.Out, "%-24s %s N = %4d, t = %5.2f, CFL = %4.2f, inf = %12.6g, L1 = %12.6g, L2 = %12.6g\n",
			r.Scheme, r.Function, c.SpacePoints, c.FinalTime, c.CFL, r.Final.InfNorm, r.Final.L1Norm, r.Final.L2Norm)
	}
	return
}

var summaryHeader = []string{"scheme", "function", "spacePoints", "finalTime", "cfl", "time", "infinite", "l1", "l2"}

// WriteSummary writes one CSV row per successful result, the input read by
// tools/convOrder.
func WriteSummary(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	g := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if err := cw.Write([]string{
			r.Scheme, r.Function, strconv.Itoa(r.SpacePoints), g(r.FinalTime), g(r.CFL),
			g(r.Final.Time), g(r.Final.InfNorm), g(r.Final.L1Norm), g(r.Final.L2Norm),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
