package sweep

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/analytic_advection"
	"github.com/notargets/advect1d/model_problems/Advection1D"
)

func TestDefaultCases(t *testing.T) {
	cases := DefaultCases()
	require.Len(t, cases, 16)
	assert.Equal(t, Case{SpacePoints: 100, FinalTime: 5, CFL: 0.5}, cases[0])
	assert.Equal(t, Case{SpacePoints: 100, FinalTime: 10, CFL: 1.99}, cases[7])
	assert.Equal(t, Case{SpacePoints: 400, FinalTime: 5, CFL: 1.99}, cases[15])
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Explicit Upwind Scheme exp 100 5 0.50.txt",
		FileName("Explicit Upwind Scheme", "exp", Case{SpacePoints: 100, FinalTime: 5, CFL: 0.5}))
	assert.Equal(t, "Richtmyer Scheme sgn 400 10 1.99.txt",
		FileName("Richtmyer Scheme", "sgn", Case{SpacePoints: 400, FinalTime: 10.7, CFL: 1.99}))
	assert.Equal(t, "Lax-Wendroff Scheme exp 200 5 12.5.txt",
		FileName("Lax-Wendroff Scheme", "exp", Case{SpacePoints: 200, FinalTime: 5, CFL: 12.5}))
}

func TestNewConfig(t *testing.T) {
	ip := &InputParameters.InputParameters1D{XStart: -50, XEnd: 50, WaveSpeed: 1.75}
	cfg, err := NewConfig(ip)
	require.NoError(t, err)
	assert.Equal(t, Advection1D.AllSchemes(), cfg.Schemes)
	require.Len(t, cfg.Functions, 2)
	assert.Equal(t, "exp", cfg.Functions[0].Name)
	assert.Equal(t, "sgn", cfg.Functions[1].Name)
	assert.Equal(t, DefaultCases(), cfg.Cases)

	ip.Schemes = []string{"richtmyer", "bogus"}
	_, err = NewConfig(ip)
	assert.ErrorIs(t, err, Advection1D.ErrUnknownScheme)

	ip.Schemes = nil
	ip.Functions = []string{"sine"}
	_, err = NewConfig(ip)
	assert.ErrorIs(t, err, analytic_advection.ErrUnknownFunction)

	ip.WaveSpeed = 0
	_, err = NewConfig(ip)
	assert.ErrorIs(t, err, InputParameters.ErrInvalidInput)
}

func TestRun(t *testing.T) {
	var (
		dir = t.TempDir()
		out bytes.Buffer
	)
	cfg := Config{
		XStart:    -50,
		XEnd:      50,
		WaveSpeed: 1.75,
		Schemes:   Advection1D.AllSchemes(),
		Functions: []analytic_advection.Solution{analytic_advection.Gaussian(1.75)},
		Cases: []Case{
			{SpacePoints: 100, FinalTime: 5, CFL: 0.5},
			{SpacePoints: 100, FinalTime: 5, CFL: 1.99},
		},
		OutputDir: filepath.Join(dir, "results"),
		Out:       &out,
	}
	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 8)
	for _, r := range results {
		require.NoError(t, r.Err)
		assert.FileExists(t, r.File)
		data, err := os.ReadFile(r.File)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "infinite "), r.File)
		assert.Contains(t, string(data), "grid, Analytical, Numerical\n-50, ")
	}
	assert.Equal(t, filepath.Join(cfg.OutputDir, "Implicit Upwind Scheme exp 100 5 1.99.txt"), results[3].File)
	assert.Less(t, results[0].Final.InfNorm, 1.)
	assert.Contains(t, out.String(), "Explicit Upwind Scheme")

	var summary bytes.Buffer
	require.NoError(t, WriteSummary(&summary, results))
	records, err := csv.NewReader(&summary).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 9)
	assert.Equal(t, summaryHeader, records[0])
	assert.Equal(t, []string{"Explicit Upwind Scheme", "exp", "100", "5", "0.5"}, records[1][:5])
}

func TestRunContinuesPastFailures(t *testing.T) {
	var out bytes.Buffer
	cfg := Config{
		XStart:    -50,
		XEnd:      50,
		WaveSpeed: 1.75,
		Schemes:   []Advection1D.SchemeType{Advection1D.Richtmyer, Advection1D.LaxWendroff},
		Functions: []analytic_advection.Solution{analytic_advection.Step(1.75)},
		Cases: []Case{
			{SpacePoints: 2, FinalTime: 5, CFL: 0.5},     // Too coarse for Richtmyer, dt > t for Lax-Wendroff
			{SpacePoints: 100, FinalTime: 5, CFL: -1},    // Negative time step
			{SpacePoints: 100, FinalTime: 0.1, CFL: 0.5}, // Horizon shorter than one step
			{SpacePoints: 100, FinalTime: 5, CFL: 0.5},
		},
		Out: &out,
	}
	results, err := Run(cfg)
	require.Error(t, err)
	require.Len(t, results, 8)
	errs := multierr.Errors(err)
	assert.Len(t, errs, 6)
	for _, e := range errs {
		assert.ErrorIs(t, e, Advection1D.ErrInvalidConfiguration)
	}
	// Only the N = 100, t = 5, CFL = 0.5 case runs for either scheme
	for i, r := range results {
		if i == 3 || i == 7 {
			assert.NoError(t, r.Err, "result %d", i)
			continue
		}
		assert.ErrorIs(t, r.Err, Advection1D.ErrInvalidConfiguration, "result %d", i)
	}
	assert.Contains(t, out.String(), "failed")

	var summary bytes.Buffer
	require.NoError(t, WriteSummary(&summary, results))
	records, err := csv.NewReader(&summary).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Richtmyer Scheme", "sgn", "100", "5", "0.5"}, records[1][:5])
	assert.Equal(t, []string{"Lax-Wendroff Scheme", "sgn", "100", "5", "0.5"}, records[2][:5])
}

func TestRunSummaryStream(t *testing.T) {
	var (
		dir          = t.TempDir()
		out, summary bytes.Buffer
	)
	cfg := Config{
		XStart:    -50,
		XEnd:      50,
		WaveSpeed: 1.75,
		Schemes:   []Advection1D.SchemeType{Advection1D.LaxWendroff},
		Functions: []analytic_advection.Solution{analytic_advection.Gaussian(1.75)},
		Cases:     []Case{{SpacePoints: 100, FinalTime: 5, CFL: 0.5}},
		OutputDir: dir,
		Out:       &out,
		Summary:   &summary,
	}
	results, err := Run(cfg)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.FileExists(t, results[0].File)
	txt := summary.String()
	assert.Contains(t, txt, "\nLax-Wendroff Scheme\n")
	assert.Equal(t, 1, strings.Count(txt, "infinite norm is "))

	// Without an output directory the summary stream is the only sink
	cfg.OutputDir = ""
	summary.Reset()
	results, err = Run(cfg)
	require.NoError(t, err)
	assert.Empty(t, results[0].File)
	assert.Contains(t, summary.String(), "t = 4.85714\n")
}
