package cmd

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
	"github.com/notargets/advect1d/console"
	"github.com/notargets/advect1d/model_problems/Advection1D"
)

var testDomain = Domain{XStart: -50, XEnd: 50, WaveSpeed: 1.75}

func TestProcessInput(t *testing.T) {
	dir := t.TempDir()
	fileInput := []byte(`
Title: Test Case
XStart: -10
XEnd: 10
WaveSpeed: 1.
Schemes: [lax-wendroff]
Functions: [sgn]
OutputDir: tables
Cases:
  - SpacePoints: 40
    FinalTime: 2
    CFL: 0.5
`)
	inputFile := filepath.Join(dir, "input.yaml")
	require.NoError(t, os.WriteFile(inputFile, fileInput, 0o644))

	ip, err := processInput(&SweepRun{InputFile: inputFile}, testDomain)
	require.NoError(t, err)
	assert.Equal(t, -10., ip.XStart)
	assert.Equal(t, "tables", ip.OutputDir)
	assert.Equal(t, []InputParameters.Case{{SpacePoints: 40, FinalTime: 2, CFL: 0.5}}, ip.Cases)
	ip.Print()

	ip, err = processInput(&SweepRun{InputFile: inputFile, OutputDir: "elsewhere"}, testDomain)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", ip.OutputDir)

	ip, err = processInput(&SweepRun{}, testDomain)
	require.NoError(t, err)
	assert.Equal(t, 1.75, ip.WaveSpeed)
	assert.Equal(t, "results", ip.OutputDir)
	assert.Empty(t, ip.Cases)

	_, err = processInput(&SweepRun{InputFile: filepath.Join(dir, "missing.yaml")}, testDomain)
	assert.Error(t, err)

	_, err = processInput(&SweepRun{}, Domain{XStart: -50, XEnd: 50})
	assert.ErrorIs(t, err, InputParameters.ErrInvalidInput)
}

func TestRunSweep(t *testing.T) {
	dir := t.TempDir()
	ip := &InputParameters.InputParameters1D{
		XStart:    -50,
		XEnd:      50,
		WaveSpeed: 1.75,
		Schemes:   []string{"explicit", "richtmyer"},
		Functions: []string{"exp"},
		OutputDir: filepath.Join(dir, "tables"),
		Cases: []InputParameters.Case{
			{SpacePoints: 100, FinalTime: 5, CFL: 0.5},
			{SpacePoints: 200, FinalTime: 5, CFL: 0.5},
		},
	}
	sr := &SweepRun{SummaryFile: filepath.Join(dir, "summary.csv")}
	require.NoError(t, RunSweep(sr, ip))
	assert.FileExists(t, filepath.Join(ip.OutputDir, "Richtmyer Scheme exp 200 5 0.50.txt"))

	f, err := os.Open(sr.SummaryFile)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Explicit Upwind Scheme", records[1][0])
	assert.Equal(t, "200", records[4][2])

	ip.Schemes = []string{"leapfrog"}
	assert.ErrorIs(t, RunSweep(sr, ip), Advection1D.ErrUnknownScheme)
}

func TestAdvectPromptMissing(t *testing.T) {
	var out bytes.Buffer
	a := &AdvectRun{Domain: testDomain, CFL: 0.5}
	r := console.NewReader(strings.NewReader("100\nfive\n5\n"), &out)
	require.NoError(t, a.PromptMissing(r))
	assert.Equal(t, 100, a.SpacePoints)
	assert.Equal(t, 5., a.FinalTime)
	assert.Equal(t, 0.5, a.CFL)
	assert.Contains(t, out.String(), "number of space points")
	assert.NotContains(t, out.String(), "CFL")

	a = &AdvectRun{Domain: testDomain}
	assert.ErrorIs(t, a.PromptMissing(console.NewReader(strings.NewReader("100\n"), &out)), console.ErrNoInput)
}

func TestAdvectRun(t *testing.T) {
	var (
		dir = t.TempDir()
		out bytes.Buffer
	)
	a := &AdvectRun{
		Domain:      testDomain,
		SpacePoints: 100,
		FinalTime:   5,
		CFL:         0.5,
		Output:      filepath.Join(dir, "userresults.txt"),
		Out:         &out,
	}
	require.NoError(t, os.WriteFile(a.Output, []byte("stale"), 0o644))
	require.NoError(t, a.Run())
	data, err := os.ReadFile(a.Output)
	require.NoError(t, err)
	txt := string(data)
	assert.False(t, strings.HasPrefix(txt, "stale"))
	for _, name := range Advection1D.SchemePrintNames {
		// One banner for the step, one for the Gaussian
		assert.Equal(t, 2, strings.Count(txt, "\n"+name+"\n"), name)
	}
	assert.Contains(t, txt, "infinite norm is ")
	assert.Contains(t, out.String(), "Lax-Wendroff Scheme exp: 1 steps reported")

	// Richtmyer cannot run on two intervals, the other schemes still do
	a.SpacePoints = 2
	err = a.Run()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 1)
	assert.ErrorIs(t, err, Advection1D.ErrInvalidConfiguration)
	data, err = os.ReadFile(a.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Lax-Wendroff Scheme")
	assert.NotContains(t, string(data), "Richtmyer Scheme")
}
