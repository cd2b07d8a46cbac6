/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/notargets/advect1d/analytic_advection"
	"github.com/notargets/advect1d/console"
	"github.com/notargets/advect1d/model_problems/Advection1D"
	"github.com/notargets/advect1d/sweep"
)

// AdvectCmd represents the advect command
var AdvectCmd = &cobra.Command{
	Use:   "advect",
	Short: "Run every scheme for one grid, time and CFL",
	Long: `
Evaluates the four schemes against the step and then the Gaussian profile and
writes the norms of each reported step to the output file. Parameters not
given as flags are read from the console,

advect1d advect -n 100 -t 5 --CFL 0.99 --graph`,
	Run: func(cmd *cobra.Command, args []string) {
		a := &AdvectRun{Domain: domainFromConfig()}
		fmt.Println("advect called")
		a.SpacePoints, _ = cmd.Flags().GetInt("spacePoints")
		a.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		a.CFL, _ = cmd.Flags().GetFloat64("CFL")
		a.Output, _ = cmd.Flags().GetString("output")
		a.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		a.Delay = time.Duration(dr) * time.Millisecond
		a.Variations, _ = cmd.Flags().GetBool("variations")
		a.ResultsDir, _ = cmd.Flags().GetString("resultsDir")
		if err := a.PromptMissing(console.NewReader(os.Stdin, os.Stdout)); err != nil {
			log.Fatalf("unable to read parameters: %v", err)
		}
		if err := a.Run(); err != nil {
			log.Fatalf("advect failed: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(AdvectCmd)
	AdvectCmd.Flags().IntP("spacePoints", "n", 0, "number of space intervals, prompted for when zero")
	AdvectCmd.Flags().Float64P("finalTime", "t", 0, "time to integrate to, prompted for when zero")
	AdvectCmd.Flags().Float64("CFL", 0, "Courant number u*dt/dx, prompted for when zero")
	AdvectCmd.Flags().StringP("output", "o", "userresults.txt", "file receiving the norms, truncated first")
	AdvectCmd.Flags().BoolP("graph", "g", false, "plot analytical and numerical solutions at the final step")
	AdvectCmd.Flags().IntP("delay", "d", 2000, "milliseconds to hold each plot, zero holds forever")
	AdvectCmd.Flags().Bool("variations", false, "also run the reference sweep for every scheme")
	AdvectCmd.Flags().String("resultsDir", "results", "directory for the sweep files written by --variations")
}

type AdvectRun struct {
	Domain
	SpacePoints       int
	FinalTime, CFL    float64
	Output            string
	Graph, Variations bool
	Delay             time.Duration
	ResultsDir        string
	Out               io.Writer // Progress, defaults to stdout
}

// PromptMissing asks for every parameter left at zero.
func (a *AdvectRun) PromptMissing(r *console.Reader) (err error) {
	if a.SpacePoints <= 0 {
		if a.SpacePoints, err = r.GetInt("number of space points"); err != nil {
			return
		}
	}
	if a.FinalTime <= 0 {
		if a.FinalTime, err = r.GetFloat("time"); err != nil {
			return
		}
	}
	if a.CFL <= 0 {
		if a.CFL, err = r.GetFloat("CFL"); err != nil {
			return
		}
	}
	return
}

func (a *AdvectRun) out() io.Writer {
	if a.Out == nil {
		return os.Stdout
	}
	return a.Out
}

// Run writes the summary of every scheme to the output file. A scheme that
// fails is logged and the next one runs; the failures are returned combined.
func (a *AdvectRun) Run() (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(a.Output); err != nil {
		return
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	rep := Advection1D.NewSummaryReporter(file)
	functions := []analytic_advection.Solution{
		analytic_advection.Step(a.WaveSpeed),
		analytic_advection.Gaussian(a.WaveSpeed),
	}
	for _, st := range Advection1D.AllSchemes() {
		if serr := a.evaluateScheme(st, functions, rep); serr != nil {
			log.Printf("%s: %v", st.Print(), serr)
			err = multierr.Append(err, serr)
		}
	}
	if a.Variations {
		cfg := sweep.Config{
			XStart:    a.XStart,
			XEnd:      a.XEnd,
			WaveSpeed: a.WaveSpeed,
			Schemes:   Advection1D.AllSchemes(),
			Functions: []analytic_advection.Solution{functions[1], functions[0]},
			Cases:     sweep.DefaultCases(),
			OutputDir: a.ResultsDir,
			Out:       a.out(),
		}
		if _, serr := sweep.Run(cfg); serr != nil {
			log.Printf("%d sweep cases failed", len(multierr.Errors(serr)))
			err = multierr.Append(err, serr)
		}
	}
	return
}

func (a *AdvectRun) evaluateScheme(st Advection1D.SchemeType, functions []analytic_advection.Solution,
	rep Advection1D.Reporter) (err error) {
	var (
		p     Advection1D.Parameters
		s     *Advection1D.Scheme
		snaps []Advection1D.Snapshot
	)
	if p, err = Advection1D.NewParameters(a.XStart, a.XEnd, a.FinalTime, a.SpacePoints, a.WaveSpeed, a.CFL); err != nil {
		return
	}
	if s, err = Advection1D.NewScheme(st, p); err != nil {
		return
	}
	for _, f := range functions {
		s.SetFunction(f.Analytical, f.Left, f.Right)
		if snaps, err = s.Evaluate(f.Initial, rep); err != nil {
			return
		}
		fmt.Fprintf(a.out(), "%s %s: %d steps reported\n", s.Name(), f.Name, len(snaps))
		if a.Graph && len(snaps) != 0 {
			Advection1D.PlotSnapshot(snaps[len(snaps)-1], a.Delay)
		}
	}
	return
}
