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
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/notargets/advect1d/InputParameters"
	"github.com/notargets/advect1d/sweep"
)

type SweepRun struct {
	InputFile   string
	OutputDir   string
	SummaryFile string
	ProfileDir  string
	Verbose     bool
}

// SweepCmd represents the sweep command
var SweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run every scheme over a list of grid, time and CFL cases",
	Long: `
Runs each scheme against each analytical function for every case of the input
deck, writing one table per case. Without an input deck the reference sweep
of N = 100, 200, 400, t = 5, 10 and CFL = 0.5, 0.99, 1.01, 1.99 is run,

advect1d sweep -I input.yaml --summary summary.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("sweep called")
		sr := &SweepRun{}
		if sr.InputFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			log.Fatal(err)
		}
		sr.OutputDir, _ = cmd.Flags().GetString("outputDir")
		sr.SummaryFile, _ = cmd.Flags().GetString("summary")
		sr.ProfileDir, _ = cmd.Flags().GetString("profile")
		sr.Verbose, _ = cmd.Flags().GetBool("verbose")
		if sr.ProfileDir != "" {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(sr.ProfileDir)).Stop()
		}
		ip, err := processInput(sr, domainFromConfig())
		if err != nil {
			log.Fatalf("unable to read input: %v", err)
		}
		ip.Print()
		if err = RunSweep(sr, ip); err != nil {
			log.Printf("sweep finished with %d errors: %v", len(multierr.Errors(err)), err)
		}
	},
}

func init() {
	rootCmd.AddCommand(SweepCmd)
	SweepCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- WaveSpeed\n\t- Cases (SpacePoints, FinalTime, CFL)")
	SweepCmd.Flags().StringP("outputDir", "o", "", "directory for the per case tables, overrides OutputDir of the input file")
	SweepCmd.Flags().StringP("summary", "s", "", "CSV file receiving the final norms of every case")
	SweepCmd.Flags().String("profile", "", "write a CPU profile into this directory")
	SweepCmd.Flags().BoolP("verbose", "v", false, "print the norms of every reported step")
}

const exampleFile = `
########################################
Title: "Gaussian refinement"
XStart: -50
XEnd: 50
WaveSpeed: 1.75
Schemes: [explicit, implicit, lax-wendroff, richtmyer]
Functions: [exp, sgn]
OutputDir: results
Cases:
  - SpacePoints: 100
    FinalTime: 5
    CFL: 0.5
########################################
`

// processInput reads the input deck, or builds one from the domain when no
// file is given.
func processInput(sr *SweepRun, d Domain) (ip *InputParameters.InputParameters1D, err error) {
	ip = &InputParameters.InputParameters1D{
		Title:     "Reference sweep",
		XStart:    d.XStart,
		XEnd:      d.XEnd,
		WaveSpeed: d.WaveSpeed,
		OutputDir: "results",
	}
	if len(sr.InputFile) != 0 {
		var data []byte
		if data, err = os.ReadFile(sr.InputFile); err != nil {
			fmt.Printf("Example File:%s\n", exampleFile)
			return
		}
		ip = &InputParameters.InputParameters1D{}
		if err = ip.Parse(data); err != nil {
			return
		}
	}
	if len(sr.OutputDir) != 0 {
		ip.OutputDir = sr.OutputDir
	}
	err = ip.Validate()
	return
}

func RunSweep(sr *SweepRun, ip *InputParameters.InputParameters1D) (err error) {
	var (
		cfg     sweep.Config
		results []sweep.Result
	)
	if cfg, err = sweep.NewConfig(ip); err != nil {
		return
	}
	if sr.Verbose {
		cfg.Summary = cfg.Out
	}
	results, err = sweep.Run(cfg)
	if len(sr.SummaryFile) == 0 {
		return
	}
	var (
		file *os.File
		ferr error
	)
	if file, ferr = os.Create(sr.SummaryFile); ferr != nil {
		return multierr.Append(err, ferr)
	}
	return multierr.Combine(err, sweep.WriteSummary(file, results), file.Close())
}
