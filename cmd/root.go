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
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advect1d",
	Short: "Finite difference schemes for the one dimensional linear advection equation",
	Long: `
Compares explicit upwind, implicit upwind, Lax-Wendroff and Richtmyer schemes
against the exact traveling wave solution of q_t + u q_x = 0,

advect1d advect -n 100 -t 5 --CFL 0.5
advect1d sweep -I input.yaml`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.advect1d.yaml)")
	rootCmd.PersistentFlags().Float64("xStart", -50, "left end of the domain")
	rootCmd.PersistentFlags().Float64("xEnd", 50, "right end of the domain")
	rootCmd.PersistentFlags().Float64("waveSpeed", 1.75, "advection speed u")
	for _, name := range []string{"xStart", "xEnd", "waveSpeed"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		// Search config in home directory with name ".advect1d" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".advect1d")
	}
	viper.SetEnvPrefix("ADVECT1D")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// Domain is the grid extent and wave speed shared by every command.
type Domain struct {
	XStart, XEnd, WaveSpeed float64
}

func domainFromConfig() Domain {
	return Domain{
		XStart:    viper.GetFloat64("xStart"),
		XEnd:      viper.GetFloat64("xEnd"),
		WaveSpeed: viper.GetFloat64("waveSpeed"),
	}
}
