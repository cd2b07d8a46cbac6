package InputParameters

import (
	"errors"
	"fmt"

	"github.com/ghodss/yaml"
)

var ErrInvalidInput = errors.New("InputParameters: invalid input")

// Case is one point of a sweep: grid resolution, time horizon and Courant number.
type Case struct {
	SpacePoints int     `yaml:"SpacePoints"`
	FinalTime   float64 `yaml:"FinalTime"`
	CFL         float64 `yaml:"CFL"`
}

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title     string   `yaml:"Title"`
	XStart    float64  `yaml:"XStart"`
	XEnd      float64  `yaml:"XEnd"`
	WaveSpeed float64  `yaml:"WaveSpeed"`
	Schemes   []string `yaml:"Schemes"`   // Empty runs every scheme
	Functions []string `yaml:"Functions"` // Empty runs "exp" then "sgn"
	OutputDir string   `yaml:"OutputDir"`
	Cases     []Case   `yaml:"Cases"` // Empty uses the default sweep
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Validate() (err error) {
	if ip.WaveSpeed == 0 {
		return fmt.Errorf("WaveSpeed must be non zero: %w", ErrInvalidInput)
	}
	if ip.XStart == 0 && ip.XEnd == 0 {
		return fmt.Errorf("XStart and XEnd are both zero: %w", ErrInvalidInput)
	}
	for i, c := range ip.Cases {
		if c.SpacePoints <= 0 || c.FinalTime <= 0 || c.CFL <= 0 {
			return fmt.Errorf("case %d %+v must have positive SpacePoints, FinalTime and CFL: %w", i, c, ErrInvalidInput)
		}
	}
	return
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%8.3f,%8.3f]\t= Domain\n", ip.XStart, ip.XEnd)
	fmt.Printf("%8.5f\t\t= WaveSpeed\n", ip.WaveSpeed)
	fmt.Printf("%v\t\t= Schemes\n", ip.Schemes)
	fmt.Printf("%v\t\t= Functions\n", ip.Functions)
	fmt.Printf("[%s]\t\t= Output Directory\n", ip.OutputDir)
	for i, c := range ip.Cases {
		fmt.Printf("Cases[%d] = N: %d, FinalTime: %8.5f, CFL: %8.5f\n", i, c.SpacePoints, c.FinalTime, c.CFL)
	}
}
