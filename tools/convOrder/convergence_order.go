package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "summary file written by advect1d sweep --summary")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(bufio.NewReader(f))
	if err != nil {
		panic(err)
	}
	for _, key := range sortedKeys(studies) {
		studies[key].Print(os.Stdout)
	}
}

// ConvergenceStudy holds the final error norms of one scheme and function at
// fixed time and CFL over a series of grid refinements.
type ConvergenceStudy struct {
	scheme, function string
	finalTime, CFL   float64
	numPTS           []int
	infNorm, l1, l2  []float64
}

func NewConvergenceStudy(scheme, function string, finalTime, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		scheme:    scheme,
		function:  function,
		finalTime: finalTime,
		CFL:       CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, infNorm, l1, l2 float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.infNorm = append(cs.infNorm, infNorm)
	cs.l1 = append(cs.l1, l1)
	cs.l2 = append(cs.l2, l2)
}

func (cs *ConvergenceStudy) Len() int           { return len(cs.numPTS) }
func (cs *ConvergenceStudy) Less(i, j int) bool { return cs.numPTS[i] < cs.numPTS[j] }
func (cs *ConvergenceStudy) Swap(i, j int) {
	cs.numPTS[i], cs.numPTS[j] = cs.numPTS[j], cs.numPTS[i]
	cs.infNorm[i], cs.infNorm[j] = cs.infNorm[j], cs.infNorm[i]
	cs.l1[i], cs.l1[j] = cs.l1[j], cs.l1[i]
	cs.l2[i], cs.l2[j] = cs.l2[j], cs.l2[i]
}

// Order is the observed order of accuracy between refinements i-1 and i,
// log(e[i-1]/e[i]) / log(N[i]/N[i-1]).
func (cs *ConvergenceStudy) Order(e []float64, i int) float64 {
	return math.Log(e[i-1]/e[i]) / math.Log(float64(cs.numPTS[i])/float64(cs.numPTS[i-1]))
}

func (cs *ConvergenceStudy) Print(w io.Writer) {
	sort.Sort(cs)
	fmt.Fprintf(w, "Scheme = %s, Function = %s, FinalTime = %5.2f, CFL = %5.2f\n",
		cs.scheme, cs.function, cs.finalTime, cs.CFL)
	for i := range cs.numPTS {
		fmt.Fprintf(w, "%d, %v, %v, %v", cs.numPTS[i], cs.infNorm[i], cs.l1[i], cs.l2[i])
		if i > 0 {
			fmt.Fprintf(w, ", order %5.2f %5.2f %5.2f",
				cs.Order(cs.infNorm, i), cs.Order(cs.l1, i), cs.Order(cs.l2, i))
		}
		fmt.Fprintln(w)
	}
}

func readCSV(r io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records              [][]string
		ok                   bool
		cs                   *ConvergenceStudy
		npts                 int
		tf, cfl, inf, l1, l2 float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if records, err = csv.NewReader(r).ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) < 9 {
			err = fmt.Errorf("line %d: have %d fields, need 9", i+1, len(rec))
			return
		}
		scheme, function := rec[0], rec[1]
		if npts, err = strconv.Atoi(rec[2]); err != nil {
			return
		}
		for j, dst := range []*float64{&tf, &cfl, &inf, &l1, &l2} {
			col := []int{3, 4, 6, 7, 8}[j]
			if *dst, err = strconv.ParseFloat(rec[col], 64); err != nil {
				err = fmt.Errorf("line %d: %w", i+1, err)
				return
			}
		}
		combTitle := scheme + " " + function + " " + rec[3] + " " + rec[4]
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(scheme, function, tf, cfl)
			studies[combTitle] = cs
		}
		cs.Add(npts, inf, l1, l2)
	}
	return
}

func sortedKeys(studies map[string]*ConvergenceStudy) (keys []string) {
	for k := range studies {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}
