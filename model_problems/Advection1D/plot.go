package Advection1D

import (
	"math"
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

// PlotSnapshot opens a chart with the analytical (green) and numerical (red)
// profiles of snap and keeps it up for hold, or forever when hold is zero.
func PlotSnapshot(snap Snapshot, hold time.Duration) {
	var (
		xMin, xMax = float32(snap.X[0]), float32(snap.X[len(snap.X)-1])
		yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	)
	for _, field := range [][]float64{snap.Analytical, snap.Numerical} {
		for _, val := range field {
			if !plottable(val) {
				continue
			}
			yMin = min(yMin, float32(val))
			yMax = max(yMax, float32(val))
		}
	}
	if yMin >= yMax {
		yMin, yMax = yMin-1, yMin+1
	}
	margin := 0.1 * (yMax - yMin)
	ch := chart2d.NewChart2D(xMin, xMax, yMin-margin, yMax+margin,
		1024, 768, utils2.WHITE, utils2.BLACK)
	ch.AddLine(polyline(snap.X, snap.Analytical), utils2.GREEN)
	ch.AddLine(polyline(snap.X, snap.Numerical), utils2.RED)
	if hold == 0 {
		for {
			time.Sleep(10 * time.Second)
		}
	}
	time.Sleep(hold)
}

// polyline converts a curve into the segment list chart2d draws, skipping
// segments touching a value float32 cannot hold.
func polyline(X, F []float64) (line []float32) {
	for i := 1; i < len(X); i++ {
		if !plottable(F[i-1]) || !plottable(F[i]) {
			continue
		}
		line = append(line,
			float32(X[i-1]), float32(F[i-1]),
			float32(X[i]), float32(F[i]),
		)
	}
	return
}

func plottable(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) < math.MaxFloat32
}
