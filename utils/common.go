package utils

const (
	NODETOL  = 1.e-12
	PivotTol = 1.e-07 // Smallest pivot magnitude accepted by LUFactor
	EqualTol = 1.e-07 // Absolute entry tolerance used by Matrix.Equal
)
