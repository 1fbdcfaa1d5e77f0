package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeDivide divide a por b retornando 0 quando o denominador é zero,
// nunca NaN ou Inf
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	result := a / b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}
