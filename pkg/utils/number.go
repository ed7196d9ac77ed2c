package utils

import "math"

func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// SafeDivide retorna 0 quando o divisor é zero ou o resultado não é finito
func SafeDivide(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	result := numerator / denominator
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// Percentage calcula part/total*100 com uma casa decimal
func Percentage(part, total float64) float64 {
	return RoundWithOneDecimalPlace(SafeDivide(part, total) * 100)
}
