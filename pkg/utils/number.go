package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio calcula numerador/denominador arredondado para duas casas decimais.
// Denominador zero (ou resultado não finito) retorna 0, nunca NaN ou Inf.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}

	ratio := numerator / denominator
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return 0
	}

	return RoundWithTwoDecimalPlace(ratio)
}

// DeltaPct calcula a variação percentual do período anterior para o atual.
// Por convenção, período anterior igual a zero resulta em 0.
func DeltaPct(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	return RoundWithTwoDecimalPlace(((current - previous) / previous) * 100)
}
