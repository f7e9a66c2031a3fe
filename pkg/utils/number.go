package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundHalfUp arredonda para o inteiro mais próximo, com .5 sempre para cima (2.5 -> 3, -2.5 -> -2)
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

// FormatPct formata uma razão como porcentagem com duas casas (0.1234 -> "12.34%")
func FormatPct(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 2, 64) + "%"
}

// FormatFixed formata com uma quantidade fixa de casas decimais
func FormatFixed(f float64, decimals int) string {
	return strconv.FormatFloat(f, 'f', decimals, 64)
}
