package utils

import (
	"math"

	"github.com/cockroachdb/apd/v3"
)

// RoundWithTwoDecimalPlace arredonda valores monetários para duas casas (half-up)
func RoundWithTwoDecimalPlace(f float64) float64 {
	return roundHalfUp(f, 2)
}

// RoundWithOneDecimalPlace arredonda percentuais para uma casa (half-up)
func RoundWithOneDecimalPlace(f float64) float64 {
	return roundHalfUp(f, 1)
}

// RoundToInt arredonda para o inteiro mais próximo, com meio arredondado para cima
func RoundToInt(f float64) int {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return int(math.Floor(f + 0.5))
}

// ClampPercentage limita um percentual ao intervalo [0, 100]
func ClampPercentage(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Percentage calcula part*100/total arredondado e limitado a [0, 100]; total <= 0 resulta em 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}

	return ClampPercentage(RoundToInt(float64(part) * 100 / float64(total)))
}

// roundHalfUp arredonda sobre a representação decimal do float, evitando que 1.005 vire 1.00
func roundHalfUp(f float64, places int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	var d apd.Decimal
	if _, err := d.SetFloat64(f); err != nil {
		return fallbackRound(f, places)
	}

	ctx := apd.BaseContext.WithPrecision(34)
	ctx.Rounding = apd.RoundHalfUp

	var rounded apd.Decimal
	if _, err := ctx.Quantize(&rounded, &d, -places); err != nil {
		return fallbackRound(f, places)
	}

	result, err := rounded.Float64()
	if err != nil {
		return fallbackRound(f, places)
	}

	return result
}

func fallbackRound(f float64, places int32) float64 {
	factor := math.Pow10(int(places))
	return math.Round(f*factor) / factor
}
