package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "inteiro", input: 10, expected: 10},
		{name: "meio exato na representação decimal", input: 1.005, expected: 1.01},
		{name: "trunca para baixo", input: 12.344, expected: 12.34},
		{name: "soma com erro de ponto flutuante", input: 0.1 + 0.2, expected: 0.3},
		{name: "NaN vira zero", input: math.NaN(), expected: 0},
		{name: "meio sobe mesmo sem representação binária exata", input: 2.675, expected: 2.68},
		{name: "meio negativo afasta do zero", input: -0.005, expected: -0.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundWithTwoDecimalPlace(tt.input))
		})
	}
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 33.3, RoundWithOneDecimalPlace(100.0/3))
	assert.Equal(t, 66.7, RoundWithOneDecimalPlace(66.65))
	assert.Equal(t, 100.0, RoundWithOneDecimalPlace(100))
	assert.Equal(t, -12.5, RoundWithOneDecimalPlace(-12.46))
	assert.Equal(t, -12.3, RoundWithOneDecimalPlace(-12.25), "meio negativo afasta do zero")
	assert.Equal(t, -0.1, RoundWithOneDecimalPlace(-0.05))
}

func TestRoundToInt(t *testing.T) {
	assert.Equal(t, 60, RoundToInt(60))
	assert.Equal(t, 1, RoundToInt(0.5))
	assert.Equal(t, 33, RoundToInt(33.49))
	assert.Equal(t, 0, RoundToInt(math.Inf(1)))
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 60, Percentage(6, 10))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 100, Percentage(15, 10), "percentual acima de 100 deve ser limitado")
	assert.Equal(t, 0, Percentage(-3, 10), "percentual negativo deve ser limitado")
	assert.Equal(t, 33, Percentage(1, 3))
}
