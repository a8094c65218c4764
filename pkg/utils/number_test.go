package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.46, RoundWithTwoDecimalPlace(10.456))
	assert.Equal(t, 10.45, RoundWithTwoDecimalPlace(10.454))
	assert.Equal(t, float64(0), RoundWithTwoDecimalPlace(0))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.3333))
}

func TestSafeRatio(t *testing.T) {
	testCases := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{
			name:        "divisão simples arredondada",
			numerator:   10,
			denominator: 3,
			expected:    3.33,
		},
		{
			name:        "denominador zero retorna zero",
			numerator:   10,
			denominator: 0,
			expected:    0,
		},
		{
			name:        "numerador zero é um valor válido",
			numerator:   0,
			denominator: 5,
			expected:    0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SafeRatio(tc.numerator, tc.denominator))
		})
	}
}

func TestDeltaPct(t *testing.T) {
	assert.Equal(t, float64(50), DeltaPct(150, 100))
	assert.Equal(t, float64(-25), DeltaPct(75, 100))
	assert.Equal(t, float64(0), DeltaPct(100, 0))
	assert.Equal(t, float64(0), DeltaPct(100, 100))
}
