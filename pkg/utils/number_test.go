package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		expected    float64
	}{
		{name: "divisão normal", numerator: 10, denominator: 4, expected: 2.5},
		{name: "divisor zero", numerator: 10, denominator: 0, expected: 0},
		{name: "zero sobre zero", numerator: 0, denominator: 0, expected: 0},
		{name: "numerador NaN", numerator: math.NaN(), denominator: 2, expected: 0},
		{name: "numerador infinito", numerator: math.Inf(1), denominator: 2, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeDivide(tt.numerator, tt.denominator))
		})
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 13.1, Percentage(83, 635))
	assert.Equal(t, 0.0, Percentage(5, 0))
	assert.Equal(t, 100.0, Percentage(3, 3))
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	assert.Equal(t, 127.0, RoundWithOneDecimalPlace(127))
	assert.Equal(t, 16.6, RoundWithOneDecimalPlace(16.6))
	assert.Equal(t, 12.5, RoundWithOneDecimalPlace(12.45000001))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("")
	assert.NoError(t, err)
	assert.Nil(t, date)

	date, err = ParseDate("2024-01-05")
	assert.NoError(t, err)
	if assert.NotNil(t, date) {
		assert.Equal(t, "2024-01-05", date.Format("2006-01-02"))
	}

	_, err = ParseDate("05/01/2024")
	assert.Error(t, err)
}
