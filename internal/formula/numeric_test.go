package formula_test

import (
	"math"
	"testing"

	"github.com/KirkDiggler/togarashi-bot/internal/formula"
	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{value: 2.9, want: 2},
		{value: -2.9, want: -2},
		{value: 0, want: 0},
		{value: 1e30, want: math.MaxInt},
		{value: math.Pow(2, 63), want: math.MaxInt},
		{value: -1e30, want: math.MinInt},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formula.ToInt(tt.value), "%g", tt.value)
	}
}
