package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerlinSource_DeterministicAndBounded(t *testing.T) {
	a := NewPerlinSource(42)
	b := NewPerlinSource(42)

	for x := 0; x < 20; x++ {
		for y := 0; y < 20; y++ {
			fx, fy := float64(x)*0.13, float64(y)*0.13
			va := a.Noise2D(fx, fy)
			assert.Equal(t, va, b.Noise2D(fx, fy), "одинаковый сид должен давать одинаковый шум")
			assert.GreaterOrEqual(t, va, 0.0)
			assert.LessOrEqual(t, va, 1.0)
		}
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 8))
	assert.Equal(t, 8.0, Clamp(11.2, 0, 8))
	assert.Equal(t, 4.5, Clamp(4.5, 0, 8))
}
