package terrain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHill_Bounds(t *testing.T) {
	hill := NewHill(rand.New(rand.NewSource(1)))

	// Несколько проходов по одной сетке: шум меняется, границы нет
	for pass := 0; pass < 5; pass++ {
		for x := 0; x < 64; x++ {
			for z := 0; z < 64; z++ {
				h := hill.Height(x, z)
				require.GreaterOrEqual(t, h, 0)
				require.LessOrEqual(t, h, MaxHeight)
			}
		}
	}
}

func TestHill_NotPure(t *testing.T) {
	hill := NewHill(rand.New(rand.NewSource(7)))

	// sin(0)·cos(0) = 0, значит высота в (0,0) равна floor(4 + noise) ∈ {4, 5}.
	// За много выборок должны встретиться оба значения.
	seen := map[int]bool{}
	for i := 0; i < 200; i++ {
		h := hill.Height(0, 0)
		assert.Contains(t, []int{4, 5}, h)
		seen[h] = true
	}
	assert.Len(t, seen, 2, "повторные вызовы для одной ячейки должны различаться")
}

func TestHill_ReproducibleBySeed(t *testing.T) {
	a := NewHill(rand.New(rand.NewSource(99)))
	b := NewHill(rand.New(rand.NewSource(99)))

	for x := 0; x < 16; x++ {
		for z := 0; z < 16; z++ {
			assert.Equal(t, a.Height(x, z), b.Height(x, z))
		}
	}
}

func TestValley_PureAndBounded(t *testing.T) {
	valley := NewValley(50)

	for x := 0; x < 50; x++ {
		for z := 0; z < 50; z++ {
			h := valley.Height(x, z)
			assert.Equal(t, h, valley.Height(x, z), "долина должна быть чистой функцией")
			assert.GreaterOrEqual(t, h, 0)
			assert.LessOrEqual(t, h, MaxHeight)
		}
	}
}

func TestValley_RiverChannel(t *testing.T) {
	valley := NewValley(50)

	for z := 0; z < 50; z++ {
		d := float64(z) - 25
		if d < 0 {
			d = -d
		}
		if d < RiverWidth/2 {
			assert.Zero(t, valley.RiverBase(z), "z=%d лежит в русле", z)
			assert.True(t, valley.InChannel(z))
			for x := 0; x < 50; x++ {
				assert.Zero(t, valley.Height(x, z))
			}
		} else {
			assert.InDelta(t, d*ValleySlope, valley.RiverBase(z), 1e-9)
			assert.False(t, valley.InChannel(z))
		}
	}
}

func TestValley_RisesAwayFromRiver(t *testing.T) {
	valley := NewValley(50)

	// На краю сетки база 25·0.2 = 5, плюс рельеф и 1, заметно выше берега
	assert.Greater(t, valley.Height(0, 0), valley.Height(0, 23))
	assert.GreaterOrEqual(t, valley.Height(10, 49), 5)
}

func TestPerlin_Deterministic(t *testing.T) {
	a, err := New(VariantPerlin, 5, 16)
	require.NoError(t, err)
	b, err := New(VariantPerlin, 5, 16)
	require.NoError(t, err)

	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			h := a.Height(x, z)
			assert.Equal(t, h, a.Height(x, z))
			assert.Equal(t, h, b.Height(x, z))
			assert.GreaterOrEqual(t, h, 0)
			assert.LessOrEqual(t, h, MaxHeight)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in   string
		want Variant
	}{
		{"hill", VariantHill},
		{"Valley", VariantValley},
		{"river", VariantValley},
		{" perlin ", VariantPerlin},
	}
	for _, tt := range tests {
		got, err := ParseVariant(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseVariant("mountains")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = New(Variant(42), 1, 16)
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestVariant_TextRoundTrip(t *testing.T) {
	var v Variant
	require.NoError(t, v.UnmarshalText([]byte("valley")))
	assert.Equal(t, VariantValley, v)

	text, err := VariantPerlin.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "perlin", string(text))
}

func TestHeightFunc(t *testing.T) {
	var hf HeightField = HeightFunc(func(x, z int) int { return x + z })
	assert.Equal(t, 5, hf.Height(2, 3))
}
