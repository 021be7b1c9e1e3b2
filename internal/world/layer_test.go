package world

import (
	"testing"

	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/stretchr/testify/assert"
)

func TestClassifyLayer(t *testing.T) {
	for _, h := range []int{1, 2, 3, 8} {
		for y := 0; y < h; y++ {
			got := ClassifyLayer(y, h)
			switch {
			case y == h-1:
				assert.Equal(t, block.Grass, got, "h=%d y=%d", h, y)
			case y > h-3:
				assert.Equal(t, block.Dirt, got, "h=%d y=%d", h, y)
			default:
				assert.Equal(t, block.Rock, got, "h=%d y=%d", h, y)
			}
		}
	}
}

func TestClassifyLayer_Columns(t *testing.T) {
	column := func(h int) []block.Material {
		out := make([]block.Material, h)
		for y := 0; y < h; y++ {
			out[y] = ClassifyLayer(y, h)
		}
		return out
	}

	assert.Equal(t, []block.Material{block.Grass}, column(1))
	assert.Equal(t, []block.Material{block.Dirt, block.Grass}, column(2))
	assert.Equal(t, []block.Material{block.Rock, block.Dirt, block.Grass}, column(3))
	assert.Equal(t, []block.Material{
		block.Rock, block.Rock, block.Rock, block.Rock, block.Rock, block.Rock, block.Dirt, block.Grass,
	}, column(8))
}
