package implementations

import (
	"testing"

	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllMaterialsRegistered(t *testing.T) {
	all := block.All()
	require.Len(t, all, 3)
	assert.Equal(t, block.Grass, all[0].ID())
	assert.Equal(t, block.Dirt, all[1].ID())
	assert.Equal(t, block.Rock, all[2].ID())

	_, ok := block.Get(block.Material(0))
	assert.False(t, ok)
	assert.Equal(t, "unknown", block.Material(0).String())
	assert.Equal(t, "grass", block.Grass.String())
}

func TestFallbackSurfaces(t *testing.T) {
	tests := []struct {
		material  block.Material
		color     uint32
		roughness float64
		metalness float64
	}{
		{block.Grass, 0x4CAF50, 0.8, 0.2},
		{block.Dirt, 0x8B4513, 0.8, 0.2},
		{block.Rock, 0x808080, 0.9, 0.1},
	}
	for _, tt := range tests {
		b, ok := block.Get(tt.material)
		require.True(t, ok)
		fb := b.Fallback()
		assert.Equal(t, tt.color, fb.Color, tt.material.String())
		assert.Equal(t, tt.roughness, fb.Roughness)
		assert.Equal(t, tt.metalness, fb.Metalness)
		assert.Equal(t, tt.roughness, b.Textured().Roughness)
		assert.Equal(t, 1.0, b.Textured().EnvMapIntensity)
	}
}
