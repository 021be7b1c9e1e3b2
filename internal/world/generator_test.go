package world

import (
	"context"
	"testing"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorldGenerator_Generate(t *testing.T) {
	params := DefaultParams()
	params.Seed = 12345

	w, err := NewWorldGenerator(params).Generate(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, w.Blocks)
	assert.Equal(t, params.Width, w.Params.Width)
	assert.NotEqual(t, uuid.Nil, w.ID)
	assert.False(t, w.GeneratedAt.IsZero())

	counts := w.MaterialCounts()
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(w.Blocks), total)
	assert.Equal(t, len(w.Decorations), w.Stats.Placed())

	for _, kind := range AllKinds {
		assert.LessOrEqual(t, len(w.DecorationsOf(kind)), params.Decorations[kind])
	}
}

func TestWorldGenerator_ReproducibleBySeed(t *testing.T) {
	for _, variant := range []terrain.Variant{terrain.VariantHill, terrain.VariantValley, terrain.VariantPerlin} {
		params := DefaultParams()
		params.Variant = variant
		params.Seed = 777

		a, err := NewWorldGenerator(params).Generate(context.Background())
		require.NoError(t, err)
		b, err := NewWorldGenerator(params).Generate(context.Background())
		require.NoError(t, err)

		assert.Equal(t, a.Blocks, b.Blocks, variant.String())
		assert.Equal(t, a.Decorations, b.Decorations, variant.String())
		assert.NotEqual(t, a.ID, b.ID, "каждый проход получает свой ID")
	}
}

func TestWorldGenerator_ParamsAreCopied(t *testing.T) {
	params := DefaultParams()
	wg := NewWorldGenerator(params)
	params.Decorations[KindTree] = 1000

	assert.Equal(t, 10, wg.Params().Decorations[KindTree])
}

func TestWorldGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWorldGenerator(DefaultParams()).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorldGenerator_UnknownVariant(t *testing.T) {
	params := DefaultParams()
	params.Variant = terrain.Variant(9)

	_, err := NewWorldGenerator(params).Generate(context.Background())
	assert.ErrorIs(t, err, terrain.ErrUnknownVariant)
}

func TestWorldGenerator_NegativeWidthGivesEmptyWorld(t *testing.T) {
	params := DefaultParams()
	params.Width = -4

	w, err := NewWorldGenerator(params).Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, w.Blocks)
	assert.Empty(t, w.Decorations)
	assert.Zero(t, w.Stats.Placed())
}
