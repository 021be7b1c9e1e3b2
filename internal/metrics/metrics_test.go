package metrics

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics(t *testing.T) (*GenerationMetrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := NewGenerationMetrics(reg)
	require.NoError(t, err)
	return m, reg
}

func TestObserveWorld(t *testing.T) {
	m, _ := newMetrics(t)

	params := world.DefaultParams()
	params.Variant = terrain.VariantValley
	w, err := world.NewWorldGenerator(params).Generate(context.Background())
	require.NoError(t, err)

	m.ObserveWorld(w)
	m.ObserveWorld(nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.worlds))

	counts := w.MaterialCounts()
	assert.Equal(t, float64(counts[block.Grass]), testutil.ToFloat64(m.blocks.WithLabelValues("grass")))
	assert.Equal(t, float64(counts[block.Rock]), testutil.ToFloat64(m.blocks.WithLabelValues("rock")))

	trees := w.Stats[world.KindTree]
	assert.Equal(t, float64(trees.Placed), testutil.ToFloat64(m.decorationsPlaced.WithLabelValues("tree")))
	assert.Equal(t, float64(trees.Rejected), testutil.ToFloat64(m.decorationsRejected.WithLabelValues("tree")))
}

func TestTextureAndCacheCounters(t *testing.T) {
	m, _ := newMetrics(t)

	m.TextureFailed(block.Dirt, errors.New("нет файла"))
	m.TextureFailed(block.Dirt, errors.New("нет файла"))
	m.ObserveCache(true)
	m.ObserveCache(false)
	m.ObserveCache(false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.textureFailures.WithLabelValues("dirt")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cacheHits))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.cacheMisses))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *GenerationMetrics
	assert.NotPanics(t, func() {
		m.ObserveWorld(&world.World{})
		m.TextureFailed(block.Grass, nil)
		m.ObserveCache(true)
	})
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewGenerationMetrics(reg)
	require.NoError(t, err)

	_, err = NewGenerationMetrics(reg)
	assert.Error(t, err)
}

func TestWriteText(t *testing.T) {
	m, reg := newMetrics(t)
	m.ObserveCache(true)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, reg))
	assert.Contains(t, buf.String(), "voxelgen_cache_hits_total 1")
	assert.Contains(t, buf.String(), "# TYPE voxelgen_worlds_generated_total counter")
}
