package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/annel0/voxel-terrain/internal/config"
	"github.com/annel0/voxel-terrain/internal/scene"
	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	opts := options{seed: 5, variant: "valley", width: 50, textures: "-", metrics: "-"}
	set := map[string]bool{"seed": true, "variant": true, "width": true, "textures": true, "metrics": true}

	require.NoError(t, applyFlags(cfg, opts, set))
	assert.Equal(t, int64(5), cfg.World.Seed)
	assert.Equal(t, terrain.VariantValley, cfg.World.Variant)
	assert.Equal(t, 50, cfg.World.Width)
	assert.Equal(t, 16, cfg.World.Depth, "незаданный флаг не трогает конфигурацию")
	assert.False(t, cfg.Textures.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestApplyFlags_Invalid(t *testing.T) {
	cfg := config.Default()
	assert.ErrorIs(t, applyFlags(cfg, options{variant: "lava"}, map[string]bool{"variant": true}), terrain.ErrUnknownVariant)

	cfg = config.Default()
	assert.ErrorIs(t, applyFlags(cfg, options{width: 0}, map[string]bool{"width": true}), config.ErrInvalidConfig)
}

func TestWriteScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	doc := scene.Document{Version: scene.DocumentVersion, Width: 2, Depth: 2}

	require.NoError(t, writeScene(path, doc, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded scene.Document
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, 2, decoded.Width)
}
