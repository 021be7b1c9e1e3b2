package terrain

import "github.com/annel0/voxel-terrain/internal/util"

// PerlinScale задаёт масштаб координат для шума Перлина
const PerlinScale = 0.08

// Perlin строит детерминированный рельеф на шуме Перлина: при одном сиде одна и та
// же ячейка всегда получает одну и ту же высоту.
type Perlin struct {
	source *util.PerlinSource
}

// NewPerlin создаёт поле высот на основе источника шума
func NewPerlin(source *util.PerlinSource) *Perlin {
	return &Perlin{source: source}
}

// Height отображает шум [0, 1] на [0, MaxHeight]
func (p *Perlin) Height(x, z int) int {
	n := p.source.Noise2D(float64(x)*PerlinScale, float64(z)*PerlinScale)
	return quantize(n * MaxHeight)
}
