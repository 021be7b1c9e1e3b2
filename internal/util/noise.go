package util

import (
	"github.com/aquilax/go-perlin"
)

// Параметры шума Перлина
const (
	PerlinAlpha   = 2.0 // Сглаживание шума
	PerlinBeta    = 2.0 // Частота шума
	PerlinOctaves = 3   // Количество октав
)

// PerlinSource генерирует шум Перлина, привязанный к сиду.
// В отличие от глобального генератора каждый источник независим.
type PerlinSource struct {
	noise *perlin.Perlin
}

// NewPerlinSource создаёт генератор шума с указанным сидом
func NewPerlinSource(seed int64) *PerlinSource {
	return &PerlinSource{
		noise: perlin.NewPerlin(PerlinAlpha, PerlinBeta, PerlinOctaves, seed),
	}
}

// Noise2D возвращает значение шума для координат, приведённое к диапазону [0, 1]
func (p *PerlinSource) Noise2D(x, y float64) float64 {
	n := (p.noise.Noise2D(x, y) + 1.0) / 2.0
	return Clamp(n, 0, 1)
}

// Clamp ограничивает значение отрезком [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
