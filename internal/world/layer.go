package world

import "github.com/annel0/voxel-terrain/internal/world/block"

// Классификация слоёв столбца высотой h (слои y ∈ [0, h)):
//
//	y == h-1     – трава (верхний блок);
//	y >  h-3     – земля;
//	остальное    – камень.
//
// Классификация зависит только от положения y относительно высоты столбца.

// ClassifyLayer возвращает материал блока на слое y в столбце высотой h
func ClassifyLayer(y, h int) block.Material {
	switch {
	case y == h-1:
		return block.Grass
	case y > h-3:
		return block.Dirt
	default:
		return block.Rock
	}
}
