package implementations

import "github.com/annel0/voxel-terrain/internal/world/block"

// RockBehavior — нижние слои столбца. Для камня используется набор текстур асфальта.
type RockBehavior struct{}

func (b *RockBehavior) ID() block.Material  { return block.Rock }
func (b *RockBehavior) Name() string        { return "rock" }
func (b *RockBehavior) TextureBase() string { return "Asphalt/Asphalt031_1K-JPG" }

// Textured возвращает параметры камня: он матовее травы и земли
func (b *RockBehavior) Textured() block.Surface {
	return block.Surface{Color: 0xFFFFFF, Roughness: 0.9, Metalness: 0.1, EnvMapIntensity: 1}
}

func (b *RockBehavior) Fallback() block.Surface {
	return block.Surface{Color: 0x808080, Roughness: 0.9, Metalness: 0.1}
}
