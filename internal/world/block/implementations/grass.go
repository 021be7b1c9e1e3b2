package implementations

import "github.com/annel0/voxel-terrain/internal/world/block"

// GrassBehavior — верхний слой столбца
type GrassBehavior struct{}

func (b *GrassBehavior) ID() block.Material  { return block.Grass }
func (b *GrassBehavior) Name() string        { return "grass" }
func (b *GrassBehavior) TextureBase() string { return "Grass/Grass005_1K-JPG" }

// Textured возвращает параметры травы поверх текстур
func (b *GrassBehavior) Textured() block.Surface {
	return block.Surface{Color: 0xFFFFFF, Roughness: 0.8, Metalness: 0.2, EnvMapIntensity: 1}
}

// Fallback возвращает зелёный цвет травы
func (b *GrassBehavior) Fallback() block.Surface {
	return block.Surface{Color: 0x4CAF50, Roughness: 0.8, Metalness: 0.2}
}
