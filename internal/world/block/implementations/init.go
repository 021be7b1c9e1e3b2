package implementations

import "github.com/annel0/voxel-terrain/internal/world/block"

// Регистрируем все материалы при импорте пакета
func init() {
	block.Register(block.Grass, &GrassBehavior{})
	block.Register(block.Dirt, &DirtBehavior{})
	block.Register(block.Rock, &RockBehavior{})
}
