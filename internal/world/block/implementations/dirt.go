package implementations

import "github.com/annel0/voxel-terrain/internal/world/block"

// DirtBehavior — слой земли под травой
type DirtBehavior struct{}

func (b *DirtBehavior) ID() block.Material  { return block.Dirt }
func (b *DirtBehavior) Name() string        { return "dirt" }
func (b *DirtBehavior) TextureBase() string { return "Ground/Ground085_1K-JPG" }

func (b *DirtBehavior) Textured() block.Surface {
	return block.Surface{Color: 0xFFFFFF, Roughness: 0.8, Metalness: 0.2, EnvMapIntensity: 1}
}

func (b *DirtBehavior) Fallback() block.Surface {
	return block.Surface{Color: 0x8B4513, Roughness: 0.8, Metalness: 0.2}
}
