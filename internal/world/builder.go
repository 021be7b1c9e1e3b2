package world

import (
	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/vec"
)

// BuildWorld обходит сетку width×depth и для каждой ячейки выдаёт столбец
// блоков высотой hf.Height(x, z). Сетка центрируется в начале координат.
// Столбец нулевой высоты не даёт блоков: русло остаётся пустым.
//
// Порядок блоков: по x, затем по z, затем снизу вверх.
// Сетка с неположительным размером даёт пустой мир.
func BuildWorld(width, depth int, hf terrain.HeightField) []Block {
	if width <= 0 || depth <= 0 {
		return nil
	}
	blocks := make([]Block, 0, width*depth*terrain.MaxHeight/2)

	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			h := hf.Height(x, z)
			for y := 0; y < h; y++ {
				grid := vec.Vec3{X: x, Y: y, Z: z}
				blocks = append(blocks, Block{
					Grid:     grid,
					Position: grid.Centered(width, depth),
					Material: ClassifyLayer(y, h),
				})
			}
		}
	}

	return blocks
}
