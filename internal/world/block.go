package world

import (
	"github.com/annel0/voxel-terrain/internal/vec"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/go-gl/mathgl/mgl64"

	// Регистрируем материалы слоёв
	_ "github.com/annel0/voxel-terrain/internal/world/block/implementations"
)

// Block описывает блок для отрисовки. Блоки создаются при генерации и
// никогда не изменяются.
type Block struct {
	Grid     vec.Vec3       // Ячейка сетки (X, Z) и слой Y
	Position mgl64.Vec3     // Мировая позиция центра куба
	Material block.Material // Класс материала слоя
}
