package world

import (
	"time"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/google/uuid"
)

// Params содержит параметры генерации мира
type Params struct {
	Width       int
	Depth       int
	Seed        int64
	Variant     terrain.Variant
	Decorations map[Kind]int // Число попыток размещения по типам
}

// DefaultParams возвращает параметры одного чанка 16×16 с холмами
func DefaultParams() Params {
	return Params{
		Width:   16,
		Depth:   16,
		Seed:    1,
		Variant: terrain.VariantHill,
		Decorations: map[Kind]int{
			KindTree:   10,
			KindAnimal: 5,
			KindPlant:  15,
			KindRock:   8,
		},
	}
}

// Clone возвращает копию параметров с собственной картой декораций
func (p Params) Clone() Params {
	out := p
	out.Decorations = make(map[Kind]int, len(p.Decorations))
	for k, v := range p.Decorations {
		out.Decorations[k] = v
	}
	return out
}

// World хранит результат одного прохода генерации. Мир создаётся целиком и
// после этого только читается.
type World struct {
	ID          uuid.UUID
	Params      Params
	Blocks      []Block
	Decorations []Decoration
	Stats       PlacementStats
	GeneratedAt time.Time
}

// MaterialCounts возвращает число блоков каждого материала
func (w *World) MaterialCounts() map[block.Material]int {
	counts := make(map[block.Material]int, 3)
	for _, b := range w.Blocks {
		counts[b.Material]++
	}
	return counts
}

// DecorationsOf возвращает декорации указанного типа
func (w *World) DecorationsOf(kind Kind) []Decoration {
	var out []Decoration
	for _, d := range w.Decorations {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
