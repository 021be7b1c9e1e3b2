package world

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/vec"
	"github.com/go-gl/mathgl/mgl64"
)

// Kind определяет тип декоративного объекта
type Kind uint8

const (
	KindTree Kind = iota
	KindAnimal
	KindPlant
	KindRock
)

// AllKinds перечисляет типы в порядке размещения
var AllKinds = []Kind{KindTree, KindAnimal, KindPlant, KindRock}

// SurfaceOffset задаёт смещение поверхности относительно высоты столбца:
// объект стоит на верхней грани верхнего блока.
const SurfaceOffset = 0.5

// String возвращает имя типа
func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindAnimal:
		return "animal"
	case KindPlant:
		return "plant"
	case KindRock:
		return "rock"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind разбирает имя типа декорации
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tree", "trees":
		return KindTree, nil
	case "animal", "animals":
		return KindAnimal, nil
	case "plant", "plants":
		return KindPlant, nil
	case "rock", "rocks":
		return KindRock, nil
	default:
		return 0, fmt.Errorf("unknown decoration kind %q", s)
	}
}

// MarshalText реализует encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Band сообщает, допустима ли высота поверхности surfaceY для типа
func Band(kind Kind, surfaceY float64) bool {
	switch kind {
	case KindTree:
		return surfaceY >= 1.5
	case KindAnimal:
		return surfaceY >= 0.5 && surfaceY <= 2.5
	case KindPlant:
		return surfaceY >= -0.5 && surfaceY < 1.5
	case KindRock:
		return surfaceY >= -0.5
	default:
		return false
	}
}

// Decoration описывает размещённый декоративный объект
type Decoration struct {
	Kind     Kind
	Cell     vec.Vec2   // Ячейка сетки
	Position mgl64.Vec3 // Основание объекта (верхняя грань столбца)
	Parts    []Part     // Примитивы объекта относительно основания
}

// KindStats содержит счётчики размещения одного типа
type KindStats struct {
	Requested int
	Placed    int
	Rejected  int
}

// PlacementStats содержит статистику размещения по типам
type PlacementStats map[Kind]KindStats

// Placed возвращает общее число размещённых объектов
func (s PlacementStats) Placed() int {
	total := 0
	for _, ks := range s {
		total += ks.Placed
	}
	return total
}

// PlaceDecorations разбрасывает декорации по сетке width×depth.
//
// Для каждого типа делается counts[kind] попыток: случайная ячейка, высота
// поверхности hf.Height(x, z) − 0.5 и проверка полосы типа. Отклонённые
// попытки пропускаются без повтора, поэтому размещается не больше
// запрошенного.
func PlaceDecorations(width, depth int, counts map[Kind]int, hf terrain.HeightField, rng *rand.Rand) ([]Decoration, PlacementStats) {
	stats := make(PlacementStats, len(AllKinds))
	var decorations []Decoration

	if width <= 0 || depth <= 0 {
		return decorations, stats
	}

	for _, kind := range AllKinds {
		n := counts[kind]
		ks := KindStats{Requested: n}

		for i := 0; i < n; i++ {
			x := rng.Intn(width)
			z := rng.Intn(depth)
			surfaceY := float64(hf.Height(x, z)) - SurfaceOffset

			if !Band(kind, surfaceY) {
				ks.Rejected++
				continue
			}

			decorations = append(decorations, Decoration{
				Kind: kind,
				Cell: vec.Vec2{X: x, Z: z},
				Position: mgl64.Vec3{
					float64(x) - float64(width)/2,
					surfaceY,
					float64(z) - float64(depth)/2,
				},
				Parts: Assemble(kind),
			})
			ks.Placed++
		}

		stats[kind] = ks
	}

	return decorations, stats
}
