package world

import "github.com/go-gl/mathgl/mgl64"

// Shape определяет примитив, из которого собираются декорации
type Shape uint8

const (
	ShapeBox Shape = iota
	ShapeCylinder
	ShapeCone
	ShapeSphere
)

// String возвращает имя примитива
func (s Shape) String() string {
	switch s {
	case ShapeBox:
		return "box"
	case ShapeCylinder:
		return "cylinder"
	case ShapeCone:
		return "cone"
	case ShapeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Part описывает примитив внутри сборки. Offset отсчитывается от основания объекта,
// Rotation задаёт углы Эйлера в радианах.
type Part struct {
	Name     string
	Shape    Shape
	Offset   mgl64.Vec3
	Rotation mgl64.Vec3
	Radius   float64 // Радиус сферы, цилиндра или основания конуса
	Height   float64 // Высота цилиндра или конуса
	Color    uint32
}

// Цвета декораций
const (
	colorTrunk   = 0x8B5A2B
	colorFoliage = 0x2E7D32
	colorFur     = 0xD7CCC8
	colorEye     = 0x111111
	colorStem    = 0x33691E
	colorLeaf    = 0x66BB6A
	colorStone   = 0x757575
)

// Assemble возвращает набор примитивов для типа декорации
func Assemble(kind Kind) []Part {
	switch kind {
	case KindTree:
		return treeParts()
	case KindAnimal:
		return animalParts()
	case KindPlant:
		return plantParts()
	case KindRock:
		return rockParts()
	default:
		return nil
	}
}

// treeParts: ствол стоит на основании, крона из двух одинаковых конусов с
// общим центром, повёрнутых на 90° друг относительно друга.
func treeParts() []Part {
	const (
		trunkHeight   = 1.0
		foliageHeight = 1.2
	)
	foliageCenter := mgl64.Vec3{0, trunkHeight + foliageHeight/2, 0}

	return []Part{
		{Name: "trunk", Shape: ShapeCylinder, Offset: mgl64.Vec3{0, trunkHeight / 2, 0}, Radius: 0.15, Height: trunkHeight, Color: colorTrunk},
		{Name: "foliage", Shape: ShapeCone, Offset: foliageCenter, Radius: 0.6, Height: foliageHeight, Color: colorFoliage},
		{Name: "foliage", Shape: ShapeCone, Offset: foliageCenter, Rotation: mgl64.Vec3{0, mgl64.DegToRad(90), 0}, Radius: 0.6, Height: foliageHeight, Color: colorFoliage},
	}
}

func animalParts() []Part {
	return []Part{
		{Name: "body", Shape: ShapeSphere, Offset: mgl64.Vec3{0, 0.3, 0}, Radius: 0.3, Color: colorFur},
		{Name: "head", Shape: ShapeSphere, Offset: mgl64.Vec3{0.3, 0.5, 0}, Radius: 0.18, Color: colorFur},
		{Name: "eye", Shape: ShapeSphere, Offset: mgl64.Vec3{0.45, 0.55, 0.08}, Radius: 0.04, Color: colorEye},
		{Name: "eye", Shape: ShapeSphere, Offset: mgl64.Vec3{0.45, 0.55, -0.08}, Radius: 0.04, Color: colorEye},
	}
}

func plantParts() []Part {
	return []Part{
		{Name: "stem", Shape: ShapeCylinder, Offset: mgl64.Vec3{0, 0.15, 0}, Radius: 0.05, Height: 0.3, Color: colorStem},
		{Name: "leaf", Shape: ShapeSphere, Offset: mgl64.Vec3{0.08, 0.35, 0}, Radius: 0.12, Color: colorLeaf},
		{Name: "leaf", Shape: ShapeSphere, Offset: mgl64.Vec3{-0.08, 0.35, 0}, Radius: 0.12, Color: colorLeaf},
	}
}

// rockParts: камень немного утоплен в поверхность
func rockParts() []Part {
	return []Part{
		{Name: "stone", Shape: ShapeSphere, Offset: mgl64.Vec3{0, 0.2, 0}, Radius: 0.35, Color: colorStone},
	}
}
