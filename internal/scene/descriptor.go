package scene

import (
	"fmt"

	"github.com/annel0/voxel-terrain/internal/textures"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/go-gl/mathgl/mgl64"
)

// GeometryKind задаёт тип геометрии для внешнего рендерера
type GeometryKind string

const (
	GeometryBox      GeometryKind = "box"
	GeometryCylinder GeometryKind = "cylinder"
	GeometryCone     GeometryKind = "cone"
	GeometrySphere   GeometryKind = "sphere"
)

// Source указывает, откуда взят описатель
type Source string

const (
	SourceBlock      Source = "block"
	SourceDecoration Source = "decoration"
)

// Geometry описывает примитив и его размеры
type Geometry struct {
	Kind   GeometryKind `json:"kind"`
	Width  float64      `json:"width,omitempty"`
	Height float64      `json:"height,omitempty"`
	Depth  float64      `json:"depth,omitempty"`
	Radius float64      `json:"radius,omitempty"`
}

// MaterialRef ссылается на материал: текстурный или плоский цвет
type MaterialRef struct {
	Name            string                      `json:"name"`
	Textured        bool                        `json:"textured"`
	Fallback        bool                        `json:"fallback,omitempty"`
	Color           string                      `json:"color"`
	Roughness       float64                     `json:"roughness"`
	Metalness       float64                     `json:"metalness"`
	EnvMapIntensity float64                     `json:"env_map_intensity,omitempty"`
	Maps            map[textures.Channel]string `json:"maps,omitempty"`
}

// Descriptor содержит декларативную запись для отрисовки одного примитива.
// Rotation задаётся углами Эйлера в радианах.
type Descriptor struct {
	Key      string      `json:"key"`
	Source   Source      `json:"source"`
	Position mgl64.Vec3  `json:"position"`
	Rotation mgl64.Vec3  `json:"rotation"`
	Scale    mgl64.Vec3  `json:"scale"`
	Geometry Geometry    `json:"geometry"`
	Material MaterialRef `json:"material"`
}

var unitScale = mgl64.Vec3{1, 1, 1}

// Геометрия блока
var unitCube = Geometry{Kind: GeometryBox, Width: 1, Height: 1, Depth: 1}

// hexColor форматирует 0xRRGGBB как "#rrggbb"
func hexColor(c uint32) string {
	return fmt.Sprintf("#%06x", c&0xFFFFFF)
}

// geometryOf переводит примитив декорации в геометрию рендерера
func geometryOf(p world.Part) Geometry {
	switch p.Shape {
	case world.ShapeCylinder:
		return Geometry{Kind: GeometryCylinder, Radius: p.Radius, Height: p.Height}
	case world.ShapeCone:
		return Geometry{Kind: GeometryCone, Radius: p.Radius, Height: p.Height}
	case world.ShapeSphere:
		return Geometry{Kind: GeometrySphere, Radius: p.Radius}
	default:
		return unitCube
	}
}
