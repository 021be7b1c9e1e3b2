package vec

import "github.com/go-gl/mathgl/mgl64"

// Vec3 представляет целочисленную координату блока: ячейка (X, Z) и слой Y
type Vec3 struct {
	X int
	Y int
	Z int
}

// Centered переводит координату сетки в мировую позицию:
// сетка width×depth центрируется в начале координат.
func (v Vec3) Centered(width, depth int) mgl64.Vec3 {
	return mgl64.Vec3{
		float64(v.X) - float64(width)/2,
		float64(v.Y),
		float64(v.Z) - float64(depth)/2,
	}
}
