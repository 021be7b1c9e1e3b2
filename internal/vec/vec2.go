package vec

// Vec2 представляет координату ячейки сетки (x, z)
type Vec2 struct {
	X, Z int
}
