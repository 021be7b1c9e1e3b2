package cache

import (
	"fmt"
	"strings"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/zeebo/xxh3"
)

// Key собирает в ключ кеша все параметры, от которых зависит результат генерации
type Key struct {
	Width       int
	Depth       int
	Seed        int64
	Variant     terrain.Variant
	Decorations [4]int // Попытки по типам в порядке world.AllKinds
}

// KeyFor строит ключ из параметров генерации
func KeyFor(p world.Params) Key {
	k := Key{
		Width:   p.Width,
		Depth:   p.Depth,
		Seed:    p.Seed,
		Variant: p.Variant,
	}
	for i, kind := range world.AllKinds {
		k.Decorations[i] = p.Decorations[kind]
	}
	return k
}

// Canonical возвращает каноническую строку параметров
func (k Key) Canonical() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "w=%d;d=%d;seed=%d;variant=%s", k.Width, k.Depth, k.Seed, k.Variant)
	for i, kind := range world.AllKinds {
		fmt.Fprintf(&sb, ";%s=%d", kind, k.Decorations[i])
	}
	return sb.String()
}

// String возвращает короткий ключ вида "world:<xxh3>"
func (k Key) String() string {
	return fmt.Sprintf("world:%016x", xxh3.HashString(k.Canonical()))
}

// Valid проверяет, что ключ описывает непустую сетку
func (k Key) Valid() bool {
	return k.Width > 0 && k.Depth > 0
}
