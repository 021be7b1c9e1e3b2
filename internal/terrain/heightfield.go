// Package terrain содержит стратегии поля высот: функции, сопоставляющие
// ячейке сетки (x, z) целую высоту столбца блоков в [0, MaxHeight].
package terrain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/annel0/voxel-terrain/internal/util"
)

// MaxHeight задаёт максимальную высоту столбца блоков
const MaxHeight = 8

// ErrUnknownVariant возвращается при разборе неизвестного имени стратегии
var ErrUnknownVariant = errors.New("unknown height-field variant")

// HeightField возвращает высоту столбца в ячейке (x, z).
// Результат всегда лежит в [0, MaxHeight].
type HeightField interface {
	Height(x, z int) int
}

// HeightFunc позволяет использовать обычную функцию как HeightField
type HeightFunc func(x, z int) int

// Height вызывает f(x, z)
func (f HeightFunc) Height(x, z int) int {
	return f(x, z)
}

// Variant определяет стратегию поля высот
type Variant int

const (
	VariantHill Variant = iota
	VariantValley
	VariantPerlin
)

// String возвращает имя стратегии
func (v Variant) String() string {
	switch v {
	case VariantHill:
		return "hill"
	case VariantValley:
		return "valley"
	case VariantPerlin:
		return "perlin"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// ParseVariant разбирает имя стратегии
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hill", "hills", "":
		return VariantHill, nil
	case "valley", "river":
		return VariantValley, nil
	case "perlin":
		return VariantPerlin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// MarshalText реализует encoding.TextMarshaler (YAML/JSON)
func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText реализует encoding.TextUnmarshaler (YAML/JSON)
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// New создаёт поле высот нужной стратегии.
// Для холмов rng создаётся из seed; depth нужен только долине.
func New(variant Variant, seed int64, depth int) (HeightField, error) {
	switch variant {
	case VariantHill:
		return NewHill(rand.New(rand.NewSource(seed))), nil
	case VariantValley:
		return NewValley(depth), nil
	case VariantPerlin:
		return NewPerlin(util.NewPerlinSource(seed)), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, variant)
	}
}

// quantize обрезает сырую высоту до [0, MaxHeight] и округляет вниз
func quantize(raw float64) int {
	return int(math.Floor(util.Clamp(raw, 0, MaxHeight)))
}
