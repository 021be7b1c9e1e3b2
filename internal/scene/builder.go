package scene

import (
	"fmt"

	"github.com/annel0/voxel-terrain/internal/textures"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/annel0/voxel-terrain/internal/world/block"
)

// Параметры поверхности декораций
const (
	decorationRoughness = 0.8
	decorationMetalness = 0.0
)

// TextureSource отдаёт построителю состояние загрузки текстур
type TextureSource interface {
	Ready() bool
	Textures(material block.Material) (map[textures.Channel]textures.Texture, bool)
}

// Build превращает мир в упорядоченную последовательность описателей:
// сначала блоки в порядке мира, затем примитивы декораций.
//
// Текстуры читаются в момент вызова. Материал получает текстуры, только если
// загрузка завершена (Ready) и его набор загрузился; иначе используется
// запасной плоский цвет. tex может быть nil.
func Build(w *world.World, tex TextureSource) []Descriptor {
	if w == nil {
		return nil
	}

	materials := resolveMaterials(tex)

	parts := 0
	for _, d := range w.Decorations {
		parts += len(d.Parts)
	}
	out := make([]Descriptor, 0, len(w.Blocks)+parts)

	for _, b := range w.Blocks {
		out = append(out, Descriptor{
			Key:      fmt.Sprintf("%d-%d-%d", b.Grid.X, b.Grid.Y, b.Grid.Z),
			Source:   SourceBlock,
			Position: b.Position,
			Scale:    unitScale,
			Geometry: unitCube,
			Material: materials[b.Material],
		})
	}

	for i, d := range w.Decorations {
		for j, p := range d.Parts {
			out = append(out, Descriptor{
				Key:      fmt.Sprintf("%s-%d-%s-%d", d.Kind, i, p.Name, j),
				Source:   SourceDecoration,
				Position: d.Position.Add(p.Offset),
				Rotation: p.Rotation,
				Scale:    unitScale,
				Geometry: geometryOf(p),
				Material: MaterialRef{
					Name:      p.Name,
					Color:     hexColor(p.Color),
					Roughness: decorationRoughness,
					Metalness: decorationMetalness,
				},
			})
		}
	}

	return out
}

// resolveMaterials выбирает для каждого материала текстуры или запасной цвет
func resolveMaterials(tex TextureSource) map[block.Material]MaterialRef {
	ready := tex != nil && tex.Ready()
	refs := make(map[block.Material]MaterialRef, 3)

	for _, b := range block.All() {
		if ready {
			if loaded, ok := tex.Textures(b.ID()); ok {
				refs[b.ID()] = texturedRef(b, loaded)
				continue
			}
		}
		refs[b.ID()] = fallbackRef(b)
	}
	return refs
}

func texturedRef(b block.MaterialBehavior, loaded map[textures.Channel]textures.Texture) MaterialRef {
	s := b.Textured()
	maps := make(map[textures.Channel]string, len(loaded))
	for ch, t := range loaded {
		maps[ch] = t.Path
	}
	return MaterialRef{
		Name:            b.Name(),
		Textured:        true,
		Color:           hexColor(s.Color),
		Roughness:       s.Roughness,
		Metalness:       s.Metalness,
		EnvMapIntensity: s.EnvMapIntensity,
		Maps:            maps,
	}
}

func fallbackRef(b block.MaterialBehavior) MaterialRef {
	s := b.Fallback()
	return MaterialRef{
		Name:      b.Name(),
		Fallback:  true,
		Color:     hexColor(s.Color),
		Roughness: s.Roughness,
		Metalness: s.Metalness,
	}
}

// Counts возвращает число описателей по источникам
func Counts(descs []Descriptor) map[Source]int {
	out := make(map[Source]int, 2)
	for _, d := range descs {
		out[d.Source]++
	}
	return out
}
