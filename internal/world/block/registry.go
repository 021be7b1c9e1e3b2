package block

import "sort"

var registry = make(map[Material]MaterialBehavior)

// Register добавляет материал в регистр
func Register(id Material, behavior MaterialBehavior) {
	registry[id] = behavior
}

// Get возвращает поведение для указанного материала
func Get(id Material) (MaterialBehavior, bool) {
	behavior, exists := registry[id]
	return behavior, exists
}

// All возвращает зарегистрированные материалы в порядке ID
func All() []MaterialBehavior {
	out := make([]MaterialBehavior, 0, len(registry))
	for _, b := range registry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Material определяет класс материала слоя столбца
type Material uint8

// Константы материалов
const (
	Grass Material = iota + 1 // Верхний слой
	Dirt                      // Подпочва
	Rock                      // Всё, что ниже
)

// String возвращает имя материала из регистра
func (m Material) String() string {
	if b, ok := Get(m); ok {
		return b.Name()
	}
	return "unknown"
}

// MarshalText реализует encoding.TextMarshaler
func (m Material) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
