package terrain

import (
	"math"
	"math/rand"
)

// Параметры холмистого рельефа
const (
	HillScale     = 0.1 // Масштаб синусоид
	HillAmplitude = 3.0 // Амплитуда холмов
	HillNoiseSpan = 2.0 // Шум равномерен в [0, HillNoiseSpan)
	HillBase      = 4.0 // Базовая высота
)

// Hill — холмы sin·cos с живым шумом.
//
// Каждый вызов Height берёт новое значение из rng, поэтому две выборки одной
// ячейки могут различаться: так рельеф получает "шероховатый" вид. Height не
// является чистой функцией координат. Воспроизводим только проход целиком,
// при одинаковом сиде и одинаковом порядке вызовов.
//
// Hill не безопасен для одновременного использования из нескольких горутин.
type Hill struct {
	rng *rand.Rand
}

// NewHill создаёт холмистое поле высот с внешним источником случайности
func NewHill(rng *rand.Rand) *Hill {
	return &Hill{rng: rng}
}

// Height возвращает floor(clamp(sin(x·s)·cos(z·s)·3 + noise + 4, 0, MaxHeight))
func (h *Hill) Height(x, z int) int {
	wave := math.Sin(float64(x)*HillScale) * math.Cos(float64(z)*HillScale) * HillAmplitude
	noise := h.rng.Float64() * HillNoiseSpan
	return quantize(wave + noise + HillBase)
}
