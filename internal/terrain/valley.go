package terrain

import "math"

// Параметры долины с рекой
const (
	ValleySlope     = 0.2 // Подъём на единицу расстояния от русла
	RiverWidth      = 3.0 // Ширина плоского русла
	ValleyWaveScale = 0.1 // Масштаб синусоид рельефа
	ValleyWaveAmp   = 0.5 // Амплитуда каждой синусоиды
	ValleyBase      = 1.0 // Базовая высота над дном
)

// Valley — детерминированная долина: высота растёт с расстоянием от реки,
// которая проходит вдоль оси X по центру сетки (z = depth/2).
type Valley struct {
	center float64
}

// NewValley создаёт долину для сетки глубиной depth
func NewValley(depth int) *Valley {
	return &Valley{center: float64(depth) / 2}
}

// RiverBase возвращает вклад расстояния до русла без рельефа и базы.
// Внутри русла (|z − depth/2| < RiverWidth/2) вклад равен нулю.
func (v *Valley) RiverBase(z int) float64 {
	d := math.Abs(float64(z) - v.center)
	if d < RiverWidth/2 {
		return 0
	}
	return d * ValleySlope
}

// InChannel сообщает, лежит ли строка z в русле реки
func (v *Valley) InChannel(z int) bool {
	return math.Abs(float64(z)-v.center) < RiverWidth/2
}

// Height возвращает высоту столбца. Русло всегда пустое: столбцы в нём имеют
// высоту 0, иначе рельеф и база подняли бы дно до одного блока.
func (v *Valley) Height(x, z int) int {
	if v.InChannel(z) {
		return 0
	}
	raw := v.RiverBase(z) +
		math.Sin(float64(x)*ValleyWaveScale)*ValleyWaveAmp +
		math.Sin(float64(z)*ValleyWaveScale)*ValleyWaveAmp +
		ValleyBase
	return quantize(raw)
}
