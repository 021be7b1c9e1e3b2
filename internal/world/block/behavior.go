package block

// Surface описывает параметры PBR-поверхности материала
type Surface struct {
	Color           uint32  // RGB, 0xRRGGBB
	Roughness       float64 // Шероховатость
	Metalness       float64 // Металличность
	EnvMapIntensity float64 // Интенсивность карты окружения
}

// MaterialBehavior определяет материал слоя блоков
type MaterialBehavior interface {
	ID() Material
	Name() string
	// TextureBase возвращает путь набора текстур без суффикса канала,
	// например "Grass/Grass005_1K-JPG".
	TextureBase() string
	// Textured возвращает параметры поверхности поверх загруженных текстур
	Textured() Surface
	// Fallback возвращает плоский цвет, если текстуры не загрузились
	Fallback() Surface
}
