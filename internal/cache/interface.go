package cache

import (
	"context"
	"errors"
	"time"

	"github.com/annel0/voxel-terrain/internal/world"
)

// WorldCache хранит сгенерированные миры по ключу параметров генерации.
// Записи не устаревают по времени: они удаляются только явным Invalidate.
//
// Использование:
//
//	key := cache.KeyFor(params)
//	w, err := c.GetOrGenerate(ctx, key, generator.Generate)
//	c.Invalidate(key) // следующий GetOrGenerate сгенерирует мир заново
type WorldCache interface {
	// Get возвращает мир по ключу или ErrCacheMiss.
	Get(ctx context.Context, key Key) (*world.World, error)

	// Set сохраняет мир под ключом.
	Set(ctx context.Context, key Key, w *world.World) error

	// GetOrGenerate возвращает мир из кеша, при промахе вызывает generate
	// и сохраняет результат.
	GetOrGenerate(ctx context.Context, key Key, generate GenerateFunc) (*world.World, error)

	// Invalidate удаляет мир по ключу.
	Invalidate(ctx context.Context, key Key) error

	// InvalidateAll очищает кеш.
	InvalidateAll(ctx context.Context) error

	// Len возвращает число сохранённых миров.
	Len() int

	// GetMetrics возвращает снимок метрик кеша.
	GetMetrics() CacheMetrics
}

// GenerateFunc строит мир при промахе кеша
type GenerateFunc func(ctx context.Context) (*world.World, error)

// CacheMetrics содержит метрики кеша
type CacheMetrics struct {
	TotalRequests int64   `json:"total_requests"`
	CacheHits     int64   `json:"cache_hits"`
	CacheMisses   int64   `json:"cache_misses"`
	HitRatio      float64 `json:"hit_ratio"`
	Invalidations int64   `json:"invalidations"`
	TotalKeys     int64   `json:"total_keys"`

	LastUpdate time.Time `json:"last_update"`
}

// Ошибки кеша
var (
	ErrCacheMiss  = NewCacheError("cache miss")
	ErrInvalidKey = NewCacheError("invalid key")
	ErrNilWorld   = NewCacheError("nil world")
)

// CacheError представляет ошибку кеша.
type CacheError struct {
	Message string
}

func (e *CacheError) Error() string {
	return e.Message
}

func NewCacheError(message string) *CacheError {
	return &CacheError{Message: message}
}

// IsCacheMiss проверяет, является ли ошибка промахом кеша.
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
