package cache

import (
	"context"
	"sync"
	"time"

	"github.com/annel0/voxel-terrain/internal/logging"
	"github.com/annel0/voxel-terrain/internal/world"
)

// MemoryCache реализует WorldCache в памяти процесса.
// Генерация при промахе выполняется под блокировкой, поэтому два
// одновременных запроса одного ключа не строят мир дважды.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]*world.World
	metrics CacheMetrics
	logger  *logging.Logger
}

// NewMemoryCache создаёт пустой кеш
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]*world.World),
		metrics: CacheMetrics{LastUpdate: time.Now()},
		logger:  logging.GetComponentLogger("cache"),
	}
}

// Get возвращает мир по ключу
func (c *MemoryCache) Get(ctx context.Context, key Key) (*world.World, error) {
	if !key.Valid() {
		return nil, ErrInvalidKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	w, ok := c.entries[key.String()]
	c.recordLocked(ok)
	if !ok {
		return nil, ErrCacheMiss
	}
	return w, nil
}

// Set сохраняет мир
func (c *MemoryCache) Set(ctx context.Context, key Key, w *world.World) error {
	if !key.Valid() {
		return ErrInvalidKey
	}
	if w == nil {
		return ErrNilWorld
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key.String()] = w
	c.metrics.TotalKeys = int64(len(c.entries))
	c.metrics.LastUpdate = time.Now()
	return nil
}

// GetOrGenerate возвращает мир из кеша или генерирует его
func (c *MemoryCache) GetOrGenerate(ctx context.Context, key Key, generate GenerateFunc) (*world.World, error) {
	if !key.Valid() {
		return nil, ErrInvalidKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := key.String()
	if w, ok := c.entries[id]; ok {
		c.recordLocked(true)
		return w, nil
	}
	c.recordLocked(false)

	w, err := generate(ctx)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, ErrNilWorld
	}

	c.entries[id] = w
	c.metrics.TotalKeys = int64(len(c.entries))
	c.logger.Debug("Мир сохранён в кеше: %s (%s)", id, key.Canonical())
	return w, nil
}

// Invalidate удаляет мир по ключу. Отсутствие ключа не является ошибкой.
func (c *MemoryCache) Invalidate(ctx context.Context, key Key) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := key.String()
	if _, ok := c.entries[id]; ok {
		delete(c.entries, id)
		c.metrics.Invalidations++
		c.logger.Debug("Ключ %s инвалидирован", id)
	}
	c.metrics.TotalKeys = int64(len(c.entries))
	c.metrics.LastUpdate = time.Now()
	return nil
}

// InvalidateAll очищает кеш
func (c *MemoryCache) InvalidateAll(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.metrics.Invalidations += int64(len(c.entries))
	c.entries = make(map[string]*world.World)
	c.metrics.TotalKeys = 0
	c.metrics.LastUpdate = time.Now()
	return nil
}

// Len возвращает число миров в кеше
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// GetMetrics возвращает снимок метрик
func (c *MemoryCache) GetMetrics() CacheMetrics {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metrics
}

// recordLocked учитывает попадание или промах. Вызывается под c.mu.
func (c *MemoryCache) recordLocked(hit bool) {
	c.metrics.TotalRequests++
	if hit {
		c.metrics.CacheHits++
	} else {
		c.metrics.CacheMisses++
	}
	c.metrics.HitRatio = float64(c.metrics.CacheHits) / float64(c.metrics.TotalRequests)
	c.metrics.LastUpdate = time.Now()
}
