package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/annel0/voxel-terrain/internal/cache"
	"github.com/annel0/voxel-terrain/internal/logging"
	"github.com/annel0/voxel-terrain/internal/metrics"
	"github.com/annel0/voxel-terrain/internal/scene"
	"github.com/annel0/voxel-terrain/internal/textures"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/annel0/voxel-terrain/internal/world/block"
)

// Session связывает генератор, кеш миров, загрузчик текстур и метрики.
//
// Мир строится один раз на набор параметров и затем берётся из кеша.
// Текстуры грузятся асинхронно; каждый вызов Scene читает их текущее
// состояние, поэтому материалы переходят с запасного цвета на текстуры
// при первом Scene после завершения загрузки.
type Session struct {
	mu          sync.Mutex
	params      world.Params
	generator   *world.WorldGenerator
	cache       cache.WorldCache
	loader      *textures.Loader
	metrics     *metrics.GenerationMetrics
	textureRoot string
	concurrency int
	logger      *logging.Logger
}

// Option настраивает Session
type Option func(*Session)

// WithCache подменяет кеш миров (по умолчанию MemoryCache)
func WithCache(c cache.WorldCache) Option {
	return func(s *Session) { s.cache = c }
}

// WithMetrics подключает Prometheus-метрики
func WithMetrics(m *metrics.GenerationMetrics) Option {
	return func(s *Session) { s.metrics = m }
}

// WithTextureRoot задаёт каталог с наборами текстур
func WithTextureRoot(root string) Option {
	return func(s *Session) { s.textureRoot = root }
}

// WithTextureConcurrency ограничивает число параллельно загружаемых материалов
func WithTextureConcurrency(n int) Option {
	return func(s *Session) { s.concurrency = n }
}

// NewSession создаёт сессию с указанными параметрами мира
func NewSession(params world.Params, opts ...Option) *Session {
	s := &Session{
		params:      params.Clone(),
		textureRoot: "textures",
		logger:      logging.GetSceneLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.cache == nil {
		s.cache = cache.NewMemoryCache()
	}
	s.generator = world.NewWorldGenerator(s.params)
	s.loader = textures.NewLoader(
		textures.WithConcurrency(s.concurrency),
		textures.WithFailureHook(s.metrics.TextureFailed),
	)
	return s
}

// Params возвращает текущие параметры
func (s *Session) Params() world.Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.params.Clone()
}

// SetParams переключает сессию на другой набор параметров.
// Миры прежних параметров остаются в кеше.
func (s *Session) SetParams(params world.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.params = params.Clone()
	s.generator = world.NewWorldGenerator(s.params)
	s.logger.Debug("Параметры сессии: %s", cache.KeyFor(s.params).Canonical())
}

// World возвращает мир текущих параметров, генерируя его только при промахе кеша
func (s *Session) World(ctx context.Context) (*world.World, error) {
	s.mu.Lock()
	key := cache.KeyFor(s.params)
	gen := s.generator
	s.mu.Unlock()

	generated := false
	w, err := s.cache.GetOrGenerate(ctx, key, func(ctx context.Context) (*world.World, error) {
		generated = true
		w, err := gen.Generate(ctx)
		if err != nil {
			return nil, err
		}
		s.metrics.ObserveWorld(w)
		return w, nil
	})
	if err != nil {
		return nil, fmt.Errorf("генерация мира %s: %w", key, err)
	}

	s.metrics.ObserveCache(!generated)
	return w, nil
}

// Scene возвращает мир и его дескрипторы отрисовки
func (s *Session) Scene(ctx context.Context) (*world.World, []scene.Descriptor, error) {
	w, err := s.World(ctx)
	if err != nil {
		return nil, nil, err
	}

	descs := scene.Build(w, s.loader)
	counts := scene.Counts(descs)
	s.logger.Debug("Сцена: блоков=%d, деталей декораций=%d, текстуры готовы=%v",
		counts[scene.SourceBlock], counts[scene.SourceDecoration], s.loader.Ready())
	return w, descs, nil
}

// Regenerate сбрасывает мир текущих параметров и строит сцену заново
func (s *Session) Regenerate(ctx context.Context) (*world.World, []scene.Descriptor, error) {
	s.mu.Lock()
	key := cache.KeyFor(s.params)
	s.mu.Unlock()

	if err := s.cache.Invalidate(ctx, key); err != nil {
		return nil, nil, fmt.Errorf("инвалидация %s: %w", key, err)
	}
	return s.Scene(ctx)
}

// LoadTextures запускает фоновую загрузку текстур всех материалов.
// Канал закрывается, когда загрузка завершена.
func (s *Session) LoadTextures(ctx context.Context) <-chan struct{} {
	s.mu.Lock()
	root := s.textureRoot
	s.mu.Unlock()

	s.logger.Info("Загрузка текстур из %s", root)
	return s.loader.Start(ctx, textures.DefaultSet(root))
}

// TexturesReady сообщает, завершена ли загрузка текстур
func (s *Session) TexturesReady() bool {
	return s.loader.Ready()
}

// TextureStatus возвращает состояние текстур материала
func (s *Session) TextureStatus(m block.Material) textures.State {
	return s.loader.Status(m)
}

// TextureErrors возвращает сообщения об ошибках загрузки по материалам
func (s *Session) TextureErrors() map[block.Material]string {
	return s.loader.Errors()
}

// CacheMetrics возвращает снимок метрик кеша
func (s *Session) CacheMetrics() cache.CacheMetrics {
	return s.cache.GetMetrics()
}
