package textures

import (
	"context"
	"fmt"
	"image"
	"os"
	"sync"
	"sync/atomic"

	// Декодеры форматов для image.DecodeConfig
	_ "image/jpeg"
	_ "image/png"

	"github.com/annel0/voxel-terrain/internal/logging"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"golang.org/x/sync/errgroup"
)

// State описывает состояние текстур материала
type State uint8

const (
	StatePending State = iota // Загрузка не завершена
	StateLoaded               // Все каналы загружены
	StateFailed               // Хотя бы один канал не загрузился: используется запасной цвет
)

// String возвращает имя состояния
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Texture описывает проверенный файл текстуры
type Texture struct {
	Path   string `json:"path"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// FailureFunc вызывается при ошибке загрузки текстур материала
type FailureFunc func(material block.Material, err error)

// Loader загружает текстуры материалов независимо друг от друга.
// Ошибка одного материала не прерывает остальные: она записывается, и
// материал переходит на запасной плоский цвет. Когда все загрузки
// завершены, Ready() возвращает true.
type Loader struct {
	mu     sync.RWMutex
	states map[block.Material]State
	loaded map[block.Material]map[Channel]Texture
	errors map[block.Material]string
	ready  atomic.Bool
	limit  int
	onFail FailureFunc
	logger *logging.Logger
}

// Option настраивает Loader
type Option func(*Loader)

// WithConcurrency ограничивает число одновременно загружаемых материалов
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.limit = n
		}
	}
}

// WithFailureHook задаёт обработчик ошибок загрузки (например, для метрик)
func WithFailureHook(fn FailureFunc) Option {
	return func(l *Loader) { l.onFail = fn }
}

// NewLoader создаёт загрузчик
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		states: make(map[block.Material]State),
		loaded: make(map[block.Material]map[Channel]Texture),
		errors: make(map[block.Material]string),
		limit:  4,
		logger: logging.GetTextureLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadAll загружает все наборы и блокируется до завершения
func (l *Loader) LoadAll(ctx context.Context, set []MaterialTextures) {
	l.ready.Store(false)

	l.mu.Lock()
	for _, mt := range set {
		l.states[mt.Material] = StatePending
	}
	l.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)

	for _, mt := range set {
		mt := mt
		g.Go(func() error {
			l.loadMaterial(ctx, mt)
			// Ошибки материалов не останавливают группу
			return nil
		})
	}
	_ = g.Wait()

	l.ready.Store(true)
	l.logger.Info("Загрузка текстур завершена: материалов=%d, ошибок=%d", len(set), len(l.Errors()))
}

// Start запускает LoadAll в отдельной горутине. Канал закрывается по завершении.
func (l *Loader) Start(ctx context.Context, set []MaterialTextures) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.LoadAll(ctx, set)
	}()
	return done
}

func (l *Loader) loadMaterial(ctx context.Context, mt MaterialTextures) {
	channels := make(map[Channel]Texture, len(mt.Paths))

	for _, ch := range AllChannels {
		path, ok := mt.Paths[ch]
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			l.fail(mt.Material, fmt.Errorf("канал %s: %w", ch, err))
			return
		}

		tex, err := decodeTexture(path)
		if err != nil {
			l.fail(mt.Material, fmt.Errorf("канал %s: %w", ch, err))
			return
		}
		channels[ch] = tex
	}

	l.mu.Lock()
	l.loaded[mt.Material] = channels
	l.states[mt.Material] = StateLoaded
	delete(l.errors, mt.Material)
	l.mu.Unlock()

	l.logger.Debug("Текстуры материала %s загружены (%d каналов)", mt.Material, len(channels))
}

func (l *Loader) fail(material block.Material, err error) {
	message := fmt.Sprintf("Ошибка загрузки текстур материала %s: %v", material, err)

	l.mu.Lock()
	l.states[material] = StateFailed
	l.errors[material] = message
	delete(l.loaded, material)
	l.mu.Unlock()

	l.logger.Error("%s", message)
	if l.onFail != nil {
		l.onFail(material, err)
	}
}

// decodeTexture проверяет, что файл является изображением, и читает его размеры
func decodeTexture(path string) (Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return Texture{}, err
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Texture{}, fmt.Errorf("%s: %w", path, err)
	}
	return Texture{Path: path, Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}

// Ready сообщает, завершены ли все загрузки (успешно или нет)
func (l *Loader) Ready() bool {
	return l.ready.Load()
}

// Status возвращает состояние текстур материала
func (l *Loader) Status(material block.Material) State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.states[material]
}

// Textures возвращает загруженные каналы материала. ok == false, если
// загрузка не завершена или не удалась.
func (l *Loader) Textures(material block.Material) (map[Channel]Texture, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.states[material] != StateLoaded {
		return nil, false
	}
	out := make(map[Channel]Texture, len(l.loaded[material]))
	for ch, tex := range l.loaded[material] {
		out[ch] = tex
	}
	return out, true
}

// Errors возвращает человекочитаемые сообщения об ошибках по материалам
func (l *Loader) Errors() map[block.Material]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[block.Material]string, len(l.errors))
	for m, msg := range l.errors {
		out[m] = msg
	}
	return out
}
