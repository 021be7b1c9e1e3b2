package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world"
	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации генератора.
type Config struct {
	World    WorldConfig    `yaml:"world"`
	Textures TexturesConfig `yaml:"textures"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

type WorldConfig struct {
	Width       int             `yaml:"width"`
	Depth       int             `yaml:"depth"`
	Seed        int64           `yaml:"seed"`
	Variant     terrain.Variant `yaml:"variant"`
	Decorations map[string]int  `yaml:"decorations"`
}

type TexturesConfig struct {
	Root        string `yaml:"root"`
	Enabled     bool   `yaml:"enabled"`
	Concurrency int    `yaml:"concurrency"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Output  string `yaml:"output"` // Пусто: stdout
}

type TracingConfig struct {
	Endpoint    string `yaml:"endpoint"` // OTLP HTTP, пусто = без экспорта
	ServiceName string `yaml:"service_name"`
}

// Ошибки валидации
var ErrInvalidConfig = errors.New("invalid config")

// Default возвращает конфигурацию по умолчанию: один чанк 16×16 с холмами
func Default() *Config {
	params := world.DefaultParams()
	decorations := make(map[string]int, len(params.Decorations))
	for kind, n := range params.Decorations {
		decorations[kind.String()] = n
	}

	return &Config{
		World: WorldConfig{
			Width:       params.Width,
			Depth:       params.Depth,
			Seed:        params.Seed,
			Variant:     params.Variant,
			Decorations: decorations,
		},
		Textures: TexturesConfig{
			Root:        "textures",
			Enabled:     true,
			Concurrency: 3,
		},
		Logging: LoggingConfig{Level: "info"},
		Tracing: TracingConfig{ServiceName: "voxelgen"},
	}
}

// Load читает YAML файл конфигурации поверх значений по умолчанию.
// Если path == "", берётся ENV VOXEL_CONFIG; если и он пуст, только дефолты.
// После файла применяются переопределения из окружения.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("VOXEL_CONFIG")
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv применяет переопределения: VOXEL_WIDTH, VOXEL_DEPTH, VOXEL_SEED,
// VOXEL_VARIANT, VOXEL_TEXTURES, VOXEL_LOG_LEVEL
func (c *Config) applyEnv() error {
	var err error
	if c.World.Width, err = getIntWithEnvFallback(c.World.Width, "VOXEL_WIDTH"); err != nil {
		return err
	}
	if c.World.Depth, err = getIntWithEnvFallback(c.World.Depth, "VOXEL_DEPTH"); err != nil {
		return err
	}

	if v := os.Getenv("VOXEL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: VOXEL_SEED=%q", ErrInvalidConfig, v)
		}
		c.World.Seed = seed
	}
	if v := os.Getenv("VOXEL_VARIANT"); v != "" {
		variant, err := terrain.ParseVariant(v)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		c.World.Variant = variant
	}
	if v := os.Getenv("VOXEL_TEXTURES"); v != "" {
		c.Textures.Root = v
	}
	if v := os.Getenv("VOXEL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// getIntWithEnvFallback возвращает значение окружения, если оно задано,
// иначе значение из конфига. Нечисловое значение окружения является ошибкой;
// диапазон проверяет Validate.
func getIntWithEnvFallback(configValue int, envVar string) (int, error) {
	envVal := os.Getenv(envVar)
	if envVal == "" {
		return configValue, nil
	}
	n, err := strconv.Atoi(envVal)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidConfig, envVar, envVal)
	}
	return n, nil
}

// Validate проверяет размеры сетки и счётчики декораций
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Depth <= 0 {
		return fmt.Errorf("%w: размер сетки %dx%d", ErrInvalidConfig, c.World.Width, c.World.Depth)
	}
	for name, n := range c.World.Decorations {
		if _, err := world.ParseKind(name); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if n < 0 {
			return fmt.Errorf("%w: отрицательное число декораций %s=%d", ErrInvalidConfig, name, n)
		}
	}
	if c.Textures.Concurrency < 0 {
		return fmt.Errorf("%w: textures.concurrency=%d", ErrInvalidConfig, c.Textures.Concurrency)
	}
	return nil
}

// Params переводит конфигурацию мира в параметры генерации
func (c *Config) Params() (world.Params, error) {
	p := world.Params{
		Width:       c.World.Width,
		Depth:       c.World.Depth,
		Seed:        c.World.Seed,
		Variant:     c.World.Variant,
		Decorations: make(map[world.Kind]int, len(c.World.Decorations)),
	}
	for name, n := range c.World.Decorations {
		kind, err := world.ParseKind(strings.TrimSpace(name))
		if err != nil {
			return world.Params{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		p.Decorations[kind] = n
	}
	return p, nil
}
