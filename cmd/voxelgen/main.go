package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/annel0/voxel-terrain/internal/app"
	"github.com/annel0/voxel-terrain/internal/config"
	"github.com/annel0/voxel-terrain/internal/logging"
	"github.com/annel0/voxel-terrain/internal/metrics"
	"github.com/annel0/voxel-terrain/internal/observability"
	"github.com/annel0/voxel-terrain/internal/scene"
	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
)

type options struct {
	configPath string
	seed       int64
	variant    string
	width      int
	depth      int
	textures   string
	out        string
	zstd       bool
	metrics    string
	logFile    string
	logLevel   string
}

func parseFlags() (options, map[string]bool) {
	var o options
	flag.StringVar(&o.configPath, "config", "", "YAML конфигурация (по умолчанию $VOXEL_CONFIG)")
	flag.Int64Var(&o.seed, "seed", 0, "сид генерации")
	flag.StringVar(&o.variant, "variant", "", "рельеф: hill, valley, perlin")
	flag.IntVar(&o.width, "width", 0, "ширина сетки")
	flag.IntVar(&o.depth, "depth", 0, "глубина сетки")
	flag.StringVar(&o.textures, "textures", "", "каталог текстур; \"-\" отключает загрузку")
	flag.StringVar(&o.out, "out", "-", "файл сцены, \"-\" — stdout")
	flag.BoolVar(&o.zstd, "zstd", false, "сжимать сцену zstd")
	flag.StringVar(&o.metrics, "metrics", "", "файл для выгрузки метрик, \"-\" — stderr")
	flag.StringVar(&o.logFile, "log-file", "", "файл логов")
	flag.StringVar(&o.logLevel, "log-level", "", "уровень логов: trace, debug, info, warn, error")
	flag.Parse()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return o, set
}

func main() {
	opts, set := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, set); err != nil {
		logging.Error("❌ %v", err)
		logging.CloseDefaultLogger()
		os.Exit(1)
	}
	logging.CloseDefaultLogger()
}

func run(ctx context.Context, opts options, set map[string]bool) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cfg, opts, set); err != nil {
		return err
	}

	if err := logging.InitDefaultLogger("voxelgen", cfg.Logging.File, logging.ParseLevel(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("инициализация логирования: %w", err)
	}

	shutdown, err := observability.InitTelemetry(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logging.Warn("Ошибка завершения телеметрии: %v", err)
		}
	}()

	params, err := cfg.Params()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	m, err := metrics.NewGenerationMetrics(reg)
	if err != nil {
		return err
	}

	session := app.NewSession(params,
		app.WithMetrics(m),
		app.WithTextureRoot(cfg.Textures.Root),
		app.WithTextureConcurrency(cfg.Textures.Concurrency),
	)

	logging.Info("🌍 Генерация мира %dx%d, рельеф=%s, сид=%d",
		params.Width, params.Depth, params.Variant, params.Seed)

	if cfg.Textures.Enabled {
		select {
		case <-session.LoadTextures(ctx):
		case <-ctx.Done():
			return ctx.Err()
		}
		for mat, msg := range session.TextureErrors() {
			logging.Warn("Материал %s использует запасной цвет: %s", mat, msg)
		}
	}

	w, descs, err := session.Scene(ctx)
	if err != nil {
		return err
	}
	logSummary(w, descs)

	if err := writeScene(opts.out, scene.NewDocument(w, descs), opts.zstd); err != nil {
		return err
	}

	if cfg.Metrics.Enabled {
		return dumpMetrics(cfg.Metrics.Output, reg)
	}
	return nil
}

// applyFlags переносит явно заданные флаги поверх конфигурации
func applyFlags(cfg *config.Config, opts options, set map[string]bool) error {
	if set["seed"] {
		cfg.World.Seed = opts.seed
	}
	if set["variant"] {
		v, err := terrain.ParseVariant(opts.variant)
		if err != nil {
			return err
		}
		cfg.World.Variant = v
	}
	if set["width"] {
		cfg.World.Width = opts.width
	}
	if set["depth"] {
		cfg.World.Depth = opts.depth
	}
	if set["textures"] {
		if opts.textures == "-" {
			cfg.Textures.Enabled = false
		} else {
			cfg.Textures.Root = opts.textures
			cfg.Textures.Enabled = true
		}
	}
	if set["metrics"] {
		cfg.Metrics.Enabled = true
		cfg.Metrics.Output = opts.metrics
	}
	if set["log-file"] {
		cfg.Logging.File = opts.logFile
	}
	if set["log-level"] {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg.Validate()
}

func logSummary(w *world.World, descs []scene.Descriptor) {
	counts := w.MaterialCounts()
	logging.Info("✅ Мир %s: блоков=%d (трава=%d, земля=%d, камень=%d)",
		w.ID, len(w.Blocks), counts[block.Grass], counts[block.Dirt], counts[block.Rock])
	for _, kind := range world.AllKinds {
		st := w.Stats[kind]
		logging.Info("   %s: размещено %d из %d", kind, st.Placed, st.Requested)
	}
	logging.Debug("Дескрипторов отрисовки: %d", len(descs))
}

func writeScene(path string, doc scene.Document, compress bool) error {
	format := scene.FormatJSON
	if compress {
		format = scene.FormatJSONZstd
	}

	var out io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("создание файла сцены: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := scene.Export(out, doc, format); err != nil {
		return fmt.Errorf("экспорт сцены: %w", err)
	}
	if path != "" && path != "-" {
		logging.Info("💾 Сцена записана в %s", path)
	}
	return nil
}

func dumpMetrics(path string, gatherer prometheus.Gatherer) error {
	var out io.Writer = os.Stderr
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("создание файла метрик: %w", err)
		}
		defer f.Close()
		out = f
	}
	return metrics.WriteText(out, gatherer)
}
