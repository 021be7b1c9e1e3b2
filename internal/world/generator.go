package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/annel0/voxel-terrain/internal/logging"
	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// decorationSalt отделяет поток случайных чисел декораций от потока рельефа
const decorationSalt int64 = 0x5DEECE66D

var tracer = otel.Tracer("github.com/annel0/voxel-terrain/internal/world")

// WorldGenerator генерирует мир: рельеф, столбцы блоков и декорации
type WorldGenerator struct {
	params Params
	logger *logging.Logger
}

// NewWorldGenerator создаёт генератор с указанными параметрами
func NewWorldGenerator(params Params) *WorldGenerator {
	return &WorldGenerator{
		params: params.Clone(),
		logger: logging.GetTerrainLogger(),
	}
}

// Params возвращает копию параметров генератора
func (wg *WorldGenerator) Params() Params {
	return wg.params.Clone()
}

// Generate выполняет один синхронный проход генерации.
//
// Рельеф и декорации получают собственные генераторы случайных чисел,
// выведенные из сида, поэтому при одинаковых параметрах результат
// воспроизводим даже для холмов с живым шумом.
func (wg *WorldGenerator) Generate(ctx context.Context) (*World, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := wg.params
	_, span := tracer.Start(ctx, "world.Generate")
	defer span.End()
	span.SetAttributes(
		attribute.Int("world.width", p.Width),
		attribute.Int("world.depth", p.Depth),
		attribute.Int64("world.seed", p.Seed),
		attribute.String("world.variant", p.Variant.String()),
	)

	hf, err := terrain.New(p.Variant, p.Seed, p.Depth)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("поле высот: %w", err)
	}

	start := time.Now()
	blocks := BuildWorld(p.Width, p.Depth, hf)

	rng := rand.New(rand.NewSource(p.Seed ^ decorationSalt))
	decorations, stats := PlaceDecorations(p.Width, p.Depth, p.Decorations, hf, rng)

	w := &World{
		ID:          uuid.New(),
		Params:      p.Clone(),
		Blocks:      blocks,
		Decorations: decorations,
		Stats:       stats,
		GeneratedAt: time.Now(),
	}

	span.SetAttributes(
		attribute.Int("world.blocks", len(blocks)),
		attribute.Int("world.decorations", len(decorations)),
	)
	wg.logger.Info("Мир %s сгенерирован: %dx%d, %s, seed=%d, блоков=%d, декораций=%d за %v",
		w.ID, p.Width, p.Depth, p.Variant, p.Seed, len(blocks), len(decorations), time.Since(start))
	for _, kind := range AllKinds {
		ks := stats[kind]
		wg.logger.Debug("  %s: запрошено=%d размещено=%d отклонено=%d", kind, ks.Requested, ks.Placed, ks.Rejected)
	}

	return w, nil
}
