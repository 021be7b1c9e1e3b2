package metrics

import (
	"fmt"
	"io"

	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/annel0/voxel-terrain/internal/world/block"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "voxelgen"

// GenerationMetrics инкапсулирует Prometheus-метрики генератора.
// HTTP-эндпоинт не поднимается: метрики снимаются через WriteText.
type GenerationMetrics struct {
	worlds              prometheus.Counter
	blocks              *prometheus.CounterVec
	decorationsPlaced   *prometheus.CounterVec
	decorationsRejected *prometheus.CounterVec
	textureFailures     *prometheus.CounterVec
	cacheHits           prometheus.Counter
	cacheMisses         prometheus.Counter
}

// NewGenerationMetrics создаёт метрики и регистрирует их в reg.
// nil означает prometheus.DefaultRegisterer.
func NewGenerationMetrics(reg prometheus.Registerer) (*GenerationMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &GenerationMetrics{
		worlds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "worlds_generated_total",
			Help:      "Число выполненных проходов генерации.",
		}),
		blocks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_emitted_total",
			Help:      "Число выданных блоков по материалам.",
		}, []string{"material"}),
		decorationsPlaced: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decorations_placed_total",
			Help:      "Размещённые декорации по видам.",
		}, []string{"kind"}),
		decorationsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decorations_rejected_total",
			Help:      "Выборки, отброшенные проверкой диапазона высот.",
		}, []string{"kind"}),
		textureFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "texture_failures_total",
			Help:      "Материалы, перешедшие на запасной цвет.",
		}, []string{"material"}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Попадания в кэш сгенерированных миров.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Промахи кэша сгенерированных миров.",
		}),
	}

	collectors := []prometheus.Collector{
		m.worlds, m.blocks, m.decorationsPlaced, m.decorationsRejected,
		m.textureFailures, m.cacheHits, m.cacheMisses,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("регистрация метрик: %w", err)
		}
	}
	return m, nil
}

// ObserveWorld учитывает результат одного прохода генерации
func (m *GenerationMetrics) ObserveWorld(w *world.World) {
	if m == nil || w == nil {
		return
	}
	m.worlds.Inc()
	for mat, n := range w.MaterialCounts() {
		m.blocks.WithLabelValues(mat.String()).Add(float64(n))
	}
	for kind, st := range w.Stats {
		m.decorationsPlaced.WithLabelValues(kind.String()).Add(float64(st.Placed))
		m.decorationsRejected.WithLabelValues(kind.String()).Add(float64(st.Rejected))
	}
}

// TextureFailed подходит как textures.FailureFunc
func (m *GenerationMetrics) TextureFailed(mat block.Material, _ error) {
	if m == nil {
		return
	}
	m.textureFailures.WithLabelValues(mat.String()).Inc()
}

// ObserveCache учитывает исход обращения к кэшу
func (m *GenerationMetrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.cacheHits.Inc()
	} else {
		m.cacheMisses.Inc()
	}
}

// WriteText выгружает все метрики gatherer в текстовом формате Prometheus
func WriteText(w io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("сбор метрик: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("запись метрики %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
