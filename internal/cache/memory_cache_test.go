package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/annel0/voxel-terrain/internal/terrain"
	"github.com/annel0/voxel-terrain/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingGenerator(params world.Params, calls *int) GenerateFunc {
	return func(ctx context.Context) (*world.World, error) {
		*calls++
		return world.NewWorldGenerator(params).Generate(ctx)
	}
}

func TestMemoryCache_Memoizes(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	params := world.DefaultParams()
	key := KeyFor(params)

	calls := 0
	gen := countingGenerator(params, &calls)

	first, err := c.GetOrGenerate(ctx, key, gen)
	require.NoError(t, err)
	second, err := c.GetOrGenerate(ctx, key, gen)
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "мир должен строиться один раз на ключ")
	assert.Same(t, first, second)

	m := c.GetMetrics()
	assert.Equal(t, int64(2), m.TotalRequests)
	assert.Equal(t, int64(1), m.CacheHits)
	assert.Equal(t, int64(1), m.CacheMisses)
	assert.InDelta(t, 0.5, m.HitRatio, 1e-9)
	assert.Equal(t, int64(1), m.TotalKeys)
}

func TestMemoryCache_InvalidateOnRequest(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	params := world.DefaultParams()
	key := KeyFor(params)

	calls := 0
	gen := countingGenerator(params, &calls)

	first, err := c.GetOrGenerate(ctx, key, gen)
	require.NoError(t, err)

	require.NoError(t, c.Invalidate(ctx, key))
	_, err = c.Get(ctx, key)
	assert.True(t, IsCacheMiss(err))

	second, err := c.GetOrGenerate(ctx, key, gen)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, int64(1), c.GetMetrics().Invalidations)

	// Повторная инвалидация отсутствующего ключа не ошибка
	require.NoError(t, c.Invalidate(ctx, KeyFor(world.Params{Width: 1, Depth: 1})))
}

func TestMemoryCache_KeysSeparateParams(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	a := world.DefaultParams()
	b := world.DefaultParams()
	b.Seed = a.Seed + 1
	v := world.DefaultParams()
	v.Variant = terrain.VariantValley

	for _, p := range []world.Params{a, b, v} {
		calls := 0
		_, err := c.GetOrGenerate(ctx, KeyFor(p), countingGenerator(p, &calls))
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	}
	assert.Equal(t, 3, c.Len())

	require.NoError(t, c.InvalidateAll(ctx))
	assert.Zero(t, c.Len())
	assert.Equal(t, int64(3), c.GetMetrics().Invalidations)
}

func TestMemoryCache_GenerateError(t *testing.T) {
	c := NewMemoryCache()
	boom := errors.New("boom")

	_, err := c.GetOrGenerate(context.Background(), KeyFor(world.DefaultParams()), func(ctx context.Context) (*world.World, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, c.Len(), "ошибка генерации не должна попадать в кеш")
}

func TestMemoryCache_InvalidInput(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	_, err := c.Get(ctx, Key{})
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, c.Set(ctx, Key{}, &world.World{}), ErrInvalidKey)
	assert.ErrorIs(t, c.Set(ctx, KeyFor(world.DefaultParams()), nil), ErrNilWorld)
}

func TestMemoryCache_ConcurrentSameKey(t *testing.T) {
	c := NewMemoryCache()
	params := world.DefaultParams()
	key := KeyFor(params)

	var mu sync.Mutex
	calls := 0
	gen := func(ctx context.Context) (*world.World, error) {
		mu.Lock()
		calls++
		mu.Unlock()
		return world.NewWorldGenerator(params).Generate(ctx)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.GetOrGenerate(context.Background(), key, gen)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, calls)
}

func TestKey(t *testing.T) {
	p := world.DefaultParams()
	k := KeyFor(p)

	assert.Equal(t, "w=16;d=16;seed=1;variant=hill;tree=10;animal=5;plant=15;rock=8", k.Canonical())
	assert.Equal(t, k.String(), KeyFor(p.Clone()).String())
	assert.Regexp(t, `^world:[0-9a-f]{16}$`, k.String())

	p.Decorations[world.KindRock] = 9
	assert.NotEqual(t, k.String(), KeyFor(p).String())
}
