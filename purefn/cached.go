package purefn

import (
	"fmt"
	"strings"

	ristretto "github.com/dgraph-io/ristretto/v2"
)

// CachedI1O1 tables pureFn in a ristretto cache holding at most maxEntries results.
// The returned close function releases the cache; the tabled function must not be used after it.
func CachedI1O1[I1 any, O1 any](
	pureFn func(I1) O1,
	maxEntries int64,
) (func(I1) O1, func(), error) {
	cache, err := newCache[O1](maxEntries)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1) O1 {
		return cacheOrCompute(cache, cacheKey(i1), func() O1 {
			return pureFn(i1)
		})
	}, cache.Close, nil
}

// CachedI2O1 is the two-argument variant of CachedI1O1.
func CachedI2O1[I1, I2 any, O1 any](
	pureFn func(I1, I2) O1,
	maxEntries int64,
) (func(I1, I2) O1, func(), error) {
	cache, err := newCache[O1](maxEntries)
	if err != nil {
		return nil, nil, err
	}
	return func(i1 I1, i2 I2) O1 {
		return cacheOrCompute(cache, cacheKey(i1, i2), func() O1 {
			return pureFn(i1, i2)
		})
	}, cache.Close, nil
}

func newCache[O any](maxEntries int64) (*ristretto.Cache[string, O], error) {
	if maxEntries <= 0 {
		return nil, fmt.Errorf("maxEntries should be greater than 0, got %d", maxEntries)
	}
	cache, err := ristretto.NewCache(&ristretto.Config[string, O]{
		NumCounters:        maxEntries * 10, // ~10x the number of items when full.
		MaxCost:            maxEntries,      // every entry costs 1.
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create table cache: %w", err)
	}
	return cache, nil
}

func cacheOrCompute[O any](cache *ristretto.Cache[string, O], key string, compute func() O) O {
	if v, ok := cache.Get(key); ok {
		return v
	}
	v := compute()
	cache.Set(key, v, 1)
	cache.Wait()
	return v
}

// cacheKey formats each argument with its type so that 1 and "1" differ.
func cacheKey(args ...any) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = fmt.Sprintf("%T=%v", arg, tableKey(arg))
	}
	return strings.Join(parts, "\x1f")
}
