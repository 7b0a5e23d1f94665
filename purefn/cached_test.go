package purefn_test

import (
	"testing"

	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/purefn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedI1O1(t *testing.T) {
	count := 0
	neg, closeFn, err := purefn.CachedI1O1(func(x int) effects.Logging[int] {
		count++
		return effects.New(effects.Warnf("Neg %d", x), -x)
	}, 16)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, -7, neg(7).Result)
	assert.Equal(t, "Warn(Neg 7)", neg(7).Log.String())
	assert.Equal(t, 1, count)
}

func TestCachedI2O1(t *testing.T) {
	count := 0
	sum, closeFn, err := purefn.CachedI2O1(func(x, y int) int {
		count++
		return x + y
	}, 16)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, 9, sum(4, 5))
	assert.Equal(t, 9, sum(4, 5))
	assert.Equal(t, 9, sum(5, 4))
	assert.Equal(t, 2, count)
}

func TestCached_KeysIncludeArgumentTypes(t *testing.T) {
	describe, closeFn, err := purefn.CachedI1O1(func(v any) string {
		switch v.(type) {
		case int:
			return "int"
		default:
			return "other"
		}
	}, 16)
	require.NoError(t, err)
	defer closeFn()

	assert.Equal(t, "int", describe(1))
	assert.Equal(t, "other", describe("1"))
}

func TestCached_InvalidSize(t *testing.T) {
	_, _, err := purefn.CachedI1O1(func(x int) int { return x }, 0)

	assert.ErrorContains(t, err, "maxEntries should be greater than 0")
}
