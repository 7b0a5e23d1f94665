package purefn_test

import (
	"testing"

	"github.com/on-the-ground/purify_go/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTrie_BasicUsage(t *testing.T) {
	trie := purefn.NewTrie[string](4)

	trie.Store([]purefn.TableKey{"a", "b", "c"}, "final")

	val, ok := trie.Load([]purefn.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	// wrong key path
	_, ok = trie.Load([]purefn.TableKey{"a", "b", "x"})
	assert.False(t, ok)
	_, ok = trie.Load([]purefn.TableKey{"z", "b", "c"})
	assert.False(t, ok)

	// overwrite existing
	trie.Store([]purefn.TableKey{"a", "b", "c"}, "updated")
	val, ok = trie.Load([]purefn.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTrie_EmptyKeysPanics(t *testing.T) {
	trie := purefn.NewTrie[int](2)

	assert.Panics(t, func() {
		trie.Load([]purefn.TableKey{})
	})
	assert.Panics(t, func() {
		trie.Store(nil, 1)
	})
}

func TestTrie_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		purefn.NewTrie[int](0)
	})
}
