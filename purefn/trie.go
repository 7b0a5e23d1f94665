package purefn

import (
	"sync"
	"sync/atomic"
)

// Trie is a bounded table of values keyed by argument paths.
//
// It keeps two generations. Lookups check the current generation, then the
// previous one. Once the current generation holds maxSize entries, the
// previous one is dropped and a fresh one becomes current.
type Trie[O any] struct {
	current  atomic.Pointer[sync.Map]
	previous atomic.Pointer[sync.Map]
	size     atomic.Uint32
	maxSize  uint32
	rotateMu sync.Mutex
}

func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("maxSize should be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.current.Store(&sync.Map{})
	t.previous.Store(&sync.Map{})
	return t
}

func (t *Trie[O]) Load(keys []TableKey) (O, bool) {
	for _, gen := range []*sync.Map{t.current.Load(), t.previous.Load()} {
		if v, ok := lookup(gen, keys); ok {
			return v.(O), true
		}
	}
	var zero O
	return zero, false
}

func (t *Trie[O]) Store(keys []TableKey, value O) {
	if t.size.Load() >= t.maxSize {
		t.rotate()
	}
	m, k := descend(t.current.Load(), keys)
	m.Store(k, value)
	t.size.Add(1)
}

func (t *Trie[O]) rotate() {
	t.rotateMu.Lock()
	defer t.rotateMu.Unlock()
	if t.size.Load() < t.maxSize {
		return
	}
	t.previous.Store(t.current.Load())
	t.current.Store(&sync.Map{})
	t.size.Store(0)
}

func lookup(root *sync.Map, keys []TableKey) (any, bool) {
	mustHaveKeys(keys)
	m := root
	for _, k := range keys[:len(keys)-1] {
		next, ok := m.Load(k)
		if !ok {
			return nil, false
		}
		m = next.(*sync.Map)
	}
	return m.Load(keys[len(keys)-1])
}

func descend(root *sync.Map, keys []TableKey) (*sync.Map, TableKey) {
	mustHaveKeys(keys)
	m := root
	for _, k := range keys[:len(keys)-1] {
		next, _ := m.LoadOrStore(k, &sync.Map{})
		m = next.(*sync.Map)
	}
	return m, keys[len(keys)-1]
}

func mustHaveKeys(keys []TableKey) {
	if len(keys) == 0 {
		panic("trie: empty keys")
	}
}
