package purefn

import (
	"fmt"
)

// ComparableOrStringer is any argument usable as a table key:
// either a comparable value or a fmt.Stringer.
type ComparableOrStringer any

// TableKey is the normalized form of a ComparableOrStringer.
type TableKey any

func TableizeI1O1[I1 ComparableOrStringer, O1 any](
	pureFn func(I1) O1,
	maxTableSize uint32,
) func(I1) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1) O1 {
		return lookupOrCompute(memo, []TableKey{tableKey(i1)}, func() O1 {
			return pureFn(i1)
		})
	}
}

func TableizeI2O1[I1, I2 ComparableOrStringer, O1 any](
	pureFn func(I1, I2) O1,
	maxTableSize uint32,
) func(I1, I2) O1 {
	memo := NewTrie[O1](maxTableSize)
	return func(i1 I1, i2 I2) O1 {
		return lookupOrCompute(memo, []TableKey{tableKey(i1), tableKey(i2)}, func() O1 {
			return pureFn(i1, i2)
		})
	}
}

func lookupOrCompute[O any](memo *Trie[O], keys []TableKey, compute func() O) O {
	if v, ok := memo.Load(keys); ok {
		return v
	}
	v := compute()
	memo.Store(keys, v)
	return v
}

func tableKey(i ComparableOrStringer) TableKey {
	if stringer, ok := i.(fmt.Stringer); ok {
		return stringer.String()
	}
	return i
}
