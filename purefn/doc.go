// Package purefn tables pure functions.
//
// A pure function depends only on its arguments, so its calls can be
// replaced by a table lookup. Producers that return effects.Logging values
// qualify too: the logging they describe is part of the returned value,
// not something they do.
//
// Two families are provided:
//   - TableizeI1O1, TableizeI2O1: in-process tables backed by a bounded
//     two-generation Trie. Arguments must be comparable or fmt.Stringer.
//   - CachedI1O1, CachedI2O1: tables backed by a ristretto cache, keyed by
//     the formatted arguments.
//
// WARNING: Do not table impure functions (e.g., those depending on time, I/O, etc).
package purefn
