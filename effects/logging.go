package effects

import "fmt"

// Logging pairs a result with the logging instruction that describes how it was produced.
//
// A Logging value is never modified after it is built; Bind and the other
// combinators always return a new one.
type Logging[T any] struct {
	Log    Instruction
	Result T
}

// New wraps result with log.
func New[T any](log Instruction, result T) Logging[T] {
	return Logging[T]{Log: log, Result: result}
}

// Pure lifts a bare value into a Logging with the empty instruction.
func Pure[T any](v T) Logging[T] {
	return Logging[T]{Log: Multi{}, Result: v}
}

// Tell produces a Logging that only carries an instruction.
func Tell(i Instruction) Logging[struct{}] {
	return Logging[struct{}]{Log: i}
}

// Bind runs f once on l's result and merges both instructions, l's first.
//
// Laws:
//   - left identity:  Bind(Pure(x), f) ~ f(x)
//   - right identity: Bind(l, Pure[T]) ~ l
//   - associativity:  Bind(Bind(l, f), g) ~ Bind(l, func(x T) { return Bind(f(x), g) })
func Bind[T, U any](l Logging[T], f func(T) Logging[U]) Logging[U] {
	next := f(l.Result)
	return Logging[U]{
		Log:    Combine(l.Log, next.Log),
		Result: next.Result,
	}
}

// Bind is the method form of Bind for continuations that keep the result type.
func (l Logging[T]) Bind(f func(T) Logging[T]) Logging[T] {
	return Bind(l, f)
}

// Map applies a pure function to the result and keeps the instruction.
func Map[T, U any](l Logging[T], f func(T) U) Logging[U] {
	return Bind(l, func(v T) Logging[U] {
		return Pure(f(v))
	})
}

// Then sequences next after l, discarding l's result.
func Then[T, U any](l Logging[T], next Logging[U]) Logging[U] {
	return Bind(l, func(T) Logging[U] {
		return next
	})
}

// Compose chains two producers into one.
func Compose[A, B, C any](f func(A) Logging[B], g func(B) Logging[C]) func(A) Logging[C] {
	return func(a A) Logging[C] {
		return Bind(f(a), g)
	}
}

func (l Logging[T]) String() string {
	return fmt.Sprintf("(%s, %v)", Describe(l.Log), l.Result)
}
