// Package effects purifies logging side effects.
//
// A function that prints while it computes does more than its signature says.
// Here such a function returns a Logging[T] instead: its result paired with an
// Instruction that describes the logging it wants, without doing it.
//
// # Instructions
//
// Info, Warn and Debug are leaf instructions. Multi concatenates instructions
// in the order they happened; the empty Multi is the no-op instruction.
//
// # Composition
//
// Producers that return Logging values do not compose directly, since a
// Logging[int] is not an int. Bind threads the result into the next producer
// and merges both instructions:
//
//	Bind(Sum(4, 5), Neg) // (Multi([Info(4 + 5), Warn(Neg 9)]), -9)
//
// Pure lifts a bare value with the empty instruction. Together they satisfy
// the monad laws (left identity, right identity, associativity).
//
// # Interpretation
//
// Run is the only place where instructions become real output. It hands each
// leaf to a Sink, left to right, and returns the bare result:
//
//	v, err := effects.Run(ctx, effects.NewWriterSink(os.Stdout), Sum(4, 5))
//	// prints "INFO: 4 + 5", v == 9
//
// Sinks for zap and colored terminals live in the log and console subpackages.
package effects
