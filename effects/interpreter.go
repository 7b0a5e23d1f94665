package effects

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

var ErrInterpret = errors.New("failed to interpret logging instruction")

// Sink performs a single leaf instruction for real.
type Sink interface {
	Emit(ctx context.Context, leaf Leaf) error
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(ctx context.Context, leaf Leaf) error

func (f SinkFunc) Emit(ctx context.Context, leaf Leaf) error {
	return f(ctx, leaf)
}

// Run performs every leaf of l.Log through sink, in order, and returns l.Result.
//
// The first sink error stops the run. It is returned wrapped together with
// ErrInterpret, along with the zero value of T.
func Run[T any](ctx context.Context, sink Sink, l Logging[T]) (T, error) {
	for _, leaf := range Leaves(l.Log) {
		if err := sink.Emit(ctx, leaf); err != nil {
			var zero T
			return zero, fmt.Errorf("%w: %s: %w", ErrInterpret, leaf, err)
		}
	}
	return l.Result, nil
}

// MustRun is the panic-on-failure variant of Run.
func MustRun[T any](ctx context.Context, sink Sink, l Logging[T]) T {
	res, err := Run(ctx, sink, l)
	if err != nil {
		panic(err)
	}
	return res
}

// RunIO interprets l to stdout.
func RunIO[T any](l Logging[T]) (T, error) {
	return Run(context.Background(), NewWriterSink(os.Stdout), l)
}

// WriterSink writes one "<TAG>: <message>" line per leaf.
type WriterSink struct {
	w io.Writer
}

func NewWriterSink(w io.Writer) WriterSink {
	return WriterSink{w: w}
}

func (s WriterSink) Emit(_ context.Context, leaf Leaf) error {
	_, err := fmt.Fprintf(s.w, "%s: %s\n", leaf.Level().Tag(), leaf.Message())
	return err
}
