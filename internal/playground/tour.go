package playground

import (
	"context"
	"fmt"
	"io"

	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/purefn"
	"go.uber.org/zap"
)

// Step is one stop of the tour.
type Step struct {
	Title string
	Run   func(ctx context.Context, out io.Writer, sink effects.Sink) error
}

func Steps() []Step {
	return []Step{
		{
			Title: "pure function",
			Run: func(_ context.Context, out io.Writer, _ effects.Sink) error {
				return show(out, "SumPure(4, 5)", SumPure(4, 5))
			},
		},
		{
			Title: "function with a side effect",
			Run: func(_ context.Context, out io.Writer, _ effects.Sink) error {
				return show(out, "SumWithSideEffect(4, 5)", SumWithSideEffect(out, 4, 5))
			},
		},
		{
			Title: "logging described, not performed",
			Run: func(_ context.Context, out io.Writer, _ effects.Sink) error {
				if err := show(out, "Sum(4, 5)", Sum(4, 5)); err != nil {
					return err
				}
				return show(out, "Neg(7)", Neg(7))
			},
		},
		{
			Title: "the interpreter performs the description",
			Run: func(ctx context.Context, out io.Writer, sink effects.Sink) error {
				for _, op := range []struct {
					label string
					l     effects.Logging[int]
				}{
					{"Sum(4, 5)", Sum(4, 5)},
					{"Sum(2, 3)", Sum(2, 3)},
					{"Neg(8)", Neg(8)},
				} {
					if err := interpret(ctx, out, sink, op.label, op.l); err != nil {
						return err
					}
				}
				return nil
			},
		},
		{
			Title: "composition with Bind",
			Run: func(ctx context.Context, out io.Writer, sink effects.Sink) error {
				return interpret(ctx, out, sink, "Bind(Sum(4, 5), Neg)", effects.Bind(Sum(4, 5), Neg))
			},
		},
		{
			Title: "Pure has an empty description",
			Run: func(ctx context.Context, out io.Writer, sink effects.Sink) error {
				return interpret(ctx, out, sink, "Pure(10)", effects.Pure(10))
			},
		},
		{
			Title: "pure producers can be tabled",
			Run:   runTabled,
		},
	}
}

// runTabled replaces Sum and Neg by table lookups. Since both are pure,
// the program and its description stay the same.
func runTabled(ctx context.Context, out io.Writer, sink effects.Sink) error {
	sumCalls := 0
	sum, closeSum, err := purefn.CachedI2O1(func(x, y int) effects.Logging[int] {
		sumCalls++
		return Sum(x, y)
	}, 64)
	if err != nil {
		return err
	}
	defer closeSum()
	neg := purefn.TableizeI1O1(Neg, 64)

	for i := 0; i < 2; i++ {
		if err := show(out, "tabled Sum(4, 5)", sum(4, 5)); err != nil {
			return err
		}
	}
	if err := show(out, "Sum evaluations", sumCalls); err != nil {
		return err
	}
	return interpret(ctx, out, sink, "Bind(tabled Sum(4, 5), tabled Neg)", effects.Bind(sum(4, 5), neg))
}

// Tour runs every step in order. Rendered values go to out,
// interpreted instructions go to sink.
func Tour(ctx context.Context, out io.Writer, sink effects.Sink) error {
	for i, step := range Steps() {
		zap.L().Debug("running tour step", zap.Int("step", i+1), zap.String("title", step.Title))
		if _, err := fmt.Fprintf(out, "== %d. %s\n", i+1, step.Title); err != nil {
			return err
		}
		if err := step.Run(ctx, out, sink); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Title, err)
		}
	}
	return nil
}

func show(out io.Writer, label string, v any) error {
	_, err := fmt.Fprintf(out, "%s = %v\n", label, v)
	return err
}

func interpret(ctx context.Context, out io.Writer, sink effects.Sink, label string, l effects.Logging[int]) error {
	v, err := effects.Run(ctx, sink, l)
	if err != nil {
		return err
	}
	return show(out, "Run("+label+")", v)
}
