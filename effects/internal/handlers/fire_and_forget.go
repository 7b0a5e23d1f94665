package handlers

import (
	"context"

	"github.com/google/uuid"
	effectmodel "github.com/on-the-ground/purify_go/effects/internal/model"
)

func NewFireAndForgetEffectHandler[T any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
	teardown func(),
) FireAndForgetHandler[T] {
	return FireAndForgetHandler[T]{
		fireAndForgetEffectScope: newFireAndForgetEffectScope(ctx, config, handleFn, teardown),
	}
}

type FireAndForgetHandler[T any] struct {
	*fireAndForgetEffectScope[T]
}

// FireAndForgetEffect queues the payload for the worker goroutine.
// Payloads are handled in the order they were queued.
func (ffh FireAndForgetHandler[T]) FireAndForgetEffect(ctx context.Context, payload T) error {
	if ffh.closed {
		return effectmodel.ErrHandlerClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case ffh.effectCh <- fireAndForgetEffectMessage[T]{
		payload: payload,
	}:
		return nil
	}
}

// IMPORTANT:
// This effect handler is **intentionally NOT thread-safe**.
//
// Each handler instance is meant to be fed from a single goroutine within
// a single execution scope. Close must not race with FireAndForgetEffect.
type fireAndForgetEffectScope[T any] struct {
	EffectId string
	effectCh chan fireAndForgetEffectMessage[T]
	closeFn  func()
	closed   bool
}

// Close stops intake, waits until every queued payload is handled,
// then runs the teardown. Calling it twice is a no-op.
func (ffs *fireAndForgetEffectScope[T]) Close() {
	if !ffs.closed {
		ffs.closed = true
		ffs.closeFn()
	}
}

func newFireAndForgetEffectScope[T any](
	ctx context.Context,
	config effectmodel.EffectScopeConfig,
	handleFn func(context.Context, T),
	teardown func(),
) *fireAndForgetEffectScope[T] {
	effCh := make(chan fireAndForgetEffectMessage[T], config.BufferSize)
	drained := make(chan struct{})

	go func() {
		defer close(drained)
		for msg := range effCh {
			handleFn(ctx, msg.payload)
		}
	}()

	return &fireAndForgetEffectScope[T]{
		EffectId: uuid.New().String(),
		effectCh: effCh,
		closeFn: func() {
			close(effCh)
			<-drained
			teardown()
		},
		closed: false,
	}
}

type fireAndForgetEffectMessage[T any] struct {
	payload T
}
