package effects

import (
	"context"
	"fmt"

	"github.com/on-the-ground/purify_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/purify_go/effects/internal/model"
	"github.com/on-the-ground/purify_go/shared/helper"
	"go.uber.org/zap"
)

type (
	EffectEnum        = effectmodel.EffectEnum
	EffectScopeConfig = effectmodel.EffectScopeConfig
)

const EffectLog = effectmodel.EffectLog

var (
	ErrNoEffectHandler = effectmodel.ErrNoEffectHandler
	ErrHandlerClosed   = effectmodel.ErrHandlerClosed
)

// NewEffectScopeConfig returns a handler config; non-positive sizes fall back to 1.
func NewEffectScopeConfig(bufferSize int) EffectScopeConfig {
	return effectmodel.NewEffectScopeConfig(bufferSize)
}

// WithFireAndForgetEffectHandler registers a fire-and-forget effect handler for a given effect enum.
//
// A single worker goroutine handles payloads in the order they were sent.
// The returned function closes the handler: it waits for queued payloads,
// runs the teardown, and returns the parent context.
//
// Usage:
//
//	ctx, end := WithFireAndForgetEffectHandler(ctx, config, MyEffectEnum, handleFn)
//	defer end()
func WithFireAndForgetEffectHandler[P any](
	ctx context.Context,
	config EffectScopeConfig,
	enum EffectEnum,
	handleFn func(context.Context, P),
	teardown ...func(),
) (context.Context, func() context.Context) {
	td := normalizeTeardown(teardown)
	handler := handlers.NewFireAndForgetEffectHandler(ctx, config, handleFn, td)
	ctxWith := context.WithValue(ctx, enum, handler)
	zap.L().Sugar().Debugf("created fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)

	return ctxWith, func() context.Context {
		handler.Close()
		zap.L().Sugar().Debugf("closed fire/forget effect handler: effectId: %v, enum: %v", handler.EffectId, enum)
		return ctx
	}
}

// FireAndForgetEffect hands the payload to the handler registered for enum.
//
// Returns ErrNoEffectHandler when ctx carries no handler for enum, or only
// one that takes a different payload type.
func FireAndForgetEffect[P any](
	ctx context.Context,
	enum EffectEnum,
	payload P,
) error {
	raw, err := getHandler(ctx, enum)
	if err != nil {
		return err
	}
	handler, err := helper.GetTypedValueOf[handlers.FireAndForgetHandler[P]](
		func() (any, error) {
			return raw, nil
		},
	)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNoEffectHandler, enum, err)
	}
	return handler.FireAndForgetEffect(ctx, payload)
}

// getHandler checks whether a handler for the given EffectEnum is registered in the context.
func getHandler(ctx context.Context, enum EffectEnum) (any, error) {
	raw := ctx.Value(enum)
	if raw == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEffectHandler, enum)
	}
	return raw, nil
}

// normalizeTeardown flattens optional teardown functions into a single callable.
//
// Accepts either 0 or 1 teardown functions. Panics if more than one is passed.
func normalizeTeardown(teardown []func()) func() {
	switch len(teardown) {
	case 1:
		return teardown[0]
	case 0:
		return func() {}
	default:
		panic("normalizeTeardown: only one or zero teardown functions allowed")
	}
}
