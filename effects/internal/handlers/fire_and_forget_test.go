package handlers_test

import (
	"context"
	"testing"
	"time"

	"github.com/on-the-ground/purify_go/effects/internal/handlers"
	effectmodel "github.com/on-the-ground/purify_go/effects/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireAndForgetEffectHandler_BasicExecution(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var receivedPayload string
	done := make(chan bool)

	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.EffectScopeConfig{BufferSize: 10},
		func(ctx context.Context, msg string) {
			receivedPayload = msg
			done <- true
		},
		func() {}, // no-op teardown
	)
	defer handler.Close()

	require.NoError(t, handler.FireAndForgetEffect(ctx, "hello"))

	select {
	case <-done:
		assert.Equal(t, "hello", receivedPayload)
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for handler")
	}
}

func TestFireAndForgetEffectHandler_CancelContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called bool

	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.EffectScopeConfig{BufferSize: 10},
		func(ctx context.Context, msg string) {
			called = true
		},
		func() {},
	)

	err := handler.FireAndForgetEffect(ctx, "should-not-send")
	handler.Close()

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called, "handler should not have been called")
}

func TestFireAndForgetEffectHandler_CloseDrainsInOrder(t *testing.T) {
	ctx := context.Background()

	var got []int
	tornDown := false

	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(8),
		func(ctx context.Context, n int) {
			got = append(got, n)
		},
		func() { tornDown = true },
	)

	for i := 0; i < 5; i++ {
		require.NoError(t, handler.FireAndForgetEffect(ctx, i))
	}
	handler.Close()

	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
	assert.True(t, tornDown)
	assert.NotEmpty(t, handler.EffectId)
}

func TestFireAndForgetEffectHandler_AfterClose(t *testing.T) {
	ctx := context.Background()
	teardowns := 0

	handler := handlers.NewFireAndForgetEffectHandler(
		ctx,
		effectmodel.NewEffectScopeConfig(1),
		func(ctx context.Context, msg string) {},
		func() { teardowns++ },
	)
	handler.Close()
	handler.Close()

	err := handler.FireAndForgetEffect(ctx, "late")
	assert.ErrorIs(t, err, effectmodel.ErrHandlerClosed)
	assert.Equal(t, 1, teardowns)
}
