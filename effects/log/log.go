package log

import (
	"context"
	"time"

	"github.com/on-the-ground/purify_go/effects"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogPayload is the payload structure for the log effect handler.
// When Done is set, the handler reports the write result on it.
type LogPayload struct {
	Level   effects.Level
	Message string
	Done    chan<- error
}

// ZapSink performs leaf instructions by logging them through zap.
// Write failures of the underlying core are returned to the interpreter.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) ZapSink {
	return ZapSink{logger: logger}
}

func (s ZapSink) Emit(_ context.Context, leaf effects.Leaf) error {
	return write(s.logger, leaf.Level(), leaf.Message())
}

func zapLevel(level effects.Level) zapcore.Level {
	switch level {
	case effects.LevelWarn:
		return zapcore.WarnLevel
	case effects.LevelDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// write goes straight to the core: zap.Logger reports write errors to its
// ErrorOutput instead of returning them.
func write(logger *zap.Logger, level effects.Level, msg string) error {
	core := logger.Core()
	entry := zapcore.Entry{
		Level:   zapLevel(level),
		Time:    time.Now(),
		Message: msg,
	}
	if core.Check(entry, nil) == nil {
		return nil
	}
	return core.Write(entry, []zapcore.Field{zap.String("effect", level.Tag())})
}

// WithZapLogEffectHandler registers a fire-and-forget log effect handler using zap.Logger.
// The returned context includes the handler under the EffectLog enum.
// The teardown function drains pending entries and syncs the logger.
// The context returned by the teardown function should be used for further operations.
func WithZapLogEffectHandler(
	ctx context.Context,
	config effects.EffectScopeConfig,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	return effects.WithFireAndForgetEffectHandler(
		ctx,
		config,
		effects.EffectLog,
		func(ctx context.Context, payload LogPayload) {
			err := write(logger, payload.Level, payload.Message)
			if payload.Done != nil {
				payload.Done <- err
			}
		},
		func() {
			if err := logger.Sync(); err != nil {
				logger.Warn("failed to sync logger", zap.Error(err))
			}
		},
	)
}

// HandlerSink forwards leaves to the log effect handler found in the context given to Run.
var HandlerSink effects.Sink = effects.SinkFunc(LogEff)

// LogEff sends one leaf to the EffectLog handler in ctx and waits until it is written.
// It fails with effects.ErrNoEffectHandler outside a handler scope.
func LogEff(ctx context.Context, leaf effects.Leaf) error {
	done := make(chan error, 1)
	err := effects.FireAndForgetEffect(ctx, effects.EffectLog, LogPayload{
		Level:   leaf.Level(),
		Message: leaf.Message(),
		Done:    done,
	})
	if err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
