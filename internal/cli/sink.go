package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/effects/console"
	"github.com/on-the-ground/purify_go/effects/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	SinkConsole = "console"
	SinkPlain   = "plain"
	SinkZap     = "zap"
	SinkHandler = "handler"
)

// openSink builds the sink named in opts, writing to out.
// The returned context must be passed to effects.Run; close must be called when done.
func openSink(ctx context.Context, out io.Writer, opts *Options) (context.Context, effects.Sink, func(), error) {
	switch opts.Sink {
	case SinkConsole:
		return ctx, console.NewColorSink(out, opts.NoColor || color.NoColor), func() {}, nil
	case SinkPlain:
		return ctx, effects.NewWriterSink(out), func() {}, nil
	case SinkZap:
		logger := log.NewConsoleLogger(out, zapcore.DebugLevel)
		return ctx, log.NewZapSink(logger), func() { _ = logger.Sync() }, nil
	case SinkHandler:
		logger := log.NewConsoleLogger(out, zapcore.DebugLevel)
		ctx, endOfLog := log.WithZapLogEffectHandler(ctx, effects.NewEffectScopeConfig(16), logger)
		return ctx, log.HandlerSink, func() { endOfLog() }, nil
	default:
		return ctx, nil, nil, fmt.Errorf("unknown sink %q: expected one of %s, %s, %s, %s",
			opts.Sink, SinkConsole, SinkPlain, SinkZap, SinkHandler)
	}
}

// installLogger replaces the global zap logger used for debug output.
func installLogger(w io.Writer, verbose bool) {
	if !verbose {
		zap.ReplaceGlobals(zap.NewNop())
		return
	}
	zap.ReplaceGlobals(log.NewConsoleLogger(w, zapcore.DebugLevel))
}
