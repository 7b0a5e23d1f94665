package console_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/effects/console"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func program() effects.Logging[int] {
	return effects.Then(
		effects.Tell(effects.Multi{Logs: []effects.Instruction{
			effects.Info{Msg: "4 + 5"},
			effects.Warn{Msg: "Neg 9"},
		}}),
		effects.New(effects.Debug{Msg: "done"}, -9),
	)
}

func TestColorSink_NoColor(t *testing.T) {
	var buf bytes.Buffer

	v, err := effects.Run(context.Background(), console.NewColorSink(&buf, true), program())

	require.NoError(t, err)
	assert.Equal(t, -9, v)
	assert.Equal(t, "INFO: 4 + 5\nWARN: Neg 9\nDEBUG: done\n", buf.String())
}

func TestColorSink_Color(t *testing.T) {
	var buf bytes.Buffer

	_, err := effects.Run(context.Background(), console.NewColorSink(&buf, false), program())

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "\x1b[36mINFO\x1b[0m: 4 + 5\n")
	assert.Contains(t, out, "\x1b[33mWARN\x1b[0m: Neg 9\n")
	assert.Contains(t, out, "\x1b[35mDEBUG\x1b[0m: done\n")
}
