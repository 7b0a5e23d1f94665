// Package console interprets logging instructions onto a terminal with colored tags.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/on-the-ground/purify_go/effects"
)

// ColorSink writes "<TAG>: <message>" lines, coloring the tag by level.
type ColorSink struct {
	w    io.Writer
	tags map[effects.Level]string
}

func NewColorSink(w io.Writer, noColor bool) *ColorSink {
	palette := map[effects.Level]*color.Color{
		effects.LevelInfo:  color.New(color.FgCyan),
		effects.LevelWarn:  color.New(color.FgYellow),
		effects.LevelDebug: color.New(color.FgMagenta),
	}
	tags := make(map[effects.Level]string, len(palette))
	for level, c := range palette {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
		tags[level] = c.Sprint(level.Tag())
	}
	return &ColorSink{w: w, tags: tags}
}

func (s *ColorSink) Emit(_ context.Context, leaf effects.Leaf) error {
	tag, ok := s.tags[leaf.Level()]
	if !ok {
		tag = leaf.Level().Tag()
	}
	_, err := fmt.Fprintf(s.w, "%s: %s\n", tag, leaf.Message())
	return err
}
