package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog EffectEnum = "purify_go_effect_enum_log"
)

var (
	ErrNoEffectHandler = errors.New("no effect handler registered for this effect")
	ErrHandlerClosed   = errors.New("effect handler is closed")
)

type EffectScopeConfig struct {
	BufferSize int // default: 1
}

func NewEffectScopeConfig(bufferSize int) EffectScopeConfig {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return EffectScopeConfig{
		BufferSize: bufferSize,
	}
}
