package effects

import (
	"fmt"
	"strings"
)

// Level is the kind of a leaf logging instruction.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelDebug is used for detailed internal information.
	LevelDebug Level = "debug"
)

// Tag is the upper-case label an interpreter prints in front of a message.
func (l Level) Tag() string {
	return strings.ToUpper(string(l))
}

// Instruction describes a logging side effect without performing it.
//
// The set of instructions is closed: Info, Warn, Debug and Multi.
type Instruction interface {
	fmt.Stringer
	isInstruction()
}

// Leaf is an instruction that maps to exactly one emitted line.
type Leaf interface {
	Instruction
	Level() Level
	Message() string
}

type Info struct{ Msg string }

type Warn struct{ Msg string }

type Debug struct{ Msg string }

// Multi is the concatenation of zero or more instructions, earliest first.
// The empty Multi is the no-op instruction.
type Multi struct{ Logs []Instruction }

func Infof(format string, args ...any) Info {
	return Info{Msg: fmt.Sprintf(format, args...)}
}

func Warnf(format string, args ...any) Warn {
	return Warn{Msg: fmt.Sprintf(format, args...)}
}

func Debugf(format string, args ...any) Debug {
	return Debug{Msg: fmt.Sprintf(format, args...)}
}

func (i Info) String() string  { return "Info(" + i.Msg + ")" }
func (w Warn) String() string  { return "Warn(" + w.Msg + ")" }
func (d Debug) String() string { return "Debug(" + d.Msg + ")" }

func (m Multi) String() string {
	parts := make([]string, len(m.Logs))
	for i, l := range m.Logs {
		parts[i] = Describe(l)
	}
	return "Multi([" + strings.Join(parts, ", ") + "])"
}

func (Info) Level() Level  { return LevelInfo }
func (Warn) Level() Level  { return LevelWarn }
func (Debug) Level() Level { return LevelDebug }

func (i Info) Message() string  { return i.Msg }
func (w Warn) Message() string  { return w.Msg }
func (d Debug) Message() string { return d.Msg }

func (Info) isInstruction()  {}
func (Warn) isInstruction()  {}
func (Debug) isInstruction() {}
func (Multi) isInstruction() {}

// Describe renders any instruction. A nil instruction renders like the empty Multi.
func Describe(i Instruction) string {
	if i == nil {
		return Multi{}.String()
	}
	return i.String()
}

// Combine merges two instructions into a new Multi: a's entries, then b's.
//
// One level of nesting is flattened, so chained combinations stay flat.
// Neither argument is modified.
func Combine(a, b Instruction) Multi {
	left, right := entries(a), entries(b)
	logs := make([]Instruction, 0, len(left)+len(right))
	logs = append(logs, left...)
	logs = append(logs, right...)
	return Multi{Logs: logs}
}

func entries(i Instruction) []Instruction {
	switch v := i.(type) {
	case nil:
		return nil
	case Multi:
		return v.Logs
	default:
		return []Instruction{v}
	}
}

// Leaves returns the leaf instructions of i in depth-first, left-to-right order.
// This is the order an interpreter performs them in.
func Leaves(i Instruction) []Leaf {
	return appendLeaves(nil, i)
}

func appendLeaves(dst []Leaf, i Instruction) []Leaf {
	switch v := i.(type) {
	case nil:
		return dst
	case Multi:
		for _, l := range v.Logs {
			dst = appendLeaves(dst, l)
		}
		return dst
	case Leaf:
		return append(dst, v)
	default:
		panic(fmt.Sprintf("effects: unknown instruction %T", i))
	}
}

// Equivalent reports whether a and b perform the same leaves in the same order.
func Equivalent(a, b Instruction) bool {
	la, lb := Leaves(a), Leaves(b)
	if len(la) != len(lb) {
		return false
	}
	for i := range la {
		if la[i] != lb[i] {
			return false
		}
	}
	return true
}
