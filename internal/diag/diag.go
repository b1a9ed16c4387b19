// Package diag is the leveled diagnostic side channel. Components receive a
// Sink explicitly; nothing here is global, and no Sink can change the
// outcome of an operation.
package diag

import (
	"fmt"
	"strings"
)

// Level orders messages from most to least severe.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Debug
	Trace
)

var levelNames = [...]string{"ERROR", "WARN", "INFO", "DEBUG", "TRACE"}

func (l Level) String() string {
	if l < Error || l > Trace {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	if strings.EqualFold(s, "warning") {
		return Warn, nil
	}
	return Info, fmt.Errorf("unknown log level %q (expected error, warn, info, debug, trace)", s)
}

// Sink receives diagnostics.
type Sink interface {
	Emit(level Level, msg string)
}

// Emitf formats and emits a message.
func Emitf(s Sink, level Level, format string, args ...any) {
	s.Emit(level, fmt.Sprintf(format, args...))
}

type nop struct{}

func (nop) Emit(Level, string) {}

// Nop returns a Sink that discards everything.
func Nop() Sink { return nop{} }

// Entry is one recorded diagnostic.
type Entry struct {
	Level   Level
	Message string
}

// Recorder keeps every message it receives, in order.
type Recorder struct {
	Entries []Entry
}

// Emit implements Sink.
func (r *Recorder) Emit(level Level, msg string) {
	r.Entries = append(r.Entries, Entry{Level: level, Message: msg})
}

// Messages returns the recorded messages at the given level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.Entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}
