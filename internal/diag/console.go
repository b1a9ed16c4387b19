package diag

import (
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// headWidth is the column the first word of an info or debug line is
// right-aligned to, matching cargo's status lines.
const headWidth = 12

// Theme holds one style per level.
type Theme struct {
	Error lipgloss.Style
	Warn  lipgloss.Style
	Info  lipgloss.Style
	Debug lipgloss.Style
	Trace lipgloss.Style
}

// NewTheme builds the level styles on r. A renderer with the Ascii profile
// yields unstyled text.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Error: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // bright red
		Warn:  r.NewStyle().Foreground(lipgloss.Color("11")).Bold(true), // bright yellow
		Info:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // bright green
		Debug: r.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).Faint(true),
		Trace: r.NewStyle().Foreground(lipgloss.Color("5")).Faint(true),
	}
}

// Console writes errors, warnings and traces to errW and everything else
// to out.
type Console struct {
	out    io.Writer
	errW   io.Writer
	filter Level
	theme  Theme
	lower  cases.Caser
}

// NewConsole returns a console sink that drops messages less severe than
// filter. When color is false all output is plain text.
func NewConsole(out, errW io.Writer, filter Level, color bool) *Console {
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)

	return &Console{
		out:    out,
		errW:   errW,
		filter: filter,
		theme:  NewTheme(r),
		lower:  cases.Lower(language.Und),
	}
}

// Enabled reports whether messages at level are written.
func (c *Console) Enabled(level Level) bool {
	return level <= c.filter
}

// Emit implements Sink. Write errors are ignored.
func (c *Console) Emit(level Level, msg string) {
	if !c.Enabled(level) {
		return
	}
	switch level {
	case Error:
		c.alarm(c.theme.Error, level, msg)
	case Warn:
		c.alarm(c.theme.Warn, level, msg)
	case Info:
		c.status(c.theme.Info, msg)
	case Debug:
		c.status(c.theme.Debug, msg)
	default:
		c.trace(msg)
	}
}

// alarm prints "error: msg" or "warn: msg".
func (c *Console) alarm(style lipgloss.Style, level Level, msg string) {
	label := c.lower.String(level.String())
	_, _ = fmt.Fprintf(c.errW, "%s %s\n", style.Render(label+":"), msg)
}

// status prints the first word right-aligned and styled, then the rest.
func (c *Console) status(style lipgloss.Style, msg string) {
	head, body, _ := strings.Cut(msg, " ")
	pad := headWidth - runewidth.StringWidth(head)
	if pad < 0 {
		pad = 0
	}
	line := strings.Repeat(" ", pad) + style.Render(head)
	if body != "" {
		line += " " + body
	}
	_, _ = fmt.Fprintln(c.out, line)
}

func (c *Console) trace(msg string) {
	loc := c.theme.Trace.Render("[" + callerOutsideDiag() + "]")
	_, _ = fmt.Fprintf(c.errW, "%s %s\n", loc, msg)
}

// callerOutsideDiag returns "pkg|file:line" for the first stack frame
// outside this package's non-test sources.
func callerOutsideDiag() string {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if !strings.Contains(f.Function, "/internal/diag.") || strings.HasSuffix(f.File, "_test.go") {
			pkg, _, _ := strings.Cut(filepath.Base(f.Function), ".")
			return fmt.Sprintf("%s|%s:%d", pkg, filepath.Base(f.File), f.Line)
		}
		if !more {
			return "unknown"
		}
	}
}
