package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(filter Level, color bool) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errW bytes.Buffer
	return NewConsole(&out, &errW, filter, color), &out, &errW
}

func TestConsole_RoutesLevelsToStreams(t *testing.T) {
	t.Parallel()

	c, out, errW := newTestConsole(Trace, false)

	c.Emit(Error, "boom")
	c.Emit(Warn, "careful")
	c.Emit(Info, "Generating new manifest")
	c.Emit(Debug, "Reading Cargo.yaml")
	c.Emit(Trace, "visiting mapping")

	assert.Equal(t, "  Generating new manifest\n     Reading Cargo.yaml\n", out.String())

	lines := strings.Split(strings.TrimSuffix(errW.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "error: boom", lines[0])
	assert.Equal(t, "warn: careful", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "[diag|console_test.go:"), "trace line: %q", lines[2])
	assert.True(t, strings.HasSuffix(lines[2], "] visiting mapping"), "trace line: %q", lines[2])
}

func TestConsole_DropsMessagesBelowFilter(t *testing.T) {
	t.Parallel()

	c, out, errW := newTestConsole(Warn, false)

	c.Emit(Info, "Generating new manifest")
	c.Emit(Debug, "noise")
	c.Emit(Trace, "noise")
	c.Emit(Warn, "kept")

	assert.Empty(t, out.String())
	assert.Equal(t, "warn: kept\n", errW.String())
	assert.False(t, c.Enabled(Info))
	assert.True(t, c.Enabled(Error))
}

func TestConsole_DoesNotPadLongHeads(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestConsole(Info, false)
	c.Emit(Info, "Autogenerating")
	assert.Equal(t, "Autogenerating\n", out.String())
}

func TestConsole_MeasuresWideRunesByColumns(t *testing.T) {
	t.Parallel()

	c, out, _ := newTestConsole(Info, false)
	// Each ideograph is two columns wide.
	c.Emit(Info, "生成 done")
	assert.Equal(t, strings.Repeat(" ", 8)+"生成 done\n", out.String())
}

func TestConsole_EmitsANSI_When_ColorEnabled(t *testing.T) {
	t.Parallel()

	c, _, errW := newTestConsole(Info, true)
	c.Emit(Error, "boom")
	assert.Contains(t, errW.String(), "\x1b[")
	assert.Contains(t, errW.String(), "boom")
}

func TestConsole_EmitsPlainText_When_ColorDisabled(t *testing.T) {
	t.Parallel()

	c, out, errW := newTestConsole(Trace, false)
	c.Emit(Error, "boom")
	c.Emit(Info, "Generating manifest")
	assert.NotContains(t, errW.String(), "\x1b[")
	assert.NotContains(t, out.String(), "\x1b[")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"error", Error, false},
		{"WARN", Warn, false},
		{"warning", Warn, false},
		{"Info", Info, false},
		{"debug", Debug, false},
		{"trace", Trace, false},
		{"loud", Info, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestRecorder_KeepsOrderAndFiltersByLevel(t *testing.T) {
	t.Parallel()

	var r Recorder
	r.Emit(Trace, "a")
	Emitf(&r, Info, "b=%d", 2)
	r.Emit(Trace, "c")

	assert.Equal(t, []string{"a", "c"}, r.Messages(Trace))
	assert.Equal(t, []string{"b=2"}, r.Messages(Info))
	assert.Len(t, r.Entries, 3)
}

func TestNop_DiscardsEverything(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		Nop().Emit(Error, "ignored")
		Emitf(Nop(), Trace, "%s", "ignored")
	})
}

func TestLevelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TRACE", Trace.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
}
