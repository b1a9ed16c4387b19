package magetasks

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/cargo-yaml/internal/diag"
)

// out receives all task output. Tests replace it with a diag.Recorder.
var out diag.Sink = diag.NewConsole(os.Stdout, os.Stderr, diag.Debug, isTerminal(os.Stdout))

// cmdStdout and cmdStderr receive the output of commands started by Run.
var (
	cmdStdout io.Writer = os.Stdout
	cmdStderr io.Writer = os.Stderr
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintHeader announces a group of steps.
func PrintHeader(title string) {
	diag.Emitf(out, diag.Info, "Starting %s", title)
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	diag.Emitf(out, diag.Info, "Finished %s", msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	out.Emit(diag.Warn, msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	out.Emit(diag.Error, msg)
}

// Run executes name with args, streaming its output. label names the step
// in progress lines.
func Run(label, name string, args ...string) error {
	diag.Emitf(out, diag.Info, "Running %s", label)
	diag.Emitf(out, diag.Debug, "Command %s %s", name, strings.Join(args, " "))

	cmd := exec.Command(name, args...)
	cmd.Stdout = cmdStdout
	cmd.Stderr = cmdStderr
	if err := cmd.Run(); err != nil {
		if !IsCommandNotFound(err) {
			PrintError(fmt.Sprintf("%s failed: %v", label, err))
		}
		return err
	}
	return nil
}

// Output executes name with args and returns its trimmed stdout.
func Output(name string, args ...string) (string, error) {
	b, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
