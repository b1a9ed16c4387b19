// cargo-yaml generates a Cargo.toml manifest from a Cargo.yaml template.
//
// Usage:
//
//	cargo yaml                          # Cargo.yaml -> Cargo.toml
//	cargo yaml -v other.yaml            # verbose, custom template
//	cargo yaml --manifest-path out/Cargo.toml
//	cargo yaml -- build --release       # generate, then run cargo build
//	gen-template | cargo yaml -         # template from stdin
//
// Exit codes: 0 on success or --help, 1 when generation fails, 2 on a usage
// error. When arguments follow "--", cargo's own exit code is returned.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/term"

	"github.com/dkoosis/cargo-yaml/internal/cli"
	"github.com/dkoosis/cargo-yaml/internal/config"
	"github.com/dkoosis/cargo-yaml/internal/diag"
	"github.com/dkoosis/cargo-yaml/internal/handoff"
	"github.com/dkoosis/cargo-yaml/internal/version"
	"github.com/dkoosis/cargo-yaml/pkg/manifest"
	"github.com/dkoosis/cargo-yaml/pkg/mapper"
	"github.com/dkoosis/cargo-yaml/pkg/template"
)

// errIO marks failures reading the template or writing the manifest.
var errIO = errors.New("i/o error")

// stdinPath is the template path that selects standard input, and
// stdinName is how that input is named in messages and the header.
const (
	stdinPath = "-"
	stdinName = "<stdin>"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	own, passthrough := cli.SplitArgs(args)

	opts, err := cli.Interpret(own)
	if errors.Is(err, cli.ErrHelp) {
		cli.PrintUsage(stdout)
		return 0
	}
	if err != nil {
		cli.PrintUsage(stderr)
		return 2
	}

	appCfg, cfgErr := config.LoadConfig()
	resolved, err := config.ResolveConfig(opts, appCfg)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	sink := diag.NewConsole(stdout, stderr, resolved.LogLevel, useColor(resolved.Color, stderr))
	if cfgErr != nil {
		diag.Emitf(sink, diag.Warn, "%v; using defaults", cfgErr)
	}
	diag.Emitf(sink, diag.Debug, "Version cargo-yaml %s (%s %s)", version.Version, version.CommitHash, version.BuildDate)
	if sink.Enabled(diag.Trace) {
		sink.Emit(diag.Trace, "options "+spew.Sdump(opts))
		sink.Emit(diag.Trace, "config "+spew.Sdump(resolved))
	}

	if err := generate(opts, resolved.Header, stdin, sink); err != nil {
		diag.Emitf(sink, diag.Error, "%v", err)
		return 1
	}

	if len(passthrough) == 0 {
		return 0
	}
	return runCargo(resolved.Cargo, passthrough, stdin, stdout, stderr, sink)
}

// generate reads the template, converts it and writes the manifest. The
// manifest is left untouched unless every step succeeds.
func generate(opts cli.Options, header bool, stdin io.Reader, sink diag.Sink) error {
	name := opts.TemplatePath
	if name == stdinPath {
		name = stdinName
	}
	diag.Emitf(sink, diag.Debug, "Reading `%s`", name)
	data, err := readTemplate(opts.TemplatePath, stdin)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", errIO, name, err)
	}

	doc, err := template.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	table, err := mapper.New(sink).ConvertDocument(doc)
	if err != nil {
		return fmt.Errorf("converting %s: %w", name, err)
	}
	diag.Emitf(sink, diag.Debug, "Converted top-level keys: %s", strings.Join(table.Keys(), ", "))

	source := ""
	if header {
		source = name
	}
	out, err := manifest.Marshal(table, source)
	if err != nil {
		return err
	}

	diag.Emitf(sink, diag.Info, "Generating new `%s` manifest file", opts.ManifestPath)
	if err := writeFileAtomic(opts.ManifestPath, out); err != nil {
		return fmt.Errorf("%w: writing %s: %v", errIO, opts.ManifestPath, err)
	}
	return nil
}

// readTemplate reads path, or all of stdin when path is "-".
func readTemplate(path string, stdin io.Reader) ([]byte, error) {
	if path != stdinPath {
		return os.ReadFile(path)
	}
	if stdin == nil {
		return nil, errors.New("no standard input")
	}
	return io.ReadAll(stdin)
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place, so readers never see a partial manifest.
func writeFileAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// runCargo hands the remaining arguments to cargo and returns its exit code.
func runCargo(cargo string, args []string, stdin io.Reader, stdout, stderr io.Writer, sink diag.Sink) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := &handoff.Runner{Cargo: cargo, Stdin: stdin, Stdout: stdout, Stderr: stderr, Sink: sink}
	code, err := r.Run(ctx, args)
	if err != nil {
		diag.Emitf(sink, diag.Error, "%v", err)
	}
	return code
}

// useColor decides whether diagnostics are styled.
func useColor(c cli.Color, w io.Writer) bool {
	switch c {
	case cli.ColorAlways:
		return true
	case cli.ColorNever:
		return false
	default:
		return isTTYWriter(w)
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
