package magetasks

import (
	"fmt"
	"os"
	"time"
)

// BuildAll builds the cargo-yaml binary with version information stamped in.
func BuildAll() error {
	PrintHeader("build")

	version, err := Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		version = "dev"
	}
	commit, err := Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "unknown"
	}
	date := time.Now().UTC().Format(time.RFC3339)

	if err := Run("go build", "go", "build", "-ldflags", LDFlags(version, commit, date), "-o", BinPath, MainPackage); err != nil {
		return err
	}

	PrintSuccess(fmt.Sprintf("build: %s", BinPath))
	return nil
}

// LDFlags returns the linker flags that set the version package variables.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// Clean removes build artifacts.
func Clean() error {
	PrintHeader("clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	if err := Run("go clean", "go", "clean", "-cache"); err != nil {
		return err
	}

	PrintSuccess("clean")
	return nil
}
