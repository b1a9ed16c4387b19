package magetasks

import (
	"fmt"
)

// QualityCheck runs linters, tests and a build. Lint findings are
// reported but do not fail the check.
func QualityCheck() error {
	PrintHeader("quality checks")

	if err := LintAll(); err != nil {
		PrintWarning("linting issues found")
	}
	if err := TestAll(); err != nil {
		return fmt.Errorf("tests failed: %w", err)
	}
	if err := BuildAll(); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	PrintSuccess("quality checks")
	return nil
}
