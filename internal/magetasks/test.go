package magetasks

// TestAll runs all tests.
func TestAll() error {
	PrintHeader("tests")
	if err := Run("go test", "go", "test", "./..."); err != nil {
		return err
	}
	PrintSuccess("tests")
	return nil
}

// TestCoverage runs tests with coverage.
func TestCoverage() error {
	PrintHeader("coverage")
	if err := Run("go test -cover", "go", "test", "-coverprofile=coverage.out", "./..."); err != nil {
		return err
	}

	// Show coverage report
	_ = Run("go tool cover", "go", "tool", "cover", "-func=coverage.out")

	PrintSuccess("coverage: coverage.out")
	return nil
}

// TestRace runs tests with race detector.
func TestRace() error {
	PrintHeader("race detector")
	if err := Run("go test -race", "go", "test", "-race", "./..."); err != nil {
		return err
	}
	PrintSuccess("race detector")
	return nil
}
