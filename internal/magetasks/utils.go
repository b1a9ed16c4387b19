package magetasks

import (
	"errors"
	"io/fs"
	"os/exec"
	"strings"
)

// IsCommandNotFound reports whether err means the program could not be
// found, as opposed to having run and failed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return true
	}
	// Some platforms only expose the condition through the message.
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}
