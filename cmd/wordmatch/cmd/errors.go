package cmd

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/corey/wordmatch/internal/app"
)

// FormatError renders err for the terminal, adding actionable guidance for
// the failures users hit most: missing files and a busy output directory.
func FormatError(err error) string {
	var sb strings.Builder
	sb.WriteString("error: ")
	sb.WriteString(err.Error())

	switch {
	case errors.Is(err, fs.ErrNotExist):
		sb.WriteString("\n  → check the path; relative paths resolve from the current directory")
	case errors.Is(err, fs.ErrPermission):
		sb.WriteString("\n  → check read permission on the input and vocabulary files, and write permission on --output-dir")
	case app.IsLockHeld(err):
		sb.WriteString("\n  → another `wordmatch watch` is writing to this output directory" +
			"\n  → stop it first, or pass a different --output-dir")
	}
	return sb.String()
}
