// Package resultfile implements ports.ResultSink as a flat text file named
// after the wall-clock time of the write: output-<unix seconds>.txt.
package resultfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/corey/wordmatch/internal/ports"
)

// Writer writes match results into Dir. Two writes within the same clock
// tick target the same file; the later one wins.
type Writer struct {
	Dir string
	Now func() time.Time // nil = time.Now
}

var _ ports.ResultSink = (*Writer)(nil)

// NewWriter returns a Writer for dir ("" = current directory).
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Write creates the output file and returns its path.
func (w *Writer) Write(result *ports.MatchResult) (string, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	path := filepath.Join(w.Dir, Filename(now()))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create result file: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	if _, err := result.WriteTo(bw); err != nil {
		return "", fmt.Errorf("write result file %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("write result file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close result file %s: %w", path, err)
	}
	return path, nil
}

// Filename returns the output file name for t.
func Filename(t time.Time) string {
	return "output-" + Timestamp(t) + ".txt"
}

// Timestamp renders t as fractional unix seconds in the shortest decimal
// form, always with a fractional part ("1700000000.0").
func Timestamp(t time.Time) string {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/float64(time.Second)
	s := strconv.FormatFloat(secs, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
