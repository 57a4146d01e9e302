// Package ports defines the data model and the interfaces (contracts) that
// adapters must implement. Domain logic depends only on these, never on
// concrete adapters.
package ports

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// MatchResult maps matched vocabulary words to the 1-based line numbers where
// they occurred. Words keep first-occurrence order; lines keep file order.
// A MatchResult is built by a single Match call and is not safe for
// concurrent mutation.
type MatchResult struct {
	order []string
	lines map[string][]int
}

// NewMatchResult returns an empty result.
func NewMatchResult() *MatchResult {
	return &MatchResult{lines: make(map[string][]int)}
}

// Add records that word was found on line.
func (r *MatchResult) Add(word string, line int) {
	existing, ok := r.lines[word]
	if !ok {
		r.order = append(r.order, word)
	}
	r.lines[word] = append(existing, line)
}

// Len returns the number of distinct matched words.
func (r *MatchResult) Len() int {
	return len(r.order)
}

// Words returns matched words in first-occurrence order.
func (r *MatchResult) Words() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Lines returns the line numbers recorded for word, or nil.
func (r *MatchResult) Lines(word string) []int {
	src := r.lines[word]
	if src == nil {
		return nil
	}
	out := make([]int, len(src))
	copy(out, src)
	return out
}

// Map returns a copy of the result as a plain map.
func (r *MatchResult) Map() map[string][]int {
	m := make(map[string][]int, len(r.lines))
	for _, w := range r.order {
		m[w] = r.Lines(w)
	}
	return m
}

// WriteTo writes one "word: [n1, n2]" line per matched word.
func (r *MatchResult) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, word := range r.order {
		n, err := fmt.Fprintf(w, "%s: %s\n", word, FormatLines(r.lines[word]))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// FormatLines renders line numbers as a bracketed, comma-separated list.
func FormatLines(lines []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range lines {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteByte(']')
	return sb.String()
}
