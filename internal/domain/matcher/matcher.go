// Package matcher finds which vocabulary words appear as whole lines of an
// input file, and on which lines.
//
// Matching is whole-line only: a line matches when, after normalization, it
// equals a vocabulary term exactly. The vocabulary is loaded once when the
// Matcher is built; every Match call returns a fresh result.
package matcher

import (
	"fmt"
	"io"

	"github.com/corey/wordmatch/internal/adapters/textio"
	"github.com/corey/wordmatch/internal/domain/normalize"
	"github.com/corey/wordmatch/internal/domain/vocab"
	"github.com/corey/wordmatch/internal/ports"
)

// Options configures a Matcher.
type Options struct {
	IgnoreCase     bool
	DetectEncoding bool

	// ChunkSize overrides the read budget per chunk (bytes). Zero means
	// textio.DefaultChunkSize. Results never depend on it.
	ChunkSize int
}

// Matcher matches input lines against a fixed vocabulary. A Matcher is meant
// for one caller at a time.
type Matcher struct {
	vocab     *vocab.Vocabulary
	normalize normalize.Func
	readOpts  textio.Options
}

// New loads the vocabulary at vocabPath and returns a Matcher over it.
func New(vocabPath string, opts Options) (*Matcher, error) {
	norm := normalize.For(opts.IgnoreCase)
	readOpts := textio.Options{ChunkSize: opts.ChunkSize, DetectEncoding: opts.DetectEncoding}
	v, err := vocab.Load(vocabPath, norm, readOpts)
	if err != nil {
		return nil, err
	}
	return &Matcher{vocab: v, normalize: norm, readOpts: readOpts}, nil
}

// NewWithVocabulary returns a Matcher over an already-built vocabulary. The
// vocabulary must have been normalized for the same IgnoreCase mode.
func NewWithVocabulary(v *vocab.Vocabulary, opts Options) *Matcher {
	return &Matcher{
		vocab:     v,
		normalize: normalize.For(opts.IgnoreCase),
		readOpts:  textio.Options{ChunkSize: opts.ChunkSize, DetectEncoding: opts.DetectEncoding},
	}
}

// Vocabulary returns the loaded vocabulary.
func (m *Matcher) Vocabulary() *vocab.Vocabulary {
	return m.vocab
}

// Match reads the file at inputPath and returns every matched word with the
// 1-based lines it appeared on.
func (m *Matcher) Match(inputPath string) (*ports.MatchResult, error) {
	f, err := textio.Open(inputPath, m.readOpts)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	result, err := m.scan(f.ChunkReader)
	if err != nil {
		return nil, fmt.Errorf("read input %s: %w", inputPath, err)
	}
	return result, nil
}

// MatchReader is Match over an arbitrary reader.
func (m *Matcher) MatchReader(r io.Reader) (*ports.MatchResult, error) {
	cr, err := textio.NewChunkReader(r, m.readOpts)
	if err != nil {
		return nil, err
	}
	return m.scan(cr)
}

func (m *Matcher) scan(cr *textio.ChunkReader) (*ports.MatchResult, error) {
	result := ports.NewMatchResult()
	offset := 1
	for {
		lines, err := cr.ReadChunk()
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return result, nil
		}
		for i, line := range lines {
			word := m.normalize(line)
			if m.vocab.Contains(word) {
				result.Add(word, offset+i)
			}
		}
		offset += len(lines)
	}
}
