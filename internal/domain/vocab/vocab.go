// Package vocab loads the set of words a matcher searches for.
package vocab

import (
	"fmt"
	"io"
	"sort"

	"github.com/corey/wordmatch/internal/adapters/textio"
	"github.com/corey/wordmatch/internal/domain/normalize"
)

// Vocabulary is an immutable set of normalized terms. Concurrent reads are
// safe.
type Vocabulary struct {
	terms map[string]struct{}
}

// Load reads the vocabulary file at path, one term per line. Every line is
// normalized with norm; blank lines become the empty term.
func Load(path string, norm normalize.Func, opts textio.Options) (*Vocabulary, error) {
	f, err := textio.Open(path, opts)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary: %w", err)
	}
	defer f.Close()

	v, err := build(f.ChunkReader, norm)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary %s: %w", path, err)
	}
	return v, nil
}

// Read builds a vocabulary from r.
func Read(r io.Reader, norm normalize.Func, opts textio.Options) (*Vocabulary, error) {
	cr, err := textio.NewChunkReader(r, opts)
	if err != nil {
		return nil, err
	}
	return build(cr, norm)
}

// FromTerms builds a vocabulary from already-split terms.
func FromTerms(terms []string, norm normalize.Func) *Vocabulary {
	v := &Vocabulary{terms: make(map[string]struct{}, len(terms))}
	for _, t := range terms {
		v.terms[norm(t)] = struct{}{}
	}
	return v
}

func build(cr *textio.ChunkReader, norm normalize.Func) (*Vocabulary, error) {
	v := &Vocabulary{terms: make(map[string]struct{})}
	for {
		lines, err := cr.ReadChunk()
		if err != nil {
			return nil, err
		}
		if len(lines) == 0 {
			return v, nil
		}
		for _, line := range lines {
			v.terms[norm(line)] = struct{}{}
		}
	}
}

// Contains reports whether term (already normalized) is in the vocabulary.
func (v *Vocabulary) Contains(term string) bool {
	_, ok := v.terms[term]
	return ok
}

// Len returns the number of unique terms.
func (v *Vocabulary) Len() int {
	return len(v.terms)
}

// Terms returns all terms in sorted order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, 0, len(v.terms))
	for t := range v.terms {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
