package textio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAll drains r and returns every chunk it produced.
func readAll(t *testing.T, r *ChunkReader) [][]string {
	t.Helper()
	var chunks [][]string
	for {
		lines, err := r.ReadChunk()
		require.NoError(t, err)
		if len(lines) == 0 {
			return chunks
		}
		chunks = append(chunks, lines)
	}
}

func flatten(chunks [][]string) []string {
	var out []string
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func TestReadChunk_SingleChunk(t *testing.T) {
	r, err := NewChunkReader(strings.NewReader("one\ntwo\nthree\n"), Options{})
	require.NoError(t, err)

	chunks := readAll(t, r)
	require.Len(t, chunks, 1)
	assert.Equal(t, []string{"one", "two", "three"}, chunks[0])
}

func TestReadChunk_TinyChunkOneLineEach(t *testing.T) {
	r, err := NewChunkReader(strings.NewReader("one\ntwo\nthree"), Options{ChunkSize: 1})
	require.NoError(t, err)

	chunks := readAll(t, r)
	assert.Equal(t, [][]string{{"one"}, {"two"}, {"three"}}, chunks)
}

func TestReadChunk_BoundIsReachedOnWholeLines(t *testing.T) {
	// 4-byte budget: "ab\n" (3) is under budget, so "cd\n" joins the chunk.
	r, err := NewChunkReader(strings.NewReader("ab\ncd\nef\n"), Options{ChunkSize: 4})
	require.NoError(t, err)

	chunks := readAll(t, r)
	assert.Equal(t, [][]string{{"ab", "cd"}, {"ef"}}, chunks)
}

func TestReadChunk_LineEndings(t *testing.T) {
	r, err := NewChunkReader(strings.NewReader("a\r\nb\rc\n\nd\r"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "", "d"}, flatten(readAll(t, r)))
}

func TestReadChunk_KeepsSurroundingWhitespace(t *testing.T) {
	r, err := NewChunkReader(strings.NewReader("  padded \t\n"), Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"  padded \t"}, flatten(readAll(t, r)))
}

func TestReadChunk_Empty(t *testing.T) {
	r, err := NewChunkReader(strings.NewReader(""), Options{})
	require.NoError(t, err)

	lines, err := r.ReadChunk()
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Stays at EOF.
	lines, err = r.ReadChunk()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestReadChunk_LongLine(t *testing.T) {
	long := strings.Repeat("x", 3*bufferSize)
	r, err := NewChunkReader(strings.NewReader(long+"\nshort\n"), Options{ChunkSize: 10})
	require.NoError(t, err)
	assert.Equal(t, []string{long, "short"}, flatten(readAll(t, r)))
}

func TestReadChunk_ChunkSizeDoesNotChangeLines(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString(strings.Repeat("w", i%17))
		sb.WriteString("\n")
	}
	input := sb.String()

	base, err := NewChunkReader(strings.NewReader(input), Options{})
	require.NoError(t, err)
	want := flatten(readAll(t, base))
	require.Len(t, want, 500)

	for _, size := range []int{1, 2, 7, 64, 1000} {
		r, err := NewChunkReader(strings.NewReader(input), Options{ChunkSize: size})
		require.NoError(t, err)
		assert.Equal(t, want, flatten(readAll(t, r)), "chunk size %d", size)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.txt"), Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOpen_ReadsAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("alpha\nbeta\n"), 0644))

	f, err := Open(path, Options{DetectEncoding: true})
	require.NoError(t, err)
	assert.Equal(t, "UTF-8", f.Charset())
	assert.Equal(t, []string{"alpha", "beta"}, flatten(readAll(t, f.ChunkReader)))
	require.NoError(t, f.Close())
}
