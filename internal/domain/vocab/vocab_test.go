package vocab

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corey/wordmatch/internal/adapters/textio"
	"github.com/corey/wordmatch/internal/domain/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "testdata/test_vocab.txt"

func TestLoad_IgnoreCase(t *testing.T) {
	v, err := Load(fixture, normalize.For(true), textio.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"aardvark", "aardvarks", "aardwolf", "aardwolves"}, v.Terms())
	assert.Equal(t, 4, v.Len())
}

func TestLoad_CaseSensitiveKeepsDistinctCase(t *testing.T) {
	v, err := Load(fixture, normalize.For(false), textio.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Aardwolf", "aardvark", "aardvarks", "aardwolf", "aardwolves"}, v.Terms())
	assert.True(t, v.Contains("Aardwolf"))
	assert.True(t, v.Contains("aardwolf"))
	assert.False(t, v.Contains("AARDWOLF"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), normalize.For(false), textio.Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "open vocabulary")
}

func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	v, err := Load(path, normalize.For(true), textio.Options{})
	require.NoError(t, err)
	assert.Zero(t, v.Len())
}

func TestRead_BlankLineIsEmptyTerm(t *testing.T) {
	v, err := Read(strings.NewReader("alpha\n   \nbeta\n"), normalize.For(false), textio.Options{})
	require.NoError(t, err)
	assert.True(t, v.Contains(""))
	assert.Equal(t, []string{"", "alpha", "beta"}, v.Terms())
}

func TestRead_StripsAndDeduplicates(t *testing.T) {
	v, err := Read(strings.NewReader(" Word \r\nword\nWORD\t\n"), normalize.For(true), textio.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"word"}, v.Terms())
}

func TestRead_ChunkSizeDoesNotMatter(t *testing.T) {
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)

	whole, err := Read(strings.NewReader(string(data)), normalize.For(false), textio.Options{})
	require.NoError(t, err)
	tiny, err := Read(strings.NewReader(string(data)), normalize.For(false), textio.Options{ChunkSize: 1})
	require.NoError(t, err)
	assert.Equal(t, whole.Terms(), tiny.Terms())
}

func TestFromTerms(t *testing.T) {
	v := FromTerms([]string{"Alpha ", "alpha"}, normalize.For(true))
	assert.Equal(t, []string{"alpha"}, v.Terms())
}
