package charset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
)

func TestNewReader_UTF8PassThrough(t *testing.T) {
	src := "aardvark\nnaïve\n"
	r, name, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, UTF8, name)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestNewReader_Empty(t *testing.T) {
	r, name, err := NewReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, UTF8, name)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNewReader_UTF16LEWithBOM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, c := range "hello\nworld\n" {
		buf.WriteByte(byte(c))
		buf.WriteByte(0)
	}

	r, name, err := NewReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "UTF-16LE", name)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello\nworld\n", string(out))
}

func TestNewReader_GBK(t *testing.T) {
	src := "我们的中国是一个大国\n他们在这里上学\n我不是他的人\n这个时候我们都有了\n你说的都是对的\n我们都是中国人\n"
	encoded, err := simplifiedchinese.GBK.NewEncoder().String(src)
	require.NoError(t, err)

	r, name, err := NewReader(strings.NewReader(encoded))
	require.NoError(t, err)
	assert.Equal(t, "GB-18030", name)

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, src, string(out))
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"UTF-8", "UTF-16LE", "UTF-16BE", "GB-18030", "Big5", "ISO-8859-1", "windows-1252", "Shift_JIS"} {
		enc, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, enc, name)
	}

	_, err := Lookup("no-such-charset")
	assert.Error(t, err)
}

func TestCompleteRunes(t *testing.T) {
	b := []byte("ab\xc3\xa9")
	assert.Equal(t, b, completeRunes(b, true))
	assert.Equal(t, []byte("ab"), completeRunes(b[:3], true))
	assert.Equal(t, b[:3], completeRunes(b[:3], false))
}
