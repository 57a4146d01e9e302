// Package charset sniffs the encoding of text input and transcodes it to
// UTF-8. Valid UTF-8 is passed through untouched; anything else is handed to
// chardet and decoded with the matching golang.org/x/text encoding.
package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// UTF8 is the name reported when no transcoding is applied.
const UTF8 = "UTF-8"

const (
	sniffLen      = 64 * 1024
	minConfidence = 50
)

// NewReader returns r transcoded to UTF-8 along with the detected charset
// name. Detection failures and unsupported charsets fall back to passing the
// bytes through unchanged.
func NewReader(r io.Reader) (io.Reader, string, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	sample, err := br.Peek(sniffLen)
	truncated := err == nil
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, "", fmt.Errorf("sniff encoding: %w", err)
	}
	if len(sample) == 0 || utf8.Valid(completeRunes(sample, truncated)) {
		return br, UTF8, nil
	}

	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil || result.Confidence < minConfidence {
		return br, UTF8, nil
	}
	if strings.EqualFold(result.Charset, UTF8) {
		return br, UTF8, nil
	}
	enc, err := Lookup(result.Charset)
	if err != nil {
		return br, UTF8, nil
	}
	return transform.NewReader(br, enc.NewDecoder()), result.Charset, nil
}

// Lookup maps a chardet charset name to a decoder.
func Lookup(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "utf-8":
		return encoding.Nop, nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case "gbk", "gb2312", "gb-18030", "gb18030":
		return simplifiedchinese.GB18030, nil
	case "big5":
		return traditionalchinese.Big5, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", name, err)
	}
	return enc, nil
}

// completeRunes drops a trailing partial rune left by a truncated peek.
func completeRunes(b []byte, truncated bool) []byte {
	if !truncated {
		return b
	}
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			if !utf8.FullRune(b[i:]) {
				return b[:i]
			}
			break
		}
	}
	return b
}
