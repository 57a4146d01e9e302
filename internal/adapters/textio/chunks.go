// Package textio reads text files as bounded chunks of whole lines.
//
// Each ReadChunk call keeps consuming complete lines until at least the
// chunk size in bytes has been read, so peak memory is bounded by the chunk
// size plus one line. `\n`, `\r\n` and a lone `\r` all end a line.
package textio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/corey/wordmatch/internal/adapters/charset"
)

// DefaultChunkSize is the byte budget of one ReadChunk call (1 MiB).
const DefaultChunkSize = 1024 * 1024

const bufferSize = 64 * 1024

// Options controls how a file is opened for chunked reading.
type Options struct {
	ChunkSize      int  // 0 = DefaultChunkSize
	DetectEncoding bool // sniff and transcode non-UTF-8 input
}

// ChunkReader yields lines in bounded chunks. Returned lines carry no
// terminators.
type ChunkReader struct {
	br        *bufio.Reader
	chunkSize int
	eof       bool
	charset   string
}

// NewChunkReader wraps r. When opts.DetectEncoding is set the stream is
// sniffed and transcoded to UTF-8 first.
func NewChunkReader(r io.Reader, opts Options) (*ChunkReader, error) {
	name := charset.UTF8
	if opts.DetectEncoding {
		decoded, detected, err := charset.NewReader(r)
		if err != nil {
			return nil, err
		}
		r, name = decoded, detected
	}
	size := opts.ChunkSize
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &ChunkReader{
		br:        bufio.NewReaderSize(r, bufferSize),
		chunkSize: size,
		charset:   name,
	}, nil
}

// Charset returns the encoding the stream was decoded from.
func (c *ChunkReader) Charset() string {
	return c.charset
}

// ReadChunk returns the next chunk of lines. An empty slice with a nil
// error means end of input.
func (c *ChunkReader) ReadChunk() ([]string, error) {
	if c.eof {
		return nil, nil
	}
	var lines []string
	consumed := 0
	for consumed < c.chunkSize {
		seg, err := c.br.ReadString('\n')
		if len(seg) > 0 {
			consumed += len(seg)
			lines = appendLines(lines, seg)
		}
		if errors.Is(err, io.EOF) {
			c.eof = true
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read chunk: %w", err)
		}
	}
	return lines, nil
}

// appendLines splits one '\n'-terminated segment on lone carriage returns.
func appendLines(lines []string, seg string) []string {
	seg = strings.TrimSuffix(seg, "\n")
	seg = strings.TrimSuffix(seg, "\r")
	if !strings.Contains(seg, "\r") {
		return append(lines, seg)
	}
	return append(lines, strings.Split(seg, "\r")...)
}

// File is a ChunkReader over an open file.
type File struct {
	*ChunkReader
	f *os.File
}

// Open opens path for chunked reading. The caller must Close the file.
func Open(path string, opts Options) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	cr, err := NewChunkReader(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &File{ChunkReader: cr, f: f}, nil
}

// Close releases the underlying file.
func (f *File) Close() error {
	return f.f.Close()
}
