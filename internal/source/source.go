// Package source reads session documents that may be gzip-compressed.
//
// JACK Rack saves its files gzip-compressed by default while Ardour writes
// plain XML. Compression is detected from the gzip magic bytes rather than
// from the file name.
package source

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/ecatools/ecaplugin/internal/types"
)

// gzipMagic is the two-byte gzip member header.
var gzipMagic = []byte{0x1f, 0x8b}

// IsGzip reports whether r starts with the gzip magic bytes. It does not
// consume any input.
func IsGzip(r *bufio.Reader) bool {
	magic, err := r.Peek(len(gzipMagic))
	if err != nil {
		return false
	}
	return bytes.Equal(magic, gzipMagic)
}

// ReadAll reads the complete document from r, transparently decompressing
// gzip input.
//
// A positive limit caps the number of (decompressed) bytes accepted; larger
// inputs fail with *types.InputTooLargeError.
func ReadAll(r io.Reader, path string, limit int64) ([]byte, error) {
	br := bufio.NewReader(r)

	var src io.Reader = br
	if IsGzip(br) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("%s: open gzip stream: %w", path, err)
		}
		defer zr.Close()
		src = zr
	}

	if limit > 0 {
		src = io.LimitReader(src, limit+1)
	}

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", path, err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return nil, &types.InputTooLargeError{Path: path, Limit: limit}
	}

	return data, nil
}

// ReadFile opens path and reads it with ReadAll.
func ReadFile(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ReadAll(f, path, limit)
}
