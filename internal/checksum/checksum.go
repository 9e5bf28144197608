// Package checksum computes SHA-256 digests of files in bounded memory.
package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// BufferSize is the read chunk size. Memory use does not grow with input size.
const BufferSize = 8 << 10

var (
	// ErrOpen reports that the input file could not be opened.
	ErrOpen = errors.New("cannot open file")
	// ErrRead reports an I/O failure part way through the input.
	ErrRead = errors.New("read failed")
)

// Result pairs a hex digest with the base name of the hashed input.
type Result struct {
	Digest string
	Name   string
}

// String formats r the way sha256sum does: "<digest>  <name>".
func (r Result) String() string {
	return r.Digest + "  " + r.Name
}

// Sum streams r through SHA-256 and returns the lowercase hex digest.
func Sum(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, BufferSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			// hash.Hash.Write never returns an error.
			_, _ = h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrRead, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Reader hashes r and labels the result with name.
func Reader(name string, r io.Reader) (Result, error) {
	d, err := Sum(r)
	if err != nil {
		return Result{}, err
	}
	return Result{Digest: d, Name: name}, nil
}

// File hashes the file at path. The result is named after the path's base
// name. The file is closed before File returns.
func File(path string) (Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer f.Close()
	return Reader(filepath.Base(path), f)
}
