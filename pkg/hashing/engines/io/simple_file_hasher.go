// Copyright 2025 The cthash Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package io

import (
	"fmt"
	"io"
	"os"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
)

// DefaultChunkSize is the read buffer size used when none is specified.
const DefaultChunkSize = 64 * 1024

// SimpleFileHasher hashes a whole file by streaming it into an inner
// StreamingHashEngine. The file is read once, in fixed-size chunks, and
// is never loaded into memory at once.
type SimpleFileHasher struct {
	filePath      string
	contentHasher hashengines.StreamingHashEngine
	chunkSize     int
}

var _ FileHasher = (*SimpleFileHasher)(nil)

// NewSimpleFileHasher constructs a SimpleFileHasher over filePath using
// contentHasher for the digest computation. chunkSize is the read
// buffer size in bytes; 0 selects DefaultChunkSize.
func NewSimpleFileHasher(filePath string, contentHasher hashengines.StreamingHashEngine, chunkSize int) (*SimpleFileHasher, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path must be non-empty")
	}
	if contentHasher == nil {
		return nil, fmt.Errorf("content hasher must not be nil")
	}
	if chunkSize < 0 {
		return nil, fmt.Errorf("chunk size must be non-negative, got %d", chunkSize)
	}
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}

	return &SimpleFileHasher{
		filePath:      filePath,
		contentHasher: contentHasher,
		chunkSize:     chunkSize,
	}, nil
}

// SetFile changes the file hashed by the next Compute call.
func (h *SimpleFileHasher) SetFile(filePath string) error {
	if filePath == "" {
		return fmt.Errorf("file path must be non-empty")
	}
	h.filePath = filePath
	return nil
}

// DigestName returns the inner engine's algorithm name.
func (h *SimpleFileHasher) DigestName() string {
	return h.contentHasher.DigestName()
}

// DigestSize is delegated to the inner engine.
func (h *SimpleFileHasher) DigestSize() int {
	return h.contentHasher.DigestSize()
}

// Compute streams the file through the inner engine and returns the
// tagged digest. The inner state is reset first, so a SimpleFileHasher
// can be pointed at successive files with SetFile.
func (h *SimpleFileHasher) Compute() (digests.Digest, error) {
	h.contentHasher.Reset(nil)

	f, err := os.Open(h.filePath)
	if err != nil {
		return digests.Digest{}, fmt.Errorf("open file %q: %w", h.filePath, err)
	}
	defer f.Close()

	if err := stream(f, h.contentHasher, h.chunkSize); err != nil {
		return digests.Digest{}, fmt.Errorf("read file %q: %w", h.filePath, err)
	}

	d, err := h.contentHasher.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("compute digest: %w", err)
	}
	return d, nil
}

// HashReader streams r into a fresh engine for the named algorithm and
// returns the digest. It is the path used for stdin and other
// non-seekable sources.
func HashReader(algorithm string, r io.Reader) (digests.Digest, error) {
	engine, err := hashengines.Create(algorithm)
	if err != nil {
		return digests.Digest{}, err
	}
	if err := stream(r, engine, DefaultChunkSize); err != nil {
		return digests.Digest{}, fmt.Errorf("read input: %w", err)
	}
	return engine.Compute()
}

// stream copies r into engine in chunkSize pieces.
func stream(r io.Reader, engine hashengines.Streaming, chunkSize int) error {
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			engine.Update(buf[:n])
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}
