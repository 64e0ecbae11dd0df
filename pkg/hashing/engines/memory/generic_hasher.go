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

// Package memory provides in-memory streaming hash engines backed by
// the SHA-2 implementations in pkg/sha2. Importing this package
// registers an engine for every SHA-2 variant with the hashengines
// registry.
package memory

import (
	"hash"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
)

var _ hashengines.StreamingHashEngine = (*GenericHashEngine)(nil)

// HashFactoryFunc creates a fresh hash.Hash instance.
type HashFactoryFunc func() hash.Hash

// GenericHashEngine adapts any hash.Hash into a StreamingHashEngine.
// One wrapper serves every SHA-2 variant; the factory pins the variant
// and Reset uses it to rebuild a clean state.
type GenericHashEngine struct {
	name    string
	size    int
	factory HashFactoryFunc
	h       hash.Hash
}

// NewGenericHashEngine creates an engine named name producing size-byte
// digests from hashes built by factory. If initialData is non-empty it
// becomes the first input of the computation.
func NewGenericHashEngine(name string, size int, factory HashFactoryFunc, initialData []byte) *GenericHashEngine {
	e := &GenericHashEngine{
		name:    name,
		size:    size,
		factory: factory,
		h:       factory(),
	}
	if len(initialData) > 0 {
		_, _ = e.h.Write(initialData)
	}
	return e
}

// Update absorbs more input into the running state.
func (e *GenericHashEngine) Update(data []byte) {
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Reset rebuilds a clean state and optionally seeds it with data.
func (e *GenericHashEngine) Reset(data []byte) {
	e.h = e.factory()
	if len(data) > 0 {
		_, _ = e.h.Write(data)
	}
}

// Compute finalizes the computation and returns the tagged digest. The
// running state is left untouched (hash.Hash's Sum contract), so Update
// may continue afterwards.
func (e *GenericHashEngine) Compute() (digests.Digest, error) {
	return digests.NewDigest(e.name, e.h.Sum(nil)), nil
}

// DigestName returns the canonical algorithm name.
func (e *GenericHashEngine) DigestName() string {
	return e.name
}

// DigestSize returns the digest length in bytes.
func (e *GenericHashEngine) DigestSize() int {
	return e.size
}
