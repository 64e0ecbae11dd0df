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

// Package hashengines defines the interfaces for incremental digest
// computation and a registry of algorithm factories.
//
// The interfaces are deliberately small: HashEngine covers finalization
// and identity, Streaming covers incremental input, and
// StreamingHashEngine composes the two. The memory package provides the
// SHA-2 backed implementations and registers them here under their
// canonical names.
package hashengines

import (
	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
)

// HashEngine is the core interface for computing a digest.
type HashEngine interface {
	// Compute finalizes the computation and returns the resulting
	// digest, tagged with the engine's algorithm name.
	Compute() (digests.Digest, error)

	// DigestName returns the canonical name of the algorithm, e.g.
	// "sha256" or "sha512/224". The name must uniquely identify the
	// digest layout; it becomes the algorithm tag of every Digest the
	// engine produces.
	DigestName() string

	// DigestSize returns the size in bytes of digests produced by this
	// engine. It must match the Size of the Digest returned by Compute.
	DigestSize() int
}

// Streaming is the interface for feeding input incrementally. It is
// kept separate from HashEngine so one-shot implementations need not
// pretend to stream.
type Streaming interface {
	// Update absorbs more input. Splitting the input across any number
	// of Update calls yields the same digest as absorbing it at once.
	Update(data []byte)

	// Reset clears the engine to its initial state and, if data is
	// non-empty, absorbs it as the first input of the new computation.
	Reset(data []byte)
}

// StreamingHashEngine combines HashEngine and Streaming for full
// incremental hashing.
type StreamingHashEngine interface {
	HashEngine
	Streaming
}
