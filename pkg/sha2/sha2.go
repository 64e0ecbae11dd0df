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

// Package sha2 implements the SHA-2 family of hash algorithms as defined
// in FIPS 180-4: SHA-224, SHA-256, SHA-384, SHA-512, SHA-512/224 and
// SHA-512/256.
//
// The package is built around a single generic engine parameterized over
// the state word width. Everything that distinguishes one family member
// from another (block size, digest size, initial state vector, schedule
// functions and the compression rounds) lives in an immutable Config
// value, so the 32-bit and 64-bit families share one update loop, one
// padding/finalization path and one digest extraction path.
//
// Hashers are plain values: assigning one hasher to another captures a
// checkpoint of the running state, which can then be advanced
// independently (hash a common prefix once, fork, hash two different
// suffixes). Hashers also satisfy hash.Hash, so they can be used anywhere
// the standard library hash interfaces are expected.
package sha2

// Word constrains the state word width of a SHA-2 family member.
// The 32-bit family (SHA-224, SHA-256) uses uint32 words; the 64-bit
// family (SHA-384, SHA-512 and the SHA-512/t variants) uses uint64.
type Word interface {
	~uint32 | ~uint64
}

// stateWords is the number of running hash words, common to every SHA-2
// family member.
const stateWords = 8

const (
	// maxBlockSize is the block size of the 64-bit family, the largest
	// in SHA-2. Hasher buffers are sized for it regardless of variant so
	// that the hasher stays a fixed-size, copyable value.
	maxBlockSize = 128

	// maxScheduleSize is the message schedule length of the 64-bit
	// family, the largest in SHA-2.
	maxScheduleSize = 80
)

// Config describes one SHA-2 family member. A Config value is immutable
// after construction and shared by every Hasher of that variant; the
// engine never mutates it.
//
// A truncated variant (SHA-224, SHA-384, SHA-512/224, SHA-512/256) is a
// complete Config of its own: it differs from its parent by its initial
// state vector and digest size only. There is no runtime truncation flag.
type Config[W Word] struct {
	// Name is the canonical lower-case algorithm name, e.g. "sha256" or
	// "sha512/224". It tags digests so values produced by different
	// variants never compare equal.
	Name string

	// BlockSize is the input block size in bytes: 64 for the 32-bit
	// family, 128 for the 64-bit family.
	BlockSize int

	// Size is the digest length in bytes. It need not be a multiple of
	// the word size (SHA-512/224 produces 28 bytes from 64-bit words).
	// It must not exceed the serialized state size, 8 * sizeof(W).
	Size int

	// LengthSize is the number of trailing bytes of the final block
	// reserved for the big-endian total bit length: 8 for the 32-bit
	// family, 16 for the 64-bit family.
	LengthSize int

	// ScheduleSize is the message schedule length in words: 64 for the
	// 32-bit family, 80 for the 64-bit family.
	ScheduleSize int

	// Init is the initial state vector.
	Init [stateWords]W

	// Sigma0 and Sigma1 are the σ0/σ1 schedule expansion functions.
	Sigma0 func(W) W
	Sigma1 func(W) W

	// Rounds applies the full compression function for this family to
	// state, consuming the expanded message schedule w. It must be pure:
	// the next state depends only on (w, state).
	Rounds func(state *[stateWords]W, w []W)
}
