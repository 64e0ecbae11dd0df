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

// Package digests provides the value type for computed hash digests.
//
// A Digest carries both the raw digest bytes and the name of the
// algorithm that produced them. The tag participates in equality, so a
// SHA-512/256 digest never compares equal to a SHA-256 digest even when
// both are 32 bytes. Mixing variants is a caller bug this type is
// designed to surface.
package digests

import (
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest is a computed hash digest tagged with its algorithm name.
//
// Digest is effectively immutable: fields are unexported and every
// constructor and accessor copies the underlying bytes.
type Digest struct {
	algorithm string
	value     []byte
}

// NewDigest creates a Digest for the given algorithm name and raw
// digest bytes. The value slice is copied, so later mutation of the
// caller's slice does not affect the Digest.
func NewDigest(algorithm string, value []byte) Digest {
	cp := make([]byte, len(value))
	copy(cp, value)
	return Digest{algorithm: algorithm, value: cp}
}

// FromHex parses a hexadecimal digest literal into a Digest tagged with
// the given algorithm name. The text must be non-empty, of even length
// and drawn entirely from the hexadecimal alphabet; malformed text is
// rejected here, at parse time, never at comparison time.
//
// FromHex does not know the digest sizes of individual algorithms; use
// the engines package's ParseDigest when the length should be validated
// against a registered algorithm.
func FromHex(algorithm, hexValue string) (Digest, error) {
	if hexValue == "" {
		return Digest{}, fmt.Errorf("empty hex digest for algorithm %q", algorithm)
	}
	raw, err := hex.DecodeString(hexValue)
	if err != nil {
		return Digest{}, fmt.Errorf("invalid hex digest %q: %w", hexValue, err)
	}
	return Digest{algorithm: algorithm, value: raw}, nil
}

// Equal reports whether two digests were produced by the same algorithm
// and carry the same value. The algorithm tags are compared first; the
// values are then compared in constant time.
func Equal(a, b Digest) bool {
	return a.algorithm == b.algorithm &&
		len(a.value) == len(b.value) &&
		subtle.ConstantTimeCompare(a.value, b.value) == 1
}

// Algorithm returns the name of the algorithm that produced this
// digest, e.g. "sha256" or "sha512/224".
func (d Digest) Algorithm() string {
	return d.algorithm
}

// Value returns a copy of the raw digest bytes.
func (d Digest) Value() []byte {
	cp := make([]byte, len(d.value))
	copy(cp, d.value)
	return cp
}

// Hex returns the lowercase hexadecimal encoding of the digest bytes.
func (d Digest) Hex() string {
	return hex.EncodeToString(d.value)
}

// Size returns the digest length in bytes.
func (d Digest) Size() int {
	return len(d.value)
}

// String formats the digest as "algorithm:hexvalue".
func (d Digest) String() string {
	return fmt.Sprintf("%s:%s", d.algorithm, d.Hex())
}
