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

package sha2

import "math/bits"

// Digest and block sizes of the 32-bit family, in bytes.
const (
	Size224 = 28
	Size256 = 32

	BlockSize256 = 64
)

// k256 holds the round constants of the 32-bit family (FIPS 180-4 §4.2.2).
var k256 = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5, 0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3, 0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc, 0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7, 0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13, 0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3, 0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5, 0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208, 0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

// sigma0_256 and sigma1_256 are the σ0/σ1 schedule functions of the
// 32-bit family.
func sigma0_256(x uint32) uint32 {
	return bits.RotateLeft32(x, -7) ^ bits.RotateLeft32(x, -18) ^ (x >> 3)
}

func sigma1_256(x uint32) uint32 {
	return bits.RotateLeft32(x, -17) ^ bits.RotateLeft32(x, -19) ^ (x >> 10)
}

// rounds256 runs the 64 compression rounds of the 32-bit family over
// the expanded schedule w and folds the working variables back into
// state with wraparound addition.
func rounds256(state *[stateWords]uint32, w []uint32) {
	a, b, c, d, e, f, g, h := state[0], state[1], state[2], state[3], state[4], state[5], state[6], state[7]

	for i := 0; i < 64; i++ {
		t1 := h +
			(bits.RotateLeft32(e, -6) ^ bits.RotateLeft32(e, -11) ^ bits.RotateLeft32(e, -25)) +
			((e & f) ^ (^e & g)) +
			k256[i] + w[i]
		t2 := (bits.RotateLeft32(a, -2) ^ bits.RotateLeft32(a, -13) ^ bits.RotateLeft32(a, -22)) +
			((a & b) ^ (a & c) ^ (b & c))

		h = g
		g = f
		f = e
		e = d + t1
		d = c
		c = b
		b = a
		a = t1 + t2
	}

	state[0] += a
	state[1] += b
	state[2] += c
	state[3] += d
	state[4] += e
	state[5] += f
	state[6] += g
	state[7] += h
}

// SHA256 is the SHA-256 variant configuration.
var SHA256 = &Config[uint32]{
	Name:         "sha256",
	BlockSize:    BlockSize256,
	Size:         Size256,
	LengthSize:   8,
	ScheduleSize: 64,
	Init: [stateWords]uint32{
		0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
		0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
	},
	Sigma0: sigma0_256,
	Sigma1: sigma1_256,
	Rounds: rounds256,
}

// SHA224 is the SHA-224 variant configuration. It shares the SHA-256
// block size, schedule and rounds; only the initial vector and digest
// length differ.
var SHA224 = &Config[uint32]{
	Name:         "sha224",
	BlockSize:    BlockSize256,
	Size:         Size224,
	LengthSize:   8,
	ScheduleSize: 64,
	Init: [stateWords]uint32{
		0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
		0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
	},
	Sigma0: sigma0_256,
	Sigma1: sigma1_256,
	Rounds: rounds256,
}

// New256 returns a SHA-256 hasher in its initial state.
func New256() *Hasher[uint32] { return newHasher(SHA256) }

// New224 returns a SHA-224 hasher in its initial state.
func New224() *Hasher[uint32] { return newHasher(SHA224) }

// Sum256 computes the SHA-256 digest of data in one shot.
func Sum256(data []byte) [Size256]byte {
	var out [Size256]byte
	New256().Update(data).Final(out[:])
	return out
}

// Sum224 computes the SHA-224 digest of data in one shot.
func Sum224(data []byte) [Size224]byte {
	var out [Size224]byte
	New224().Update(data).Final(out[:])
	return out
}
