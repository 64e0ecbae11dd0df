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

// Hasher is an incremental SHA-2 computation. The zero value is not
// usable; construct one with New224 through New512_256.
//
// A Hasher is a fixed-size value with no interior pointers to mutable
// data (the Config is shared but immutable), so plain assignment copies
// the complete running state. Copying is the supported checkpoint
// mechanism: finalize the copy, keep feeding the original.
//
// A Hasher must not be used from multiple goroutines concurrently;
// distinct Hashers are fully independent.
type Hasher[W Word] struct {
	cfg *Config[W]

	h   [stateWords]W      // running hash
	x   [maxBlockSize]byte // partial block; only the first cfg.BlockSize bytes are in play
	nx  int                // bytes of x in use, always < cfg.BlockSize between calls
	len uint64             // total bytes absorbed
}

// newHasher constructs a Hasher for the given variant in its initial
// state.
func newHasher[W Word](cfg *Config[W]) *Hasher[W] {
	d := &Hasher[W]{cfg: cfg}
	d.Reset()
	return d
}

// Reset returns the hasher to the variant's initial state, discarding
// all absorbed input.
func (d *Hasher[W]) Reset() {
	d.h = d.cfg.Init
	d.nx = 0
	d.len = 0
}

// Clone returns an independent copy of the running state. The clone and
// the original can be advanced and finalized separately.
func (d *Hasher[W]) Clone() *Hasher[W] {
	c := *d
	return &c
}

// Name returns the canonical algorithm name, e.g. "sha256".
func (d *Hasher[W]) Name() string { return d.cfg.Name }

// Size returns the digest length in bytes, per the hash.Hash contract.
func (d *Hasher[W]) Size() int { return d.cfg.Size }

// BlockSize returns the input block size in bytes.
func (d *Hasher[W]) BlockSize() int { return d.cfg.BlockSize }

// Count returns the total number of input bytes absorbed so far. It is
// the sum of the lengths of all Update/Write calls, regardless of
// chunking, and is not advanced by finalization.
func (d *Hasher[W]) Count() uint64 { return d.len }

// Update absorbs p into the running state and returns the hasher for
// chaining. Splitting an input across any number of Update calls yields
// the same digest as absorbing it in one call; an empty p is a no-op.
func (d *Hasher[W]) Update(p []byte) *Hasher[W] {
	d.absorb(p)
	return d
}

// UpdateString absorbs s without copying it to a byte slice first.
func (d *Hasher[W]) UpdateString(s string) *Hasher[W] {
	bs := d.cfg.BlockSize
	d.len += uint64(len(s))
	if d.nx > 0 {
		n := copy(d.x[d.nx:bs], s)
		d.nx += n
		if d.nx < bs {
			return d
		}
		d.compress(d.x[:bs])
		d.nx = 0
		s = s[n:]
	}
	for len(s) >= bs {
		copy(d.x[:bs], s)
		d.compress(d.x[:bs])
		s = s[bs:]
	}
	if len(s) > 0 {
		d.nx = copy(d.x[:bs], s)
	}
	return d
}

// Write absorbs p, implementing io.Writer (and hash.Hash). It never
// fails.
func (d *Hasher[W]) Write(p []byte) (int, error) {
	d.absorb(p)
	return len(p), nil
}

// absorb is the block accumulator: top up a previously buffered partial
// block, compress full blocks straight out of p without staging them,
// then stash any tail as the new partial block.
func (d *Hasher[W]) absorb(p []byte) {
	bs := d.cfg.BlockSize
	d.len += uint64(len(p))

	if d.nx > 0 {
		n := copy(d.x[d.nx:bs], p)
		d.nx += n
		if d.nx < bs {
			// p fit entirely into the free space.
			return
		}
		d.compress(d.x[:bs])
		d.nx = 0
		p = p[n:]
	}

	for len(p) >= bs {
		d.compress(p[:bs])
		p = p[bs:]
	}

	if len(p) > 0 {
		d.nx = copy(d.x[:bs], p)
	}
}

// compress expands one block into the message schedule and runs the
// variant's rounds over it. block must be exactly cfg.BlockSize bytes.
func (d *Hasher[W]) compress(block []byte) {
	cfg := d.cfg
	ws := wordBytes[W]()
	if len(block) != cfg.BlockSize {
		panic("sha2: compress called with a partial block")
	}

	var w [maxScheduleSize]W
	n := cfg.BlockSize / ws
	for i := 0; i < n; i++ {
		w[i] = loadWord[W](block[i*ws : (i+1)*ws])
	}
	for i := n; i < cfg.ScheduleSize; i++ {
		w[i] = w[i-16] + cfg.Sigma0(w[i-15]) + w[i-7] + cfg.Sigma1(w[i-2])
	}

	cfg.Rounds(&d.h, w[:cfg.ScheduleSize])
}

// padBlock writes the 0x80 marker after the buffered input and zero
// fills the rest of the block. It reports whether the length field no
// longer fits behind the marker, i.e. whether an extra length-carrier
// block is needed.
func (d *Hasher[W]) padBlock() bool {
	bs := d.cfg.BlockSize
	if d.nx >= bs {
		panic("sha2: partial block buffer overflow")
	}
	d.x[d.nx] = 0x80
	for i := d.nx + 1; i < bs; i++ {
		d.x[i] = 0
	}
	return bs-d.nx < 1+d.cfg.LengthSize
}

// finalize applies Merkle–Damgård padding and the big-endian bit-length
// field, compressing one or two trailing blocks. After it returns, d.h
// holds the pre-truncation digest state.
func (d *Hasher[W]) finalize() {
	bs := d.cfg.BlockSize

	if d.padBlock() {
		// The padded block had no room for the length; flush it and
		// use a zeroed block as the pure length carrier.
		d.compress(d.x[:bs])
		for i := 0; i < bs; i++ {
			d.x[i] = 0
		}
	}

	// Total bit length, big-endian, in the last LengthSize bytes. The
	// byte counter is 64-bit, so any bytes of a 16-byte field above the
	// low quad are zero (as in the standard library's sha512).
	bitlen := d.len << 3
	ls := d.cfg.LengthSize
	for i := 0; i < ls; i++ {
		shift := 8 * (ls - 1 - i)
		var b byte
		if shift < 64 {
			b = byte(bitlen >> shift)
		}
		d.x[bs-ls+i] = b
	}

	d.compress(d.x[:bs])
}

// extract serializes the digest into out, which must be exactly Size()
// bytes. When the digest length is a whole number of state words the
// leading words are encoded straight into out; otherwise the entire
// state is serialized to a scratch buffer and the digest-length prefix
// is copied out (SHA-512/224 is the only standard variant on this path).
func (d *Hasher[W]) extract(out []byte) {
	ws := wordBytes[W]()
	size := d.cfg.Size
	if len(out) != size {
		panic("sha2: digest destination has the wrong size")
	}

	if size%ws == 0 {
		for i := 0; i < size/ws; i++ {
			putWord(out[i*ws:(i+1)*ws], d.h[i])
		}
		return
	}

	var tmp [stateWords * 8]byte
	for i := 0; i < stateWords; i++ {
		putWord(tmp[i*ws:(i+1)*ws], d.h[i])
	}
	copy(out, tmp[:size])
}

// Final pads, runs the last compression(s) and writes the digest into
// out, which must be exactly Size() bytes.
//
// Final consumes the hasher: it mutates the running state, so calling it
// a second time on the same hasher pads the already-finalized state and
// produces a different, meaningless digest. Callers that need the state
// afterwards must finalize a Clone instead.
func (d *Hasher[W]) Final(out []byte) {
	d.finalize()
	d.extract(out)
}

// Sum appends the current digest to in and returns the result. Unlike
// Final it does not disturb the running state: it finalizes an internal
// copy, per the hash.Hash contract.
func (d *Hasher[W]) Sum(in []byte) []byte {
	c := *d
	var buf [stateWords * 8]byte
	out := buf[:c.cfg.Size]
	c.Final(out)
	return append(in, out...)
}
