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

// wordBytes reports sizeof(W) in bytes.
func wordBytes[W Word]() int {
	// For uint32 the shift zeroes the value; for uint64 it leaves the
	// upper half.
	if ^W(0)>>16>>16 == 0 {
		return 4
	}
	return 8
}

// loadWord decodes a big-endian word from b. b must hold exactly
// sizeof(W) bytes.
//
// The conversion is pure shift/OR arithmetic rather than a native load
// plus byte swap, so it is independent of host endianness by
// construction. Tests pin it against encoding/binary.
func loadWord[W Word](b []byte) W {
	n := wordBytes[W]()
	if len(b) != n {
		panic("sha2: loadWord called with a span of the wrong size")
	}
	var v W
	for i := 0; i < n; i++ {
		v = v<<8 | W(b[i])
	}
	return v
}

// putWord encodes v into b as a big-endian word. b must hold exactly
// sizeof(W) bytes.
func putWord[W Word](b []byte, v W) {
	n := wordBytes[W]()
	if len(b) != n {
		panic("sha2: putWord called with a span of the wrong size")
	}
	for i := 0; i < n; i++ {
		b[i] = byte(v >> (8 * (n - 1 - i)))
	}
}
