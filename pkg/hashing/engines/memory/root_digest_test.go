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

package memory

import (
	"testing"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
)

func TestComputeRootDigest(t *testing.T) {
	a, _ := NewSHA256Engine([]byte("first")).Compute()
	b, _ := NewSHA256Engine([]byte("second")).Compute()

	root, err := ComputeRootDigest("sha256", []digests.Digest{a, b})
	if err != nil {
		t.Fatalf("ComputeRootDigest() error = %v", err)
	}

	// The root must equal hashing the concatenated raw digest bytes.
	manual := NewSHA256Engine(a.Value())
	manual.Update(b.Value())
	want, _ := manual.Compute()
	if !digests.Equal(root, want) {
		t.Error("root digest differs from manual concatenation")
	}

	// Order matters.
	swapped, err := ComputeRootDigest("sha256", []digests.Digest{b, a})
	if err != nil {
		t.Fatalf("ComputeRootDigest() error = %v", err)
	}
	if digests.Equal(root, swapped) {
		t.Error("root digest is order-insensitive; it must not be")
	}
}

func TestComputeRootDigestRejectsMixedAlgorithms(t *testing.T) {
	a, _ := NewSHA256Engine([]byte("first")).Compute()
	b, _ := NewSHA384Engine([]byte("second")).Compute()

	if _, err := ComputeRootDigest("sha256", []digests.Digest{a, b}); err == nil {
		t.Error("mixed-algorithm list was accepted")
	}
}

func TestComputeRootDigestUnknownAlgorithm(t *testing.T) {
	if _, err := ComputeRootDigest("md5", nil); err == nil {
		t.Error("unknown algorithm was accepted")
	}
}
