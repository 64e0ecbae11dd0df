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
	"fmt"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
)

// ComputeRootDigest folds a sequence of digests into a single digest of
// the named algorithm, by absorbing each digest's raw bytes in order.
// Callers hashing many inputs (files, shards) can publish one root
// value instead of the whole list.
//
// Every input digest must carry the same algorithm tag as the requested
// root algorithm; a mixed list is rejected rather than silently folded.
func ComputeRootDigest(algorithm string, digestList []digests.Digest) (digests.Digest, error) {
	engine, err := hashengines.Create(algorithm)
	if err != nil {
		return digests.Digest{}, err
	}

	for i, d := range digestList {
		if d.Algorithm() != algorithm {
			return digests.Digest{}, fmt.Errorf("digest %d is %q, want %q", i, d.Algorithm(), algorithm)
		}
		engine.Update(d.Value())
	}

	root, err := engine.Compute()
	if err != nil {
		return digests.Digest{}, fmt.Errorf("failed to compute root digest: %w", err)
	}
	return root, nil
}
