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
	"hash"

	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
	"github.com/bmw001/hanickadot-cthash/pkg/sha2"
)

// NewSHA224Engine constructs a streaming SHA-224 engine, optionally
// seeded with initialData.
func NewSHA224Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha224", sha2.Size224,
		func() hash.Hash { return sha2.New224() }, initialData)
}

// NewSHA256Engine constructs a streaming SHA-256 engine.
func NewSHA256Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha256", sha2.Size256,
		func() hash.Hash { return sha2.New256() }, initialData)
}

// NewSHA384Engine constructs a streaming SHA-384 engine.
func NewSHA384Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha384", sha2.Size384,
		func() hash.Hash { return sha2.New384() }, initialData)
}

// NewSHA512Engine constructs a streaming SHA-512 engine.
func NewSHA512Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha512", sha2.Size512,
		func() hash.Hash { return sha2.New512() }, initialData)
}

// NewSHA512_224Engine constructs a streaming SHA-512/224 engine.
func NewSHA512_224Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha512/224", sha2.Size512_224,
		func() hash.Hash { return sha2.New512_224() }, initialData)
}

// NewSHA512_256Engine constructs a streaming SHA-512/256 engine.
func NewSHA512_256Engine(initialData []byte) *GenericHashEngine {
	return NewGenericHashEngine("sha512/256", sha2.Size512_256,
		func() hash.Hash { return sha2.New512_256() }, initialData)
}

func init() {
	register := func(name string, ctor func([]byte) *GenericHashEngine) {
		hashengines.MustRegister(name, func() (hashengines.StreamingHashEngine, error) {
			return ctor(nil), nil
		})
	}

	register("sha224", NewSHA224Engine)
	register("sha256", NewSHA256Engine)
	register("sha384", NewSHA384Engine)
	register("sha512", NewSHA512Engine)
	register("sha512/224", NewSHA512_224Engine)
	register("sha512/256", NewSHA512_256Engine)
}
