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

package hashengines

import (
	"fmt"
	"sort"
	"sync"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
)

// HashEngineFactory creates a fresh engine instance.
type HashEngineFactory func() (StreamingHashEngine, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]HashEngineFactory)
)

// Register adds a factory for the given algorithm name. Names are
// case-sensitive; registering a name twice, an empty name, or a nil
// factory is an error.
func Register(algorithm string, factory HashEngineFactory) error {
	mu.Lock()
	defer mu.Unlock()

	if algorithm == "" {
		return fmt.Errorf("algorithm name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}
	if _, exists := registry[algorithm]; exists {
		return fmt.Errorf("hash algorithm %q already registered", algorithm)
	}

	registry[algorithm] = factory
	return nil
}

// MustRegister registers a factory or panics. Registration failure at
// package init is a programming error, not a runtime condition.
func MustRegister(algorithm string, factory HashEngineFactory) {
	if err := Register(algorithm, factory); err != nil {
		panic(fmt.Sprintf("failed to register hash algorithm %q: %v", algorithm, err))
	}
}

// Create instantiates a new engine for the given algorithm name.
func Create(algorithm string) (StreamingHashEngine, error) {
	mu.RLock()
	factory, exists := registry[algorithm]
	mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("unsupported hash algorithm: %s (supported: %v)",
			algorithm, SupportedAlgorithms())
	}

	engine, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create hash engine for %q: %w", algorithm, err)
	}
	return engine, nil
}

// SupportedAlgorithms returns the sorted list of registered algorithm
// names.
func SupportedAlgorithms() []string {
	mu.RLock()
	defer mu.RUnlock()

	algorithms := make([]string, 0, len(registry))
	for algo := range registry {
		algorithms = append(algorithms, algo)
	}
	sort.Strings(algorithms)
	return algorithms
}

// IsSupported reports whether an algorithm is registered.
func IsSupported(algorithm string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, exists := registry[algorithm]
	return exists
}

// Unregister removes an algorithm from the registry. Primarily useful
// for tests.
func Unregister(algorithm string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[algorithm]; !exists {
		return fmt.Errorf("hash algorithm %q is not registered", algorithm)
	}
	delete(registry, algorithm)
	return nil
}

// ParseDigest parses a hexadecimal digest literal for a registered
// algorithm, validating both the hex text and that the decoded length
// matches the algorithm's digest size. This is the fully validated path
// for embedding known-good digests in configuration or on the command
// line.
func ParseDigest(algorithm, hexValue string) (digests.Digest, error) {
	engine, err := Create(algorithm)
	if err != nil {
		return digests.Digest{}, err
	}

	d, err := digests.FromHex(algorithm, hexValue)
	if err != nil {
		return digests.Digest{}, err
	}
	if d.Size() != engine.DigestSize() {
		return digests.Digest{}, fmt.Errorf("digest %q has %d bytes, but %s digests have %d",
			hexValue, d.Size(), algorithm, engine.DigestSize())
	}
	return d, nil
}
