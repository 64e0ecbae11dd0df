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

package io

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
	"github.com/bmw001/hanickadot-cthash/pkg/hashing/engines/memory"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func TestSimpleFileHasher(t *testing.T) {
	content := bytes.Repeat([]byte("file hashing test data. "), 1000)
	path := writeTempFile(t, content)

	h, err := NewSimpleFileHasher(path, memory.NewSHA256Engine(nil), 128)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}

	got, err := h.Compute()
	if err != nil {
		t.Fatalf("Compute() error = %v", err)
	}
	want, _ := memory.NewSHA256Engine(content).Compute()
	if !digests.Equal(got, want) {
		t.Error("file digest differs from in-memory digest of the same bytes")
	}

	// Recompute must be stable: Compute resets the inner engine.
	again, err := h.Compute()
	if err != nil {
		t.Fatalf("second Compute() error = %v", err)
	}
	if !digests.Equal(got, again) {
		t.Error("second Compute() over the same file produced a different digest")
	}
}

func TestSimpleFileHasherValidation(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		engineNil bool
		chunkSize int
	}{
		{"empty path", "", false, 0},
		{"nil engine", "some/path", true, 0},
		{"negative chunk size", "some/path", false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := memory.NewSHA256Engine(nil)
			if tt.engineNil {
				if _, err := NewSimpleFileHasher(tt.path, nil, tt.chunkSize); err == nil {
					t.Error("nil engine accepted")
				}
				return
			}
			if _, err := NewSimpleFileHasher(tt.path, engine, tt.chunkSize); err == nil {
				t.Error("invalid arguments accepted")
			}
		})
	}
}

func TestSimpleFileHasherMissingFile(t *testing.T) {
	h, err := NewSimpleFileHasher(filepath.Join(t.TempDir(), "missing"), memory.NewSHA256Engine(nil), 0)
	if err != nil {
		t.Fatalf("NewSimpleFileHasher() error = %v", err)
	}
	if _, err := h.Compute(); err == nil {
		t.Error("Compute() succeeded on a missing file")
	}
}

func TestHashReader(t *testing.T) {
	content := []byte("reader input")

	got, err := HashReader("sha384", bytes.NewReader(content))
	if err != nil {
		t.Fatalf("HashReader() error = %v", err)
	}
	want, _ := memory.NewSHA384Engine(content).Compute()
	if !digests.Equal(got, want) {
		t.Error("HashReader digest differs from in-memory digest")
	}

	if _, err := HashReader("md5", bytes.NewReader(content)); err == nil {
		t.Error("HashReader accepted an unregistered algorithm")
	}
}
