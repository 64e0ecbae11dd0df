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

package engines_test

import (
	"reflect"
	"testing"

	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
	"github.com/bmw001/hanickadot-cthash/pkg/hashing/engines/memory"
)

func testFactory() (hashengines.StreamingHashEngine, error) {
	return memory.NewSHA256Engine(nil), nil
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantErr   bool
	}{
		{"sha224", "sha224", false},
		{"sha256", "sha256", false},
		{"sha384", "sha384", false},
		{"sha512", "sha512", false},
		{"sha512/224", "sha512/224", false},
		{"sha512/256", "sha512/256", false},
		{"unsupported", "md5", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, err := hashengines.Create(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("Create() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && engine == nil {
				t.Error("Create() returned nil engine without error")
			}
			if !tt.wantErr && engine.DigestName() != tt.algorithm {
				t.Errorf("DigestName() = %q, want %q", engine.DigestName(), tt.algorithm)
			}
		})
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		factory   hashengines.HashEngineFactory
		wantErr   bool
		cleanup   bool
	}{
		{"valid registration", "test-algo", testFactory, false, true},
		{"empty algorithm", "", testFactory, true, false},
		{"nil factory", "test-nil", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hashengines.Register(tt.algorithm, tt.factory)
			if (err != nil) != tt.wantErr {
				t.Errorf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.cleanup && err == nil {
				_ = hashengines.Unregister(tt.algorithm)
			}
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	if err := hashengines.Register("duplicate-test", testFactory); err != nil {
		t.Fatalf("first Register() failed: %v", err)
	}
	defer func() { _ = hashengines.Unregister("duplicate-test") }()

	if err := hashengines.Register("duplicate-test", testFactory); err == nil {
		t.Error("second Register() should have failed with a duplicate error")
	}
}

func TestMustRegisterPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustRegister() should panic on duplicate registration")
		}
	}()
	// "sha256" was registered by the memory package's init.
	hashengines.MustRegister("sha256", testFactory)
}

func TestSupportedAlgorithms(t *testing.T) {
	want := []string{"sha224", "sha256", "sha384", "sha512", "sha512/224", "sha512/256"}
	got := hashengines.SupportedAlgorithms()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SupportedAlgorithms() = %v, want %v", got, want)
	}

	for _, algo := range want {
		if !hashengines.IsSupported(algo) {
			t.Errorf("IsSupported(%q) = false", algo)
		}
	}
	if hashengines.IsSupported("md5") {
		t.Error("IsSupported(\"md5\") = true")
	}
}

func TestUnregister(t *testing.T) {
	if err := hashengines.Unregister("never-registered"); err == nil {
		t.Error("Unregister() of an unknown algorithm should fail")
	}
}

func TestParseDigest(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		hexValue  string
		wantErr   bool
	}{
		{"valid sha256", "sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", false},
		{"valid sha512/224", "sha512/224", "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa", false},
		{"wrong length", "sha256", "ba7816bf", true},
		{"bad alphabet", "sha256", "zz7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", true},
		{"unknown algorithm", "md5", "d41d8cd98f00b204e9800998ecf8427e", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := hashengines.ParseDigest(tt.algorithm, tt.hexValue)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDigest() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && d.Algorithm() != tt.algorithm {
				t.Errorf("Algorithm() = %q, want %q", d.Algorithm(), tt.algorithm)
			}
		})
	}
}
