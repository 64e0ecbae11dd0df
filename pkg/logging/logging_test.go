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

package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"silent", LevelSilent},
		{"off", LevelSilent},
		{"  DEBUG  ", LevelDebug},
		{"bogus", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLogLevel(tt.input); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelWarn, Output: &buf})

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept: %d", 1)
	l.Error("kept: %d", 2)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("output contains filtered entries: %q", out)
	}
	if !strings.Contains(out, "kept: 1") || !strings.Contains(out, "kept: 2") {
		t.Errorf("output missing expected entries: %q", out)
	}
}

func TestSilentLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelSilent, Output: &buf})

	l.Error("even errors")
	if buf.Len() != 0 {
		t.Errorf("silent logger produced output: %q", buf.String())
	}
}

func TestTextFormatterFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelInfo, Output: &buf})

	l.WithField("algorithm", "sha256").WithField("bytes", 42).Info("hashed")

	out := buf.String()
	for _, want := range []string{"hashed", "algorithm=sha256", "bytes=42"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(LoggerOptions{Level: LevelInfo, Output: &buf})
	_ = parent.WithField("child", true)

	parent.Info("plain")
	if strings.Contains(buf.String(), "child") {
		t.Error("WithField leaked into the parent logger")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(LoggerOptions{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	l.WithField("file", "data.bin").Info("digest computed")

	var entry struct {
		Level   string                 `json:"level"`
		Message string                 `json:"message"`
		Fields  map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (%q)", err, buf.String())
	}
	if entry.Level != "info" || entry.Message != "digest computed" {
		t.Errorf("unexpected entry: %+v", entry)
	}
	if entry.Fields["file"] != "data.bin" {
		t.Errorf("missing field, got %v", entry.Fields)
	}
}

func TestEnsureLogger(t *testing.T) {
	if EnsureLogger(nil) == nil {
		t.Error("EnsureLogger(nil) returned nil")
	}
	l := Default()
	if EnsureLogger(l) != l {
		t.Error("EnsureLogger did not pass through a non-nil logger")
	}
}
