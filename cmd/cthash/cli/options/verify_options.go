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

package options

import "github.com/spf13/cobra"

// VerifyOptions defines flags for the verify subcommand.
type VerifyOptions struct {
	// Algorithm is the SHA-2 variant the expected digest was computed
	// with.
	Algorithm string
	// Digest is the expected digest as a hexadecimal string.
	Digest string
	// ChunkSize is the file read buffer size in bytes; 0 uses the
	// default.
	ChunkSize int
}

var _ Interface = (*VerifyOptions)(nil)

// AddFlags implements Interface.
func (o *VerifyOptions) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Algorithm, "algorithm", "a", DefaultAlgorithm,
		"SHA-2 variant the digest was computed with")

	cmd.Flags().StringVarP(&o.Digest, "digest", "d", "",
		"expected digest as a hex string")
	_ = cmd.MarkFlagRequired("digest")

	cmd.Flags().IntVar(&o.ChunkSize, "chunk-size", 0,
		"file read buffer size in bytes (0 = default)")
}
