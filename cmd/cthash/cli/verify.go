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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bmw001/hanickadot-cthash/cmd/cthash/cli/options"
	"github.com/bmw001/hanickadot-cthash/pkg/hashing/digests"
	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
)

// Verify builds the verify subcommand.
func Verify() *cobra.Command {
	o := &options.VerifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify [flags] FILE",
		Short: "Verify a file against an expected SHA-2 digest.",
		Long: `Recompute the digest of FILE and compare it with the expected
hex digest. The expected digest is validated (hex alphabet and length
for the chosen algorithm) before any hashing happens, and the
comparison is tagged by algorithm, so a digest of one variant never
matches another.`,
		Example: `  cthash verify -d ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad file.txt
  cthash verify -a sha512/256 -d 53048e26... file.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, o, args[0])
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func runVerify(cmd *cobra.Command, o *options.VerifyOptions, path string) error {
	want, err := hashengines.ParseDigest(o.Algorithm, o.Digest)
	if err != nil {
		return err
	}

	got, err := digestOf(cmd, o.Algorithm, o.ChunkSize, path)
	if err != nil {
		return err
	}

	if !digests.Equal(got, want) {
		return fmt.Errorf("digest mismatch for %s: computed %s, expected %s", path, got.Hex(), want.Hex())
	}

	logger.Debug("verified %s against %s", path, want)
	fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", path)
	return nil
}
