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
	hashio "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines/io"
)

// Sum builds the sum subcommand.
func Sum() *cobra.Command {
	o := &options.SumOptions{}

	cmd := &cobra.Command{
		Use:   "sum [flags] [FILE...]",
		Short: "Compute SHA-2 digests of files or standard input.",
		Long: `Compute SHA-2 digests of the given files and print one
"<hex digest>  <path>" line per file. With no files, or with "-",
standard input is hashed instead.`,
		Example: `  cthash sum archive.tar.gz
  cthash sum -a sha512 one.bin two.bin
  cat data | cthash sum -a sha384`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSum(cmd, o, args)
		},
	}
	o.AddFlags(cmd)
	return cmd
}

func runSum(cmd *cobra.Command, o *options.SumOptions, args []string) error {
	if !hashengines.IsSupported(o.Algorithm) {
		return fmt.Errorf("unsupported algorithm %q (supported: %v)",
			o.Algorithm, hashengines.SupportedAlgorithms())
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	for _, path := range args {
		d, err := digestOf(cmd, o.Algorithm, o.ChunkSize, path)
		if err != nil {
			return err
		}
		logger.Debug("hashed %s (%d-byte %s digest)", path, d.Size(), d.Algorithm())
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d.Hex(), path)
	}
	return nil
}

// digestOf hashes one input, where "-" means standard input.
func digestOf(cmd *cobra.Command, algorithm string, chunkSize int, path string) (digests.Digest, error) {
	if path == "-" {
		return hashio.HashReader(algorithm, cmd.InOrStdin())
	}

	engine, err := hashengines.Create(algorithm)
	if err != nil {
		return digests.Digest{}, err
	}
	hasher, err := hashio.NewSimpleFileHasher(path, engine, chunkSize)
	if err != nil {
		return digests.Digest{}, err
	}
	return hasher.Compute()
}
