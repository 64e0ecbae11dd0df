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

// Package cli wires up the cthash command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	cobracompletefig "github.com/withfig/autocomplete-tools/integrations/cobra"
	"sigs.k8s.io/release-utils/version"

	"github.com/bmw001/hanickadot-cthash/cmd/cthash/cli/options"
	// Register the SHA-2 engines with the algorithm registry.
	_ "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines/memory"
	"github.com/bmw001/hanickadot-cthash/pkg/logging"
)

var (
	ro     = &options.RootOptions{}
	logger logging.Logger = logging.Default()
)

// New builds the root cthash command.
func New() *cobra.Command {
	var out *os.File

	cmd := &cobra.Command{
		Use:               "cthash",
		Short:             "SHA-2 digest computation and verification.",
		DisableAutoGenTag: true,
		SilenceUsage:      true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger = logging.NewLogger(logging.LoggerOptions{
				Level:  ro.GetLogLevel(),
				Format: ro.GetLogFormat(),
				Output: cmd.ErrOrStderr(),
			})

			if ro.OutputFile != "" {
				var err error
				out, err = os.Create(ro.OutputFile)
				if err != nil {
					return fmt.Errorf("error creating output file %s: %w", ro.OutputFile, err)
				}
				cmd.SetOut(out)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if out != nil {
				_ = out.Close()
			}
		},
	}
	ro.AddFlags(cmd)

	cmd.AddCommand(Sum())
	cmd.AddCommand(Verify())
	cmd.AddCommand(List())
	cmd.AddCommand(version.WithFont("starwars"))
	cmd.AddCommand(cobracompletefig.CreateCompletionSpecCommand())
	return cmd
}
