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

	hashengines "github.com/bmw001/hanickadot-cthash/pkg/hashing/engines"
)

// List builds the list subcommand.
func List() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the supported SHA-2 variants.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, algorithm := range hashengines.SupportedAlgorithms() {
				engine, err := hashengines.Create(algorithm)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %d-byte digest\n", algorithm, engine.DigestSize())
			}
			return nil
		},
	}
}
