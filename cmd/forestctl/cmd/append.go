// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/outtree/forest"
	"github.com/outtree/forest/internal/literal"
)

func NewAppendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "append FILE OTHER...",
		Short: "Append forests below the last node of the first one",
		Long: `Append moves the top-level trees of every OTHER below the last node of FILE
in preorder and prints the result as a literal.`,
		Example: `forestctl append base.yaml extra.yaml`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees := make([]*forest.Forest[string], 0, len(args))
			for _, name := range args {
				f, err := literal.ReadFile(name)
				if err != nil {
					return err
				}
				trees = append(trees, f)
			}
			out, err := literal.Encode(trees[0].Append(trees[1:]...))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}
