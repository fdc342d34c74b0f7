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

	"github.com/outtree/forest/internal/literal"
)

func NewDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "dump FILE",
		Short:   "Print the structure of a forest",
		Example: `forestctl dump forest.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := literal.ReadFile(args[0])
			if err != nil {
				return err
			}
			return f.Fprint(cmd.OutOrStdout())
		},
	}
}
