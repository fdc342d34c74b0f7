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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outtree/forest/internal/literal"
)

func NewRemoveCmd() *cobra.Command {
	var value string
	removeCmd := &cobra.Command{
		Use:     "remove FILE",
		Short:   "Remove every node holding a value, with its subtree",
		Example: `forestctl remove forest.yaml --value 11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("value") {
				return errors.New("--value is required")
			}
			f, err := literal.ReadFile(args[0])
			if err != nil {
				return err
			}
			n, err := f.Preorder().RemoveValue(value)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "removed: %d\n", n)
			return f.Fprint(out)
		},
	}
	removeCmd.Flags().StringVar(&value, "value", "", "value of the nodes to remove")
	return removeCmd
}
