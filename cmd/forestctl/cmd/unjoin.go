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

func NewUnjoinCmd() *cobra.Command {
	var value string
	unjoinCmd := &cobra.Command{
		Use:     "unjoin FILE",
		Short:   "Detach the first node holding a value into a forest of its own",
		Example: `forestctl unjoin forest.yaml --value 11`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := literal.ReadFile(args[0])
			if err != nil {
				return err
			}
			it := f.Preorder().Find(value)
			if it.IsEnd() {
				return errors.Errorf("no node holds %q", value)
			}
			detached, err := f.Unjoin(it)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "--- remaining")
			if err := f.Fprint(out); err != nil {
				return err
			}
			fmt.Fprintln(out, "--- detached")
			return detached.Fprint(out)
		},
	}
	unjoinCmd.Flags().StringVar(&value, "value", "", "value of the node to detach")
	return unjoinCmd
}
