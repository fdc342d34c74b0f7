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
	"iter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/outtree/forest"
	"github.com/outtree/forest/internal/literal"
)

type walkOpts struct {
	order   string
	reverse bool
}

func NewWalkCmd() *cobra.Command {
	opts := &walkOpts{}
	walkCmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "List the values of a forest in traversal order",
		Example: `forestctl walk forest.yaml
forestctl walk forest.yaml --order flat --reverse`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := parseOrder(opts.order)
			if err != nil {
				return err
			}
			f, err := literal.ReadFile(args[0])
			if err != nil {
				return err
			}
			v := f.Preorder()
			if order == forest.Flat {
				v = f.Flat()
			}
			var seq iter.Seq[*string] = v.All()
			if opts.reverse {
				seq = v.Backward()
			}
			out := cmd.OutOrStdout()
			for x := range seq {
				fmt.Fprintln(out, *x)
			}
			return nil
		},
	}
	walkCmd.Flags().StringVar(&opts.order, "order", forest.Preorder.String(), "traversal order, flat or preorder")
	walkCmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "walk back to front")
	return walkCmd
}

func parseOrder(s string) (forest.Order, error) {
	for _, o := range []forest.Order{forest.Flat, forest.Preorder} {
		if s == o.String() {
			return o, nil
		}
	}
	return 0, errors.Errorf("order must be flat or preorder, got %q", s)
}
