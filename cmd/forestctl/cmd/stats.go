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

	"github.com/spf13/cobra"

	"github.com/outtree/forest"
	"github.com/outtree/forest/internal/literal"
)

type stats struct {
	Size     int
	TopLevel int
	Depth    int
	Leaves   int
}

func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "stats FILE",
		Short:   "Print node, top-level, depth and leaf counts of a forest",
		Example: `forestctl stats forest.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := literal.ReadFile(args[0])
			if err != nil {
				return err
			}
			s, err := collectStats(f)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:      %d\n", s.Size)
			fmt.Fprintf(out, "top-level: %d\n", s.TopLevel)
			fmt.Fprintf(out, "depth:     %d\n", s.Depth)
			fmt.Fprintf(out, "leaves:    %d\n", s.Leaves)
			return nil
		},
	}
}

func collectStats[T any](f *forest.Forest[T]) (stats, error) {
	s := stats{Size: f.Size(), TopLevel: f.ChildCount()}
	depth, leaves, err := measure(f.Flat(), 1)
	s.Depth, s.Leaves = depth, leaves
	return s, err
}

// measure returns the depth of the deepest node below v, counting the
// children of v at level, and the number of leaves below v.
func measure[T any](v forest.View[T], level int) (depth, leaves int, err error) {
	for it := range v.Positions() {
		children, err := it.View()
		if err != nil {
			return 0, 0, err
		}
		d, l := level, 1
		if children.HasChildren() {
			if d, l, err = measure(children, level+1); err != nil {
				return 0, 0, err
			}
		}
		depth = max(depth, d)
		leaves += l
	}
	return depth, leaves, nil
}
