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

package forest

import (
	"fmt"
	"io"
	"strings"
)

const (
	dumpIndent = "        "
	dumpBranch = "|------ "
)

// Fprint writes the structure of f to w, one node per line in preorder.
// Top-level nodes start at the margin, deeper ones are indented and drawn
// as branches. A last line gives the number of nodes. An empty forest is
// written as "<empty>".
//
//	1
//	|------ 11
//	        |------ 111
//	|------ 12
//	2
//	Size: 5
func (f *Forest[T]) Fprint(w io.Writer) error {
	return fprint(w, f.root)
}

func (f *Forest[T]) String() string {
	var b strings.Builder
	_ = f.Fprint(&b)
	return b.String()
}

func fprint[T any](w io.Writer, n *node[T]) error {
	if n.first == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	var b strings.Builder
	depth := 0
	for c := n.first; c != nil; {
		if depth > 0 {
			b.WriteString(strings.Repeat(dumpIndent, depth-1))
			b.WriteString(dumpBranch)
		}
		fmt.Fprintf(&b, "%v\n", c.value)

		if c.first != nil {
			c = c.first
			depth++
			continue
		}
		for c != n && c.next == nil {
			c = c.parent
			depth--
		}
		if c == n {
			break
		}
		c = c.next
	}
	fmt.Fprintf(&b, "Size: %d\n", n.size-1)
	_, err := io.WriteString(w, b.String())
	return err
}
