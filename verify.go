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
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Verify checks the linkage of every node of f: back links, states, child
// counts, and that every size equals one plus the sizes of the children.
// It returns nil for a sound forest, and otherwise a *multierror.Error
// listing each violation.
func (f *Forest[T]) Verify() error {
	var result *multierror.Error
	if f.root.state != stateRoot || f.root.parent != nil {
		result = multierror.Append(result, errors.Errorf("root: state %s", f.root.state))
	}

	seen := map[*node[T]]struct{}{f.root: {}}
	stack := []*node[T]{f.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		count, size := 0, 1
		var prev *node[T]
		for c := n.first; c != nil; c = c.next {
			if _, ok := seen[c]; ok {
				result = multierror.Append(result, errors.Errorf("node %v: reached twice", c.value))
				break
			}
			seen[c] = struct{}{}
			if c.state != stateLinked {
				result = multierror.Append(result, errors.Errorf("node %v: state %s", c.value, c.state))
			}
			if c.parent != n {
				result = multierror.Append(result, errors.Errorf("node %v: wrong parent", c.value))
			}
			if c.prev != prev {
				result = multierror.Append(result, errors.Errorf("node %v: wrong previous sibling", c.value))
			}
			prev = c
			count++
			size += c.size
			stack = append(stack, c)
		}
		if n.last != prev {
			result = multierror.Append(result, errors.Errorf("node %v: wrong last child", n.value))
		}
		if n.childCount != count {
			result = multierror.Append(result, errors.Errorf("node %v: child count %d, want %d", n.value, n.childCount, count))
		}
		if n.size != size {
			result = multierror.Append(result, errors.Errorf("node %v: size %d, want %d", n.value, n.size, size))
		}
	}
	return result.ErrorOrNil()
}
