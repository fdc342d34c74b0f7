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

// Order selects how iterators and views step through a forest.
type Order int

const (
	// Flat visits the direct children of one node, left to right.
	Flat Order = iota
	// Preorder visits a whole subtree depth first, each node before its
	// children.
	Preorder
)

func (o Order) String() string {
	switch o {
	case Flat:
		return "flat"
	case Preorder:
		return "preorder"
	}
	return "unknown"
}

// stepNext returns the position following p in order o. scope bounds the
// preorder ascent: once the walk climbs back to scope, the result is the
// end sentinel of scope. End sentinels are fixed points.
func stepNext[T any](o Order, p pos[T], scope *node[T]) pos[T] {
	if o == Preorder {
		return preorderNext(p, scope)
	}
	return flatNext(p)
}

// stepPrev mirrors stepNext. Reverse-end sentinels are fixed points.
func stepPrev[T any](o Order, p pos[T], scope *node[T]) pos[T] {
	if o == Preorder {
		return preorderPrev(p, scope)
	}
	return flatPrev(p)
}

func flatNext[T any](p pos[T]) pos[T] {
	switch {
	case p.isNil(), p.e == atEnd:
		return p
	case p.e == atREnd:
		return beginOf(p.n)
	}
	return nextSibling(p.n)
}

func flatPrev[T any](p pos[T]) pos[T] {
	switch {
	case p.isNil(), p.e == atREnd:
		return p
	case p.e == atEnd:
		return rbeginOf(p.n)
	}
	return prevSibling(p.n)
}

func preorderNext[T any](p pos[T], scope *node[T]) pos[T] {
	switch {
	case p.isNil(), p.e == atEnd:
		return p
	case p.e == atREnd:
		return beginOf(p.n)
	}
	n := p.n
	if n.first != nil {
		return elem(n.first)
	}
	for n != scope {
		if n.next != nil {
			return elem(n.next)
		}
		if n.parent == nil {
			break
		}
		n = n.parent
	}
	return endOf(n)
}

func preorderPrev[T any](p pos[T], scope *node[T]) pos[T] {
	switch {
	case p.isNil(), p.e == atREnd:
		return p
	case p.e == atEnd:
		if p.n.last != nil {
			return elem(p.n.deepestRightmost())
		}
		return rendOf(p.n)
	}
	n := p.n
	if n.prev != nil {
		return elem(n.prev.deepestRightmost())
	}
	if n.parent == nil {
		return p
	}
	if n.parent == scope || n.parent.isRoot() {
		return rendOf(n.parent)
	}
	return elem(n.parent)
}
