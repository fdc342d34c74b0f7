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

type nodeState uint8

const (
	stateFree nodeState = iota
	stateLinked
	stateRoot
	stateDestroyed
)

func (s nodeState) String() string {
	switch s {
	case stateFree:
		return "free"
	case stateLinked:
		return "linked"
	case stateRoot:
		return "root"
	case stateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// node is an internal node of a forest.
//
// A nil prev or next marks the end of the sibling list, and a nil first/last
// pair marks an empty child list. size counts the node itself plus all of
// its descendants.
type node[T any] struct {
	parent      *node[T]
	prev, next  *node[T]
	first, last *node[T]
	childCount  int
	size        int
	state       nodeState
	value       T
}

func (n *node[T]) hasChildren() bool { return n.first != nil }

func (n *node[T]) isRoot() bool { return n.state == stateRoot }

// alive reports whether n may still be read: it is linked or a root.
func (n *node[T]) alive() bool {
	return n != nil && (n.state == stateLinked || n.state == stateRoot)
}

// deepestRightmost returns the last node of n's subtree in preorder.
func (n *node[T]) deepestRightmost() *node[T] {
	for n.last != nil {
		n = n.last
	}
	return n
}

// topmost returns the root of the tree n is linked into.
func (n *node[T]) topmost() *node[T] {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// isAncestorOf reports whether n is a or one of a's ancestors.
func (n *node[T]) isAncestorOf(a *node[T]) bool {
	for ; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// edge tells which slot of a child list a position designates.
type edge uint8

const (
	atElem edge = iota
	atEnd
	atREnd
)

// pos is a position in a child list. For atElem n is the element itself,
// for the two sentinels n is the node owning the list.
type pos[T any] struct {
	n *node[T]
	e edge
}

func elem[T any](n *node[T]) pos[T]   { return pos[T]{n: n, e: atElem} }
func endOf[T any](n *node[T]) pos[T]  { return pos[T]{n: n, e: atEnd} }
func rendOf[T any](n *node[T]) pos[T] { return pos[T]{n: n, e: atREnd} }

func beginOf[T any](n *node[T]) pos[T] {
	if n.first != nil {
		return elem(n.first)
	}
	return endOf(n)
}

func rbeginOf[T any](n *node[T]) pos[T] {
	if n.last != nil {
		return elem(n.last)
	}
	return rendOf(n)
}

func (p pos[T]) isNil() bool      { return p.n == nil }
func (p pos[T]) isElem() bool     { return p.n != nil && p.e == atElem }
func (p pos[T]) isEnd() bool      { return p.n != nil && p.e == atEnd }
func (p pos[T]) isREnd() bool     { return p.n != nil && p.e == atREnd }
func (p pos[T]) isSentinel() bool { return p.n != nil && p.e != atElem }

// isBegin reports whether p is the first element of its list.
func (p pos[T]) isBegin() bool { return p.isElem() && p.n.prev == nil }

// isEmptyList reports whether p is a sentinel of an empty child list.
func (p pos[T]) isEmptyList() bool { return p.isSentinel() && p.n.first == nil }

// owner returns the node whose child list contains p.
func (p pos[T]) owner() *node[T] {
	if p.e == atElem {
		return p.n.parent
	}
	return p.n
}

func nextSibling[T any](n *node[T]) pos[T] {
	if n.next != nil {
		return elem(n.next)
	}
	return endOf(n.parent)
}

func prevSibling[T any](n *node[T]) pos[T] {
	if n.prev != nil {
		return elem(n.prev)
	}
	return rendOf(n.parent)
}
