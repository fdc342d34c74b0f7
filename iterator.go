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

	"github.com/pkg/errors"
)

// Iterator is a position in a forest: an element, or the end or reverse-end
// sentinel of a child list. Iterators are values; stepping returns a new
// one.
//
// Besides its position an iterator remembers its origin, the node whose
// subtree bounds a preorder walk. Flat iterators always use the owner of
// their list as origin. The zero Iterator is invalid and never moves.
//
// An iterator stays usable while its node is linked. After the node is
// removed it reports ErrInvalidElement, unless a shared FreeList has handed
// the node out again.
type Iterator[T any] struct {
	p      pos[T]
	origin *node[T]
	order  Order
	ctx    *forestContext[T]
}

// at returns an iterator at p that keeps the order of it. Flat iterators
// take the owner of p as origin.
func (it Iterator[T]) at(p pos[T]) Iterator[T] {
	out := Iterator[T]{p: p, origin: it.origin, order: it.order, ctx: it.ctx}
	if out.order == Flat || out.origin == nil {
		if !p.isNil() {
			out.origin = p.owner()
		}
	}
	return out
}

// Order returns the order Next and Prev follow.
func (it Iterator[T]) Order() Order { return it.order }

// Flat returns the same position stepping through siblings.
func (it Iterator[T]) Flat() Iterator[T] {
	it.order = Flat
	return it.at(it.p)
}

// Preorder returns the same position stepping through the subtree of its
// origin in preorder.
func (it Iterator[T]) Preorder() Iterator[T] {
	it.order = Preorder
	return it.at(it.p)
}

// Valid reports whether it designates a linked element.
func (it Iterator[T]) Valid() bool {
	return it.p.isElem() && it.p.n.state == stateLinked
}

// IsEnd reports whether it is an end sentinel.
func (it Iterator[T]) IsEnd() bool { return it.p.isEnd() }

// IsREnd reports whether it is a reverse-end sentinel.
func (it Iterator[T]) IsREnd() bool { return it.p.isREnd() }

// Equal reports whether it and o designate the same position.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.p == o.p }

// alive reports whether the position can still be stepped from.
func (it Iterator[T]) alive() bool {
	if it.p.isNil() {
		return false
	}
	if it.p.e == atElem {
		return it.p.n.state == stateLinked
	}
	return it.p.n.alive()
}

// Next returns the following position. End sentinels are fixed points.
func (it Iterator[T]) Next() Iterator[T] {
	if !it.alive() {
		return it
	}
	return it.at(stepNext(it.order, it.p, it.origin))
}

// Prev returns the preceding position. Reverse-end sentinels are fixed
// points.
func (it Iterator[T]) Prev() Iterator[T] {
	if !it.alive() {
		return it
	}
	return it.at(stepPrev(it.order, it.p, it.origin))
}

// Advance steps n times, backwards when n is negative.
func (it Iterator[T]) Advance(n int) Iterator[T] {
	for ; n > 0; n-- {
		it = it.Next()
	}
	for ; n < 0; n++ {
		it = it.Prev()
	}
	return it
}

// Value returns a pointer to the payload of the element at it.
func (it Iterator[T]) Value() (*T, error) {
	if !it.Valid() {
		return nil, errors.Wrap(ErrInvalidElement, "value")
	}
	return &it.p.n.value, nil
}

// View returns a view over the children of the element at it, in the
// order of it.
func (it Iterator[T]) View() (View[T], error) {
	if !it.Valid() {
		return View[T]{}, errors.Wrap(ErrInvalidElement, "view")
	}
	return View[T]{n: it.p.n, order: it.order, ctx: it.ctx}, nil
}

// Size returns the number of nodes in the subtree at it, itself included.
func (it Iterator[T]) Size() (int, error) {
	if !it.Valid() {
		return 0, errors.Wrap(ErrInvalidElement, "size")
	}
	return it.p.n.size, nil
}

// ChildCount returns the number of children of the element at it.
func (it Iterator[T]) ChildCount() (int, error) {
	if !it.Valid() {
		return 0, errors.Wrap(ErrInvalidElement, "child count")
	}
	return it.p.n.childCount, nil
}

// Parent returns the parent of the element at it. The parent of a
// top-level node is the zero Iterator.
func (it Iterator[T]) Parent() (Iterator[T], error) {
	if !it.Valid() {
		return Iterator[T]{}, errors.Wrap(ErrInvalidElement, "parent")
	}
	parent := it.p.n.parent
	if parent.isRoot() {
		return Iterator[T]{}, nil
	}
	return it.at(elem(parent)), nil
}

// PrevFlat returns the previous sibling. It fails with ErrOutOfBounds at
// the first sibling and at the reverse end.
func (it Iterator[T]) PrevFlat() (Iterator[T], error) {
	if !it.alive() {
		return it, errors.Wrap(ErrInvalidElement, "prev flat")
	}
	if it.p.isBegin() || it.p.isREnd() || it.p.isEmptyList() {
		return it, errors.Wrap(ErrOutOfBounds, "prev flat")
	}
	return it.at(flatPrev(it.p)), nil
}

// NextFlat returns the next sibling, or the end sentinel after the last
// one. It fails with ErrOutOfBounds at either sentinel.
func (it Iterator[T]) NextFlat() (Iterator[T], error) {
	if !it.alive() {
		return it, errors.Wrap(ErrInvalidElement, "next flat")
	}
	if it.p.isSentinel() {
		return it, errors.Wrap(ErrOutOfBounds, "next flat")
	}
	return it.at(flatNext(it.p)), nil
}

// PrevPreorder returns the previous node in preorder within the subtree of
// the origin. It fails with ErrOutOfBounds at the first node of that
// subtree.
func (it Iterator[T]) PrevPreorder() (Iterator[T], error) {
	if !it.alive() {
		return it, errors.Wrap(ErrInvalidElement, "prev preorder")
	}
	p := preorderPrev(it.p, it.origin)
	if p.isREnd() {
		return it, errors.Wrap(ErrOutOfBounds, "prev preorder")
	}
	return it.at(p), nil
}

// NextPreorder returns the next node in preorder within the subtree of the
// origin, or its end sentinel after the last one. It fails with
// ErrOutOfBounds at the end sentinel.
func (it Iterator[T]) NextPreorder() (Iterator[T], error) {
	if !it.alive() {
		return it, errors.Wrap(ErrInvalidElement, "next preorder")
	}
	if it.p.isEnd() {
		return it, errors.Wrap(ErrOutOfBounds, "next preorder")
	}
	return it.at(preorderNext(it.p, it.origin)), nil
}

func (it Iterator[T]) String() string {
	switch {
	case it.p.isNil():
		return "<nil>"
	case it.p.isEnd():
		return "<end>"
	case it.p.isREnd():
		return "<rend>"
	case !it.Valid():
		return "<removed>"
	}
	return fmt.Sprint(it.p.n.value)
}
