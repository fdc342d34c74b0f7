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
	"io"
	"iter"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// View binds an order to a node and ranges over the node's descendants:
// its children for Flat, its whole subtree below it for Preorder.
//
// Views do not own anything and are cheap to copy. Sequences returned by
// All and Backward must not be used while the forest is being changed.
type View[T any] struct {
	n     *node[T]
	order Order
	ctx   *forestContext[T]
}

// Valid reports whether the view is bound to a live node.
func (v View[T]) Valid() bool { return v.n.alive() }

// Order returns the order of the view.
func (v View[T]) Order() Order { return v.order }

// Flat returns the view of the same node in flat order.
func (v View[T]) Flat() View[T] {
	v.order = Flat
	return v
}

// Preorder returns the view of the same node in preorder.
func (v View[T]) Preorder() View[T] {
	v.order = Preorder
	return v
}

func (v View[T]) iter(p pos[T]) Iterator[T] {
	return Iterator[T]{p: p, origin: v.n, order: v.order, ctx: v.ctx}
}

// Begin returns the first position of the view, End when it is empty.
func (v View[T]) Begin() Iterator[T] {
	if !v.Valid() {
		return Iterator[T]{}
	}
	return v.iter(beginOf(v.n))
}

// End returns the end sentinel of the view.
func (v View[T]) End() Iterator[T] {
	if !v.Valid() {
		return Iterator[T]{}
	}
	return v.iter(endOf(v.n))
}

// RBegin returns the last position of the view, REnd when it is empty.
func (v View[T]) RBegin() Iterator[T] {
	if !v.Valid() {
		return Iterator[T]{}
	}
	return v.iter(stepPrev(v.order, endOf(v.n), v.n))
}

// REnd returns the reverse-end sentinel of the view.
func (v View[T]) REnd() Iterator[T] {
	if !v.Valid() {
		return Iterator[T]{}
	}
	return v.iter(rendOf(v.n))
}

// All returns the payloads of the view from front to back.
func (v View[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if !v.Valid() {
			return
		}
		forEach(v.order, beginOf(v.n), endOf(v.n), v.n, func(p pos[T]) bool {
			return yield(&p.n.value)
		})
	}
}

// Backward returns the payloads of the view from back to front.
func (v View[T]) Backward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if !v.Valid() {
			return
		}
		forEachReverse(v.order, beginOf(v.n), endOf(v.n), v.n, func(p pos[T]) bool {
			return yield(&p.n.value)
		})
	}
}

// Positions returns an iterator for every position of the view from front
// to back.
func (v View[T]) Positions() iter.Seq[Iterator[T]] {
	return func(yield func(Iterator[T]) bool) {
		if !v.Valid() {
			return
		}
		forEach(v.order, beginOf(v.n), endOf(v.n), v.n, func(p pos[T]) bool {
			return yield(v.iter(p))
		})
	}
}

// Values returns a copy of the payloads of the view, front to back.
func (v View[T]) Values() []T {
	out := make([]T, 0, v.Len())
	for x := range v.All() {
		out = append(out, *x)
	}
	return out
}

// Len returns the number of positions the view visits: ChildCount for a
// flat view, Size for a preorder one.
func (v View[T]) Len() int {
	if v.order == Preorder {
		return v.Size()
	}
	return v.ChildCount()
}

// Size returns the number of descendants of the bound node.
func (v View[T]) Size() int {
	if !v.Valid() {
		return 0
	}
	return v.n.size - 1
}

// ChildCount returns the number of children of the bound node.
func (v View[T]) ChildCount() int {
	if !v.Valid() {
		return 0
	}
	return v.n.childCount
}

// HasChildren reports whether the bound node has any child.
func (v View[T]) HasChildren() bool {
	return v.Valid() && v.n.hasChildren()
}

// FindFunc returns the first position of the view whose payload matches
// pred, or End.
func (v View[T]) FindFunc(pred func(T) bool) Iterator[T] {
	for it := range v.Positions() {
		if pred(it.p.n.value) {
			return it
		}
	}
	return v.End()
}

// Find returns the first position of the view holding a payload equal to
// x, or End.
func (v View[T]) Find(x T) Iterator[T] {
	eq := Equal[T]()
	if v.ctx != nil {
		eq = v.ctx.eq
	}
	return v.FindFunc(func(y T) bool { return eq(y, x) })
}

// RemoveIf destroys every node of the view whose payload matches pred,
// with its subtree, and returns the number of destroyed nodes.
func (v View[T]) RemoveIf(pred func(T) bool) (int, error) {
	if !v.Valid() {
		return 0, errors.Wrap(ErrInvalidElement, "remove if")
	}
	removed := v.ctx.removeIf(v.order, beginOf(v.n), endOf(v.n), v.n, pred)
	logOp("remove if", logrus.Fields{"removed": removed, "order": v.order})
	return removed, nil
}

// RemoveValue destroys every node of the view holding a payload equal to x.
func (v View[T]) RemoveValue(x T) (int, error) {
	eq := Equal[T]()
	if v.ctx != nil {
		eq = v.ctx.eq
	}
	return v.RemoveIf(func(y T) bool { return eq(y, x) })
}

// CopyTo links copies of the nodes of the view, without their children,
// before where, in view order. where may lie inside the view.
func (v View[T]) CopyTo(where Iterator[T]) (Iterator[T], error) {
	if !v.Valid() {
		return where, errors.Wrap(ErrInvalidElement, "copy to: source view")
	}
	p := where.p
	switch {
	case p.isNil(), p.e == atREnd,
		p.e == atElem && p.n.state != stateLinked,
		p.e == atEnd && !p.n.alive():
		return where, errors.Wrap(ErrInvalidElement, "copy to: invalid destination")
	}
	first := where.ctx.copyRange(v.order, p, beginOf(v.n), endOf(v.n), v.n, false)
	if first == nil {
		return where, nil
	}
	return where.at(elem(first)), nil
}

// Fprint writes the structure of the bound node's descendants to w.
func (v View[T]) Fprint(w io.Writer) error {
	if !v.Valid() {
		return errors.Wrap(ErrInvalidElement, "fprint")
	}
	return fprint(w, v.n)
}

func (v View[T]) String() string {
	var b strings.Builder
	if err := v.Fprint(&b); err != nil {
		return "<invalid>"
	}
	return b.String()
}
