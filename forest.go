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

// Package forest implements an in-memory, multi-root tree container.
//
// A Forest holds any number of independent top-level trees below a hidden
// root. Nodes are linked intrusively: each one knows its parent, its two
// siblings and the two ends of its own child list, and caches the number of
// its direct children and the size of its subtree. Both caches are kept
// exact by every mutation in time proportional to the depth of the change.
//
// The same linkage can be walked in two orders:
//   - Flat visits the direct children of one node.
//   - Preorder visits a whole subtree, each node before its children.
//
// Views bind an order to a node and expose its children; iterators are
// positions in a child list, including the end and reverse-end sentinels.
// Structure changes go through the Forest methods, which validate every
// argument before the first pointer is touched and report contract
// violations with the errors in errors.go.
//
// Moving nodes (Move, MoveRange, Join, Unjoin, Append) only relinks them and
// is linear in the number of moved top nodes. Copying (Copy, DeepCopy,
// Clone) allocates; payloads implementing Cloner are cloned on copy.
//
// A Forest is not safe for concurrent mutation. Concurrent readers are fine
// as long as no one writes.
package forest

import (
	"iter"
	"slices"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Forest is a generic multi-root tree container.
//
// The zero value is not usable; create forests with New and friends.
type Forest[T any] struct {
	root *node[T]
	ctx  *forestContext[T]
}

func newRoot[T any]() *node[T] {
	return &node[T]{size: 1, state: stateRoot}
}

// New creates an empty forest comparing payloads with Equal[T]().
func New[T any]() *Forest[T] {
	return NewWithEqual[T](nil)
}

// NewWithEqual creates an empty forest that compares payloads with eq.
// A nil eq selects Equal[T]().
func NewWithEqual[T any](eq EqualFunc[T]) *Forest[T] {
	return NewWithFreeList(eq, nil)
}

// NewWithFreeList creates an empty forest that recycles nodes through fl.
// A nil fl disables recycling.
func NewWithFreeList[T any](eq EqualFunc[T], fl *FreeList[T]) *Forest[T] {
	if eq == nil {
		eq = Equal[T]()
	}
	return &Forest[T]{
		root: newRoot[T](),
		ctx:  &forestContext[T]{freelist: fl, eq: eq},
	}
}

// FromValue creates a forest holding a single tree of one node.
func FromValue[T any](v T) *Forest[T] {
	return FromValues(v)
}

// FromValues creates a forest whose top-level trees are single nodes
// holding vs, in order.
func FromValues[T any](vs ...T) *Forest[T] {
	f := New[T]()
	for _, v := range vs {
		link(endOf(f.root), f.ctx.newNode(v))
	}
	return f
}

// Of creates a forest holding one tree: v, with the top-level trees of each
// subtree as its children. The subtrees are emptied; their nodes now belong
// to the returned forest.
func Of[T any](v T, subtrees ...*Forest[T]) *Forest[T] {
	f := New[T]()
	n := link(endOf(f.root), f.ctx.newNode(v))
	for _, s := range subtrees {
		if s == nil || s == f {
			continue
		}
		splice(endOf(n), s.root)
	}
	return f
}

// Size returns the number of nodes in the forest.
func (f *Forest[T]) Size() int {
	return f.root.size - 1
}

// ChildCount returns the number of top-level trees.
func (f *Forest[T]) ChildCount() int {
	return f.root.childCount
}

// Empty reports whether the forest has no nodes.
func (f *Forest[T]) Empty() bool {
	return f.root.first == nil
}

// Flat returns a view over the top-level trees.
func (f *Forest[T]) Flat() View[T] {
	return View[T]{n: f.root, order: Flat, ctx: f.ctx}
}

// Preorder returns a view over every node of the forest.
func (f *Forest[T]) Preorder() View[T] {
	return View[T]{n: f.root, order: Preorder, ctx: f.ctx}
}

// Clear removes all the nodes from the forest.
func (f *Forest[T]) Clear() {
	removed := f.ctx.clearChildren(f.root)
	logOp("clear", logrus.Fields{"removed": removed})
}

// Clone returns a deep copy of the forest. The copy shares the free list
// and equality of f.
func (f *Forest[T]) Clone() *Forest[T] {
	out := &Forest[T]{root: newRoot[T](), ctx: f.ctx}
	out.ctx.copyRange(Flat, endOf(out.root), beginOf(f.root), endOf(f.root), f.root, true)
	return out
}

// CopyFrom replaces the content of f by a deep copy of other.
func (f *Forest[T]) CopyFrom(other *Forest[T]) {
	if other == nil || other == f {
		return
	}
	f.Clear()
	f.ctx.copyRange(Flat, endOf(f.root), beginOf(other.root), endOf(other.root), other.root, true)
}

// MoveFrom replaces the content of f by the nodes of other without copying
// them. other is left empty and may be reused.
func (f *Forest[T]) MoveFrom(other *Forest[T]) {
	if other == nil || other == f {
		return
	}
	f.Clear()
	f.root, other.root = other.root, f.root
	logOp("move", logrus.Fields{"size": f.Size()})
}

// Detach returns a new forest owning every node of f and leaves f empty.
// Iterators into f keep working against the returned forest.
func (f *Forest[T]) Detach() *Forest[T] {
	out := &Forest[T]{root: f.root, ctx: f.ctx}
	f.root = newRoot[T]()
	return out
}

// Append moves the top-level trees of each of trees below the last node of
// f in preorder, the deepest rightmost one. They become children of that
// node, not siblings of the top-level trees; an empty f takes them as its
// own top-level trees. The target is chosen once, so later arguments land
// after earlier ones under the same node. Each argument is left empty.
func (f *Forest[T]) Append(trees ...*Forest[T]) *Forest[T] {
	where := endOf(f.root)
	if f.root.last != nil {
		where = endOf(f.root.deepestRightmost())
	}
	moved := 0
	for _, t := range trees {
		if t == nil || t == f {
			continue
		}
		moved += t.Size()
		splice(where, t.root)
	}
	logOp("append", logrus.Fields{"trees": len(trees), "moved": moved})
	return f
}

// Equal reports whether f and other have the same shape and the same
// payloads, compared with f's equality.
func (f *Forest[T]) Equal(other *Forest[T]) bool {
	if other == nil {
		return false
	}
	if f == other {
		return true
	}
	return forEach2(Flat,
		beginOf(f.root), endOf(f.root), f.root,
		beginOf(other.root), endOf(other.root), other.root,
		deepEqual(f.ctx.eq))
}

// owns reports whether n is linked below the root of f.
func (f *Forest[T]) owns(n *node[T]) bool {
	return n != nil && n.topmost() == f.root
}

// source checks that it designates a live element, and when owned is set,
// one of f's.
func (f *Forest[T]) source(op string, it Iterator[T], owned bool) (*node[T], error) {
	if !it.p.isElem() || it.p.n.state != stateLinked {
		return nil, errors.Wrapf(ErrInvalidElement, "%s: source is not an element", op)
	}
	if owned && !f.owns(it.p.n) {
		return nil, errors.Wrapf(ErrInvalidElement, "%s: source belongs to another forest", op)
	}
	return it.p.n, nil
}

// destination checks that it is a position of f something can be linked
// before: an element or an end sentinel, never a reverse end.
func (f *Forest[T]) destination(op string, it Iterator[T]) (pos[T], error) {
	p := it.p
	switch {
	case p.isNil(), p.e == atREnd:
		return p, errors.Wrapf(ErrInvalidElement, "%s: invalid destination", op)
	case p.e == atElem && p.n.state != stateLinked, p.e == atEnd && !p.n.alive():
		return p, errors.Wrapf(ErrInvalidElement, "%s: destination was removed", op)
	case !f.owns(p.n):
		return p, errors.Wrapf(ErrInvalidElement, "%s: destination belongs to another forest", op)
	}
	return p, nil
}

// Insert links a new node holding v before where.
func (f *Forest[T]) Insert(where Iterator[T], v T) (Iterator[T], error) {
	p, err := f.destination("insert", where)
	if err != nil {
		return where, err
	}
	n := link(p, f.ctx.newNode(v))
	return where.at(elem(n)), nil
}

// InsertValues links new nodes holding vs before where, in order. It
// returns the first of them, or where when vs is empty.
func (f *Forest[T]) InsertValues(where Iterator[T], vs ...T) (Iterator[T], error) {
	return f.insertSeq("insert values", where, slices.Values(vs))
}

// InsertSeq is InsertValues for a sequence.
func (f *Forest[T]) InsertSeq(where Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	return f.insertSeq("insert seq", where, seq)
}

func (f *Forest[T]) insertSeq(op string, where Iterator[T], seq iter.Seq[T]) (Iterator[T], error) {
	p, err := f.destination(op, where)
	if err != nil {
		return where, err
	}
	holder := newHolder[T]()
	for v := range seq {
		link(endOf(holder), f.ctx.newNode(v))
	}
	first := splice(p, holder)
	if first == nil {
		return where, nil
	}
	return where.at(elem(first)), nil
}

// Emplace links a new node before where and lets init fill its payload in
// place.
func (f *Forest[T]) Emplace(where Iterator[T], init func(*T)) (Iterator[T], error) {
	p, err := f.destination("emplace", where)
	if err != nil {
		return where, err
	}
	var zero T
	n := f.ctx.newNode(zero)
	if init != nil {
		init(&n.value)
	}
	link(p, n)
	return where.at(elem(n)), nil
}

// Copy links a copy of the node at src, without its children, before
// where. src may belong to any forest.
func (f *Forest[T]) Copy(where, src Iterator[T]) (Iterator[T], error) {
	s, err := f.source("copy", src, false)
	if err != nil {
		return where, err
	}
	p, err := f.destination("copy", where)
	if err != nil {
		return where, err
	}
	n := link(p, f.ctx.shallowClone(s))
	return where.at(elem(n)), nil
}

// DeepCopy links a copy of the subtree at src before where. where may lie
// inside that subtree.
func (f *Forest[T]) DeepCopy(where, src Iterator[T]) (Iterator[T], error) {
	s, err := f.source("deep copy", src, false)
	if err != nil {
		return where, err
	}
	p, err := f.destination("deep copy", where)
	if err != nil {
		return where, err
	}
	n := link(p, f.ctx.deepClone(s))
	return where.at(elem(n)), nil
}

// CopyRange links copies of the nodes of [begin, end), without their
// children, before where. The order of begin drives the walk, so a
// preorder range is flattened into a sibling run. It returns the first
// copy, or where when the range is empty.
func (f *Forest[T]) CopyRange(where, begin, end Iterator[T]) (Iterator[T], error) {
	return f.copyRange("copy range", where, begin, end, false)
}

// DeepCopyRange links copies of the subtrees of the flat range
// [begin, end) before where.
func (f *Forest[T]) DeepCopyRange(where, begin, end Iterator[T]) (Iterator[T], error) {
	return f.copyRange("deep copy range", where, begin, end, true)
}

func (f *Forest[T]) copyRange(op string, where, begin, end Iterator[T], deep bool) (Iterator[T], error) {
	o, scope, err := checkRange(op, begin, end, deep)
	if err != nil {
		return where, err
	}
	p, err := f.destination(op, where)
	if err != nil {
		return where, err
	}
	first := f.ctx.copyRange(o, p, begin.p, end.p, scope, deep)
	if first == nil {
		return where, nil
	}
	return where.at(elem(first)), nil
}

// Move relinks the subtree at src before where. src may come from another
// forest, which then loses it. Moving a node below itself fails with
// ErrCircularDependency.
func (f *Forest[T]) Move(where, src Iterator[T]) (Iterator[T], error) {
	n, err := f.source("move", src, false)
	if err != nil {
		return where, err
	}
	p, err := f.destination("move", where)
	if err != nil {
		return where, err
	}
	if n.isAncestorOf(p.owner()) {
		return where, errors.Wrap(ErrCircularDependency, "move: destination is inside the moved subtree")
	}
	move(p, n)
	return where.at(elem(n)), nil
}

// MoveRange relinks the subtrees of the flat range [begin, end) before
// where, keeping their order. It fails with ErrCircularDependency when
// where lies inside one of them.
func (f *Forest[T]) MoveRange(where, begin, end Iterator[T]) (Iterator[T], error) {
	_, owner, err := checkRange("move range", begin, end, true)
	if err != nil {
		return where, err
	}
	p, err := f.destination("move range", where)
	if err != nil {
		return where, err
	}
	if begin.p == end.p {
		return where, nil
	}

	inRange := func(x *node[T]) bool {
		return !forEach(Flat, begin.p, end.p, owner, func(q pos[T]) bool { return q.n != x })
	}
	a := p.owner()
	if a == owner {
		if p.isElem() && p != begin.p && inRange(p.n) {
			return where, errors.Wrap(ErrCircularDependency, "move range: destination is inside the moved range")
		}
	} else {
		for a != nil && a.parent != owner {
			a = a.parent
		}
		if a != nil && inRange(a) {
			return where, errors.Wrap(ErrCircularDependency, "move range: destination is inside a moved subtree")
		}
	}

	first := moveRange(p, begin.p, end.p)
	logOp("move range", logrus.Fields{"size": first.size})
	return where.at(elem(first)), nil
}

// Join moves the top-level trees of other before where and leaves other
// empty. It returns the first moved node, or where if nothing moved.
func (f *Forest[T]) Join(where Iterator[T], other *Forest[T]) (Iterator[T], error) {
	p, err := f.destination("join", where)
	if err != nil {
		return where, err
	}
	if other == nil || other == f || other.Empty() {
		return where, nil
	}
	moved := other.Size()
	first := splice(p, other.root)
	logOp("join", logrus.Fields{"moved": moved})
	return where.at(elem(first)), nil
}

// Unjoin unlinks the subtree at it and returns it as the only tree of a new
// forest sharing f's free list and equality.
func (f *Forest[T]) Unjoin(it Iterator[T]) (*Forest[T], error) {
	n, err := f.source("unjoin", it, true)
	if err != nil {
		return nil, err
	}
	out := &Forest[T]{root: newRoot[T](), ctx: f.ctx}
	link(endOf(out.root), unlink(n))
	logOp("unjoin", logrus.Fields{"moved": n.size})
	return out, nil
}

// Remove destroys the subtree at it and returns the position of the
// sibling that followed it.
func (f *Forest[T]) Remove(it Iterator[T]) (Iterator[T], error) {
	n, err := f.source("remove", it, true)
	if err != nil {
		return it, err
	}
	return it.at(f.ctx.remove(n)), nil
}

// RemoveIf destroys every node of [begin, end) whose payload matches pred,
// each with its whole subtree, and returns the number of destroyed nodes.
// The range is walked backwards so every node is tested before its
// ancestors.
func (f *Forest[T]) RemoveIf(begin, end Iterator[T], pred func(T) bool) (int, error) {
	o, scope, err := checkRange("remove if", begin, end, false)
	if err != nil {
		return 0, err
	}
	if !f.owns(end.p.n) {
		return 0, errors.Wrap(ErrInvalidElement, "remove if: range belongs to another forest")
	}
	removed := f.ctx.removeIf(o, begin.p, end.p, scope, pred)
	logOp("remove if", logrus.Fields{"removed": removed})
	return removed, nil
}

// RemoveValue is RemoveIf with a predicate matching v under f's equality.
func (f *Forest[T]) RemoveValue(begin, end Iterator[T], v T) (int, error) {
	return f.RemoveIf(begin, end, func(x T) bool { return f.ctx.eq(x, v) })
}

// ClearChildren destroys every descendant of the node at it and returns
// their number.
func (f *Forest[T]) ClearChildren(it Iterator[T]) (int, error) {
	n, err := f.source("clear children", it, true)
	if err != nil {
		return 0, err
	}
	return f.ctx.clearChildren(n), nil
}

// Swap exchanges the places of the subtrees at a and b. They may sit in
// different lists but neither may contain the other.
func (f *Forest[T]) Swap(a, b Iterator[T]) error {
	x, err := f.source("swap", a, true)
	if err != nil {
		return err
	}
	y, err := f.source("swap", b, true)
	if err != nil {
		return err
	}
	if x != y && (x.isAncestorOf(y) || y.isAncestorOf(x)) {
		return errors.Wrap(ErrCircularDependency, "swap: one node contains the other")
	}
	swapNodes(x, y)
	logOp("swap", nil)
	return nil
}

// Compare reports whether [lbegin, lend) and [rbegin, rend) hold equal
// payloads in the same order, ignoring how they are nested. Both ranges
// must use the same order. A nil eq selects Equal[T]().
func Compare[T any](lbegin, lend, rbegin, rend Iterator[T], eq EqualFunc[T]) (bool, error) {
	return compareRanges("compare", lbegin, lend, rbegin, rend, eq, false)
}

// DeepCompare reports whether the subtrees of the two flat ranges are
// pairwise equal: same payloads, same child counts and same sizes at every
// node.
func DeepCompare[T any](lbegin, lend, rbegin, rend Iterator[T], eq EqualFunc[T]) (bool, error) {
	return compareRanges("deep compare", lbegin, lend, rbegin, rend, eq, true)
}

func compareRanges[T any](op string, lbegin, lend, rbegin, rend Iterator[T], eq EqualFunc[T], deep bool) (bool, error) {
	lo, lscope, err := checkRange(op, lbegin, lend, false)
	if err != nil {
		return false, err
	}
	ro, rscope, err := checkRange(op, rbegin, rend, false)
	if err != nil {
		return false, err
	}
	if lo != ro {
		return false, errors.Wrapf(ErrIncoherentRange, "%s: ranges use different orders", op)
	}
	if eq == nil {
		eq = Equal[T]()
	}
	cmp := shallowEqual(eq)
	if deep {
		cmp = deepEqual(eq)
	}
	return forEach2(lo, lbegin.p, lend.p, lscope, rbegin.p, rend.p, rscope, cmp), nil
}

// checkRange validates [begin, end) and returns the order to walk it in and
// the node bounding the walk. A flat range has to stay inside one child
// list; a preorder range needs endpoints with the same origin. In both
// cases end has to be reachable from begin.
func checkRange[T any](op string, begin, end Iterator[T], flatOnly bool) (Order, *node[T], error) {
	b, e := begin.p, end.p
	switch {
	case b.isNil(), e.isNil(), b.e == atREnd, e.e == atREnd:
		return 0, nil, errors.Wrapf(ErrInvalidElement, "%s: invalid range bound", op)
	case b.e == atElem && b.n.state != stateLinked, e.e == atElem && e.n.state != stateLinked:
		return 0, nil, errors.Wrapf(ErrInvalidElement, "%s: range bound was removed", op)
	case b.e == atEnd && !b.n.alive(), e.e == atEnd && !e.n.alive():
		return 0, nil, errors.Wrapf(ErrInvalidElement, "%s: range bound was removed", op)
	case flatOnly && (begin.order != Flat || end.order != Flat):
		return 0, nil, errors.Wrapf(ErrInvalidElement, "%s: range must be flat", op)
	case begin.order != end.order:
		return 0, nil, errors.Wrapf(ErrIncoherentRange, "%s: range bounds use different orders", op)
	}

	o := begin.order
	scope := begin.origin
	if o == Flat {
		scope = b.owner()
		if e.owner() != scope {
			return 0, nil, errors.Wrapf(ErrIncoherentRange, "%s: range bounds are in different lists", op)
		}
	} else if scope == nil || end.origin != scope {
		return 0, nil, errors.Wrapf(ErrIncoherentRange, "%s: range bounds have different origins", op)
	}
	if !forEach(o, b, e, scope, func(pos[T]) bool { return true }) {
		return 0, nil, errors.Wrapf(ErrIncoherentRange, "%s: end is not reachable from begin", op)
	}
	return o, scope, nil
}
