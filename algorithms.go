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

// This file holds the structural engine. None of these functions validate
// their arguments; the entry points in forest.go, view.go and iterator.go do
// that before calling in.
//
// Every change of linkage is paired with a size propagation along the
// ancestor chain, so subtree sizes are exact again as soon as a function
// returns.

// forestContext is shared by every forest that may exchange nodes with
// another: clones, unjoined and detached forests all keep their parent's.
type forestContext[T any] struct {
	freelist *FreeList[T]
	eq       EqualFunc[T]
}

func (c *forestContext[T]) newNode(v T) *node[T] {
	var n *node[T]
	if c == nil {
		n = new(node[T])
	} else {
		n = c.freelist.newNode()
	}
	n.value = v
	n.size = 1
	return n
}

// destroy retires an unlinked node. Its links are cleared so that stale
// iterators see a dead node.
func (c *forestContext[T]) destroy(n *node[T]) {
	var zero T
	n.parent, n.prev, n.next, n.first, n.last = nil, nil, nil, nil, nil
	n.childCount, n.size = 0, 0
	n.value = zero
	n.state = stateDestroyed
	if c != nil {
		c.freelist.freeNode(n)
	}
}

func newHolder[T any]() *node[T] {
	return &node[T]{size: 1, state: stateRoot}
}

// propagate adds delta to the size of a and all of its ancestors.
func propagate[T any](a *node[T], delta int) {
	for ; a != nil; a = a.parent {
		a.size += delta
	}
}

// link splices n before where and grows every ancestor by n's size.
// Linking a node before itself is a no-op.
func link[T any](where pos[T], n *node[T]) *node[T] {
	if where.e == atElem && where.n == n {
		return n
	}
	parent := where.owner()
	var before, after *node[T]
	if where.e == atEnd {
		before = parent.last
	} else {
		before, after = where.n.prev, where.n
	}
	n.parent, n.prev, n.next = parent, before, after
	if before != nil {
		before.next = n
	} else {
		parent.first = n
	}
	if after != nil {
		after.prev = n
	} else {
		parent.last = n
	}
	n.state = stateLinked
	parent.childCount++
	propagate(parent, n.size)
	return n
}

// unlink takes n out of its sibling list, shrinking the ancestors first.
// n keeps its own children and size.
func unlink[T any](n *node[T]) *node[T] {
	parent := n.parent
	propagate(parent, -n.size)
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		parent.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		parent.last = n.prev
	}
	parent.childCount--
	n.parent, n.prev, n.next = nil, nil, nil
	n.state = stateFree
	return n
}

// move relinks n before where.
func move[T any](where pos[T], n *node[T]) *node[T] {
	if where.e == atElem && (where.n == n || where.n == n.next) {
		return n
	}
	return link(where, unlink(n))
}

// appendChild links c as the last child of parent without touching any
// size. It is used while building detached subtrees whose sizes are
// copied rather than accumulated.
func appendChild[T any](parent, c *node[T]) {
	c.parent, c.prev, c.next = parent, parent.last, nil
	if parent.last != nil {
		parent.last.next = c
	} else {
		parent.first = c
	}
	parent.last = c
	c.state = stateLinked
}

// splice moves every child of from before where in a single pass. from is
// either a detached holder or the root of another forest; it is left with
// an empty child list. It returns the first spliced node, or nil if from
// had no children.
func splice[T any](where pos[T], from *node[T]) *node[T] {
	first, last := from.first, from.last
	if first == nil {
		return nil
	}
	count, size := from.childCount, from.size-1
	from.first, from.last, from.childCount = nil, nil, 0
	propagate(from, -size)

	parent := where.owner()
	for c := first; c != nil; c = c.next {
		c.parent = parent
	}
	var before, after *node[T]
	if where.e == atEnd {
		before = parent.last
	} else {
		before, after = where.n.prev, where.n
	}
	first.prev, last.next = before, after
	if before != nil {
		before.next = first
	} else {
		parent.first = first
	}
	if after != nil {
		after.prev = last
	} else {
		parent.last = last
	}
	parent.childCount += count
	propagate(parent, size)
	return first
}

// detachRange cuts the sibling run [begin, end) out of its list and hands
// it back under a fresh holder. The former ancestors shrink once by the
// total size of the run.
func detachRange[T any](begin, end pos[T]) *node[T] {
	parent := begin.owner()
	first, last := begin.n, begin.n
	count, size := 0, 0
	for p := begin; p != end; p = nextSibling(p.n) {
		last = p.n
		count++
		size += p.n.size
	}
	before, after := first.prev, last.next
	if before != nil {
		before.next = after
	} else {
		parent.first = after
	}
	if after != nil {
		after.prev = before
	} else {
		parent.last = before
	}
	parent.childCount -= count
	propagate(parent, -size)

	holder := newHolder[T]()
	first.prev, last.next = nil, nil
	holder.first, holder.last = first, last
	holder.childCount = count
	holder.size += size
	for c := first; c != nil; c = c.next {
		c.parent = holder
	}
	return holder
}

// remove unlinks n and destroys its whole subtree. It returns the position
// that followed n.
func (c *forestContext[T]) remove(n *node[T]) pos[T] {
	following := nextSibling(n)
	unlink(n)
	c.destroySubtree(n)
	return following
}

// destroySubtree destroys an unlinked subtree in reverse preorder, so every
// node goes before its parent and no destroyed node is read again.
func (c *forestContext[T]) destroySubtree(n *node[T]) {
	forEachReverse(Preorder, beginOf(n), endOf(n), n, func(p pos[T]) bool {
		c.destroy(p.n)
		return true
	})
	c.destroy(n)
}

// clearChildren destroys every child of n.
func (c *forestContext[T]) clearChildren(n *node[T]) int {
	removed := n.size - 1
	for n.last != nil {
		c.remove(n.last)
	}
	return removed
}

// removeIf walks [begin, end) backwards and removes every node whose value
// matches pred together with its subtree. Descendants are visited before
// their ancestors, so nothing already destroyed is visited. It returns the
// number of destroyed nodes.
func (c *forestContext[T]) removeIf(o Order, begin, end pos[T], scope *node[T], pred func(T) bool) int {
	removed := 0
	forEachReverse(o, begin, end, scope, func(p pos[T]) bool {
		if pred(p.n.value) {
			removed += p.n.size
			c.remove(p.n)
		}
		return true
	})
	return removed
}

// shallowClone returns a free node carrying a copy of src's value.
func (c *forestContext[T]) shallowClone(src *node[T]) *node[T] {
	return c.newNode(cloneValue(src.value))
}

// deepClone returns a free copy of src's whole subtree. Source and copy are
// walked in lockstep; each visited source node has its child list copied
// into the matching new node and its cached size and child count carried
// over, so nothing is propagated while the copy is built.
func (c *forestContext[T]) deepClone(src *node[T]) *node[T] {
	dst := c.shallowClone(src)
	forEach2(Preorder,
		elem(src), endOf(src), src,
		elem(dst), endOf(dst), dst,
		func(s, d pos[T]) bool {
			for ch := s.n.first; ch != nil; ch = ch.next {
				appendChild(d.n, c.shallowClone(ch))
			}
			d.n.childCount = s.n.childCount
			d.n.size = s.n.size
			return true
		})
	return dst
}

// copyRange copies [begin, end) before where, each element alone or with
// its subtree when deep is set. The source is walked backwards and every
// copy is linked in front of the previous one on a detached holder, which
// is spliced at where once complete. Copying a range into itself therefore
// never visits a fresh copy. It returns the first copy.
func (c *forestContext[T]) copyRange(o Order, where, begin, end pos[T], scope *node[T], deep bool) *node[T] {
	holder := newHolder[T]()
	forEachReverse(o, begin, end, scope, func(p pos[T]) bool {
		var n *node[T]
		if deep {
			n = c.deepClone(p.n)
		} else {
			n = c.shallowClone(p.n)
		}
		link(beginOf(holder), n)
		return true
	})
	return splice(where, holder)
}

// moveRange relinks the sibling run [begin, end) before where. where must
// not lie inside any of the moved subtrees.
func moveRange[T any](where, begin, end pos[T]) *node[T] {
	if begin == end {
		return nil
	}
	if where == begin || where == end {
		return begin.n
	}
	return splice(where, detachRange(begin, end))
}

// swapNodes exchanges the positions of a and b. Neither may be an ancestor
// of the other.
func swapNodes[T any](a, b *node[T]) {
	if a == b {
		return
	}
	if a.next == b {
		unlink(a)
		link(nextSibling(b), a)
		return
	}
	if b.next == a {
		swapNodes(b, a)
		return
	}
	at := nextSibling(a)
	unlink(a)
	link(nextSibling(b), a)
	unlink(b)
	link(at, b)
}

func shallowEqual[T any](eq EqualFunc[T]) func(a, b pos[T]) bool {
	return func(a, b pos[T]) bool {
		return eq(a.n.value, b.n.value)
	}
}

// deepEqual compares two subtrees node by node in preorder. Sizes and
// child counts have to match at every step, which makes the comparison
// sensitive to nesting and not only to values.
func deepEqual[T any](eq EqualFunc[T]) func(a, b pos[T]) bool {
	return func(a, b pos[T]) bool {
		return forEach2(Preorder,
			a, endOf(a.n), a.n,
			b, endOf(b.n), b.n,
			func(x, y pos[T]) bool {
				return x.n.size == y.n.size &&
					x.n.childCount == y.n.childCount &&
					eq(x.n.value, y.n.value)
			})
	}
}

// forEach applies op to every position of [begin, end) in order o. It
// reports whether op accepted every position and the walk reached end.
func forEach[T any](o Order, begin, end pos[T], scope *node[T], op func(pos[T]) bool) bool {
	for p := begin; p != end; {
		if !op(p) {
			return false
		}
		next := stepNext(o, p, scope)
		if next == p {
			return false
		}
		p = next
	}
	return true
}

// forEach2 walks two ranges in lockstep. It reports true only when op
// accepted every pair and both ranges ended together.
func forEach2[T any](o Order,
	lbegin, lend pos[T], lscope *node[T],
	rbegin, rend pos[T], rscope *node[T],
	op func(l, r pos[T]) bool,
) bool {
	l, r := lbegin, rbegin
	for l != lend && r != rend {
		if !op(l, r) {
			return false
		}
		nl, nr := stepNext(o, l, lscope), stepNext(o, r, rscope)
		if nl == l || nr == r {
			return false
		}
		l, r = nl, nr
	}
	return l == lend && r == rend
}

// forEachReverse applies op to [begin, end) from the back. The step to the
// previous position is taken before op sees the current one, so op may
// destroy the node it is given along with its subtree.
func forEachReverse[T any](o Order, begin, end pos[T], scope *node[T], op func(pos[T]) bool) bool {
	if begin == end {
		return true
	}
	p := stepPrev(o, end, scope)
	for p != begin {
		if p.isREnd() || p.isNil() {
			return false
		}
		captured := p
		p = stepPrev(o, p, scope)
		if !op(captured) {
			return false
		}
	}
	return op(p)
}
