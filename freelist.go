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

import "sync"

const (
	DefaultFreeListSize = 32
)

// FreeList represents a free list of forest nodes. By default a Forest
// allocates fresh nodes and leaves removed ones to the garbage collector,
// but forests can share a FreeList, and the forests derived from one
// (Clone, Unjoin, Detach) keep using it.
// Two forests using the same free list are safe for concurrent write access.
//
// A recycled node is indistinguishable from a new one, so an iterator kept
// past the removal of its node is only reported as ErrInvalidElement until
// the node is handed out again.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

// Len returns the number of nodes waiting to be reused.
func (f *FreeList[T]) Len() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	if f == nil {
		return new(node[T])
	}
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	*n = node[T]{}
	return
}

func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	if f == nil {
		return false
	}
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}
