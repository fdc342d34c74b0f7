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

import "github.com/pkg/errors"

// Contract errors. Every entry point returns one of these, possibly wrapped
// with the name of the failing operation; test for them with errors.Is.
// A returned error guarantees that no node was relinked.
var (
	// ErrInvalidElement indicates a nil iterator, a removed node, a sentinel
	// where an element is required, or a position foreign to the forest.
	ErrInvalidElement = errors.New("invalid element")

	// ErrOutOfBounds indicates a checked step past the begin, end or
	// reverse-end of the current scope.
	ErrOutOfBounds = errors.New("element out of bounds")

	// ErrCircularDependency indicates that a move or swap would place a node
	// inside its own subtree.
	ErrCircularDependency = errors.New("circular dependency")

	// ErrIncoherentRange indicates range endpoints with different origins,
	// or an end that is not reachable from the begin.
	ErrIncoherentRange = errors.New("incoherent range")
)
