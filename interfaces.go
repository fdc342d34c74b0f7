// Copyright 2014 Google Inc.
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

import "reflect"

// EqualFunc reports whether two payloads are equal.
//
// It is used by the shallow and deep comparisons and by RemoveValue.
type EqualFunc[T any] func(a, b T) bool

// Equaler is implemented by payload types that decide their own equality.
// It overrides the reflect.DeepEqual fallback of the default EqualFunc.
type Equaler[T any] interface {
	Equal(other T) bool
}

// Cloner is implemented by payload types that need a deep copy when a node
// is copied. Values that don't implement it are copied by assignment.
type Cloner[T any] interface {
	Clone() T
}

// Equal returns the default EqualFunc: Equaler[T] if the payload implements
// it, reflect.DeepEqual otherwise.
func Equal[T any]() EqualFunc[T] {
	return equal[T]
}

func equal[T any](a, b T) bool {
	// you can't assert directly on a type parameter
	if a, ok := any(a).(Equaler[T]); ok {
		return a.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

func cloneValue[T any](v T) T {
	if c, ok := any(v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v
}
