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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walk[T any](v View[T]) (out []T) {
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		x, err := it.Value()
		if err != nil {
			panic(err)
		}
		out = append(out, *x)
	}
	return
}

func backward[T any](v View[T]) (out []T) {
	for x := range v.Backward() {
		out = append(out, *x)
	}
	return
}

func TestTraversalCounts(t *testing.T) {
	f := sample(t)
	views := []View[int]{f.Flat(), f.Preorder()}
	for _, it := range []int{1, 11, 111} {
		v, err := find(t, f, it).View()
		require.NoError(t, err)
		views = append(views, v.Flat(), v.Preorder())
	}
	for _, v := range views {
		n := 0
		for range v.Positions() {
			n++
		}
		assert.Equal(t, v.Len(), n, "%s view", v.Order())
		if v.Order() == Flat {
			assert.Equal(t, v.ChildCount(), n)
		} else {
			assert.Equal(t, v.Size(), n)
		}
	}
}

func TestWalk(t *testing.T) {
	f := sample(t)
	assert.Equal(t, []int{1, 11, 111, 12, 2}, walk(f.Preorder()))
	assert.Equal(t, []int{1, 2}, walk(f.Flat()))
	assert.Equal(t, []int{2, 12, 111, 11, 1}, backward(f.Preorder()))
	assert.Equal(t, []int{2, 1}, backward(f.Flat()))

	v, err := find(t, f, 1).View()
	require.NoError(t, err)
	assert.Equal(t, []int{11, 111, 12}, walk(v))
	assert.Equal(t, []int{12, 111, 11}, backward(v))
	assert.Equal(t, []int{12, 11}, backward(v.Flat()))

	assert.Empty(t, walk(New[int]().Preorder()))
	assert.Empty(t, backward(New[int]().Flat()))
}

func TestReverseSymmetry(t *testing.T) {
	f := sample(t)
	v, err := find(t, f, 1).View()
	require.NoError(t, err)
	for _, view := range []View[int]{f.Flat(), f.Preorder(), v.Flat(), v.Preorder()} {
		for it := range view.Positions() {
			assert.True(t, it.Next().Prev().Equal(it), "%s: next/prev from %v", view.Order(), it)
			assert.True(t, it.Prev().Next().Equal(it), "%s: prev/next from %v", view.Order(), it)
		}
	}
}

func TestRBegin(t *testing.T) {
	f := sample(t)
	assert.Equal(t, "2", f.Flat().RBegin().String())
	assert.Equal(t, "2", f.Preorder().RBegin().String())

	v, err := find(t, f, 1).View()
	require.NoError(t, err)
	assert.Equal(t, "12", v.Preorder().RBegin().String())
	assert.Equal(t, "12", v.Flat().RBegin().String())

	e := New[int]()
	assert.True(t, e.Flat().RBegin().IsREnd())
	assert.True(t, e.Preorder().RBegin().IsREnd())
	assert.True(t, e.Flat().Begin().IsEnd())
}

func TestAdvance(t *testing.T) {
	f := sample(t)
	begin := f.Preorder().Begin()
	assert.Equal(t, "12", begin.Advance(3).String())
	assert.Equal(t, "11", begin.Advance(3).Advance(-2).String())
	assert.True(t, begin.Advance(10).IsEnd())
	assert.True(t, f.Preorder().End().Advance(-10).IsREnd())
	assert.Equal(t, "1", f.Preorder().REnd().Next().String())

	assert.True(t, Iterator[int]{}.Next().Equal(Iterator[int]{}))
	assert.True(t, Iterator[int]{}.Advance(-3).Equal(Iterator[int]{}))
}

func TestCheckedNavigation(t *testing.T) {
	f := sample(t)
	flat, pre := f.Flat(), f.Preorder()
	sub, err := find(t, f, 11).View()
	require.NoError(t, err)

	for name, step := range map[string]func() (Iterator[int], error){
		"prev flat at begin":       flat.Begin().PrevFlat,
		"prev flat at rend":        flat.REnd().PrevFlat,
		"next flat at end":         flat.End().NextFlat,
		"next flat at rend":        flat.REnd().NextFlat,
		"prev preorder at begin":   pre.Begin().PrevPreorder,
		"prev preorder at rend":    pre.REnd().PrevPreorder,
		"next preorder at end":     pre.End().NextPreorder,
		"prev flat in empty list":  New[int]().Flat().End().PrevFlat,
		"prev preorder in subtree": sub.Begin().PrevPreorder,
	} {
		_, err := step()
		assert.True(t, errors.Is(err, ErrOutOfBounds), name)
	}

	it, err := find(t, f, 11).NextFlat()
	require.NoError(t, err)
	assert.Equal(t, "12", it.String())
	it, err = find(t, f, 12).NextFlat()
	require.NoError(t, err)
	assert.True(t, it.IsEnd())
	it, err = flat.End().PrevFlat()
	require.NoError(t, err)
	assert.Equal(t, "2", it.String())

	it, err = find(t, f, 111).NextPreorder()
	require.NoError(t, err)
	assert.Equal(t, "12", it.String())
	it, err = find(t, f, 12).PrevPreorder()
	require.NoError(t, err)
	assert.Equal(t, "111", it.String())
	it, err = pre.End().PrevPreorder()
	require.NoError(t, err)
	assert.Equal(t, "2", it.String())
	it, err = pre.REnd().NextPreorder()
	require.NoError(t, err)
	assert.Equal(t, "1", it.String())

	removed := find(t, f, 2)
	_, err = f.Remove(removed)
	require.NoError(t, err)
	for _, it := range []Iterator[int]{{}, removed} {
		_, err = it.PrevFlat()
		assert.True(t, errors.Is(err, ErrInvalidElement))
		_, err = it.NextFlat()
		assert.True(t, errors.Is(err, ErrInvalidElement))
		_, err = it.PrevPreorder()
		assert.True(t, errors.Is(err, ErrInvalidElement))
		_, err = it.NextPreorder()
		assert.True(t, errors.Is(err, ErrInvalidElement))
		_, err = it.Parent()
		assert.True(t, errors.Is(err, ErrInvalidElement))
		_, err = it.View()
		assert.True(t, errors.Is(err, ErrInvalidElement))
	}
}

func TestParent(t *testing.T) {
	f := sample(t)
	p, err := find(t, f, 111).Parent()
	require.NoError(t, err)
	assert.Equal(t, "11", p.String())

	p, err = p.Parent()
	require.NoError(t, err)
	assert.Equal(t, "1", p.String())

	p, err = p.Parent()
	require.NoError(t, err)
	assert.False(t, p.Valid())
	assert.Equal(t, "<nil>", p.String())

	_, err = f.Flat().End().Parent()
	assert.True(t, errors.Is(err, ErrInvalidElement))
}

func TestRebindOrder(t *testing.T) {
	f := sample(t)
	it := find(t, f, 111)
	assert.Equal(t, Preorder, it.Order())
	assert.Equal(t, "12", it.Next().String())

	fl := it.Flat()
	assert.Equal(t, Flat, fl.Order())
	assert.True(t, fl.Next().IsEnd())

	// Back in preorder the walk stays below 11, the owner of the flat list.
	assert.True(t, fl.Preorder().Next().IsEnd())
}

func TestValueAndCounts(t *testing.T) {
	f := sample(t)
	_, err := f.Flat().End().Value()
	assert.True(t, errors.Is(err, ErrInvalidElement))
	_, err = f.Flat().End().Size()
	assert.True(t, errors.Is(err, ErrInvalidElement))
	_, err = f.Flat().REnd().ChildCount()
	assert.True(t, errors.Is(err, ErrInvalidElement))

	one := find(t, f, 1)
	n, err := one.Size()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = one.ChildCount()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, "<end>", f.Flat().End().String())
	assert.Equal(t, "<rend>", f.Flat().REnd().String())
	assert.Equal(t, "<nil>", Iterator[int]{}.String())
}

func TestView(t *testing.T) {
	f := sample(t)
	v, err := find(t, f, 1).View()
	require.NoError(t, err)
	assert.True(t, v.Valid())
	assert.Equal(t, Preorder, v.Order())
	assert.Equal(t, []int{11, 111, 12}, v.Values())
	assert.Equal(t, []int{11, 12}, v.Flat().Values())
	assert.Equal(t, 3, v.Size())
	assert.Equal(t, 2, v.ChildCount())
	assert.True(t, v.HasChildren())

	leaf, err := find(t, f, 111).View()
	require.NoError(t, err)
	assert.False(t, leaf.HasChildren())
	assert.Empty(t, leaf.Values())
	assert.Equal(t, 0, leaf.Len())

	assert.True(t, f.Preorder().Find(42).IsEnd())
	assert.Equal(t, "12", f.Preorder().FindFunc(func(x int) bool { return x > 11 && x < 100 }).String())

	var zero View[int]
	assert.False(t, zero.Valid())
	assert.Empty(t, zero.Values())
	assert.True(t, zero.Begin().Equal(Iterator[int]{}))
	_, err = zero.RemoveIf(func(int) bool { return true })
	assert.True(t, errors.Is(err, ErrInvalidElement))
}

func TestViewRemove(t *testing.T) {
	f := sample(t)
	v, err := find(t, f, 1).View()
	require.NoError(t, err)

	n, err := v.RemoveValue(111)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 4, f.Size())

	n, err = v.Flat().RemoveIf(func(x int) bool { return x == 12 })
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	requireSound(t, f)
	assert.Equal(t, []int{1, 11, 2}, f.Preorder().Values())
}

func TestViewCopyTo(t *testing.T) {
	f := sample(t)
	g := FromValues(0)
	it, err := f.Preorder().CopyTo(g.Flat().End())
	require.NoError(t, err)
	requireSound(t, f, g)
	assert.Equal(t, "1", it.String())
	assert.Equal(t, []int{0, 1, 11, 111, 12, 2}, g.Flat().Values())

	_, err = f.Flat().CopyTo(f.Flat().Begin())
	require.NoError(t, err)
	requireSound(t, f)
	assert.Equal(t, []int{1, 2, 1, 11, 111, 12, 2}, f.Preorder().Values())
	assert.Equal(t, 7, f.Size())

	_, err = f.Flat().CopyTo(f.Flat().REnd())
	assert.True(t, errors.Is(err, ErrInvalidElement))
}

func TestOrderString(t *testing.T) {
	assert.Equal(t, "flat", Flat.String())
	assert.Equal(t, "preorder", Preorder.String())
	assert.Equal(t, "unknown", Order(7).String())
}
