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

package literal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outtree/forest"
)

const sample = `
- value: 1
  children:
    - value: 11
      children: [111]
    - 12
- 2
`

func TestDecode(t *testing.T) {
	f, err := Decode([]byte(sample))
	require.NoError(t, err)
	require.NoError(t, f.Verify())
	assert.Equal(t, 5, f.Size())
	assert.Equal(t, 2, f.ChildCount())
	assert.Equal(t, []string{"1", "2"}, f.Flat().Values())
	assert.Equal(t, []string{"1", "11", "111", "12", "2"}, f.Preorder().Values())
}

func TestDecodeJSON(t *testing.T) {
	f, err := Decode([]byte(`[{"value": "usr", "children": ["bin", {"value": "lib", "children": ["go"]}]}, "etc"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"usr", "bin", "lib", "go", "etc"}, f.Preorder().Values())
}

func TestDecodeEmpty(t *testing.T) {
	for _, in := range []string{"", "[]", "# nothing\n"} {
		f, err := Decode([]byte(in))
		require.NoError(t, err, in)
		assert.True(t, f.Empty(), in)
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		path string
	}{
		{in: "a: b", path: ""},
		{in: "- null", path: "[0]"},
		{in: "- [a, b]", path: "[0]"},
		{in: "- children: [a]", path: "[0]: missing value"},
		{in: "- value: a\n  children:\n    - value: {x: 1}", path: "[0].children[0].value"},
		{in: "- value: a\n  extra: 1", path: "[0]"},
	} {
		_, err := Decode([]byte(tc.in))
		require.Error(t, err, tc.in)
		assert.True(t, errors.Is(err, ErrMalformed), tc.in)
		assert.Contains(t, err.Error(), tc.path, tc.in)
	}
}

func TestRoundTrip(t *testing.T) {
	f, err := Decode([]byte(sample))
	require.NoError(t, err)

	out, err := Encode(f)
	require.NoError(t, err)
	g, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, f.Equal(g), "%s", out)

	ok, err := forest.DeepCompare(f.Flat().Begin(), f.Flat().End(), g.Flat().Begin(), g.Flat().End(), nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEncodeView(t *testing.T) {
	f, err := Decode([]byte(sample))
	require.NoError(t, err)
	v, err := f.Flat().Begin().View()
	require.NoError(t, err)

	out, err := EncodeView(v)
	require.NoError(t, err)
	g, err := Decode(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "111", "12"}, g.Preorder().Values())

	out, err = Encode(forest.New[string]())
	require.NoError(t, err)
	g, err = Decode(out)
	require.NoError(t, err)
	assert.True(t, g.Empty())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "forest.yaml")
	require.NoError(t, os.WriteFile(name, []byte(sample), 0o600))

	f, err := ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Size())

	_, err = ReadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}
