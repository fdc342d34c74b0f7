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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDump(t *testing.T) {
	f := sample(t)
	want := strings.Join([]string{
		"1",
		"|------ 11",
		"        |------ 111",
		"|------ 12",
		"2",
		"Size: 5",
		"",
	}, "\n")
	assert.Equal(t, want, f.String())
	assert.Equal(t, "<empty>\n", New[int]().String())

	v, err := find(t, f, 1).View()
	require.NoError(t, err)
	assert.Equal(t, "11\n|------ 111\n12\nSize: 3\n", v.String())

	leaf, err := find(t, f, 111).View()
	require.NoError(t, err)
	assert.Equal(t, "<empty>\n", leaf.String())

	assert.Equal(t, "<invalid>", View[int]{}.String())
}

func TestDumpStrings(t *testing.T) {
	f := Of("usr", Of("lib", FromValue("go")), FromValue("bin"))
	var b strings.Builder
	require.NoError(t, f.Fprint(&b))
	assert.Equal(t, "usr\n|------ lib\n        |------ go\n|------ bin\nSize: 4\n", b.String())
}
