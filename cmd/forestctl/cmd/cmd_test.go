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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/outtree/forest/internal/literal"
)

const sample = `
- value: 1
  children:
    - value: 11
      children: [111]
    - 12
- 2
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--color", "never", "--hide-time"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDump(t *testing.T) {
	out, _, err := run(t, "dump", writeFile(t, "f.yaml", sample))
	require.NoError(t, err)
	assert.Equal(t, "1\n|------ 11\n        |------ 111\n|------ 12\n2\nSize: 5\n", out)

	_, _, err = run(t, "dump", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestStats(t *testing.T) {
	out, _, err := run(t, "stats", writeFile(t, "f.yaml", sample))
	require.NoError(t, err)
	assert.Equal(t, "size:      5\ntop-level: 2\ndepth:     3\nleaves:    3\n", out)

	out, _, err = run(t, "stats", writeFile(t, "e.yaml", "[]"))
	require.NoError(t, err)
	assert.Contains(t, out, "depth:     0\n")
}

func TestWalk(t *testing.T) {
	file := writeFile(t, "f.yaml", sample)
	for _, tc := range []struct {
		args []string
		want []string
	}{
		{args: nil, want: []string{"1", "11", "111", "12", "2"}},
		{args: []string{"--order", "flat"}, want: []string{"1", "2"}},
		{args: []string{"--reverse"}, want: []string{"2", "12", "111", "11", "1"}},
		{args: []string{"--order", "flat", "-r"}, want: []string{"2", "1"}},
	} {
		out, _, err := run(t, append([]string{"walk", file}, tc.args...)...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, strings.Fields(out), tc.args)
	}

	_, _, err := run(t, "walk", file, "--order", "inorder")
	assert.ErrorContains(t, err, "order must be flat or preorder")
}

func TestRemove(t *testing.T) {
	file := writeFile(t, "f.yaml", sample)
	out, stderr, err := run(t, "--debug", "remove", file, "--value", "11")
	require.NoError(t, err)
	assert.Equal(t, "removed: 2\n1\n|------ 12\n2\nSize: 3\n", out)
	assert.Contains(t, stderr, "op=remove if")

	_, _, err = run(t, "remove", file)
	assert.ErrorContains(t, err, "--value is required")
}

func TestUnjoin(t *testing.T) {
	file := writeFile(t, "f.yaml", sample)
	out, _, err := run(t, "unjoin", file, "--value", "11")
	require.NoError(t, err)
	assert.Equal(t, "--- remaining\n1\n|------ 12\n2\nSize: 3\n--- detached\n11\n|------ 111\nSize: 2\n", out)

	_, _, err = run(t, "unjoin", file, "--value", "42")
	assert.ErrorContains(t, err, `no node holds "42"`)
}

func TestAppend(t *testing.T) {
	base := writeFile(t, "base.yaml", sample)
	extra := writeFile(t, "extra.yaml", "- value: -1\n  children: [-2]\n")
	out, _, err := run(t, "append", base, extra)
	require.NoError(t, err)

	f, err := literal.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, 7, f.Size())
	assert.Equal(t, []string{"1", "11", "111", "12", "2", "-1", "-2"}, f.Preorder().Values())
	assert.Equal(t, []string{"1", "2"}, f.Flat().Values())
}

func TestVerify(t *testing.T) {
	good := writeFile(t, "good.yaml", sample)
	bad := writeFile(t, "bad.yaml", "- children: [a]\n")
	out, _, err := run(t, "verify", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (5 nodes)")

	out, _, err = run(t, "verify", good, bad, filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, out, "ok (5 nodes)")
	assert.Contains(t, err.Error(), "2 errors occurred")
	assert.Contains(t, err.Error(), "missing value")
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)

	out, _, err = run(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version":"`+Version+`"`)

	_, _, err = run(t, "version", "-o", "toml")
	assert.Error(t, err)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("FORESTCTL_LOG_LEVEL", "loud")
	_, _, err := run(t, "version")
	assert.ErrorContains(t, err, "failed to init logger")
}
