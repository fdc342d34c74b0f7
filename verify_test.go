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

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySound(t *testing.T) {
	f := sample(t)
	assert.NoError(t, f.Verify())
	assert.NoError(t, New[int]().Verify())
}

func TestVerifyReportsEveryViolation(t *testing.T) {
	f := sample(t)
	f.root.first.size = 42

	err := f.Verify()
	require.Error(t, err)
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	// The bad size shows up on the node itself and on the root above it.
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "node 1: size 42, want 4")
	assert.Contains(t, err.Error(), "size 6, want 44")
}

func TestVerifyLinks(t *testing.T) {
	f := sample(t)
	two := f.root.last
	two.prev = nil
	two.state = stateFree

	err := f.Verify()
	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, err.Error(), "node 2: state free")
	assert.Contains(t, err.Error(), "node 2: wrong previous sibling")
}
