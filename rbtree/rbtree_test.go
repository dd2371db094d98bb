// Copyright 2025 Naren Yellavula
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

package rbtree

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRBTreeOperations(t *testing.T) {
	testCases := []struct {
		name           string
		keys           []int
		expectedHeight int
		expectedOrder  []int
	}{
		{
			name:           "Single Key",
			keys:           []int{42},
			expectedHeight: 1,
			expectedOrder:  []int{42},
		},
		{
			name:           "Mixed Insertion",
			keys:           []int{5, 3, 8, 1, 4, 7, 9},
			expectedHeight: 3,
			expectedOrder:  []int{1, 3, 4, 5, 7, 8, 9},
		},
		{
			name:           "Ascending Keys",
			keys:           []int{1, 2, 3, 4, 5, 6, 7},
			expectedHeight: 4,
			expectedOrder:  []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			name:           "Zig-Zag",
			keys:           []int{10, 30, 20},
			expectedHeight: 2,
			expectedOrder:  []int{10, 20, 30},
		},
		{
			name:           "Duplicates",
			keys:           []int{2, 2, 2, 1, 1, 3, 2},
			expectedHeight: 3,
			expectedOrder:  []int{1, 1, 2, 2, 2, 2, 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.keys {
				tree.InsertKey(key)
			}
			require.NoError(t, tree.Verify())
			assert.False(t, tree.Root().IsRed())
			assert.Equal(t, tc.expectedHeight, tree.Height())
			assert.Equal(t, tc.expectedOrder, tree.Keys())
			assert.Equal(t, len(tc.keys), tree.Len())
		})
	}
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	assert.True(t, tree.IsSentinel(tree.Root()))
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, tree.CalculateHeight(nil))
	assert.Equal(t, 0, tree.BlackHeight())
	assert.Empty(t, tree.Keys())
	assert.NoError(t, tree.Verify())
}

func TestInsertResetsNode(t *testing.T) {
	tree := New[int]()
	tree.InsertKey(10)

	stale := &Node[int]{Key: 5, color: black, left: tree.Root(), right: tree.Root()}
	tree.Insert(stale)

	assert.True(t, stale.IsRed())
	assert.True(t, tree.IsSentinel(stale.Left()))
	assert.True(t, tree.IsSentinel(stale.Right()))
	assert.Same(t, tree.Root(), stale.Parent())
	require.NoError(t, tree.Verify())
}

func TestSentinelIsNeverWritten(t *testing.T) {
	tree := New[int]()
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		tree.InsertKey(rng.Intn(500))
	}
	sentinel := tree.nilNode
	assert.False(t, sentinel.IsRed())
	assert.Nil(t, sentinel.left)
	assert.Nil(t, sentinel.right)
	assert.Nil(t, sentinel.parent)
	assert.True(t, tree.IsSentinel(tree.Root().Parent()))
}

func TestHeightQueryIsIdempotent(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{9, 4, 17, 3, 6, 22, 5, 7, 20} {
		tree.InsertKey(key)
	}
	first := tree.Height()
	assert.Equal(t, first, tree.Height())
	assert.Equal(t, first, tree.CalculateHeight(tree.Root()))
}

func TestRotateAndRotateBack(t *testing.T) {
	tree := New[string]()
	for _, key := range []string{"m", "f", "t", "c", "h", "p", "w", "a"} {
		tree.InsertKey(key)
	}
	want := tree.Keys()
	oldRoot := tree.Root()

	tree.LeftRotate(oldRoot)
	assert.NotSame(t, oldRoot, tree.Root())
	assert.Same(t, tree.Root(), oldRoot.Parent())
	assert.Equal(t, want, tree.Keys())

	tree.RightRotate(tree.Root())
	assert.Same(t, oldRoot, tree.Root())
	assert.True(t, tree.IsSentinel(oldRoot.Parent()))
	assert.Equal(t, want, tree.Keys())
	require.NoError(t, tree.Verify())
}

func TestRotationWithoutPartnerIsNoop(t *testing.T) {
	tree := New[int]()
	tree.InsertKey(1)
	root := tree.Root()

	tree.LeftRotate(root)
	tree.RightRotate(root)

	assert.Same(t, root, tree.Root())
	assert.Nil(t, tree.nilNode.left)
	require.NoError(t, tree.Verify())
}

func TestRandomInsertionsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{10, 100, 1000, 20000} {
		tree := New[int]()
		for _, key := range rng.Perm(n) {
			tree.InsertKey(key)
		}
		require.NoError(t, tree.Verify(), "n=%d", n)

		bound := 2 * math.Log2(float64(n+1))
		assert.LessOrEqual(t, float64(tree.Height()), bound, "n=%d", n)

		keys := tree.Keys()
		assert.True(t, sort.IntsAreSorted(keys), "n=%d", n)
		assert.Len(t, keys, n)
	}
}

func TestRandomInsertionsWithDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := New[int]()
	for i := 0; i < 5000; i++ {
		tree.InsertKey(rng.Intn(50))
	}
	require.NoError(t, tree.Verify())
	assert.True(t, sort.IntsAreSorted(tree.Keys()))
}

func FuzzRB_Balance(f *testing.F) {
	f.Add("")
	f.Add("abczyx")
	f.Add("hello world")

	f.Fuzz(func(t *testing.T, keys string) {
		tree := New[rune]()
		for _, key := range keys {
			tree.InsertKey(key)
		}
		assert.NoError(t, tree.Verify())
	})
}
