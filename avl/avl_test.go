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

package avl

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AVLTestCase struct {
	Name           string
	KeysToInsert   []int
	ExpectedHeight int
	ExpectedOrder  []int // In-order traversal expectation after operations
}

func TestAVLTreeOperations(t *testing.T) {
	testCases := []AVLTestCase{
		{
			Name:           "Single Key",
			KeysToInsert:   []int{42},
			ExpectedHeight: 1,
			ExpectedOrder:  []int{42},
		},
		{
			Name:           "Mixed Insertion",
			KeysToInsert:   []int{5, 3, 8, 1, 4, 7, 9},
			ExpectedHeight: 3,
			ExpectedOrder:  []int{1, 3, 4, 5, 7, 8, 9},
		},
		{
			Name:           "Ascending Keys (Right-Right)",
			KeysToInsert:   []int{1, 2, 3, 4, 5, 6, 7},
			ExpectedHeight: 3,
			ExpectedOrder:  []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			Name:           "Descending Keys (Left-Left)",
			KeysToInsert:   []int{7, 6, 5, 4, 3, 2, 1},
			ExpectedHeight: 3,
			ExpectedOrder:  []int{1, 2, 3, 4, 5, 6, 7},
		},
		{
			Name:           "Left-Right",
			KeysToInsert:   []int{30, 10, 20},
			ExpectedHeight: 2,
			ExpectedOrder:  []int{10, 20, 30},
		},
		{
			Name:           "Right-Left",
			KeysToInsert:   []int{10, 30, 20},
			ExpectedHeight: 2,
			ExpectedOrder:  []int{10, 20, 30},
		},
		{
			Name:           "Duplicates",
			KeysToInsert:   []int{2, 2, 2, 1, 1, 3, 2},
			ExpectedHeight: 3,
			ExpectedOrder:  []int{1, 1, 2, 2, 2, 2, 3},
		},
		{
			Name:           "Duplicate of right child",
			KeysToInsert:   []int{5, 3, 7, 6, 8, 7},
			ExpectedHeight: 3,
			ExpectedOrder:  []int{3, 5, 6, 7, 7, 8},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tree := New[int]()
			for _, key := range tc.KeysToInsert {
				tree.Insert(key)
			}
			require.NoError(t, Verify(tree.Root()))
			assert.Equal(t, tc.ExpectedHeight, tree.Height())
			assert.Equal(t, tc.ExpectedOrder, tree.Keys())
			assert.Equal(t, len(tc.KeysToInsert), tree.Len())
		})
	}
}

func TestInsertReturnsNewRoot(t *testing.T) {
	var root *Node[int]
	for _, key := range []int{1, 2, 3} {
		root = Insert(root, key)
	}
	require.NotNil(t, root)
	assert.Equal(t, 2, root.Key)
	assert.Equal(t, 1, root.Left.Key)
	assert.Equal(t, 3, root.Right.Key)
}

func TestEmptyTree(t *testing.T) {
	tree := New[int]()
	assert.Equal(t, 0, tree.Height())
	assert.Equal(t, 0, Height[int](nil))
	assert.Equal(t, 0, Balance[int](nil))
	assert.Empty(t, tree.Keys())
	assert.NoError(t, Verify[int](nil))
}

func TestHeightQueryIsIdempotent(t *testing.T) {
	tree := New[int]()
	for _, key := range []int{9, 4, 17, 3, 6, 22, 5, 7, 20} {
		tree.Insert(key)
	}
	first := tree.Height()
	assert.Equal(t, first, tree.Height())
}

func TestRotationGuard(t *testing.T) {
	leaf := &Node[int]{Key: 1, Height: 1}
	assert.Same(t, leaf, LeftRotate(leaf))
	assert.Same(t, leaf, RightRotate(leaf))
	assert.Equal(t, 1, leaf.Height)
	assert.Nil(t, LeftRotate[int](nil))
}

func TestRotateAndRotateBack(t *testing.T) {
	var root *Node[string]
	for _, key := range []string{"m", "f", "t", "c", "h", "p", "w", "a"} {
		root = Insert(root, key)
	}
	want := collect(root)

	rotated := LeftRotate(root)
	assert.Equal(t, want, collect(rotated))
	restored := RightRotate(rotated)
	assert.Equal(t, want, collect(restored))

	rotated = RightRotate(restored)
	assert.Equal(t, want, collect(rotated))
	restored = LeftRotate(rotated)
	assert.Equal(t, want, collect(restored))
}

func TestRandomInsertionsStayBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{10, 100, 1000, 20000} {
		perm := rng.Perm(n)
		tree := New[int]()
		for _, key := range perm {
			tree.Insert(key)
		}
		require.NoError(t, Verify(tree.Root()), "n=%d", n)

		bound := int(math.Ceil(1.44*math.Log2(float64(n+2)) - 1))
		assert.LessOrEqual(t, tree.Height(), bound, "n=%d", n)

		keys := tree.Keys()
		assert.True(t, sort.IntsAreSorted(keys), "n=%d", n)
		assert.Len(t, keys, n)
	}
}

func TestRandomInsertionsWithDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tree := New[int]()
	for i := 0; i < 5000; i++ {
		tree.Insert(rng.Intn(50))
	}
	require.NoError(t, Verify(tree.Root()))
	assert.True(t, sort.IntsAreSorted(tree.Keys()))
}

func FuzzInsertBalance(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{5, 3, 8, 1, 4, 7, 9})
	f.Add([]byte("hello world"))

	f.Fuzz(func(t *testing.T, keys []byte) {
		var root *Node[byte]
		for _, key := range keys {
			root = Insert(root, key)
		}
		if err := Verify(root); err != nil {
			t.Fatal(err)
		}
	})
}

func collect[K int | string](node *Node[K]) []K {
	var keys []K
	InOrder(node, func(key K) {
		keys = append(keys, key)
	})
	return keys
}
