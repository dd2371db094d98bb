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

// Package avl implements a height-balanced binary search tree.
//
// Insert follows a functional style: it returns the (possibly new) root of
// the subtree it was given, and the caller must rebind its reference to that
// value. Duplicate keys are kept and always routed to the right subtree.
package avl

import "golang.org/x/exp/constraints"

type Node[K constraints.Ordered] struct {
	Key    K
	Height int
	Left   *Node[K]
	Right  *Node[K]
}

// Height returns the stored height of node, or 0 for an absent node.
func Height[K constraints.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return node.Height
}

// Balance returns height(left) - height(right), or 0 for an absent node.
func Balance[K constraints.Ordered](node *Node[K]) int {
	if node == nil {
		return 0
	}
	return Height(node.Left) - Height(node.Right)
}

func updateHeight[K constraints.Ordered](node *Node[K]) {
	node.Height = max(Height(node.Left), Height(node.Right)) + 1
}

// LeftRotate rotates z to the left and returns the new subtree root.
// If z has no right child the rotation is skipped and z is returned.
func LeftRotate[K constraints.Ordered](z *Node[K]) *Node[K] {
	if z == nil || z.Right == nil {
		return z
	}

	pivot := z.Right
	z.Right = pivot.Left
	pivot.Left = z

	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// RightRotate rotates z to the right and returns the new subtree root.
// If z has no left child the rotation is skipped and z is returned.
func RightRotate[K constraints.Ordered](z *Node[K]) *Node[K] {
	if z == nil || z.Left == nil {
		return z
	}

	pivot := z.Left
	z.Left = pivot.Right
	pivot.Right = z

	updateHeight(z)
	updateHeight(pivot)

	return pivot
}

// Insert places key under root and returns the new root of the subtree.
func Insert[K constraints.Ordered](root *Node[K], key K) *Node[K] {
	if root == nil {
		return &Node[K]{Key: key, Height: 1}
	}

	if key < root.Key {
		root.Left = Insert(root.Left, key)
	} else {
		root.Right = Insert(root.Right, key)
	}

	updateHeight(root)

	balance := Balance(root)
	if balance > 1 {
		if key < root.Left.Key {
			return RightRotate(root)
		}
		// Left-Right case
		root.Left = LeftRotate(root.Left)
		return RightRotate(root)
	} else if balance < -1 {
		// Equal keys descend right, so they belong to the Right-Right case.
		if !(key < root.Right.Key) {
			return LeftRotate(root)
		}
		// Right-Left case
		root.Right = RightRotate(root.Right)
		return LeftRotate(root)
	}

	return root
}

// InOrder calls fn for every key under node in ascending order.
func InOrder[K constraints.Ordered](node *Node[K], fn func(key K)) {
	if node == nil {
		return
	}
	InOrder(node.Left, fn)
	fn(node.Key)
	InOrder(node.Right, fn)
}

// Tree owns a root reference and rebinds it after every insertion.
type Tree[K constraints.Ordered] struct {
	root *Node[K]
	size int
}

func New[K constraints.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

func (tree *Tree[K]) Insert(key K) {
	tree.root = Insert(tree.root, key)
	tree.size++
}

func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

func (tree *Tree[K]) Height() int {
	return Height(tree.root)
}

func (tree *Tree[K]) Len() int {
	return tree.size
}

// Keys returns all keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.size)
	InOrder(tree.root, func(key K) {
		keys = append(keys, key)
	})
	return keys
}
