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

// Package rbtree implements a Red-Black Tree.
//
// Every absent child, and the parent of the root, points at a single black
// sentinel owned by the tree. Child pointers are the ownership edges; parent
// pointers are back references used for rotations and the insert fixup.
package rbtree

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = true
	black color = false
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

type Node[K constraints.Ordered] struct {
	Key                 K
	color               color
	left, right, parent *Node[K]
}

// NewNode returns a detached node. Insert sets its links and color.
func NewNode[K constraints.Ordered](key K) *Node[K] {
	return &Node[K]{Key: key, color: red}
}

func (n *Node[K]) Left() *Node[K]   { return n.left }
func (n *Node[K]) Right() *Node[K]  { return n.right }
func (n *Node[K]) Parent() *Node[K] { return n.parent }
func (n *Node[K]) IsRed() bool      { return n.color == red }

// Tree represents a Red-Black Tree instance.
// Use New() to create a new tree instance.
type Tree[K constraints.Ordered] struct {
	root    *Node[K]
	nilNode *Node[K] // Sentinel, black, never written after New
	size    int
}

// New creates and returns a new empty Red-Black Tree.
func New[K constraints.Ordered]() *Tree[K] {
	nilNode := &Node[K]{color: black}
	return &Tree[K]{
		root:    nilNode,
		nilNode: nilNode,
	}
}

func (t *Tree[K]) Root() *Node[K] {
	return t.root
}

// IsSentinel reports whether n is this tree's sentinel leaf.
func (t *Tree[K]) IsSentinel(n *Node[K]) bool {
	return n == t.nilNode
}

// Sentinel returns the shared leaf that stands for every absent node.
func (t *Tree[K]) Sentinel() *Node[K] {
	return t.nilNode
}

func (t *Tree[K]) Len() int {
	return t.size
}

// LeftRotate makes x's right child the root of x's subtree.
// It does nothing if x has no right child.
func (t *Tree[K]) LeftRotate(x *Node[K]) {
	y := x.right
	if y == t.nilNode {
		return
	}
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// RightRotate makes x's left child the root of x's subtree.
// It does nothing if x has no left child.
func (t *Tree[K]) RightRotate(x *Node[K]) {
	y := x.left
	if y == t.nilNode {
		return
	}
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// InsertKey wraps key in a new node and inserts it.
func (t *Tree[K]) InsertKey(key K) {
	t.Insert(NewNode(key))
}

// Insert links node into the tree and restores the coloring.
// The node must not already belong to a tree.
func (t *Tree[K]) Insert(node *Node[K]) {
	node.parent = t.nilNode
	node.left = t.nilNode
	node.right = t.nilNode
	node.color = red

	y := t.nilNode
	x := t.root
	for x != t.nilNode {
		y = x
		if node.Key < x.Key {
			x = x.left
		} else {
			x = x.right
		}
	}

	node.parent = y
	if y == t.nilNode {
		t.root = node
	} else if node.Key < y.Key {
		y.left = node
	} else {
		y.right = node
	}
	t.size++

	if node.parent == t.nilNode {
		node.color = black
		return
	}

	// Parent is the (black) root.
	if node.parent.parent == t.nilNode {
		return
	}

	t.fixInsert(node)
}

func (t *Tree[K]) fixInsert(node *Node[K]) {
	for node.parent.color == red {
		grandparent := node.parent.parent
		if node.parent == grandparent.right {
			uncle := grandparent.left
			if uncle.color == red {
				uncle.color = black
				node.parent.color = black
				grandparent.color = red
				node = grandparent
			} else {
				if node == node.parent.left {
					node = node.parent
					t.RightRotate(node)
				}
				node.parent.color = black
				node.parent.parent.color = red
				t.LeftRotate(node.parent.parent)
			}
		} else {
			uncle := grandparent.right
			if uncle.color == red {
				uncle.color = black
				node.parent.color = black
				grandparent.color = red
				node = grandparent
			} else {
				if node == node.parent.right {
					node = node.parent
					t.LeftRotate(node)
				}
				node.parent.color = black
				node.parent.parent.color = red
				t.RightRotate(node.parent.parent)
			}
		}
		if node == t.root {
			break
		}
	}
	t.root.color = black
}

// CalculateHeight returns the number of nodes on the longest path from node
// down to a leaf, or 0 for nil and the sentinel.
func (t *Tree[K]) CalculateHeight(node *Node[K]) int {
	if node == nil || node == t.nilNode {
		return 0
	}
	return max(t.CalculateHeight(node.left), t.CalculateHeight(node.right)) + 1
}

func (t *Tree[K]) Height() int {
	return t.CalculateHeight(t.root)
}

// InOrder calls fn for every key under node in ascending order.
func (t *Tree[K]) InOrder(node *Node[K], fn func(key K)) {
	if node == nil || node == t.nilNode {
		return
	}
	t.InOrder(node.left, fn)
	fn(node.Key)
	t.InOrder(node.right, fn)
}

// Keys returns all keys in ascending order.
func (t *Tree[K]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.InOrder(t.root, func(key K) {
		keys = append(keys, key)
	})
	return keys
}
