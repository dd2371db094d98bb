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
	"errors"
	"fmt"
)

// Verify checks the coloring rules, the black-height of every leaf path,
// the key ordering and the parent links. It returns the first violation.
func (t *Tree[K]) Verify() error {
	if t.nilNode.color != black {
		return errors.New("sentinel is not black")
	}
	if t.root == t.nilNode {
		return nil
	}
	if t.root.color != black {
		return fmt.Errorf("root %v is red", t.root.Key)
	}
	if t.root.parent != t.nilNode {
		return fmt.Errorf("root %v has a parent", t.root.Key)
	}
	_, err := t.verifyNode(t.root, nil, nil)
	return err
}

// BlackHeight returns the number of black nodes below the root on any path
// to a leaf. It assumes the tree is valid.
func (t *Tree[K]) BlackHeight() int {
	n := 0
	for node := t.root; node != t.nilNode; node = node.left {
		if node.color == black {
			n++
		}
	}
	if t.root != t.nilNode {
		n--
	}
	return n
}

func (t *Tree[K]) verifyNode(node *Node[K], low, high *K) (int, error) {
	if node == t.nilNode {
		return 0, nil
	}
	if low != nil && node.Key < *low {
		return 0, fmt.Errorf("key %v is smaller than ancestor %v on its right path", node.Key, *low)
	}
	if high != nil && *high < node.Key {
		return 0, fmt.Errorf("key %v is larger than ancestor %v on its left path", node.Key, *high)
	}
	for _, child := range []*Node[K]{node.left, node.right} {
		if child == t.nilNode {
			continue
		}
		if child.parent != node {
			return 0, fmt.Errorf("node %v does not point back to parent %v", child.Key, node.Key)
		}
		if node.color == red && child.color == red {
			return 0, fmt.Errorf("red node %v has red child %v", node.Key, child.Key)
		}
	}

	lbh, err := t.verifyNode(node.left, low, &node.Key)
	if err != nil {
		return 0, err
	}
	rbh, err := t.verifyNode(node.right, &node.Key, high)
	if err != nil {
		return 0, err
	}
	if lbh != rbh {
		return 0, fmt.Errorf("node %v has black-height %d on the left and %d on the right", node.Key, lbh, rbh)
	}
	if node.color == black {
		return lbh + 1, nil
	}
	return lbh, nil
}
