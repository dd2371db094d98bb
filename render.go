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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/treeheight/avl"
	"github.com/cybrota/treeheight/rbtree"
)

// Trees larger than this are summarized instead of drawn.
const maxRenderKeys = 256

const emptyTreeText = "(empty tree)"

var (
	redNodeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	blackNodeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
)

// renderSideways draws a tree rotated 90 degrees: the right subtree above
// its parent, the left subtree below.
func renderSideways[N comparable](root, absent N, left, right func(N) N, label func(N) string) string {
	if root == absent {
		return emptyTreeText
	}

	var b strings.Builder
	var walk func(n N, prefix string, isRoot, isLeft bool)
	walk = func(n N, prefix string, isRoot, isLeft bool) {
		if r := right(n); r != absent {
			next := prefix
			if !isRoot {
				if isLeft {
					next += "│   "
				} else {
					next += "    "
				}
			}
			walk(r, next, false, false)
		}

		b.WriteString(prefix)
		if !isRoot {
			if isLeft {
				b.WriteString("└── ")
			} else {
				b.WriteString("┌── ")
			}
		}
		b.WriteString(label(n))
		b.WriteByte('\n')

		if l := left(n); l != absent {
			next := prefix
			if !isRoot {
				if isLeft {
					next += "    "
				} else {
					next += "│   "
				}
			}
			walk(l, next, false, true)
		}
	}
	walk(root, "", true, false)

	return b.String()
}

func tooLargeToRender(n int) string {
	return fmt.Sprintf("(%d keys, too many to draw; limit is %d)", n, maxRenderKeys)
}

func renderAVL(root *avl.Node[int]) string {
	if n := countAVL(root); n > maxRenderKeys {
		return tooLargeToRender(n)
	}
	return renderSideways(root, nil,
		func(n *avl.Node[int]) *avl.Node[int] { return n.Left },
		func(n *avl.Node[int]) *avl.Node[int] { return n.Right },
		func(n *avl.Node[int]) string { return strconv.Itoa(n.Key) },
	)
}

func countAVL(root *avl.Node[int]) int {
	n := 0
	avl.InOrder(root, func(int) { n++ })
	return n
}

func renderRedBlack(tree *rbtree.Tree[int], colorize bool) string {
	if tree.Len() > maxRenderKeys {
		return tooLargeToRender(tree.Len())
	}
	label := func(n *rbtree.Node[int]) string {
		if n.IsRed() {
			text := strconv.Itoa(n.Key) + " R"
			if colorize {
				return redNodeStyle.Render(text)
			}
			return text
		}
		text := strconv.Itoa(n.Key) + " B"
		if colorize {
			return blackNodeStyle.Render(text)
		}
		return text
	}
	return renderSideways(tree.Root(), tree.Sentinel(),
		func(n *rbtree.Node[int]) *rbtree.Node[int] { return n.Left() },
		func(n *rbtree.Node[int]) *rbtree.Node[int] { return n.Right() },
		label,
	)
}
