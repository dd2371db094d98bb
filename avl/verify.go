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
	"fmt"

	"golang.org/x/exp/constraints"
)

// Verify walks the subtree under root and reports the first node whose
// stored height is stale, whose balance factor is outside [-1, 1], or whose
// key breaks the in-order ordering. Rotations may lift an equal key above its
// twin, so equal keys are accepted on either side.
func Verify[K constraints.Ordered](root *Node[K]) error {
	_, err := verifyNode(root, nil, nil)
	return err
}

func verifyNode[K constraints.Ordered](node *Node[K], low, high *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if low != nil && node.Key < *low {
		return 0, fmt.Errorf("key %v is smaller than ancestor %v on its right path", node.Key, *low)
	}
	if high != nil && *high < node.Key {
		return 0, fmt.Errorf("key %v is larger than ancestor %v on its left path", node.Key, *high)
	}

	lh, err := verifyNode(node.Left, low, &node.Key)
	if err != nil {
		return 0, err
	}
	rh, err := verifyNode(node.Right, &node.Key, high)
	if err != nil {
		return 0, err
	}

	if want := max(lh, rh) + 1; node.Height != want {
		return 0, fmt.Errorf("node %v stores height %d, computed %d", node.Key, node.Height, want)
	}
	if bf := lh - rh; bf > 1 || bf < -1 {
		return 0, fmt.Errorf("node %v has balance factor %d", node.Key, bf)
	}
	return node.Height, nil
}
