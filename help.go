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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Tree Height %s**

Measure how tall self-balancing search trees grow. Every batch of integer keys
is inserted, in file order, into a fresh AVL tree and a fresh Red-Black tree,
and the height of each tree is reported.

Built with Go %s

# 1. Commands
* **gen**: write random batches (10 files of 1,000,000 distinct keys by default)
* **run**: insert every batch and print the height after each file
* **chart**: the same, drawn as a bar chart per engine
* **play**: insert keys by hand and watch both trees rebalance
* **settings**: show or create ~/.treeheight.yaml

# 2. Engines
* **avl**: height-balanced, balance factor kept within -1..1
* **rbtree**: red-black coloring, height at most 2·log2(n+1)

# 3. Batch format
* Whitespace separated integers, usually one line per file
* Duplicate keys are accepted and placed to the right of their equals

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
