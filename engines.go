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
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cybrota/treeheight/avl"
	"github.com/cybrota/treeheight/rbtree"
)

const (
	EngineAVL      = "avl"
	EngineRedBlack = "rbtree"
)

var errUnknownEngine = errors.New("unknown engine")

// HeightTree is the view the harness needs of a balanced tree engine.
type HeightTree interface {
	Insert(key int)
	Height() int
	Len() int
	Keys() []int
	Verify() error
	Render(colorize bool) string
}

// NewHeightTree returns an empty tree for the named engine.
func NewHeightTree(engine string) (HeightTree, error) {
	switch normalizeEngine(engine) {
	case EngineAVL:
		return &avlEngine{Tree: avl.New[int]()}, nil
	case EngineRedBlack:
		return &rbEngine{Tree: rbtree.New[int]()}, nil
	}
	return nil, fmt.Errorf("%w %q (want %q or %q)", errUnknownEngine, engine, EngineAVL, EngineRedBlack)
}

func normalizeEngine(engine string) string {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "avl":
		return EngineAVL
	case "rb", "rbtree", "red-black", "redblack":
		return EngineRedBlack
	}
	return engine
}

// parseEngines splits a comma separated engine list and validates every name.
func parseEngines(list []string) ([]string, error) {
	var engines []string
	seen := make(map[string]bool)
	for _, item := range list {
		for _, name := range strings.Split(item, ",") {
			if strings.TrimSpace(name) == "" {
				continue
			}
			engine := normalizeEngine(name)
			if engine != EngineAVL && engine != EngineRedBlack {
				return nil, fmt.Errorf("%w %q", errUnknownEngine, name)
			}
			if !seen[engine] {
				seen[engine] = true
				engines = append(engines, engine)
			}
		}
	}
	if len(engines) == 0 {
		return nil, errors.New("no engine selected")
	}
	return engines, nil
}

type avlEngine struct {
	*avl.Tree[int]
}

func (e *avlEngine) Verify() error {
	return avl.Verify(e.Root())
}

func (e *avlEngine) Render(colorize bool) string {
	return renderAVL(e.Root())
}

type rbEngine struct {
	*rbtree.Tree[int]
}

func (e *rbEngine) Insert(key int) {
	e.InsertKey(key)
}

func (e *rbEngine) Render(colorize bool) string {
	return renderRedBlack(e.Tree, colorize)
}

// heightBound returns the worst-case height for n distinct keys.
func heightBound(engine string, n int) int {
	if n <= 0 {
		return 0
	}
	if engine == EngineRedBlack {
		return int(math.Floor(2 * math.Log2(float64(n+1))))
	}
	return int(math.Ceil(1.44*math.Log2(float64(n+2)) - 1))
}
