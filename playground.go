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
	"math/rand"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

const playgroundRandomRange = 1000

// PlayStep records one accepted playground input.
type PlayStep struct {
	Input    string
	Inserted int
	Heights  map[string]int
}

// Playground keeps one live tree per engine and applies typed commands.
type Playground struct {
	engines     []string
	trees       map[string]HeightTree
	history     []PlayStep
	reports     []*BatchReport
	rng         *rand.Rand
	reportCache *cache.Cache
}

func NewPlayground(engines []string, rc *cache.Cache, seed int64) (*Playground, error) {
	p := &Playground{
		engines:     engines,
		rng:         rand.New(rand.NewSource(seed)),
		reportCache: rc,
	}
	if err := p.reset(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Playground) reset() error {
	p.trees = make(map[string]HeightTree, len(p.engines))
	for _, engine := range p.engines {
		tree, err := NewHeightTree(engine)
		if err != nil {
			return err
		}
		p.trees[engine] = tree
	}
	return nil
}

func (p *Playground) Engines() []string {
	return p.engines
}

func (p *Playground) Tree(engine string) HeightTree {
	return p.trees[engine]
}

func (p *Playground) History() []PlayStep {
	return p.history
}

func (p *Playground) Reports() []*BatchReport {
	return p.reports
}

// Execute runs one line of input and returns a status message.
//
//	5 3 8 1        insert keys into every tree
//	random 20      insert 20 random keys
//	load FILE      replace the trees with the keys of a batch file
//	bench FILE     build full-size trees for FILE and report their heights
//	clear          start over with empty trees
func (p *Playground) Execute(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse input: %v", err)
	}
	if len(args) == 0 {
		return "", errors.New("nothing to insert")
	}

	switch strings.ToLower(args[0]) {
	case "clear", "reset":
		p.history = nil
		if err := p.reset(); err != nil {
			return "", err
		}
		return "Trees cleared", nil

	case "random":
		n := 10
		if len(args) > 1 {
			if n, err = strconv.Atoi(args[1]); err != nil || n <= 0 {
				return "", fmt.Errorf("random needs a positive count, got %q", args[1])
			}
		}
		keys := make([]int, n)
		for i := range keys {
			keys[i] = p.rng.Intn(playgroundRandomRange)
		}
		return p.insert(line, keys), nil

	case "load":
		if len(args) != 2 {
			return "", errors.New("usage: load FILE")
		}
		keys, err := ReadBatch(args[1])
		if err != nil {
			return "", err
		}
		p.history = nil
		if err := p.reset(); err != nil {
			return "", err
		}
		return p.insert(line, keys), nil

	case "bench":
		if len(args) != 2 {
			return "", errors.New("usage: bench FILE")
		}
		reports, err := RunBatch(p.reportCache, args[1], p.engines, RunOptions{CheckInvariants: true})
		if err != nil {
			return "", err
		}
		p.reports = append(p.reports, reports...)
		parts := make([]string, len(reports))
		for i, report := range reports {
			parts[i] = fmt.Sprintf("%s=%d", report.Engine, report.Height)
		}
		return fmt.Sprintf("Benchmarked %s: %s", args[1], strings.Join(parts, ", ")), nil
	}

	keys := make([]int, len(args))
	for i, arg := range args {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("%q is neither a key nor a command", arg)
		}
		keys[i] = key
	}
	return p.insert(line, keys), nil
}

func (p *Playground) insert(input string, keys []int) string {
	step := PlayStep{Input: input, Inserted: len(keys), Heights: make(map[string]int, len(p.engines))}
	for _, engine := range p.engines {
		tree := p.trees[engine]
		for _, key := range keys {
			tree.Insert(key)
		}
		step.Heights[engine] = tree.Height()
	}
	p.history = append(p.history, step)
	return fmt.Sprintf("Inserted %d keys", len(keys))
}

// StatsMarkdown summarizes the live trees and any benchmark reports.
func (p *Playground) StatsMarkdown() string {
	var b strings.Builder
	b.WriteString("# Trees\n\n")
	b.WriteString("| Engine | Keys | Height | Bound | Invariants |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, engine := range p.engines {
		tree := p.trees[engine]
		status := "ok"
		if err := tree.Verify(); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %s |\n",
			engineTitle(engine), tree.Len(), tree.Height(), heightBound(engine, tree.Len()), status)
	}

	if len(p.reports) > 0 {
		b.WriteString("\n# Benchmarks\n\n")
		b.WriteString("| Batch | Engine | Keys | Height | Bound |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, report := range p.reports {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %d |\n",
				shortBatchLabel(report.Path), engineTitle(report.Engine), report.Keys, report.Height, report.Bound)
		}
	}
	return b.String()
}
