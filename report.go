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
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// Keys are fed to the progress bar in chunks of this size.
const progressChunk = 10000

// BatchReport is the outcome of inserting one batch into a fresh tree.
type BatchReport struct {
	Path     string
	Engine   string
	Keys     int
	Distinct int
	Height   int
	Bound    int
	Invalid  string // first invariant violation, empty when the tree is valid
	Checked  bool
	Elapsed  time.Duration
}

// HasDuplicates reports whether the batch contains repeated keys.
// The height bound only holds for distinct keys.
func (r *BatchReport) HasDuplicates() bool {
	return r.Distinct < r.Keys
}

func (r *BatchReport) WithinBound() bool {
	return r.HasDuplicates() || r.Height <= r.Bound
}

// HeightLine is the classic one-line summary for a batch.
func (r *BatchReport) HeightLine() string {
	return fmt.Sprintf("Height of tree after reading file %s: %d", filepath.Base(r.Path), r.Height)
}

// RunOptions controls how batches are built.
type RunOptions struct {
	CheckInvariants bool
	ShowProgress    bool
	PrintKeys       bool
}

// countDistinct returns the exact number of distinct keys. A bloom filter
// flags every key that may have been seen before; only those suspects are
// counted exactly in a second pass, so memory stays proportional to the
// repeats plus false positives.
func countDistinct(keys []int) int {
	if len(keys) == 0 {
		return 0
	}
	filter := bloom.NewWithEstimates(uint(len(keys)), 0.001)
	buf := make([]byte, 8)
	suspects := make(map[int]int)
	for _, key := range keys {
		binary.LittleEndian.PutUint64(buf, uint64(key))
		if filter.TestAndAdd(buf) {
			suspects[key] = 0
		}
	}
	if len(suspects) == 0 {
		return len(keys)
	}

	repeats := 0
	for _, key := range keys {
		seen, ok := suspects[key]
		if !ok {
			continue
		}
		if seen > 0 {
			repeats++
		}
		suspects[key] = seen + 1
	}
	return len(keys) - repeats
}

// BuildTree inserts keys in order into a fresh tree of the given engine.
func BuildTree(engine string, keys []int, bar *progressbar.ProgressBar) (HeightTree, error) {
	tree, err := NewHeightTree(engine)
	if err != nil {
		return nil, err
	}
	for i, key := range keys {
		tree.Insert(key)
		if bar != nil && (i+1)%progressChunk == 0 {
			bar.Add(progressChunk)
		}
	}
	if bar != nil {
		bar.Add(len(keys) % progressChunk)
	}
	return tree, nil
}

// buildReport inserts keys into a fresh tree and measures it.
func buildReport(path, engine string, keys []int, options RunOptions) (*BatchReport, HeightTree, error) {
	var bar *progressbar.ProgressBar
	if options.ShowProgress && len(keys) > progressChunk {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetDescription(fmt.Sprintf("🌳 %s ← %s", engine, filepath.Base(path))),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}

	start := time.Now()
	tree, err := BuildTree(engine, keys, bar)
	if err != nil {
		return nil, nil, err
	}
	elapsed := time.Since(start)
	if bar != nil {
		bar.Finish()
	}

	report := &BatchReport{
		Path:     path,
		Engine:   normalizeEngine(engine),
		Keys:     len(keys),
		Distinct: countDistinct(keys),
		Height:   tree.Height(),
		Bound:    heightBound(normalizeEngine(engine), len(keys)),
		Elapsed:  elapsed,
	}
	if options.CheckInvariants {
		report.Checked = true
		if err := tree.Verify(); err != nil {
			report.Invalid = err.Error()
		}
	}
	return report, tree, nil
}

// RunBatch reads one batch file and reports the height for each engine.
// Reports are served from rc when the file has not changed.
func RunBatch(rc *cache.Cache, path string, engines []string, options RunOptions) ([]*BatchReport, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot stat batch %s: %v", path, err)
	}

	var keys []int
	reports := make([]*BatchReport, 0, len(engines))
	for _, engine := range engines {
		if report := GetReport(rc, path, engine, info, options.CheckInvariants); report != nil && !options.PrintKeys {
			reports = append(reports, report)
			continue
		}

		if keys == nil {
			if keys, err = ReadBatch(path); err != nil {
				return reports, err
			}
		}

		report, tree, err := buildReport(path, engine, keys, options)
		if err != nil {
			return reports, err
		}
		CacheReport(rc, info, report)
		reports = append(reports, report)

		if options.PrintKeys {
			fmt.Println(formatKeys(tree.Keys()))
		}
	}
	return reports, nil
}

func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, key := range keys {
		parts[i] = fmt.Sprint(key)
	}
	return strings.Join(parts, " ")
}

// printReport writes the height line plus colored diagnostics.
func printReport(report *BatchReport, verbose bool) {
	fmt.Printf("[%s] %s\n", report.Engine, report.HeightLine())
	if !verbose {
		return
	}

	fmt.Printf("    %skeys: %d (%d distinct), bound: %d, built in %s%s\n",
		Info, report.Keys, report.Distinct, report.Bound, report.Elapsed.Round(time.Millisecond), Reset)
	if report.HasDuplicates() {
		fmt.Printf("    %s⚠️  batch contains duplicate keys; height bound not applicable%s\n", Warning, Reset)
	} else if !report.WithinBound() {
		fmt.Printf("    %s❌ height %d exceeds bound %d%s\n", Error, report.Height, report.Bound, Reset)
	}
	if report.Checked {
		if report.Invalid != "" {
			fmt.Printf("    %s❌ invariant violated: %s%s\n", Error, report.Invalid, Reset)
		} else {
			fmt.Printf("    %s✅ invariants hold%s\n", Green, Reset)
		}
	}
}
