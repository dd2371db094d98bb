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
	"bufio"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/schollz/progressbar/v3"
)

// sampleKeys draws count distinct integers from [0, keyRange) in random order.
func sampleKeys(rng *rand.Rand, count, keyRange int) ([]int, error) {
	if count < 0 || keyRange < 0 {
		return nil, fmt.Errorf("count and range must be non-negative, got %d and %d", count, keyRange)
	}
	if count > keyRange {
		return nil, fmt.Errorf("cannot sample %d distinct keys from a range of %d", count, keyRange)
	}

	// Partial Fisher-Yates over a sparse view of [0, keyRange)
	swapped := make(map[int]int, count)
	keys := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(keyRange-i)
		vi, ok := swapped[i]
		if !ok {
			vi = i
		}
		vj, ok := swapped[j]
		if !ok {
			vj = j
		}
		keys[i] = vj
		swapped[j] = vi
	}
	return keys, nil
}

func writeKeys(w io.Writer, keys []int) error {
	bw := bufio.NewWriterSize(w, 64*1024)
	var scratch []byte
	for _, key := range keys {
		scratch = strconv.AppendInt(scratch[:0], int64(key), 10)
		scratch = append(scratch, ' ')
		if _, err := bw.Write(scratch); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func batchFileName(config GeneratorConfig, index int) string {
	return filepath.Join(config.Dir, fmt.Sprintf("%s%d.txt", config.Prefix, index+1))
}

// GenerateBatches writes config.Files files, each holding config.Count
// distinct random keys from [0, config.Range) on a single line.
func GenerateBatches(config GeneratorConfig, seed int64, showProgress bool) ([]string, error) {
	if err := os.MkdirAll(config.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create batch directory: %v", err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(config.Files,
			progressbar.OptionSetDescription("🎲 Generating batches..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Batches generated!\n")
			}),
		)
	}

	rng := rand.New(rand.NewSource(seed))
	paths := make([]string, 0, config.Files)
	for i := 0; i < config.Files; i++ {
		keys, err := sampleKeys(rng, config.Count, config.Range)
		if err != nil {
			return paths, err
		}

		path := batchFileName(config, i)
		if bar != nil {
			bar.Describe(fmt.Sprintf("🎲 Writing: %s", filepath.Base(path)))
		}
		if err := writeBatchFile(path, keys); err != nil {
			return paths, err
		}
		paths = append(paths, path)

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	log.Printf("Generated %d batch files of %d keys in %s", len(paths), config.Count, config.Dir)
	return paths, nil
}

func writeBatchFile(path string, keys []int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create batch file: %v", err)
	}

	if err := writeKeys(file, keys); err != nil {
		file.Close()
		return fmt.Errorf("failed to write batch file %s: %v", path, err)
	}
	return file.Close()
}
