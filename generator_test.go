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
	"bytes"
	"math/rand"
	"path/filepath"
	"testing"
)

func TestSampleKeysAreDistinctAndInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	testCases := []struct {
		count, keyRange int
	}{
		{0, 0},
		{1, 1},
		{10, 10},
		{100, 1000},
		{5000, 1000000},
	}

	for _, tc := range testCases {
		keys, err := sampleKeys(rng, tc.count, tc.keyRange)
		if err != nil {
			t.Fatalf("sampleKeys(%d, %d) returned error: %v", tc.count, tc.keyRange, err)
		}
		if len(keys) != tc.count {
			t.Fatalf("sampleKeys(%d, %d) returned %d keys", tc.count, tc.keyRange, len(keys))
		}
		seen := make(map[int]bool, len(keys))
		for _, key := range keys {
			if key < 0 || key >= tc.keyRange {
				t.Errorf("key %d outside [0, %d)", key, tc.keyRange)
			}
			if seen[key] {
				t.Errorf("key %d sampled twice", key)
			}
			seen[key] = true
		}
	}
}

func TestSampleKeysRejectsImpossibleRequest(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if _, err := sampleKeys(rng, 11, 10); err == nil {
		t.Error("expected an error when count exceeds range")
	}
	if _, err := sampleKeys(rng, -1, 10); err == nil {
		t.Error("expected an error for a negative count")
	}
}

func TestWriteKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := writeKeys(&buf, []int{5, 3, 8}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "5 3 8 " {
		t.Errorf("writeKeys = %q; want %q", got, "5 3 8 ")
	}
}

func TestGenerateBatchesRoundTrip(t *testing.T) {
	config := GeneratorConfig{
		Dir:    filepath.Join(t.TempDir(), "Numbers"),
		Prefix: "numbers_",
		Files:  3,
		Count:  500,
		Range:  1000,
	}

	paths, err := GenerateBatches(config, 42, false)
	if err != nil {
		t.Fatalf("GenerateBatches returned error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 files, got %d", len(paths))
	}
	if filepath.Base(paths[2]) != "numbers_3.txt" {
		t.Errorf("unexpected file name %s", paths[2])
	}

	for _, path := range paths {
		keys, err := ReadBatch(path)
		if err != nil {
			t.Fatalf("ReadBatch(%s) returned error: %v", path, err)
		}
		if len(keys) != config.Count {
			t.Errorf("%s holds %d keys; want %d", path, len(keys), config.Count)
		}
	}

	// Same seed, same batches
	again, err := GenerateBatches(config, 42, false)
	if err != nil {
		t.Fatal(err)
	}
	first, _ := ReadBatch(paths[0])
	second, _ := ReadBatch(again[0])
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("seeded generation differs at %d: %d vs %d", i, first[i], second[i])
		}
	}
}
