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
	"reflect"
	"strings"
	"testing"
)

func TestShortBatchLabel(t *testing.T) {
	testCases := map[string]string{
		"Numbers/numbers_7.txt":  "7",
		"numbers_10.txt":         "10",
		"batch-3.txt":            "3",
		"/tmp/keys.txt":          "keys",
		"/tmp/averylongname.txt": "averyl",
	}
	for path, want := range testCases {
		if got := shortBatchLabel(path); got != want {
			t.Errorf("shortBatchLabel(%q) = %q; want %q", path, got, want)
		}
	}
}

func TestBuildChartSeries(t *testing.T) {
	reports := []*BatchReport{
		{Path: "numbers_1.txt", Engine: EngineAVL, Height: 24, Bound: 28},
		{Path: "numbers_1.txt", Engine: EngineRedBlack, Height: 25, Bound: 39},
		{Path: "numbers_2.txt", Engine: EngineAVL, Height: 23, Bound: 28},
		{Path: "numbers_2.txt", Engine: EngineRedBlack, Height: 26, Bound: 39},
	}

	series := buildChartSeries([]string{EngineAVL, EngineRedBlack}, reports)
	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if !reflect.DeepEqual(series[0].Heights, []float64{24, 23}) {
		t.Errorf("AVL heights = %v", series[0].Heights)
	}
	if !reflect.DeepEqual(series[1].Labels, []string{"1", "2"}) {
		t.Errorf("Red-Black labels = %v", series[1].Labels)
	}

	data, labels := chartBars(series[0])
	if want := []float64{24, 28, 23, 28}; !reflect.DeepEqual(data, want) {
		t.Errorf("AVL bars = %v; want %v", data, want)
	}
	if want := []string{"1", "bound", "2", "bound"}; !reflect.DeepEqual(labels, want) {
		t.Errorf("AVL bar labels = %v; want %v", labels, want)
	}

	summary := chartSummary(series)
	for _, want := range []string{"AVL](fg:green): 2 batches, height 23–24, bound 28", "Red-Black](fg:green): 2 batches, height 25–26, bound 39"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
	if strings.HasSuffix(summary, "\n") {
		t.Errorf("summary has a trailing newline: %q", summary)
	}
}
