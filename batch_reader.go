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
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var errNoBatches = errors.New("no batch files found")

// readKeys parses whitespace separated integers from r.
func readKeys(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	// A batch is usually a single line of a million numbers
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	scanner.Split(bufio.ScanWords)

	var keys []int
	for position := 0; scanner.Scan(); position++ {
		token := scanner.Text()
		key, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid key %q at position %d: %v", token, position, err)
		}
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return keys, nil
}

// ReadBatch reads every key of one batch file, in file order.
func ReadBatch(path string) ([]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("batch file %s not found. Run `treeheight gen` to create sample batches", path)
		}
		return nil, err
	}
	defer file.Close()

	keys, err := readKeys(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return keys, nil
}

// resolveBatchFiles returns args when given, otherwise the files matching
// pattern in natural order (numbers_2 before numbers_10).
func resolveBatchFiles(pattern string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("bad batch pattern %q: %v", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w for pattern %q", errNoBatches, pattern)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return naturalLess(matches[i], matches[j])
	})
	return matches, nil
}

// naturalLess compares strings treating runs of digits as numbers.
func naturalLess(a, b string) bool {
	for a != "" && b != "" {
		ad, arest := splitDigits(a)
		bd, brest := splitDigits(b)
		if ad != "" && bd != "" {
			an, _ := strconv.Atoi(ad)
			bn, _ := strconv.Atoi(bd)
			if an != bn {
				return an < bn
			}
			a, b = arest, brest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func splitDigits(s string) (string, string) {
	end := strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) })
	if end == -1 {
		return s, ""
	}
	return s[:end], s[end:]
}
