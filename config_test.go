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
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadConfigFrom(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		config, err := loadConfigFrom(filepath.Join(dir, "missing.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(*config, defaultConfig) {
			t.Errorf("config = %+v; want defaults", *config)
		}
	})

	t.Run("partial file", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		content := "engines: [AVL]\ngenerator:\n  files: 3\nrun:\n  check_invariants: false\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		config, err := loadConfigFrom(path)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(config.Engines, []string{EngineAVL}) {
			t.Errorf("engines = %v; want [avl]", config.Engines)
		}
		if config.Generator.Files != 3 {
			t.Errorf("files = %d; want 3", config.Generator.Files)
		}
		if config.Generator.Count != defaultConfig.Generator.Count {
			t.Errorf("count = %d; want default %d", config.Generator.Count, defaultConfig.Generator.Count)
		}
		if config.Run.CheckInvariants {
			t.Error("check_invariants should be false")
		}
		if config.Run.Pattern != defaultConfig.Run.Pattern {
			t.Errorf("pattern = %q; want default", config.Run.Pattern)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("engines: [avl\n"), 0644); err != nil {
			t.Fatal(err)
		}
		config, err := loadConfigFrom(path)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(*config, defaultConfig) {
			t.Errorf("config = %+v; want defaults", *config)
		}
	})
}

func TestWriteConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	config := defaults()
	config.Generator.Dir = "Batches"
	config.Engines = []string{EngineRedBlack}

	if err := writeConfigFile(path, config); err != nil {
		t.Fatalf("writeConfigFile returned error: %v", err)
	}
	loaded, err := loadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, config) {
		t.Errorf("loaded = %+v; want %+v", loaded, config)
	}
}

func TestDefaultsAreIndependentCopies(t *testing.T) {
	a := defaults()
	a.Engines[0] = "changed"
	if defaultConfig.Engines[0] != EngineAVL {
		t.Error("defaults() shares the engine slice with defaultConfig")
	}
}
