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
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const configFileName = ".treeheight.yaml"

type GeneratorConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Files  int    `yaml:"files"`
	Count  int    `yaml:"count"`
	Range  int    `yaml:"range"`
}

type RunConfig struct {
	Pattern         string `yaml:"pattern"`
	CheckInvariants bool   `yaml:"check_invariants"`
	ShowProgress    bool   `yaml:"show_progress"`
}

type Config struct {
	Engines   []string        `yaml:"engines"`
	Generator GeneratorConfig `yaml:"generator"`
	Run       RunConfig       `yaml:"run"`
}

var defaultConfig = Config{
	Engines: []string{EngineAVL, EngineRedBlack},
	Generator: GeneratorConfig{
		Dir:    "Numbers",
		Prefix: "numbers_",
		Files:  10,
		Count:  1000000,
		Range:  1000000,
	},
	Run: RunConfig{
		Pattern:         filepath.Join("Numbers", "numbers_*.txt"),
		CheckInvariants: true,
		ShowProgress:    true,
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.treeheight.yaml. Any problem reading or parsing the
// file yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), nil
	}
	config.applyDefaults()

	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	config.Engines = append([]string(nil), defaultConfig.Engines...)
	return &config
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if len(c.Engines) == 0 {
		c.Engines = append([]string(nil), defaultConfig.Engines...)
	}
	for i, name := range c.Engines {
		c.Engines[i] = strings.ToLower(strings.TrimSpace(name))
	}
	if c.Generator.Dir == "" {
		c.Generator.Dir = defaultConfig.Generator.Dir
	}
	if c.Generator.Prefix == "" {
		c.Generator.Prefix = defaultConfig.Generator.Prefix
	}
	if c.Generator.Files <= 0 {
		c.Generator.Files = defaultConfig.Generator.Files
	}
	if c.Generator.Count <= 0 {
		c.Generator.Count = defaultConfig.Generator.Count
	}
	if c.Generator.Range <= 0 {
		c.Generator.Range = defaultConfig.Generator.Range
	}
	if c.Run.Pattern == "" {
		c.Run.Pattern = defaultConfig.Run.Pattern
	}
}

func writeConfigFile(configPath string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := writeConfigFile(configPath, defaults()); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, _ := loadConfigFrom(configPath)

	fmt.Printf("🔧 Tree Height Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sEngines:%s %s\n\n", Green, Reset, strings.Join(config.Engines, ", "))

	fmt.Printf("🎲 %sGenerator:%s\n", Green, Reset)
	fmt.Printf("  • dir: %s\n", config.Generator.Dir)
	fmt.Printf("  • prefix: %s\n", config.Generator.Prefix)
	fmt.Printf("  • files: %d\n", config.Generator.Files)
	fmt.Printf("  • count: %d\n", config.Generator.Count)
	fmt.Printf("  • range: %d\n\n", config.Generator.Range)

	fmt.Printf("🏃 %sRun:%s\n", Green, Reset)
	fmt.Printf("  • pattern: %s\n", config.Run.Pattern)
	fmt.Printf("  • check_invariants: %t\n", config.Run.CheckInvariants)
	fmt.Printf("  • show_progress: %t\n\n", config.Run.ShowProgress)

	if config.Generator.Count > config.Generator.Range {
		fmt.Printf("%s⚠️  count exceeds range: generated keys cannot all be distinct%s\n", Warning, Reset)
	}
}
