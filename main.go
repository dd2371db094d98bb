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
	"log"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/spf13/cobra"
)

var version = "0.3.0"

// loadSettings merges the config file with command-line overrides.
func loadSettings(cmd *cobra.Command) (*Config, []string) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = defaults()
	}

	engineList := config.Engines
	if cmd.Flags().Changed("engine") {
		engineList, _ = cmd.Flags().GetStringSlice("engine")
	}
	engines, err := parseEngines(engineList)
	if err != nil {
		log.Fatalf("Invalid engine selection: %v", err)
	}
	return config, engines
}

// runOptions applies the run flags that are present on cmd to the
// configured defaults. It also returns the verbose flag.
func runOptions(cmd *cobra.Command, config *Config) (RunOptions, bool) {
	options := RunOptions{
		CheckInvariants: config.Run.CheckInvariants,
		ShowProgress:    config.Run.ShowProgress,
	}
	flags := cmd.Flags()
	if flags.Lookup("check") != nil && flags.Changed("check") {
		options.CheckInvariants, _ = flags.GetBool("check")
	}
	if flags.Lookup("print") != nil {
		options.PrintKeys, _ = flags.GetBool("print")
	}
	verbose := false
	if flags.Lookup("verbose") != nil {
		verbose, _ = flags.GetBool("verbose")
	}
	return options, verbose
}

// runAllBatches reports every batch for every engine, in batch order.
func runAllBatches(rc *cache.Cache, files, engines []string, options RunOptions, onReport func(*BatchReport)) []*BatchReport {
	var reports []*BatchReport
	for _, path := range files {
		batchReports, err := RunBatch(rc, path, engines, options)
		if err != nil {
			log.Fatalf("Error running batch: %v", err)
		}
		for _, report := range batchReports {
			if onReport != nil {
				onReport(report)
			}
			reports = append(reports, report)
		}
	}
	return reports
}

func main() {
	asciiLogo := `
 _____                 _   _      _       _     _
|_   _| __ ___  ___   | | | | ___(_) __ _| |__ | |_
  | || '__/ _ \/ _ \  | |_| |/ _ \ |/ _' | '_ \| __|
  | || | |  __/  __/  |  _  |  __/ | (_| | | | | |_
  |_||_|  \___|\___|  |_| |_|\___|_|\__, |_| |_|\__|
                                    |___/
How tall do balanced trees grow? AVL vs Red-Black [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	runBatches := func(cmd *cobra.Command, args []string) {
		config, engines := loadSettings(cmd)
		options, verbose := runOptions(cmd, config)

		files, err := resolveBatchFiles(config.Run.Pattern, args)
		if err != nil {
			log.Fatalf("Error locating batches: %v", err)
		}

		runAllBatches(NewReportCache(), files, engines, options, func(report *BatchReport) {
			printReport(report, verbose)
		})
		fmt.Println("done")
	}

	var cmdRun = &cobra.Command{
		Use:   "run [batch files...]",
		Short: "Insert each batch into fresh trees and print their heights",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run reads every batch file (or the configured pattern) and reports the tree height after each one`),
		Args:  cobra.MinimumNArgs(0),
		Run:   runBatches,
	}
	cmdRun.Flags().StringSlice("engine", nil, "engines to run: avl, rbtree (default from config)")
	cmdRun.Flags().Bool("check", true, "verify tree invariants after each batch")
	cmdRun.Flags().Bool("print", false, "print the in-order keys of every tree")
	cmdRun.Flags().BoolP("verbose", "v", false, "show key counts, bounds and invariant results")

	var cmdGen = &cobra.Command{
		Use:   "gen",
		Short: "Generate random batch files",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Gen writes files of distinct random integers, one batch per file`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, _ := loadSettings(cmd)
			gen := config.Generator
			if cmd.Flags().Changed("dir") {
				gen.Dir, _ = cmd.Flags().GetString("dir")
			}
			if cmd.Flags().Changed("files") {
				gen.Files, _ = cmd.Flags().GetInt("files")
			}
			if cmd.Flags().Changed("count") {
				gen.Count, _ = cmd.Flags().GetInt("count")
			}
			if cmd.Flags().Changed("range") {
				gen.Range, _ = cmd.Flags().GetInt("range")
			}
			seed := time.Now().UnixNano()
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}

			paths, err := GenerateBatches(gen, seed, config.Run.ShowProgress)
			if err != nil {
				log.Fatalf("Error generating batches: %v", err)
			}
			fmt.Printf("%sFiles have been created:%s %d batches in %s\n", Green, Reset, len(paths), gen.Dir)
		},
	}
	cmdGen.Flags().String("dir", "", "output directory")
	cmdGen.Flags().Int("files", 0, "number of batch files")
	cmdGen.Flags().Int("count", 0, "keys per batch")
	cmdGen.Flags().Int("range", 0, "keys are drawn from [0, range)")
	cmdGen.Flags().Int64("seed", 0, "random seed (default: current time)")

	var cmdChart = &cobra.Command{
		Use:   "chart [batch files...]",
		Short: "Draw tree heights per batch as a bar chart",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Chart runs every batch and plots the resulting heights for each engine`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			config, engines := loadSettings(cmd)
			files, err := resolveBatchFiles(config.Run.Pattern, args)
			if err != nil {
				log.Fatalf("Error locating batches: %v", err)
			}

			reports := runAllBatches(NewReportCache(), files, engines, RunOptions{
				ShowProgress: config.Run.ShowProgress,
			}, nil)
			if err := showHeightChart(engines, reports); err != nil {
				log.Fatalf("Error drawing chart: %v", err)
			}
		},
	}
	cmdChart.Flags().StringSlice("engine", nil, "engines to chart: avl, rbtree (default from config)")

	var cmdPlay = &cobra.Command{
		Use:   "play",
		Short: "Insert keys interactively and watch the trees rebalance",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Play opens a terminal UI with one live tree per engine`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, engines := loadSettings(cmd)
			playground, err := NewPlayground(engines, NewReportCache(), time.Now().UnixNano())
			if err != nil {
				log.Fatalf("Error starting playground: %v", err)
			}
			if err := runBubbleTeaApp(playground); err != nil {
				log.Fatalf("Error running playground: %v", err)
			}
		},
	}
	cmdPlay.Flags().StringSlice("engine", nil, "engines to show: avl, rbtree (default from config)")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show current settings, creating the config file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the treeheight usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "treeheight",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MinimumNArgs(0),
		// Default to run command when no subcommand is provided
		Run: runBatches,
	}
	rootCmd.Flags().StringSlice("engine", nil, "engines to run: avl, rbtree (default from config)")
	rootCmd.AddCommand(cmdRun, cmdGen, cmdChart, cmdPlay, cmdSettings, cmdUsage, cmdVersion)
	rootCmd.Execute()
}
