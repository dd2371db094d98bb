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
	"path/filepath"
	"strings"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// chartSeries groups report heights by engine, keeping batch order.
type chartSeries struct {
	Engine  string
	Labels  []string
	Heights []float64
	Bounds  []float64
}

func buildChartSeries(engines []string, reports []*BatchReport) []chartSeries {
	series := make([]chartSeries, 0, len(engines))
	for _, engine := range engines {
		s := chartSeries{Engine: engine}
		for _, report := range reports {
			if report.Engine != engine {
				continue
			}
			s.Labels = append(s.Labels, shortBatchLabel(report.Path))
			s.Heights = append(s.Heights, float64(report.Height))
			s.Bounds = append(s.Bounds, float64(report.Bound))
		}
		series = append(series, s)
	}
	return series
}

// shortBatchLabel turns "Numbers/numbers_7.txt" into "7".
func shortBatchLabel(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if i := strings.LastIndexAny(name, "_-"); i >= 0 && i < len(name)-1 {
		return name[i+1:]
	}
	if len(name) > 6 {
		return name[:6]
	}
	return name
}

// chartBars pairs each batch height with its theoretical bound, so the
// bars alternate height, bound, height, bound.
func chartBars(s chartSeries) ([]float64, []string) {
	data := make([]float64, 0, 2*len(s.Heights))
	labels := make([]string, 0, 2*len(s.Heights))
	for i, h := range s.Heights {
		data = append(data, h, s.Bounds[i])
		labels = append(labels, s.Labels[i], "bound")
	}
	return data, labels
}

func newHeightBarChart(s chartSeries) *widgets.BarChart {
	scheme := GetColorScheme()

	bc := widgets.NewBarChart()
	bc.Title = fmt.Sprintf(" %s heights and bounds per batch ", engineTitle(s.Engine))
	bc.Data, bc.Labels = chartBars(s)
	bc.BarWidth = 5
	bc.BarGap = 1
	bc.BarColors = []ui.Color{engineBarColor(s.Engine), scheme.BoundBar}
	bc.LabelStyles = []ui.Style{ui.NewStyle(scheme.Label), StyleTextMuted()}
	bc.NumStyles = []ui.Style{ui.NewStyle(scheme.Number)}
	bc.BorderStyle = StyleBorder(false)
	return bc
}

func engineTitle(engine string) string {
	if engine == EngineRedBlack {
		return "Red-Black"
	}
	return "AVL"
}

const chartHint = "q or <ctrl> + c -> Quit"

func chartSummary(series []chartSeries) string {
	var b strings.Builder
	for _, s := range series {
		if len(s.Heights) == 0 {
			continue
		}
		lo, hi := s.Heights[0], s.Heights[0]
		for _, h := range s.Heights {
			lo = min(lo, h)
			hi = max(hi, h)
		}
		fmt.Fprintf(&b, "[%s](fg:green): %d batches, height %.0f–%.0f, bound %.0f\n",
			engineTitle(s.Engine), len(s.Heights), lo, hi, s.Bounds[len(s.Bounds)-1])
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// showHeightChart draws one bar chart per engine and blocks until quit.
func showHeightChart(engines []string, reports []*BatchReport) error {
	series := buildChartSeries(engines, reports)

	if err := ui.Init(); err != nil {
		return fmt.Errorf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	summary := widgets.NewParagraph()
	summary.Title = " Summary "
	summary.Text = chartSummary(series)
	summary.TextStyle = StyleText()
	summary.BorderStyle = StyleBorder(true)

	ratio := 0.7 / float64(len(series))
	rows := make([]interface{}, 0, len(series)+2)
	for _, s := range series {
		rows = append(rows, ui.NewRow(ratio, newHeightBarChart(s)))
	}
	hint := widgets.NewParagraph()
	hint.Text = chartHint
	hint.TextStyle = StyleTextMuted()
	hint.BorderStyle = StyleBorder(false)

	rows = append(rows, ui.NewRow(0.2, summary), ui.NewRow(0.1, hint))

	grid := ui.NewGrid()
	termWidth, termHeight := ui.TerminalDimensions()
	grid.SetRect(0, 0, termWidth, termHeight)
	grid.Set(rows...)
	ui.Render(grid)

	for e := range ui.PollEvents() {
		switch e.ID {
		case "q", "<C-c>", "<Escape>":
			return nil
		case "<Resize>":
			payload := e.Payload.(ui.Resize)
			grid.SetRect(0, 0, payload.Width, payload.Height)
			ui.Clear()
			ui.Render(grid)
		}
	}
	return nil
}
