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
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusHistory
	focusTrees
	focusStats
	focusCount
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput   textinput.Model
	historyList list.Model
	treeViews   []viewport.Model
	statsView   viewport.Model

	playground *Playground

	focusIndex int
	treeIndex  int // tree viewport receiving scroll keys
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// stepItem is one accepted input in the history list
type stepItem struct {
	step PlayStep
}

func (i stepItem) FilterValue() string { return i.step.Input }
func (i stepItem) Title() string       { return i.step.Input }
func (i stepItem) Description() string {
	engines := make([]string, 0, len(i.step.Heights))
	for engine := range i.step.Heights {
		engines = append(engines, engine)
	}
	sort.Strings(engines)

	parts := make([]string, 0, len(engines)+1)
	parts = append(parts, fmt.Sprintf("+%d", i.step.Inserted))
	for _, engine := range engines {
		parts = append(parts, fmt.Sprintf("%s h=%d", engine, i.step.Heights[engine]))
	}
	return strings.Join(parts, "  ")
}

// InitialModel creates the initial model
func InitialModel(playground *Playground) Model {
	ti := textinput.New()
	ti.Placeholder = "Keys to insert (5 3 8), random N, load FILE, bench FILE, clear"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	historyList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	historyList.SetShowTitle(false)
	historyList.SetShowHelp(false)
	historyList.SetFilteringEnabled(false)

	treeViews := make([]viewport.Model, len(playground.Engines()))
	for i := range treeViews {
		treeViews[i] = viewport.New(0, 0)
	}

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		historyList:     historyList,
		treeViews:       treeViews,
		statsView:       viewport.New(0, 0),
		playground:      playground,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		status:          "Type keys and press enter",
	}
	model.refresh()

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			return m, nil
		case "ctrl+y":
			m.copyFocusedTree()
			return m, nil
		}

		switch m.focusIndex {
		case focusInput:
			if msg.String() == "enter" {
				m.submit()
				return m, nil
			}
			m.textInput, cmd = m.textInput.Update(msg)
		case focusHistory:
			m.historyList, cmd = m.historyList.Update(msg)
		case focusTrees:
			switch msg.String() {
			case "left", "h":
				m.treeIndex = (m.treeIndex + len(m.treeViews) - 1) % len(m.treeViews)
				return m, nil
			case "right", "l":
				m.treeIndex = (m.treeIndex + 1) % len(m.treeViews)
				return m, nil
			}
			m.treeViews[m.treeIndex], cmd = m.treeViews[m.treeIndex].Update(msg)
		case focusStats:
			m.statsView, cmd = m.statsView.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refresh()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.textInput.Focus()
	} else {
		m.textInput.Blur()
	}
}

// submit executes the typed line against the playground.
func (m *Model) submit() {
	line := strings.TrimSpace(m.textInput.Value())
	status, err := m.playground.Execute(line)
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = status
	m.statusErr = false
	m.textInput.SetValue("")
	m.refresh()
}

// refresh re-renders trees, stats and history from the playground.
func (m *Model) refresh() {
	for i, engine := range m.playground.Engines() {
		m.treeViews[i].SetContent(m.playground.Tree(engine).Render(true))
		m.treeViews[i].GotoTop()
	}

	stats := m.playground.StatsMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(stats); err == nil {
			stats = rendered
		}
	}
	m.statsView.SetContent(stats)

	history := m.playground.History()
	items := make([]list.Item, len(history))
	for i := range history {
		// Newest first
		items[len(history)-1-i] = stepItem{step: history[i]}
	}
	m.historyList.SetItems(items)
}

func (m *Model) copyFocusedTree() {
	engine := m.playground.Engines()[m.treeIndex]
	if err := copyToClipboard(m.playground.Tree(engine).Render(false)); err != nil {
		m.status = fmt.Sprintf("Copy failed: %v", err)
		m.statusErr = true
		return
	}
	m.status = fmt.Sprintf("Copied %s tree to clipboard", engineTitle(engine))
	m.statusErr = false
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth, treeWidth, bodyHeight := m.dimensions()

	box := func(focused bool, width, height int, title, content string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-2).Render(title),
				content,
			))
	}

	inputBox := box(m.focusIndex == focusInput, m.width-2, 2, " ⌨️  Insert Keys", m.textInput.View())

	historyBox := box(m.focusIndex == focusHistory, leftWidth, bodyHeight/2-2, " 📋 History", m.historyList.View())
	statsBox := box(m.focusIndex == focusStats, leftWidth, bodyHeight-bodyHeight/2-2, " 📊 Stats", m.statsView.View())
	leftColumn := lipgloss.JoinVertical(lipgloss.Left, historyBox, statsBox)

	columns := []string{leftColumn}
	for i, engine := range m.playground.Engines() {
		focused := m.focusIndex == focusTrees && m.treeIndex == i
		title := fmt.Sprintf(" 🌳 %s (height %d)", engineTitle(engine), m.playground.Tree(engine).Height())
		columns = append(columns, box(focused, treeWidth, bodyHeight-2, title, m.treeViews[i].View()))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, inputBox, body, status, m.renderHelp())
}

func (m Model) renderHelp() string {
	keys := []struct{ key, desc string }{
		{"enter", "insert"},
		{"tab", "switch panel"},
		{"←/→", "switch tree"},
		{"ctrl+y", "copy tree"},
		{"esc", "quit"},
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = m.styles.HelpKey.Render(k.key) + " " + m.styles.HelpDesc.Render(k.desc)
	}
	return strings.Join(parts, "  •  ")
}

// dimensions splits the screen between the left column and the trees.
func (m Model) dimensions() (leftWidth, treeWidth, bodyHeight int) {
	inputHeight := 4
	footerHeight := 2
	bodyHeight = m.height - inputHeight - footerHeight
	leftWidth = m.width/4 - 2
	trees := max(1, len(m.treeViews))
	treeWidth = (m.width-leftWidth-2)/trees - 2
	return leftWidth, treeWidth, bodyHeight
}

func (m *Model) updateLayout() {
	leftWidth, treeWidth, bodyHeight := m.dimensions()

	m.textInput.Width = m.width - 8
	m.historyList.SetSize(leftWidth-2, bodyHeight/2-3)
	m.statsView.Width = leftWidth - 2
	m.statsView.Height = bodyHeight - bodyHeight/2 - 3
	for i := range m.treeViews {
		m.treeViews[i].Width = treeWidth - 2
		m.treeViews[i].Height = bodyHeight - 3
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(playground *Playground) error {
	model := InitialModel(playground)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	if err == nil {
		fmt.Fprintf(os.Stderr, "%sFinal heights:%s", Green, Reset)
		for _, engine := range playground.Engines() {
			fmt.Fprintf(os.Stderr, " %s=%d", engine, playground.Tree(engine).Height())
		}
		fmt.Fprintln(os.Stderr)
	}
	return err
}
