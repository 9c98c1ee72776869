// Package tui is the interactive form: it collects a user story and page
// markup, asks the model for scenarios and converts them to test files.
package tui

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/chriserin/gwt/internal/compose"
	"github.com/chriserin/gwt/internal/scengen"
)

// GenerateFunc produces scenario text for a story and its markup.
type GenerateFunc func(ctx context.Context, story, html string) (string, error)

// ConvertFunc saves scenario text and converts it to test files.
type ConvertFunc func(text string) (*compose.Result, error)

type generatedMsg struct {
	text string
	err  error
}

type convertedMsg struct {
	result *compose.Result
	err    error
}

type field int

const (
	storyField field = iota
	htmlField
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	ctx      context.Context
	generate GenerateFunc
	convert  ConvertFunc

	story   textarea.Model
	html    textarea.Model
	output  viewport.Model
	spinner spinner.Model

	focus  field
	busy   bool
	lines  []string
	width  int
	height int
}

func New(ctx context.Context, generate GenerateFunc, convert ConvertFunc) Model {
	story := textarea.New()
	story.Placeholder = "As a registered user I want to log in so that I can see my dashboard"
	story.CharLimit = 0
	story.SetHeight(4)
	story.Focus()

	html := textarea.New()
	html.Placeholder = "<form id=\"login\">...</form>"
	html.CharLimit = 0
	html.MaxHeight = 0
	html.SetHeight(8)

	return Model{
		ctx:      ctx,
		generate: generate,
		convert:  convert,
		story:    story,
		html:     html,
		output:   viewport.New(80, 10),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.toggleFocus()
			return m, nil
		case key.Matches(msg, keys.Generate):
			return m.startGenerate()
		}

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case generatedMsg:
		m.busy = false
		if msg.err != nil {
			m.setOutput(scengen.ErrorText(msg.err))
			return m, nil
		}
		m.setOutput(msg.text)
		return m, convertCmd(m.convert, msg.text)

	case convertedMsg:
		if msg.err != nil {
			m.appendOutput("", "[ERROR] conversion failed: "+msg.err.Error())
			return m, nil
		}
		m.appendOutput("", "[SUCCESS] Selenium tests ready:")
		for _, path := range msg.result.Files {
			m.appendOutput("  - " + filepath.Base(path))
		}
		for _, w := range msg.result.Warnings {
			m.appendOutput("[WARNING] " + w.String())
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == storyField {
		m.story, cmd = m.story.Update(msg)
	} else {
		m.html, cmd = m.html.Update(msg)
	}
	return m, cmd
}

func (m Model) startGenerate() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	story, html := m.story.Value(), m.html.Value()
	if strings.TrimSpace(story) == "" || strings.TrimSpace(html) == "" {
		m.setOutput("[WARNING] Fill in both the user story and the HTML code.")
		return m, nil
	}
	m.busy = true
	m.setOutput("Contacting the model...")
	return m, tea.Batch(m.spinner.Tick, generateCmd(m.ctx, m.generate, story, html))
}

// generateCmd runs the model request outside the update loop; its result
// comes back as a generatedMsg.
func generateCmd(ctx context.Context, generate GenerateFunc, story, html string) tea.Cmd {
	return func() tea.Msg {
		text, err := generate(ctx, story, html)
		return generatedMsg{text: text, err: err}
	}
}

func convertCmd(convert ConvertFunc, text string) tea.Cmd {
	return func() tea.Msg {
		result, err := convert(text)
		return convertedMsg{result: result, err: err}
	}
}

func (m *Model) toggleFocus() {
	if m.focus == storyField {
		m.focus = htmlField
		m.story.Blur()
		m.html.Focus()
		return
	}
	m.focus = storyField
	m.html.Blur()
	m.story.Focus()
}

func (m *Model) resize() {
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.story.SetWidth(w)
	m.html.SetWidth(w)
	m.output.Width = w

	// title, labels, help and spacing take roughly 12 rows
	h := m.height - m.story.Height() - m.html.Height() - 12
	if h < 3 {
		h = 3
	}
	m.output.Height = h
}

func (m *Model) setOutput(lines ...string) {
	m.lines = nil
	m.appendOutput(lines...)
}

func (m *Model) appendOutput(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.output.SetContent(m.Output())
	m.output.GotoBottom()
}

// Output returns the text of the output pane.
func (m Model) Output() string {
	return strings.Join(m.lines, "\n")
}

func (m Model) Busy() bool {
	return m.busy
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("gwt: user story to Selenium tests") + "\n\n")
	b.WriteString(labelStyle.Render("User Story:") + "\n" + m.story.View() + "\n\n")
	b.WriteString(labelStyle.Render("HTML Code:") + "\n" + m.html.View() + "\n\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " Processing...\n\n")
	} else {
		b.WriteString(helpStyle.Render(keys.help()) + "\n\n")
	}
	b.WriteString(labelStyle.Render("Generated scenarios:") + "\n" + m.output.View())
	return b.String()
}

func joinDots(parts []string) string {
	return strings.Join(parts, " • ")
}
