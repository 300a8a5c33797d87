package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case GenerateResultMsg:
		return m.handleGenerateResult(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	}

	switch m.State {
	case StateInput:
		return m.handleInputKey(msg)
	case StateResults, StateError:
		return m.handleResultsKey(msg)
	}
	return m, nil
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "enter":
		if m.Topic == "" {
			return m, nil
		}
		m.State = StateGenerating
		return m, generatePosts(m.Client, m.Topic, m.Mode(), postCount, m.Exclude)
	case "tab":
		m.ModeIndex = (m.ModeIndex + 1) % len(Modes)
		return m, nil
	case "shift+tab":
		m.ModeIndex = (m.ModeIndex - 1 + len(Modes)) % len(Modes)
		return m, nil
	case "backspace":
		if len(m.Topic) > 0 {
			m.Topic = m.Topic[:len(m.Topic)-1]
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		m.Topic += string(msg.Runes)
	case tea.KeySpace:
		m.Topic += " "
	}
	return m, nil
}

func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "m", "M":
		// More posts for the same topic, excluding everything shown so far
		m.State = StateGenerating
		m.Err = nil
		return m, generatePosts(m.Client, m.Topic, m.Mode(), postCount, m.Exclude)
	case "n", "N":
		m.State = StateInput
		m.Topic = ""
		m.Posts = nil
		m.Exclude = nil
		m.Err = nil
		return m, nil
	}
	return m, nil
}

// handleGenerateResult processes a finished generation request
func (m Model) handleGenerateResult(msg GenerateResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}

	m.Posts = msg.Posts
	for _, p := range msg.Posts {
		if p.Text != "" {
			m.Exclude = append(m.Exclude, p.Text)
		}
	}
	m.State = StateResults
	return m, nil
}
