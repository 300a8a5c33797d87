package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the application state machine
type State string

const (
	StateInput      State = "input"
	StateGenerating State = "generating"
	StateResults    State = "results"
	StateError      State = "error"
)

// Modes selectable in the UI; must match the server's mode names
var Modes = []string{
	"professional",
	"learning",
	"reaction",
	"relatable",
	"listicle",
	"question",
	"routine",
}

const postCount = 6

// Model represents the TUI client state
type Model struct {
	Client *APIClient

	State     State
	Topic     string
	ModeIndex int
	Posts     []Post
	// Exclude accumulates shown posts so "more" requests stay fresh
	Exclude []string
	Err     error
}

// NewModel creates a new TUI model
func NewModel(serverURL string) Model {
	return Model{
		Client: NewAPIClient(serverURL),
		State:  StateInput,
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the currently selected mode name
func (m Model) Mode() string {
	return Modes[m.ModeIndex]
}
