package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// generatePosts creates a command that calls the generation endpoint
func generatePosts(client *APIClient, topic, mode string, count int, exclude []string) tea.Cmd {
	return func() tea.Msg {
		posts, err := client.Generate(topic, mode, count, exclude)
		return GenerateResultMsg{
			Posts: posts,
			Err:   err,
		}
	}
}
