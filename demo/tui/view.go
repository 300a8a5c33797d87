package tui

import (
	"fmt"
	"strings"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render("clipscribe post generator"))
	b.WriteString("\n\n")

	// Mode selector
	modeLine := "Mode: "
	for i, mode := range Modes {
		if i == m.ModeIndex {
			modeLine += HighlightStyle.Render(mode)
		} else {
			modeLine += InfoStyle.Render(mode)
		}
		if i < len(Modes)-1 {
			modeLine += " "
		}
	}
	b.WriteString(modeLine)
	b.WriteString("\n\n")

	switch m.State {
	case StateInput:
		b.WriteString("Topic or link: ")
		b.WriteString(m.Topic)
		b.WriteString(StatusStyle.Render("_"))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("Enter to generate | Tab to switch mode | Esc to quit"))

	case StateGenerating:
		b.WriteString(StatusStyle.Render(fmt.Sprintf("Generating %s posts for %q...", m.Mode(), m.Topic)))

	case StateResults:
		b.WriteString(m.formatPosts())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("'m' for more | 'n' for a new topic | 'q' to quit"))

	case StateError:
		errMsg := "unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		b.WriteString(ErrorStyle.Render("Error: " + errMsg))
		b.WriteString("\n\n")
		b.WriteString(InfoStyle.Render("'m' to retry | 'n' for a new topic | 'q' to quit"))
	}

	b.WriteString("\n")
	return b.String()
}

// formatPosts renders the generated batch
func (m Model) formatPosts() string {
	var b strings.Builder

	b.WriteString(HighlightStyle.Render(fmt.Sprintf("Posts for %q", m.Topic)))
	b.WriteString("\n\n")

	shown := 0
	for _, post := range m.Posts {
		if post.Text == "" {
			continue
		}
		shown++
		b.WriteString(fmt.Sprintf("%d. %s\n", shown, post.Text))
	}
	if shown == 0 {
		b.WriteString(InfoStyle.Render("No posts in this batch."))
		b.WriteString("\n")
	}

	return BoxStyle.Render(b.String())
}
