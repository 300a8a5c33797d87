package tui

// Messages for the tea program

// GenerateResultMsg is sent when a generation request finishes
type GenerateResultMsg struct {
	Posts []Post
	Err   error
}
