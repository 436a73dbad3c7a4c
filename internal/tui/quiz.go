package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"mindprint/internal/pipeline"
)

// RunQuiz runs the interactive quiz flow for a user and blocks until it
// finishes or is quit.
func RunQuiz(ctx context.Context, svc *pipeline.Service, out io.Writer, userID string, count int) error {
	m := newQuizModel(ctx, svc, userID, count)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
