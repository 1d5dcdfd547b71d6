package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/johnzilla/woofstagram/internal/app"
)

// Run drives the terminal client until the user quits or ctx is cancelled.
func Run(ctx context.Context, a *app.App) error {
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
