package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the full-screen tracker and blocks until the user quits or
// ctx is canceled.
func Run(ctx context.Context, opts ...Option) error {
	m := New(opts...)

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	slog.Info("Starting tracker UI", "seeded", m.Snapshot().Len())

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := final.(Model); ok {
		sum := fm.Snapshot().Summary()
		slog.Info("Session ended",
			"transactions", sum.Count,
			"balance", sum.Balance.String())
	}

	return nil
}
