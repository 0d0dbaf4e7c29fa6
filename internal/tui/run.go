package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the Add Tax form until the user quits or ctx is canceled. It
// returns the final model so callers can report what was submitted.
func Run(ctx context.Context, opts ...Option) (Model, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Restore the terminal however the program ends.
	cleanupTerminal := func() {
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
	}
	defer cleanupTerminal()

	opts = append(opts, WithContext(ctx))
	m := New(opts...)

	program := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return m, fmt.Errorf("TUI error: %w", err)
	}

	if fm, ok := final.(Model); ok {
		m = fm
	}
	if err != nil {
		return m, ctx.Err()
	}
	return m, nil
}
