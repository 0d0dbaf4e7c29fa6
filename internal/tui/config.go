package tui

import (
	"context"

	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	"github.com/Veraticus/taxform/internal/sink"
	"github.com/Veraticus/taxform/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
)

// Config holds TUI configuration.
type Config struct {
	Context    context.Context
	Sink       service.SubmissionSink
	Theme      themes.Theme
	Items      []model.Item
	Width      int
	Height     int
	CursorMode cursor.Mode
	ShowHelp   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:    context.Background(),
		Sink:       sink.NewLogSink(nil),
		Theme:      themes.Default,
		Width:      80,
		Height:     24,
		CursorMode: cursor.CursorBlink,
		ShowHelp:   true,
	}
}

// WithItems sets the item catalog the form offers.
func WithItems(items []model.Item) Option {
	return func(c *Config) {
		c.Items = items
	}
}

// WithSink sets where validated submissions are delivered.
func WithSink(s service.SubmissionSink) Option {
	return func(c *Config) {
		if s != nil {
			c.Sink = s
		}
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithContext sets the context submissions run under.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Context = ctx
		}
	}
}

// WithStaticCursor disables cursor blinking.
func WithStaticCursor() Option {
	return func(c *Config) {
		c.CursorMode = cursor.CursorStatic
	}
}

// WithHelp toggles the key binding footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}
