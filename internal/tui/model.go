// Package tui implements the interactive Add Tax form.
package tui

import (
	"context"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	"github.com/Veraticus/taxform/internal/taxform"
	"github.com/Veraticus/taxform/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the Add Tax form state.
type Model struct {
	ctx         context.Context
	sink        service.SubmissionSink
	lastError   error
	lastSubmit  *model.TaxSubmission
	theme       themes.Theme
	statusMsg   string
	help        help.Model
	items       []model.Item
	form        taxform.Form
	scope       catalog.ScopeState
	keymap      KeyMap
	nameInput   textinput.Model
	rateInput   textinput.Model
	searchInput textinput.Model
	focus       int
	width       int
	height      int
	submitted   int
	showHelp    bool
	submitting  bool
	quitting    bool
}

// New creates the form model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

func newModel(cfg Config) Model {
	m := Model{
		ctx:         cfg.Context,
		sink:        cfg.Sink,
		theme:       cfg.Theme,
		items:       cfg.Items,
		form:        taxform.NewForm(),
		scope:       catalog.NewScopeState(),
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		width:       cfg.Width,
		height:      cfg.Height,
		showHelp:    cfg.ShowHelp,
		nameInput:   newInput(cfg, "Tax name", 40),
		rateInput:   newInput(cfg, "Rate", 6),
		searchInput: newInput(cfg, "Search Items", 40),
	}
	m.help.Width = cfg.Width
	m.nameInput.CharLimit = 64
	m.rateInput.CharLimit = 10
	m.searchInput.CharLimit = 64
	m.nameInput.Focus()
	return m
}

func newInput(cfg Config, placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.Width = width
	_ = in.Cursor.SetMode(cfg.CursorMode)
	return in
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case submittedMsg:
		m.submitting = false
		m.submitted++
		m.lastError = nil
		sub := msg.submission
		m.lastSubmit = &sub
		m.statusMsg = "Tax \"" + sub.Name + "\" submitted"
		return m, nil

	case submitFailedMsg:
		m.submitting = false
		m.lastError = msg.err
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input-internal messages.
	return m.updateFocusedInput(msg)
}

// handleKey routes key presses. Text inputs receive every key that is not a
// navigation, submit, or quit key.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.current()

	switch {
	case key.Matches(msg, m.keymap.ForceQuit), msg.Type == tea.KeyEsc:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Next):
		cmd := m.moveFocus(1)
		return m, cmd

	case key.Matches(msg, m.keymap.Prev):
		cmd := m.moveFocus(-1)
		return m, cmd

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()
	}

	if current.isText() {
		if key.Matches(msg, m.keymap.Activate) {
			cmd := m.moveFocus(1)
			return m, cmd
		}
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Toggle), key.Matches(msg, m.keymap.Activate):
		return m.activate(current)
	}

	return m, nil
}

// activate performs the action of a non-text focus stop.
func (m Model) activate(t target) (tea.Model, tea.Cmd) {
	switch t.kind {
	case targetScopeAll:
		m.scope.SwitchScope(model.ApplyAll, m.items)
	case targetScopeSome:
		m.scope.SwitchScope(model.ApplySome, m.items)
	case targetCategory:
		m.scope.Selection.ToggleCategory(catalog.GroupByCategory(m.items), t.label)
	case targetItem:
		m.scope.Selection.Toggle(t.itemID)
	case targetSubmit:
		return m.submit()
	}
	m.clampFocus()
	return m, nil
}

// submit validates the form and, when it passes, hands the payload to the sink.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	sub, err := m.form.Submit(m.scope)
	if err != nil {
		m.lastError = nil
		m.statusMsg = blockedStatus
		return m, nil
	}

	m.submitting = true
	m.lastError = nil
	m.statusMsg = submittingStatus
	return m, submitCmd(m.ctx, m.sink, sub)
}

// updateFocusedInput forwards msg to the focused text input and syncs its value into the form.
func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	current := m.current()
	if !current.isText() {
		return m, nil
	}

	input := m.input(current.field())
	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if _, isKey := msg.(tea.KeyMsg); isKey {
		m.form.Set(current.field(), input.Value())
	}
	return m, cmd
}

// moveFocus advances the focus ring by delta, touching the field being left.
func (m *Model) moveFocus(delta int) tea.Cmd {
	targets := m.targets()
	leaving := targets[m.focus]
	if leaving.isText() {
		m.form.Touch(leaving.field())
		m.input(leaving.field()).Blur()
	}

	m.focus = (m.focus + delta + len(targets)) % len(targets)

	if next := targets[m.focus]; next.isText() {
		return m.input(next.field()).Focus()
	}
	return nil
}

// clampFocus keeps the focus index inside a ring that may have shrunk.
func (m *Model) clampFocus() {
	if n := len(m.targets()); m.focus >= n {
		m.focus = n - 1
	}
}

func (m Model) targets() []target {
	return focusTargets(catalog.GroupByCategory(m.items), m.scope.ItemsSelectable())
}

func (m Model) current() target {
	return m.targets()[m.focus]
}

func (m *Model) input(field taxform.Field) *textinput.Model {
	switch field {
	case taxform.FieldRate:
		return &m.rateInput
	case taxform.FieldSearch:
		return &m.searchInput
	default:
		return &m.nameInput
	}
}

// Scope returns the current apply scope.
func (m Model) Scope() model.ApplyScope {
	return m.scope.Scope
}

// SelectedItems returns the selected item ids in selection order.
func (m Model) SelectedItems() []int {
	return m.scope.Selection.IDs()
}

// Values returns the current form values.
func (m Model) Values() taxform.Values {
	return m.form.Values()
}

// LastSubmission returns the most recent accepted payload, if any.
func (m Model) LastSubmission() (model.TaxSubmission, bool) {
	if m.lastSubmit == nil {
		return model.TaxSubmission{}, false
	}
	return *m.lastSubmit, true
}

// Submitted returns how many submissions the sink accepted.
func (m Model) Submitted() int {
	return m.submitted
}

// Err returns the last sink error.
func (m Model) Err() error {
	return m.lastError
}
