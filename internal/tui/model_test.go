package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/sink"
	tuitest "github.com/Veraticus/taxform/internal/tui/testing"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Focus ring for testItems under the "some" scope:
// 0 name, 1 rate, 2 all, 3 some, 4 search, 5 Rings, 6 Ring, 7 Band,
// 8 Uncategorized, 9 Gift Card, 10 submit.
const (
	focusScopeAll      = 2
	focusScopeSome     = 3
	focusSearch        = 4
	focusRings         = 5
	focusFirstRing     = 6
	focusUncategorized = 8
	focusSubmitSome    = 10
)

func testItems() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Ring", Category: &model.ItemCategory{Name: "Rings"}},
		{ID: 2, Name: "Band", Category: &model.ItemCategory{Name: "Rings"}},
		{ID: 3, Name: "Gift Card"},
	}
}

func newTestModel(opts ...Option) Model {
	base := []Option{
		WithItems(testItems()),
		WithStaticCursor(),
		WithSize(100, 40),
	}
	return New(append(base, opts...)...)
}

// send applies msgs in order and returns the model and the last command.
func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		updated, ok := next.(Model)
		require.True(t, ok, "Update must return a tui.Model")
		m = updated
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = send(t, m, tuitest.NewInputSequence().Type(text).Messages()...)
	return m
}

func focusOn(t *testing.T, m Model, index int) Model {
	t.Helper()
	for m.focus != index {
		m, _ = send(t, m, tuitest.KeyTab())
	}
	return m
}

type recordingSink struct {
	err   error
	calls []model.TaxSubmission
}

func (r *recordingSink) Submit(_ context.Context, sub model.TaxSubmission) error {
	r.calls = append(r.calls, sub)
	return r.err
}

func TestNew_InitialState(t *testing.T) {
	m := newTestModel()

	assert.Equal(t, model.ApplySome, m.Scope())
	assert.Empty(t, m.SelectedItems())
	assert.Equal(t, 0, m.focus)
	assert.True(t, m.nameInput.Focused())
	assert.False(t, m.rateInput.Focused())

	view := tuitest.StripANSI(m.View())
	assert.True(t, tuitest.ContainsInOrder(view,
		"Add Tax",
		"Apply to all items in collection",
		"Apply to specific items",
		"Rings",
		"Ring",
		"Band",
		"Uncategorized",
		"Gift Card",
		"Submit",
	), "unexpected layout:\n%s", view)
	assert.Contains(t, view, "(•) Apply to specific items")
	assert.Contains(t, view, "( ) Apply to all items in collection")
	assert.Contains(t, view, "%")
	assert.Contains(t, view, "0 of 3 items selected")
	assert.NotContains(t, view, "Tax name is required", "untouched fields must not show errors")
}

func TestFocusRing(t *testing.T) {
	m := newTestModel()

	targets := m.targets()
	require.Len(t, targets, 11)
	assert.Equal(t, targetCategory, targets[focusRings].kind)
	assert.Equal(t, "Rings", targets[focusRings].label)
	assert.Equal(t, targetItem, targets[focusFirstRing].kind)
	assert.Equal(t, 1, targets[focusFirstRing].itemID)
	assert.Equal(t, "Uncategorized", targets[focusUncategorized].label)
	assert.Equal(t, targetSubmit, targets[focusSubmitSome].kind)

	m, _ = send(t, m, tuitest.KeyShiftTab())
	assert.Equal(t, focusSubmitSome, m.focus, "shift+tab from the first field wraps")

	m, _ = send(t, m, tuitest.KeyDown())
	assert.Equal(t, 0, m.focus, "down from the last stop wraps")

	m, _ = send(t, m, tuitest.KeyEnter())
	assert.Equal(t, 1, m.focus, "enter advances out of a text input")
	assert.False(t, m.nameInput.Focused())
	assert.True(t, m.rateInput.Focused())
}

func TestTouchedErrors(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tuitest.KeyTab())
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tax name is required")
	assert.NotContains(t, view, "Tax rate is required")

	m = typeText(t, m, "abc")
	m, _ = send(t, m, tuitest.KeyTab())
	view = tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tax rate must be a number")

	m = focusOn(t, m, 1)
	m, _ = send(t, m, tuitest.KeyBackspace(), tuitest.KeyBackspace(), tuitest.KeyBackspace())
	m = typeText(t, m, "150")
	view = tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tax rate must be between 0 and 100", "errors follow each keystroke once touched")
	assert.Equal(t, "150", m.Values().Rate)
}

func TestScopeSwitching(t *testing.T) {
	m := newTestModel()

	m = focusOn(t, m, focusScopeAll)
	m, _ = send(t, m, tuitest.KeySpace())

	assert.Equal(t, model.ApplyAll, m.Scope())
	assert.Equal(t, []int{1, 2, 3}, m.SelectedItems())
	assert.Len(t, m.targets(), 6, "item stops are hidden under all")

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "(•) Apply to all items in collection")
	assert.NotContains(t, view, "Gift Card")
	assert.Contains(t, view, "3 of 3 items selected")

	m, _ = send(t, m, tuitest.KeyTab(), tuitest.KeySpace())
	assert.Equal(t, focusScopeSome, m.focus)
	assert.Equal(t, model.ApplySome, m.Scope())
	assert.Empty(t, m.SelectedItems(), "switching to some clears the selection")
}

func TestCategoryToggle(t *testing.T) {
	m := newTestModel()
	m = focusOn(t, m, focusRings)

	m, _ = send(t, m, tuitest.KeySpace())
	assert.Equal(t, []int{1, 2}, m.SelectedItems())
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "[x] Rings")
	assert.Contains(t, view, "[x] Ring")
	assert.Contains(t, view, "[x] Band")

	// Deselect one member; the header is derived and unchecks with it.
	m, _ = send(t, m, tuitest.KeyDown(), tuitest.KeyPress("x"))
	assert.Equal(t, []int{2}, m.SelectedItems())
	view = tuitest.StripANSI(m.View())
	assert.Contains(t, view, "[ ] Rings")

	// Partially selected categories fill up rather than clear.
	m, _ = send(t, m, tuitest.KeyUp(), tuitest.KeyEnter())
	assert.Equal(t, []int{2, 1}, m.SelectedItems())

	m, _ = send(t, m, tuitest.KeySpace())
	assert.Empty(t, m.SelectedItems())
}

func TestItemToggle_OrderPreserved(t *testing.T) {
	m := newTestModel()

	m = focusOn(t, m, focusUncategorized+1)
	m, _ = send(t, m, tuitest.KeySpace())
	m = focusOn(t, m, focusFirstRing)
	m, _ = send(t, m, tuitest.KeySpace())

	assert.Equal(t, []int{3, 1}, m.SelectedItems())
	assert.Contains(t, tuitest.StripANSI(m.View()), "[x] Uncategorized", "a single-item group is fully selected")
}

func TestSubmit_Valid(t *testing.T) {
	rec := &recordingSink{}
	m := newTestModel(WithSink(rec))
	renderer := tuitest.NewTestRenderer()

	m = typeText(t, m, "VAT")
	m, _ = send(t, m, tuitest.KeyTab())
	m = typeText(t, m, "20")

	m, cmd := send(t, m, tuitest.Key(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, m.submitting)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Submitting...")

	next := renderer.Run(m, cmd)
	m, ok := next.(Model)
	require.True(t, ok)

	require.Len(t, rec.calls, 1)
	want := model.TaxSubmission{
		Name:            "VAT",
		Rate:            20,
		AppliedTo:       model.ApplySome,
		ApplicableItems: []int{},
	}
	assert.Equal(t, want, rec.calls[0])

	got, ok := m.LastSubmission()
	require.True(t, ok)
	assert.Equal(t, want, got)
	assert.Equal(t, 1, m.Submitted())
	assert.NoError(t, m.Err())
	assert.Contains(t, renderer.StripANSI(), `Tax "VAT" submitted`)
}

func TestSubmit_WithSelection(t *testing.T) {
	var got []model.TaxSubmission
	capture := sink.Func(func(_ context.Context, sub model.TaxSubmission) error {
		got = append(got, sub)
		return nil
	})
	m := newTestModel(WithSink(capture))

	m = typeText(t, m, "Sales")
	m, _ = send(t, m, tuitest.KeyTab())
	m = typeText(t, m, "7.5")
	m = focusOn(t, m, focusSearch)
	require.True(t, m.searchInput.Focused())
	m = typeText(t, m, "gift")
	assert.Equal(t, "gift", m.Values().Search)
	m = focusOn(t, m, focusRings)
	m, _ = send(t, m, tuitest.KeySpace())
	m = focusOn(t, m, focusSubmitSome)

	m, cmd := send(t, m, tuitest.KeyEnter())
	require.NotNil(t, cmd)
	tuitest.NewTestRenderer().Run(m, cmd)

	require.Len(t, got, 1)
	assert.Equal(t, "Sales", got[0].Name)
	assert.InDelta(t, 7.5, got[0].Rate, 1e-9)
	assert.Equal(t, "gift", got[0].Search)
	assert.Equal(t, []int{1, 2}, got[0].ApplicableItems)
}

func TestSubmit_InvalidRevealsErrors(t *testing.T) {
	rec := &recordingSink{}
	m := newTestModel(WithSink(rec))

	m, cmd := send(t, m, tuitest.Key(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Empty(t, rec.calls)
	assert.False(t, m.submitting)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tax name is required")
	assert.Contains(t, view, "Tax rate is required")
	assert.Contains(t, view, "Fix the highlighted fields before submitting")
}

func TestSubmit_SinkFailure(t *testing.T) {
	rec := &recordingSink{err: errors.New("connection refused")}
	m := newTestModel(WithSink(rec))

	m = typeText(t, m, "VAT")
	m, _ = send(t, m, tuitest.KeyTab())
	m = typeText(t, m, "20")
	m, cmd := send(t, m, tuitest.Key(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	m, _ = send(t, m, tuitest.Collect(cmd)...)

	require.Error(t, m.Err())
	assert.Equal(t, 0, m.Submitted())
	_, ok := m.LastSubmission()
	assert.False(t, ok)
	assert.Contains(t, tuitest.StripANSI(m.View()), "Submission failed: connection refused")
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tuitest.KeyPress("?"))
	assert.False(t, m.help.ShowAll, "? is text while an input has focus")
	assert.Equal(t, "?", m.Values().Name)

	m = focusOn(t, m, focusScopeAll)
	m, _ = send(t, m, tuitest.KeyPress("?"))
	assert.True(t, m.help.ShowAll)

	m, cmd := send(t, m, tuitest.KeyPress("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestEscQuitsFromInput(t *testing.T) {
	m := newTestModel()

	m, cmd := send(t, m, tuitest.KeyEsc())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestWindowResize(t *testing.T) {
	m := newTestModel()

	m, _ = send(t, m, tuitest.WindowSize(120, 50))
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
	assert.Equal(t, 120, m.help.Width)
}

func TestEmptyCatalog(t *testing.T) {
	m := New(WithStaticCursor())

	assert.Len(t, m.targets(), 6)
	assert.Contains(t, tuitest.StripANSI(m.View()), "No items in this collection")
}
