package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/taxform"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Labels shown on the form.
const (
	titleText      = "Add Tax"
	scopeAllLabel  = "Apply to all items in collection"
	scopeSomeLabel = "Apply to specific items"
	submitLabel    = "Submit"

	blockedStatus    = "Fix the highlighted fields before submitting"
	submittingStatus = "Submitting..."
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	current := m.current()
	sections := []string{
		m.theme.Title.Render(titleText),
		m.renderFields(),
		"",
		m.renderScope(current),
		m.theme.Divider.Render(strings.Repeat("─", m.contentWidth())),
		m.renderInput(&m.searchInput, current.kind == targetSearch, ""),
	}

	if m.scope.ItemsSelectable() {
		// Grouping is derived on every render so it never drifts from the catalog.
		sections = append(sections, "", m.renderCategories(catalog.GroupByCategory(m.items), current))
	}

	sections = append(sections,
		"",
		m.renderSelectionSummary(),
		"",
		m.renderSubmit(current.kind == targetSubmit),
	)

	if status := m.renderStatus(); status != "" {
		sections = append(sections, "", status)
	}

	if m.showHelp {
		sections = append(sections, "", m.help.View(m.keymap))
	}

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderFields renders the name and rate inputs side by side.
func (m Model) renderFields() string {
	current := m.current()

	name := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Tax name"),
		m.renderInput(&m.nameInput, current.kind == targetName, ""),
		m.renderFieldError(taxform.FieldName),
	)

	rate := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Label.Render("Rate"),
		m.renderInput(&m.rateInput, current.kind == targetRate, "%"),
		m.renderFieldError(taxform.FieldRate),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, name, "   ", rate)
}

// renderInput draws a text input box with an optional trailing adornment.
func (m Model) renderInput(in *textinput.Model, focused bool, adornment string) string {
	content := in.View()
	if adornment != "" {
		content += " " + m.theme.Adornment.Render(adornment)
	}

	style := m.theme.Input
	if focused {
		style = m.theme.InputFocused
	}
	return style.Render(content)
}

// renderFieldError renders the error for field once it has been touched.
func (m Model) renderFieldError(field taxform.Field) string {
	if err := m.form.VisibleError(field); err != nil {
		return m.theme.FieldError.Render(err.Message)
	}
	return ""
}

func (m Model) renderScope(current target) string {
	all := m.renderChoice(radio(m.scope.Scope == model.ApplyAll), scopeAllLabel, current.kind == targetScopeAll)
	some := m.renderChoice(radio(m.scope.Scope == model.ApplySome), scopeSomeLabel, current.kind == targetScopeSome)
	return lipgloss.JoinVertical(lipgloss.Left, all, some)
}

// renderCategories renders each category header followed by its items. The
// header is checked only while every item under it is selected.
func (m Model) renderCategories(groups catalog.Groups, current target) string {
	if groups.Len() == 0 {
		return m.theme.StatusPending.Render("No items in this collection")
	}

	var lines []string
	groups.Each(func(g catalog.Group) {
		header := target{kind: targetCategory, label: g.Label}
		checked := m.scope.Selection.IsCategorySelected(groups, g.Label)
		lines = append(lines, m.renderCategoryHeader(checkbox(checked), g.Label, current == header))

		for _, item := range g.Items {
			row := target{kind: targetItem, label: item.Name, itemID: item.ID}
			lines = append(lines, "    "+m.renderChoice(checkbox(m.scope.Selection.Has(item.ID)), item.Name, current == row))
		}
	})

	return strings.Join(lines, "\n")
}

func (m Model) renderCategoryHeader(box, label string, focused bool) string {
	text := box + " " + label
	if focused {
		return m.focusMarker(true) + m.theme.CategoryHeader.Inherit(m.theme.Focused).Render(text)
	}
	return m.focusMarker(false) + m.theme.CategoryHeader.Render(text)
}

func (m Model) renderChoice(box, label string, focused bool) string {
	text := box + " " + label
	if focused {
		return m.focusMarker(true) + m.theme.Focused.Render(text)
	}
	return m.focusMarker(false) + m.theme.Normal.Render(text)
}

func (m Model) focusMarker(focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render("> ")
	}
	return "  "
}

func (m Model) renderSelectionSummary() string {
	return m.theme.Label.Render(fmt.Sprintf("%d of %d items selected", m.scope.Selection.Len(), len(m.items)))
}

func (m Model) renderSubmit(focused bool) string {
	if focused {
		return m.focusMarker(true) + m.theme.ButtonFocused.Render(submitLabel)
	}
	return m.focusMarker(false) + m.theme.Button.Render(submitLabel)
}

func (m Model) renderStatus() string {
	switch {
	case m.lastError != nil:
		return m.theme.StatusError.Render("Submission failed: " + m.lastError.Error())
	case m.submitting:
		return m.theme.StatusPending.Render(m.statusMsg)
	case m.statusMsg == blockedStatus:
		return m.theme.StatusError.Render(m.statusMsg)
	case m.statusMsg != "":
		return m.theme.StatusSuccess.Render(m.statusMsg)
	default:
		return ""
	}
}

func checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}

func radio(selected bool) string {
	if selected {
		return "(•)"
	}
	return "( )"
}
