package catalog

import "github.com/Veraticus/taxform/internal/model"

// ScopeState couples the apply scope with the item selection it governs.
type ScopeState struct {
	Selection Selection
	Scope     model.ApplyScope
}

// NewScopeState returns the initial state: specific items, nothing selected.
func NewScopeState() ScopeState {
	return ScopeState{Scope: model.DefaultApplyScope}
}

// SwitchScope moves to scope. Switching to all selects every catalog item;
// switching to some discards the current selection.
func (s *ScopeState) SwitchScope(scope model.ApplyScope, items []model.Item) {
	s.Scope = scope
	switch scope {
	case model.ApplyAll:
		s.Selection.SelectAll(items)
	default:
		s.Selection.Clear()
	}
}

// ItemsSelectable reports whether individual item rows should be offered.
func (s ScopeState) ItemsSelectable() bool {
	return s.Scope == model.ApplySome
}
