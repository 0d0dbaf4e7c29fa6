package tui

import (
	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/taxform"
)

// targetKind identifies what a focus stop controls.
type targetKind int

const (
	targetName targetKind = iota
	targetRate
	targetScopeAll
	targetScopeSome
	targetSearch
	targetCategory
	targetItem
	targetSubmit
)

// target is one stop in the focus ring.
type target struct {
	label  string
	kind   targetKind
	itemID int
}

// isText reports whether the target is a text input.
func (t target) isText() bool {
	return t.kind == targetName || t.kind == targetRate || t.kind == targetSearch
}

// field returns the form field behind a text target.
func (t target) field() taxform.Field {
	switch t.kind {
	case targetRate:
		return taxform.FieldRate
	case targetSearch:
		return taxform.FieldSearch
	default:
		return taxform.FieldName
	}
}

// focusTargets lists the focus ring for the current scope. Category and item
// stops only exist while specific items can be chosen.
func focusTargets(groups catalog.Groups, itemsSelectable bool) []target {
	targets := []target{
		{kind: targetName},
		{kind: targetRate},
		{kind: targetScopeAll},
		{kind: targetScopeSome},
		{kind: targetSearch},
	}

	if itemsSelectable {
		groups.Each(func(g catalog.Group) {
			targets = append(targets, target{kind: targetCategory, label: g.Label})
			for _, item := range g.Items {
				targets = append(targets, target{kind: targetItem, label: item.Name, itemID: item.ID})
			}
		})
	}

	return append(targets, target{kind: targetSubmit})
}
