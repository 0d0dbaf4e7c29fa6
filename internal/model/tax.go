package model

import (
	"encoding/json"
	"fmt"
)

// ApplyScope indicates which catalog items a tax applies to.
type ApplyScope string

const (
	// ApplyAll applies the tax to every item in the collection.
	ApplyAll ApplyScope = "all"
	// ApplySome applies the tax to a manually selected subset of items.
	ApplySome ApplyScope = "some"
)

// DefaultApplyScope is the scope a new form starts with.
const DefaultApplyScope = ApplySome

// String returns the wire value of the scope.
func (s ApplyScope) String() string {
	return string(s)
}

// Valid reports whether s is a known scope.
func (s ApplyScope) Valid() bool {
	return s == ApplyAll || s == ApplySome
}

// ParseApplyScope converts a string into an ApplyScope.
func ParseApplyScope(s string) (ApplyScope, error) {
	scope := ApplyScope(s)
	if !scope.Valid() {
		return "", fmt.Errorf("invalid apply scope %q: must be %q or %q", s, ApplyAll, ApplySome)
	}
	return scope, nil
}

// TaxSubmission is the payload handed to the submission sink once the form validates.
type TaxSubmission struct {
	Name            string     `json:"name"`
	Search          string     `json:"search"`
	AppliedTo       ApplyScope `json:"applied_to"`
	ApplicableItems []int      `json:"applicable_items"`
	Rate            float64    `json:"rate"`
}

// MarshalJSON keeps applicable_items an array even when nothing is selected.
func (t TaxSubmission) MarshalJSON() ([]byte, error) {
	type alias TaxSubmission
	a := alias(t)
	if a.ApplicableItems == nil {
		a.ApplicableItems = []int{}
	}
	return json.Marshal(a)
}
