package taxform

import (
	"github.com/Veraticus/taxform/internal/catalog"
	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
)

// Form tracks values, touched fields, and the errors derived from them.
// Errors are recomputed on every change.
type Form struct {
	touched map[Field]bool
	errors  Errors
	values  Values
}

// NewForm returns a form with empty values and nothing touched.
func NewForm() Form {
	return NewFormWithValues(Values{})
}

// NewFormWithValues returns an untouched form seeded with values.
func NewFormWithValues(v Values) Form {
	return Form{
		values:  v,
		touched: make(map[Field]bool),
		errors:  Validate(v),
	}
}

// Values returns the current values.
func (f Form) Values() Values {
	return f.values
}

// Set updates one field and revalidates.
func (f *Form) Set(field Field, value string) {
	f.values = f.values.Set(field, value)
	f.errors = Validate(f.values)
}

// Touch marks field as interacted with.
func (f *Form) Touch(field Field) {
	if f.touched == nil {
		f.touched = make(map[Field]bool)
	}
	f.touched[field] = true
}

// TouchAll marks every field as touched, as a submit attempt does.
func (f *Form) TouchAll() {
	for _, field := range Fields {
		f.Touch(field)
	}
}

// Touched reports whether field has been interacted with.
func (f Form) Touched(field Field) bool {
	return f.touched[field]
}

// Errors returns all current errors, touched or not.
func (f Form) Errors() Errors {
	return f.errors
}

// VisibleError returns the error for field only once it has been touched.
func (f Form) VisibleError(field Field) *common.FieldError {
	if !f.Touched(field) {
		return nil
	}
	return f.errors.Get(field)
}

// CanSubmit reports whether every rule passes.
func (f Form) CanSubmit() bool {
	return f.errors.Empty()
}

// Submit touches every field and, when valid, assembles the payload.
// A blocked submit returns a *common.ValidationError.
func (f *Form) Submit(state catalog.ScopeState) (model.TaxSubmission, error) {
	f.TouchAll()
	if !f.CanSubmit() {
		return model.TaxSubmission{}, &common.ValidationError{Fields: f.errors.Ordered()}
	}
	return BuildSubmission(f.values, state)
}

// BuildSubmission assembles the payload from values and the scope state.
func BuildSubmission(v Values, state catalog.ScopeState) (model.TaxSubmission, error) {
	if errs := Validate(v); !errs.Empty() {
		return model.TaxSubmission{}, &common.ValidationError{Fields: errs.Ordered()}
	}

	rate, _ := ParseRate(v.Rate)
	return model.TaxSubmission{
		Name:            v.Name,
		Rate:            rate,
		Search:          v.Search,
		AppliedTo:       state.Scope,
		ApplicableItems: state.Selection.IDs(),
	}, nil
}
