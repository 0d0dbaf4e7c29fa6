// Package taxform holds the Add Tax form values, their validation rules, and
// the touched-field bookkeeping that decides when errors are shown.
package taxform

import (
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/taxform/internal/common"
)

// Field identifies a form field.
type Field string

// Form fields in display order.
const (
	FieldName   Field = "name"
	FieldRate   Field = "rate"
	FieldSearch Field = "search"
)

// Fields lists every field in display order.
var Fields = []Field{FieldName, FieldRate, FieldSearch}

// Rate bounds, inclusive.
const (
	MinRate = 0
	MaxRate = 100
)

// Error messages shown beneath fields.
const (
	MsgNameRequired = "Tax name is required"
	MsgRateRequired = "Tax rate is required"
	MsgRateNumeric  = "Tax rate must be a number"
	MsgRateRange    = "Tax rate must be between 0 and 100"
)

// Values are the raw text inputs of the form.
type Values struct {
	Name   string
	Rate   string
	Search string
}

// Get returns the raw value of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldName:
		return v.Name
	case FieldRate:
		return v.Rate
	case FieldSearch:
		return v.Search
	default:
		return ""
	}
}

// Set returns a copy of v with field replaced.
func (v Values) Set(field Field, value string) Values {
	switch field {
	case FieldName:
		v.Name = value
	case FieldRate:
		v.Rate = value
	case FieldSearch:
		v.Search = value
	}
	return v
}

// Errors maps fields to their current validation failure.
type Errors map[Field]*common.FieldError

// Has reports whether field failed validation.
func (e Errors) Has(field Field) bool {
	_, ok := e[field]
	return ok
}

// Get returns the error for field, or nil.
func (e Errors) Get(field Field) *common.FieldError {
	return e[field]
}

// Empty reports whether every rule passed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Ordered returns the errors in field display order.
func (e Errors) Ordered() []*common.FieldError {
	var out []*common.FieldError
	for _, f := range Fields {
		if err, ok := e[f]; ok {
			out = append(out, err)
		}
	}
	return out
}

// Validate runs every rule independently and collects all failures.
func Validate(v Values) Errors {
	errs := make(Errors)
	if err := validateName(v.Name); err != nil {
		errs[FieldName] = err
	}
	if _, err := ParseRate(v.Rate); err != nil {
		errs[FieldRate] = err
	}
	return errs
}

func validateName(name string) *common.FieldError {
	if strings.TrimSpace(name) == "" {
		return common.NewFieldError(string(FieldName), MsgNameRequired, common.ErrMissingRequiredField)
	}
	return nil
}

// ParseRate parses a rate input and checks it lies within [MinRate, MaxRate].
func ParseRate(raw string) (float64, *common.FieldError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, common.NewFieldError(string(FieldRate), MsgRateRequired, common.ErrMissingRequiredField)
	}

	if !isDecimal(raw) {
		return 0, common.NewFieldError(string(FieldRate), MsgRateNumeric, common.ErrNonNumericValue)
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, common.NewFieldError(string(FieldRate), MsgRateNumeric, common.ErrNonNumericValue)
	}
	if rate == 0 {
		rate = 0 // drop the sign of -0
	}

	if rate < MinRate || rate > MaxRate {
		return 0, common.NewFieldError(string(FieldRate), MsgRateRange, common.ErrOutOfRangeValue)
	}

	return rate, nil
}

// isDecimal rejects the Go-only spellings ParseFloat accepts, such as digit
// separators ("1_0") and hex floats ("0x1p4").
func isDecimal(raw string) bool {
	if strings.ContainsRune(raw, '_') {
		return false
	}
	unsigned := strings.TrimLeft(raw, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
