package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError names one rejected field and the reason.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError is returned when input does not satisfy an entity's shape.
// It is always produced before any store interaction.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field ValidationError.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report json/form names rather than Go field names
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
	})
	return validate
}

// Validate checks a struct against its `validate` tags.
func Validate(s any) error {
	err := validatorInstance().Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Reason: reason(fe.Tag(), fe.Param())})
	}
	return out
}

// checkVar validates a single value, appending to errs on failure.
func checkVar(errs *[]FieldError, field string, value any, tag string) {
	err := validatorInstance().Var(value, tag)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		*errs = append(*errs, FieldError{Field: field, Reason: reason(verrs[0].Tag(), verrs[0].Param())})
		return
	}
	*errs = append(*errs, FieldError{Field: field, Reason: err.Error()})
}

func reason(tag, param string) string {
	switch tag {
	case "required":
		return "field required"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "email":
		return "must be a valid email address"
	case "min", "gte":
		return "must be >= " + param
	case "max", "lte":
		return "must be <= " + param
	default:
		return fmt.Sprintf("failed %q check", tag)
	}
}

// requiredField records a present value for a non-nullable field. An explicit
// null is rejected; an empty value is rejected too.
func requiredField[T any](p *Patch, errs *[]FieldError, field string, o Optional[T], tag string) {
	if !o.Set {
		return
	}
	if o.Null {
		*errs = append(*errs, FieldError{Field: field, Reason: "may not be null"})
		return
	}
	if tag == "" {
		tag = "required"
	} else {
		tag = "required," + tag
	}
	before := len(*errs)
	checkVar(errs, field, o.Value, tag)
	if len(*errs) == before {
		p.Set[field] = o.Value
	}
}

// nullableField records a present value for an optional field; null clears it.
func nullableField(p *Patch, field string, o Optional[string]) {
	switch {
	case !o.Set:
	case o.Null:
		p.Unset = append(p.Unset, field)
	default:
		p.Set[field] = o.Value
	}
}

func finish(p Patch, errs []FieldError) (Patch, error) {
	if len(errs) > 0 {
		return Patch{}, &ValidationError{Fields: errs}
	}
	return p, nil
}
