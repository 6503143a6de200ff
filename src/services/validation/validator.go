// Package validation checks respondent answers against a field list.
//
// Validate is pure: the same fields and answers always give the same errors,
// and nothing outside the arguments is read or written.
package validation

import (
	"Backend-FormFlow/src/models"
)

// Validate checks answers against fields and returns every problem found.
// An empty result means the answers are accepted.
//
// Fields are visited in list order. When a radio/select answer selects an
// option with conditional fields, those children are checked right after
// their parent under the name "<parent>_<child>". Unselected branches are
// never checked.
func Validate(fields []models.FieldSpec, answers []models.Answer) Errors {
	values := make(map[string]any, len(answers))
	for _, a := range answers {
		values[a.Name] = a.Value
	}

	v := &pass{values: values}
	for _, f := range fields {
		v.field(f, f.Name)
	}
	return v.errs
}

// ValidateForm validates against a form or snapshot's field list.
func ValidateForm(form models.FormSnapshot, answers []models.Answer) Errors {
	return Validate(form.Fields, answers)
}

type pass struct {
	values map[string]any
	errs   Errors
}

func (p *pass) add(f models.FieldSpec, name string, code Code, suffix string) {
	p.errs = append(p.errs, Error{
		Field:   name,
		Label:   f.Label,
		Code:    code,
		Message: f.Label + " " + suffix,
	})
}

func (p *pass) field(f models.FieldSpec, name string) {
	value, present := p.values[name]
	empty := !present || isEmpty(value)

	switch {
	case f.Required && empty && f.Type != models.FieldFile:
		p.add(f, name, CodeRequired, "is required")
		return
	case !f.Required && empty:
		return
	}

	check, ok := checkers[f.Type]
	if !ok {
		p.add(f, name, CodeConfiguration, "has an unsupported field type")
		return
	}
	for _, problem := range check(f, value) {
		p.add(f, name, problem.code, problem.suffix)
	}

	if f.Type.IsChoice() && !empty {
		p.branch(f, name, value)
	}
}

func (p *pass) branch(f models.FieldSpec, name string, value any) {
	if len(f.ConditionalFields) == 0 {
		return
	}
	if _, ok := models.NormalizeScalar(value); !ok {
		return
	}
	for _, child := range f.ConditionalFields[models.ScalarKey(value)] {
		p.field(child, models.NestedName(name, child.Name))
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
