package validation

import "strings"

// Code classifies an answer problem.
type Code string

const (
	CodeRequired      Code = "required"
	CodeType          Code = "type"
	CodeMinLength     Code = "minLength"
	CodeMaxLength     Code = "maxLength"
	CodePattern       Code = "pattern"
	CodeMin           Code = "min"
	CodeMax           Code = "max"
	CodeEmail         Code = "email"
	CodeDate          Code = "date"
	CodeOption        Code = "option"
	CodeFile          Code = "file"
	CodeConfiguration Code = "configuration"
)

// Error ปัญหาของคำตอบหนึ่งข้อ
type Error struct {
	Field   string `json:"field"`
	Label   string `json:"label"`
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string { return e.Message }

// Errors is the complete list of problems found in one validation pass.
type Errors []Error

func (errs Errors) Error() string {
	return strings.Join(errs.Messages(), "; ")
}

// Messages returns the human readable messages in order.
func (errs Errors) Messages() []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Message
	}
	return out
}

// Err returns nil when there are no errors.
func (errs Errors) Err() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Configuration reports whether any error comes from a broken field definition
// rather than from the respondent.
func (errs Errors) Configuration() bool {
	for _, e := range errs {
		if e.Code == CodeConfiguration {
			return true
		}
	}
	return false
}
