package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"Backend-FormFlow/src/models"

	"github.com/go-playground/validator/v10"
)

type problem struct {
	code   Code
	suffix string
}

// checker runs the type-specific rule for a non-empty (or required file) value.
type checker func(f models.FieldSpec, value any) []problem

// checkers must have an entry for every models.AllFieldTypes member.
var checkers = map[models.FieldType]checker{
	models.FieldText:     checkText,
	models.FieldTextarea: checkText,
	models.FieldNumber:   checkNumber,
	models.FieldEmail:    checkEmail,
	models.FieldDate:     checkDate,
	models.FieldCheckbox: checkCheckbox,
	models.FieldRadio:    checkChoice,
	models.FieldSelect:   checkChoice,
	models.FieldFile:     checkFile,
}

var (
	validate = validator.New()
	patterns sync.Map // pattern string -> *regexp.Regexp or error
)

func compile(pattern string) (*regexp.Regexp, error) {
	if cached, ok := patterns.Load(pattern); ok {
		if re, ok := cached.(*regexp.Regexp); ok {
			return re, nil
		}
		return nil, cached.(error)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		patterns.Store(pattern, err)
		return nil, err
	}
	patterns.Store(pattern, re)
	return re, nil
}

func checkText(f models.FieldSpec, value any) []problem {
	s, ok := value.(string)
	if !ok {
		return []problem{{CodeType, "must be a string"}}
	}

	var out []problem
	length := utf8.RuneCountInString(s)
	if n := f.Validation.MinLength; n != nil && *n > 0 && length < *n {
		out = append(out, problem{CodeMinLength, "must be at least " + strconv.Itoa(*n) + " characters"})
	}
	if n := f.Validation.MaxLength; n != nil && *n > 0 && length > *n {
		out = append(out, problem{CodeMaxLength, "must be at most " + strconv.Itoa(*n) + " characters"})
	}
	if f.Validation.Regex != "" {
		// unanchored; the builder rejects bad patterns, anything left fails the answer
		re, err := compile(f.Validation.Regex)
		if err != nil || !re.MatchString(s) {
			out = append(out, problem{CodePattern, "format is invalid"})
		}
	}
	return out
}

// toNumber accepts JSON numbers and numeric strings. Booleans, NaN and infinities are rejected.
func toNumber(value any) (float64, bool) {
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}
	if _, isBool := value.(bool); isBool {
		return 0, false
	}
	n, ok := models.NormalizeScalar(value)
	if !ok {
		return 0, false
	}
	f, ok := n.(float64)
	return f, ok
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func checkNumber(f models.FieldSpec, value any) []problem {
	n, ok := toNumber(value)
	if !ok {
		return []problem{{CodeType, "must be a valid number"}}
	}
	var out []problem
	if lo := f.Validation.Min; lo != nil && n < *lo {
		out = append(out, problem{CodeMin, "must be at least " + formatNumber(*lo)})
	}
	if hi := f.Validation.Max; hi != nil && n > *hi {
		out = append(out, problem{CodeMax, "must be at most " + formatNumber(*hi)})
	}
	return out
}

func checkEmail(_ models.FieldSpec, value any) []problem {
	s, ok := value.(string)
	if !ok || validate.Var(s, "required,email") != nil {
		return []problem{{CodeEmail, "must be a valid email address"}}
	}
	return nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.ANSIC,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// maxEpochMillis is the largest timestamp a JavaScript Date can hold.
const maxEpochMillis = 8.64e15

func parseDate(value any) bool {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		for _, layout := range dateLayouts {
			if _, err := time.Parse(layout, s); err == nil {
				return true
			}
		}
		return false
	case bool:
		return false
	}
	n, ok := models.NormalizeScalar(value)
	if !ok {
		return false
	}
	ms, ok := n.(float64)
	return ok && math.Abs(ms) <= maxEpochMillis
}

func checkDate(_ models.FieldSpec, value any) []problem {
	if !parseDate(value) {
		return []problem{{CodeDate, "must be a valid date"}}
	}
	return nil
}

func checkCheckbox(_ models.FieldSpec, value any) []problem {
	if _, ok := value.(bool); !ok {
		return []problem{{CodeType, "must be a boolean"}}
	}
	return nil
}

func checkChoice(f models.FieldSpec, value any) []problem {
	if len(f.Options) == 0 {
		return []problem{{CodeConfiguration, "has no valid options"}}
	}
	for _, opt := range f.Options {
		if opt.Matches(value) {
			return nil
		}
	}
	return []problem{{CodeOption, "must be one of the provided options"}}
}

// checkFile also owns the required rule for files: an empty or blank
// reference on a required file field is reported as "is required".
func checkFile(f models.FieldSpec, value any) []problem {
	s, isString := value.(string)
	blank := !isString || strings.TrimSpace(s) == ""
	if f.Required {
		if blank {
			return []problem{{CodeRequired, "is required"}}
		}
		return nil
	}
	if !isEmpty(value) && blank {
		return []problem{{CodeFile, "must be a valid file path"}}
	}
	return nil
}
