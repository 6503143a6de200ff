package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"Backend-FormFlow/src/models"
)

// Error is a structural authoring problem. Building stops at the first one.
type Error struct {
	Path    string
	Message string
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// IsSchemaError reports whether err is (or wraps) a *Error.
func IsSchemaError(err error) bool {
	var se *Error
	return errors.As(err, &se)
}

// Options tunes the builder.
type Options struct {
	// MaxDepth is how many levels of conditional fields may carry children.
	// Zero means the default of one.
	MaxDepth int
	// CleanText, when set, is applied to every label before it is used.
	CleanText func(string) string
}

// DefaultOptions allows one level of conditional nesting.
func DefaultOptions() Options {
	return Options{MaxDepth: 1}
}

// Build turns the author's raw JSON field array into a canonical field list.
// It never touches persisted state.
func Build(raw []byte, opts Options) ([]models.FieldSpec, error) {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil || items == nil {
		return nil, &Error{Path: "fields", Message: "fields must be an array"}
	}
	return BuildFields(items, opts)
}

// BuildFields is Build over an already decoded array.
func BuildFields(items []any, opts Options) ([]models.FieldSpec, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}
	b := builder{opts: opts}
	return b.list(items, "fields", 0)
}

type builder struct {
	opts Options
}

func (b builder) list(items []any, path string, depth int) ([]models.FieldSpec, error) {
	fields := make([]models.FieldSpec, 0, len(items))
	for i, item := range items {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &Error{Path: itemPath, Message: "field must be an object"}
		}
		f, err := b.field(obj, itemPath, depth)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Order < fields[j].Order
	})

	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			return nil, &Error{Path: path, Message: fmt.Sprintf("duplicate field name %q", f.Name)}
		}
		seen[f.Name] = struct{}{}
	}
	return fields, nil
}

func (b builder) field(obj map[string]any, path string, depth int) (models.FieldSpec, error) {
	var f models.FieldSpec

	label, ok := obj["label"].(string)
	if !ok && obj["label"] != nil {
		return f, &Error{Path: path + ".label", Message: "label must be a string"}
	}
	if b.opts.CleanText != nil {
		label = b.opts.CleanText(label)
	}
	f.Label = strings.TrimSpace(label)
	if f.Label == "" {
		return f, &Error{Path: path + ".label", Message: "field label is required"}
	}

	typeName, _ := obj["type"].(string)
	ft, ok := models.ParseFieldType(typeName)
	if !ok {
		return f, &Error{Path: path + ".type", Message: fmt.Sprintf("invalid field type %q", typeName)}
	}
	f.Type = ft

	if name, ok := obj["name"].(string); ok && IsValidName(name) {
		f.Name = canonicalName(name)
	} else {
		f.Name = Normalize(f.Label)
	}

	switch v := obj["required"].(type) {
	case nil:
	case bool:
		f.Required = v
	default:
		return f, &Error{Path: path + ".required", Message: "required must be a boolean"}
	}

	order, err := nonNegativeInt(obj["order"])
	if err != nil {
		return f, &Error{Path: path + ".order", Message: "order must be a non-negative integer"}
	}
	if order != nil {
		f.Order = *order
	}

	f.Options = []models.Option{}
	if rawOptions, ok := obj["options"].([]any); ok {
		for i, raw := range rawOptions {
			opt, err := models.ParseOption(raw)
			if err != nil {
				return f, &Error{Path: fmt.Sprintf("%s.options[%d]", path, i), Message: err.Error()}
			}
			f.Options = append(f.Options, opt)
		}
	}

	if f.Validation, err = buildValidation(obj["validation"]); err != nil {
		var se *Error
		if errors.As(err, &se) {
			se.Path = path + ".validation." + se.Path
		}
		return f, err
	}

	f.ConditionalFields = map[string][]models.FieldSpec{}
	rawBranches, _ := obj["conditionalFields"].(map[string]any)
	keys := make([]string, 0, len(rawBranches))
	for key := range rawBranches {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		items, ok := rawBranches[key].([]any)
		if !ok {
			continue
		}
		branchPath := fmt.Sprintf("%s.conditionalFields[%q]", path, key)
		if len(items) > 0 {
			if !f.Type.IsChoice() {
				return f, &Error{Path: branchPath, Message: "conditional fields are only allowed on radio and select fields"}
			}
			if depth >= b.opts.MaxDepth {
				return f, &Error{Path: branchPath, Message: fmt.Sprintf("conditional fields may only be nested %d level(s) deep", b.opts.MaxDepth)}
			}
		}
		nested, err := b.list(items, branchPath, depth+1)
		if err != nil {
			return f, err
		}
		f.ConditionalFields[key] = nested
	}

	return f, nil
}

func buildValidation(raw any) (models.Validation, error) {
	var v models.Validation
	obj, ok := raw.(map[string]any)
	if !ok {
		return v, nil
	}

	var err error
	if v.Min, err = number(obj["min"]); err != nil {
		return v, &Error{Path: "min", Message: "min must be a number"}
	}
	if v.Max, err = number(obj["max"]); err != nil {
		return v, &Error{Path: "max", Message: "max must be a number"}
	}
	if v.MinLength, err = nonNegativeInt(obj["minLength"]); err != nil {
		return v, &Error{Path: "minLength", Message: "minLength must be a non-negative integer"}
	}
	if v.MaxLength, err = nonNegativeInt(obj["maxLength"]); err != nil {
		return v, &Error{Path: "maxLength", Message: "maxLength must be a non-negative integer"}
	}

	switch re := obj["regex"].(type) {
	case nil:
	case string:
		if _, err := regexp.Compile(re); err != nil {
			return v, &Error{Path: "regex", Message: "regex is not a supported pattern: " + err.Error()}
		}
		v.Regex = re
	default:
		return v, &Error{Path: "regex", Message: "regex must be a string"}
	}
	return v, nil
}

var errNotNumber = errors.New("not a number")

// number accepts JSON numbers and numeric strings. Null and "" mean unset.
func number(raw any) (*float64, error) {
	var f float64
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case float64:
		f = v
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil, nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errNotNumber
		}
		f = parsed
	default:
		return nil, errNotNumber
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, errNotNumber
	}
	return &f, nil
}

func nonNegativeInt(raw any) (*int, error) {
	f, err := number(raw)
	if err != nil || f == nil {
		return nil, err
	}
	if *f < 0 || *f != math.Trunc(*f) || *f > math.MaxInt32 {
		return nil, errNotNumber
	}
	n := int(*f)
	return &n, nil
}
