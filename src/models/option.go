package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidOption is returned when an option is neither a scalar nor a {value, label} pair.
var ErrInvalidOption = errors.New("option must be a string, number, boolean or {value, label} object")

// Option ตัวเลือกของ radio/select
//
// An option is either a bare scalar or a labeled pair. Either way answers are
// compared against Value(). Values are normalized to string, float64 or bool.
type Option struct {
	value   any
	label   string
	labeled bool
}

// Bare builds an option whose value is also its display text.
func Bare(v any) Option {
	if n, ok := NormalizeScalar(v); ok {
		v = n
	}
	return Option{value: v}
}

// Labeled builds an option with separate value and display label.
func Labeled(v any, label string) Option {
	o := Bare(v)
	o.label = label
	o.labeled = true
	return o
}

func (o Option) Value() any      { return o.value }
func (o Option) IsLabeled() bool { return o.labeled }

// Label returns the display text, falling back to the value's string form.
func (o Option) Label() string {
	if o.labeled && o.label != "" {
		return o.label
	}
	return ScalarKey(o.value)
}

// Key is the string form of the value; conditional branches are keyed by it.
func (o Option) Key() string {
	return ScalarKey(o.value)
}

// Matches reports whether an answer value selects this option.
func (o Option) Matches(answer any) bool {
	return ScalarEqual(o.value, answer)
}

func (o Option) Equal(p Option) bool {
	return o.labeled == p.labeled && o.label == p.label && ScalarEqual(o.value, p.value)
}

// ParseOption converts a decoded JSON value into an Option.
func ParseOption(raw any) (Option, error) {
	switch v := raw.(type) {
	case map[string]any:
		value, ok := v["value"]
		if !ok {
			return Option{}, ErrInvalidOption
		}
		scalar, ok := NormalizeScalar(value)
		if !ok {
			return Option{}, ErrInvalidOption
		}
		label := ""
		switch l := v["label"].(type) {
		case nil:
		case string:
			label = l
		default:
			if s, ok := NormalizeScalar(l); ok {
				label = ScalarKey(s)
			}
		}
		return Labeled(scalar, label), nil
	default:
		scalar, ok := NormalizeScalar(v)
		if !ok {
			return Option{}, ErrInvalidOption
		}
		return Bare(scalar), nil
	}
}

type labeledOption struct {
	Value any    `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
}

func (o Option) MarshalJSON() ([]byte, error) {
	if o.labeled {
		return json.Marshal(labeledOption{Value: o.value, Label: o.label})
	}
	return json.Marshal(o.value)
}

func (o *Option) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseOption(raw)
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

func (o Option) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if o.labeled {
		return bson.MarshalValue(bson.D{
			{Key: "value", Value: o.value},
			{Key: "label", Value: o.label},
		})
	}
	return bson.MarshalValue(o.value)
}

func (o *Option) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	if t == bsontype.EmbeddedDocument {
		var doc labeledOption
		if err := rv.Unmarshal(&doc); err != nil {
			return err
		}
		value, ok := NormalizeScalar(doc.Value)
		if !ok {
			return ErrInvalidOption
		}
		*o = Labeled(value, doc.Label)
		return nil
	}
	var v any
	if err := rv.Unmarshal(&v); err != nil {
		return err
	}
	value, ok := NormalizeScalar(v)
	if !ok {
		return ErrInvalidOption
	}
	*o = Bare(value)
	return nil
}

// NormalizeScalar maps the numeric types produced by the JSON and BSON
// decoders onto float64. Strings and booleans pass through. Anything else,
// including NaN and infinities, is not a scalar.
func NormalizeScalar(v any) (any, bool) {
	switch n := v.(type) {
	case string, bool:
		return n, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return nil, false
		}
		return n, true
	case float32:
		return NormalizeScalar(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return nil, false
		}
		return NormalizeScalar(f)
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return nil, false
		}
		return NormalizeScalar(f)
	}
	return nil, false
}

// ScalarKey renders a scalar the way it appears as an object key on the wire.
func ScalarKey(v any) string {
	n, ok := NormalizeScalar(v)
	if !ok {
		if v == nil {
			return ""
		}
		return fmt.Sprint(v)
	}
	switch s := n.(type) {
	case string:
		return s
	case bool:
		return strconv.FormatBool(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	}
	return fmt.Sprint(n)
}

// ScalarEqual is strict equality on normalized scalars: "1" and 1 differ.
// Non-scalar values never compare equal.
func ScalarEqual(a, b any) bool {
	na, ok := NormalizeScalar(a)
	if !ok {
		return false
	}
	nb, ok := NormalizeScalar(b)
	if !ok {
		return false
	}
	return na == nb
}
