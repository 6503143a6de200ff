package models

// FieldType ชนิดของฟิลด์ในฟอร์ม (ชุดปิด)
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldEmail    FieldType = "email"
	FieldDate     FieldType = "date"
	FieldCheckbox FieldType = "checkbox"
	FieldRadio    FieldType = "radio"
	FieldSelect   FieldType = "select"
	FieldFile     FieldType = "file"
)

// AllFieldTypes lists every supported field type in declaration order.
var AllFieldTypes = []FieldType{
	FieldText, FieldTextarea, FieldNumber, FieldEmail, FieldDate,
	FieldCheckbox, FieldRadio, FieldSelect, FieldFile,
}

// ParseFieldType returns the FieldType named by s, or false when s is not one of AllFieldTypes.
func ParseFieldType(s string) (FieldType, bool) {
	for _, t := range AllFieldTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// IsChoice reports whether answers are picked from Options (radio, select).
func (t FieldType) IsChoice() bool {
	return t == FieldRadio || t == FieldSelect
}

// Validation ข้อจำกัดเพิ่มเติมของฟิลด์ ใช้เฉพาะค่าที่เกี่ยวกับชนิดของฟิลด์
type Validation struct {
	Min       *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max       *float64 `json:"max,omitempty" bson:"max,omitempty"`
	MinLength *int     `json:"minLength,omitempty" bson:"minLength,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty" bson:"maxLength,omitempty"`
	Regex     string   `json:"regex,omitempty" bson:"regex,omitempty"`
}

// FieldSpec คำอธิบายฟิลด์หนึ่งฟิลด์ รวมฟิลด์ย่อยแบบมีเงื่อนไข
//
// ConditionalFields maps an option value to the fields revealed when that
// option is selected. Children are owned by their parent; there are no
// back-references.
type FieldSpec struct {
	Label             string                 `json:"label" bson:"label"`
	Name              string                 `json:"name" bson:"name"`
	Type              FieldType              `json:"type" bson:"type"`
	Required          bool                   `json:"required" bson:"required"`
	Options           []Option               `json:"options" bson:"options"`
	ConditionalFields map[string][]FieldSpec `json:"conditionalFields" bson:"conditionalFields"`
	Validation        Validation             `json:"validation" bson:"validation"`
	Order             int                    `json:"order" bson:"order"`
}

// NestedName is the answer name of a conditional child under parent.
func NestedName(parent, child string) string {
	return parent + "_" + child
}

// Clone returns a deep copy of f.
func (f FieldSpec) Clone() FieldSpec {
	out := f
	out.Validation = f.Validation.clone()
	if f.Options != nil {
		out.Options = make([]Option, len(f.Options))
		copy(out.Options, f.Options)
	}
	if f.ConditionalFields != nil {
		out.ConditionalFields = make(map[string][]FieldSpec, len(f.ConditionalFields))
		for key, branch := range f.ConditionalFields {
			out.ConditionalFields[key] = CloneFields(branch)
		}
	}
	return out
}

// CloneFields deep-copies a field list. A nil list stays nil.
func CloneFields(fields []FieldSpec) []FieldSpec {
	if fields == nil {
		return nil
	}
	out := make([]FieldSpec, len(fields))
	for i := range fields {
		out[i] = fields[i].Clone()
	}
	return out
}

// Equal compares two fields structurally. Nil and empty collections are equal.
func (f FieldSpec) Equal(o FieldSpec) bool {
	if f.Label != o.Label || f.Name != o.Name || f.Type != o.Type ||
		f.Required != o.Required || f.Order != o.Order {
		return false
	}
	if !f.Validation.Equal(o.Validation) {
		return false
	}
	if len(f.Options) != len(o.Options) {
		return false
	}
	for i := range f.Options {
		if !f.Options[i].Equal(o.Options[i]) {
			return false
		}
	}
	if len(f.ConditionalFields) != len(o.ConditionalFields) {
		return false
	}
	for key, branch := range f.ConditionalFields {
		other, ok := o.ConditionalFields[key]
		if !ok || !FieldsEqual(branch, other) {
			return false
		}
	}
	return true
}

// FieldsEqual compares two field lists element by element, in order.
func FieldsEqual(a, b []FieldSpec) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (v Validation) clone() Validation {
	out := Validation{Regex: v.Regex}
	if v.Min != nil {
		lo := *v.Min
		out.Min = &lo
	}
	if v.Max != nil {
		hi := *v.Max
		out.Max = &hi
	}
	if v.MinLength != nil {
		n := *v.MinLength
		out.MinLength = &n
	}
	if v.MaxLength != nil {
		n := *v.MaxLength
		out.MaxLength = &n
	}
	return out
}

// Equal compares constraint values, not pointer identity.
func (v Validation) Equal(o Validation) bool {
	return v.Regex == o.Regex &&
		floatPtrEqual(v.Min, o.Min) && floatPtrEqual(v.Max, o.Max) &&
		intPtrEqual(v.MinLength, o.MinLength) && intPtrEqual(v.MaxLength, o.MaxLength)
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
