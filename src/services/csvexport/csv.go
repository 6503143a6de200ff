// Package csvexport renders submissions of one form as CSV.
package csvexport

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"Backend-FormFlow/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeLayout is used for the Submitted At column (UTC, millisecond precision).
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

// Header returns the column titles: the fixed columns then one per top-level field label.
func Header(form *models.Form) []string {
	header := []string{"Submission ID", "Submitted At", "IP Address"}
	for _, f := range form.Fields {
		header = append(header, f.Label)
	}
	return header
}

// Row renders one submission against the form's top-level fields.
func Row(form *models.Form, sub models.Submission) []string {
	answers := make(map[string]interface{}, len(sub.Answers))
	for _, a := range sub.Answers {
		answers[a.Name] = a.Value
	}

	row := []string{
		sub.ID.Hex(),
		sub.SubmittedAt.UTC().Format(TimeLayout),
		sub.IP,
	}
	for _, f := range form.Fields {
		row = append(row, Cell(answers[f.Name]))
	}
	return row
}

// Write streams the header and one row per submission. With no submissions
// only the header is written.
func Write(w io.Writer, form *models.Form, subs []models.Submission) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header(form)); err != nil {
		return err
	}
	for _, sub := range subs {
		if err := cw.Write(Row(form, sub)); err != nil {
			return fmt.Errorf("write submission %s: %w", sub.ID.Hex(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Cell formats an answer value: nil is empty, arrays are joined with "; "
// and objects become JSON text.
func Cell(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case []interface{}:
		return join(val)
	case primitive.A:
		return join(val)
	case primitive.D, primitive.M, map[string]interface{}:
		return toJSON(val)
	}
	return scalar(v)
}

func join(items []interface{}) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = scalar(item)
	}
	return strings.Join(parts, "; ")
}

func scalar(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case int:
		return strconv.Itoa(val)
	case time.Time:
		return val.UTC().Format(TimeLayout)
	case primitive.DateTime:
		return val.Time().UTC().Format(TimeLayout)
	case primitive.ObjectID:
		return val.Hex()
	case []interface{}, primitive.A, primitive.D, primitive.M, map[string]interface{}:
		return Cell(val)
	}
	return fmt.Sprint(v)
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(plain(v))
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// plain converts values decoded from BSON into types encoding/json understands.
func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.M:
		return plain(map[string]interface{}(val))
	case map[string]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, e := range val {
			m[k] = plain(e)
		}
		return m
	case primitive.A:
		return plain([]interface{}(val))
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}
		return out
	case primitive.DateTime:
		return val.Time().UTC()
	case primitive.ObjectID:
		return val.Hex()
	}
	return v
}
