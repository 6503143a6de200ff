package schema

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	validName      = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	invalidChars   = regexp.MustCompile(`[^a-z0-9_]`)
	underscoreRuns = regexp.MustCompile(`_+`)
)

// now is swapped in tests to pin the empty-label fallback.
var now = time.Now

// IsValidName reports whether name already satisfies the identifier grammar.
func IsValidName(name string) bool {
	return validName.MatchString(name)
}

// Normalize turns a label into a machine-safe field name.
//
// The result only contains [a-z0-9_], starts with a letter and has no
// leading, trailing or repeated underscores, so Normalize(Normalize(x)) ==
// Normalize(x). When nothing usable is left the result is field_<unix millis>,
// which is NOT deterministic.
func Normalize(label string) string {
	name := strings.ToLower(label)
	name = invalidChars.ReplaceAllString(name, "_")
	name = underscoreRuns.ReplaceAllString(name, "_")
	name = strings.Trim(name, "_")

	if name == "" {
		return fmt.Sprintf("field_%d", now().UnixMilli())
	}
	if name[0] < 'a' || name[0] > 'z' {
		name = "field_" + name
	}
	return name
}

// canonicalName tidies an author-supplied name that already passed
// IsValidName: lowercase, drop characters outside [a-z0-9_], trim edge
// underscores. Inner runs of "_" are kept, so "a__b" and "a_b" stay distinct.
func canonicalName(name string) string {
	out := strings.ToLower(name)
	out = invalidChars.ReplaceAllString(out, "_")
	out = strings.Trim(out, "_")
	if out == "" {
		return Normalize(name)
	}
	if out[0] < 'a' || out[0] > 'z' {
		out = "field_" + out
	}
	return out
}
