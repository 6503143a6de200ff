package submission

import (
	"sort"
	"strings"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/utils"
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sanitizeAnswers strips HTML from every string inside the answer values.
func sanitizeAnswers(answers []models.Answer) []models.Answer {
	out := make([]models.Answer, len(answers))
	for i, a := range answers {
		out[i] = models.Answer{Name: strings.TrimSpace(a.Name), Value: utils.SanitizeValue(a.Value)}
	}
	return out
}

// sortFields ที่อนุญาตให้เรียงได้
var sortFields = map[string]string{
	"submittedAt": "submittedAt",
	"createdAt":   "createdAt",
	"formVersion": "formVersion",
	"ip":          "ip",
	"formTitle":   "formTitle",
}

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// parseDate reads a dateFrom/dateTo query value. Values without a zone are in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// endOfDay returns 23:59:59.999 on t's calendar day.
func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}
