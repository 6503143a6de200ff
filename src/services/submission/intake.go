package submission

import (
	"errors"
	"strings"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/validation"
	"Backend-FormFlow/src/services/versioning"
)

var (
	// ErrFormNotFound covers missing and soft-deleted forms.
	ErrFormNotFound = errors.New("form not found")
	ErrFormInactive = errors.New("form is not active")
)

// CheckState rejects submissions to deleted or inactive forms. It runs
// before any answer is validated.
func CheckState(form *models.Form) error {
	switch {
	case form == nil || form.IsDeleted:
		return ErrFormNotFound
	case !form.IsActive:
		return ErrFormInactive
	}
	return nil
}

// Prepare validates answers against the live form and, when they pass,
// returns the submission to store with a frozen snapshot of the form.
// The returned error is a validation.Errors on rejected answers.
func Prepare(form *models.Form, answers []models.Answer, ip string, now time.Time) (*models.Submission, error) {
	if err := CheckState(form); err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []models.Answer{}
	}
	if errs := validation.Validate(form.Fields, answers); len(errs) > 0 {
		return nil, errs
	}

	snapshot := versioning.Snapshot(form)
	return &models.Submission{
		FormID:       form.ID,
		FormVersion:  versioning.CurrentVersion(form),
		FormSnapshot: snapshot,
		Answers:      answers,
		SubmittedAt:  now,
		IP:           ip,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// MergeUploads points answers at stored upload names. uploaded maps the
// multipart field name to the stored filename.
//
// An answer whose name matches an upload (exactly, else case-insensitively)
// takes the stored filename. Uploads nobody answered are appended. Every
// top-level file field that still has no answer gets an empty one so the
// validator can report it.
func MergeUploads(fields []models.FieldSpec, answers []models.Answer, uploaded map[string]string) []models.Answer {
	out := make([]models.Answer, 0, len(answers)+len(uploaded))
	out = append(out, answers...)

	lookup := func(name string) (string, bool) {
		if stored, ok := uploaded[name]; ok {
			return stored, true
		}
		for field, stored := range uploaded {
			if strings.EqualFold(field, name) {
				return stored, true
			}
		}
		return "", false
	}

	for i, a := range out {
		if stored, ok := lookup(a.Name); ok {
			out[i].Value = stored
		}
	}

	has := func(name string) bool {
		for _, a := range out {
			if strings.EqualFold(a.Name, name) {
				return true
			}
		}
		return false
	}
	for _, field := range sortedKeys(uploaded) {
		if !has(field) {
			out = append(out, models.Answer{Name: field, Value: uploaded[field]})
		}
	}

	for _, f := range fields {
		if f.Type != models.FieldFile {
			continue
		}
		idx := -1
		for i, a := range out {
			if a.Name == f.Name {
				idx = i
				break
			}
		}
		stored, uploadedFile := lookup(f.Name)
		switch {
		case idx >= 0 && uploadedFile:
			out[idx].Value = stored
		case idx >= 0:
			if s, ok := out[idx].Value.(string); f.Required && (!ok || strings.TrimSpace(s) == "") {
				out[idx].Value = ""
			}
		case uploadedFile:
			out = append(out, models.Answer{Name: f.Name, Value: stored})
		default:
			out = append(out, models.Answer{Name: f.Name, Value: ""})
		}
	}
	return out
}
