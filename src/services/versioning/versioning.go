// Package versioning decides when a form's field list warrants a new version
// and freezes forms into submission snapshots.
package versioning

import (
	"Backend-FormFlow/src/models"
)

// Snapshot returns a deep copy of the form's content. Later changes to form
// are never visible through the snapshot.
func Snapshot(form *models.Form) models.FormSnapshot {
	return models.FormSnapshot{
		Title:       form.Title,
		Description: form.Description,
		Fields:      models.CloneFields(form.Fields),
	}
}

// CurrentVersion treats an unset version as 1.
func CurrentVersion(form *models.Form) int {
	if form.Version < 1 {
		return 1
	}
	return form.Version
}

// ApplyFieldUpdate replaces form.Fields with newFields and bumps the version
// by one when the lists differ structurally (order-sensitive). It reports
// whether the version changed. Title, description and isActive are never
// considered.
func ApplyFieldUpdate(form *models.Form, newFields []models.FieldSpec) bool {
	changed := !models.FieldsEqual(form.Fields, newFields)
	if changed {
		form.Version = CurrentVersion(form) + 1
	}
	form.Fields = models.CloneFields(newFields)
	if form.Fields == nil {
		form.Fields = []models.FieldSpec{}
	}
	return changed
}
