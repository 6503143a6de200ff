package versioning

import (
	"testing"

	"Backend-FormFlow/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFields() []models.FieldSpec {
	ceiling := 100.0
	return []models.FieldSpec{
		{Label: "Name", Name: "name", Type: models.FieldText, Required: true, Order: 0},
		{Label: "Country", Name: "country", Type: models.FieldSelect, Order: 1,
			Options: []models.Option{models.Bare("USA"), models.Labeled("other", "Other")},
			ConditionalFields: map[string][]models.FieldSpec{
				"other": {{Label: "Where", Name: "where", Type: models.FieldText, Required: true}},
			}},
		{Label: "Age", Name: "age", Type: models.FieldNumber, Order: 2,
			Validation: models.Validation{Max: &ceiling}},
	}
}

func TestApplyFieldUpdateIdenticalKeepsVersion(t *testing.T) {
	form := &models.Form{Version: 1, Fields: sampleFields()}

	assert.False(t, ApplyFieldUpdate(form, sampleFields()))
	assert.False(t, ApplyFieldUpdate(form, sampleFields()))
	assert.Equal(t, 1, form.Version)
}

func TestApplyFieldUpdateRequiredFlagBumpsOnce(t *testing.T) {
	form := &models.Form{Version: 3, Fields: sampleFields()}
	next := sampleFields()
	next[2].Required = true

	assert.True(t, ApplyFieldUpdate(form, next))
	assert.Equal(t, 4, form.Version)
	assert.True(t, form.Fields[2].Required)
}

func TestApplyFieldUpdateDetectsNestedAndOrderChanges(t *testing.T) {
	cases := map[string]func(f []models.FieldSpec) []models.FieldSpec{
		"NestedRequired": func(f []models.FieldSpec) []models.FieldSpec {
			f[1].ConditionalFields["other"][0].Required = false
			return f
		},
		"OptionLabel": func(f []models.FieldSpec) []models.FieldSpec {
			f[1].Options[1] = models.Labeled("other", "Elsewhere")
			return f
		},
		"ValidationValue": func(f []models.FieldSpec) []models.FieldSpec {
			v := 99.0
			f[2].Validation.Max = &v
			return f
		},
		"Reorder": func(f []models.FieldSpec) []models.FieldSpec {
			f[0], f[2] = f[2], f[0]
			return f
		},
		"Removed": func(f []models.FieldSpec) []models.FieldSpec {
			return f[:2]
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			form := &models.Form{Version: 1, Fields: sampleFields()}
			assert.True(t, ApplyFieldUpdate(form, mutate(sampleFields())))
			assert.Equal(t, 2, form.Version)
		})
	}
}

func TestApplyFieldUpdateTreatsNilAndEmptyAlike(t *testing.T) {
	fields := sampleFields()
	fields[0].ConditionalFields = map[string][]models.FieldSpec{}
	fields[0].Options = []models.Option{}
	form := &models.Form{Version: 2, Fields: fields}

	assert.False(t, ApplyFieldUpdate(form, sampleFields()))
	assert.Equal(t, 2, form.Version)
}

func TestApplyFieldUpdateUnsetVersionCountsAsOne(t *testing.T) {
	form := &models.Form{Fields: sampleFields()}
	assert.True(t, ApplyFieldUpdate(form, nil))
	assert.Equal(t, 2, form.Version)
	assert.NotNil(t, form.Fields)
	assert.Empty(t, form.Fields)
}

func TestApplyFieldUpdateDoesNotAliasInput(t *testing.T) {
	form := &models.Form{Version: 1}
	next := sampleFields()
	ApplyFieldUpdate(form, next)

	next[0].Label = "Changed"
	assert.Equal(t, "Name", form.Fields[0].Label)
}

func TestSnapshotIsolation(t *testing.T) {
	form := &models.Form{Title: "Survey", Description: "d", Version: 1, Fields: sampleFields()}
	snap := Snapshot(form)
	require.True(t, models.FieldsEqual(form.Fields, snap.Fields))

	form.Fields = form.Fields[:1]
	form.Title = "Renamed"
	assert.Len(t, snap.Fields, 3)
	assert.Equal(t, "Survey", snap.Title)

	form.Fields = sampleFields()
	*form.Fields[2].Validation.Max = 1
	form.Fields[1].ConditionalFields["other"][0].Label = "Mutated"
	snap2 := Snapshot(form)
	snap2.Fields[1].ConditionalFields["other"][0].Label = "Again"
	*snap2.Fields[2].Validation.Max = 7
	snap2.Fields[1].Options[0] = models.Bare("Mexico")

	assert.Equal(t, "Mutated", form.Fields[1].ConditionalFields["other"][0].Label)
	assert.Equal(t, 1.0, *form.Fields[2].Validation.Max)
	assert.Equal(t, "USA", form.Fields[1].Options[0].Value())
	assert.Equal(t, 100.0, *snap.Fields[2].Validation.Max)
}

func TestTitleChangesNeverBump(t *testing.T) {
	form := &models.Form{Title: "A", Version: 5, Fields: sampleFields()}
	form.Title = "B"
	form.Description = "changed"
	form.IsActive = !form.IsActive
	assert.False(t, ApplyFieldUpdate(form, sampleFields()))
	assert.Equal(t, 5, form.Version)
}
