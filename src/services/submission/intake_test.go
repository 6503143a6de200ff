package submission

import (
	"errors"
	"testing"
	"time"

	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func registrationForm() *models.Form {
	return &models.Form{
		ID:       primitive.NewObjectID(),
		Title:    "Registration",
		Version:  3,
		IsActive: true,
		Fields: []models.FieldSpec{
			{Label: "Name", Name: "name", Type: models.FieldText, Required: true},
			{
				Label: "Country", Name: "country", Type: models.FieldSelect, Required: true,
				Options: []models.Option{models.Bare("TH"), models.Bare("Other")},
				ConditionalFields: map[string][]models.FieldSpec{
					"Other": {{Label: "Specify", Name: "specify", Type: models.FieldText, Required: true}},
				},
			},
			{Label: "Resume", Name: "resume", Type: models.FieldFile, Required: true},
			{Label: "Photo", Name: "photo", Type: models.FieldFile},
		},
	}
}

func TestCheckState(t *testing.T) {
	form := registrationForm()
	assert.NoError(t, CheckState(form))

	form.IsActive = false
	assert.ErrorIs(t, CheckState(form), ErrFormInactive)

	form.IsDeleted = true
	assert.ErrorIs(t, CheckState(form), ErrFormNotFound)
	assert.ErrorIs(t, CheckState(nil), ErrFormNotFound)
}

func TestPrepareStateBeatsValidation(t *testing.T) {
	form := registrationForm()
	form.IsActive = false

	// answers are invalid too, but the state error wins
	_, err := Prepare(form, nil, "", time.Now())
	assert.ErrorIs(t, err, ErrFormInactive)
}

func TestPrepareRejectsInvalidAnswers(t *testing.T) {
	form := registrationForm()
	_, err := Prepare(form, []models.Answer{
		{Name: "country", Value: "Other"},
		{Name: "resume", Value: ""},
	}, "1.2.3.4", time.Now())

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{
		"Name is required",
		"Specify is required",
		"Resume is required",
	}, errs.Messages())
	assert.Equal(t, "country_specify", errs[1].Field)
}

func TestPrepareBuildsSnapshot(t *testing.T) {
	form := registrationForm()
	now := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	answers := []models.Answer{
		{Name: "name", Value: "Ann"},
		{Name: "country", Value: "TH"},
		{Name: "resume", Value: "resume-1-abc.pdf"},
	}

	sub, err := Prepare(form, answers, "1.2.3.4", now)
	require.NoError(t, err)
	assert.Equal(t, form.ID, sub.FormID)
	assert.Equal(t, 3, sub.FormVersion)
	assert.Equal(t, now, sub.SubmittedAt)
	assert.Equal(t, "1.2.3.4", sub.IP)
	assert.Equal(t, answers, sub.Answers)

	// later edits to the form do not leak into the snapshot
	form.Title = "Changed"
	form.Fields[0].Label = "Changed"
	assert.Equal(t, "Registration", sub.FormSnapshot.Title)
	assert.Equal(t, "Name", sub.FormSnapshot.Fields[0].Label)
}

func TestPrepareUnsetVersionIsOne(t *testing.T) {
	form := &models.Form{ID: primitive.NewObjectID(), IsActive: true}
	sub, err := Prepare(form, nil, "", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, sub.FormVersion)
	assert.NotNil(t, sub.Answers)
}

func TestMergeUploads(t *testing.T) {
	fields := registrationForm().Fields

	t.Run("uploaded file replaces answer case-insensitively", func(t *testing.T) {
		got := MergeUploads(fields, []models.Answer{
			{Name: "name", Value: "Ann"},
			{Name: "Resume", Value: "C:\\fakepath\\cv.pdf"},
		}, map[string]string{"resume": "resume-1-a.pdf"})

		assert.Equal(t, []models.Answer{
			{Name: "name", Value: "Ann"},
			{Name: "Resume", Value: "resume-1-a.pdf"},
			{Name: "resume", Value: "resume-1-a.pdf"},
			{Name: "photo", Value: ""},
		}, got)
	})

	t.Run("unanswered uploads are appended", func(t *testing.T) {
		got := MergeUploads(fields, nil, map[string]string{"resume": "r.pdf", "photo": "p.png"})
		assert.Equal(t, []models.Answer{
			{Name: "photo", Value: "p.png"},
			{Name: "resume", Value: "r.pdf"},
		}, got)
	})

	t.Run("missing file fields get empty answers", func(t *testing.T) {
		got := MergeUploads(fields, []models.Answer{{Name: "resume", Value: "   "}}, nil)
		assert.Equal(t, []models.Answer{
			{Name: "resume", Value: ""},
			{Name: "photo", Value: ""},
		}, got)
	})

	t.Run("input is not modified", func(t *testing.T) {
		in := []models.Answer{{Name: "resume", Value: "old"}}
		MergeUploads(fields, in, map[string]string{"resume": "new"})
		assert.Equal(t, "old", in[0].Value)
	})
}

func TestEndOfDay(t *testing.T) {
	loc := time.FixedZone("ICT", 7*3600)
	d, err := parseDate("2024-02-29", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 999000000, loc), endOfDay(d))

	_, err = parseDate("yesterday", loc)
	assert.Error(t, err)
}
