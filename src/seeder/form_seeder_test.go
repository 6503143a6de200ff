package seeder

import (
	"context"
	"testing"
	"time"

	"Backend-FormFlow/src/database/testhelper"
	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/forms"
	"Backend-FormFlow/src/services/schema"
	"Backend-FormFlow/src/services/submission"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleFormsBuildAndValidate(t *testing.T) {
	now := time.Now()
	for _, sample := range sampleForms {
		fields, err := schema.Build(sample.request.Fields, schema.DefaultOptions())
		require.NoError(t, err, sample.request.Title)

		form := &models.Form{Title: sample.request.Title, Fields: fields, Version: 1, IsActive: true}
		for _, answers := range sample.answers {
			merged := submission.MergeUploads(fields, answers, nil)
			_, err := submission.Prepare(form, merged, "127.0.0.1", now)
			assert.NoError(t, err, sample.request.Title)
		}
	}
}

func TestSeedSampleFormsIsIdempotent(t *testing.T) {
	_, db := testhelper.SetupTestDB(t)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fs := forms.NewService(db.Collection("forms"), nil, schema.DefaultOptions())
	subs := submission.NewService(db.Collection("submissions"), "forms", fs, nil)

	require.NoError(t, SeedSampleForms(ctx, fs, subs))
	require.NoError(t, SeedSampleForms(ctx, fs, subs))

	list, err := fs.List(ctx, models.FormListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, len(sampleForms))

	n, err := db.Collection("submissions").CountDocuments(ctx, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
