package seeder

import (
	"context"
	"encoding/json"

	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/submission"
)

// FormStore is the part of forms.Service the seeder needs.
type FormStore interface {
	List(ctx context.Context, filter models.FormListFilter) ([]models.Form, error)
	Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error)
}

// Submitter is the part of submission.Service the seeder needs.
type Submitter interface {
	Submit(ctx context.Context, in submission.SubmitInput) (*models.Submission, error)
}

type sampleForm struct {
	request models.CreateFormRequest
	answers [][]models.Answer
}

var sampleForms = []sampleForm{
	{
		request: models.CreateFormRequest{
			Title:       "Contact Us",
			Description: "Send us a message and we will get back to you",
			Fields: json.RawMessage(`[
				{"label": "Full Name", "type": "text", "required": true, "order": 0,
				 "validation": {"minLength": 2, "maxLength": 100}},
				{"label": "Email", "type": "email", "required": true, "order": 1},
				{"label": "Topic", "type": "radio", "required": true, "order": 2,
				 "options": ["Sales", "Support", "Other"]},
				{"label": "Message", "type": "textarea", "required": true, "order": 3,
				 "validation": {"maxLength": 2000}}
			]`),
		},
		answers: [][]models.Answer{
			{
				{Name: "full_name", Value: "Somchai Jaidee"},
				{Name: "email", Value: "somchai@example.com"},
				{Name: "topic", Value: "Support"},
				{Name: "message", Value: "ลืมรหัสผ่าน เข้าระบบไม่ได้ครับ"},
			},
		},
	},
	{
		request: models.CreateFormRequest{
			Title:       "Event Registration",
			Description: "Register for the annual meetup",
			Fields: json.RawMessage(`[
				{"label": "Name", "type": "text", "required": true, "order": 0},
				{"label": "Age", "type": "number", "required": true, "order": 1,
				 "validation": {"min": 18, "max": 120}},
				{"label": "Event Date", "type": "date", "required": true, "order": 2},
				{"label": "Country", "type": "select", "required": true, "order": 3,
				 "options": [{"value": "TH", "label": "Thailand"}, {"value": "JP", "label": "Japan"}, "Other"],
				 "conditionalFields": {
				   "Other": [{"label": "Country Name", "type": "text", "required": true}]
				 }},
				{"label": "Agree to terms", "type": "checkbox", "required": true, "order": 4},
				{"label": "Resume", "type": "file", "order": 5}
			]`),
		},
		answers: [][]models.Answer{
			{
				{Name: "name", Value: "Ann"},
				{Name: "age", Value: 29.0},
				{Name: "event_date", Value: "2025-11-20"},
				{Name: "country", Value: "TH"},
				{Name: "agree_to_terms", Value: true},
			},
			{
				{Name: "name", Value: "Bruno"},
				{Name: "age", Value: "41"},
				{Name: "event_date", Value: "2025-11-21"},
				{Name: "country", Value: "Other"},
				{Name: "country_country_name", Value: "Brazil"},
				{Name: "agree_to_terms", Value: true},
			},
		},
	},
}

// SeedSampleForms creates the sample forms (and a few submissions) unless a
// form with the same title already exists.
func SeedSampleForms(ctx context.Context, store FormStore, submitter Submitter) error {
	existing, err := store.List(ctx, models.FormListFilter{IncludeDeleted: true})
	if err != nil {
		return err
	}
	titles := make(map[string]bool, len(existing))
	for _, f := range existing {
		titles[f.Title] = true
	}

	for _, sample := range sampleForms {
		if titles[sample.request.Title] {
			logger.Debugf("seed: form %q already exists", sample.request.Title)
			continue
		}

		form, err := store.Create(ctx, sample.request)
		if err != nil {
			return err
		}
		logger.Infof("🌱 Created sample form %q (ID: %s)", form.Title, form.ID.Hex())

		for i, answers := range sample.answers {
			sub, err := submitter.Submit(ctx, submission.SubmitInput{
				FormID:  form.ID.Hex(),
				Answers: answers,
				IP:      "127.0.0.1",
			})
			if err != nil {
				logger.Warnf("⚠️ Error creating sample submission %d for %q: %v", i+1, form.Title, err)
				continue
			}
			logger.Infof("✅ Created submission %d (ID: %s)", i+1, sub.ID.Hex())
		}
	}
	return nil
}
