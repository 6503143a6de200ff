// Package submission รับคำตอบของผู้ตอบแบบฟอร์ม ตรวจสอบ และบันทึกพร้อม snapshot
package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/csvexport"
	"Backend-FormFlow/src/services/forms"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound       = errors.New("submission not found")
	ErrInvalidFormID  = errors.New("invalid form ID")
	ErrFormIDRequired = errors.New("formId is required")
	ErrInvalidDate    = errors.New("invalid date filter")
)

// FormReader is the part of the forms service submissions depend on.
type FormReader interface {
	Get(ctx context.Context, id string) (*models.Form, error)
	GetForSubmission(ctx context.Context, id string) (*models.Form, error)
}

// UploadDiscarder removes stored uploads of a rejected submission.
type UploadDiscarder interface {
	DiscardUploads(ctx context.Context, filenames []string) error
}

// SubmitInput is one respondent submission after the transport layer parsed it.
type SubmitInput struct {
	FormID  string
	Answers []models.Answer
	// Uploaded maps multipart field name to stored filename.
	Uploaded map[string]string
	// Stored lists every file written for this request.
	Stored []string
	IP     string
}

// Service จัดการคำตอบของฟอร์ม
type Service struct {
	coll      *mongo.Collection
	formsColl string
	forms     FormReader
	discarder UploadDiscarder
	loc       *time.Location
	now       func() time.Time
}

// NewService wires the submissions collection. discarder may be nil.
func NewService(coll *mongo.Collection, formsCollection string, forms FormReader, discarder UploadDiscarder) *Service {
	return &Service{
		coll:      coll,
		formsColl: formsCollection,
		forms:     forms,
		discarder: discarder,
		loc:       time.Local,
		now:       time.Now,
	}
}

// Submit loads the form, validates the answers and stores the submission.
// Rejected submissions leave nothing behind: their uploads are discarded.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (sub *models.Submission, err error) {
	defer func() {
		if err != nil && len(in.Stored) > 0 {
			s.discard(ctx, in.Stored)
		}
	}()

	form, err := s.forms.GetForSubmission(ctx, strings.TrimSpace(in.FormID))
	if err != nil {
		if errors.Is(err, forms.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}
	if err := CheckState(form); err != nil {
		return nil, err
	}

	answers := MergeUploads(form.Fields, sanitizeAnswers(in.Answers), in.Uploaded)

	sub, err = Prepare(form, answers, in.IP, s.now())
	if err != nil {
		return nil, err
	}

	res, err := s.coll.InsertOne(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("insert submission: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		sub.ID = oid
	}

	logger.Infof("[submission] inserted id=%s form=%s version=%d answers=%d",
		sub.ID.Hex(), form.ID.Hex(), sub.FormVersion, len(sub.Answers))
	return sub, nil
}

func (s *Service) discard(ctx context.Context, names []string) {
	if s.discarder == nil {
		return
	}
	if err := s.discarder.DiscardUploads(ctx, names); err != nil {
		logger.Warnf("⚠️ failed to discard %d upload(s): %v", len(names), err)
	}
}

// ListResult is one page of submissions.
type ListResult struct {
	Submissions []models.SubmissionListItem `json:"submissions"`
	Pagination  models.Pagination           `json:"pagination"`
}

func (s *Service) buildFilter(q models.SubmissionQuery) (bson.M, error) {
	filter := bson.M{}

	if id := strings.TrimSpace(q.FormID); id != "" {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, ErrInvalidFormID
		}
		filter["formId"] = oid
	}

	if q.DateFrom != "" || q.DateTo != "" {
		rng := bson.M{}
		if q.DateFrom != "" {
			from, err := parseDate(q.DateFrom, s.loc)
			if err != nil {
				return nil, fmt.Errorf("%w: dateFrom", ErrInvalidDate)
			}
			rng["$gte"] = from
		}
		if q.DateTo != "" {
			to, err := parseDate(q.DateTo, s.loc)
			if err != nil {
				return nil, fmt.Errorf("%w: dateTo", ErrInvalidDate)
			}
			rng["$lte"] = endOfDay(to)
		}
		filter["submittedAt"] = rng
	}

	// literal, case-insensitive match against string answer values
	if search := strings.TrimSpace(q.Search); search != "" {
		filter["answers.value"] = bson.M{"$regex": regexp.QuoteMeta(search), "$options": "i"}
	}
	return filter, nil
}

// List returns submissions newest first (by default) with the current form
// title joined in.
func (s *Service) List(ctx context.Context, q models.SubmissionQuery) (*ListResult, error) {
	q.PaginationParams.Normalize()
	filter, err := s.buildFilter(q)
	if err != nil {
		return nil, err
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	sortField, ok := sortFields[q.SortBy]
	if !ok {
		sortField = "submittedAt"
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$lookup", Value: bson.M{
			"from":         s.formsColl,
			"localField":   "formId",
			"foreignField": "_id",
			"as":           "form",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"formTitle": bson.M{"$arrayElemAt": bson.A{"$form.title", 0}},
		}}},
		{{Key: "$project", Value: bson.M{"form": 0}}},
		{{Key: "$sort", Value: bson.D{
			{Key: sortField, Value: q.GetSortOrder()},
			{Key: "_id", Value: q.GetSortOrder()},
		}}},
		{{Key: "$skip", Value: q.GetSkip()}},
		{{Key: "$limit", Value: int64(q.Limit)}},
	}

	cursor, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.SubmissionListItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &ListResult{
		Submissions: items,
		Pagination:  models.NewPagination(total, q.PaginationParams),
	}, nil
}

// Get returns one submission with the form as it is now. Form is nil when
// the form was purged.
func (s *Service) Get(ctx context.Context, id string) (*models.SubmissionDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var sub models.Submission
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&sub); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	detail := &models.SubmissionDetail{Submission: sub}
	form, err := s.forms.GetForSubmission(ctx, sub.FormID.Hex())
	switch {
	case err == nil:
		detail.Form = form
	case !errors.Is(err, forms.ErrNotFound):
		return nil, err
	}
	return detail, nil
}

// ExportCSV writes every submission of a live form as CSV, newest first.
func (s *Service) ExportCSV(ctx context.Context, formID string, w io.Writer) error {
	formID = strings.TrimSpace(formID)
	if formID == "" {
		return ErrFormIDRequired
	}

	form, err := s.forms.Get(ctx, formID)
	if err != nil {
		if errors.Is(err, forms.ErrNotFound) {
			return ErrFormNotFound
		}
		return err
	}

	opts := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}, {Key: "_id", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"formId": form.ID}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var subs []models.Submission
	if err := cursor.All(ctx, &subs); err != nil {
		return err
	}
	return csvexport.Write(w, form, subs)
}
