// Package forms เก็บและจัดการนิยามฟอร์มใน MongoDB
package forms

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/services/schema"
	"Backend-FormFlow/src/services/versioning"
	"Backend-FormFlow/src/utils"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrNotFound        = errors.New("form not found")
	ErrDeletedNotFound = errors.New("deleted form not found")
	// ErrConflict means the form changed between read and write.
	ErrConflict = errors.New("form was modified by another request")
)

// Service จัดการ CRUD ของฟอร์ม
type Service struct {
	coll   *mongo.Collection
	cache  *redis.Client
	schema schema.Options
	now    func() time.Time
}

// NewService creates a forms service. cache may be nil.
func NewService(coll *mongo.Collection, cache *redis.Client, opts schema.Options) *Service {
	if opts.CleanText == nil {
		opts.CleanText = utils.StripTags
	}
	return &Service{coll: coll, cache: cache, schema: opts, now: time.Now}
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return oid, nil
}

func cleanText(s string) string {
	return strings.TrimSpace(utils.StripTags(s))
}

// List returns forms newest first. Soft-deleted forms are skipped unless
// filter.IncludeDeleted is set.
func (s *Service) List(ctx context.Context, filter models.FormListFilter) ([]models.Form, error) {
	key := listCacheKey(filter)
	var cached []models.Form
	if s.getCache(key, &cached) {
		return cached, nil
	}

	query := bson.M{}
	if !filter.IncludeDeleted {
		query["isDeleted"] = false
	}
	if filter.ActiveOnly {
		query["isActive"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	forms := []models.Form{}
	if err := cursor.All(ctx, &forms); err != nil {
		return nil, err
	}

	s.setCache(key, forms, cacheTTL)
	return forms, nil
}

// Get returns a form that is not soft-deleted.
func (s *Service) Get(ctx context.Context, id string) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var form models.Form
	if s.getCache(itemCacheKey(oid), &form) {
		return &form, nil
	}

	if err := s.coll.FindOne(ctx, bson.M{"_id": oid, "isDeleted": false}).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.setCache(itemCacheKey(oid), form, cacheTTL)
	return &form, nil
}

// GetForSubmission reads the form straight from MongoDB, soft-deleted or not,
// so the caller sees its current state.
func (s *Service) GetForSubmission(ctx context.Context, id string) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	var form models.Form
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &form, nil
}

// Create builds the field list and stores a new active form at version 1.
func (s *Service) Create(ctx context.Context, req models.CreateFormRequest) (*models.Form, error) {
	fields, err := schema.Build(req.Fields, s.schema)
	if err != nil {
		return nil, err
	}

	now := s.now()
	form := &models.Form{
		Title:       cleanText(req.Title),
		Description: cleanText(req.Description),
		Fields:      fields,
		Version:     1,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := s.coll.InsertOne(ctx, form)
	if err != nil {
		return nil, err
	}
	form.ID = res.InsertedID.(primitive.ObjectID)

	s.invalidate()
	logger.Infof("📝 form created id=%s fields=%d", form.ID.Hex(), len(form.Fields))
	return form, nil
}

// Update applies a partial update. A changed field list bumps the version.
// The write only succeeds if nobody else changed the version in between.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateFormRequest) (*models.Form, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var form models.Form
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid, "isDeleted": false}).Decode(&form); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	readVersion := form.Version

	if req.Title != nil {
		form.Title = cleanText(*req.Title)
	}
	if req.Description != nil {
		form.Description = cleanText(*req.Description)
	}
	if req.IsActive != nil {
		form.IsActive = *req.IsActive
	}
	if len(req.Fields) > 0 {
		fields, err := schema.Build(req.Fields, s.schema)
		if err != nil {
			return nil, err
		}
		if versioning.ApplyFieldUpdate(&form, fields) {
			logger.Infof("🔖 form %s fields changed, version %d -> %d", oid.Hex(), readVersion, form.Version)
		}
	}
	form.UpdatedAt = s.now()

	filter := bson.M{"_id": oid, "isDeleted": false, "version": readVersion}
	update := bson.M{"$set": bson.M{
		"title":       form.Title,
		"description": form.Description,
		"isActive":    form.IsActive,
		"fields":      form.Fields,
		"version":     form.Version,
		"updatedAt":   form.UpdatedAt,
	}}
	res, err := s.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		logger.With(logrus.Fields{"formId": oid.Hex(), "version": readVersion}).Warn("⚠️ form update lost a version race")
		return nil, ErrConflict
	}

	s.invalidate(oid)
	return &form, nil
}

// Delete soft-deletes a form and deactivates it.
func (s *Service) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	now := s.now()
	res, err := s.coll.UpdateOne(ctx,
		bson.M{"_id": oid, "isDeleted": false},
		bson.M{"$set": bson.M{
			"isDeleted": true,
			"deletedAt": now,
			"isActive":  false,
			"updatedAt": now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}

	s.invalidate(oid)
	return nil
}

// Restore undoes a soft delete. The form stays inactive.
func (s *Service) Restore(ctx context.Context, id string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrDeletedNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var form models.Form
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "isDeleted": true},
		bson.M{
			"$set":   bson.M{"isDeleted": false, "updatedAt": s.now()},
			"$unset": bson.M{"deletedAt": ""},
		},
		opts,
	).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDeletedNotFound
		}
		return nil, err
	}

	s.invalidate(oid)
	return &form, nil
}

// PurgeDeleted permanently removes forms soft-deleted before cutoff.
// Submissions keep their snapshots and are not touched.
func (s *Service) PurgeDeleted(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{
		"isDeleted": true,
		"deletedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, fmt.Errorf("purge deleted forms: %w", err)
	}
	if res.DeletedCount > 0 {
		s.invalidate()
	}
	return res.DeletedCount, nil
}
