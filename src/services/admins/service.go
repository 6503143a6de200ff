// Package admins ดูแลบัญชีผู้ดูแลระบบและการเข้าสู่ระบบ
package admins

import (
	"context"
	"errors"
	"strings"
	"time"

	"Backend-FormFlow/src/logger"
	"Backend-FormFlow/src/models"
	"Backend-FormFlow/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAdminExists        = errors.New("admin user already exists")
	ErrNotFound           = errors.New("admin not found")
)

// Service handles admin accounts.
type Service struct {
	coll   *mongo.Collection
	secret string
	ttl    time.Duration
	now    func() time.Time
}

func NewService(coll *mongo.Collection, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{coll: coll, secret: jwtSecret, ttl: tokenTTL, now: time.Now}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Login checks the credentials and issues a JWT carrying the admin id.
func (s *Service) Login(ctx context.Context, creds models.AdminCredentials) (*models.LoginResponse, error) {
	if s.secret == "" {
		return nil, utils.ErrMissingSecret
	}

	var admin models.AdminUser
	err := s.coll.FindOne(ctx, bson.M{"username": normalizeUsername(creds.Username)}).Decode(&admin)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.secret, admin.ID.Hex(), admin.Username, s.ttl)
	if err != nil {
		return nil, err
	}
	return &models.LoginResponse{Token: token, Username: admin.Username}, nil
}

// Create adds an admin. Usernames are stored lowercased and must be unique.
func (s *Service) Create(ctx context.Context, creds models.AdminCredentials) (*models.AdminUser, error) {
	username := normalizeUsername(creds.Username)

	n, err := s.coll.CountDocuments(ctx, bson.M{"username": username})
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return nil, ErrAdminExists
	}

	hash, err := hashPassword(creds.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	admin := &models.AdminUser{
		Username:  username,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := s.coll.InsertOne(ctx, admin)
	if err != nil {
		// unique index on username catches a concurrent create
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrAdminExists
		}
		return nil, err
	}
	admin.ID = res.InsertedID.(primitive.ObjectID)
	return admin, nil
}

// FindByID loads an admin by hex id.
func (s *Service) FindByID(ctx context.Context, id string) (*models.AdminUser, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var admin models.AdminUser
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &admin, nil
}

// EnsureDefault creates the default admin when no admin exists yet.
func (s *Service) EnsureDefault(ctx context.Context, username, password string) (bool, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	admin, err := s.Create(ctx, models.AdminCredentials{Username: username, Password: password})
	if err != nil {
		return false, err
	}
	logger.Info("========================================")
	logger.Infof("👤 Default admin user created: %s", admin.Username)
	logger.Warn("⚠️ IMPORTANT: Change the password after first login!")
	logger.Info("========================================")
	return true, nil
}
