package database

import (
	"context"
	"fmt"
	"sync"

	"Backend-FormFlow/src/config"
	"Backend-FormFlow/src/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	FormsCollectionName       = "forms"
	SubmissionsCollectionName = "submissions"
	AdminsCollectionName      = "admin_users"
)

var (
	client     *mongo.Client
	db         *mongo.Database
	once       sync.Once // ✅ ป้องกันการรัน ConnectMongoDB() ซ้ำ
	connectErr error

	FormCollection       *mongo.Collection
	SubmissionCollection *mongo.Collection
	AdminCollection      *mongo.Collection
)

// ConnectMongoDB เชื่อมต่อกับ MongoDB แค่ครั้งเดียว
func ConnectMongoDB(cfg config.MongoConfig) error {
	once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
		defer cancel()

		client, connectErr = mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if connectErr != nil {
			connectErr = fmt.Errorf("❌ failed to connect to MongoDB: %w", connectErr)
			return
		}

		// ตรวจสอบการเชื่อมต่อ
		if connectErr = client.Ping(ctx, readpref.Primary()); connectErr != nil {
			connectErr = fmt.Errorf("❌ MongoDB ping failed: %w", connectErr)
			return
		}

		Use(client.Database(cfg.Database))
		logger.Infof("✅ MongoDB connected successfully (database %s)", cfg.Database)
	})
	return connectErr
}

// Use binds the package collections to database d.
func Use(d *mongo.Database) {
	db = d
	FormCollection = d.Collection(FormsCollectionName)
	SubmissionCollection = d.Collection(SubmissionsCollectionName)
	AdminCollection = d.Collection(AdminsCollectionName)
}

// Database returns the connected database, or nil before ConnectMongoDB.
func Database() *mongo.Database {
	return db
}

// Client returns the connected client, or nil before ConnectMongoDB.
func Client() *mongo.Client {
	return client
}

// Ping is used by the health check.
func Ping(ctx context.Context) error {
	if client == nil {
		return fmt.Errorf("MongoDB client is nil")
	}
	return client.Ping(ctx, readpref.Primary())
}

// DisconnectMongoDB ปิดการเชื่อมต่อตอน shutdown
func DisconnectMongoDB(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
