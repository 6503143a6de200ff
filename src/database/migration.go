package database

import (
	"embed"
	"errors"
	"fmt"

	"Backend-FormFlow/src/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mongodb"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.mongodb.org/mongo-driver/mongo"
)

//go:embed migrations
var dbMigrations embed.FS

// MigrateDB applies the embedded index migrations to the named database.
func MigrateDB(c *mongo.Client, databaseName string) error {
	src, err := iofs.New(dbMigrations, "migrations")
	if err != nil {
		return err
	}

	dst, err := mongodb.WithInstance(c, &mongodb.Config{DatabaseName: databaseName})
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithInstance("iofs", src, "mongodb", dst)
	if err != nil {
		return err
	}

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("✅ MongoDB indexes already up to date")
	case err != nil:
		return fmt.Errorf("migrate %s: %w", databaseName, err)
	default:
		version, _, _ := migrator.Version()
		logger.Infof("✅ MongoDB migrated to version %d", version)
	}
	return nil
}
