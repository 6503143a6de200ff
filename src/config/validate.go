package config

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Validate checks business rules that struct tags cannot express.
func (c *Config) Validate() error {
	var errs []error

	if c.Mongo.Database == "" {
		errs = append(errs, errors.New("mongo.database must not be empty"))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth.token_ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if c.Uploads.MaxFileSize <= 0 {
		errs = append(errs, fmt.Errorf("uploads.max_file_size must be positive, got %d", c.Uploads.MaxFileSize))
	}
	if c.RateLimit.APIMax <= 0 || c.RateLimit.SubmissionMax <= 0 {
		errs = append(errs, errors.New("rate_limit maxima must be positive"))
	}
	if c.RateLimit.APIWindow <= 0 || c.RateLimit.SubmissionWindow <= 0 {
		errs = append(errs, errors.New("rate_limit windows must be positive"))
	}
	if c.Schema.MaxConditionalDepth < 1 {
		errs = append(errs, fmt.Errorf("schema.max_conditional_depth must be at least 1, got %d", c.Schema.MaxConditionalDepth))
	}
	if c.Retention.PurgeDeletedFormsAfter < 0 {
		errs = append(errs, errors.New("retention.purge_deleted_forms_after must not be negative"))
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
	}

	return errors.Join(errs...)
}
