// Package config โหลดค่าคอนฟิกของแอปจาก .env, ไฟล์ YAML และ environment
package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Mongo     MongoConfig     `yaml:"mongo"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Uploads   UploadsConfig   `yaml:"uploads"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Schema    SchemaConfig    `yaml:"schema"`
	Retention RetentionConfig `yaml:"retention"`
	Log       LogConfig       `yaml:"log"`
	Seed      SeedConfig      `yaml:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string `yaml:"port"            env:"APP_URI"         env-default:"8888"`
	Env            string `yaml:"env"             env:"APP_ENV"         env-default:"development"`
	AllowedOrigins string `yaml:"allowed_origins" env:"ALLOWED_ORIGINS" env-default:"*"`
	BodyLimit      int    `yaml:"body_limit"      env:"BODY_LIMIT"      env-default:"26214400"`
}

// IsDevelopment เปิดรายละเอียด error ใน response
func (s ServerConfig) IsDevelopment() bool {
	return s.Env != "production"
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"             env:"MONGO_URI"             env-required:"true"`
	Database       string        `yaml:"database"        env:"MONGO_DATABASE"        env-default:"FormFlowDB"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGO_CONNECT_TIMEOUT" env-default:"10s"`
	Migrate        bool          `yaml:"migrate"         env:"MONGO_MIGRATE"         env-default:"true"`
}

// RedisConfig is optional; an empty URI disables caching and background jobs.
type RedisConfig struct {
	URI      string `yaml:"uri"      env:"REDIS_URI"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB" env-default:"0"`
}

// Enabled reports whether a Redis address is configured.
func (r RedisConfig) Enabled() bool {
	return r.URI != ""
}

// AuthConfig holds admin authentication settings.
type AuthConfig struct {
	JWTSecret            string        `yaml:"jwt_secret"             env:"JWT_SECRET"`
	TokenTTL             time.Duration `yaml:"token_ttl"              env:"JWT_TTL"                env-default:"168h"`
	DefaultAdminUsername string        `yaml:"default_admin_username" env:"DEFAULT_ADMIN_USERNAME" env-default:"admin"`
	DefaultAdminPassword string        `yaml:"default_admin_password" env:"DEFAULT_ADMIN_PASSWORD" env-default:"admin123"`
}

// UploadsConfig holds file upload settings.
type UploadsConfig struct {
	Dir         string `yaml:"dir"           env:"UPLOADS_DIR"          env-default:"uploads"`
	MaxFileSize int64  `yaml:"max_file_size" env:"UPLOAD_MAX_FILE_SIZE" env-default:"10485760"`
}

// RateLimitConfig holds limits for the public endpoints.
type RateLimitConfig struct {
	APIMax           int           `yaml:"api_max"           env:"RATE_LIMIT_API_MAX"           env-default:"100"`
	APIWindow        time.Duration `yaml:"api_window"        env:"RATE_LIMIT_API_WINDOW"        env-default:"15m"`
	SubmissionMax    int           `yaml:"submission_max"    env:"RATE_LIMIT_SUBMISSION_MAX"    env-default:"20"`
	SubmissionWindow time.Duration `yaml:"submission_window" env:"RATE_LIMIT_SUBMISSION_WINDOW" env-default:"1h"`
}

// SchemaConfig holds form schema limits.
type SchemaConfig struct {
	MaxConditionalDepth int `yaml:"max_conditional_depth" env:"SCHEMA_MAX_CONDITIONAL_DEPTH" env-default:"1"`
}

// RetentionConfig controls the purge of soft-deleted forms. Zero disables it.
type RetentionConfig struct {
	PurgeDeletedFormsAfter time.Duration `yaml:"purge_deleted_forms_after" env:"FORM_PURGE_AFTER" env-default:"720h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// SeedConfig toggles sample data on startup.
type SeedConfig struct {
	SampleForms bool `yaml:"sample_forms" env:"SEED_SAMPLE_FORMS" env-default:"false"`
}
