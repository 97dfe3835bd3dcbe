package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	SQLite    SQLiteConfig    `yaml:"sqlite"`
	Auth      AuthConfig      `yaml:"auth"`
	AI        AIConfig        `yaml:"ai"`
	Mail      MailConfig      `yaml:"mail"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings. Only used by the postgres credential store.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// SQLiteConfig holds the local credential database settings.
type SQLiteConfig struct {
	Path string `yaml:"path" env:"SQLITE_PATH" env-default:"./data/console.db"`
}

// Credential store drivers.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret         string        `yaml:"jwt_secret"          env:"AUTH_JWT_SECRET"          env-required:"true"`
	JWTIssuer         string        `yaml:"jwt_issuer"          env:"AUTH_JWT_ISSUER"          env-default:"ca-console"`
	AccessTokenTTL    time.Duration `yaml:"access_token_ttl"    env:"AUTH_ACCESS_TOKEN_TTL"    env-default:"12h"`
	Store             string        `yaml:"store"               env:"AUTH_STORE"               env-default:"sqlite"`
	MinPasswordLength int           `yaml:"min_password_length" env:"AUTH_MIN_PASSWORD_LENGTH" env-default:"8"`
	BcryptCost        int           `yaml:"bcrypt_cost"         env:"AUTH_BCRYPT_COST"         env-default:"10"`
}

// StoreDriver returns the normalized credential store name.
func (c AuthConfig) StoreDriver() string {
	return strings.ToLower(strings.TrimSpace(c.Store))
}

// AIConfig holds generative AI provider settings.
type AIConfig struct {
	APIKey            string        `yaml:"api_key"             env:"GEMINI_API_KEY"`
	BaseURL           string        `yaml:"base_url"            env:"AI_BASE_URL"`
	ChatModel         string        `yaml:"chat_model"          env:"AI_CHAT_MODEL"          env-default:"gemini-2.5-flash"`
	AdvisoryModel     string        `yaml:"advisory_model"      env:"AI_ADVISORY_MODEL"      env-default:"gemini-3-pro-preview"`
	ExtractionModel   string        `yaml:"extraction_model"    env:"AI_EXTRACTION_MODEL"    env-default:"gemini-2.5-flash"`
	ThinkingBudget    int32         `yaml:"thinking_budget"     env:"AI_THINKING_BUDGET"     env-default:"16000"`
	SearchGrounding   bool          `yaml:"search_grounding"    env:"AI_SEARCH_GROUNDING"    env-default:"true"`
	RequestTimeout    time.Duration `yaml:"request_timeout"     env:"AI_REQUEST_TIMEOUT"     env-default:"90s"`
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"AI_REQUESTS_PER_MINUTE" env-default:"60"`
}

// Mail compose handoff styles.
const (
	ComposeGmail  = "gmail"
	ComposeMailto = "mailto"
)

// MailConfig selects how reply compose links are built.
type MailConfig struct {
	Compose string `yaml:"compose" env:"MAIL_COMPOSE" env-default:"gmail"`
}

// WorkspaceConfig holds per-user console settings.
type WorkspaceConfig struct {
	SeedDemo bool `yaml:"seed_demo" env:"WORKSPACE_SEED_DEMO" env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-IP request limits. Zero disables a limit.
type RateLimitConfig struct {
	AuthPerMinute   int           `yaml:"auth_per_minute"   env:"RATE_LIMIT_AUTH_PER_MINUTE"   env-default:"20"`
	APIPerMinute    int           `yaml:"api_per_minute"    env:"RATE_LIMIT_API_PER_MINUTE"    env-default:"300"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"  env:"RATE_LIMIT_CLEANUP_INTERVAL"  env-default:"5m"`
}
