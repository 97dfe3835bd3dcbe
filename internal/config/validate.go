package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Auth.StoreDriver() {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.SQLite.Path) == "" {
			return fmt.Errorf("sqlite.path is required for auth.store=sqlite")
		}
	case StorePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for auth.store=postgres")
		}
	default:
		return fmt.Errorf("auth.store must be one of memory, sqlite, postgres (got %q)", c.Auth.Store)
	}

	if c.Auth.MinPasswordLength < 4 {
		return fmt.Errorf("auth.min_password_length must be >= 4 (got %d)", c.Auth.MinPasswordLength)
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("auth.bcrypt_cost must be in [4, 31] (got %d)", c.Auth.BcryptCost)
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}
	// Zero disables the write deadline.
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.AI.RequestTimeout {
		return fmt.Errorf("server.write_timeout (%s) must exceed ai.request_timeout (%s)",
			c.Server.WriteTimeout, c.AI.RequestTimeout)
	}

	switch c.Mail.Compose {
	case ComposeGmail, ComposeMailto:
	default:
		return fmt.Errorf("mail.compose must be gmail or mailto (got %q)", c.Mail.Compose)
	}

	if c.RateLimit.AuthPerMinute < 0 || c.RateLimit.APIPerMinute < 0 {
		return fmt.Errorf("rate_limit values must be >= 0")
	}

	return nil
}

func (a *AIConfig) validate() error {
	if a.ThinkingBudget < 0 {
		return fmt.Errorf("thinking_budget must be >= 0 (got %d)", a.ThinkingBudget)
	}
	if a.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be >= 0 (got %d)", a.RequestsPerMinute)
	}
	if a.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be > 0 (got %s)", a.RequestTimeout)
	}
	for name, model := range map[string]string{
		"chat_model":       a.ChatModel,
		"advisory_model":   a.AdvisoryModel,
		"extraction_model": a.ExtractionModel,
	} {
		if strings.TrimSpace(model) == "" {
			return fmt.Errorf("%s is required", name)
		}
	}
	return nil
}
