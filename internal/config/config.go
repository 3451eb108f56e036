package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	// SourceDriver selects where the question table is loaded from at
	// startup: csv (delimited file), sqlite or postgres.
	SourceDriver   string `yaml:"source_driver"`
	QuestionsPath  string `yaml:"questions_path"`
	FieldDelimiter string `yaml:"field_delimiter"` // "," or ";" depending on deployment
	DBDSN          string `yaml:"db_dsn"`

	AdminUser string `yaml:"admin_user"`
	// ExtraCredentials are additional "user:secret" pairs merged into the
	// built-in store; a secret may be a bcrypt hash.
	ExtraCredentials []string `yaml:"extra_credentials"`

	EnableTokenAuth bool   `yaml:"enable_token_auth"`
	AuthSecret      string `yaml:"auth_hmac_secret"`

	CORSOrigins []string `yaml:"cors_origins"`
}

// Load builds the configuration from defaults, an optional YAML file named by
// QUESTIONBANK_CONFIG, and environment variables, in that order (env wins).
func Load() (Config, error) {
	cfg := Config{
		HTTPAddr:        ":8080",
		SourceDriver:    "csv",
		QuestionsPath:   "./questions.csv",
		FieldDelimiter:  ",",
		AdminUser:       "admin",
		EnableTokenAuth: true,
		AuthSecret:      "supersecret-dev-key",
		CORSOrigins:     []string{"http://localhost:3000"},
	}

	if path := os.Getenv("QUESTIONBANK_CONFIG"); path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(buf, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg.HTTPAddr = envOr("HTTP_ADDR", cfg.HTTPAddr)
	cfg.SourceDriver = envOr("SOURCE_DRIVER", cfg.SourceDriver)
	cfg.QuestionsPath = envOr("QUESTIONS_PATH", cfg.QuestionsPath)
	cfg.FieldDelimiter = envOr("FIELD_DELIMITER", cfg.FieldDelimiter)
	cfg.DBDSN = envOr("DB_DSN", cfg.DBDSN)
	cfg.AdminUser = envOr("ADMIN_USER", cfg.AdminUser)
	if v := os.Getenv("EXTRA_CREDENTIALS"); v != "" {
		cfg.ExtraCredentials = splitCSV(v)
	}
	cfg.EnableTokenAuth = envBool("ENABLE_TOKEN_AUTH", cfg.EnableTokenAuth)
	cfg.AuthSecret = envOr("AUTH_HMAC_SECRET", cfg.AuthSecret)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}

	if cfg.FieldDelimiter != "," && cfg.FieldDelimiter != ";" {
		return Config{}, fmt.Errorf("field_delimiter must be \",\" or \";\", got %q", cfg.FieldDelimiter)
	}
	switch cfg.SourceDriver {
	case "csv", "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("unsupported source_driver: %s", cfg.SourceDriver)
	}
	return cfg, nil
}

// Delimiter returns the row field separator as a rune.
func (c Config) Delimiter() rune { return rune(c.FieldDelimiter[0]) }

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
