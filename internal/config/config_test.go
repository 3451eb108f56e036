package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"QUESTIONBANK_CONFIG", "HTTP_ADDR", "SOURCE_DRIVER", "QUESTIONS_PATH",
		"FIELD_DELIMITER", "DB_DSN", "ADMIN_USER", "EXTRA_CREDENTIALS",
		"ENABLE_TOKEN_AUTH", "AUTH_HMAC_SECRET", "CORS_ORIGINS",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.SourceDriver != "csv" || cfg.FieldDelimiter != "," {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.AdminUser != "admin" || !cfg.EnableTokenAuth {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.Delimiter() != ',' {
		t.Fatalf("Delimiter() = %q", cfg.Delimiter())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("FIELD_DELIMITER", ";")
	t.Setenv("SOURCE_DRIVER", "sqlite")
	t.Setenv("EXTRA_CREDENTIALS", "livia:secret, nerva:trajan")
	t.Setenv("ENABLE_TOKEN_AUTH", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.Delimiter() != ';' || cfg.SourceDriver != "sqlite" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if len(cfg.ExtraCredentials) != 2 || cfg.ExtraCredentials[1] != "nerva:trajan" {
		t.Fatalf("extra credentials = %v", cfg.ExtraCredentials)
	}
	if cfg.EnableTokenAuth {
		t.Fatal("ENABLE_TOKEN_AUTH=false ignored")
	}
}

func TestLoadYAMLFileAndEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "questionbank.yaml")
	yaml := `http_addr: ":7070"
field_delimiter: ";"
admin_user: marcus
cors_origins:
  - https://quiz.example.com
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("QUESTIONBANK_CONFIG", path)
	t.Setenv("HTTP_ADDR", ":6060") // env wins over file

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":6060" {
		t.Fatalf("env should win over file, addr = %s", cfg.HTTPAddr)
	}
	if cfg.AdminUser != "marcus" || cfg.FieldDelimiter != ";" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://quiz.example.com" {
		t.Fatalf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("FIELD_DELIMITER", "|")
	if _, err := Load(); err == nil {
		t.Fatal("accepted delimiter other than , or ;")
	}

	clearEnv(t)
	t.Setenv("SOURCE_DRIVER", "mongodb")
	if _, err := Load(); err == nil {
		t.Fatal("accepted unknown source driver")
	}
}
