package config

import (
	"os"
	"testing"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "/etc/finbook/firebase.json")
}

func TestLoad_Success(t *testing.T) {
	setRequiredEnvVars(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "5000" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "5000")
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default localhost URI", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "finbook" {
		t.Errorf("Mongo.Database = %q, want %q", cfg.Mongo.Database, "finbook")
	}
	if cfg.Firebase.CredentialsFile != "/etc/finbook/firebase.json" {
		t.Errorf("Firebase.CredentialsFile = %q, want env value", cfg.Firebase.CredentialsFile)
	}
}

func TestLoad_MissingFirebaseCredentials(t *testing.T) {
	t.Setenv("FIREBASE_CREDENTIALS_FILE", "")
	os.Unsetenv("FIREBASE_CREDENTIALS_FILE")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for missing FIREBASE_CREDENTIALS_FILE, got nil")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "finance")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != "8081" {
		t.Errorf("Server.Port = %q, want %q", cfg.Server.Port, "8081")
	}
	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("Mongo.URI = %q, want override", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "finance" {
		t.Errorf("Mongo.Database = %q, want %q", cfg.Mongo.Database, "finance")
	}
}

func TestLoad_TLSValidation(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("TLS_ENABLED", "true")
	t.Setenv("TLS_CERT_PATH", "")
	t.Setenv("TLS_KEY_PATH", "")

	_, err := Load()
	if err == nil {
		t.Error("Load() expected error for TLS enabled without cert paths, got nil")
	}

	t.Setenv("TLS_CERT_PATH", "/etc/finbook/cert.pem")
	_, err = Load()
	if err == nil {
		t.Error("Load() expected error for TLS enabled without key path, got nil")
	}

	t.Setenv("TLS_KEY_PATH", "/etc/finbook/key.pem")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed with full TLS config: %v", err)
	}
	if !cfg.TLS.Enabled {
		t.Error("TLS.Enabled = false, want true")
	}
}

func TestLoad_AllowedHosts(t *testing.T) {
	setRequiredEnvVars(t)
	t.Setenv("ALLOWED_HOSTS", "example.com, api.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(cfg.Server.AllowedHosts) != 2 {
		t.Fatalf("AllowedHosts = %v, want 2 entries", cfg.Server.AllowedHosts)
	}
	if cfg.Server.AllowedHosts[0] != "example.com" || cfg.Server.AllowedHosts[1] != "api.example.com" {
		t.Errorf("AllowedHosts = %v, want trimmed entries", cfg.Server.AllowedHosts)
	}
}

func TestGetBoolEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"0", false},
		{"no", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("FINBOOK_TEST_BOOL", tt.value)
			if got := getBoolEnv("FINBOOK_TEST_BOOL", false); got != tt.want {
				t.Errorf("getBoolEnv(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
