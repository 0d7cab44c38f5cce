// internal/app/bootstrap/config_test.go
package bootstrap

import (
	"strings"
	"testing"
)

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:       "mongodb://localhost:27017",
		MongoDatabase:  "govcodex",
		SessionName:    "govcodex-learner",
		SiteName:       "AI Governance Architect's Codex",
		LaunchAttempts: 3,
		LaunchDelay:    "5s",
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	if err := ValidateConfig(nil, validAppConfig(), testLogger()); err != nil {
		t.Errorf("ValidateConfig rejected a valid config: %v", err)
	}
}

func TestValidateConfig_BadMongoURI(t *testing.T) {
	cfg := validAppConfig()
	cfg.MongoURI = "not-a-mongo-uri"

	err := ValidateConfig(nil, cfg, testLogger())
	if err == nil {
		t.Fatal("expected error for invalid Mongo URI, got nil")
	}
	if !strings.Contains(err.Error(), "MongoDB URI") {
		t.Errorf("error %q does not mention the MongoDB URI", err)
	}
}

func TestValidateConfig_PortRange(t *testing.T) {
	cfg := validAppConfig()
	cfg.Port = 70000

	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for out-of-range port, got nil")
	}
}

func TestValidateConfig_BadUploadSize(t *testing.T) {
	cfg := validAppConfig()
	cfg.MaxUploadSize = "ten megabytes"

	if err := ValidateConfig(nil, cfg, testLogger()); err == nil {
		t.Error("expected error for unparseable upload size, got nil")
	}
}

func TestValidateConfig_LaunchPolicy(t *testing.T) {
	tests := []struct {
		name     string
		attempts int
		delay    string
		wantErr  bool
	}{
		{"defaults", 3, "5s", false},
		{"single attempt", 1, "0s", false},
		{"zero attempts", 0, "5s", true},
		{"negative attempts", -1, "5s", true},
		{"bad delay", 3, "five seconds", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			cfg.LaunchAttempts = tt.attempts
			cfg.LaunchDelay = tt.delay

			err := ValidateConfig(nil, cfg, testLogger())
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
