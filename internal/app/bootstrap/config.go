// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GovCodex.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, session_name, etc.
//   - Environment variables: GOVCODEX_MONGO_URI, GOVCODEX_SESSION_NAME, etc.
//   - Command-line flags: --mongo_uri, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "govcodex", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "session_key", Default: "", Desc: "Learner cookie signing key (random per process when blank)"},
	{Name: "session_name", Default: "govcodex-learner", Desc: "Learner cookie name"},
	{Name: "session_domain", Default: "", Desc: "Learner cookie domain (blank means current host)"},

	{Name: "site_name", Default: "AI Governance Architect's Codex", Desc: "Site name shown in page titles"},
	{Name: "seed_content", Default: true, Desc: "Seed bundled content into empty collections on startup"},

	{Name: "launch_attempts", Default: 3, Desc: "Total HTTP server launch attempts"},
	{Name: "launch_delay", Default: "5s", Desc: "Delay between launch attempts (e.g., 5s, 500ms)"},

	{Name: "port", Default: 0, Desc: "Listen port for local runs (0 uses the deployment default)"},
	{Name: "share", Default: false, Desc: "Expose a public share link on local runs (never honored when hosted)"},
	{Name: "max_upload_size", Default: "", Desc: "Request body cap, human-readable (blank uses the deployment default)"},
	{Name: "cors_origins", Default: "", Desc: "Comma-separated allowed CORS origins (blank uses the deployment default)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, GOVCODEX_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GOVCODEX", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: appValues.Int("mongo_max_pool_size"),
		MongoMinPoolSize: appValues.Int("mongo_min_pool_size"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		SiteName:    appValues.String("site_name"),
		SeedContent: appValues.Bool("seed_content"),

		LaunchAttempts: appValues.Int("launch_attempts"),
		LaunchDelay:    appValues.String("launch_delay"),

		Port:          appValues.Int("port"),
		Share:         appValues.Bool("share"),
		MaxUploadSize: appValues.String("max_upload_size"),
		CORSOrigins:   appValues.String("cors_origins"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// GovCodex validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and checks the launch policy values.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.LaunchAttempts < 1 {
		return fmt.Errorf("launch_attempts must be at least 1, got %d", appCfg.LaunchAttempts)
	}
	if _, err := time.ParseDuration(appCfg.LaunchDelay); err != nil {
		return fmt.Errorf("invalid launch_delay %q: %w", appCfg.LaunchDelay, err)
	}

	if appCfg.Port < 0 || appCfg.Port > 65535 {
		return fmt.Errorf("port %d out of range", appCfg.Port)
	}
	if appCfg.MaxUploadSize != "" {
		if _, err := humanize.ParseBytes(appCfg.MaxUploadSize); err != nil {
			return fmt.Errorf("invalid max_upload_size %q: %w", appCfg.MaxUploadSize, err)
		}
	}

	return nil
}
