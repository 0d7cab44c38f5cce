// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (logging level,
// environment name, TLS); AppConfig is everything specific to GovCodex.
// The struct is passed to the lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize int
	MongoMinPoolSize int

	// Learner session configuration. Learners are anonymous; the cookie
	// only carries a random ID so quiz attempts can be grouped.
	SessionKey    string // Secret key for signing the learner cookie (must be strong in production)
	SessionName   string // Cookie name (default: govcodex-learner)
	SessionDomain string // Cookie domain (blank means current host)

	// SiteName appears in page titles and the header.
	SiteName string

	// SeedContent loads the bundled curriculum, article index, glossary,
	// and quizzes into any empty collection on startup.
	SeedContent bool

	// Launch retry policy for the HTTP server.
	LaunchAttempts int    // total launch attempts (default: 3)
	LaunchDelay    string // delay between attempts, e.g. "5s"

	// Deployment base overrides. Zero values defer to the deploy package's
	// defaults; hosted deployments still force their own bind address and
	// port regardless of these.
	Port          int
	Share         bool
	MaxUploadSize string // human-readable, e.g. "10mb"
	CORSOrigins   string // comma-separated origin list
}
