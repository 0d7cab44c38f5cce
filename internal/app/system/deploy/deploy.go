// Package deploy selects the deployment configuration for the GovCodex
// server based on where the process is running.
//
// Two environments are recognized: managed hosting (a platform like Hugging
// Face Spaces, detected by the presence of the SPACE_ID variable) and local
// development. Selection is a pure function over an explicit Environment
// value, so tests never need to mutate the real process environment.
package deploy

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// HostedIndicatorVar is the environment variable whose presence marks a
// managed-hosting deployment. Only presence is checked; the value is ignored.
const HostedIndicatorVar = "SPACE_ID"

// HostedPort is the fixed port managed hosting routes traffic to.
const HostedPort = 7860

// Environment describes where the process is running.
type Environment struct {
	// Hosted is true when running under a managed hosting platform.
	Hosted bool
}

// LookupFunc reports an environment variable and whether it is set,
// matching the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// DetectEnvironment builds an Environment from the given lookup function.
// Pass os.LookupEnv in production and a stub in tests.
func DetectEnvironment(lookup LookupFunc) Environment {
	_, hosted := lookup(HostedIndicatorVar)
	return Environment{Hosted: hosted}
}

// Config is the deployment configuration handed to the server launcher.
//
// A Config is constructed fresh per launch (Base then Select) and treated as
// immutable once selected. Every field present in Base survives Select;
// selection only adds or overrides.
type Config struct {
	Host string // network bind address
	Port int

	Share      bool // expose a public share link (never enabled when hosted)
	Debug      bool
	ShowErrors bool // surface handler errors to the client
	ShowTips   bool

	MaxThreads       int // worker threads for the UI server
	ConcurrencyLimit int // concurrent request limit per event

	// MaxUploadSize is human-readable ("10mb"); use MaxUploadBytes to parse.
	MaxUploadSize string

	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string

	EnableQueue bool // internal request queueing (hosted only)
	InBrowser   bool // auto-open the local URL in a browser (local only)
	FaviconPath string
}

// Base returns the base deployment configuration shared by every
// environment. Select starts from this and applies environment overrides.
func Base() Config {
	return Config{
		Host:             "0.0.0.0",
		Port:             HostedPort,
		Share:            false,
		Debug:            false,
		ShowErrors:       true,
		ShowTips:         false,
		MaxThreads:       40,
		ConcurrencyLimit: 10,
		MaxUploadSize:    "10mb",
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"*"},
	}
}

// Select derives the deployment configuration for env from base.
//
// Hosted: the bind address and port are forced (the platform routes to a
// fixed port), sharing is disabled regardless of base, internal queueing is
// enabled, and no favicon is served. Local: the app opens itself in the
// browser and no favicon is served. Base keys are never removed, only
// overridden.
func Select(base Config, env Environment) Config {
	cfg := base
	if env.Hosted {
		cfg.Host = "0.0.0.0"
		cfg.Port = HostedPort
		cfg.Share = false
		cfg.EnableQueue = true
		cfg.FaviconPath = ""
		return cfg
	}
	cfg.InBrowser = true
	cfg.FaviconPath = ""
	return cfg
}

// Addr returns the host:port bind address for the configuration.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// MaxUploadBytes parses MaxUploadSize ("10mb", "512 KiB") into bytes.
// An empty value means no limit (0, nil).
func (c Config) MaxUploadBytes() (int64, error) {
	if c.MaxUploadSize == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 0, fmt.Errorf("parse max upload size %q: %w", c.MaxUploadSize, err)
	}
	return int64(n), nil
}
