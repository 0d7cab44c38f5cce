package deploy_test

import (
	"reflect"
	"testing"

	"github.com/dalemusser/govcodex/internal/app/system/deploy"
)

func lookupWith(vars map[string]string) deploy.LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDetectEnvironment_IndicatorAbsent(t *testing.T) {
	env := deploy.DetectEnvironment(lookupWith(map[string]string{
		"HOME": "/home/dev",
		"PATH": "/usr/bin",
	}))
	if env.Hosted {
		t.Error("expected Hosted=false when indicator is absent")
	}
}

func TestDetectEnvironment_IndicatorPresent(t *testing.T) {
	env := deploy.DetectEnvironment(lookupWith(map[string]string{
		deploy.HostedIndicatorVar: "org/govcodex",
	}))
	if !env.Hosted {
		t.Error("expected Hosted=true when indicator is present")
	}
}

func TestDetectEnvironment_ValueIgnored(t *testing.T) {
	// Presence-only check: an empty value still counts as hosted.
	env := deploy.DetectEnvironment(lookupWith(map[string]string{
		deploy.HostedIndicatorVar: "",
	}))
	if !env.Hosted {
		t.Error("expected Hosted=true for present-but-empty indicator")
	}
}

func TestSelect_Local(t *testing.T) {
	base := deploy.Base()
	cfg := deploy.Select(base, deploy.Environment{Hosted: false})

	if !cfg.InBrowser {
		t.Error("local config must set InBrowser")
	}
	if cfg.FaviconPath != "" {
		t.Errorf("local config favicon: got %q, want empty", cfg.FaviconPath)
	}
	if cfg.EnableQueue {
		t.Error("local config must not enable queueing")
	}
}

func TestSelect_Hosted(t *testing.T) {
	base := deploy.Base()
	base.Share = true // hosted must override this
	base.Host = "127.0.0.1"
	base.Port = 3000

	cfg := deploy.Select(base, deploy.Environment{Hosted: true})

	if cfg.Host != "0.0.0.0" {
		t.Errorf("hosted host: got %q, want %q", cfg.Host, "0.0.0.0")
	}
	if cfg.Port != deploy.HostedPort {
		t.Errorf("hosted port: got %d, want %d", cfg.Port, deploy.HostedPort)
	}
	if cfg.Share {
		t.Error("hosted config must force Share=false")
	}
	if !cfg.EnableQueue {
		t.Error("hosted config must enable queueing")
	}
	if cfg.InBrowser {
		t.Error("hosted config must not set InBrowser")
	}
	if cfg.FaviconPath != "" {
		t.Errorf("hosted favicon: got %q, want empty", cfg.FaviconPath)
	}
}

func TestSelect_RetainsBaseKeys(t *testing.T) {
	base := deploy.Base()
	base.MaxThreads = 80
	base.ConcurrencyLimit = 25
	base.MaxUploadSize = "25mb"
	base.AllowedOrigins = []string{"https://codex.example.com"}
	base.Debug = true

	for _, hosted := range []bool{false, true} {
		cfg := deploy.Select(base, deploy.Environment{Hosted: hosted})
		if cfg.MaxThreads != 80 {
			t.Errorf("hosted=%v MaxThreads: got %d, want 80", hosted, cfg.MaxThreads)
		}
		if cfg.ConcurrencyLimit != 25 {
			t.Errorf("hosted=%v ConcurrencyLimit: got %d, want 25", hosted, cfg.ConcurrencyLimit)
		}
		if cfg.MaxUploadSize != "25mb" {
			t.Errorf("hosted=%v MaxUploadSize: got %q, want %q", hosted, cfg.MaxUploadSize, "25mb")
		}
		if !reflect.DeepEqual(cfg.AllowedOrigins, []string{"https://codex.example.com"}) {
			t.Errorf("hosted=%v AllowedOrigins changed: got %v", hosted, cfg.AllowedOrigins)
		}
		if !cfg.Debug {
			t.Errorf("hosted=%v Debug: got false, want true", hosted)
		}
	}
}

func TestSelect_LocalScenario(t *testing.T) {
	base := deploy.Base()
	base.Port = 7860
	base.Share = false

	cfg := deploy.Select(base, deploy.Environment{Hosted: false})

	if cfg.Port != 7860 {
		t.Errorf("port: got %d, want 7860", cfg.Port)
	}
	if !cfg.InBrowser {
		t.Error("expected InBrowser=true")
	}
	if cfg.Share {
		t.Error("expected Share=false")
	}
}

func TestAddr(t *testing.T) {
	cfg := deploy.Config{Host: "127.0.0.1", Port: 7860}
	if got := cfg.Addr(); got != "127.0.0.1:7860" {
		t.Errorf("Addr: got %q, want %q", got, "127.0.0.1:7860")
	}
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := deploy.Config{MaxUploadSize: "10mb"}
	n, err := cfg.MaxUploadBytes()
	if err != nil {
		t.Fatalf("MaxUploadBytes failed: %v", err)
	}
	if n != 10*1000*1000 {
		t.Errorf("MaxUploadBytes: got %d, want %d", n, 10*1000*1000)
	}
}

func TestMaxUploadBytes_Empty(t *testing.T) {
	cfg := deploy.Config{}
	n, err := cfg.MaxUploadBytes()
	if err != nil {
		t.Fatalf("MaxUploadBytes failed: %v", err)
	}
	if n != 0 {
		t.Errorf("MaxUploadBytes for empty size: got %d, want 0", n)
	}
}

func TestMaxUploadBytes_Invalid(t *testing.T) {
	cfg := deploy.Config{MaxUploadSize: "lots"}
	if _, err := cfg.MaxUploadBytes(); err == nil {
		t.Error("expected error for unparseable size")
	}
}
