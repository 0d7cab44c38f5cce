// internal/app/bootstrap/routes_test.go
package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/govcodex/internal/app/resources"
	"github.com/dalemusser/govcodex/internal/app/system/deploy"
	"github.com/dalemusser/govcodex/internal/app/system/viewdata"
	"github.com/dalemusser/govcodex/internal/testutil"
	"github.com/dalemusser/waffle/config"
)

func buildTestHandler(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.SetupTestDB(t)
	deps := DBDeps{
		GovCodexMongoClient:   db.Client(),
		GovCodexMongoDatabase: db,
	}

	coreCfg := &config.CoreConfig{Env: "test"}
	appCfg := validAppConfig()
	deployCfg := deploy.Select(deploy.Base(), deploy.Environment{Hosted: false})

	// Startup normally registers the shared layout before the engine
	// boots; tests call BuildHandler directly, so do it here.
	resources.LoadSharedTemplates()
	viewdata.Init(appCfg.SiteName)

	handler, err := BuildHandler(coreCfg, appCfg, deployCfg, deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler failed: %v", err)
	}
	return handler
}

func TestBuildHandler_ServesHealth(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET /health returned %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestBuildHandler_ServesLanding(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("GET / returned %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestBuildHandler_UnknownPathIs404(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("GET", "/definitely-not-a-page", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /definitely-not-a-page returned %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestBuildHandler_SetsLearnerCookie(t *testing.T) {
	handler := buildTestHandler(t)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == validAppConfig().SessionName {
			found = true
		}
	}
	if !found {
		t.Error("expected a learner session cookie on first visit")
	}
}
