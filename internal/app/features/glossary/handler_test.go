// internal/app/features/glossary/handler_test.go
package glossary_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/govcodex/internal/app/features/glossary"
	"github.com/dalemusser/govcodex/internal/testutil"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := glossary.NewHandler(db, zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestServeTerm_UnknownSlugIs404(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := glossary.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/glossary/no-such-term", nil)
	req = testutil.WithChiURLParam(req, "slug", "no-such-term")
	rec := httptest.NewRecorder()

	func() {
		defer func() {
			if r := recover(); r != nil {
				// Error page rendering may panic without initialized templates
			}
		}()
		handler.ServeTerm(rec, req)
	}()

	if rec.Code != 404 {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestServeList_WithTerms(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	fx := testutil.NewFixtures(t, db)
	fx.CreateTerm(ctx, "provider", "Provider", "The entity that develops an AI system.")

	handler := glossary.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/glossary", nil)
	rec := httptest.NewRecorder()

	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		handler.ServeList(rec, req)
	}()
}
