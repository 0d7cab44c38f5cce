// internal/app/bootstrap/seed_test.go
package bootstrap

import (
	"testing"

	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	glossarystore "github.com/dalemusser/govcodex/internal/app/store/glossary"
	"github.com/dalemusser/govcodex/internal/testutil"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestSeedContent_SeedsEmptyCollections(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedContent(ctx, db, testLogger()); err != nil {
		t.Fatalf("SeedContent failed: %v", err)
	}

	mods, err := curriculumstore.New(db).ListActive(ctx)
	if err != nil {
		t.Fatalf("list modules failed: %v", err)
	}
	if len(mods) == 0 {
		t.Fatal("expected seeded modules, got none")
	}

	terms, err := glossarystore.New(db).List(ctx)
	if err != nil {
		t.Fatalf("list terms failed: %v", err)
	}
	if len(terms) == 0 {
		t.Fatal("expected seeded terms, got none")
	}

	// Module references must resolve against the seeded content so pages
	// never link to missing articles or terms.
	termSlugs := make(map[string]bool, len(terms))
	for _, tm := range terms {
		termSlugs[tm.Slug] = true
	}
	for _, mod := range mods {
		for _, ref := range mod.TermRefs {
			if !termSlugs[ref] {
				t.Errorf("module %q references unknown term %q", mod.Slug, ref)
			}
		}
	}
}

func TestSeedContent_DoesNotOverwriteExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx := testutil.NewFixtures(t, db)
	fx.CreateModule(ctx, "custom-module", "Custom Module")

	if err := SeedContent(ctx, db, testLogger()); err != nil {
		t.Fatalf("SeedContent failed: %v", err)
	}

	// The modules collection was not empty, so it must be untouched.
	n, err := curriculumstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("count modules failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 module after seeding a populated collection, got %d", n)
	}
}

func TestSeedContent_IsIdempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := SeedContent(ctx, db, testLogger()); err != nil {
		t.Fatalf("first SeedContent failed: %v", err)
	}
	first, err := curriculumstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("count modules failed: %v", err)
	}

	if err := SeedContent(ctx, db, testLogger()); err != nil {
		t.Fatalf("second SeedContent failed: %v", err)
	}
	second, err := curriculumstore.New(db).Count(ctx)
	if err != nil {
		t.Fatalf("count modules failed: %v", err)
	}

	if first != second {
		t.Errorf("module count changed across seedings: %d then %d", first, second)
	}
}
