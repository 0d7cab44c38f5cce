package glossarystore_test

import (
	"testing"

	glossarystore "github.com/dalemusser/govcodex/internal/app/store/glossary"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/govcodex/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Upsert_And_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := glossarystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	term := models.Term{
		Slug:       "foundation-model",
		Name:       "Foundation Model",
		Definition: "A model trained on broad data, adaptable to many tasks.",
		Source:     "EU AI Act Art. 3",
	}
	if err := store.Upsert(ctx, term); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "foundation-model")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Name != "Foundation Model" {
		t.Errorf("name: got %q", saved.Name)
	}
	if saved.NameCI != "foundation model" {
		t.Errorf("name_ci: got %q", saved.NameCI)
	}
	if saved.Source != "EU AI Act Art. 3" {
		t.Errorf("source: got %q", saved.Source)
	}
}

func TestStore_List_Alphabetical(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := glossarystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, term := range []models.Term{
		{Slug: "transparency", Name: "Transparency", Definition: "d"},
		{Slug: "conformity-assessment", Name: "Conformity Assessment", Definition: "d"},
		{Slug: "provider", Name: "Provider", Definition: "d"},
	} {
		if err := store.Upsert(ctx, term); err != nil {
			t.Fatalf("Upsert %q failed: %v", term.Slug, err)
		}
	}

	terms, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}
	want := []string{"conformity-assessment", "provider", "transparency"}
	for i, slug := range want {
		if terms[i].Slug != slug {
			t.Errorf("terms[%d]: got %q, want %q", i, terms[i].Slug, slug)
		}
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := glossarystore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetBySlug(ctx, "missing"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
