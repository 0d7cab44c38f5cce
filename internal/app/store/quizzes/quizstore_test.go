package quizstore_test

import (
	"testing"

	quizstore "github.com/dalemusser/govcodex/internal/app/store/quizzes"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/govcodex/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Upsert_And_Get(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := quizstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	quiz := models.Quiz{
		ModuleSlug: "foundations",
		Title:      "Foundations self-check",
		Questions: []models.QuizQuestion{
			{Prompt: "Pick A", Choices: []string{"A", "B"}, Answer: 0},
		},
		PassScore: 1,
	}
	if err := store.Upsert(ctx, quiz); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetByModuleSlug(ctx, "foundations")
	if err != nil {
		t.Fatalf("GetByModuleSlug failed: %v", err)
	}
	if saved.Title != "Foundations self-check" {
		t.Errorf("title: got %q", saved.Title)
	}
	if len(saved.Questions) != 1 || saved.Questions[0].Answer != 0 {
		t.Errorf("questions: got %+v", saved.Questions)
	}
}

func TestStore_Upsert_ReplacesQuestions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := quizstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	quiz := models.Quiz{
		ModuleSlug: "risk",
		Title:      "Risk self-check",
		Questions:  []models.QuizQuestion{{Prompt: "Old", Choices: []string{"A"}, Answer: 0}},
		PassScore:  1,
	}
	if err := store.Upsert(ctx, quiz); err != nil {
		t.Fatalf("initial Upsert failed: %v", err)
	}

	quiz.Questions = []models.QuizQuestion{
		{Prompt: "New 1", Choices: []string{"A", "B"}, Answer: 1},
		{Prompt: "New 2", Choices: []string{"A", "B"}, Answer: 0},
	}
	quiz.PassScore = 2
	if err := store.Upsert(ctx, quiz); err != nil {
		t.Fatalf("update Upsert failed: %v", err)
	}

	saved, err := store.GetByModuleSlug(ctx, "risk")
	if err != nil {
		t.Fatalf("GetByModuleSlug failed: %v", err)
	}
	if len(saved.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(saved.Questions))
	}
	if saved.PassScore != 2 {
		t.Errorf("pass_score: got %d, want 2", saved.PassScore)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("count: got %d, want 1", n)
	}
}

func TestStore_Get_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := quizstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByModuleSlug(ctx, "missing"); err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
