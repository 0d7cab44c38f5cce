package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateModule creates an active curriculum module with the given slug and
// title. Returns the created module with its generated ID.
func (f *Fixtures) CreateModule(ctx context.Context, slug, title string) models.Module {
	f.t.Helper()

	now := time.Now().UTC()
	mod := models.Module{
		ID:       primitive.NewObjectID(),
		Slug:     slug,
		Title:    title,
		TitleCI:  text.Fold(title),
		Summary:  "Test summary for " + title,
		BodyHTML: "<p>Body of " + title + "</p>",
		Level:    "foundation",
		Position: 1,
		Status:   "active",
		CreatedAt: now,
	}

	if _, err := f.db.Collection("modules").InsertOne(ctx, mod); err != nil {
		f.t.Fatalf("failed to create test module: %v", err)
	}
	return mod
}

// CreateArticle creates an AI Act article in the given risk tier.
func (f *Fixtures) CreateArticle(ctx context.Context, number, title, tier string) models.Article {
	f.t.Helper()

	now := time.Now().UTC()
	art := models.Article{
		ID:        primitive.NewObjectID(),
		Number:    number,
		Title:     title,
		TitleCI:   text.Fold(title),
		Summary:   "Summary of " + title,
		SummaryCI: text.Fold("Summary of " + title),
		RiskTier:  tier,
		CreatedAt: now,
	}

	if _, err := f.db.Collection("articles").InsertOne(ctx, art); err != nil {
		f.t.Fatalf("failed to create test article: %v", err)
	}
	return art
}

// CreateTerm creates a glossary term.
func (f *Fixtures) CreateTerm(ctx context.Context, slug, name, definition string) models.Term {
	f.t.Helper()

	now := time.Now().UTC()
	term := models.Term{
		ID:         primitive.NewObjectID(),
		Slug:       slug,
		Name:       name,
		NameCI:     text.Fold(name),
		Definition: definition,
		CreatedAt:  now,
	}

	if _, err := f.db.Collection("terms").InsertOne(ctx, term); err != nil {
		f.t.Fatalf("failed to create test term: %v", err)
	}
	return term
}

// CreateQuiz creates a two-question quiz for the given module slug with the
// correct answers at index 0.
func (f *Fixtures) CreateQuiz(ctx context.Context, moduleSlug string) models.Quiz {
	f.t.Helper()

	now := time.Now().UTC()
	quiz := models.Quiz{
		ID:         primitive.NewObjectID(),
		ModuleSlug: moduleSlug,
		Title:      "Self-check: " + moduleSlug,
		Questions: []models.QuizQuestion{
			{
				Prompt:  "Which tier are social scoring systems in?",
				Choices: []string{"Prohibited", "High", "Minimal"},
				Answer:  0,
			},
			{
				Prompt:  "Who carries conformity obligations?",
				Choices: []string{"Providers", "End users only"},
				Answer:  0,
			},
		},
		PassScore: 2,
		CreatedAt: now,
	}

	if _, err := f.db.Collection("quizzes").InsertOne(ctx, quiz); err != nil {
		f.t.Fatalf("failed to create test quiz: %v", err)
	}
	return quiz
}
