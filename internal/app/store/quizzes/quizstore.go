// internal/app/store/quizzes/quizstore.go
package quizstore

import (
	"context"
	"time"

	"github.com/dalemusser/govcodex/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the quizzes collection.
// Each module has at most one quiz document (one per module_slug).
type Store struct {
	c *mongo.Collection
}

// New creates a new quiz store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("quizzes")}
}

// GetByModuleSlug returns the quiz for a module.
// Returns mongo.ErrNoDocuments if the module has no quiz.
func (s *Store) GetByModuleSlug(ctx context.Context, moduleSlug string) (models.Quiz, error) {
	var quiz models.Quiz
	err := s.c.FindOne(ctx, bson.M{"module_slug": moduleSlug}).Decode(&quiz)
	if err != nil {
		return models.Quiz{}, err
	}
	return quiz, nil
}

// Upsert creates or replaces the quiz for quiz.ModuleSlug.
func (s *Store) Upsert(ctx context.Context, quiz models.Quiz) error {
	now := time.Now().UTC()
	quiz.UpdatedAt = &now

	filter := bson.M{"module_slug": quiz.ModuleSlug}
	update := bson.M{
		"$set": bson.M{
			"module_slug": quiz.ModuleSlug,
			"title":       quiz.Title,
			"questions":   quiz.Questions,
			"pass_score":  quiz.PassScore,
			"updated_at":  quiz.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Count returns the number of quizzes.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
