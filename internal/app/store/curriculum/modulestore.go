// internal/app/store/curriculum/modulestore.go
package curriculumstore

import (
	"context"
	"time"

	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the modules collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new curriculum module store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("modules")}
}

// ListActive returns all active modules ordered by position.
func (s *Store) ListActive(ctx context.Context) ([]models.Module, error) {
	filter := bson.M{"status": "active"}
	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}, {Key: "title_ci", Value: 1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var mods []models.Module
	if err := cur.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

// GetBySlug returns the module with the given slug.
// Returns mongo.ErrNoDocuments if it does not exist.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Module, error) {
	var mod models.Module
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&mod)
	if err != nil {
		return models.Module{}, err
	}
	return mod, nil
}

// Upsert creates or replaces the module identified by mod.Slug.
func (s *Store) Upsert(ctx context.Context, mod models.Module) error {
	now := time.Now().UTC()
	mod.TitleCI = text.Fold(mod.Title)
	mod.UpdatedAt = &now

	filter := bson.M{"slug": mod.Slug}
	update := bson.M{
		"$set": bson.M{
			"slug":         mod.Slug,
			"title":        mod.Title,
			"title_ci":     mod.TitleCI,
			"summary":      mod.Summary,
			"body_html":    mod.BodyHTML,
			"level":        mod.Level,
			"position":     mod.Position,
			"status":       mod.Status,
			"article_refs": mod.ArticleRefs,
			"term_refs":    mod.TermRefs,
			"updated_at":   mod.UpdatedAt,
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

// Count returns the number of modules (any status).
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
