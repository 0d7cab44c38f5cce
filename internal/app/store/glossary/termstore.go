// internal/app/store/glossary/termstore.go
package glossarystore

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

// Store provides access to the terms collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new glossary term store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("terms")}
}

// List returns every term in alphabetical order.
func (s *Store) List(ctx context.Context) ([]models.Term, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var terms []models.Term
	if err := cur.All(ctx, &terms); err != nil {
		return nil, err
	}
	return terms, nil
}

// GetBySlug returns the term with the given slug.
// Returns mongo.ErrNoDocuments if it does not exist.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Term, error) {
	var term models.Term
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&term)
	if err != nil {
		return models.Term{}, err
	}
	return term, nil
}

// Upsert creates or replaces the term identified by term.Slug.
func (s *Store) Upsert(ctx context.Context, term models.Term) error {
	now := time.Now().UTC()
	term.NameCI = text.Fold(term.Name)
	term.UpdatedAt = &now

	filter := bson.M{"slug": term.Slug}
	update := bson.M{
		"$set": bson.M{
			"slug":       term.Slug,
			"name":       term.Name,
			"name_ci":    term.NameCI,
			"definition": term.Definition,
			"source":     term.Source,
			"updated_at": term.UpdatedAt,
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

// Count returns the number of terms.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
