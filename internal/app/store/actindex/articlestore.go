// internal/app/store/actindex/articlestore.go
package actindexstore

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dalemusser/govcodex/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the articles collection (the AI Act index).
type Store struct {
	c *mongo.Collection
}

// New creates a new article store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("articles")}
}

// ListByTier returns the articles in one risk tier, ordered by article number.
func (s *Store) ListByTier(ctx context.Context, tier string) ([]models.Article, error) {
	return s.list(ctx, bson.M{"risk_tier": tier})
}

// ListAll returns every article ordered by article number.
func (s *Store) ListAll(ctx context.Context) ([]models.Article, error) {
	return s.list(ctx, bson.M{})
}

func (s *Store) list(ctx context.Context, filter bson.M) ([]models.Article, error) {
	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var arts []models.Article
	if err := cur.All(ctx, &arts); err != nil {
		return nil, err
	}
	return arts, nil
}

// GetByNumber returns the article with the given number.
// Returns mongo.ErrNoDocuments if it does not exist.
func (s *Store) GetByNumber(ctx context.Context, number string) (models.Article, error) {
	var art models.Article
	err := s.c.FindOne(ctx, bson.M{"number": number}).Decode(&art)
	if err != nil {
		return models.Article{}, err
	}
	return art, nil
}

// Search returns articles whose title or summary contains the query,
// case-insensitively (matching on the folded copies).
func (s *Store) Search(ctx context.Context, query string) ([]models.Article, error) {
	folded := text.Fold(strings.TrimSpace(query))
	if folded == "" {
		return nil, nil
	}
	pattern := regexp.QuoteMeta(folded)
	filter := bson.M{"$or": []bson.M{
		{"title_ci": bson.M{"$regex": pattern}},
		{"summary_ci": bson.M{"$regex": pattern}},
	}}
	return s.list(ctx, filter)
}

// Upsert creates or replaces the article identified by art.Number.
func (s *Store) Upsert(ctx context.Context, art models.Article) error {
	now := time.Now().UTC()
	art.TitleCI = text.Fold(art.Title)
	art.SummaryCI = text.Fold(art.Summary)
	art.UpdatedAt = &now

	filter := bson.M{"number": art.Number}
	update := bson.M{
		"$set": bson.M{
			"number":     art.Number,
			"title":      art.Title,
			"title_ci":   art.TitleCI,
			"summary":    art.Summary,
			"summary_ci": art.SummaryCI,
			"risk_tier":  art.RiskTier,
			"updated_at": art.UpdatedAt,
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

// Count returns the number of articles.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
