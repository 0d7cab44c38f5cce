// internal/app/store/attempts/attemptstore.go
package attemptstore

import (
	"context"
	"time"

	"github.com/dalemusser/govcodex/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the attempts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new quiz attempt store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attempts")}
}

// Insert records a graded attempt and returns it with its generated ID.
func (s *Store) Insert(ctx context.Context, att models.Attempt) (models.Attempt, error) {
	att.ID = primitive.NewObjectID()
	att.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, att); err != nil {
		return models.Attempt{}, err
	}
	return att, nil
}

// ListByLearner returns a learner's attempts, most recent first.
func (s *Store) ListByLearner(ctx context.Context, learnerID string) ([]models.Attempt, error) {
	filter := bson.M{"learner_id": learnerID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var atts []models.Attempt
	if err := cur.All(ctx, &atts); err != nil {
		return nil, err
	}
	return atts, nil
}

// BestForModule returns the learner's highest-scoring attempt for a module.
// Returns mongo.ErrNoDocuments if the learner has not attempted it.
func (s *Store) BestForModule(ctx context.Context, learnerID, moduleSlug string) (models.Attempt, error) {
	filter := bson.M{"learner_id": learnerID, "module_slug": moduleSlug}
	opts := options.FindOne().SetSort(bson.D{{Key: "score", Value: -1}, {Key: "created_at", Value: 1}})

	var att models.Attempt
	err := s.c.FindOne(ctx, filter, opts).Decode(&att)
	if err != nil {
		return models.Attempt{}, err
	}
	return att, nil
}

// PassedModules returns the set of module slugs the learner has passed.
func (s *Store) PassedModules(ctx context.Context, learnerID string) (map[string]bool, error) {
	filter := bson.M{"learner_id": learnerID, "passed": true}
	slugs, err := s.c.Distinct(ctx, "module_slug", filter)
	if err != nil {
		return nil, err
	}

	passed := make(map[string]bool, len(slugs))
	for _, v := range slugs {
		if slug, ok := v.(string); ok {
			passed[slug] = true
		}
	}
	return passed, nil
}
