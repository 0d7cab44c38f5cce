// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureModules(ctx, db); err != nil {
		problems = append(problems, "modules: "+err.Error())
	}
	if err := ensureArticles(ctx, db); err != nil {
		problems = append(problems, "articles: "+err.Error())
	}
	if err := ensureTerms(ctx, db); err != nil {
		problems = append(problems, "terms: "+err.Error())
	}
	if err := ensureQuizzes(ctx, db); err != nil {
		problems = append(problems, "quizzes: "+err.Error())
	}
	if err := ensureAttempts(ctx, db); err != nil {
		problems = append(problems, "attempts: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func createMany(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}

func ensureModules(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db.Collection("modules"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetName("status_position"),
		},
	})
}

func ensureArticles(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db.Collection("articles"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "number", Value: 1}},
			Options: options.Index().SetName("number_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "risk_tier", Value: 1}, {Key: "number", Value: 1}},
			Options: options.Index().SetName("tier_number"),
		},
	})
}

func ensureTerms(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db.Collection("terms"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetName("slug_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "name_ci", Value: 1}},
			Options: options.Index().SetName("name_ci"),
		},
	})
}

func ensureQuizzes(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db.Collection("quizzes"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "module_slug", Value: 1}},
			Options: options.Index().SetName("module_slug_unique").SetUnique(true),
		},
	})
}

func ensureAttempts(ctx context.Context, db *mongo.Database) error {
	return createMany(ctx, db.Collection("attempts"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "learner_id", Value: 1}, {Key: "module_slug", Value: 1}},
			Options: options.Index().SetName("learner_module"),
		},
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_at_desc"),
		},
	})
}
