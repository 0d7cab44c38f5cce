// internal/domain/models/attempt.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attempt records one graded quiz submission by an anonymous learner.
// LearnerID comes from the learner session cookie, not from an account.
type Attempt struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	LearnerID  string             `bson:"learner_id" json:"learner_id"`
	ModuleSlug string             `bson:"module_slug" json:"module_slug"`

	Score  int  `bson:"score" json:"score"`
	Total  int  `bson:"total" json:"total"`
	Passed bool `bson:"passed" json:"passed"`

	// Answers holds the submitted choice index per question, -1 if skipped.
	Answers []int `bson:"answers" json:"answers"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
