// internal/domain/models/quiz.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Quiz represents the self-check questionnaire for one curriculum module.
// A module has at most one quiz, linked by ModuleSlug.
type Quiz struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ModuleSlug string             `bson:"module_slug" json:"module_slug"`
	Title      string             `bson:"title" json:"title"`

	Questions []QuizQuestion `bson:"questions" json:"questions"`

	// PassScore is the minimum number of correct answers to pass.
	PassScore int `bson:"pass_score" json:"pass_score"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// QuizQuestion is one multiple-choice question. Answer indexes Choices.
type QuizQuestion struct {
	Prompt  string   `bson:"prompt" json:"prompt"`
	Choices []string `bson:"choices" json:"choices"`
	Answer  int      `bson:"answer" json:"answer"`

	// Explanation shown with the result, regardless of correctness.
	Explanation string `bson:"explanation,omitempty" json:"explanation,omitempty"`
}
