// internal/domain/models/term.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Term represents one glossary entry (e.g. "foundation model",
// "conformity assessment").
type Term struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug   string             `bson:"slug" json:"slug"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"name_ci"`

	Definition string `bson:"definition" json:"definition"`

	// Source of the definition, when one exists (e.g. "EU AI Act Art. 3").
	Source string `bson:"source,omitempty" json:"source,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}
