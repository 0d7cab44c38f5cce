// internal/domain/models/module.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module represents one curriculum module in the codex (e.g. "Foundations of
// AI Governance", "Risk Classification in Practice").
//
// Modules are ordered by Position and addressed by Slug in URLs. BodyHTML is
// authored HTML and must be sanitized before rendering (see system/htmlsanitize).
type Module struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Slug    string             `bson:"slug" json:"slug"`
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"` // lowercase, diacritics-stripped

	Summary  string `bson:"summary,omitempty" json:"summary,omitempty"`
	BodyHTML string `bson:"body_html" json:"body_html"`

	Level    string `bson:"level" json:"level"` // "foundation", "practitioner", "architect"
	Position int    `bson:"position" json:"position"`
	Status   string `bson:"status" json:"status"` // "active" or "disabled"

	// Related material references shown in the module sidebar.
	ArticleRefs []string `bson:"article_refs,omitempty" json:"article_refs,omitempty"` // AI Act article numbers
	TermRefs    []string `bson:"term_refs,omitempty" json:"term_refs,omitempty"`       // glossary term slugs

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// IsActive returns true if the module should appear in learner-facing lists.
func (m *Module) IsActive() bool {
	return m.Status == "active"
}

// ModuleLevels enumerates the valid module levels in display order.
var ModuleLevels = []string{"foundation", "practitioner", "architect"}

// IsValidModuleLevel checks if a value is a known module level.
func IsValidModuleLevel(value string) bool {
	for _, l := range ModuleLevels {
		if l == value {
			return true
		}
	}
	return false
}
