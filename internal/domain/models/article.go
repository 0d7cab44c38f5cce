// internal/domain/models/article.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article represents one provision of the EU AI Act as browsed in the
// explorer: the article number, its title, a plain-language summary, and the
// risk tier it primarily concerns.
type Article struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number  string             `bson:"number" json:"number"` // e.g. "6", "52(1)"
	Title   string             `bson:"title" json:"title"`
	TitleCI string             `bson:"title_ci" json:"title_ci"`

	Summary   string `bson:"summary" json:"summary"`
	SummaryCI string `bson:"summary_ci" json:"summary_ci"` // folded copy for text search

	RiskTier string `bson:"risk_tier" json:"risk_tier"` // see RiskTiers

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// RiskTiers enumerates the AI Act risk tiers in severity order.
// "horizontal" covers provisions that apply regardless of tier
// (governance bodies, penalties, definitions).
var RiskTiers = []string{"prohibited", "high", "limited", "minimal", "horizontal"}

// IsValidRiskTier checks if a value is a known risk tier.
func IsValidRiskTier(value string) bool {
	for _, t := range RiskTiers {
		if t == value {
			return true
		}
	}
	return false
}

// RiskTierLabel returns the display label for a risk tier value.
func RiskTierLabel(value string) string {
	switch value {
	case "prohibited":
		return "Prohibited Practices"
	case "high":
		return "High-Risk Systems"
	case "limited":
		return "Limited Risk (Transparency)"
	case "minimal":
		return "Minimal Risk"
	case "horizontal":
		return "Horizontal Provisions"
	default:
		return value
	}
}
