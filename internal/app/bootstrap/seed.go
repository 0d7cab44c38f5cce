// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"embed"
	"fmt"

	actindexstore "github.com/dalemusser/govcodex/internal/app/store/actindex"
	curriculumstore "github.com/dalemusser/govcodex/internal/app/store/curriculum"
	glossarystore "github.com/dalemusser/govcodex/internal/app/store/glossary"
	quizstore "github.com/dalemusser/govcodex/internal/app/store/quizzes"
	"github.com/dalemusser/govcodex/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed/*.yaml
var seedFiles embed.FS

// seedDoc is the top-level shape of the bundled content files.
type seedDoc struct {
	Modules []struct {
		Slug        string   `yaml:"slug"`
		Title       string   `yaml:"title"`
		Summary     string   `yaml:"summary"`
		BodyHTML    string   `yaml:"body_html"`
		Level       string   `yaml:"level"`
		Position    int      `yaml:"position"`
		ArticleRefs []string `yaml:"article_refs"`
		TermRefs    []string `yaml:"term_refs"`
	} `yaml:"modules"`

	Articles []struct {
		Number   string `yaml:"number"`
		Title    string `yaml:"title"`
		Summary  string `yaml:"summary"`
		RiskTier string `yaml:"risk_tier"`
	} `yaml:"articles"`

	Terms []struct {
		Slug       string `yaml:"slug"`
		Name       string `yaml:"name"`
		Definition string `yaml:"definition"`
		Source     string `yaml:"source"`
	} `yaml:"terms"`

	Quizzes []struct {
		ModuleSlug string `yaml:"module_slug"`
		Title      string `yaml:"title"`
		PassScore  int    `yaml:"pass_score"`
		Questions  []struct {
			Prompt      string   `yaml:"prompt"`
			Choices     []string `yaml:"choices"`
			Answer      int      `yaml:"answer"`
			Explanation string   `yaml:"explanation"`
		} `yaml:"questions"`
	} `yaml:"quizzes"`
}

// SeedContent loads the bundled content into any collection that is still
// empty. Collections that already hold documents are left alone, so a
// redeploy never clobbers edited content.
func SeedContent(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	raw, err := seedFiles.ReadFile("seed/content.yaml")
	if err != nil {
		return fmt.Errorf("read seed content: %w", err)
	}

	var doc seedDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse seed content: %w", err)
	}

	if err := seedModules(ctx, db, doc, logger); err != nil {
		return err
	}
	if err := seedArticles(ctx, db, doc, logger); err != nil {
		return err
	}
	if err := seedTerms(ctx, db, doc, logger); err != nil {
		return err
	}
	if err := seedQuizzes(ctx, db, doc, logger); err != nil {
		return err
	}
	return nil
}

func seedModules(ctx context.Context, db *mongo.Database, doc seedDoc, logger *zap.Logger) error {
	store := curriculumstore.New(db)
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count modules: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, m := range doc.Modules {
		mod := models.Module{
			Slug:        m.Slug,
			Title:       m.Title,
			Summary:     m.Summary,
			BodyHTML:    m.BodyHTML,
			Level:       m.Level,
			Position:    m.Position,
			Status:      "active",
			ArticleRefs: m.ArticleRefs,
			TermRefs:    m.TermRefs,
		}
		if err := store.Upsert(ctx, mod); err != nil {
			return fmt.Errorf("seed module %q: %w", m.Slug, err)
		}
	}
	logger.Info("seeded curriculum modules", zap.Int("count", len(doc.Modules)))
	return nil
}

func seedArticles(ctx context.Context, db *mongo.Database, doc seedDoc, logger *zap.Logger) error {
	store := actindexstore.New(db)
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count articles: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, a := range doc.Articles {
		art := models.Article{
			Number:   a.Number,
			Title:    a.Title,
			Summary:  a.Summary,
			RiskTier: a.RiskTier,
		}
		if !models.IsValidRiskTier(art.RiskTier) {
			return fmt.Errorf("seed article %q: unknown risk tier %q", a.Number, a.RiskTier)
		}
		if err := store.Upsert(ctx, art); err != nil {
			return fmt.Errorf("seed article %q: %w", a.Number, err)
		}
	}
	logger.Info("seeded AI Act articles", zap.Int("count", len(doc.Articles)))
	return nil
}

func seedTerms(ctx context.Context, db *mongo.Database, doc seedDoc, logger *zap.Logger) error {
	store := glossarystore.New(db)
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count terms: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, tm := range doc.Terms {
		term := models.Term{
			Slug:       tm.Slug,
			Name:       tm.Name,
			Definition: tm.Definition,
			Source:     tm.Source,
		}
		if err := store.Upsert(ctx, term); err != nil {
			return fmt.Errorf("seed term %q: %w", tm.Slug, err)
		}
	}
	logger.Info("seeded glossary terms", zap.Int("count", len(doc.Terms)))
	return nil
}

func seedQuizzes(ctx context.Context, db *mongo.Database, doc seedDoc, logger *zap.Logger) error {
	store := quizstore.New(db)
	n, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count quizzes: %w", err)
	}
	if n > 0 {
		return nil
	}
	for _, q := range doc.Quizzes {
		quiz := models.Quiz{
			ModuleSlug: q.ModuleSlug,
			Title:      q.Title,
			PassScore:  q.PassScore,
		}
		for _, qq := range q.Questions {
			quiz.Questions = append(quiz.Questions, models.QuizQuestion{
				Prompt:      qq.Prompt,
				Choices:     qq.Choices,
				Answer:      qq.Answer,
				Explanation: qq.Explanation,
			})
		}
		if err := store.Upsert(ctx, quiz); err != nil {
			return fmt.Errorf("seed quiz %q: %w", q.ModuleSlug, err)
		}
	}
	logger.Info("seeded quizzes", zap.Int("count", len(doc.Quizzes)))
	return nil
}
