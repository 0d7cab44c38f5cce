// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	actexplorerfeature "github.com/dalemusser/govcodex/internal/app/features/actexplorer"
	curriculumfeature "github.com/dalemusser/govcodex/internal/app/features/curriculum"
	errorsfeature "github.com/dalemusser/govcodex/internal/app/features/errors"
	glossaryfeature "github.com/dalemusser/govcodex/internal/app/features/glossary"
	healthfeature "github.com/dalemusser/govcodex/internal/app/features/health"
	homefeature "github.com/dalemusser/govcodex/internal/app/features/home"
	quizfeature "github.com/dalemusser/govcodex/internal/app/features/quiz"

	// Feature view packages register their template sets at init time;
	// they must be linked in before the engine boots.
	_ "github.com/dalemusser/govcodex/internal/app/features/actexplorer/views"
	_ "github.com/dalemusser/govcodex/internal/app/features/curriculum/views"
	_ "github.com/dalemusser/govcodex/internal/app/features/errors/views"
	_ "github.com/dalemusser/govcodex/internal/app/features/glossary/views"
	_ "github.com/dalemusser/govcodex/internal/app/features/home/views"
	_ "github.com/dalemusser/govcodex/internal/app/features/quiz/views"

	"github.com/dalemusser/govcodex/internal/app/system/deploy"
	"github.com/dalemusser/govcodex/internal/app/system/learner"
	"github.com/dalemusser/govcodex/internal/app/system/queue"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for the app.
//
// It is called after configuration, DB connections, schema setup, and the
// Startup hook have completed. The deployment Config decides the outer
// middleware: CORS lists, the request concurrency limiter, and the upload
// size cap all come from it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deployCfg deploy.Config, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Learner sessions are anonymous: the cookie only carries a random ID
	// used to group quiz attempts. Secure cookies in production mode.
	secure := coreCfg.Env == "prod"
	learnerMgr, err := learner.NewManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("learner session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// CORS policy comes from the deployment config.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deployCfg.AllowedOrigins,
		AllowedMethods: deployCfg.AllowedMethods,
		AllowedHeaders: deployCfg.AllowedHeaders,
	}))

	// Concurrency limiter: on hosted deployments excess requests queue,
	// locally they are shed immediately.
	limiter := queue.New(deployCfg.ConcurrencyLimit, deployCfg.EnableQueue)
	r.Use(limiter.Middleware)

	// Every visitor gets a learner ID so quiz attempts can be tracked.
	r.Use(learnerMgr.EnsureLearner)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.GovCodexMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Landing page. Mounting at "/" makes this subrouter the fallback for
	// unmatched paths, so it carries the friendly 404 too.
	errorsHandler := errorsfeature.NewHandler()
	homeHandler := homefeature.NewHandler(deps.GovCodexMongoDatabase, logger)
	homeRouter := homefeature.Routes(homeHandler)
	homeRouter.NotFound(errorsHandler.NotFound)
	r.Mount("/", homeRouter)

	// Curriculum
	curriculumHandler := curriculumfeature.NewHandler(deps.GovCodexMongoDatabase, logger)
	r.Mount("/curriculum", curriculumfeature.Routes(curriculumHandler))

	// AI Act explorer
	actHandler := actexplorerfeature.NewHandler(deps.GovCodexMongoDatabase, logger)
	r.Mount("/act", actexplorerfeature.Routes(actHandler))

	// Glossary
	glossaryHandler := glossaryfeature.NewHandler(deps.GovCodexMongoDatabase, logger)
	r.Mount("/glossary", glossaryfeature.Routes(glossaryHandler))

	// Quizzes and learner progress
	quizHandler := quizfeature.NewHandler(deps.GovCodexMongoDatabase, logger)
	r.Mount("/quiz", quizfeature.Routes(quizHandler))
	r.Mount("/progress", quizfeature.ProgressRoutes(quizHandler))

	r.NotFound(errorsHandler.NotFound)

	// Cap request bodies at the configured upload size.
	maxBytes, err := deployCfg.MaxUploadBytes()
	if err != nil {
		logger.Error("invalid max upload size", zap.Error(err))
		return nil, err
	}
	if maxBytes > 0 {
		return http.MaxBytesHandler(r, maxBytes), nil
	}
	return r, nil
}
