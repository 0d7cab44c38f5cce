// internal/app/bootstrap/run.go
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dalemusser/govcodex/internal/app/system/deploy"
	"github.com/dalemusser/govcodex/internal/app/system/launcher"
	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Run drives the whole application lifecycle: configuration, database,
// startup, handler construction, and the retried server launch. It blocks
// until the context is canceled, SIGINT/SIGTERM arrives, or the server
// fails permanently.
func Run(ctx context.Context, logger *zap.Logger) error {
	coreCfg, appCfg, err := LoadConfig(logger)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := ValidateConfig(coreCfg, appCfg, logger); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	deps, err := ConnectDB(ctx, coreCfg, appCfg, logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := Shutdown(shutdownCtx, coreCfg, appCfg, deps, logger); err != nil {
			logger.Error("shutdown failed", zap.Error(err))
		}
	}()

	if err := EnsureSchema(ctx, coreCfg, appCfg, deps, logger); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	if err := Startup(ctx, coreCfg, appCfg, deps, logger); err != nil {
		return fmt.Errorf("startup: %w", err)
	}

	// Select the deployment configuration for where we are running.
	// App config may override parts of the base; a hosted environment
	// still forces its own bind address, port, and share setting.
	base := deploy.Base()
	if appCfg.Port > 0 {
		base.Port = appCfg.Port
	}
	if appCfg.Share {
		base.Share = true
	}
	if appCfg.MaxUploadSize != "" {
		base.MaxUploadSize = appCfg.MaxUploadSize
	}
	if appCfg.CORSOrigins != "" {
		base.AllowedOrigins = strings.Split(appCfg.CORSOrigins, ",")
	}

	env := deploy.DetectEnvironment(os.LookupEnv)
	deployCfg := deploy.Select(base, env)
	logger.Info("deployment selected",
		zap.Bool("hosted", env.Hosted),
		zap.String("addr", deployCfg.Addr()),
		zap.Bool("queue", deployCfg.EnableQueue),
		zap.Bool("inbrowser", deployCfg.InBrowser))

	handler, err := BuildHandler(coreCfg, appCfg, deployCfg, deps, logger)
	if err != nil {
		return fmt.Errorf("build handler: %w", err)
	}

	return serve(ctx, appCfg, deployCfg, handler, logger)
}

// serve binds and runs the HTTP server, retrying the bind through the
// launcher. Once the listener is bound an attempt counts as successful;
// serve errors after that are not retried.
func serve(ctx context.Context, appCfg AppConfig, deployCfg deploy.Config, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              deployCfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	delay, _ := time.ParseDuration(appCfg.LaunchDelay) // validated in ValidateConfig

	l := launcher.New(logger)
	l.MaxAttempts = appCfg.LaunchAttempts
	l.Backoff = launcher.FixedBackoff(delay)

	serveErr := make(chan error, 1)
	err := l.Run(ctx, func(ctx context.Context) error {
		ln, err := net.Listen("tcp", srv.Addr)
		if err != nil {
			return err
		}
		logger.Info("listening", zap.String("addr", srv.Addr))
		go func() {
			serveErr <- srv.Serve(ln)
		}()
		return nil
	})
	if err != nil {
		return err
	}

	if deployCfg.InBrowser {
		url := "http://localhost" + fmt.Sprintf(":%d", deployCfg.Port)
		if err := browser.OpenURL(url); err != nil {
			logger.Warn("could not open browser", zap.String("url", url), zap.Error(err))
		}
	}

	// Block until shutdown is requested or the server dies.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	case s := <-sig:
		logger.Info("signal received, shutting down", zap.String("signal", s.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
