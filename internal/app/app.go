package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"github.com/orgball2608/post-pilot/internal/dispatcher"
	"github.com/orgball2608/post-pilot/internal/dispatcher/dispatcherimpl"
	_ "github.com/orgball2608/post-pilot/internal/migrations"
	"github.com/orgball2608/post-pilot/internal/pgx"
	"github.com/orgball2608/post-pilot/internal/posts"
	"github.com/orgball2608/post-pilot/internal/posts/postsimpl"
	"github.com/orgball2608/post-pilot/internal/publisher"
	"github.com/orgball2608/post-pilot/internal/publisher/telegrampub"
	repositories "github.com/orgball2608/post-pilot/internal/repositories/fx"
	"github.com/orgball2608/post-pilot/pkg/config"
	"github.com/orgball2608/post-pilot/pkg/logger"
	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			postsimpl.New,
			fx.As(new(posts.Service)),
		),
		fx.Annotate(
			telegrampub.New,
			fx.As(new(publisher.Client)),
		),
		fx.Annotate(
			dispatcherimpl.New,
			fx.As(new(dispatcher.Client)),
		),
	),
	repositories.Module,
	fx.Invoke(runMigrations),
	fx.Invoke(run),
)

func runMigrations(c *config.Config) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	db, err := sql.Open("postgres", c.GetDSN())
	if err != nil {
		return err
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		return err
	}

	return goose.Up(db, filepath.Join(wd, "internal", "migrations"))
}

func run(lc fx.Lifecycle, log logger.Logger, cfg *config.Config, dispatchClient dispatcher.Client) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go startHttpServer(log, cfg)

			if err := dispatchClient.ScheduleDispatch(ctx); err != nil {
				log.Error("Failed to start dispatcher", "error", err)
				return err
			}

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func startHttpServer(log logger.Logger, cfg *config.Config) {
	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		healthCheckHandler(w, r, log)
	})

	log.Info(fmt.Sprintf("Starting server on :%d", cfg.App.Port))

	if err := http.ListenAndServe(fmt.Sprintf(":%d", cfg.App.Port), nil); err != nil {
		log.Error("Server failed to start: %v", err)
	}
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request, logger logger.Logger) {
	logger.Info("Health check request received", "Method", r.Method, "URL", r.URL.String())
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		logger.Error("Failed to write response", "Error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
