package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/itemdata/internal/demo"
	"github.com/dmitrymomot/itemdata/pkg/config"
	"github.com/dmitrymomot/itemdata/pkg/item"
	"github.com/dmitrymomot/itemdata/pkg/logger"
	"github.com/dmitrymomot/itemdata/pkg/opensearch"
)

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	Language string `env:"DEMO_LANG" envDefault:"es"`
}

func main() {
	var (
		app       appConfig
		searchCfg opensearch.Config
		itemCfg   item.Config
	)
	config.MustLoad(&app)
	config.MustLoad(&searchCfg)
	config.MustLoad(&itemCfg)

	log := logger.New(
		logger.WithEnvironment(app.Env, "itemdemo"),
		logger.WithContextExtractors(logger.RunIDExtractor()),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = logger.WithRunID(ctx, uuid.NewString())

	mgr := opensearch.NewManager(searchCfg, opensearch.WithLogger(log))
	err := run(ctx, log, mgr, app, itemCfg, os.Stdout)
	stop()
	if err != nil {
		log.ErrorContext(ctx, "demo failed", logger.Error(err))
		os.Exit(1)
	}
}

// run holds the connection for exactly the length of the script: it is
// released on every path once Acquire succeeded.
func run(ctx context.Context, log *slog.Logger, mgr *opensearch.Manager, app appConfig, itemCfg item.Config, out io.Writer) (err error) {
	client, err := mgr.Acquire(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := mgr.Release(); releaseErr != nil {
			log.WarnContext(ctx, "release failed", logger.Errors(err, releaseErr))
		}
	}()

	tr, err := demo.Messages("es")
	if err != nil {
		return err
	}

	script, err := demo.NewScript(
		item.NewRepository(client, itemCfg, item.WithLogger(log)),
		tr,
		demo.WithOutput(out),
		demo.WithLanguage(app.Language),
		demo.WithLogger(log),
	)
	if err != nil {
		return err
	}

	return script.Run(ctx)
}
