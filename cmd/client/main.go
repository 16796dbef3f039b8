package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ultraupload/ultraupload/internal/client/api"
	"github.com/ultraupload/ultraupload/internal/client/avatar"
	"github.com/ultraupload/ultraupload/internal/client/cli"
	"github.com/ultraupload/ultraupload/internal/client/config"
	"github.com/ultraupload/ultraupload/internal/client/kvstore"
	"github.com/ultraupload/ultraupload/internal/client/profile"
	"github.com/ultraupload/ultraupload/internal/client/session"
	"github.com/ultraupload/ultraupload/internal/filex"
	"github.com/ultraupload/ultraupload/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	if err := run(ctx, cfg, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	if _, err := filex.EnsureDataDir(cfg.DataDir); err != nil {
		return err
	}

	store, err := kvstore.Open(ctx, cfg.DatabasePath())
	if err != nil {
		return err
	}
	defer store.Close()

	apiClient := api.NewHTTPClient(cfg.APIURL, api.WithLogger(logger))

	sess := session.New(apiClient, store,
		session.WithLogger(logger),
		session.WithDefaultLanguage(cfg.DefaultLanguage),
	)
	prof := profile.New(store, logger)
	uploader := avatar.NewUploader(cfg, logger)

	app := cli.NewApp(sess, prof, uploader, logger)
	app.Run(ctx)
	return nil
}
