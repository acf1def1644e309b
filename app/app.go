package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli"
	"github.com/valyala/fasthttp"

	"keel/internal/api"
	"keel/internal/auth"
	"keel/internal/blob"
	"keel/internal/config"
	"keel/internal/log"
	"keel/internal/ratelimit"
	"keel/internal/service"
	"keel/internal/store"
)

const Name = "keel"

// Room on top of the artifact size cap for multipart framing and metadata
// fields. The exact artifact limit is enforced while streaming into the blob
// store.
const bodySlack = 1 * 1024 * 1024

func Run(c *cli.Context) error {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.IsSet("listen") {
		cfg.Listen = c.String("listen")
	}
	if c.IsSet("data-dir") {
		cfg.DataDir = filepath.Clean(c.String("data-dir"))
	}
	if c.Bool("debug") {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log.Init(cfg.Log, cfg.LogLevel)
	defer log.Close()

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return err
	}

	st, err := store.Open(filepath.Join(cfg.DataDir, "registry.db"))
	if err != nil {
		return err
	}
	defer st.Close()

	blobs, err := blob.Create(blob.BackendType(cfg.Storage.Type), filepath.Join(cfg.DataDir, "artifacts"))
	if err != nil {
		return err
	}
	defer blobs.Close()

	authorizer := auth.New(cfg.Auth)
	limiter := ratelimit.New(ratelimit.Limits{
		ReadsPerMinute:     cfg.Limits.ReadsPerMinute,
		PublishesPerMinute: cfg.Limits.PublishesPerMinute,
		Burst:              cfg.Limits.Burst,
	})

	svc := service.New(st, blobs, cfg.BaseURL, cfg.Limits.MaxUploadSize)
	h := api.NewAPI(svc, authorizer, cfg)
	router := api.SetupRouter(h, limiter)

	server := &fasthttp.Server{
		Handler: router,
		// Uploads flow through the handler as a stream instead of being
		// buffered in memory first.
		StreamRequestBody:  true,
		MaxRequestBodySize: int(cfg.Limits.MaxUploadSize) + bodySlack,
		ReadTimeout:        time.Second * 60,
		WriteTimeout:       time.Second * 60,
	}

	log.Logger.Infof("%s listening on %s (data dir %s, storage %s)",
		Name, cfg.Listen, cfg.DataDir, cfg.Storage.Type)
	return server.ListenAndServe(cfg.Listen)
}
