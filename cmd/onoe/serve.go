package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	api "github.com/nirvachan/onoe-sim/internal/api/http"
	authmw "github.com/nirvachan/onoe-sim/internal/auth/middleware"
	"github.com/nirvachan/onoe-sim/internal/commentary"
	"github.com/nirvachan/onoe-sim/internal/dataset"
	"github.com/nirvachan/onoe-sim/internal/pressure"
	"github.com/nirvachan/onoe-sim/internal/storage"
	syncx "github.com/nirvachan/onoe-sim/internal/sync"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.CheckAdmin(); err != nil {
		return err
	}
	if cfg.AdminPassHash == "" {
		logger.Warn("ADMIN_PASS_HASH not set, admin routes disabled")
	}

	dbh, store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer dbh.Close()
	events := syncx.NewEventRepo(dbh)

	profiles, err := pressure.Load(cfg.StakeholdersFile)
	if err != nil {
		return err
	}

	blobs, err := storage.NewFSStore(cfg.SnapshotDir)
	if err != nil {
		return err
	}
	reseeder := &dataset.Reseeder{Store: store, Blobs: blobs, Events: events, Log: logger}
	if cfg.SeedOnStart {
		if _, err := reseeder.Reseed(ctx, cfg.RNGSeed, "startup"); err != nil {
			return err
		}
	}

	talk := commentary.NewService(newGenerator(ctx), commentaryOptions(ctx))

	r := api.NewRouter(api.Deps{
		Store:        store,
		Commentary:   talk,
		Stakeholders: profiles,
		Reseeder:     reseeder,
		Events:       events,
		Blobs:        blobs,
		Auth:         authmw.NewAuthService(cfg.AuthHMACSecret),
		AdminUser:    cfg.AdminUser,
		AdminHash:    cfg.AdminPassHash,
		CORSOrigins:  cfg.CORSOrigins,
		Logger:       logger,
	})

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = s.Shutdown(sctx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("db", cfg.DBDriver))
	if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newGenerator returns nil without an API key; the service then answers
// with the fallback sentence.
func newGenerator(ctx context.Context) commentary.Generator {
	if cfg.GeminiAPIKey == "" {
		logger.Warn("GEMINI_API_KEY not set, commentary uses fallback")
		return nil
	}
	g, err := commentary.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Warn("gemini client", zap.Error(err))
		return nil
	}
	return g
}

func commentaryOptions(ctx context.Context) commentary.Options {
	opts := commentary.Options{TTL: cfg.CommentaryTTL, Timeout: cfg.CommentaryLimit, Logger: logger}
	if cfg.RedisAddr == "" {
		return opts
	}
	rc := commentary.NewRedisCache(cfg.RedisAddr)
	pctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rc.Ping(pctx); err != nil {
		logger.Warn("redis unavailable, commentary cache disabled", zap.Error(err))
		_ = rc.Close()
		return opts
	}
	opts.Cache = rc
	return opts
}
