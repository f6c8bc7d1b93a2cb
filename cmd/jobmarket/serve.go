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

	"jobmarket/internal/adzuna"
	"jobmarket/internal/etl"
	"jobmarket/internal/events"
	"jobmarket/internal/httpapi"
	"jobmarket/internal/ingest"
	"jobmarket/internal/ml"
	"jobmarket/internal/scheduler"
	"jobmarket/internal/secrets"
	"jobmarket/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the jobmarket HTTP API",
	Long:  "Start the HTTP API; blocks until SIGINT/SIGTERM.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := store.Open(cfg.Database.Path, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	appKey, err := secrets.AdzunaAppKey(cfg.Adzuna.KeyringAccount, cfg.Adzuna.AppKey)
	if err != nil {
		// the read-only endpoints still work without upstream credentials
		logger.Warn("adzuna credentials unavailable, /refresh disabled", zap.Error(err))
	}

	hub := events.NewHub()

	var ing *ingest.Service
	if appKey != "" && cfg.Adzuna.AppID != "" {
		client := adzuna.New(cfg.Adzuna.AppID, appKey, logger)
		if cfg.Adzuna.BaseURL != "" {
			client.BaseURL = cfg.Adzuna.BaseURL
		}
		ing = &ingest.Service{
			Client:      client,
			Store:       st,
			Transformer: etl.NewTransformer(logger),
			Hub:         hub,
			Logger:      logger,
		}
	}

	salary, err := ml.LoadSalaryModel(cfg.Models.Dir)
	if err != nil {
		logger.Warn("salary model not loaded", zap.Error(err))
	}
	category, err := ml.LoadCategoryModel(cfg.Models.Dir)
	if err != nil {
		logger.Warn("classifier model not loaded", zap.Error(err))
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Store:        st,
		Ingest:       ing,
		Salary:       salary,
		Category:     category,
		Hub:          hub,
		Logger:       logger,
		AllowOrigins: cfg.Server.AllowOrigins,
	})

	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()
	if ing != nil && cfg.Refresh.Interval > 0 {
		go scheduler.Every(bgCtx, cfg.Refresh.Interval, "refresh", logger, func(ctx context.Context) error {
			ing.Refresh(ctx, cfg.Refresh.Keyword, cfg.Adzuna.Country, cfg.Refresh.Results)
			return nil
		})
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http api listening", zap.String("addr", cfg.Server.Addr))
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			return err
		}
	}
	return nil
}
