package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/resume"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/storage"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger()
		slog.SetDefault(log)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	store, err := storage.Open(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer store.Close()

	cutoff := time.Now().AddDate(0, -cfg.Storage.RetentionMonths, 0)
	if n, err := store.PurgeVisitsBefore(ctx, cutoff); err != nil {
		log.Warn("purging old visits", "error", err)
	} else if n > 0 {
		log.Info("purged old visits", "count", n)
	}

	checkSite(cfg, log)

	srv, err := server.New(server.Options{Config: cfg, Store: store, Logger: log})
	if err != nil {
		return err
	}
	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("portfolio listening", "addr", cfg.Addr(), "site", cfg.Site.Dir)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// checkSite warns about missing site files. The server still starts: a
// missing data file is reported to visitors by the page itself.
func checkSite(cfg *config.Config, log *slog.Logger) {
	data := filepath.Join(cfg.Site.Dir, cfg.Site.DataFile)
	if _, err := os.Stat(data); err != nil {
		log.Warn("profile document not found", "path", data)
	}

	pdf := filepath.Join(cfg.Site.Dir, cfg.Resume.Path)
	if !resume.Exists(pdf) {
		log.Warn("resume not found", "path", pdf)
		return
	}
	info, err := resume.Inspect(pdf)
	if err != nil {
		log.Warn("inspecting resume", "error", err)
		return
	}
	log.Debug("resume ready", "path", pdf, "pages", info.Pages, "bytes", info.Size)
}
