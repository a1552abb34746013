package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/shopledger/internal/config"
	shopHttp "github.com/MrJamesThe3rd/shopledger/internal/http"
	ledgerHandler "github.com/MrJamesThe3rd/shopledger/internal/http/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/http/page"
	"github.com/MrJamesThe3rd/shopledger/internal/ledger"
	"github.com/MrJamesThe3rd/shopledger/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rowStore, closeStore, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open row store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	ledgerService := ledger.NewService(rowStore, cfg.Form.Password)

	router := shopHttp.New(
		ledgerHandler.NewHandler(ledgerService),
		page.NewHandler(cfg.App.Name),
		shopHttp.Options{
			Timeout:        cfg.Server.Timeout,
			AllowedOrigins: cfg.Server.AllowedOrigins,
		},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("starting server", "port", srv.Addr, "store", cfg.Store.Driver)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
