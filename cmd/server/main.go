package main

import (
	"basecamp/auth"
	"basecamp/internal"
	"basecamp/repositories"
	"basecamp/server"
	"basecamp/services"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gin-gonic/gin"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run owns every resource so deferred cleanup happens before the process exits.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	gin.SetMode(gin.ReleaseMode)

	// 2. Database (BadgerDB)
	options := badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING)
	if config.BadgerInMemory {
		options = badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.WARNING)
	}
	db, err := badger.Open(options)
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	store, err := repositories.NewStore(db, log, config.StoreConflictTimeout)
	if err != nil {
		return fmt.Errorf("store init failed: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.View(func(tx *repositories.Tx) error {
		counts, err := tx.CountAll()
		if err != nil {
			return err
		}
		log.Info("Store opened", "in_memory", config.BadgerInMemory, "counts", counts)
		return nil
	}); err != nil {
		return fmt.Errorf("store inspection failed: %w", err)
	}

	// 3. Services & transport
	authenticator := auth.NewJWTAuthenticator(config.JWTSecret, config.JWTIssuer, config.AuthTokenDuration)
	router := server.NewRouter(log, authenticator, server.Services{
		Trips:     services.NewTripService(store, log),
		Messages:  services.NewMessageService(store, log),
		Favorites: services.NewFavoriteService(store, log),
		Listings:  services.NewListingService(store, log),
	}, config.AllowedOrigins())

	httpServer := &http.Server{
		Addr:              config.Address(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 5. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown: %w", err)
	}
	log.Info("Program stopped cleanly")
	return nil
}
