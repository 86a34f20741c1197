// Package main implements tripdiaryctl, a command-line front end for the
// local trip-diary store. Every command opens the store from --data,
// applies its mutation, and flushes pending writes before exiting.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-redis/redis/v8"
	"github.com/spf13/cobra"

	"github.com/501wxrit/TripDiary-PWA/internal/config"
	"github.com/501wxrit/TripDiary-PWA/internal/storage"
	"github.com/501wxrit/TripDiary-PWA/internal/store"
)

const (
	dbFile = "tripdiary.db"
	// legacyFile is where pre-sqlite versions kept their data; it is
	// migrated into the database on first read and then left alone.
	legacyFile = "storage.json"
)

var (
	dataFlag string

	rootCmd = &cobra.Command{
		Use:   "tripdiaryctl",
		Short: "Manage the local TripDiary state store",
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&dataFlag, "data", "d", "", "Data directory for the local store (default $DATA_DIR or \".\")")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openStore opens and hydrates the local store on the backend selected by
// STORAGE_DRIVER (sqlite, redis, or none for in-memory only); --data
// overrides DATA_DIR. The returned cleanup flushes pending writes and
// releases the backend handle.
func openStore() (*store.Store, func(), error) {
	cfg, err := config.LoadLocal()
	if err != nil {
		return nil, nil, err
	}
	if dataFlag != "" {
		cfg.DataDir = dataFlag
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	var primary storage.Backend
	closeBackend := func() error { return nil }
	switch cfg.StorageDriver {
	case "sqlite":
		db, err := storage.OpenSQLite(filepath.Join(cfg.DataDir, dbFile))
		if err != nil {
			return nil, nil, fmt.Errorf("open local store: %w", err)
		}
		primary = db
		closeBackend = db.Close
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		primary = storage.NewRedis(client)
		closeBackend = client.Close
	case "none":
		// In-memory only; the adapter degrades every storage call to a
		// no-op and nothing survives the process.
	}
	legacy := storage.NewFile(filepath.Join(cfg.DataDir, legacyFile))

	s := store.New(storage.NewAdapter(primary, legacy, log), log)
	s.Load(context.Background())

	cleanup := func() {
		_ = s.Flush(context.Background())
		s.Close()
		_ = closeBackend()
	}
	return s, cleanup, nil
}
