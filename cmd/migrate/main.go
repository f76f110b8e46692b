package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/evolvex/evolvex/evolvex"
	"github.com/evolvex/evolvex/evolvex/database"
	"github.com/evolvex/evolvex/evolvex/logger"
	"github.com/evolvex/evolvex/evolvex/migration"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	batchSize := flag.Int("batch-size", 1000, "insert batch size")
	flag.Parse()

	cfg, err := evolvex.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.SetDefault(slog.New(logger.NewHandler(cfg.Log.Level)))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to Postgres", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(-1)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		slog.Error("Failed to connect to MongoDB", slog.Any("error", err))
		os.Exit(-1)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	migrator := migration.NewMigrator(db.BunDB(), client, cfg.Mongo.Database)
	migrator.SetBatchSize(*batchSize)

	if err := migrator.MigrateAll(ctx); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(-1)
	}

	slog.Info("Migration completed successfully!")
}
