// Command migrate applies the embedded goose migrations.
//
// Flags:
//
//	--down     roll back the most recent migration instead
//	--status   print the current schema version and exit
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/carnutri-backend/internal/adapter/postgres"
	"github.com/heartmarshall/carnutri-backend/internal/app"
	"github.com/heartmarshall/carnutri-backend/internal/config"
	"github.com/heartmarshall/carnutri-backend/migrations"
)

func main() {
	downFlag := flag.Bool("down", false, "roll back the most recent migration")
	statusFlag := flag.Bool("status", false, "print the schema version and exit")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool, migrations.FS)
	if err != nil {
		logger.Error("init migrator", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer migrator.Close()

	switch {
	case *statusFlag:
		v, err := migrator.Version(ctx)
		if err != nil {
			logger.Error("read schema version", slog.String("error", err.Error()))
			os.Exit(1)
		}
		pending := migrator.Ping(ctx) != nil
		logger.Info("schema status", slog.Int64("version", v), slog.Bool("pending", pending))

	case *downFlag:
		v, err := migrator.Down(ctx)
		if err != nil {
			logger.Error("migrate down failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migration rolled back", slog.Int64("version", v))

	default:
		applied, err := migrator.Up(ctx)
		if err != nil {
			logger.Error("migrate up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("migrations applied", slog.Any("versions", applied))
	}
}
