// Command migrate applies the embedded goose migrations against the
// configured Postgres database.
//
// Usage:
//
//	migrate up          apply all pending migrations
//	migrate down        roll back the last migration
//	migrate status      print migration status
//	migrate version     print the current schema version
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"go.uber.org/zap"

	"github.com/openrefdata/fundref/internal/config"
	"github.com/openrefdata/fundref/internal/migrate"
	"github.com/openrefdata/fundref/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.NewConfig(logger.NewLogger())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	zlog, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()

	sqldb, err := sql.Open("pgx", cfg.Database.DSN())
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	ctx := context.Background()

	if err := db.PingContext(ctx); err != nil {
		zlog.Fatal("failed to ping database", zap.Error(err))
	}

	m := migrate.NewMigrator(db, zlog)

	switch os.Args[1] {
	case "up":
		err = m.Up(ctx)
	case "down":
		err = m.Down(ctx)
	case "status":
		err = m.Status(ctx)
	case "version":
		var version int64
		version, err = m.Version(ctx)
		if err == nil {
			fmt.Printf("current schema version: %d\n", version)
		}
	default:
		usage()
		os.Exit(1)
	}

	if err != nil {
		zlog.Fatal("migration command failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: migrate <up|down|status|version>")
}
