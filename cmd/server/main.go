// Package main provides the entry point for the fund referential API server
package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/openrefdata/fundref/domain/funds"
	"github.com/openrefdata/fundref/domain/health"
	"github.com/openrefdata/fundref/domain/legalentities"
	"github.com/openrefdata/fundref/domain/management"
	"github.com/openrefdata/fundref/domain/shareclasses"
	"github.com/openrefdata/fundref/domain/statistics"
	"github.com/openrefdata/fundref/domain/subfunds"
	"github.com/openrefdata/fundref/domain/tracing"
	"github.com/openrefdata/fundref/internal/config"
	"github.com/openrefdata/fundref/internal/database"
	"github.com/openrefdata/fundref/internal/server"
	"github.com/openrefdata/fundref/pkg/logger"
)

func main() {
	// Load .env files if present (for local development)
	// Note: Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	fx.New(
		// Logging
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),

		// Infrastructure modules
		logger.Module,
		config.Module,
		database.Module,
		server.Module,
		tracing.Module,

		// Domain modules
		health.Module,
		legalentities.Module,
		management.Module,
		funds.Module,
		subfunds.Module,
		shareclasses.Module,
		statistics.Module,
	).Run()
}
