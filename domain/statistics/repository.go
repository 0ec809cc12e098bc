package statistics

import (
	"context"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/openrefdata/fundref/domain/refdata"
	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/logger"
)

// Repository runs the aggregate queries behind the dashboard
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new statistics repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("statistics.repo")),
	}
}

// FundStatusCounts returns the number of funds per status
func (r *Repository) FundStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount

	err := r.db.NewSelect().
		Model((*refdata.Fund)(nil)).
		ColumnExpr("f.status AS status").
		ColumnExpr("count(*) AS count").
		Group("f.status").
		Scan(ctx, &rows)

	if err != nil {
		r.log.Error("failed to count funds by status", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return rows, nil
}

// FundTypeCounts returns the number of funds per fund type, most
// populous type first
func (r *Repository) FundTypeCounts(ctx context.Context) ([]TypeCount, error) {
	var rows []TypeCount

	err := r.db.NewSelect().
		Model((*refdata.Fund)(nil)).
		ColumnExpr("f.fund_type AS name").
		ColumnExpr("count(*) AS value").
		Group("f.fund_type").
		OrderExpr("count(*) DESC").
		Scan(ctx, &rows)

	if err != nil {
		r.log.Error("failed to count funds by type", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return rows, nil
}

// ManagementStatusCounts returns the number of management entities per
// status
func (r *Repository) ManagementStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount

	err := r.db.NewSelect().
		Model((*refdata.ManagementEntity)(nil)).
		ColumnExpr("me.status AS status").
		ColumnExpr("count(*) AS count").
		Group("me.status").
		Scan(ctx, &rows)

	if err != nil {
		r.log.Error("failed to count management entities by status", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return rows, nil
}
