package legalentities

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/uptrace/bun"

	"github.com/openrefdata/fundref/domain/refdata"
	"github.com/openrefdata/fundref/internal/database"
	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/logger"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Repository handles database operations for legal entities
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new legal entity repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("legalentities.repo")),
	}
}

// List returns the filtered legal entity page plus total count,
// ordered le_id ascending
func (r *Repository) List(ctx context.Context, f ListFilters, p pagination.Params) ([]refdata.LegalEntity, int, error) {
	var entities []refdata.LegalEntity

	q := r.db.NewSelect().
		Model(&entities).
		Order("le.le_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset())

	if f.Jurisdiction != "" {
		q = q.Where("le.jurisdiction = ?", f.Jurisdiction)
	}
	if f.EntityType != "" {
		q = q.Where("le.entity_type = ?", f.EntityType)
	}
	if f.LegalName != "" {
		q = q.Where("le.legal_name ILIKE ?", "%"+f.LegalName+"%")
	}
	if f.LEI != "" {
		q = q.Where("le.lei ILIKE ?", "%"+f.LEI+"%")
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		r.log.Error("failed to list legal entities", logger.Error(err))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return entities, total, nil
}

// GetByID returns a legal entity by its key
func (r *Repository) GetByID(ctx context.Context, leID string) (*refdata.LegalEntity, error) {
	var entity refdata.LegalEntity

	err := r.db.NewSelect().
		Model(&entity).
		Where("le.le_id = ?", leID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get legal entity", logger.Error(err), slog.String("le_id", leID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &entity, nil
}

// LEIExists checks whether a legal entity already carries the LEI.
// The LEI is immutable after create, so no exclusion is needed.
func (r *Repository) LEIExists(ctx context.Context, db bun.IDB, lei string) (bool, error) {
	if db == nil {
		db = r.db
	}

	exists, err := db.NewSelect().
		Model((*refdata.LegalEntity)(nil)).
		Where("lei = ?", lei).
		Exists(ctx)
	if err != nil {
		r.log.Error("failed to check lei", logger.Error(err), slog.String("lei", lei))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// Create inserts a legal entity within a transaction
func (r *Repository) Create(ctx context.Context, tx bun.Tx, entity *refdata.LegalEntity) error {
	q := tx.NewInsert().
		Model(entity).
		Returning("*")

	if entity.LEID == "" {
		q = q.ExcludeColumn("le_id")
	}

	if _, err := q.Exec(ctx); err != nil {
		if refdata.IsUniqueViolation(err) {
			return apperror.NewConflict("legal entity with this lei already exists")
		}
		r.log.Error("failed to create legal entity", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// Update persists the mutable columns of a legal entity
func (r *Repository) Update(ctx context.Context, entity *refdata.LegalEntity) error {
	_, err := r.db.NewUpdate().
		Model(entity).
		Column("legal_name", "jurisdiction", "entity_type", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		r.log.Error("failed to update legal entity", logger.Error(err), slog.String("le_id", entity.LEID))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// BeginTx starts a new transaction.
func (r *Repository) BeginTx(ctx context.Context) (*database.SafeTx, error) {
	tx, err := database.BeginSafeTx(ctx, r.db)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return tx, nil
}
