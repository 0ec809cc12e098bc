package management

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

// Repository handles database operations for management entities
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new management entity repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("management.repo")),
	}
}

// List returns the filtered management entity page plus total count,
// each entity carrying its managed-fund count. Ordered mgmt_id ascending.
func (r *Repository) List(ctx context.Context, f ListFilters, p pagination.Params) ([]refdata.ManagementEntity, int, error) {
	var entities []refdata.ManagementEntity

	q := r.db.NewSelect().
		Model(&entities).
		ColumnExpr("me.*").
		ColumnExpr("(SELECT count(*) FROM ref.funds f WHERE f.mgmt_id = me.mgmt_id) AS total_funds").
		Relation("LegalEntity").
		Order("me.mgmt_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset())

	if f.Status != "" {
		q = q.Where("me.status = ?", f.Status)
	}
	if f.Domicile != "" {
		q = q.Where("me.domicile = ?", f.Domicile)
	}
	if f.EntityType != "" {
		q = q.Where("me.entity_type = ?", f.EntityType)
	}
	if f.RegistrationNo != "" {
		q = q.Where("me.registration_no ILIKE ?", "%"+f.RegistrationNo+"%")
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		r.log.Error("failed to list management entities", logger.Error(err))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return entities, total, nil
}

// GetByID returns a management entity with its legal entity and fund
// count inlined
func (r *Repository) GetByID(ctx context.Context, mgmtID string) (*refdata.ManagementEntity, error) {
	var entity refdata.ManagementEntity

	err := r.db.NewSelect().
		Model(&entity).
		ColumnExpr("me.*").
		ColumnExpr("(SELECT count(*) FROM ref.funds f WHERE f.mgmt_id = me.mgmt_id) AS total_funds").
		Relation("LegalEntity").
		Where("me.mgmt_id = ?", mgmtID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get management entity", logger.Error(err), slog.String("mgmt_id", mgmtID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &entity, nil
}

// Exists checks whether a management entity exists
func (r *Repository) Exists(ctx context.Context, mgmtID string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*refdata.ManagementEntity)(nil)).
		Where("mgmt_id = ?", mgmtID).
		Exists(ctx)

	if err != nil {
		r.log.Error("failed to check management entity", logger.Error(err), slog.String("mgmt_id", mgmtID))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// LegalEntityExists checks whether a legal entity exists
func (r *Repository) LegalEntityExists(ctx context.Context, db bun.IDB, leID string) (bool, error) {
	if db == nil {
		db = r.db
	}

	exists, err := db.NewSelect().
		Model((*refdata.LegalEntity)(nil)).
		Where("le_id = ?", leID).
		Exists(ctx)

	if err != nil {
		r.log.Error("failed to check legal entity", logger.Error(err), slog.String("le_id", leID))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// ListFunds returns the page of funds managed by an entity plus the total
func (r *Repository) ListFunds(ctx context.Context, mgmtID string, p pagination.Params) ([]refdata.Fund, int, error) {
	var funds []refdata.Fund

	total, err := r.db.NewSelect().
		Model(&funds).
		Where("f.mgmt_id = ?", mgmtID).
		Order("f.fund_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset()).
		ScanAndCount(ctx)

	if err != nil {
		r.log.Error("failed to list managed funds", logger.Error(err), slog.String("mgmt_id", mgmtID))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return funds, total, nil
}

// Create inserts a management entity within a transaction
func (r *Repository) Create(ctx context.Context, tx bun.Tx, entity *refdata.ManagementEntity) error {
	q := tx.NewInsert().
		Model(entity).
		Returning("*")

	if entity.MgmtID == "" {
		q = q.ExcludeColumn("mgmt_id")
	}

	if _, err := q.Exec(ctx); err != nil {
		if refdata.IsUniqueViolation(err) {
			return apperror.NewConflict("management entity with this mgmt_id already exists")
		}
		if refdata.IsForeignKeyViolation(err) {
			return apperror.ErrDependencyNotFound.WithMessage("referenced legal entity does not exist")
		}
		r.log.Error("failed to create management entity", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// Update persists the mutable columns of a management entity
func (r *Repository) Update(ctx context.Context, entity *refdata.ManagementEntity) error {
	_, err := r.db.NewUpdate().
		Model(entity).
		Column("registration_no", "domicile", "entity_type", "status", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		r.log.Error("failed to update management entity", logger.Error(err), slog.String("mgmt_id", entity.MgmtID))
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
