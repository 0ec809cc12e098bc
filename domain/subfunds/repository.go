package subfunds

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

// Repository handles database operations for sub-funds
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new sub-fund repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("subfunds.repo")),
	}
}

// List returns the filtered sub-fund page plus total count,
// ordered subfund_id ascending.
func (r *Repository) List(ctx context.Context, f ListFilters, p pagination.Params) ([]refdata.SubFund, int, error) {
	var subfunds []refdata.SubFund

	q := r.db.NewSelect().
		Model(&subfunds).
		Order("sf.subfund_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset())

	if f.Currency != "" {
		q = q.Where("sf.currency = ?", f.Currency)
	}
	if f.Status != "" {
		q = q.Where("sf.status = ?", f.Status)
	}
	if f.ISIN != "" {
		q = q.Where("sf.isin_sub ILIKE ?", "%"+f.ISIN+"%")
	}
	if f.ParentFundID != "" {
		q = q.Where("sf.parent_fund_id = ?", f.ParentFundID)
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		r.log.Error("failed to list subfunds", logger.Error(err))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return subfunds, total, nil
}

// GetByID returns a sub-fund with parent fund, management entity,
// legal entity and share classes inlined
func (r *Repository) GetByID(ctx context.Context, subfundID string) (*refdata.SubFund, error) {
	var sf refdata.SubFund

	err := r.db.NewSelect().
		Model(&sf).
		Relation("ParentFund").
		Relation("ManagementEntity").
		Relation("ManagementEntity.LegalEntity").
		Relation("LegalEntity").
		Relation("ShareClasses").
		Where("sf.subfund_id = ?", subfundID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get subfund", logger.Error(err), slog.String("subfund_id", subfundID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &sf, nil
}

// GetLite returns a sub-fund row without relations, nil when absent
func (r *Repository) GetLite(ctx context.Context, subfundID string) (*refdata.SubFund, error) {
	var sf refdata.SubFund

	err := r.db.NewSelect().
		Model(&sf).
		Where("sf.subfund_id = ?", subfundID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get subfund", logger.Error(err), slog.String("subfund_id", subfundID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &sf, nil
}

// GetFundLite returns a fund row without relations, nil when absent
func (r *Repository) GetFundLite(ctx context.Context, fundID string) (*refdata.Fund, error) {
	var fund refdata.Fund

	err := r.db.NewSelect().
		Model(&fund).
		Where("f.fund_id = ?", fundID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get fund", logger.Error(err), slog.String("fund_id", fundID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &fund, nil
}

// exists checks arbitrary models inside an optional transaction
func (r *Repository) exists(ctx context.Context, db bun.IDB, model any, column, id string) (bool, error) {
	if db == nil {
		db = r.db
	}

	found, err := db.NewSelect().
		Model(model).
		Where(column+" = ?", id).
		Exists(ctx)

	if err != nil {
		r.log.Error("failed existence check", logger.Error(err), slog.String("id", id))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return found, nil
}

// FundExists checks whether a fund exists
func (r *Repository) FundExists(ctx context.Context, db bun.IDB, fundID string) (bool, error) {
	return r.exists(ctx, db, (*refdata.Fund)(nil), "fund_id", fundID)
}

// SubFundExists checks whether a sub-fund exists
func (r *Repository) SubFundExists(ctx context.Context, db bun.IDB, subfundID string) (bool, error) {
	return r.exists(ctx, db, (*refdata.SubFund)(nil), "subfund_id", subfundID)
}

// ManagementExists checks whether a management entity exists
func (r *Repository) ManagementExists(ctx context.Context, db bun.IDB, mgmtID string) (bool, error) {
	return r.exists(ctx, db, (*refdata.ManagementEntity)(nil), "mgmt_id", mgmtID)
}

// LegalEntityExists checks whether a legal entity exists
func (r *Repository) LegalEntityExists(ctx context.Context, db bun.IDB, leID string) (bool, error) {
	return r.exists(ctx, db, (*refdata.LegalEntity)(nil), "le_id", leID)
}

// Create inserts a sub-fund within a transaction
func (r *Repository) Create(ctx context.Context, tx bun.Tx, sf *refdata.SubFund) error {
	q := tx.NewInsert().
		Model(sf).
		Returning("*")

	if sf.SubFundID == "" {
		q = q.ExcludeColumn("subfund_id")
	}

	if _, err := q.Exec(ctx); err != nil {
		if refdata.IsForeignKeyViolation(err) {
			return apperror.ErrDependencyNotFound.WithMessage("referenced parent, management or legal entity does not exist")
		}
		r.log.Error("failed to create subfund", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// Update persists the mutable columns of a sub-fund
func (r *Repository) Update(ctx context.Context, sf *refdata.SubFund) error {
	_, err := r.db.NewUpdate().
		Model(sf).
		Column("isin_sub", "currency", "status", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		r.log.Error("failed to update subfund", logger.Error(err), slog.String("subfund_id", sf.SubFundID))
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
