package shareclasses

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

// Repository handles database operations for share classes
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new share class repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("shareclasses.repo")),
	}
}

// List returns the filtered share class page plus total count,
// ordered sc_id ascending.
func (r *Repository) List(ctx context.Context, f ListFilters, p pagination.Params) ([]refdata.ShareClass, int, error) {
	var classes []refdata.ShareClass

	q := r.db.NewSelect().
		Model(&classes).
		Order("sc.sc_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset())

	if f.Currency != "" {
		q = q.Where("sc.currency = ?", f.Currency)
	}
	if f.Distribution != "" {
		q = q.Where("sc.distribution = ?", f.Distribution)
	}
	if f.Status != "" {
		q = q.Where("sc.status = ?", f.Status)
	}
	if f.FundID != "" {
		q = q.Where("sc.fund_id = ?", f.FundID)
	}
	if f.SubFundID != "" {
		q = q.Where("sc.subfund_id = ?", f.SubFundID)
	}
	if f.ISIN != "" {
		q = q.Where("sc.isin_sc ILIKE ?", "%"+f.ISIN+"%")
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		r.log.Error("failed to list share classes", logger.Error(err))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return classes, total, nil
}

// GetByID returns a share class with its owning vehicle inlined
func (r *Repository) GetByID(ctx context.Context, scID string) (*refdata.ShareClass, error) {
	var sc refdata.ShareClass

	err := r.db.NewSelect().
		Model(&sc).
		Relation("Fund").
		Relation("Fund.ManagementEntity").
		Relation("SubFund").
		Where("sc.sc_id = ?", scID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get share class", logger.Error(err), slog.String("sc_id", scID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &sc, nil
}

// GetLite returns a share class row without relations, nil when absent
func (r *Repository) GetLite(ctx context.Context, scID string) (*refdata.ShareClass, error) {
	var sc refdata.ShareClass

	err := r.db.NewSelect().
		Model(&sc).
		Where("sc.sc_id = ?", scID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get share class", logger.Error(err), slog.String("sc_id", scID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &sc, nil
}

// FundExists checks whether a fund exists
func (r *Repository) FundExists(ctx context.Context, db bun.IDB, fundID string) (bool, error) {
	if db == nil {
		db = r.db
	}

	exists, err := db.NewSelect().
		Model((*refdata.Fund)(nil)).
		Where("fund_id = ?", fundID).
		Exists(ctx)

	if err != nil {
		r.log.Error("failed to check fund", logger.Error(err), slog.String("fund_id", fundID))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// SubFundExists checks whether a sub-fund exists
func (r *Repository) SubFundExists(ctx context.Context, db bun.IDB, subfundID string) (bool, error) {
	if db == nil {
		db = r.db
	}

	exists, err := db.NewSelect().
		Model((*refdata.SubFund)(nil)).
		Where("subfund_id = ?", subfundID).
		Exists(ctx)

	if err != nil {
		r.log.Error("failed to check subfund", logger.Error(err), slog.String("subfund_id", subfundID))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// Create inserts a share class within a transaction
func (r *Repository) Create(ctx context.Context, tx bun.Tx, sc *refdata.ShareClass) error {
	q := tx.NewInsert().
		Model(sc).
		Returning("*")

	if sc.SCID == "" {
		q = q.ExcludeColumn("sc_id")
	}

	if _, err := q.Exec(ctx); err != nil {
		if refdata.IsForeignKeyViolation(err) {
			return apperror.ErrDependencyNotFound.WithMessage("referenced fund or subfund does not exist")
		}
		r.log.Error("failed to create share class", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// Update persists the mutable columns of a share class
func (r *Repository) Update(ctx context.Context, sc *refdata.ShareClass) error {
	_, err := r.db.NewUpdate().
		Model(sc).
		Column("isin_sc", "currency", "distribution", "fee_mgmt", "perf_fee", "expense_ratio", "nav", "aum", "status", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		r.log.Error("failed to update share class", logger.Error(err), slog.String("sc_id", sc.SCID))
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
