package funds

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

// Repository handles database operations for funds
type Repository struct {
	db  bun.IDB
	log *slog.Logger
}

// NewRepository creates a new fund repository
func NewRepository(db bun.IDB, log *slog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With(logger.Scope("funds.repo")),
	}
}

// Search returns the filtered fund page plus the total count over the
// filtered set. Ordering is always fund_id ascending.
func (r *Repository) Search(ctx context.Context, f SearchFilters, p pagination.Params) ([]refdata.Fund, int, error) {
	var funds []refdata.Fund

	q := r.db.NewSelect().
		Model(&funds).
		Relation("ManagementEntity").
		Order("f.fund_id ASC").
		Limit(p.PageSize).
		Offset(p.Offset())

	if f.FundType != "" {
		q = q.Where("f.fund_type = ?", f.FundType)
	}
	if f.Status != "" {
		q = q.Where("f.status = ?", f.Status)
	}
	if f.MgmtID != "" {
		q = q.Where("f.mgmt_id = ?", f.MgmtID)
	}
	if f.FundCode != "" {
		q = q.Where("f.fund_code ILIKE ?", "%"+f.FundCode+"%")
	}
	if f.ISIN != "" {
		q = q.Where("f.isin_master ILIKE ?", "%"+f.ISIN+"%")
	}

	total, err := q.ScanAndCount(ctx)
	if err != nil {
		r.log.Error("failed to search funds", logger.Error(err))
		return nil, 0, apperror.ErrDatabase.WithInternal(err)
	}

	return funds, total, nil
}

// GetByID returns a fund with its related entities inlined
func (r *Repository) GetByID(ctx context.Context, fundID string) (*refdata.Fund, error) {
	var fund refdata.Fund

	err := r.db.NewSelect().
		Model(&fund).
		Relation("ManagementEntity").
		Relation("ManagementEntity.LegalEntity").
		Relation("LegalEntity").
		Relation("ShareClasses").
		Relation("SubFunds").
		Where("f.fund_id = ?", fundID).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // let the service decide the error
		}
		r.log.Error("failed to get fund", logger.Error(err), slog.String("fund_id", fundID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &fund, nil
}

// GetByCode returns a fund by its unique fund_code, related entities inlined
func (r *Repository) GetByCode(ctx context.Context, fundCode string) (*refdata.Fund, error) {
	var fund refdata.Fund

	err := r.db.NewSelect().
		Model(&fund).
		Relation("ManagementEntity").
		Relation("ManagementEntity.LegalEntity").
		Relation("LegalEntity").
		Relation("ShareClasses").
		Relation("SubFunds").
		Where("f.fund_code = ?", fundCode).
		Scan(ctx)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.log.Error("failed to get fund by code", logger.Error(err), slog.String("fund_code", fundCode))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	return &fund, nil
}

// GetLite returns a fund row without relations, nil when absent
func (r *Repository) GetLite(ctx context.Context, fundID string) (*refdata.Fund, error) {
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

// CodeExists checks whether a fund_code is already taken.
// If db is nil, uses the repository's default connection.
func (r *Repository) CodeExists(ctx context.Context, db bun.IDB, fundCode, excludeID string) (bool, error) {
	if db == nil {
		db = r.db
	}

	q := db.NewSelect().
		Model((*refdata.Fund)(nil)).
		Where("fund_code = ?", fundCode)

	if excludeID != "" {
		q = q.Where("fund_id != ?", excludeID)
	}

	exists, err := q.Exists(ctx)
	if err != nil {
		r.log.Error("failed to check fund code", logger.Error(err))
		return false, apperror.ErrDatabase.WithInternal(err)
	}

	return exists, nil
}

// ManagementExists checks whether a management entity exists
func (r *Repository) ManagementExists(ctx context.Context, db bun.IDB, mgmtID string) (bool, error) {
	if db == nil {
		db = r.db
	}

	exists, err := db.NewSelect().
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

// Create inserts a fund within a transaction. The node row and both
// foreign-key edges land atomically. SQLSTATE checks back up the
// service-level prechecks.
func (r *Repository) Create(ctx context.Context, tx bun.Tx, fund *refdata.Fund) error {
	q := tx.NewInsert().
		Model(fund).
		Returning("*")

	if fund.FundID == "" {
		q = q.ExcludeColumn("fund_id")
	}

	if _, err := q.Exec(ctx); err != nil {
		if refdata.IsUniqueViolation(err) {
			return apperror.NewConflict("fund with this fund_code already exists")
		}
		if refdata.IsForeignKeyViolation(err) {
			return apperror.ErrDependencyNotFound.WithMessage("referenced management or legal entity does not exist")
		}
		r.log.Error("failed to create fund", logger.Error(err))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// Update persists the mutable columns of a fund
func (r *Repository) Update(ctx context.Context, fund *refdata.Fund) error {
	_, err := r.db.NewUpdate().
		Model(fund).
		Column("fund_code", "fund_name", "fund_type", "base_currency", "domicile", "isin_master", "status", "updated_at").
		WherePK().
		Returning("*").
		Exec(ctx)

	if err != nil {
		if refdata.IsUniqueViolation(err) {
			return apperror.NewConflict("fund with this fund_code already exists")
		}
		r.log.Error("failed to update fund", logger.Error(err), slog.String("fund_id", fund.FundID))
		return apperror.ErrDatabase.WithInternal(err)
	}

	return nil
}

// descendantRow is one row of the recursive descendants CTE
type descendantRow struct {
	refdata.SubFund `bun:",extend"`

	TreeDepth int `bun:"tree_depth"`
}

// Descendants returns all sub-funds reachable below a fund within the
// given number of hops, each annotated with its depth (1 = direct child).
func (r *Repository) Descendants(ctx context.Context, fundID string, depth int) ([]refdata.HierarchyNode, error) {
	var rows []descendantRow

	err := r.db.NewRaw(`
		WITH RECURSIVE descendants AS (
			SELECT sf.*, 1 AS tree_depth
			FROM ref.subfunds sf
			WHERE sf.parent_fund_id = ?
			UNION ALL
			SELECT sf.*, d.tree_depth + 1
			FROM ref.subfunds sf
			JOIN descendants d ON sf.parent_subfund_id = d.subfund_id
			WHERE d.tree_depth < ?
		)
		SELECT * FROM descendants ORDER BY tree_depth, subfund_id
	`, fundID, depth).Scan(ctx, &rows)

	if err != nil {
		r.log.Error("failed to expand fund descendants", logger.Error(err), slog.String("fund_id", fundID))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	nodes := make([]refdata.HierarchyNode, len(rows))
	for i := range rows {
		nodes[i] = refdata.SubFundNode(&rows[i].SubFund, rows[i].TreeDepth)
	}
	return nodes, nil
}

// GetSubFundLite returns a sub-fund row without relations, nil when absent
func (r *Repository) GetSubFundLite(ctx context.Context, subfundID string) (*refdata.SubFund, error) {
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

// BeginTx starts a new transaction.
func (r *Repository) BeginTx(ctx context.Context) (*database.SafeTx, error) {
	tx, err := database.BeginSafeTx(ctx, r.db)
	if err != nil {
		r.log.Error("failed to begin transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}
	return tx, nil
}
