package shareclasses

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/openrefdata/fundref/domain/refdata"
	"github.com/openrefdata/fundref/pkg/apperror"
	"github.com/openrefdata/fundref/pkg/logger"
	"github.com/openrefdata/fundref/pkg/pagination"
)

// Service handles business logic for share classes
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new share class service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("shareclasses.svc")),
	}
}

// List returns a page of share classes matching the filters
func (s *Service) List(ctx context.Context, f ListFilters, page, pageSize int) (*ListResponse, error) {
	f.Currency = strings.TrimSpace(f.Currency)
	f.Distribution = strings.TrimSpace(f.Distribution)
	f.Status = strings.TrimSpace(f.Status)
	f.FundID = strings.TrimSpace(f.FundID)
	f.SubFundID = strings.TrimSpace(f.SubFundID)
	f.ISIN = strings.TrimSpace(f.ISIN)

	p := pagination.Normalize(page, pageSize)

	classes, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []refdata.ShareClass{}
	}

	return &ListResponse{
		ShareClasses: classes,
		Total:        total,
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages(total),
	}, nil
}

// GetByID returns a share class with its owner inlined
func (s *Service) GetByID(ctx context.Context, scID string) (*refdata.ShareClass, error) {
	sc, err := s.repo.GetByID(ctx, scID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, apperror.NewNotFound("share class", scID)
	}
	return sc, nil
}

// Create validates and creates a share class attached to exactly one
// of fund_id / subfund_id
func (s *Service) Create(ctx context.Context, req CreateShareClassRequest) (*refdata.ShareClass, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if req.FundID != nil {
		exists, err := s.repo.FundExists(ctx, tx.Tx, *req.FundID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("fund", *req.FundID)
		}
	} else {
		exists, err := s.repo.SubFundExists(ctx, tx.Tx, *req.SubFundID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("subfund", *req.SubFundID)
		}
	}

	sc := &refdata.ShareClass{
		FundID:       req.FundID,
		SubFundID:    req.SubFundID,
		ISINSC:       req.ISINSC,
		Currency:     req.Currency,
		Distribution: req.Distribution,
		FeeMgmt:      req.FeeMgmt,
		PerfFee:      req.PerfFee,
		ExpenseRatio: req.ExpenseRatio,
		NAV:          req.NAV,
		AUM:          req.AUM,
		Status:       req.Status,
	}

	if err := s.repo.Create(ctx, tx.Tx, sc); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	s.log.Info("share class created",
		slog.String("sc_id", sc.SCID),
		slog.String("isin_sc", sc.ISINSC))

	return sc, nil
}

// Update applies a partial update to a share class's mutable fields.
// The key and owner edge are never touched.
func (s *Service) Update(ctx context.Context, scID string, req UpdateShareClassRequest) (*refdata.ShareClass, error) {
	sc, err := s.repo.GetLite(ctx, scID)
	if err != nil {
		return nil, err
	}
	if sc == nil {
		return nil, apperror.NewNotFound("share class", scID)
	}

	hasUpdates := false

	if req.ISINSC != nil {
		sc.ISINSC = *req.ISINSC
		hasUpdates = true
	}
	if req.Currency != nil {
		sc.Currency = *req.Currency
		hasUpdates = true
	}
	if req.Distribution != nil {
		if !refdata.IsValidDistribution(*req.Distribution) {
			return nil, apperror.NewValidation("invalid distribution", map[string]any{
				"distribution": refdata.Distributions(),
			})
		}
		sc.Distribution = *req.Distribution
		hasUpdates = true
	}
	if req.FeeMgmt != nil {
		sc.FeeMgmt = *req.FeeMgmt
		hasUpdates = true
	}
	if req.PerfFee != nil {
		sc.PerfFee = *req.PerfFee
		hasUpdates = true
	}
	if req.ExpenseRatio != nil {
		sc.ExpenseRatio = *req.ExpenseRatio
		hasUpdates = true
	}
	if req.NAV != nil {
		sc.NAV = *req.NAV
		hasUpdates = true
	}
	if req.AUM != nil {
		sc.AUM = *req.AUM
		hasUpdates = true
	}
	if req.Status != nil {
		if !refdata.IsValidStatus(*req.Status) {
			return nil, apperror.NewValidation("invalid status", map[string]any{
				"status": refdata.Statuses(),
			})
		}
		sc.Status = *req.Status
		hasUpdates = true
	}

	if !hasUpdates {
		return sc, nil
	}

	sc.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, sc); err != nil {
		return nil, err
	}

	s.log.Info("share class updated", slog.String("sc_id", sc.SCID))

	return sc, nil
}

func validateCreate(req *CreateShareClassRequest) *apperror.Error {
	details := map[string]any{}

	hasFund := req.FundID != nil && strings.TrimSpace(*req.FundID) != ""
	hasSubFund := req.SubFundID != nil && strings.TrimSpace(*req.SubFundID) != ""

	if hasFund == hasSubFund {
		details["owner"] = []string{"exactly one of fund_id or subfund_id must be set"}
	}
	if !hasFund {
		req.FundID = nil
	}
	if !hasSubFund {
		req.SubFundID = nil
	}

	if req.Distribution != "" && !refdata.IsValidDistribution(req.Distribution) {
		details["distribution"] = refdata.Distributions()
	}

	if req.Status == "" {
		req.Status = refdata.StatusActive
	} else if !refdata.IsValidStatus(req.Status) {
		details["status"] = refdata.Statuses()
	}

	if req.FeeMgmt < 0 || req.PerfFee < 0 || req.ExpenseRatio < 0 {
		details["fees"] = []string{"must not be negative"}
	}

	if len(details) > 0 {
		return apperror.NewValidation("share class validation failed", details)
	}
	return nil
}
