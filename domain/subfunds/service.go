package subfunds

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

// Service handles business logic for sub-funds
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new sub-fund service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("subfunds.svc")),
	}
}

// List returns a page of sub-funds matching the filters
func (s *Service) List(ctx context.Context, f ListFilters, page, pageSize int) (*ListResponse, error) {
	f.Currency = strings.TrimSpace(f.Currency)
	f.Status = strings.TrimSpace(f.Status)
	f.ISIN = strings.TrimSpace(f.ISIN)
	f.ParentFundID = strings.TrimSpace(f.ParentFundID)

	p := pagination.Normalize(page, pageSize)

	subfunds, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if subfunds == nil {
		subfunds = []refdata.SubFund{}
	}

	return &ListResponse{
		SubFunds:   subfunds,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(total),
	}, nil
}

// GetByID returns a sub-fund with related entities inlined
func (s *Service) GetByID(ctx context.Context, subfundID string) (*refdata.SubFund, error) {
	sf, err := s.repo.GetByID(ctx, subfundID)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, apperror.NewNotFound("subfund", subfundID)
	}
	return sf, nil
}

// Create validates and creates a sub-fund under exactly one parent
func (s *Service) Create(ctx context.Context, req CreateSubFundRequest) (*refdata.SubFund, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if req.ParentFundID != nil {
		exists, err := s.repo.FundExists(ctx, tx.Tx, *req.ParentFundID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("parent fund", *req.ParentFundID)
		}
	} else {
		exists, err := s.repo.SubFundExists(ctx, tx.Tx, *req.ParentSubFundID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("parent subfund", *req.ParentSubFundID)
		}
	}

	if req.MgmtID != "" {
		exists, err := s.repo.ManagementExists(ctx, tx.Tx, req.MgmtID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("management entity", req.MgmtID)
		}
	}

	if req.LEID != "" {
		exists, err := s.repo.LegalEntityExists(ctx, tx.Tx, req.LEID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperror.NewDependencyNotFound("legal entity", req.LEID)
		}
	}

	sf := &refdata.SubFund{
		ParentFundID:    req.ParentFundID,
		ParentSubFundID: req.ParentSubFundID,
		MgmtID:          req.MgmtID,
		LEID:            req.LEID,
		ISINSub:         req.ISINSub,
		Currency:        req.Currency,
		Status:          req.Status,
	}

	if err := s.repo.Create(ctx, tx.Tx, sf); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	s.log.Info("subfund created",
		slog.String("subfund_id", sf.SubFundID),
		slog.String("isin_sub", sf.ISINSub))

	return sf, nil
}

// Update applies a partial update to a sub-fund's mutable fields.
// The key and parent edges are never touched.
func (s *Service) Update(ctx context.Context, subfundID string, req UpdateSubFundRequest) (*refdata.SubFund, error) {
	sf, err := s.repo.GetLite(ctx, subfundID)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, apperror.NewNotFound("subfund", subfundID)
	}

	hasUpdates := false

	if req.ISINSub != nil {
		sf.ISINSub = *req.ISINSub
		hasUpdates = true
	}

	if req.Currency != nil {
		sf.Currency = *req.Currency
		hasUpdates = true
	}

	if req.Status != nil {
		if !refdata.IsValidStatus(*req.Status) {
			return nil, apperror.NewValidation("invalid status", map[string]any{
				"status": refdata.Statuses(),
			})
		}
		sf.Status = *req.Status
		hasUpdates = true
	}

	if !hasUpdates {
		return sf, nil
	}

	sf.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, sf); err != nil {
		return nil, err
	}

	s.log.Info("subfund updated", slog.String("subfund_id", sf.SubFundID))

	return sf, nil
}

// HierarchyParents walks the parent chain upward from a sub-fund,
// ending at the owning fund, up to depth hops.
func (s *Service) HierarchyParents(ctx context.Context, subfundID string, depth int) (*refdata.HierarchyResponse, error) {
	depth = refdata.ClampDepth(depth)

	sf, err := s.repo.GetLite(ctx, subfundID)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, apperror.NewNotFound("subfund", subfundID)
	}

	parents := []refdata.HierarchyNode{}
	cur := sf

	for hop := 1; hop <= depth; hop++ {
		switch {
		case cur.ParentSubFundID != nil:
			parent, err := s.repo.GetLite(ctx, *cur.ParentSubFundID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return &refdata.HierarchyResponse{
					Root:     refdata.SubFundNode(sf, 0),
					Children: []refdata.HierarchyNode{},
					Parents:  parents,
					Depth:    depth,
				}, nil
			}
			parents = append(parents, refdata.SubFundNode(parent, hop))
			cur = parent

		case cur.ParentFundID != nil:
			parent, err := s.repo.GetFundLite(ctx, *cur.ParentFundID)
			if err != nil {
				return nil, err
			}
			if parent != nil {
				parents = append(parents, refdata.FundNode(parent, hop))
			}
			return &refdata.HierarchyResponse{
				Root:     refdata.SubFundNode(sf, 0),
				Children: []refdata.HierarchyNode{},
				Parents:  parents,
				Depth:    depth,
			}, nil

		default:
			return &refdata.HierarchyResponse{
				Root:     refdata.SubFundNode(sf, 0),
				Children: []refdata.HierarchyNode{},
				Parents:  parents,
				Depth:    depth,
			}, nil
		}
	}

	return &refdata.HierarchyResponse{
		Root:     refdata.SubFundNode(sf, 0),
		Children: []refdata.HierarchyNode{},
		Parents:  parents,
		Depth:    depth,
	}, nil
}

func validateCreate(req *CreateSubFundRequest) *apperror.Error {
	details := map[string]any{}

	hasFundParent := req.ParentFundID != nil && strings.TrimSpace(*req.ParentFundID) != ""
	hasSubFundParent := req.ParentSubFundID != nil && strings.TrimSpace(*req.ParentSubFundID) != ""

	if hasFundParent == hasSubFundParent {
		details["parent"] = []string{"exactly one of parent_fund_id or parent_subfund_id must be set"}
	}
	if !hasFundParent {
		req.ParentFundID = nil
	}
	if !hasSubFundParent {
		req.ParentSubFundID = nil
	}

	if req.Status == "" {
		req.Status = refdata.StatusActive
	} else if !refdata.IsValidStatus(req.Status) {
		details["status"] = refdata.Statuses()
	}

	if len(details) > 0 {
		return apperror.NewValidation("subfund validation failed", details)
	}
	return nil
}
