package funds

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

// Service handles business logic for funds
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new fund service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("funds.svc")),
	}
}

// Search returns a page of funds matching the filters. No filters means
// the full set; total and total_pages are computed over the filtered set.
func (s *Service) Search(ctx context.Context, f SearchFilters, page, pageSize int) (*ListResponse, error) {
	f.FundType = strings.TrimSpace(f.FundType)
	f.Status = strings.TrimSpace(f.Status)
	f.MgmtID = strings.TrimSpace(f.MgmtID)
	f.FundCode = strings.TrimSpace(f.FundCode)
	f.ISIN = strings.TrimSpace(f.ISIN)

	p := pagination.Normalize(page, pageSize)

	funds, total, err := s.repo.Search(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if funds == nil {
		funds = []refdata.Fund{}
	}

	return &ListResponse{
		Funds:      funds,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(total),
	}, nil
}

// List returns a page of all funds
func (s *Service) List(ctx context.Context, page, pageSize int) (*ListResponse, error) {
	return s.Search(ctx, SearchFilters{}, page, pageSize)
}

// GetByID returns a fund with related entities inlined
func (s *Service) GetByID(ctx context.Context, fundID string) (*refdata.Fund, error) {
	fund, err := s.repo.GetByID(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, apperror.NewNotFound("fund", fundID)
	}
	return fund, nil
}

// GetByCode returns a fund by its unique fund_code
func (s *Service) GetByCode(ctx context.Context, fundCode string) (*refdata.Fund, error) {
	fund, err := s.repo.GetByCode(ctx, fundCode)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, apperror.NewNotFound("fund with code", fundCode)
	}
	return fund, nil
}

// Create validates and creates a fund. Referenced management and legal
// entities must exist; the fund_code must be new. The row and its edges
// are written in one transaction.
func (s *Service) Create(ctx context.Context, req CreateFundRequest) (*refdata.Fund, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	mgmtExists, err := s.repo.ManagementExists(ctx, tx.Tx, req.MgmtID)
	if err != nil {
		return nil, err
	}
	if !mgmtExists {
		return nil, apperror.NewDependencyNotFound("management entity", req.MgmtID)
	}

	leExists, err := s.repo.LegalEntityExists(ctx, tx.Tx, req.LEID)
	if err != nil {
		return nil, err
	}
	if !leExists {
		return nil, apperror.NewDependencyNotFound("legal entity", req.LEID)
	}

	codeTaken, err := s.repo.CodeExists(ctx, tx.Tx, req.FundCode, "")
	if err != nil {
		return nil, err
	}
	if codeTaken {
		return nil, apperror.NewConflict("fund with this fund_code already exists")
	}

	fund := &refdata.Fund{
		FundCode:     req.FundCode,
		FundName:     req.FundName,
		FundType:     req.FundType,
		BaseCurrency: req.BaseCurrency,
		Domicile:     req.Domicile,
		ISINMaster:   req.ISINMaster,
		Status:       req.Status,
		MgmtID:       req.MgmtID,
		LEID:         req.LEID,
	}

	if err := s.repo.Create(ctx, tx.Tx, fund); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	s.log.Info("fund created",
		slog.String("fund_id", fund.FundID),
		slog.String("fund_code", fund.FundCode),
		slog.String("mgmt_id", fund.MgmtID))

	return fund, nil
}

// Update applies a partial update to a fund's mutable fields.
// fund_id, mgmt_id and le_id are never touched.
func (s *Service) Update(ctx context.Context, fundID string, req UpdateFundRequest) (*refdata.Fund, error) {
	fund, err := s.repo.GetLite(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, apperror.NewNotFound("fund", fundID)
	}

	hasUpdates := false

	if req.FundCode != nil {
		code := strings.TrimSpace(*req.FundCode)
		if code == "" {
			return nil, apperror.NewValidation("fund_code cannot be empty", map[string]any{
				"fund_code": []string{"must not be blank"},
			})
		}
		if code != fund.FundCode {
			taken, err := s.repo.CodeExists(ctx, nil, code, fundID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, apperror.NewConflict("fund with this fund_code already exists")
			}
			fund.FundCode = code
			hasUpdates = true
		}
	}

	if req.FundName != nil {
		name := strings.TrimSpace(*req.FundName)
		if name == "" {
			return nil, apperror.NewValidation("fund_name cannot be empty", map[string]any{
				"fund_name": []string{"must not be blank"},
			})
		}
		fund.FundName = name
		hasUpdates = true
	}

	if req.FundType != nil {
		if !refdata.IsValidFundType(*req.FundType) {
			return nil, apperror.NewValidation("invalid fund_type", map[string]any{
				"fund_type": refdata.FundTypes(),
			})
		}
		fund.FundType = *req.FundType
		hasUpdates = true
	}

	if req.BaseCurrency != nil {
		fund.BaseCurrency = *req.BaseCurrency
		hasUpdates = true
	}

	if req.Domicile != nil {
		fund.Domicile = *req.Domicile
		hasUpdates = true
	}

	if req.ISINMaster != nil {
		fund.ISINMaster = *req.ISINMaster
		hasUpdates = true
	}

	if req.Status != nil {
		if !refdata.IsValidStatus(*req.Status) {
			return nil, apperror.NewValidation("invalid status", map[string]any{
				"status": refdata.Statuses(),
			})
		}
		fund.Status = *req.Status
		hasUpdates = true
	}

	if !hasUpdates {
		return fund, nil
	}

	fund.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, fund); err != nil {
		return nil, err
	}

	s.log.Info("fund updated",
		slog.String("fund_id", fund.FundID),
		slog.String("fund_code", fund.FundCode))

	return fund, nil
}

// HierarchyChildren returns the fund plus all descendant sub-funds within
// depth hops, each annotated with its depth.
func (s *Service) HierarchyChildren(ctx context.Context, fundID string, depth int) (*refdata.HierarchyResponse, error) {
	depth = refdata.ClampDepth(depth)

	fund, err := s.repo.GetLite(ctx, fundID)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		return nil, apperror.NewNotFound("fund", fundID)
	}

	children, err := s.repo.Descendants(ctx, fundID, depth)
	if err != nil {
		return nil, err
	}

	return &refdata.HierarchyResponse{
		Root:     refdata.FundNode(fund, 0),
		Children: children,
		Parents:  []refdata.HierarchyNode{},
		Depth:    depth,
	}, nil
}

// HierarchyParents resolves the identifier as a fund or a sub-fund and
// walks the parent chain upward. For a fund the chain is empty.
func (s *Service) HierarchyParents(ctx context.Context, id string, depth int) (*refdata.HierarchyResponse, error) {
	depth = refdata.ClampDepth(depth)

	fund, err := s.repo.GetLite(ctx, id)
	if err != nil {
		return nil, err
	}
	if fund != nil {
		// Funds are hierarchy roots
		return &refdata.HierarchyResponse{
			Root:     refdata.FundNode(fund, 0),
			Children: []refdata.HierarchyNode{},
			Parents:  []refdata.HierarchyNode{},
			Depth:    depth,
		}, nil
	}

	sf, err := s.repo.GetSubFundLite(ctx, id)
	if err != nil {
		return nil, err
	}
	if sf == nil {
		return nil, apperror.NewNotFound("fund or subfund", id)
	}

	parents, err := s.walkParents(ctx, sf, depth)
	if err != nil {
		return nil, err
	}

	return &refdata.HierarchyResponse{
		Root:     refdata.SubFundNode(sf, 0),
		Children: []refdata.HierarchyNode{},
		Parents:  parents,
		Depth:    depth,
	}, nil
}

// walkParents follows the parent chain from a sub-fund up to depth hops.
// The chain ends at the owning fund, which terminates the walk.
func (s *Service) walkParents(ctx context.Context, sf *refdata.SubFund, depth int) ([]refdata.HierarchyNode, error) {
	parents := []refdata.HierarchyNode{}
	cur := sf

	for hop := 1; hop <= depth; hop++ {
		switch {
		case cur.ParentSubFundID != nil:
			parent, err := s.repo.GetSubFundLite(ctx, *cur.ParentSubFundID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return parents, nil
			}
			parents = append(parents, refdata.SubFundNode(parent, hop))
			cur = parent

		case cur.ParentFundID != nil:
			parent, err := s.repo.GetLite(ctx, *cur.ParentFundID)
			if err != nil {
				return nil, err
			}
			if parent == nil {
				return parents, nil
			}
			parents = append(parents, refdata.FundNode(parent, hop))
			return parents, nil

		default:
			return parents, nil
		}
	}

	return parents, nil
}

func validateCreate(req *CreateFundRequest) *apperror.Error {
	req.FundCode = strings.TrimSpace(req.FundCode)
	req.FundName = strings.TrimSpace(req.FundName)

	details := map[string]any{}
	if req.FundCode == "" {
		details["fund_code"] = []string{"must not be blank"}
	}
	if req.FundName == "" {
		details["fund_name"] = []string{"must not be blank"}
	}
	if req.MgmtID == "" {
		details["mgmt_id"] = []string{"must not be blank"}
	}
	if req.LEID == "" {
		details["le_id"] = []string{"must not be blank"}
	}
	if !refdata.IsValidFundType(req.FundType) {
		details["fund_type"] = refdata.FundTypes()
	}

	if req.Status == "" {
		req.Status = refdata.StatusActive
	} else if !refdata.IsValidStatus(req.Status) {
		details["status"] = refdata.Statuses()
	}

	if len(details) > 0 {
		return apperror.NewValidation("fund validation failed", details)
	}
	return nil
}
