package management

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

// Service handles business logic for management entities
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new management entity service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("management.svc")),
	}
}

// List returns a page of management entities matching the filters
func (s *Service) List(ctx context.Context, f ListFilters, page, pageSize int) (*ListResponse, error) {
	f.Status = strings.TrimSpace(f.Status)
	f.Domicile = strings.TrimSpace(f.Domicile)
	f.EntityType = strings.TrimSpace(f.EntityType)
	f.RegistrationNo = strings.TrimSpace(f.RegistrationNo)

	p := pagination.Normalize(page, pageSize)

	entities, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []refdata.ManagementEntity{}
	}

	return &ListResponse{
		ManagementEntities: entities,
		Total:              total,
		Page:               p.Page,
		PageSize:           p.PageSize,
		TotalPages:         p.TotalPages(total),
	}, nil
}

// GetByID returns a management entity with its legal entity inlined
func (s *Service) GetByID(ctx context.Context, mgmtID string) (*refdata.ManagementEntity, error) {
	entity, err := s.repo.GetByID(ctx, mgmtID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperror.NewNotFound("management entity", mgmtID)
	}
	return entity, nil
}

// ListFunds returns the funds managed by an entity. The entity itself
// must exist; an unknown mgmt_id is a 404, not an empty page.
func (s *Service) ListFunds(ctx context.Context, mgmtID string, page, pageSize int) (*FundsResponse, error) {
	exists, err := s.repo.Exists(ctx, mgmtID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.NewNotFound("management entity", mgmtID)
	}

	p := pagination.Normalize(page, pageSize)

	funds, total, err := s.repo.ListFunds(ctx, mgmtID, p)
	if err != nil {
		return nil, err
	}
	if funds == nil {
		funds = []refdata.Fund{}
	}

	return &FundsResponse{
		Funds:      funds,
		Total:      total,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages(total),
	}, nil
}

// Create validates and creates a management entity
func (s *Service) Create(ctx context.Context, req CreateManagementEntityRequest) (*refdata.ManagementEntity, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	leExists, err := s.repo.LegalEntityExists(ctx, tx.Tx, req.LEID)
	if err != nil {
		return nil, err
	}
	if !leExists {
		return nil, apperror.NewDependencyNotFound("legal entity", req.LEID)
	}

	entity := &refdata.ManagementEntity{
		MgmtID:         req.MgmtID,
		LEID:           req.LEID,
		RegistrationNo: req.RegistrationNo,
		Domicile:       req.Domicile,
		EntityType:     req.EntityType,
		Status:         req.Status,
	}

	if err := s.repo.Create(ctx, tx.Tx, entity); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	s.log.Info("management entity created",
		slog.String("mgmt_id", entity.MgmtID),
		slog.String("le_id", entity.LEID))

	return entity, nil
}

// Update applies a partial update to a management entity's mutable
// fields. The key and le_id edge are never touched.
func (s *Service) Update(ctx context.Context, mgmtID string, req UpdateManagementEntityRequest) (*refdata.ManagementEntity, error) {
	entity, err := s.repo.GetByID(ctx, mgmtID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperror.NewNotFound("management entity", mgmtID)
	}

	hasUpdates := false

	if req.RegistrationNo != nil {
		entity.RegistrationNo = *req.RegistrationNo
		hasUpdates = true
	}
	if req.Domicile != nil {
		entity.Domicile = *req.Domicile
		hasUpdates = true
	}
	if req.EntityType != nil {
		if !refdata.IsValidEntityType(*req.EntityType) {
			return nil, apperror.NewValidation("invalid entity_type", map[string]any{
				"entity_type": refdata.EntityTypes(),
			})
		}
		entity.EntityType = *req.EntityType
		hasUpdates = true
	}
	if req.Status != nil {
		if !refdata.IsValidStatus(*req.Status) {
			return nil, apperror.NewValidation("invalid status", map[string]any{
				"status": refdata.Statuses(),
			})
		}
		entity.Status = *req.Status
		hasUpdates = true
	}

	if !hasUpdates {
		return entity, nil
	}

	entity.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	s.log.Info("management entity updated", slog.String("mgmt_id", entity.MgmtID))

	return entity, nil
}

func validateCreate(req *CreateManagementEntityRequest) *apperror.Error {
	req.MgmtID = strings.TrimSpace(req.MgmtID)
	req.LEID = strings.TrimSpace(req.LEID)

	details := map[string]any{}

	if req.LEID == "" {
		details["le_id"] = []string{"must not be blank"}
	}

	if req.EntityType != "" && !refdata.IsValidEntityType(req.EntityType) {
		details["entity_type"] = refdata.EntityTypes()
	}

	if req.Status == "" {
		req.Status = refdata.StatusActive
	} else if !refdata.IsValidStatus(req.Status) {
		details["status"] = refdata.Statuses()
	}

	if len(details) > 0 {
		return apperror.NewValidation("management entity validation failed", details)
	}
	return nil
}
