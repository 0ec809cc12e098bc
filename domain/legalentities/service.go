package legalentities

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

// Service handles business logic for legal entities
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new legal entity service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("legalentities.svc")),
	}
}

// List returns a page of legal entities matching the filters
func (s *Service) List(ctx context.Context, f ListFilters, page, pageSize int) (*ListResponse, error) {
	f.Jurisdiction = strings.TrimSpace(f.Jurisdiction)
	f.EntityType = strings.TrimSpace(f.EntityType)
	f.LegalName = strings.TrimSpace(f.LegalName)
	f.LEI = strings.TrimSpace(f.LEI)

	p := pagination.Normalize(page, pageSize)

	entities, total, err := s.repo.List(ctx, f, p)
	if err != nil {
		return nil, err
	}
	if entities == nil {
		entities = []refdata.LegalEntity{}
	}

	return &ListResponse{
		LegalEntities: entities,
		Total:         total,
		Page:          p.Page,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages(total),
	}, nil
}

// GetByID returns a legal entity
func (s *Service) GetByID(ctx context.Context, leID string) (*refdata.LegalEntity, error) {
	entity, err := s.repo.GetByID(ctx, leID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperror.NewNotFound("legal entity", leID)
	}
	return entity, nil
}

// Create validates and creates a legal entity. The LEI must be unique
// across the catalog.
func (s *Service) Create(ctx context.Context, req CreateLegalEntityRequest) (*refdata.LegalEntity, error) {
	if err := validateCreate(&req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	taken, err := s.repo.LEIExists(ctx, tx.Tx, req.LEI)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperror.NewConflict("legal entity with this lei already exists")
	}

	entity := &refdata.LegalEntity{
		LEID:         req.LEID,
		LEI:          req.LEI,
		LegalName:    req.LegalName,
		Jurisdiction: req.Jurisdiction,
		EntityType:   req.EntityType,
	}

	if err := s.repo.Create(ctx, tx.Tx, entity); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("failed to commit transaction", logger.Error(err))
		return nil, apperror.ErrDatabase.WithInternal(err)
	}

	s.log.Info("legal entity created",
		slog.String("le_id", entity.LEID),
		slog.String("lei", entity.LEI))

	return entity, nil
}

// Update applies a partial update to a legal entity's mutable fields
func (s *Service) Update(ctx context.Context, leID string, req UpdateLegalEntityRequest) (*refdata.LegalEntity, error) {
	entity, err := s.repo.GetByID(ctx, leID)
	if err != nil {
		return nil, err
	}
	if entity == nil {
		return nil, apperror.NewNotFound("legal entity", leID)
	}

	hasUpdates := false

	if req.LegalName != nil {
		if strings.TrimSpace(*req.LegalName) == "" {
			return nil, apperror.NewValidation("legal_name must not be blank", nil)
		}
		entity.LegalName = strings.TrimSpace(*req.LegalName)
		hasUpdates = true
	}
	if req.Jurisdiction != nil {
		entity.Jurisdiction = *req.Jurisdiction
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

	if !hasUpdates {
		return entity, nil
	}

	entity.UpdatedAt = time.Now()
	if err := s.repo.Update(ctx, entity); err != nil {
		return nil, err
	}

	s.log.Info("legal entity updated", slog.String("le_id", entity.LEID))

	return entity, nil
}

func validateCreate(req *CreateLegalEntityRequest) *apperror.Error {
	req.LEID = strings.TrimSpace(req.LEID)
	req.LEI = strings.TrimSpace(req.LEI)
	req.LegalName = strings.TrimSpace(req.LegalName)

	details := map[string]any{}

	if req.LEI == "" {
		details["lei"] = []string{"must not be blank"}
	}
	if req.LegalName == "" {
		details["legal_name"] = []string{"must not be blank"}
	}
	if req.EntityType != "" && !refdata.IsValidEntityType(req.EntityType) {
		details["entity_type"] = refdata.EntityTypes()
	}

	if len(details) > 0 {
		return apperror.NewValidation("legal entity validation failed", details)
	}
	return nil
}
