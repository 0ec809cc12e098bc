package statistics

import (
	"context"
	"log/slog"

	"github.com/openrefdata/fundref/domain/refdata"
	"github.com/openrefdata/fundref/pkg/logger"
)

// Service assembles dashboard aggregates from the raw count rows
type Service struct {
	repo *Repository
	log  *slog.Logger
}

// NewService creates a new statistics service
func NewService(repo *Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With(logger.Scope("statistics.svc")),
	}
}

// FundStatistics returns the fund catalog aggregates
func (s *Service) FundStatistics(ctx context.Context) (*FundStatistics, error) {
	statuses, err := s.repo.FundStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	types, err := s.repo.FundTypeCounts(ctx)
	if err != nil {
		return nil, err
	}

	return buildFundStatistics(statuses, types), nil
}

// ManagementStatistics returns the management entity aggregates
func (s *Service) ManagementStatistics(ctx context.Context) (*ManagementStatistics, error) {
	statuses, err := s.repo.ManagementStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	return buildManagementStatistics(statuses), nil
}

// DashboardStatistics returns both aggregate sets in one call
func (s *Service) DashboardStatistics(ctx context.Context) (*DashboardStatistics, error) {
	funds, err := s.FundStatistics(ctx)
	if err != nil {
		return nil, err
	}

	mgmt, err := s.ManagementStatistics(ctx)
	if err != nil {
		return nil, err
	}

	return &DashboardStatistics{
		TotalFunds:                funds.TotalFunds,
		ActiveFunds:               funds.ActiveFunds,
		InactiveFunds:             funds.InactiveFunds,
		StatusBreakdown:           funds.StatusBreakdown,
		FundsByType:               funds.FundsByType,
		TotalManagementEntities:   mgmt.TotalManagementEntities,
		ManagementStatusBreakdown: mgmt.StatusBreakdown,
	}, nil
}

func buildFundStatistics(statuses []StatusCount, types []TypeCount) *FundStatistics {
	stats := &FundStatistics{
		StatusBreakdown: map[string]int{},
		FundsByType:     []TypeCount{},
	}

	for _, row := range statuses {
		stats.TotalFunds += row.Count
		stats.StatusBreakdown[row.Status] = row.Count
		if row.Status == refdata.StatusActive {
			stats.ActiveFunds = row.Count
		} else {
			stats.InactiveFunds += row.Count
		}
	}

	if types != nil {
		stats.FundsByType = types
	}

	return stats
}

func buildManagementStatistics(statuses []StatusCount) *ManagementStatistics {
	stats := &ManagementStatistics{
		StatusBreakdown: map[string]int{},
	}

	for _, row := range statuses {
		status := row.Status
		if status == "" {
			status = "UNKNOWN"
		}
		stats.TotalManagementEntities += row.Count
		stats.StatusBreakdown[status] = row.Count
	}

	return stats
}
