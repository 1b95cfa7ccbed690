package usecases

import (
	"context"
	"encoding/json"

	"quartermaster/internal/domain/employee"
	"quartermaster/internal/domain/part"
	"quartermaster/internal/domain/system"
	"quartermaster/internal/shared/logger"
)

const dashboardStatsCacheKey = "dashboard"

// StatsCacheStore abstracts the short-TTL cache in front of the dashboard
// counts. A failing or absent cache must never fail the read.
type StatsCacheStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// DashboardStatsResult contains the inventory counts for the dashboard.
type DashboardStatsResult struct {
	Systems   int64 `json:"systems"`
	Parts     int64 `json:"parts"`
	Employees int64 `json:"employees"`
}

// GetDashboardStatsUseCase serves the dashboard counters.
type GetDashboardStatsUseCase struct {
	systemRepo   system.Repository
	partRepo     part.Repository
	employeeRepo employee.Repository
	cache        StatsCacheStore
	logger       logger.Interface
}

// NewGetDashboardStatsUseCase creates a new GetDashboardStatsUseCase.
func NewGetDashboardStatsUseCase(
	systemRepo system.Repository,
	partRepo part.Repository,
	employeeRepo employee.Repository,
	cache StatsCacheStore,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		systemRepo:   systemRepo,
		partRepo:     partRepo,
		employeeRepo: employeeRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute returns entity counts, served from cache when a fresh entry
// exists. Cache errors degrade to direct counts; the TTL bounds staleness
// after mutations.
func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context) (*DashboardStatsResult, error) {
	if uc.cache != nil {
		payload, found, err := uc.cache.Get(ctx, dashboardStatsCacheKey)
		if err != nil {
			uc.logger.Warnw("stats cache read failed, falling through", "error", err)
		} else if found {
			var cached DashboardStatsResult
			if err := json.Unmarshal(payload, &cached); err != nil {
				uc.logger.Warnw("stats cache entry corrupt, falling through", "error", err)
			} else {
				return &cached, nil
			}
		}
	}

	systems, err := uc.systemRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count systems", "error", err)
		return nil, err
	}
	parts, err := uc.partRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count parts", "error", err)
		return nil, err
	}
	employees, err := uc.employeeRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count employees", "error", err)
		return nil, err
	}

	result := &DashboardStatsResult{
		Systems:   systems,
		Parts:     parts,
		Employees: employees,
	}

	if uc.cache != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := uc.cache.Set(ctx, dashboardStatsCacheKey, payload); err != nil {
				uc.logger.Warnw("stats cache write failed", "error", err)
			}
		}
	}

	return result, nil
}
