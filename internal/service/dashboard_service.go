package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/pkg/consts"
	"Sheetcast/internal/pkg/redis"
	"Sheetcast/internal/repository"
	"context"
	log "log/slog"

	"github.com/goccy/go-json"
)

type DashboardService interface {
	GetStats(ctx context.Context, userID string) (*dto.DashboardStatsDTO, error)
	Invalidate(ctx context.Context, userID string)
}

type dashboardServiceImpl struct {
	dashboardRepo repository.DashboardRepo
}

func NewDashboardService(dashboardRepo repository.DashboardRepo) DashboardService {
	return &dashboardServiceImpl{dashboardRepo: dashboardRepo}
}

// GetStats 先读缓存，未命中再聚合
func (s *dashboardServiceImpl) GetStats(ctx context.Context, userID string) (*dto.DashboardStatsDTO, error) {
	key := consts.DashboardStatsKey + userID
	value, err := redis.GetValue(ctx, key)
	if err != nil {
		log.WarnContext(ctx, "get dashboard cache error", "err", err)
	}
	if value != "" {
		statsDTO := &dto.DashboardStatsDTO{}
		if err = json.Unmarshal([]byte(value), statsDTO); err == nil {
			return statsDTO, nil
		}
	}

	stats, err := s.dashboardRepo.GetStats(ctx, userID)
	if err != nil {
		return nil, err
	}
	statsDTO := &dto.DashboardStatsDTO{
		PostsGenerated:    stats.PostsGenerated,
		ActiveWorkflows:   stats.ActiveWorkflows,
		ConnectedAccounts: stats.ConnectedAccounts,
		SuccessRate:       stats.SuccessRate,
	}

	jsonStr, err := json.Marshal(statsDTO)
	if err == nil {
		if err = redis.SetWithExpiration(ctx, key, string(jsonStr), consts.DashboardStatsTTL); err != nil {
			log.WarnContext(ctx, "set dashboard cache error", "err", err)
		}
	}
	return statsDTO, nil
}

func (s *dashboardServiceImpl) Invalidate(ctx context.Context, userID string) {
	if err := redis.DeleteKey(ctx, consts.DashboardStatsKey+userID); err != nil {
		log.WarnContext(ctx, "delete dashboard cache error", "err", err)
	}
}
