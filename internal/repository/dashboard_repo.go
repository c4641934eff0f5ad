package repository

import (
	"Sheetcast/internal/model"
	"context"
	"math"

	"gorm.io/gorm"
)

type DashboardStats struct {
	PostsGenerated    int64
	ActiveWorkflows   int64
	ConnectedAccounts int64
	SuccessRate       int
}

type DashboardRepo interface {
	GetStats(ctx context.Context, userID string) (*DashboardStats, error)
}

type DashboardRepoImpl struct {
	db *gorm.DB
}

func NewDashboardRepo(db *gorm.DB) DashboardRepo {
	return &DashboardRepoImpl{db: db}
}

func (s *DashboardRepoImpl) GetStats(ctx context.Context, userID string) (*DashboardStats, error) {
	db := s.db.WithContext(ctx)
	stats := &DashboardStats{}

	if err := db.Model(&model.Post{}).
		Where("user_id = ?", userID).
		Count(&stats.PostsGenerated).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.Workflow{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.ActiveWorkflows).Error; err != nil {
		return nil, err
	}

	if err := db.Model(&model.PlatformConnection{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Count(&stats.ConnectedAccounts).Error; err != nil {
		return nil, err
	}

	var avg float64
	if err := db.Model(&model.Workflow{}).
		Select("COALESCE(AVG(success_rate), 0)").
		Where("user_id = ?", userID).
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	stats.SuccessRate = int(math.Round(avg))

	return stats, nil
}
