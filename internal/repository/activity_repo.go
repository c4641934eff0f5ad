package repository

import (
	"Sheetcast/internal/model"
	"context"

	"gorm.io/gorm"
)

// ActivityRepo 只追加
type ActivityRepo interface {
	CreateActivity(ctx context.Context, activity *model.Activity) error
	GetActivitiesByUser(ctx context.Context, userID string, limit int) ([]*model.Activity, error)
}

type ActivityRepoImpl struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepo {
	return &ActivityRepoImpl{db: db}
}

func (s *ActivityRepoImpl) CreateActivity(ctx context.Context, activity *model.Activity) error {
	return s.db.WithContext(ctx).Create(activity).Error
}

func (s *ActivityRepoImpl) GetActivitiesByUser(ctx context.Context, userID string, limit int) ([]*model.Activity, error) {
	activities := make([]*model.Activity, 0)
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&activities).Error
	return activities, err
}
