package repository

import (
	"Sheetcast/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PlatformConnectionRepo interface {
	GetConnectionsByUser(ctx context.Context, userID string) ([]*model.PlatformConnection, error)
	GetConnectionById(ctx context.Context, userID string, id string) (*model.PlatformConnection, error)
	CreateConnection(ctx context.Context, conn *model.PlatformConnection) error
	UpdateConnection(ctx context.Context, userID string, id string, updates map[string]any) (int64, error)
	DeleteConnection(ctx context.Context, userID string, id string) (int64, error)
}

type PlatformConnectionRepoImpl struct {
	db *gorm.DB
}

func NewPlatformConnectionRepo(db *gorm.DB) PlatformConnectionRepo {
	return &PlatformConnectionRepoImpl{db: db}
}

func (s *PlatformConnectionRepoImpl) GetConnectionsByUser(ctx context.Context, userID string) ([]*model.PlatformConnection, error) {
	conns := make([]*model.PlatformConnection, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&conns).Error
	return conns, err
}

func (s *PlatformConnectionRepoImpl) GetConnectionById(ctx context.Context, userID string, id string) (*model.PlatformConnection, error) {
	conn := &model.PlatformConnection{}
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(conn)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return conn, nil
}

func (s *PlatformConnectionRepoImpl) CreateConnection(ctx context.Context, conn *model.PlatformConnection) error {
	return s.db.WithContext(ctx).Create(conn).Error
}

func (s *PlatformConnectionRepoImpl) UpdateConnection(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.PlatformConnection{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (s *PlatformConnectionRepoImpl) DeleteConnection(ctx context.Context, userID string, id string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.PlatformConnection{})
	return result.RowsAffected, result.Error
}
