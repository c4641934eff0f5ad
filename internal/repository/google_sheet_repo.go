package repository

import (
	"Sheetcast/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type GoogleSheetRepo interface {
	GetSheetsByUser(ctx context.Context, userID string) ([]*model.GoogleSheet, error)
	GetActiveSheetsByUser(ctx context.Context, userID string) ([]*model.GoogleSheet, error)
	GetAllActiveSheets(ctx context.Context) ([]*model.GoogleSheet, error)
	GetSheetById(ctx context.Context, userID string, id string) (*model.GoogleSheet, error)
	CreateSheet(ctx context.Context, sheet *model.GoogleSheet) error
	UpdateSheet(ctx context.Context, userID string, id string, updates map[string]any) (int64, error)
	DeleteSheet(ctx context.Context, userID string, id string) (int64, error)
}

type GoogleSheetRepoImpl struct {
	db *gorm.DB
}

func NewGoogleSheetRepo(db *gorm.DB) GoogleSheetRepo {
	return &GoogleSheetRepoImpl{db: db}
}

func (s *GoogleSheetRepoImpl) GetSheetsByUser(ctx context.Context, userID string) ([]*model.GoogleSheet, error) {
	sheets := make([]*model.GoogleSheet, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sheets).Error
	return sheets, err
}

// GetActiveSheetsByUser 工作流按接入顺序处理
func (s *GoogleSheetRepoImpl) GetActiveSheetsByUser(ctx context.Context, userID string) ([]*model.GoogleSheet, error) {
	sheets := make([]*model.GoogleSheet, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").
		Find(&sheets).Error
	return sheets, err
}

func (s *GoogleSheetRepoImpl) GetAllActiveSheets(ctx context.Context) ([]*model.GoogleSheet, error) {
	sheets := make([]*model.GoogleSheet, 0)
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("user_id, created_at ASC").
		Find(&sheets).Error
	return sheets, err
}

func (s *GoogleSheetRepoImpl) GetSheetById(ctx context.Context, userID string, id string) (*model.GoogleSheet, error) {
	sheet := &model.GoogleSheet{}
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(sheet)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return sheet, nil
}

func (s *GoogleSheetRepoImpl) CreateSheet(ctx context.Context, sheet *model.GoogleSheet) error {
	return s.db.WithContext(ctx).Create(sheet).Error
}

func (s *GoogleSheetRepoImpl) UpdateSheet(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.GoogleSheet{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (s *GoogleSheetRepoImpl) DeleteSheet(ctx context.Context, userID string, id string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.GoogleSheet{})
	return result.RowsAffected, result.Error
}
