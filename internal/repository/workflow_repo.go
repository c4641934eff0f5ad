package repository

import (
	"Sheetcast/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type WorkflowRepo interface {
	GetWorkflowsByUser(ctx context.Context, userID string) ([]*model.Workflow, error)
	GetWorkflowById(ctx context.Context, userID string, id string) (*model.Workflow, error)
	CreateWorkflow(ctx context.Context, workflow *model.Workflow) error
	UpdateWorkflow(ctx context.Context, userID string, id string, updates map[string]any) (int64, error)
	DeleteWorkflow(ctx context.Context, userID string, id string) (int64, error)
}

type WorkflowRepoImpl struct {
	db *gorm.DB
}

func NewWorkflowRepo(db *gorm.DB) WorkflowRepo {
	return &WorkflowRepoImpl{db: db}
}

func (s *WorkflowRepoImpl) GetWorkflowsByUser(ctx context.Context, userID string) ([]*model.Workflow, error) {
	workflows := make([]*model.Workflow, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workflows).Error
	return workflows, err
}

func (s *WorkflowRepoImpl) GetWorkflowById(ctx context.Context, userID string, id string) (*model.Workflow, error) {
	workflow := &model.Workflow{}
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(workflow)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return workflow, nil
}

func (s *WorkflowRepoImpl) CreateWorkflow(ctx context.Context, workflow *model.Workflow) error {
	return s.db.WithContext(ctx).Create(workflow).Error
}

func (s *WorkflowRepoImpl) UpdateWorkflow(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Workflow{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteWorkflow 已生成的帖子保留，workflow_id 置空
func (s *WorkflowRepoImpl) DeleteWorkflow(ctx context.Context, userID string, id string) (int64, error) {
	var rows int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Post{}).
			Where("workflow_id = ? AND user_id = ?", id, userID).
			Update("workflow_id", nil).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Workflow{})
		rows = result.RowsAffected
		return result.Error
	})
	return rows, err
}
