package repository

import (
	"Sheetcast/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetPostsByUser(ctx context.Context, userID string, limit int) ([]*model.Post, error)
	GetPostsByWorkflow(ctx context.Context, userID string, workflowID string) ([]*model.Post, error)
	GetPostById(ctx context.Context, userID string, id string) (*model.Post, error)
	CreatePosts(ctx context.Context, posts []*model.Post) error
	UpdatePost(ctx context.Context, userID string, id string, updates map[string]any) (int64, error)
	DeletePost(ctx context.Context, userID string, id string) (int64, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) GetPostsByUser(ctx context.Context, userID string, limit int) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	query := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) GetPostsByWorkflow(ctx context.Context, userID string, workflowID string) ([]*model.Post, error) {
	posts := make([]*model.Post, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND workflow_id = ?", userID, workflowID).
		Order("created_at ASC").
		Find(&posts).Error
	return posts, err
}

func (s *PostRepoImpl) GetPostById(ctx context.Context, userID string, id string) (*model.Post, error) {
	post := &model.Post{}
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return post, nil
}

// CreatePosts 单条 INSERT 写入一批帖子
func (s *PostRepoImpl) CreatePosts(ctx context.Context, posts []*model.Post) error {
	if len(posts) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Omit("Workflow").Create(&posts).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, userID string, id string, updates map[string]any) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, userID string, id string) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Post{})
	return result.RowsAffected, result.Error
}
