package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/repository"
	"context"
	"fmt"

	"github.com/jinzhu/copier"
)

const DefaultPostLimit = 50

type PostService interface {
	ListPosts(ctx context.Context, userID string, limit int) ([]*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID string, id string, req *dto.UpdatePostDTO) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID string, id string) error
}

type postServiceImpl struct {
	postRepo     repository.PostRepo
	activitySvc  ActivityService
	dashboardSvc DashboardService
}

func NewPostService(postRepo repository.PostRepo, activitySvc ActivityService, dashboardSvc DashboardService) PostService {
	return &postServiceImpl{
		postRepo:     postRepo,
		activitySvc:  activitySvc,
		dashboardSvc: dashboardSvc,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context, userID string, limit int) ([]*dto.PostDTO, error) {
	if limit <= 0 {
		limit = DefaultPostLimit
	}
	posts, err := s.postRepo.GetPostsByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	return toPostDTOs(posts)
}

// UpdatePost 审核与编辑；每次 isApproved=true 都会追加一条 post_approved，不去重
func (s *postServiceImpl) UpdatePost(ctx context.Context, userID string, id string, req *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	if req.Empty() {
		return nil, ErrParamInvalid
	}

	updates := make(map[string]any)
	if req.IsApproved != nil {
		updates["is_approved"] = *req.IsApproved
	}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Content != nil {
		updates["content"] = *req.Content
		updates["character_count"] = model.CountCharacters(*req.Content)
	}
	if req.Hashtags != nil {
		updates["hashtags"] = *req.Hashtags
	}

	// 先查后改：MySQL 的 RowsAffected 是实际变更行数，内容未变时为 0
	post, err := s.postRepo.GetPostById(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if _, err = s.postRepo.UpdatePost(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	if post, err = s.postRepo.GetPostById(ctx, userID, id); err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	if req.IsApproved != nil && *req.IsApproved {
		if err = s.activitySvc.Record(ctx, userID, model.ActivityPostApproved,
			fmt.Sprintf("Post approved for %s: %s", post.Platform, post.Title),
			map[string]any{"postId": post.ID, "platform": post.Platform.String()},
		); err != nil {
			return nil, err
		}
	}

	postDTO := &dto.PostDTO{}
	if err = copier.Copy(postDTO, post); err != nil {
		return nil, err
	}
	return postDTO, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, userID string, id string) error {
	rows, err := s.postRepo.DeletePost(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrPostNotFound
	}
	s.dashboardSvc.Invalidate(ctx, userID)
	return nil
}

func toPostDTOs(posts []*model.Post) ([]*dto.PostDTO, error) {
	result := make([]*dto.PostDTO, 0, len(posts))
	if err := copier.Copy(&result, &posts); err != nil {
		return nil, err
	}
	return result, nil
}
