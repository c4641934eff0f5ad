package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

const DefaultActivityLimit = 20

type ActivityService interface {
	Record(ctx context.Context, userID string, activityType string, description string, metadata map[string]any) error
	ListActivities(ctx context.Context, userID string, limit int) ([]*dto.ActivityDTO, error)
}

type activityServiceImpl struct {
	activityRepo repository.ActivityRepo
}

func NewActivityService(activityRepo repository.ActivityRepo) ActivityService {
	return &activityServiceImpl{activityRepo: activityRepo}
}

func (s *activityServiceImpl) Record(ctx context.Context, userID string, activityType string, description string, metadata map[string]any) error {
	activity := &model.Activity{
		UserID:      userID,
		Type:        activityType,
		Description: description,
		Metadata:    metadata,
	}
	if err := s.activityRepo.CreateActivity(ctx, activity); err != nil {
		log.ErrorContext(ctx, "create activity error", "type", activityType, "err", err)
		return err
	}
	return nil
}

func (s *activityServiceImpl) ListActivities(ctx context.Context, userID string, limit int) ([]*dto.ActivityDTO, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	activities, err := s.activityRepo.GetActivitiesByUser(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ActivityDTO, 0, len(activities))
	if err = copier.Copy(&result, &activities); err != nil {
		return nil, err
	}
	return result, nil
}
