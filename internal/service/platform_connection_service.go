package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/repository"
	"context"
	"fmt"

	"github.com/jinzhu/copier"
)

type PlatformConnectionService interface {
	ListConnections(ctx context.Context, userID string) ([]*dto.PlatformConnectionDTO, error)
	Connect(ctx context.Context, userID string, req *dto.CreatePlatformConnectionDTO) (*dto.PlatformConnectionDTO, error)
	UpdateConnection(ctx context.Context, userID string, id string, req *dto.UpdatePlatformConnectionDTO) (*dto.PlatformConnectionDTO, error)
	Disconnect(ctx context.Context, userID string, id string) error
}

type platformConnectionServiceImpl struct {
	connRepo     repository.PlatformConnectionRepo
	activitySvc  ActivityService
	dashboardSvc DashboardService
}

func NewPlatformConnectionService(
	connRepo repository.PlatformConnectionRepo,
	activitySvc ActivityService,
	dashboardSvc DashboardService,
) PlatformConnectionService {
	return &platformConnectionServiceImpl{
		connRepo:     connRepo,
		activitySvc:  activitySvc,
		dashboardSvc: dashboardSvc,
	}
}

func (s *platformConnectionServiceImpl) ListConnections(ctx context.Context, userID string) ([]*dto.PlatformConnectionDTO, error) {
	list, err := s.connRepo.GetConnectionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PlatformConnectionDTO, 0, len(list))
	if err = copier.Copy(&result, &list); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *platformConnectionServiceImpl) Connect(ctx context.Context, userID string, req *dto.CreatePlatformConnectionDTO) (*dto.PlatformConnectionDTO, error) {
	platform, err := model.ParsePlatform(req.Platform)
	if err != nil {
		return nil, ErrPlatformInvalid
	}

	conn := &model.PlatformConnection{
		UserID:       userID,
		Platform:     platform,
		AccountName:  req.AccountName,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		ExpiresAt:    req.ExpiresAt,
		IsActive:     true,
	}
	if req.IsActive != nil {
		conn.IsActive = *req.IsActive
	}

	if err = s.connRepo.CreateConnection(ctx, conn); err != nil {
		return nil, err
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	if err = s.activitySvc.Record(ctx, userID, model.ActivityPlatformConnected,
		fmt.Sprintf("Connected %s account: %s", conn.Platform, conn.AccountName),
		map[string]any{"platform": conn.Platform.String(), "connectionId": conn.ID},
	); err != nil {
		return nil, err
	}

	return toPlatformConnectionDTO(conn)
}

func (s *platformConnectionServiceImpl) UpdateConnection(ctx context.Context, userID string, id string, req *dto.UpdatePlatformConnectionDTO) (*dto.PlatformConnectionDTO, error) {
	updates := make(map[string]any)
	if req.AccountName != nil {
		updates["account_name"] = *req.AccountName
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, ErrParamInvalid
	}

	conn, err := s.connRepo.GetConnectionById(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrConnectionNotFound
	}
	if _, err = s.connRepo.UpdateConnection(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	conn, err = s.connRepo.GetConnectionById(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrConnectionNotFound
	}
	return toPlatformConnectionDTO(conn)
}

func (s *platformConnectionServiceImpl) Disconnect(ctx context.Context, userID string, id string) error {
	conn, err := s.connRepo.GetConnectionById(ctx, userID, id)
	if err != nil {
		return err
	}
	if conn == nil {
		return ErrConnectionNotFound
	}

	rows, err := s.connRepo.DeleteConnection(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrConnectionNotFound
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	return s.activitySvc.Record(ctx, userID, model.ActivityPlatformDisconnected,
		fmt.Sprintf("Disconnected %s account: %s", conn.Platform, conn.AccountName),
		map[string]any{"platform": conn.Platform.String(), "connectionId": conn.ID},
	)
}

func toPlatformConnectionDTO(conn *model.PlatformConnection) (*dto.PlatformConnectionDTO, error) {
	connDTO := &dto.PlatformConnectionDTO{}
	if err := copier.Copy(connDTO, conn); err != nil {
		return nil, err
	}
	return connDTO, nil
}
