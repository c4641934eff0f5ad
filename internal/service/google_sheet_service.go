package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/sheets"
	"Sheetcast/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

type GoogleSheetService interface {
	ListSheets(ctx context.Context, userID string) ([]*dto.GoogleSheetDTO, error)
	ConnectSheet(ctx context.Context, userID string, req *dto.CreateGoogleSheetDTO) (*dto.GoogleSheetDTO, error)
	SyncSheet(ctx context.Context, userID string, id string) (*dto.GoogleSheetDTO, error)
	UpdateSheet(ctx context.Context, userID string, id string, req *dto.UpdateGoogleSheetDTO) (*dto.GoogleSheetDTO, error)
	DeleteSheet(ctx context.Context, userID string, id string) error
	GetSheetMetadata(ctx context.Context, userID string, id string) (*dto.SheetMetadataDTO, error)
	SyncActiveSheets(ctx context.Context) (synced int, failed int, err error)
}

type googleSheetServiceImpl struct {
	sheetRepo         repository.GoogleSheetRepo
	reader            sheets.Reader
	activitySvc       ActivityService
	validateOnConnect bool
}

func NewGoogleSheetService(
	sheetRepo repository.GoogleSheetRepo,
	reader sheets.Reader,
	activitySvc ActivityService,
	validateOnConnect bool,
) GoogleSheetService {
	return &googleSheetServiceImpl{
		sheetRepo:         sheetRepo,
		reader:            reader,
		activitySvc:       activitySvc,
		validateOnConnect: validateOnConnect,
	}
}

func (s *googleSheetServiceImpl) ListSheets(ctx context.Context, userID string) ([]*dto.GoogleSheetDTO, error) {
	list, err := s.sheetRepo.GetSheetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.GoogleSheetDTO, 0, len(list))
	if err = copier.Copy(&result, &list); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *googleSheetServiceImpl) ConnectSheet(ctx context.Context, userID string, req *dto.CreateGoogleSheetDTO) (*dto.GoogleSheetDTO, error) {
	if s.validateOnConnect && !s.reader.ValidateAccess(ctx, req.SheetID, req.AccessToken) {
		return nil, ErrSheetAccessDenied
	}

	sheet := &model.GoogleSheet{
		UserID:       userID,
		Name:         req.Name,
		SheetID:      req.SheetID,
		AccessToken:  req.AccessToken,
		RefreshToken: req.RefreshToken,
		IsActive:     true,
	}
	if req.IsActive != nil {
		sheet.IsActive = *req.IsActive
	}

	if err := s.sheetRepo.CreateSheet(ctx, sheet); err != nil {
		return nil, err
	}

	if err := s.activitySvc.Record(ctx, userID, model.ActivityGoogleSheetConnected,
		"Connected Google Sheet: "+sheet.Name,
		map[string]any{"sheetId": sheet.ID},
	); err != nil {
		return nil, err
	}

	return toGoogleSheetDTO(sheet)
}

// SyncSheet 拉一次数据，刷新条目数与同步时间
func (s *googleSheetServiceImpl) SyncSheet(ctx context.Context, userID string, id string) (*dto.GoogleSheetDTO, error) {
	sheet, err := s.getSheet(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entryCount, err := s.refresh(ctx, sheet)
	if err != nil {
		return nil, err
	}

	if err = s.activitySvc.Record(ctx, userID, model.ActivityGoogleSheetSynced,
		fmt.Sprintf("Synced Google Sheet: %s (%d entries)", sheet.Name, entryCount),
		map[string]any{"sheetId": sheet.ID, "entryCount": entryCount},
	); err != nil {
		return nil, err
	}

	return toGoogleSheetDTO(sheet)
}

func (s *googleSheetServiceImpl) UpdateSheet(ctx context.Context, userID string, id string, req *dto.UpdateGoogleSheetDTO) (*dto.GoogleSheetDTO, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, ErrParamInvalid
	}

	if _, err := s.getSheet(ctx, userID, id); err != nil {
		return nil, err
	}
	if _, err := s.sheetRepo.UpdateSheet(ctx, userID, id, updates); err != nil {
		return nil, err
	}

	sheet, err := s.getSheet(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toGoogleSheetDTO(sheet)
}

func (s *googleSheetServiceImpl) DeleteSheet(ctx context.Context, userID string, id string) error {
	sheet, err := s.getSheet(ctx, userID, id)
	if err != nil {
		return err
	}

	rows, err := s.sheetRepo.DeleteSheet(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSheetNotFound
	}

	return s.activitySvc.Record(ctx, userID, model.ActivityGoogleSheetDisconnected,
		"Disconnected Google Sheet: "+sheet.Name,
		map[string]any{"sheetId": sheet.ID},
	)
}

func (s *googleSheetServiceImpl) GetSheetMetadata(ctx context.Context, userID string, id string) (*dto.SheetMetadataDTO, error) {
	sheet, err := s.getSheet(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	meta, err := s.reader.Metadata(ctx, sheet.SheetID, sheet.AccessToken)
	if err != nil {
		return nil, err
	}
	return &dto.SheetMetadataDTO{Title: meta.Title, SheetCount: meta.SheetCount}, nil
}

// SyncActiveSheets 定时任务用，单张失败只记日志
func (s *googleSheetServiceImpl) SyncActiveSheets(ctx context.Context) (int, int, error) {
	list, err := s.sheetRepo.GetAllActiveSheets(ctx)
	if err != nil {
		return 0, 0, err
	}

	synced, failed := 0, 0
	for _, sheet := range list {
		if ctx.Err() != nil {
			return synced, failed, ctx.Err()
		}
		if _, err = s.refresh(ctx, sheet); err != nil {
			failed++
			log.WarnContext(ctx, "sync sheet failed", "sheet_id", sheet.ID, "user_id", sheet.UserID, "err", err)
			continue
		}
		synced++
	}
	return synced, failed, nil
}

func (s *googleSheetServiceImpl) refresh(ctx context.Context, sheet *model.GoogleSheet) (int, error) {
	records, err := s.reader.Read(ctx, sheet.SheetID, sheet.AccessToken)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	entryCount := len(records)
	if _, err = s.sheetRepo.UpdateSheet(ctx, sheet.UserID, sheet.ID, map[string]any{
		"last_synced": now,
		"entry_count": entryCount,
	}); err != nil {
		return 0, err
	}

	sheet.LastSynced = &now
	sheet.EntryCount = entryCount
	return entryCount, nil
}

func (s *googleSheetServiceImpl) getSheet(ctx context.Context, userID string, id string) (*model.GoogleSheet, error) {
	sheet, err := s.sheetRepo.GetSheetById(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if sheet == nil {
		return nil, ErrSheetNotFound
	}
	return sheet, nil
}

func toGoogleSheetDTO(sheet *model.GoogleSheet) (*dto.GoogleSheetDTO, error) {
	sheetDTO := &dto.GoogleSheetDTO{}
	if err := copier.Copy(sheetDTO, sheet); err != nil {
		return nil, err
	}
	return sheetDTO, nil
}
