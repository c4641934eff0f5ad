package job

import (
	"Sheetcast/internal/api/dto"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingSheetService struct {
	calls int
}

func (c *countingSheetService) ListSheets(context.Context, string) ([]*dto.GoogleSheetDTO, error) {
	return nil, nil
}

func (c *countingSheetService) ConnectSheet(context.Context, string, *dto.CreateGoogleSheetDTO) (*dto.GoogleSheetDTO, error) {
	return nil, nil
}

func (c *countingSheetService) SyncSheet(context.Context, string, string) (*dto.GoogleSheetDTO, error) {
	return nil, nil
}

func (c *countingSheetService) UpdateSheet(context.Context, string, string, *dto.UpdateGoogleSheetDTO) (*dto.GoogleSheetDTO, error) {
	return nil, nil
}

func (c *countingSheetService) DeleteSheet(context.Context, string, string) error {
	return nil
}

func (c *countingSheetService) GetSheetMetadata(context.Context, string, string) (*dto.SheetMetadataDTO, error) {
	return nil, nil
}

func (c *countingSheetService) SyncActiveSheets(ctx context.Context) (int, int, error) {
	c.calls++
	_, ok := ctx.Deadline()
	if !ok {
		return 0, 0, context.DeadlineExceeded
	}
	return 2, 1, nil
}

func TestSheetSyncJobRunsWithoutRedis(t *testing.T) {
	svc := &countingSheetService{}
	job := NewSheetSyncJob(svc)

	job.Run()
	job.Run()

	assert.Equal(t, 2, svc.calls)
}
