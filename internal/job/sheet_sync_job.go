package job

import (
	"Sheetcast/internal/pkg/consts"
	"Sheetcast/internal/pkg/logger"
	"Sheetcast/internal/pkg/redis"
	"Sheetcast/internal/service"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const sheetSyncTimeout = 30 * time.Minute

// SheetSyncJob 定期刷新所有活跃表格的条目数与同步时间
type SheetSyncJob struct {
	sheetSvc service.GoogleSheetService
}

func NewSheetSyncJob(sheetSvc service.GoogleSheetService) *SheetSyncJob {
	return &SheetSyncJob{sheetSvc: sheetSvc}
}

func (s *SheetSyncJob) Run() {
	traceID := "job-" + uuid.NewString()
	ctx, cancel := context.WithTimeout(logger.WithTraceID(context.Background(), traceID), sheetSyncTimeout)
	defer cancel()

	// 多实例部署时只跑一份
	ok, err := redis.TryLock(ctx, consts.SheetSyncJobLock, traceID, sheetSyncTimeout, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire sheet sync lock error", "err", err)
		return
	}
	if !ok {
		log.InfoContext(ctx, "sheet sync running elsewhere, skipped")
		return
	}
	defer redis.UnLock(ctx, consts.SheetSyncJobLock, traceID)

	start := time.Now()
	synced, failed, err := s.sheetSvc.SyncActiveSheets(ctx)
	if err != nil {
		log.ErrorContext(ctx, "sync active sheets error", "synced", synced, "failed", failed, "err", err)
		return
	}

	log.InfoContext(ctx, "sync active sheets success",
		"synced", synced,
		"failed", failed,
		"cost", time.Since(start),
	)
}
