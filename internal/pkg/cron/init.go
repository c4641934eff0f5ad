package cron

import (
	log "log/slog"

	"github.com/pkg/errors"
)

// InitCron 注册并启动定时任务
func InitCron(mgr *Manager) error {
	log.Info("Cron Jobs starting...", "sheet_sync", mgr.sheetSyncSpec)
	if err := mgr.RegisterJobs(); err != nil {
		return errors.Wrapf(err, "register sheet sync job with spec %q", mgr.sheetSyncSpec)
	}
	mgr.Start()
	log.Info("Cron Jobs started", "entries", mgr.Entries())
	return nil
}
