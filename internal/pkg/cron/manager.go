package cron

import (
	"Sheetcast/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

const DefaultSheetSyncSpec = "@daily"

type Manager struct {
	engine        *cron.Cron
	sheetSyncSpec string
	sheetSyncJob  *job.SheetSyncJob
}

func NewCronManager(sheetSyncSpec string, sheetSyncJob *job.SheetSyncJob) *Manager {
	if sheetSyncSpec == "" {
		sheetSyncSpec = DefaultSheetSyncSpec
	}
	return &Manager{
		engine:        cron.New(cron.WithSeconds()),
		sheetSyncSpec: sheetSyncSpec,
		sheetSyncJob:  sheetSyncJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob(s.sheetSyncSpec, cron.NewChain(cron.SkipIfStillRunning(cron.DiscardLogger)).Then(s.sheetSyncJob)); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动", "sheet_sync", s.sheetSyncSpec)
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	<-s.engine.Stop().Done()
}

// Entries 已注册的任务数
func (s *Manager) Entries() int {
	return len(s.engine.Entries())
}
