package consts

import "time"

const (
	TokenBlacklistKey = "auth:blacklist:"
	DashboardStatsKey = "dashboard:stats:"
)

const (
	SheetSyncJobLock = "lock:job:sheet_sync"
)

const DashboardStatsTTL = time.Minute
