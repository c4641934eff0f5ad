package dto

type DashboardStatsDTO struct {
	PostsGenerated    int64 `json:"postsGenerated"`
	ActiveWorkflows   int64 `json:"activeWorkflows"`
	ConnectedAccounts int64 `json:"connectedAccounts"`
	SuccessRate       int   `json:"successRate"`
}
