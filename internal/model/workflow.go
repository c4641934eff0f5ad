package model

import "time"

const DefaultSummaryModel = "gpt-4o"

type Workflow struct {
	Base
	UserID       string     `gorm:"type:varchar(36);not null;index:idx_workflow_user_id" json:"userId"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	SummaryModel string     `gorm:"type:varchar(64);not null;default:'gpt-4o'" json:"summaryModel"`
	IsActive     bool       `gorm:"not null" json:"isActive"`
	LastRun      *time.Time `json:"lastRun"`
	SuccessRate  int        `gorm:"not null;default:0" json:"successRate"` // 0-100
}

func (Workflow) TableName() string {
	return "workflows"
}
