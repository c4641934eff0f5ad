package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ActivityGoogleSheetConnected    = "google_sheet_connected"
	ActivityGoogleSheetSynced       = "google_sheet_synced"
	ActivityGoogleSheetDisconnected = "google_sheet_disconnected"
	ActivityPlatformConnected       = "platform_connected"
	ActivityPlatformDisconnected    = "platform_disconnected"
	ActivityWorkflowRun             = "workflow_run"
	ActivityPostApproved            = "post_approved"
)

// Activity 审计流水，只追加不修改
type Activity struct {
	ID          string            `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID      string            `gorm:"type:varchar(36);not null;index:idx_activity_user_id" json:"userId"`
	Type        string            `gorm:"type:varchar(64);not null" json:"type"`
	Description string            `gorm:"type:text;not null" json:"description"`
	Metadata    datatypes.JSONMap `json:"metadata"`
	CreatedAt   time.Time         `json:"createdAt"`
}

func (Activity) TableName() string {
	return "activities"
}

func (a *Activity) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
