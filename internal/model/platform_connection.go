package model

import "time"

// PlatformConnection 用户绑定的社交平台账号
type PlatformConnection struct {
	Base
	UserID       string     `gorm:"type:varchar(36);not null;index:idx_connection_user_id" json:"userId"`
	Platform     Platform   `gorm:"type:varchar(32);not null" json:"platform"`
	AccountName  string     `gorm:"type:varchar(255);not null" json:"accountName"`
	AccessToken  string     `gorm:"type:text;not null" json:"-"`
	RefreshToken *string    `gorm:"type:text" json:"-"`
	ExpiresAt    *time.Time `json:"expiresAt"`
	IsActive     bool       `gorm:"not null" json:"isActive"`
}

func (PlatformConnection) TableName() string {
	return "platform_connections"
}
