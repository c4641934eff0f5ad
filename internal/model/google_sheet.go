package model

import "time"

// GoogleSheet 用户接入的一张外部表格
type GoogleSheet struct {
	Base
	UserID       string     `gorm:"type:varchar(36);not null;index:idx_sheet_user_id" json:"userId"`
	Name         string     `gorm:"type:varchar(255);not null" json:"name"`
	SheetID      string     `gorm:"type:varchar(255);not null" json:"sheetId"`
	AccessToken  string     `gorm:"type:text;not null" json:"-"`
	RefreshToken *string    `gorm:"type:text" json:"-"`
	LastSynced   *time.Time `json:"lastSynced"`
	EntryCount   int        `gorm:"not null;default:0" json:"entryCount"`
	IsActive     bool       `gorm:"not null" json:"isActive"`
}

func (GoogleSheet) TableName() string {
	return "google_sheets"
}
