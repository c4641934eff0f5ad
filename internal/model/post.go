package model

import (
	"time"
	"unicode/utf8"
)

type Post struct {
	Base
	UserID         string     `gorm:"type:varchar(36);not null;index:idx_post_user_id" json:"userId"`
	WorkflowID     *string    `gorm:"type:varchar(36);index:idx_post_workflow_id" json:"workflowId"`
	Platform       Platform   `gorm:"type:varchar(32);not null" json:"platform"`
	Title          string     `gorm:"type:text" json:"title"`
	Content        string     `gorm:"type:text;not null" json:"content"`
	Hashtags       string     `gorm:"type:text" json:"hashtags"`
	CharacterCount int        `gorm:"not null;default:0" json:"characterCount"`
	SourceURL      string     `gorm:"type:text" json:"sourceUrl"`
	IsApproved     bool       `gorm:"not null;default:false" json:"isApproved"`
	IsPosted       bool       `gorm:"not null;default:false" json:"isPosted"`
	PostedAt       *time.Time `json:"postedAt"`

	Workflow *Workflow `gorm:"foreignKey:WorkflowID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

// CountCharacters 按 Unicode 码点计数，不是 UTF-16 码元（🚀 记 1）
func CountCharacters(content string) int {
	return utf8.RuneCountInString(content)
}
