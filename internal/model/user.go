package model

import "strings"

type User struct {
	Base
	Email           *string `gorm:"type:varchar(255);uniqueIndex:idx_email" json:"email"`
	FirstName       string  `gorm:"type:varchar(100)" json:"firstName"`
	LastName        string  `gorm:"type:varchar(100)" json:"lastName"`
	ProfileImageURL string  `gorm:"type:varchar(512)" json:"profileImageUrl"`

	GoogleSheets        []GoogleSheet        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	PlatformConnections []PlatformConnection `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Workflows           []Workflow           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Posts               []Post               `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Activities          []Activity           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// DisplayName 展示名，缺省时退回邮箱
func (u *User) DisplayName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" && u.Email != nil {
		return *u.Email
	}
	return name
}
