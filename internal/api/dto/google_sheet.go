package dto

import "time"

type CreateGoogleSheetDTO struct {
	Name         string  `json:"name" validate:"required,max=255"`
	SheetID      string  `json:"sheetId" validate:"required,max=255"`
	AccessToken  string  `json:"accessToken" validate:"required"`
	RefreshToken *string `json:"refreshToken,omitempty"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type UpdateGoogleSheetDTO struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// GoogleSheetDTO 不回传令牌
type GoogleSheetDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	SheetID    string     `json:"sheetId"`
	LastSynced *time.Time `json:"lastSynced"`
	EntryCount int        `json:"entryCount"`
	IsActive   bool       `json:"isActive"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

type SheetMetadataDTO struct {
	Title      string `json:"title"`
	SheetCount int    `json:"sheetCount"`
}
