package dto

import "time"

type CreatePlatformConnectionDTO struct {
	Platform     string     `json:"platform" validate:"required"`
	AccountName  string     `json:"accountName" validate:"required,max=255"`
	AccessToken  string     `json:"accessToken" validate:"required"`
	RefreshToken *string    `json:"refreshToken,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	IsActive     *bool      `json:"isActive,omitempty"`
}

type UpdatePlatformConnectionDTO struct {
	AccountName *string `json:"accountName,omitempty" validate:"omitempty,min=1,max=255"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type PlatformConnectionDTO struct {
	ID          string     `json:"id"`
	Platform    string     `json:"platform"`
	AccountName string     `json:"accountName"`
	ExpiresAt   *time.Time `json:"expiresAt"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
