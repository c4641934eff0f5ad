package dto

import "time"

type UserDTO struct {
	ID              string    `json:"id"`
	Email           *string   `json:"email,omitempty"`
	FirstName       string    `json:"firstName"`
	LastName        string    `json:"lastName"`
	DisplayName     string    `json:"displayName"`
	ProfileImageURL string    `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}
