package dto

import "time"

type PostDTO struct {
	ID             string     `json:"id"`
	WorkflowID     *string    `json:"workflowId"`
	Platform       string     `json:"platform"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Hashtags       string     `json:"hashtags"`
	CharacterCount int        `json:"characterCount"`
	SourceURL      string     `json:"sourceUrl"`
	IsApproved     bool       `json:"isApproved"`
	IsPosted       bool       `json:"isPosted"`
	PostedAt       *time.Time `json:"postedAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type UpdatePostDTO struct {
	IsApproved *bool   `json:"isApproved,omitempty"`
	Title      *string `json:"title,omitempty" validate:"omitempty,max=255"`
	Content    *string `json:"content,omitempty" validate:"omitempty,min=1"`
	Hashtags   *string `json:"hashtags,omitempty"`
}

// Empty 一个字段都没带
func (d *UpdatePostDTO) Empty() bool {
	return d.IsApproved == nil && d.Title == nil && d.Content == nil && d.Hashtags == nil
}
