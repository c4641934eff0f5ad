package dto

import "time"

type CreateWorkflowDTO struct {
	Name         string  `json:"name" validate:"required,max=255"`
	SummaryModel *string `json:"summaryModel,omitempty" validate:"omitempty,min=1,max=64"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type UpdateWorkflowDTO struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	SummaryModel *string `json:"summaryModel,omitempty" validate:"omitempty,min=1,max=64"`
	IsActive     *bool   `json:"isActive,omitempty"`
}

type WorkflowDTO struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	SummaryModel string     `json:"summaryModel"`
	IsActive     bool       `json:"isActive"`
	LastRun      *time.Time `json:"lastRun"`
	SuccessRate  int        `json:"successRate"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// SheetFailureDTO 单张表格在某个阶段失败，运行继续
type SheetFailureDTO struct {
	SheetID string `json:"sheetId"`
	Name    string `json:"name"`
	Stage   string `json:"stage"`
	Error   string `json:"error"`
}

type WorkflowRunDTO struct {
	Message  string             `json:"message"`
	Posts    []*PostDTO         `json:"posts"`
	Warnings []*SheetFailureDTO `json:"warnings"`
}
