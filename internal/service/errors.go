package service

import (
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/llm"
	"Sheetcast/internal/pkg/sheets"
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	BadGateway          = 502
	InternalServerError = 500
)

var (
	ErrParamInvalid       = errors.New("参数错误")
	ErrUserNotFound       = errors.New("User not found")
	ErrSheetNotFound      = errors.New("Google Sheet not found")
	ErrSheetAccessDenied  = errors.New("Cannot access Google Sheet with the provided token")
	ErrConnectionNotFound = errors.New("Platform connection not found")
	ErrWorkflowNotFound   = errors.New("Workflow not found")
	ErrPostNotFound       = errors.New("Post not found")
	ErrNoActiveSheets     = errors.New("No active Google Sheets found")
	ErrPlatformInvalid    = errors.New("Unsupported platform")
	UnauthorizedError     = errors.New("Unauthorized")
	UnExpectedError       = errors.New("系统异常，请稍后重试")
)

// ErrorMap 哨兵错误到业务码，按 errors.Is 匹配
var ErrorMap = map[error]int{
	ErrParamInvalid:          BadRequest,
	ErrUserNotFound:          NotFound,
	ErrSheetNotFound:         NotFound,
	ErrSheetAccessDenied:     BadRequest,
	ErrConnectionNotFound:    NotFound,
	ErrWorkflowNotFound:      NotFound,
	ErrPostNotFound:          NotFound,
	ErrNoActiveSheets:        BadRequest,
	ErrPlatformInvalid:       BadRequest,
	model.ErrUnknownPlatform: BadRequest,
	UnauthorizedError:        Unauthorized,
	sheets.ErrIntegration:    BadGateway,
	llm.ErrGeneration:        BadGateway,
	UnExpectedError:          InternalServerError,
}
