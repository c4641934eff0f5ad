package api

import (
	"Sheetcast/internal/api/handler"

	"github.com/gin-gonic/gin"
)

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	Auth gin.HandlerFunc

	UserHandler               *handler.UserHandler
	DashboardHandler          *handler.DashboardHandler
	GoogleSheetHandler        *handler.GoogleSheetHandler
	PlatformConnectionHandler *handler.PlatformConnectionHandler
	WorkflowHandler           *handler.WorkflowHandler
	PostHandler               *handler.PostHandler
}
