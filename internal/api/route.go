package api

import (
	"Sheetcast/internal/api/config"
	"Sheetcast/internal/api/middleware"
	"Sheetcast/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup, server config.ServerConfig, logIndex string) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware(server.AuditBodyLimit))
	r.Use(middleware.CORSMiddleware(server.AllowedOrigins))
	logger.SetupGin(r, logIndex)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    200,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		authGroup.Use(group.Auth)
		{
			authGroup.GET("/user", group.UserHandler.GetUser)
			authGroup.POST("/logout", group.UserHandler.Logout)
		}

		dashboardGroup := apiGroup.Group("/dashboard")
		dashboardGroup.Use(group.Auth)
		{
			dashboardGroup.GET("/stats", group.DashboardHandler.GetStats)
		}

		activityGroup := apiGroup.Group("/activities")
		activityGroup.Use(group.Auth)
		{
			activityGroup.GET("", group.DashboardHandler.ListActivities)
		}

		sheetGroup := apiGroup.Group("/google-sheets")
		sheetGroup.Use(group.Auth)
		{
			sheetGroup.GET("", group.GoogleSheetHandler.ListSheets)
			sheetGroup.POST("", group.GoogleSheetHandler.ConnectSheet)
			sheetGroup.POST("/:id/sync", group.GoogleSheetHandler.SyncSheet)
			sheetGroup.GET("/:id/metadata", group.GoogleSheetHandler.GetMetadata)
			sheetGroup.PATCH("/:id", group.GoogleSheetHandler.UpdateSheet)
			sheetGroup.DELETE("/:id", group.GoogleSheetHandler.DeleteSheet)
		}

		connGroup := apiGroup.Group("/platform-connections")
		connGroup.Use(group.Auth)
		{
			connGroup.GET("", group.PlatformConnectionHandler.ListConnections)
			connGroup.POST("", group.PlatformConnectionHandler.Connect)
			connGroup.PATCH("/:id", group.PlatformConnectionHandler.UpdateConnection)
			connGroup.DELETE("/:id", group.PlatformConnectionHandler.Disconnect)
		}

		workflowGroup := apiGroup.Group("/workflows")
		workflowGroup.Use(group.Auth)
		{
			workflowGroup.GET("", group.WorkflowHandler.ListWorkflows)
			workflowGroup.POST("", group.WorkflowHandler.CreateWorkflow)
			workflowGroup.PATCH("/:id", group.WorkflowHandler.UpdateWorkflow)
			workflowGroup.DELETE("/:id", group.WorkflowHandler.DeleteWorkflow)
			workflowGroup.POST("/:id/run", group.WorkflowHandler.RunWorkflow)
		}

		postGroup := apiGroup.Group("/posts")
		postGroup.Use(group.Auth)
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.PATCH("/:id", group.PostHandler.UpdatePost)
			postGroup.DELETE("/:id", group.PostHandler.DeletePost)
		}
	}

	return r
}
