package wire

import (
	"Sheetcast/internal/api"
	"Sheetcast/internal/api/config"
	"Sheetcast/internal/api/handler"
	"Sheetcast/internal/api/middleware"
	"Sheetcast/internal/job"
	"Sheetcast/internal/pkg/cron"
	"Sheetcast/internal/pkg/security"
	"Sheetcast/internal/pkg/sheets"
	"Sheetcast/internal/repository"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

// Integrations 外部依赖，测试时可替换
type Integrations struct {
	Reader    sheets.Reader
	Generator service.ContentGenerator
}

func BuildApplication(db *gorm.DB, cfg *config.Config, integrations Integrations) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	sheetRepo := repository.NewGoogleSheetRepo(db)
	connRepo := repository.NewPlatformConnectionRepo(db)
	workflowRepo := repository.NewWorkflowRepo(db)
	postRepo := repository.NewPostRepo(db)
	activityRepo := repository.NewActivityRepo(db)
	dashboardRepo := repository.NewDashboardRepo(db)

	userService := service.NewUserService(userRepo)
	activityService := service.NewActivityService(activityRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	sheetService := service.NewGoogleSheetService(sheetRepo, integrations.Reader, activityService, cfg.Sheets.ValidateOnConnect)
	connService := service.NewPlatformConnectionService(connRepo, activityService, dashboardService)
	postService := service.NewPostService(postRepo, activityService, dashboardService)
	workflowService := service.NewWorkflowService(
		workflowRepo,
		sheetRepo,
		postRepo,
		integrations.Reader,
		integrations.Generator,
		activityService,
		dashboardService,
	)

	signer := security.NewSigner(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	handlers := &api.HandlersGroup{
		Auth:                      middleware.AuthMiddleware(signer, userService),
		UserHandler:               handler.NewUserHandler(userService),
		DashboardHandler:          handler.NewDashboardHandler(dashboardService, activityService),
		GoogleSheetHandler:        handler.NewGoogleSheetHandler(sheetService),
		PlatformConnectionHandler: handler.NewPlatformConnectionHandler(connService),
		WorkflowHandler:           handler.NewWorkflowHandler(workflowService),
		PostHandler:               handler.NewPostHandler(postService),
	}

	router := api.SetupRouter(handlers, cfg.Server, cfg.Logstash.Index)

	cronMgr := cron.NewCronManager(cfg.Cron.SheetSync, job.NewSheetSyncJob(sheetService))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
