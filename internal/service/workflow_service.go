package service

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/model"
	"Sheetcast/internal/pkg/llm"
	"Sheetcast/internal/pkg/sheets"
	"Sheetcast/internal/repository"
	"context"
	"fmt"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// 单张表格失败所处的阶段
const (
	StageRead      = "read"
	StageSummarize = "summarize"
	StageGenerate  = "generate"
)

// ContentGenerator 摘要与分平台成稿，由 llm.Client 实现
type ContentGenerator interface {
	Summarize(ctx context.Context, records []llm.Record, model string) (string, error)
	GeneratePost(ctx context.Context, summary string, platform model.Platform) (*llm.GeneratedPost, error)
}

type WorkflowService interface {
	ListWorkflows(ctx context.Context, userID string) ([]*dto.WorkflowDTO, error)
	CreateWorkflow(ctx context.Context, userID string, req *dto.CreateWorkflowDTO) (*dto.WorkflowDTO, error)
	UpdateWorkflow(ctx context.Context, userID string, id string, req *dto.UpdateWorkflowDTO) (*dto.WorkflowDTO, error)
	DeleteWorkflow(ctx context.Context, userID string, id string) error
	Run(ctx context.Context, userID string, id string) (*dto.WorkflowRunDTO, error)
}

type workflowServiceImpl struct {
	workflowRepo repository.WorkflowRepo
	sheetRepo    repository.GoogleSheetRepo
	postRepo     repository.PostRepo
	reader       sheets.Reader
	generator    ContentGenerator
	activitySvc  ActivityService
	dashboardSvc DashboardService
}

func NewWorkflowService(
	workflowRepo repository.WorkflowRepo,
	sheetRepo repository.GoogleSheetRepo,
	postRepo repository.PostRepo,
	reader sheets.Reader,
	generator ContentGenerator,
	activitySvc ActivityService,
	dashboardSvc DashboardService,
) WorkflowService {
	return &workflowServiceImpl{
		workflowRepo: workflowRepo,
		sheetRepo:    sheetRepo,
		postRepo:     postRepo,
		reader:       reader,
		generator:    generator,
		activitySvc:  activitySvc,
		dashboardSvc: dashboardSvc,
	}
}

func (s *workflowServiceImpl) ListWorkflows(ctx context.Context, userID string) ([]*dto.WorkflowDTO, error) {
	list, err := s.workflowRepo.GetWorkflowsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.WorkflowDTO, 0, len(list))
	if err = copier.Copy(&result, &list); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *workflowServiceImpl) CreateWorkflow(ctx context.Context, userID string, req *dto.CreateWorkflowDTO) (*dto.WorkflowDTO, error) {
	workflow := &model.Workflow{
		UserID:       userID,
		Name:         req.Name,
		SummaryModel: model.DefaultSummaryModel,
		IsActive:     true,
	}
	if req.SummaryModel != nil {
		workflow.SummaryModel = *req.SummaryModel
	}
	if req.IsActive != nil {
		workflow.IsActive = *req.IsActive
	}

	if err := s.workflowRepo.CreateWorkflow(ctx, workflow); err != nil {
		return nil, err
	}
	s.dashboardSvc.Invalidate(ctx, userID)
	return toWorkflowDTO(workflow)
}

func (s *workflowServiceImpl) UpdateWorkflow(ctx context.Context, userID string, id string, req *dto.UpdateWorkflowDTO) (*dto.WorkflowDTO, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.SummaryModel != nil {
		updates["summary_model"] = *req.SummaryModel
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, ErrParamInvalid
	}

	if _, err := s.getWorkflow(ctx, userID, id); err != nil {
		return nil, err
	}
	if _, err := s.workflowRepo.UpdateWorkflow(ctx, userID, id, updates); err != nil {
		return nil, err
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	workflow, err := s.getWorkflow(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toWorkflowDTO(workflow)
}

func (s *workflowServiceImpl) DeleteWorkflow(ctx context.Context, userID string, id string) error {
	rows, err := s.workflowRepo.DeleteWorkflow(ctx, userID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrWorkflowNotFound
	}
	s.dashboardSvc.Invalidate(ctx, userID)
	return nil
}

// Run 顺序处理用户的每张活跃表格：读取、摘要、三平台成稿，再落库。
// 读取或生成失败只跳过当前表格并记为 warning；落库失败立即中止，已写入的帖子保留。
func (s *workflowServiceImpl) Run(ctx context.Context, userID string, id string) (*dto.WorkflowRunDTO, error) {
	workflow, err := s.getWorkflow(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	activeSheets, err := s.sheetRepo.GetActiveSheetsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(activeSheets) == 0 {
		return nil, ErrNoActiveSheets
	}

	created := make([]*model.Post, 0, len(activeSheets)*len(model.Platforms))
	warnings := make([]*dto.SheetFailureDTO, 0)

	for _, sheet := range activeSheets {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		posts, failure := s.generateForSheet(ctx, workflow, sheet)
		if failure != nil {
			log.WarnContext(ctx, "workflow sheet failed",
				"workflow_id", workflow.ID,
				"sheet_id", sheet.ID,
				"stage", failure.Stage,
				"err", failure.Error,
			)
			warnings = append(warnings, failure)
			continue
		}
		if len(posts) == 0 {
			log.InfoContext(ctx, "workflow sheet empty, skipped", "workflow_id", workflow.ID, "sheet_id", sheet.ID)
			continue
		}

		if err = s.postRepo.CreatePosts(ctx, posts); err != nil {
			log.ErrorContext(ctx, "persist posts error", "workflow_id", workflow.ID, "sheet_id", sheet.ID, "err", err)
			return nil, errors.WithMessagef(UnExpectedError, "persist posts for sheet %s: %v", sheet.ID, err)
		}
		created = append(created, posts...)
	}

	successRate := 0
	if len(created) > 0 {
		successRate = 100
	}
	if _, err = s.workflowRepo.UpdateWorkflow(ctx, userID, workflow.ID, map[string]any{
		"last_run":     time.Now(),
		"success_rate": successRate,
	}); err != nil {
		return nil, errors.WithMessagef(UnExpectedError, "update workflow %s: %v", workflow.ID, err)
	}

	if err = s.activitySvc.Record(ctx, userID, model.ActivityWorkflowRun,
		fmt.Sprintf("Workflow completed: %d posts generated", len(created)),
		map[string]any{
			"workflowId":     workflow.ID,
			"postsGenerated": len(created),
			"failedSheets":   len(warnings),
		},
	); err != nil {
		return nil, errors.WithMessagef(UnExpectedError, "record workflow run: %v", err)
	}
	s.dashboardSvc.Invalidate(ctx, userID)

	postDTOs, err := toPostDTOs(created)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "workflow run finished",
		"workflow_id", workflow.ID,
		"sheets", len(activeSheets),
		"posts", len(created),
		"failed_sheets", len(warnings),
	)

	return &dto.WorkflowRunDTO{
		Message:  fmt.Sprintf("Workflow completed successfully. Generated %d posts.", len(created)),
		Posts:    postDTOs,
		Warnings: warnings,
	}, nil
}

// generateForSheet 一张表格要么产出全部平台的帖子，要么一条都不产出
func (s *workflowServiceImpl) generateForSheet(ctx context.Context, workflow *model.Workflow, sheet *model.GoogleSheet) ([]*model.Post, *dto.SheetFailureDTO) {
	fail := func(stage string, err error) *dto.SheetFailureDTO {
		return &dto.SheetFailureDTO{SheetID: sheet.ID, Name: sheet.Name, Stage: stage, Error: err.Error()}
	}

	records, err := s.reader.Read(ctx, sheet.SheetID, sheet.AccessToken)
	if err != nil {
		return nil, fail(StageRead, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	summary, err := s.generator.Summarize(ctx, records, workflow.SummaryModel)
	if err != nil {
		return nil, fail(StageSummarize, err)
	}

	sourceURL := sheets.SourceURL(sheet.SheetID)
	posts := make([]*model.Post, 0, len(model.Platforms))
	for _, platform := range model.Platforms {
		generated, err := s.generator.GeneratePost(ctx, summary, platform)
		if err != nil {
			return nil, fail(StageGenerate, err)
		}
		posts = append(posts, &model.Post{
			UserID:         workflow.UserID,
			WorkflowID:     &workflow.ID,
			Platform:       platform,
			Title:          generated.Title,
			Content:        generated.Content,
			Hashtags:       generated.Hashtags,
			CharacterCount: model.CountCharacters(generated.Content),
			SourceURL:      sourceURL,
		})
	}
	return posts, nil
}

func (s *workflowServiceImpl) getWorkflow(ctx context.Context, userID string, id string) (*model.Workflow, error) {
	workflow, err := s.workflowRepo.GetWorkflowById(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if workflow == nil {
		return nil, ErrWorkflowNotFound
	}
	return workflow, nil
}

func toWorkflowDTO(workflow *model.Workflow) (*dto.WorkflowDTO, error) {
	workflowDTO := &dto.WorkflowDTO{}
	if err := copier.Copy(workflowDTO, workflow); err != nil {
		return nil, err
	}
	return workflowDTO, nil
}
