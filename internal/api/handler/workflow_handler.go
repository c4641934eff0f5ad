package handler

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type WorkflowHandler struct {
	workflowSvc service.WorkflowService
}

func NewWorkflowHandler(workflowSvc service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowSvc: workflowSvc}
}

func (s *WorkflowHandler) ListWorkflows(c *gin.Context) {
	list, err := s.workflowSvc.ListWorkflows(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *WorkflowHandler) CreateWorkflow(c *gin.Context) {
	var req dto.CreateWorkflowDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	workflow, err := s.workflowSvc.CreateWorkflow(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, workflow)
}

func (s *WorkflowHandler) UpdateWorkflow(c *gin.Context) {
	var req dto.UpdateWorkflowDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	workflow, err := s.workflowSvc.UpdateWorkflow(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, workflow)
}

func (s *WorkflowHandler) DeleteWorkflow(c *gin.Context) {
	if err := s.workflowSvc.DeleteWorkflow(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// RunWorkflow 同步执行，耗时取决于表格数量与模型响应
func (s *WorkflowHandler) RunWorkflow(c *gin.Context) {
	result, err := s.workflowSvc.Run(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
