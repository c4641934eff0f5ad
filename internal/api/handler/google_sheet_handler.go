package handler

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type GoogleSheetHandler struct {
	sheetSvc service.GoogleSheetService
}

func NewGoogleSheetHandler(sheetSvc service.GoogleSheetService) *GoogleSheetHandler {
	return &GoogleSheetHandler{sheetSvc: sheetSvc}
}

func (s *GoogleSheetHandler) ListSheets(c *gin.Context) {
	list, err := s.sheetSvc.ListSheets(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *GoogleSheetHandler) ConnectSheet(c *gin.Context) {
	var req dto.CreateGoogleSheetDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	sheet, err := s.sheetSvc.ConnectSheet(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sheet)
}

func (s *GoogleSheetHandler) SyncSheet(c *gin.Context) {
	sheet, err := s.sheetSvc.SyncSheet(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sheet)
}

func (s *GoogleSheetHandler) UpdateSheet(c *gin.Context) {
	var req dto.UpdateGoogleSheetDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	sheet, err := s.sheetSvc.UpdateSheet(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sheet)
}

func (s *GoogleSheetHandler) DeleteSheet(c *gin.Context) {
	if err := s.sheetSvc.DeleteSheet(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GoogleSheetHandler) GetMetadata(c *gin.Context) {
	meta, err := s.sheetSvc.GetSheetMetadata(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, meta)
}
