package handler

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type PlatformConnectionHandler struct {
	connSvc service.PlatformConnectionService
}

func NewPlatformConnectionHandler(connSvc service.PlatformConnectionService) *PlatformConnectionHandler {
	return &PlatformConnectionHandler{connSvc: connSvc}
}

func (s *PlatformConnectionHandler) ListConnections(c *gin.Context) {
	list, err := s.connSvc.ListConnections(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *PlatformConnectionHandler) Connect(c *gin.Context) {
	var req dto.CreatePlatformConnectionDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	conn, err := s.connSvc.Connect(c.Request.Context(), currentUserID(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, conn)
}

func (s *PlatformConnectionHandler) UpdateConnection(c *gin.Context) {
	var req dto.UpdatePlatformConnectionDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	conn, err := s.connSvc.UpdateConnection(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, conn)
}

func (s *PlatformConnectionHandler) Disconnect(c *gin.Context) {
	if err := s.connSvc.Disconnect(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
