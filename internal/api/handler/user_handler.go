package handler

import (
	"Sheetcast/internal/api/middleware"
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (s *UserHandler) GetUser(c *gin.Context) {
	user, err := s.userSvc.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) Logout(c *gin.Context) {
	if err := s.userSvc.Logout(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
