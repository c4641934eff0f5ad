package handler

import (
	"Sheetcast/internal/api/dto"
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/pkg/util"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) ListPosts(c *gin.Context) {
	limit := util.ParseLimit(c.Query("limit"), service.DefaultPostLimit)
	posts, err := s.postSvc.ListPosts(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	var req dto.UpdatePostDTO
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), currentUserID(c), c.Param("id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	if err := s.postSvc.DeletePost(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
