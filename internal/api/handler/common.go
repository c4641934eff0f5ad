package handler

import (
	"Sheetcast/internal/api/middleware"
	"Sheetcast/internal/pkg/util"
	"Sheetcast/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}

// bindJSON 解析并校验请求体，解析失败统一归为参数错误
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.WithMessage(service.ErrParamInvalid, err.Error())
	}
	return util.ValidateDTO(req)
}
