package middleware

import (
	"Sheetcast/internal/pkg/response"
	"Sheetcast/internal/pkg/security"
	"Sheetcast/internal/service"
	log "log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "user_id"
	TokenKey  = "token"
)

// AuthMiddleware 验证 JWT，按 sub 建档，并将用户 ID 注入 Context
func AuthMiddleware(signer *security.Signer, userSvc service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, "Token 缺失或格式错误")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		revoked, err := userSvc.IsTokenRevoked(ctx, tokenString)
		if err != nil {
			log.ErrorContext(ctx, "check token blacklist error", "err", err)
			response.Fail(c, response.InternalServerError, "未知错误")
			return
		}
		if revoked {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			return
		}

		claims, err := signer.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, "Token 无效或已过期")
			return
		}

		if err = userSvc.SyncUser(ctx, claims); err != nil {
			response.Error(c, err)
			return
		}

		c.Set(UserIDKey, claims.UserID())
		c.Set(TokenKey, tokenString)

		c.Next()
	}
}
