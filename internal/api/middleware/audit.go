package middleware

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultAuditBodyLimit = 16 << 10

// 令牌字段不进日志
var secretFieldPattern = regexp.MustCompile(`"(accessToken|refreshToken)"\s*:\s*"[^"]*"`)

func redact(body []byte) string {
	return secretFieldPattern.ReplaceAllString(string(body), `"$1":"***"`)
}

// cappedWriter 只保留前 limit 字节的响应体用于审计
type cappedWriter struct {
	gin.ResponseWriter
	body  bytes.Buffer
	limit int
}

func (w *cappedWriter) Write(b []byte) (int, error) {
	if room := w.limit - w.body.Len(); room > 0 {
		w.body.Write(b[:min(room, len(b))])
	}
	return w.ResponseWriter.Write(b)
}

func (w *cappedWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// AuditMiddleware 记录请求与响应，令牌字段脱敏
func AuditMiddleware(bodyLimit int) gin.HandlerFunc {
	if bodyLimit <= 0 {
		bodyLimit = defaultAuditBodyLimit
	}
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var reqBody []byte
		if c.Request.Body != nil && c.Request.Method != http.MethodGet {
			reqBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(reqBody))
		}
		if len(reqBody) > bodyLimit {
			reqBody = reqBody[:bodyLimit]
		}

		log.InfoContext(ctx, "Recv Request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.String("query", c.Request.URL.RawQuery),
			log.String("req_body", redact(reqBody)),
		)

		w := &cappedWriter{ResponseWriter: c.Writer, limit: bodyLimit}
		c.Writer = w
		start := time.Now()

		c.Next()

		log.InfoContext(ctx, "Send Response",
			log.String("user_id", c.GetString(UserIDKey)),
			log.Int("status", c.Writer.Status()),
			log.Duration("latency", time.Since(start)),
			log.String("res_body", redact(w.body.Bytes())),
		)
	}
}
