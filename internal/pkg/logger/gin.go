package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

type accessLine struct {
	Time        string `json:"time"`
	Level       string `json:"level"`
	Msg         string `json:"msg"`
	TraceID     string `json:"trace_id,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	TargetIndex string `json:"target_index,omitempty"`
	Method      string `json:"method"`
	Path        string `json:"path"`
	Status      int    `json:"status"`
	Latency     string `json:"latency"`
	ClientIP    string `json:"client_ip"`
	Error       string `json:"error,omitempty"`
}

// SetupGin 访问日志以 JSON 行写入 LogWriter，并挂上 panic 恢复
func SetupGin(r *gin.Engine, index string) {
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Output: LogWriter,
		Formatter: func(p gin.LogFormatterParams) string {
			traceID, _ := p.Keys[TraceIDKey].(string)
			userID, _ := p.Keys["user_id"].(string)
			line := accessLine{
				Time:        p.TimeStamp.Format(time.RFC3339),
				Level:       "INFO",
				Msg:         "GIN_ACCESS",
				TraceID:     traceID,
				UserID:      userID,
				TargetIndex: index,
				Method:      p.Method,
				Path:        p.Path,
				Status:      p.StatusCode,
				Latency:     p.Latency.String(),
				ClientIP:    p.ClientIP,
				Error:       p.ErrorMessage,
			}
			if line.TraceID == "" && p.Request != nil {
				line.TraceID = TraceID(p.Request.Context())
			}
			if p.StatusCode >= 500 {
				line.Level = "ERROR"
			}

			b, err := json.Marshal(line)
			if err != nil {
				return ""
			}
			return string(b) + "\n"
		},
	}))

	r.Use(gin.Recovery())
}
