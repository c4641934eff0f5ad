package logger

import (
	"Sheetcast/internal/api/config"
	"io"
	log "log/slog"
	"net"
	"os"
	"time"
)

var LogWriter io.Writer = os.Stdout

// InitLogger stdout JSON 日志；配置了 Logstash 且可连通时，带 trace_id 的日志同时上报
func InitLogger(cfg config.LogstashConfig) {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	var finalHandler log.Handler = hStdout

	if cfg.Address != "" {
		conn, err := net.DialTimeout("tcp", cfg.Address, 3*time.Second)
		if err == nil {
			attrs := []log.Attr{log.String("target_index", cfg.Index)}
			if cfg.Token != "" {
				attrs = append(attrs, log.String("log_token", cfg.Token))
			}
			hRemote := log.NewJSONHandler(conn, &log.HandlerOptions{Level: log.LevelInfo}).WithAttrs(attrs)

			finalHandler = NewTeeHandler(hStdout, NewRemoteFilterHandler(hRemote, log.LevelWarn))
			LogWriter = io.MultiWriter(os.Stdout, conn)
		} else {
			log.Warn("Failed to connect to Logstash, logging to stdout only", "err", err)
		}
	}

	log.SetDefault(log.New(&ContextHandler{finalHandler}))
}
