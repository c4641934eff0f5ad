package llm

import (
	log "log/slog"
	"net/http"
	"time"
)

// loggingTransport 记录每次模型请求的耗时与状态
type loggingTransport struct {
	base http.RoundTripper
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("path", req.URL.Path),
		log.Duration("latency", elapsed),
	}
	if err != nil {
		log.ErrorContext(req.Context(), "LLM_REQUEST_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	fields = append(fields, log.Int("status", resp.StatusCode))
	if elapsed > 10*time.Second {
		log.WarnContext(req.Context(), "LLM_REQUEST_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "LLM_REQUEST", fields...)
	}
	return resp, nil
}
