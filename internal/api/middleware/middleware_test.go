package middleware

import (
	"bytes"
	log "log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(mw...)
	r.Any("/echo", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"accessToken": "sheet-secret", "ok": true})
	})
	return r
}

func TestCORSAllowList(t *testing.T) {
	r := newEngine(CORSMiddleware([]string{"http://app.local"}))

	req := httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "http://app.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/echo", nil)
	req.Header.Set("Origin", "http://evil.local")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSEchoesOriginWhenUnconfigured(t *testing.T) {
	r := newEngine(CORSMiddleware(nil))

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("Origin", "http://anything.local")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://anything.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTraceHeader(t *testing.T) {
	r := newEngine(TraceMiddleware())

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(TraceHeader, "trace-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "trace-1", w.Header().Get(TraceHeader))

	req = httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set(TraceHeader, strings.Repeat("x", maxTraceIDLen+1))
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	got := w.Header().Get(TraceHeader)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), maxTraceIDLen)
}

func TestAuditRedactsTokens(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.New(log.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { log.SetDefault(prev) })

	r := newEngine(AuditMiddleware(0))
	body := `{"platform":"twitter","accessToken":"oauth-secret","refreshToken":"r"}`
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sheet-secret")
	out := buf.String()
	assert.Contains(t, out, "Recv Request")
	assert.Contains(t, out, "Send Response")
	assert.NotContains(t, out, "oauth-secret")
	assert.NotContains(t, out, "sheet-secret")
}

func TestCappedWriter(t *testing.T) {
	r := gin.New()
	r.Use(AuditMiddleware(4))
	r.GET("/long", func(c *gin.Context) {
		c.String(http.StatusOK, "0123456789")
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/long", nil))
	assert.Equal(t, "0123456789", w.Body.String())
}
