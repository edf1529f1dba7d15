package logger

import (
	"bytes"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCaptureLogger() (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Logger{Logger: slog.New(slog.NewTextHandler(&buf, nil))}, &buf
}

func TestLogHTTPRequest_IncludesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, buf := newCaptureLogger()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/rooms", nil)
	c.Set("request_id", "req-abc-123")

	log.LogHTTPRequest(c, 15*time.Millisecond)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "request_id=req-abc-123")
	assert.Contains(t, out, "method=GET")
	assert.Contains(t, out, "path=/api/v1/rooms")
}

func TestWithHelpers(t *testing.T) {
	log, buf := newCaptureLogger()

	log.WithRequestID("req-1").WithSessionID("sess-1").Info("hello")

	out := buf.String()
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "session_id=sess-1")
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "", want: slog.LevelInfo},
		{in: "nonsense", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getLogLevel(tt.in), "level %q", tt.in)
	}
}
