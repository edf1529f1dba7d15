package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Text handler for development, JSON for production
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID adds request ID to logger context
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("request_id", requestID)),
	}
}

// WithSessionID adds booking session ID to logger context
func (l *Logger) WithSessionID(sessionID string) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("session_id", sessionID)),
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("request_id", c.GetString("request_id")),
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// Business logic logging methods

// LogSessionStarted logs when a booking session is started
func (l *Logger) LogSessionStarted(ctx context.Context, sessionID, roomID string, hydrated bool) {
	l.Logger.InfoContext(ctx,
		"Booking Session Started",
		slog.String("session_id", sessionID),
		slog.String("room_id", roomID),
		slog.Bool("hydrated_from_link", hydrated),
	)
}

// LogReservationConfirmed logs when a reservation is confirmed
func (l *Logger) LogReservationConfirmed(ctx context.Context, reservationRef, sessionID, roomID string, total int64) {
	l.Logger.InfoContext(ctx,
		"Reservation Confirmed",
		slog.String("reservation_ref", reservationRef),
		slog.String("session_id", sessionID),
		slog.String("room_id", roomID),
		slog.Int64("total", total),
	)
}

// LogPaymentSettled logs the outcome of a payment attempt
func (l *Logger) LogPaymentSettled(ctx context.Context, sessionID, transactionID, outcome string) {
	l.Logger.InfoContext(ctx,
		"Payment Settled",
		slog.String("session_id", sessionID),
		slog.String("transaction_id", transactionID),
		slog.String("outcome", outcome),
	)
}

// LogPaymentCancelled logs a payment attempt cancelled mid-flight
func (l *Logger) LogPaymentCancelled(ctx context.Context, sessionID string) {
	l.Logger.InfoContext(ctx,
		"Payment Attempt Cancelled",
		slog.String("session_id", sessionID),
	)
}

// LogRateLimitExceeded logs rate limit exceeded
func (l *Logger) LogRateLimitExceeded(ctx context.Context, ip, endpoint string) {
	l.Logger.WarnContext(ctx,
		"Rate Limit Exceeded",
		slog.String("ip", ip),
		slog.String("endpoint", endpoint),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
