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

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogBookingCreated logs when a booking is created
func (l *Logger) LogBookingCreated(ctx context.Context, bookingID uint, vehicleType string, total, deposit float64) {
	l.Logger.InfoContext(ctx,
		"Booking Created",
		slog.Uint64("booking_id", uint64(bookingID)),
		slog.String("vehicle_type", vehicleType),
		slog.Float64("total_amount", total),
		slog.Float64("deposit_amount", deposit),
	)
}

// LogPaymentCreated logs when a payment is created with the gateway
func (l *Logger) LogPaymentCreated(ctx context.Context, bookingID uint, paymentType, paymentID, status string) {
	l.Logger.InfoContext(ctx,
		"Payment Created",
		slog.Uint64("booking_id", uint64(bookingID)),
		slog.String("payment_type", paymentType),
		slog.String("payment_id", paymentID),
		slog.String("status", status),
	)
}

// LogWebhookApplied logs an applied payment webhook event
func (l *Logger) LogWebhookApplied(ctx context.Context, bookingID uint, paymentType string, applied bool) {
	l.Logger.InfoContext(ctx,
		"Webhook Applied",
		slog.Uint64("booking_id", uint64(bookingID)),
		slog.String("payment_type", paymentType),
		slog.Bool("state_changed", applied),
	)
}

// LogWebhookRejected logs a webhook that failed signature verification
func (l *Logger) LogWebhookRejected(ctx context.Context, ip string) {
	l.Logger.WarnContext(ctx,
		"Webhook Signature Rejected",
		slog.String("ip", ip),
	)
}

// LogAuthFailure logs failed authentication
func (l *Logger) LogAuthFailure(ctx context.Context, reason, ip string) {
	l.Logger.WarnContext(ctx,
		"Authentication Failure",
		slog.String("reason", reason),
		slog.String("ip", ip),
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
