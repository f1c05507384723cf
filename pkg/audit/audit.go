// Package audit records abuse-relevant events (rate limiting, rejected forms,
// contact outcomes) as structured JSON, with personal data masked.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventCSRFRejected       EventType = "csrf_rejected"
	EventContactDelivered   EventType = "contact_delivered"
	EventContactSimulated   EventType = "contact_simulated"
	EventContactFailed      EventType = "contact_failed"
)

// Event is one audit record. SubjectValue is already masked or hashed.
type Event struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "email", "ip", "form"
	SubjectValue string
	IP           string
	UserAgent    string
	RequestID    string
	Details      map[string]any
}

// Logger writes audit events through zap.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var (
	mu            sync.RWMutex
	defaultLogger = &Logger{zapLogger: zap.NewNop()}
)

// Init builds the production JSON logger and makes it the default.
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	zl, err := config.Build()
	if err != nil {
		zl, _ = zap.NewProduction()
	}
	return SetDefault(New(zl, serviceName, environment))
}

// New wraps an existing zap logger.
func New(zl *zap.Logger, serviceName, environment string) *Logger {
	return &Logger{zapLogger: zl, serviceName: serviceName, environment: environment}
}

// SetDefault replaces the logger returned by Default.
func SetDefault(l *Logger) *Logger {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
	return l
}

// Default returns the process-wide audit logger; a no-op until Init is called.
func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// Log writes event at a level derived from its type.
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	level := zapcore.InfoLevel
	switch event.Event {
	case EventRateLimitTriggered, EventCSRFRejected:
		level = zapcore.WarnLevel
	case EventContactFailed:
		level = zapcore.ErrorLevel
	}

	fields := []zap.Field{
		zap.String("service", l.serviceName),
		zap.String("env", l.environment),
		zap.String("event", string(event.Event)),
		zap.Time("occurred_at", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (l *Logger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details:      map[string]any{"endpoint": endpoint},
	})
}

// LogCSRFRejected logs a state-changing request without a valid token.
func (l *Logger) LogCSRFRejected(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:     EventCSRFRejected,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]any{"endpoint": endpoint},
	})
}

// LogContact logs the outcome of a contact submission. Only the masked email
// and the chosen service are recorded, never the message.
func (l *Logger) LogContact(ctx context.Context, event EventType, formID, email, service string) {
	l.Log(ctx, Event{
		Event:        event,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		Details:      map[string]any{"service": service, "form": HashValue(formID)},
	})
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***" + email[1:]
	}
	return email[:1] + "***" + email[at:]
}

// HashValue is a short SHA256 digest for correlating values without storing them.
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

// Environment maps the gin mode onto the env label.
func Environment(ginMode string) string {
	if ginMode == "release" {
		return "production"
	}
	return "development"
}
