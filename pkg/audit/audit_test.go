package audit_test

import (
	"context"
	"testing"

	"cleanpro-web/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskEmail(t *testing.T) {
	tests := map[string]string{
		"jane@example.com": "j***@example.com",
		"j@example.com":    "***@example.com",
		"ab":               "***",
		"noatsign":         "***oatsign",
	}
	for in, want := range tests {
		assert.Equal(t, want, audit.MaskEmail(in), in)
	}
}

func TestHashValueIsStable(t *testing.T) {
	assert.Equal(t, audit.HashValue("form-1"), audit.HashValue("form-1"))
	assert.NotEqual(t, audit.HashValue("form-1"), audit.HashValue("form-2"))
	assert.Len(t, audit.HashValue("x"), 16)
}

func TestLogContactMasksEmail(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := audit.New(zap.New(core), "cleanpro", "development")

	l.LogContact(context.Background(), audit.EventContactFailed, "form-1", "jane@example.com", "Nanny")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "contact_failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "j***@example.com", fields["subject_value"])
	assert.NotContains(t, fields, "ip")
}

func TestLogRateLimitIsWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := audit.New(zap.New(core), "cleanpro", "production")

	l.LogRateLimitTriggered(context.Background(), "203.0.113.7", "curl/8", "req-1", "/contact")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "203.0.113.7", logs.All()[0].ContextMap()["ip"])
}

func TestDefaultIsNoopUntilSet(t *testing.T) {
	assert.NotPanics(t, func() {
		audit.Default().LogCSRFRejected(context.Background(), "ip", "ua", "id", "/theme")
	})
}
