package bootstrap_test

import (
	"context"
	"testing"

	"go-hris-admin/internal/bootstrap"
	"go-hris-admin/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	logger, err := bootstrap.NewLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = bootstrap.NewLogger("loud", true)
	assert.Error(t, err)
}

func TestStdoutAuditLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	ctx := contextutil.WithRequestID(context.Background(), "rid-9")
	bootstrap.NewStdoutAuditLogger().Log(ctx, bootstrap.AuditLog{Action: "SERVER_START", Message: "up"})

	entries := logs.FilterMessage("audit event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "SERVER_START", fields["action"])
	assert.Equal(t, "rid-9", fields["request_id"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}
