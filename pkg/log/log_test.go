package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &zapLogger{sugarLogger: zap.New(core).Sugar()}

	ctx := WithFields(context.Background(), "request_id", "req-1")
	ctx = WithFields(ctx, "organization_id", "org-1")
	l.Infof(ctx, "listed %d customers", 3)
	l.Warn(context.Background(), "no fields")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "listed 3 customers", entries[0].Message)
	assert.Equal(t, map[string]any{"request_id": "req-1", "organization_id": "org-1"}, entries[0].ContextMap())
	assert.Empty(t, entries[1].ContextMap())
}

func TestWithFieldsDoesNotLeakToParent(t *testing.T) {
	parent := WithFields(context.Background(), "request_id", "req-1")
	_ = WithFields(parent, "organization_id", "org-1")

	fields, _ := parent.Value(fieldsKey{}).([]any)
	assert.Equal(t, []any{"request_id", "req-1"}, fields)
}

func TestLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"":      zapcore.InfoLevel,
		"loud":  zapcore.InfoLevel,
	}
	for in, want := range tests {
		l := &zapLogger{cfg: ZapConfig{Level: in}}
		assert.Equal(t, want, l.level(), in)
	}
}
