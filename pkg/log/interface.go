package log

import (
	"context"

	"go.uber.org/zap"
)

// Logger writes leveled, printf-style lines. Fields attached to ctx with
// WithFields are added to every line. Safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	// Fatal logs and exits the process.
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

func Init(cfg ZapConfig) Logger {
	l := &zapLogger{cfg: cfg}
	l.sugarLogger = zap.New(l.core(), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
	return l
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugarLogger: zap.NewNop().Sugar()}
}
