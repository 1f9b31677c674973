package log

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeFormat = "2006-01-02 15:04:05.000"

func (l *zapLogger) level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(l.cfg.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l *zapLogger) encoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	if l.cfg.Mode == ModeProduction {
		cfg = zap.NewProductionEncoderConfig()
	}
	cfg.TimeKey = "TIME"
	cfg.LevelKey = "LEVEL"
	cfg.NameKey = "NAME"
	cfg.CallerKey = "CALLER"
	cfg.MessageKey = "MESSAGE"
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeFormat)
	cfg.EncodeDuration = zapcore.MillisDurationEncoder

	if l.cfg.Encoding != EncodingConsole {
		return zapcore.NewJSONEncoder(cfg)
	}
	if l.cfg.ColorEnabled {
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}

func (l *zapLogger) core() zapcore.Core {
	return zapcore.NewCore(l.encoder(), zapcore.Lock(os.Stderr), zap.NewAtomicLevelAt(l.level()))
}

type fieldsKey struct{}

// WithFields returns a context whose log lines carry keysAndValues in addition
// to any fields already attached. Request middleware uses it to tag lines with
// the request id, the caller and the organization.
func WithFields(ctx context.Context, keysAndValues ...any) context.Context {
	if len(keysAndValues) == 0 {
		return ctx
	}
	prev, _ := ctx.Value(fieldsKey{}).([]any)
	fields := make([]any, 0, len(prev)+len(keysAndValues))
	fields = append(append(fields, prev...), keysAndValues...)
	return context.WithValue(ctx, fieldsKey{}, fields)
}

func (l *zapLogger) ctx(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		panic("nil context passed to Logger")
	}
	if fields, _ := ctx.Value(fieldsKey{}).([]any); len(fields) > 0 {
		return l.sugarLogger.With(fields...)
	}
	return l.sugarLogger
}

func (l *zapLogger) Debug(ctx context.Context, args ...any) { l.ctx(ctx).Debug(args...) }
func (l *zapLogger) Debugf(ctx context.Context, template string, args ...any) {
	l.ctx(ctx).Debugf(template, args...)
}
func (l *zapLogger) Info(ctx context.Context, args ...any) { l.ctx(ctx).Info(args...) }
func (l *zapLogger) Infof(ctx context.Context, template string, args ...any) {
	l.ctx(ctx).Infof(template, args...)
}
func (l *zapLogger) Warn(ctx context.Context, args ...any) { l.ctx(ctx).Warn(args...) }
func (l *zapLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.ctx(ctx).Warnf(template, args...)
}
func (l *zapLogger) Error(ctx context.Context, args ...any) { l.ctx(ctx).Error(args...) }
func (l *zapLogger) Errorf(ctx context.Context, template string, args ...any) {
	l.ctx(ctx).Errorf(template, args...)
}
func (l *zapLogger) Fatal(ctx context.Context, args ...any) { l.ctx(ctx).Fatal(args...) }
func (l *zapLogger) Fatalf(ctx context.Context, template string, args ...any) {
	l.ctx(ctx).Fatalf(template, args...)
}
