package log

import "go.uber.org/zap"

type ZapConfig struct {
	// Level is any level zapcore.ParseLevel accepts; unknown values log at info.
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugarLogger *zap.SugaredLogger
	cfg         ZapConfig
}
