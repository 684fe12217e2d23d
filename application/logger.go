package application

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a wrapper for zap.SugaredLogger.
type Logger struct {
	zLogger *zap.SugaredLogger
}

// A LoggerConfig contains the running environment, which is either
// "development" or "production", the path of a file to write the
// logging output to, and an option to explicitly enable stacktrace
// output.
type LoggerConfig struct {
	EnableStacktrace bool   `toml:"enable_stacktrace,omitempty"`
	Environment      string `toml:"env"`
	Path             string `toml:"path,omitempty"`
}

// NewLogger builds a Logger from conf. It writes DebugLevel and above
// in the development environment, InfoLevel and above in production, to
// stderr and the file specified in conf, in a human-friendly format.
func NewLogger(conf *LoggerConfig) *Logger {
	zLevel := zap.NewAtomicLevel()
	switch {
	case strings.EqualFold("development", conf.Environment):
		zLevel.SetLevel(zap.DebugLevel)
	case strings.EqualFold("production", conf.Environment):
		zLevel.SetLevel(zap.InfoLevel)
	default:
		panic("Environment must be either development or production")
	}

	zOutputPaths := []string{"stderr"}
	if conf.Path != "" {
		zOutputPaths = append(zOutputPaths, conf.Path)
	}

	zConfig := &zap.Config{
		Level:             zLevel,
		Encoding:          "console",
		DisableStacktrace: !conf.EnableStacktrace,
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "path",
			MessageKey:     "msg",
			StacktraceKey:  "stack",
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths: zOutputPaths,
	}

	logger, err := zConfig.Build()
	if err != nil {
		panic(err)
	}
	return &Logger{logger.Sugar()}
}

// Debug logs a message that is most useful to debug,
// with some additional context addressed by key-value pairs.
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.zLogger.Debugw(msg, keysAndValues...)
}

// Info logs a message that highlights the progress of the application,
// with some additional context addressed by key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.zLogger.Infow(msg, keysAndValues...)
}

// Warn logs a message that indicates a potentially harmful situation,
// with some additional context addressed by key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.zLogger.Warnw(msg, keysAndValues...)
}

// Error logs a message that is fatal to the operation but not the
// application, with some additional context addressed by key-value
// pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.zLogger.Errorw(msg, keysAndValues...)
}

// Fatal logs a severe error event and then calls os.Exit.
func (l *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	l.zLogger.Fatalw(msg, keysAndValues...)
}
