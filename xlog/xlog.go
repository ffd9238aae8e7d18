package xlog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlinked/lib/infra"
)

const envLogLevel = "XLOG_LVL"

var printBanner = sync.Once{}

// XLogger is wrapper logger of Uber zap logger.
type xLogger struct {
	logger              atomic.Pointer[zap.Logger]
	dynamicLevelEnabler zap.AtomicLevel
	writer              logOutWriterType
	encoder             logEncoderType
}

func (l *xLogger) zap() *zap.Logger {
	return l.logger.Load()
}

// IncreaseLogLevel we can increase or decrease the log level concurrently.
func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	l.dynamicLevelEnabler.SetLevel(level)
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Level() string {
	return l.dynamicLevelEnabler.Level().String()
}

func (l *xLogger) Banner(banner Banner) {
	if banner == nil {
		return
	}
	printBanner.Do(func() {
		ws, ok := getOutWriterByType(l.writer)
		if !ok {
			return
		}
		var enc zapcore.Encoder
		core := zapcore.EncoderConfig{
			MessageKey:    "banner", // Required, but the plain text will be ignored.
			LevelKey:      coreKeyIgnored,
			TimeKey:       coreKeyIgnored,
			CallerKey:     coreKeyIgnored,
			StacktraceKey: coreKeyIgnored,
		}
		msg := banner.JSON()
		switch l.encoder {
		case PlainText:
			enc = zapcore.NewConsoleEncoder(core)
			msg = banner.PlainText()
		case JSON:
			fallthrough
		default:
			enc = zapcore.NewJSONEncoder(core)
		}
		lvlEnabler := zap.NewAtomicLevelAt(zapcore.InfoLevel)
		_l := l.logger.Load().WithOptions(
			zap.WrapCore(func(core zapcore.Core) zapcore.Core {
				return zapcore.NewCore(enc, ws, lvlEnabler)
			}),
		)
		_l.Info(msg)
	})
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	if err != nil {
		newFields = append(newFields, zap.String("error", err.Error()))
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) ErrorStack(err error, msg string, fields ...zap.Field) {
	newFields := make([]zap.Field, 0, len(fields)+1)
	newFields = append(newFields, errorStackField(err))
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

func (l *xLogger) ErrorStackf(err error, format string, args ...any) {
	l.logger.Load().Log(zap.ErrorLevel, fmt.Sprintf(format, args...), errorStackField(err))
}

// errorStackField falls back to a plain error string if err carries no frames.
func errorStackField(err error) zap.Field {
	if es, ok := err.(infra.ErrorStack); ok && es != nil {
		return zap.Inline(es)
	}
	if err == nil {
		return zap.Skip()
	}
	return zap.String("error", err.Error())
}

type loggerCfg struct {
	writerType       *logOutWriterType
	encoderType      *logEncoderType
	lvlEncoder       zapcore.LevelEncoder
	tsEncoder        zapcore.TimeEncoder
	level            *zapcore.Level
	coreConstructors []XLogCoreConstructor
	cores            []xLogCore
}

func (cfg *loggerCfg) apply(l *xLogger) {
	if cfg.encoderType != nil {
		l.encoder = *cfg.encoderType
	} else {
		l.encoder = JSON
	}

	if cfg.writerType != nil {
		l.writer = *cfg.writerType
	} else {
		l.writer = StdOut
	}

	if cfg.level != nil {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(*cfg.level)
	} else {
		l.dynamicLevelEnabler = zap.NewAtomicLevelAt(getLogLevelOrDefault(os.Getenv(envLogLevel)))
	}

	if cfg.lvlEncoder == nil {
		cfg.lvlEncoder = zapcore.CapitalLevelEncoder
	}

	if cfg.tsEncoder == nil {
		cfg.tsEncoder = zapcore.ISO8601TimeEncoder
	}

	if len(cfg.coreConstructors) == 0 {
		cfg.coreConstructors = []XLogCoreConstructor{
			newConsoleCore,
		}
	}

	cfg.cores = make([]xLogCore, 0, len(cfg.coreConstructors))
	for _, cc := range cfg.coreConstructors {
		cfg.cores = append(cfg.cores, cc(
			&l.dynamicLevelEnabler,
			l.encoder,
			l.writer,
			cfg.lvlEncoder,
			cfg.tsEncoder,
		))
	}
}

type XLoggerOption func(*loggerCfg) error

func NewXLogger(opts ...XLoggerOption) XLogger {
	cfg := &loggerCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		if err := o(cfg); err != nil {
			panic(err)
		}
	}
	xl := &xLogger{}
	cfg.apply(xl)

	// Disable zap logger error stack.
	l := zap.New(
		XLogTeeCore(cfg.cores...),
		zap.AddCallerSkip(1), // Use caller filename as service
		zap.AddCaller(),
	)
	xl.logger.Store(l)
	return xl
}

func WithXLoggerWriter(w logOutWriterType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if w >= _writerMax {
			return infra.NewErrorStack("unknown xlogger writer")
		}
		cfg.writerType = &w
		cfg.coreConstructors = append(cfg.coreConstructors, newConsoleCore)
		return nil
	}
}

func WithXLoggerStdOutWriter() XLoggerOption {
	return WithXLoggerWriter(StdOut)
}

func WithXLoggerEncoder(logEnc logEncoderType) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if logEnc >= _encMax {
			return infra.NewErrorStack("unknown xlogger encoder")
		}
		cfg.encoderType = &logEnc
		return nil
	}
}

func WithXLoggerLevel(lvl logLevel) XLoggerOption {
	return func(cfg *loggerCfg) error {
		_lvl := lvl.zapLevel()
		cfg.level = &_lvl
		return nil
	}
}

func WithXLoggerLevelEncoder(lvlEnc zapcore.LevelEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if lvlEnc == nil {
			lvlEnc = zapcore.CapitalColorLevelEncoder
		}
		cfg.lvlEncoder = lvlEnc
		return nil
	}
}

func WithXLoggerTimeEncoder(tsEnc zapcore.TimeEncoder) XLoggerOption {
	return func(cfg *loggerCfg) error {
		if tsEnc == nil {
			tsEnc = zapcore.ISO8601TimeEncoder
		}
		cfg.tsEncoder = tsEnc
		return nil
	}
}

// GetEncoderByName maps "json" and "plain" (case-insensitive) to the encoder type.
// Anything else is JSON.
func GetEncoderByName(name string) logEncoderType {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "plain", "plaintext", "text", "console":
		return PlainText
	}
	return JSON
}

func getLogLevelOrDefault(level string) zapcore.Level {
	if len(strings.TrimSpace(level)) == 0 {
		return zapcore.DebugLevel
	}

	switch strings.ToUpper(level) {
	case LogLevelInfo.String():
		return zapcore.InfoLevel
	case LogLevelWarn.String():
		return zapcore.WarnLevel
	case LogLevelError.String():
		return zapcore.ErrorLevel
	case LogLevelDebug.String():
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}
