package xlog

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type logLevel string

const (
	LogLevelDebug logLevel = "DEBUG"
	LogLevelInfo  logLevel = "INFO"
	LogLevelWarn  logLevel = "WARN"
	LogLevelError logLevel = "ERROR"
)

func (lvl logLevel) zapLevel() zapcore.Level {
	switch lvl {
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	case LogLevelError:
		return zapcore.ErrorLevel
	case LogLevelDebug:
		fallthrough
	default:
	}
	return zapcore.DebugLevel
}

func (lvl logLevel) String() string {
	return string(lvl)
}

type logEncoderType uint8

const (
	JSON logEncoderType = iota
	PlainText
	_encMax
)

type logOutWriterType uint8

const (
	StdOut logOutWriterType = iota
	testMemAsOut
	_writerMax
)

const coreKeyIgnored = ""

var (
	writerLock sync.RWMutex
	writerMap  = map[logOutWriterType]zapcore.WriteSyncer{
		StdOut: &zapcore.BufferedWriteSyncer{WS: os.Stdout, Size: 512 * 1024, FlushInterval: 30 * time.Second},
	}
	encoderMap = map[logEncoderType]func(cfg zapcore.EncoderConfig) zapcore.Encoder{
		JSON:      zapcore.NewJSONEncoder,
		PlainText: zapcore.NewConsoleEncoder,
	}
)

func getEncoderByType(typ logEncoderType) func(cfg zapcore.EncoderConfig) zapcore.Encoder {
	enc, ok := encoderMap[typ]
	if !ok {
		return zapcore.NewJSONEncoder
	}
	return enc
}

func getOutWriterByType(typ logOutWriterType) (zapcore.WriteSyncer, bool) {
	writerLock.RLock()
	defer writerLock.RUnlock()
	out, ok := writerMap[typ]
	return out, ok
}

func registerOutWriter(typ logOutWriterType, ws zapcore.WriteSyncer) {
	writerLock.Lock()
	defer writerLock.Unlock()
	writerMap[typ] = ws
}

type Banner interface {
	JSON() string
	PlainText() string
}

type xLogCore interface {
	timeEncoder() zapcore.TimeEncoder
	levelEncoder() zapcore.LevelEncoder
	writeSyncer() zapcore.WriteSyncer
	outEncoder() func(cfg zapcore.EncoderConfig) zapcore.Encoder

	zapcore.Core
}

type XLogCoreConstructor func(
	zapcore.LevelEnabler,
	logEncoderType,
	logOutWriterType,
	zapcore.LevelEncoder,
	zapcore.TimeEncoder,
) xLogCore

// XLogger mainly implemented by Uber zap logger.
//
// zap() is used to create child loggers which redefine
// the zapcore.Core, like the fx event logger.
//
// ErrorStack inlines the frames of an infra.ErrorStack
// as structured fields instead of the zap stacktrace.
//
// Log format is not recommended, because it is low performance.
type XLogger interface {
	zap() *zap.Logger

	IncreaseLogLevel(level zapcore.Level)
	Level() string
	Sync() error
	Banner(banner Banner)

	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
	Error(err error, msg string, fields ...zap.Field)
	ErrorStack(err error, msg string, fields ...zap.Field)

	Logf(lvl zapcore.Level, format string, args ...any)
	ErrorStackf(err error, format string, args ...any)
}
