package xlog

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConsoleCore(t *testing.T) {
	lvlEnabler := zap.NewAtomicLevelAt(LogLevelDebug.zapLevel())
	var cc xLogCore = newConsoleCore(
		&lvlEnabler,
		JSON,
		_writerMax,
		zapcore.CapitalLevelEncoder,
		zapcore.ISO8601TimeEncoder,
	)
	require.Nil(t, cc)

	w := useTestMemWriter()
	cc = newConsoleCore(
		&lvlEnabler,
		JSON,
		testMemAsOut,
		zapcore.CapitalLevelEncoder,
		zapcore.ISO8601TimeEncoder,
	)
	require.NotNil(t, cc.outEncoder())
	require.NotNil(t, cc.writeSyncer())
	require.NotNil(t, cc.levelEncoder())
	require.NotNil(t, cc.timeEncoder())
	require.NotNil(t, cc.(*consoleCore).core.lvlEnabler)
	require.NotNil(t, cc.(*consoleCore).core.core)

	require.True(t, cc.Enabled(zapcore.DebugLevel))
	require.True(t, cc.Enabled(zapcore.ErrorLevel))

	lvlEnabler.SetLevel(zapcore.ErrorLevel)
	require.False(t, cc.Enabled(zapcore.DebugLevel))
	require.False(t, cc.Enabled(zapcore.InfoLevel))
	require.False(t, cc.Enabled(zapcore.WarnLevel))
	require.True(t, cc.Enabled(zapcore.ErrorLevel))
	require.Nil(t, cc.Check(zapcore.Entry{Level: zapcore.DebugLevel}, nil))

	lvlEnabler.SetLevel(zapcore.DebugLevel)

	core := cc.With([]zap.Field{zap.String("key", "value")})
	require.NotNil(t, core)

	ent := cc.Check(zapcore.Entry{Level: zapcore.DebugLevel, Message: "console"}, nil)
	require.NotNil(t, ent)
	err := cc.Write(ent.Entry, []zap.Field{zap.String("key", "value")})
	require.NoError(t, err)
	require.NoError(t, cc.Sync())
	require.Contains(t, w.String(), `"msg":"console"`)
	require.Contains(t, w.String(), `"key":"value"`)

	w.Reset()
	cc, err = WrapCore(cc, componentCoreEncoderCfg)
	require.NoError(t, err)
	require.NotNil(t, cc)
	err = cc.Write(zapcore.Entry{Level: zapcore.DebugLevel, LoggerName: "commonCore"}, []zap.Field{zap.String("key", "value")})
	require.NoError(t, err)
	require.Contains(t, w.String(), `"component":"commonCore"`)

	_, err = WrapCore(nil, componentCoreEncoderCfg)
	require.Error(t, err)
	_, err = WrapCore(cc, nil)
	require.Error(t, err)
}
