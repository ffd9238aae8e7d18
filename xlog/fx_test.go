package xlog

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxevent"
)

func TestFxXLogger_LogEvent(t *testing.T) {
	w := useTestMemWriter()
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(testMemAsOut),
	)
	fxLogger := NewFxXLogger(logger)

	errFx := errors.New("fx failure")
	testcases := []struct {
		name  string
		event fxevent.Event
		msg   string
		lvl   string
		err   bool
	}{
		{"OnStartExecuting", &fxevent.OnStartExecuting{FunctionName: "run", CallerName: "main"}, "HOOK OnStart", "DEBUG", false},
		{"OnStartExecuted", &fxevent.OnStartExecuted{FunctionName: "run", CallerName: "main", Runtime: time.Millisecond}, "HOOK OnStart done", "DEBUG", false},
		{"OnStartExecutedErr", &fxevent.OnStartExecuted{FunctionName: "run", Err: errFx}, "HOOK OnStart failed", "ERROR", true},
		{"OnStopExecuting", &fxevent.OnStopExecuting{FunctionName: "sync", CallerName: "main"}, "HOOK OnStop", "DEBUG", false},
		{"OnStopExecuted", &fxevent.OnStopExecuted{FunctionName: "sync", Runtime: time.Millisecond}, "HOOK OnStop done", "DEBUG", false},
		{"OnStopExecutedErr", &fxevent.OnStopExecuted{FunctionName: "sync", Err: errFx}, "HOOK OnStop failed", "ERROR", true},
		{"Supplied", &fxevent.Supplied{TypeName: "string"}, "SUPPLY", "DEBUG", false},
		{"SuppliedErr", &fxevent.Supplied{TypeName: "string", Err: errFx}, "SUPPLY failed", "ERROR", true},
		{"Provided", &fxevent.Provided{ConstructorName: "NewXLogger", OutputTypeNames: []string{"xlog.XLogger"}}, "PROVIDE", "DEBUG", false},
		{"Invoking", &fxevent.Invoking{FunctionName: "register"}, "INVOKING", "DEBUG", false},
		{"InvokedErr", &fxevent.Invoked{FunctionName: "register", Err: errFx}, "INVOKE failed", "ERROR", true},
		{"Stopping", &fxevent.Stopping{Signal: os.Interrupt}, "STOPPING", "INFO", false},
		{"StoppedErr", &fxevent.Stopped{Err: errFx}, "STOP failed", "ERROR", true},
		{"RollingBack", &fxevent.RollingBack{StartErr: errFx}, "START failed, rolling back", "WARN", true},
		{"RolledBackErr", &fxevent.RolledBack{Err: errFx}, "ROLLBACK failed", "ERROR", true},
		{"Started", &fxevent.Started{}, "RUNNING", "DEBUG", false},
		{"StartedErr", &fxevent.Started{Err: errFx}, "START failed", "ERROR", true},
		{"LoggerInitialized", &fxevent.LoggerInitialized{ConstructorName: "NewFxXLogger"}, "LOGGER initialized", "DEBUG", false},
		{"LoggerInitializedErr", &fxevent.LoggerInitialized{Err: errFx}, "LOGGER initialization failed", "ERROR", true},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			w.Reset()
			fxLogger.LogEvent(tc.event)
			entries := w.lines(tt)
			require.Len(tt, entries, 1)
			require.Equal(tt, tc.msg, entries[0]["msg"])
			require.Equal(tt, tc.lvl, entries[0]["lvl"])
			require.Equal(tt, "Fx", entries[0]["component"])
			if tc.err {
				require.Equal(tt, errFx.Error(), entries[0]["error"])
			}
		})
	}
}

func TestFxXLogger_SilentEvents(t *testing.T) {
	w := useTestMemWriter()
	fxLogger := NewFxXLogger(NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerWriter(testMemAsOut),
	))
	fxLogger.LogEvent(&fxevent.Invoked{FunctionName: "register"})
	fxLogger.LogEvent(&fxevent.Stopped{})
	fxLogger.LogEvent(&fxevent.RolledBack{})
	require.Empty(t, w.String())

	var nilLogger *FxXLogger
	require.NotPanics(t, func() {
		nilLogger.LogEvent(&fxevent.Started{})
	})
}

func TestFxXLogger_FollowsLevel(t *testing.T) {
	w := useTestMemWriter()
	logger := NewXLogger(
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerWriter(testMemAsOut),
	)
	fxLogger := NewFxXLogger(logger)
	logger.IncreaseLogLevel(LogLevelWarn.zapLevel())
	fxLogger.LogEvent(&fxevent.Started{})
	require.Empty(t, w.String())
	fxLogger.LogEvent(&fxevent.Started{Err: errors.New("boom")})
	require.Contains(t, w.String(), "\"msg\":\"START failed\"")
}
