package xlog

import (
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fxevent.Logger = (*FxXLogger)(nil)

type FxXLogger struct {
	logger XLogger
}

func (l *FxXLogger) LogEvent(event fxevent.Event) {
	if l == nil || l.logger == nil {
		return
	}

	switch e := event.(type) {
	case *fxevent.OnStartExecuting:
		l.logger.Debug("HOOK OnStart",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStartExecuted:
		l.hookExecuted("OnStart", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.OnStopExecuting:
		l.logger.Debug("HOOK OnStop",
			zap.String("function", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *fxevent.OnStopExecuted:
		l.hookExecuted("OnStop", e.FunctionName, e.CallerName, e.Runtime.String(), e.Err)
	case *fxevent.Supplied:
		if e.Err != nil {
			l.logger.Error(e.Err, "SUPPLY failed",
				zap.String("type", e.TypeName),
				zap.Strings("stacktrace", e.StackTrace),
			)
			return
		}
		l.logger.Debug("SUPPLY", zap.String("type", e.TypeName), zap.String("module", e.ModuleName))
	case *fxevent.Provided:
		for _, rtype := range e.OutputTypeNames {
			l.logger.Debug("PROVIDE",
				zap.Bool("private", e.Private),
				zap.String("rtype", rtype),
				zap.String("constructor", e.ConstructorName),
				zap.String("module", e.ModuleName),
			)
		}
		if e.Err != nil {
			l.logger.Error(e.Err, "PROVIDE failed", zap.Strings("stacktrace", e.StackTrace))
		}
	case *fxevent.Invoking:
		l.logger.Debug("INVOKING",
			zap.String("function", e.FunctionName),
			zap.String("module", e.ModuleName),
		)
	case *fxevent.Invoked:
		if e.Err != nil {
			l.logger.Error(e.Err, "INVOKE failed",
				zap.String("function", e.FunctionName),
				zap.String("trace", e.Trace),
			)
		}
	case *fxevent.Stopping:
		l.logger.Info("STOPPING", zap.String("signal", e.Signal.String()))
	case *fxevent.Stopped:
		if e.Err != nil {
			l.logger.Error(e.Err, "STOP failed")
		}
	case *fxevent.RollingBack:
		l.logger.Warn("START failed, rolling back", zap.Error(e.StartErr))
	case *fxevent.RolledBack:
		if e.Err != nil {
			l.logger.Error(e.Err, "ROLLBACK failed")
		}
	case *fxevent.Started:
		if e.Err != nil {
			l.logger.Error(e.Err, "START failed")
			return
		}
		l.logger.Debug("RUNNING")
	case *fxevent.LoggerInitialized:
		if e.Err != nil {
			l.logger.Error(e.Err, "LOGGER initialization failed")
			return
		}
		l.logger.Debug("LOGGER initialized", zap.String("constructor", e.ConstructorName))
	}
}

func (l *FxXLogger) hookExecuted(hook, function, caller, runtime string, err error) {
	if err != nil {
		l.logger.Error(err, "HOOK "+hook+" failed",
			zap.String("function", function),
			zap.String("caller", caller),
			zap.String("in", runtime),
		)
		return
	}
	l.logger.Debug("HOOK "+hook+" done",
		zap.String("function", function),
		zap.String("caller", caller),
		zap.String("in", runtime),
	)
}

// NewFxXLogger logs the fx lifecycle events as the "Fx" component
// through the cores of logger.
func NewFxXLogger(logger XLogger) *FxXLogger {
	l := &xLogger{}
	l.logger.Store(logger.
		zap().
		Named("Fx").
		WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
			if core == nil {
				panic("[XLogger] core is nil")
			}
			var (
				cc  xLogCore
				err error
			)
			switch c := core.(type) {
			case xLogMultiCore:
				cc, err = WrapCores(c, componentCoreEncoderCfg)
			case xLogCore:
				cc, err = WrapCore(c, componentCoreEncoderCfg)
			default:
				panic("[XLogger] core is not XLogCore")
			}
			if err != nil {
				panic(err)
			}
			return cc
		})),
	)
	return &FxXLogger{logger: l}
}
