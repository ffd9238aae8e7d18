package main

import (
	"context"
	"os"

	"github.com/samber/lo"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xlinked/xlog"
)

const envLogEncoder = "XLINKED_LOG_ENC"

type banner struct{}

func (banner) JSON() string {
	return `{"app":"xlinked","desc":"singly and doubly linked lists"}`
}

func (banner) PlainText() string {
	return "xlinked - singly and doubly linked lists"
}

func newLogger() xlog.XLogger {
	logger := xlog.NewXLogger(
		xlog.WithXLoggerStdOutWriter(),
		xlog.WithXLoggerEncoder(xlog.GetEncoderByName(os.Getenv(envLogEncoder))),
	)
	logger.Banner(banner{})
	return logger
}

func register(lc fx.Lifecycle, logger xlog.XLogger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return runDemo(logger, os.Stdout)
		},
		OnStop: func(ctx context.Context) error {
			// fsync is not supported by every stdout, only the buffer flush matters.
			_ = logger.Sync()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(newLogger),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(register),
	)
	lo.Must0(app.Err())

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	lo.Must0(app.Start(startCtx))

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	lo.Must0(app.Stop(stopCtx))
}
