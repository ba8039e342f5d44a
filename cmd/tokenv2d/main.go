// tokenv2d 启动一个 HTTP 服务，提供令牌生成的接口。配置见 [Config] 。
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
	"github.com/cmstar/go-tokenv2/tokenapi"
	"github.com/cmstar/go-tokenv2/tokenapi/logsetup"
)

func main() {
	logger := logx.NewStdLogger(nil)

	cfg, err := LoadConfig()
	if err != nil {
		logger.Log(logx.LevelFatal, "load config", "Error", errx.Describe(err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Log(logx.LevelFatal, "server stopped", "Error", errx.Describe(err))
		os.Exit(1)
	}
}

// newEngine 创建服务使用的 ApiEngine 。 cfg.Log 为 false 时不记录请求日志， cfg.Metrics 为 false 时不输出指标。
func newEngine(cfg Config, logger logx.Logger) *tokenapi.ApiEngine {
	var logFinder logx.LogFinder
	if cfg.Log {
		logFinder = logx.NewSingleLoggerLogFinder(logger)
	}

	var apiLogger tokenapi.ApiLogger = logsetup.Default()
	var metrics *tokenapi.Metrics
	if cfg.Metrics {
		metrics = tokenapi.NewMetrics()
		apiLogger = metrics.Wrap(apiLogger)
	}

	engine := tokenapi.NewEngine()
	engine.Handle(cfg.Path, tokenapi.NewHandler("", apiLogger), logFinder)
	if metrics != nil {
		engine.HandleMetrics(cfg.MetricsPath, metrics)
	}
	return engine
}

// run 开启服务，直到 ctx 结束后停止服务。
func run(ctx context.Context, cfg Config, logger logx.Logger) error {
	engine := newEngine(cfg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- engine.Start(cfg.Addr)
	}()
	logger.Log(logx.LevelInfo, "server started", "Addr", cfg.Addr, "Path", cfg.Path, "Metrics", cfg.Metrics)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := engine.Shutdown(shutdownCtx); err != nil {
		return errx.Wrap("shutdown", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	logger.Log(logx.LevelInfo, "server stopped")
	return nil
}
