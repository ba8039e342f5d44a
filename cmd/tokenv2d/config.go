package main

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cmstar/go-errx"
	"github.com/joho/godotenv"
)

// Config 是服务的配置，从环境变量读取。
type Config struct {
	Addr            string        `env:"TOKENV2_ADDR" envDefault:":8080"`            // 监听地址，格式为 IP:PORT 或 :PORT 。
	Path            string        `env:"TOKENV2_PATH" envDefault:"/token"`           // 接口的 URL 路径。
	Log             bool          `env:"TOKENV2_LOG" envDefault:"true"`              // 是否记录请求日志。
	Metrics         bool          `env:"TOKENV2_METRICS" envDefault:"true"`          // 是否输出 Prometheus 指标。
	MetricsPath     string        `env:"TOKENV2_METRICS_PATH" envDefault:"/metrics"` // 输出指标的 URL 路径。
	ShutdownTimeout time.Duration `env:"TOKENV2_SHUTDOWN_TIMEOUT" envDefault:"10s"`  // 停止服务时等待请求完成的最长时间。
}

// defaultEnvFile 是未指定文件时读取的环境变量文件。
const defaultEnvFile = ".env"

// LoadConfig 读取配置。先从 envFiles 加载环境变量（已存在的环境变量不会被覆盖），再解析到 Config 。
// 未给定 envFiles 时，尝试读取当前目录下的 .env 文件，文件不存在时忽略。
func LoadConfig(envFiles ...string) (Config, error) {
	var cfg Config

	if len(envFiles) == 0 {
		err := godotenv.Load(defaultEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, errx.Wrap("load "+defaultEnvFile, err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return cfg, errx.Wrap("load env files", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, errx.Wrap("parse config", err)
	}

	if cfg.Path == "" || cfg.Path[0] != '/' {
		return cfg, errors.New("TOKENV2_PATH must start with '/'")
	}

	if cfg.Metrics && (cfg.MetricsPath == "" || cfg.MetricsPath[0] != '/' || cfg.MetricsPath == cfg.Path) {
		return cfg, errors.New("TOKENV2_METRICS_PATH must start with '/' and differ from TOKENV2_PATH")
	}

	return cfg, nil
}
