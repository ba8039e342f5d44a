package tokenapi

import (
	"context"
	"net/http"

	"github.com/cmstar/go-logx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// ApiEngine 表示一个 HTTP 服务器，基于 ApiHandler 注册和管理接口。实现 http.Handler 。
type ApiEngine struct {
	echo *echo.Echo
}

var _ http.Handler = (*ApiEngine)(nil)

// NewEngine 创建一个 ApiEngine 实例，并完成初始化设置。
// 自动生成并绑定 echo 实例。
func NewEngine() *ApiEngine {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	return NewEngineFromEcho(e)
}

// NewEngineFromEcho 创建一个 ApiEngine 实例，并绑定给定的 echo 实例。
func NewEngineFromEcho(e *echo.Echo) *ApiEngine {
	return &ApiEngine{echo: e}
}

// Echo 返回绑定的 echo 实例。
func (engine *ApiEngine) Echo() *echo.Echo {
	return engine.echo
}

// Handle 指定一个 ApiHandler ，响应对应 URL 路径下的请求。
// 通过 CreateHandlerFunc(handler, logFinder) 方法创建用于响应请求的过程。
//
// path 为相对路径，以 / 开头。参考 https://echo.labstack.com/guide/routing/
func (engine *ApiEngine) Handle(path string, handler ApiHandler, logFinder logx.LogFinder) {
	handlerFunc := echo.WrapHandler(CreateHandlerFunc(handler, logFinder))

	// 同一个 handler 需要响应不同的请求方式，把需要的都注册一遍。
	for _, method := range handler.SupportedHttpMethods() {
		switch method {
		case http.MethodGet:
			engine.echo.GET(path, handlerFunc)
		case http.MethodPost:
			engine.echo.POST(path, handlerFunc)
		case http.MethodPut:
			engine.echo.PUT(path, handlerFunc)
		}
	}
}

// HandleMetrics 在指定的 URL 路径上输出 Prometheus 指标，仅响应 GET 请求。
func (engine *ApiEngine) HandleMetrics(path string, m *Metrics) {
	engine.echo.GET(path, echo.WrapHandler(m.Handler()))
}

// ServeHTTP 实现 http.Handler 。
func (engine *ApiEngine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	engine.echo.ServeHTTP(w, r)
}

// Start 在指定的地址开启 HTTP 服务，开始监听端口并响应请求。在完成各个接口注册后，最后调用此方法开启服务。
// 方法会阻塞直到服务停止。通过 Shutdown 停止时，返回 http.ErrServerClosed 。
//
// addr 地址格式为 IP:PORT ，监听来自于特定 IP ，对于特定端口的请求；若不指定 IP 地址，省略 IP 部分，格式为 :PORT 。
// 如“:12345”监听任何来源对于 12345 端口的请求，“127.0.0.1:12345”则仅监听本机。
func (engine *ApiEngine) Start(addr string) error {
	return engine.echo.Start(addr)
}

// Shutdown 停止 HTTP 服务，等待正在处理的请求完成，直到 ctx 结束。
func (engine *ApiEngine) Shutdown(ctx context.Context) error {
	return engine.echo.Shutdown(ctx)
}
