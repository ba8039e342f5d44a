package tokenapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
)

/*
当前文件包含处理流程中的接口定义和执行流程。
*/

// ApiHandler 定义了处理过程中的抽象环节。
// CreateHandlerFunc() 返回一个函数，基于 ApiHandler 实现完整的处理过程。
type ApiHandler interface {
	ApiUserHostResolver
	ApiDecoder
	ApiCaller
	ApiResponseBuilder
	ApiResponseWriter
	ApiLogger

	// Name 获取当前 ApiHandler 的标识符，也用作日志名称。
	Name() string

	// SupportedHttpMethods 返回当前 ApiHandler 支持的 HTTP 方法。如 GET 、 POST 。
	SupportedHttpMethods() []string
}

// ApiHandlerWrapper 用于组装各个接口，以实现 ApiHandler 。
type ApiHandlerWrapper struct {
	ApiUserHostResolver
	ApiDecoder
	ApiCaller
	ApiResponseBuilder
	ApiResponseWriter
	ApiLogger

	// HandlerName 是 ApiHandler.Name() 的返回值。
	HandlerName string

	// HttpMethods 是 ApiHandler.SupportedHttpMethods() 的返回值。
	HttpMethods []string
}

var _ ApiHandler = (*ApiHandlerWrapper)(nil)

// SupportedHttpMethods 实现 ApiHandler.SupportedHttpMethods() 。
func (w *ApiHandlerWrapper) SupportedHttpMethods() []string {
	return w.HttpMethods
}

// Name 实现 ApiHandler.Name() 。
func (w *ApiHandlerWrapper) Name() string {
	return w.HandlerName
}

// ApiUserHostResolver 用于获取发起 HTTP 请求的客户端 IP 地址。
type ApiUserHostResolver interface {
	// FillUserHost 获取发起 HTTP 请求的客户端 IP 地址，并填入 ApiState.UserHost 。
	FillUserHost(state *ApiState)
}

// ApiDecoder 用于从请求中解析令牌生成的输入。
type ApiDecoder interface {
	// Decode 从 HTTP 请求中解析得到输入，并填入 ApiState.Input 。
	// 若请求不合规，填写 ApiState.Error ，将跳过 ApiCaller 的执行。
	Decode(state *ApiState)
}

// ApiCaller 用于生成令牌。
type ApiCaller interface {
	// Call 使用 ApiState.Input 生成令牌，将结果填入 ApiState.Data 和 ApiState.Error 。
	// 应仅在 ApiState.Error 为 nil 时调用此方法。
	Call(state *ApiState)
}

// ApiResponseBuilder 处理 ApiDecoder 和 ApiCaller 执行过程中产生的错误。
type ApiResponseBuilder interface {
	// BuildResponse 根据 ApiState.Data 和 ApiState.Error ，填写 ApiState.Response 。
	BuildResponse(state *ApiState)
}

// ApiResponseWriter 获得实际需要返回的数据，填入 Response* （以 Response 开头）字段。
type ApiResponseWriter interface {
	// WriteResponse 处理 ApiState.Response ，此方法执行之后， ApiState 中以 Response 开头字段，
	// 如 ResponseBody 、 ResponseContentType ，均需要完成赋值。
	WriteResponse(state *ApiState)
}

// ApiLogger 在 ApiResponseWriter.WriteResponse 被调用后，生成日志。
type ApiLogger interface {
	// Log 根据 ApiState 的内容生成日志，日志由 ApiState.Logger 接收。
	// 若 ApiState.Logger 为 nil ，则不生成日志。
	Log(state *ApiState)
}

// CreateHandlerFunc 返回一个封装了给定的 ApiHandler 的 http.HandlerFunc 。
//
// logFinder 用于获取 Logger ，该 Logger 会赋值给 ApiState.Logger 。可为 nil 表示不记录日志。
// 日志名称为 ApiHandler.Name() 。
func CreateHandlerFunc(handler ApiHandler, logFinder logx.LogFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := NewState(w, r, handler)
		if logFinder != nil {
			state.Logger = logFinder.Find(handler.Name())
		}

		handler.FillUserHost(state)

		// 把比较可能 panic 的步骤抽出来，添加一个 defer 捕获错误并填到 state.Error 上，使 panic 后仍
		// 可以预定义的报文返回结果。
		handleRequest(state, handler)

		if !handleResponse(state, handler) {
			// 再输出一次， state.Error 被保留下来，能够体现哪里出错。
			// 如果再 panic 就拯救不了了，交给外层框架处理。
			state.Data = ""
			handler.BuildResponse(state)
			handler.WriteResponse(state)
		}

		w.Header().Set(HttpHeaderContentType, state.ResponseContentType)
		w.Header().Set(HttpHeaderRequestId, state.RequestId)
		if state.ResponseBody != nil {
			_, err := io.Copy(w, state.ResponseBody)
			if err != nil {
				PanicApiError(state, err, "write response body")
			}
		}

		handler.Log(state)
	}
}

func handleRequest(state *ApiState, handler ApiHandler) {
	defer handlerPanic(state)

	handler.Decode(state)
	if state.Error == nil {
		handler.Call(state)
	}
}

func handleResponse(state *ApiState, handler ApiHandler) (ok bool) {
	defer handlerPanic(state)
	handler.BuildResponse(state)
	handler.WriteResponse(state)
	return true
}

func handlerPanic(state *ApiState) {
	r := recover()
	if r == nil {
		return
	}

	// 尽量保留方法调用栈信息，如果没有，就放一个上去。
	const prefix = "tokenapi"
	switch v := r.(type) {
	case errx.StackfulError: // 含 BizError 。
		state.Error = v
	case error:
		state.Error = errx.Wrap(prefix, v)
	case string:
		state.Error = errx.Wrap(prefix, errors.New(v))
	default:
		// panic 的不是 error 和字符串也应该是个能转成字符串的东西。
		state.Error = errx.Wrap(prefix, fmt.Errorf("%v", v))
	}
}
