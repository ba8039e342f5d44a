package tokenapi

import "net/http"

// DefaultHandlerName 是 [NewHandler] 在未指定名称时使用的名称。
const DefaultHandlerName = "tokenv2"

// NewHandler 创建一个 ApiHandlerWrapper ，使用各环节的标准实现，支持 GET 和 POST 。
//   - name 为 ApiHandler.Name() ，也是日志名称。为空时使用 DefaultHandlerName 。
//   - logger 为 nil 时不记录日志。 logsetup 包提供了一组预定义的 [LogSetup] 。
func NewHandler(name string, logger ApiLogger) *ApiHandlerWrapper {
	if name == "" {
		name = DefaultHandlerName
	}

	if logger == nil {
		logger = NewLogSetupPipeline()
	}

	return &ApiHandlerWrapper{
		ApiUserHostResolver: NewBasicUserHostResolver(),
		ApiDecoder:          NewBasicDecoder(),
		ApiCaller:           NewBasicCaller(),
		ApiResponseBuilder:  NewBasicResponseBuilder(),
		ApiResponseWriter:   NewJsonResponseWriter(),
		ApiLogger:           logger,
		HandlerName:         name,
		HttpMethods:         []string{http.MethodGet, http.MethodPost},
	}
}
