package tokenapi

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cmstar/go-logx"
	"github.com/cmstar/go-tokenv2"
	"github.com/oklog/ulid/v2"
)

// ApiState 用于记录一个请求的处理流程中的数据。每个请求使用一个新的 ApiState 。
// 处理过程采用管道模式，每个步骤从 ApiState 获取所需数据，并将处理结果写回 ApiState 。
// 当处理过程结束后，以 Response 开头的字段应被填充。
type ApiState struct {
	// RawRequest 是原始的 HTTP 请求。对应 http.Handler 的参数。
	RawRequest *http.Request

	// RawResponse 用于写入 HTTP 回执。对应 http.Handler 的参数。
	RawResponse http.ResponseWriter

	// RequestId 是当前请求的唯一标识，使用 ULID ，会通过 X-Request-Id 头返回给请求者。
	RequestId string

	// StartTime 是开始处理请求的时间。
	StartTime time.Time

	// Query 是 URL 上的参数，按 application/x-www-form-urlencoded 的规则解析，保留原始顺序。
	Query []tokenv2.FormPair

	// Handler 当前的 ApiHandler 。
	Handler ApiHandler

	// Logger 用于接收当前请求的处理流程中需记录的日志。可以为 nil ，表示不记录日志。
	Logger logx.Logger

	// UserHost 记录发起 HTTP 请求的客户端 IP 地址。
	// ApiUserHostResolver 接口定义了初始化此字段的方法。
	UserHost string

	// Input 是从请求中解析得到的令牌生成的输入。
	// ApiDecoder 接口定义了初始化此字段的方法。
	Input tokenv2.DeriveInput

	// Data 记录生成的令牌。
	Data string

	// 输出日志时的日志级别。若为 0 ，则使用默认级别（由 [ApiLogger] 决定）。
	LogLevel logx.Level

	// LogMessage 用于记录各个处理流程中的日志信息，用于在 [ApiLogger] 中的输出。
	// key-value 对，与 [logx.Logger.Log] 的 keyValues 参数定义一致。
	LogMessage []any

	// Error 记录 ApiDecoder 或 ApiCaller 得到的错误，或处理过程中 panic 的错误。没有错误时为 nil 。
	// ApiResponseBuilder.BuildResponse() 能够将此错误转换为对应的 ApiResponse 。
	Error error

	// Response 记录返回的结果的抽象结构。
	Response *ApiResponse[any]

	// ResponseBody 提供实际返回的 HTTP body 的数据。若为 nil ，则 HTTP 没有 body 。
	ResponseBody io.Reader

	// ResponseContentType 对应为返回的 HTTP 的 Content-Type 头的值。
	ResponseContentType string

	// customData 用于记录没有预定义的数据，即不在其他字段中体现的数据，由各处理过程自行决定。
	customData []struct{ k, v any }
}

// NewState 创建一个新的 ApiState ，每个请求应使用一个新的 ApiState 。
func NewState(w http.ResponseWriter, r *http.Request, handler ApiHandler) *ApiState {
	s := &ApiState{
		Handler:     handler,
		RawRequest:  r,
		RawResponse: w,
		RequestId:   ulid.Make().String(),
		StartTime:   time.Now(),
	}
	s.Query = tokenv2.ParseFormUrlencoded(r.URL.RawQuery)
	return s
}

// QueryValue 返回 URL 上指定名称的参数的值，名称大小写不敏感。同名参数有多个时，返回最后一个。
func (s *ApiState) QueryValue(name string) (string, bool) {
	for i := len(s.Query) - 1; i >= 0; i-- {
		if strings.EqualFold(s.Query[i].Name, name) {
			return s.Query[i].Value, true
		}
	}
	return "", false
}

// MustHaveResponse checks the Response field, panics if the field is not initialized.
func (s *ApiState) MustHaveResponse() {
	if s.Response == nil {
		PanicApiError(s, nil, "ApiState.Response not initialized")
	}
}

// SetCustomData 在当前 [*ApiState] 中存储一个自定义的值。
// 原理和 [context.WithValue] 类似， key 必须是可比较的。
func (s *ApiState) SetCustomData(key, value any) {
	s.customData = append(s.customData, struct{ k, v any }{key, value})
}

// GetCustomData 读取 [SetCustomData] 方法存放的值。返回一个 bool 值表示 key 是否存在。
// 同一个 key 被存放多次时，返回最后存放的值。
func (s *ApiState) GetCustomData(key any) (any, bool) {
	data := s.customData
	for i := len(data) - 1; i >= 0; i-- {
		if data[i].k == key {
			return data[i].v, true
		}
	}
	return nil, false
}
