package tokenapi

import "github.com/cmstar/go-tokenv2"

const (
	// ContentTypeNone 未指定类型。
	ContentTypeNone = ""

	// ContentTypeJson 对应 Content-Type: application/json 的值。
	ContentTypeJson = "application/json"

	// ContentTypeForm 对应 Content-Type: application/x-www-form-urlencoded 的值。
	ContentTypeForm = "application/x-www-form-urlencoded"
)

const (
	// HttpHeaderContentType 对应 HTTP 头中的 Content-Type 字段。
	HttpHeaderContentType = "Content-Type"

	// HttpHeaderRequestId 对应 HTTP 头中的 X-Request-Id 字段。
	HttpHeaderRequestId = "X-Request-Id"

	// HttpHeaderForwardedFor 对应 HTTP 头中的 X-Forwarded-For 字段。
	HttpHeaderForwardedFor = "X-Forwarded-For"
)

// 预定义的状态码。1000以下基本抄 HTTP 状态码。
const (
	// 错误码。表示不合规的请求数据。
	ErrorCodeBadRequest = 400

	// 错误码。表示发生内部错误。
	ErrorCodeInternalError = 500

	// 错误码的基数。输入不合规时，错误码为此值加上 tokenv2.ErrorKind 。
	ErrorCodeTokenBase = 1000
)

// ApiResponse 用于表示返回的数据。
type ApiResponse[T any] struct {
	// 状态码， 0 表示一个成功的请求，其他值表示有错误。
	Code int

	// Message 在 Code 不为 0 时，记录用于描述错误的消息。
	Message string

	// Data 记录返回的数据本体。
	Data T
}

// SuccessResponse 返回一个表示成功的 ApiResponse 。
func SuccessResponse[T any](data T) *ApiResponse[T] {
	return &ApiResponse[T]{Data: data}
}

// BadRequestResponse 返回一个表示不合规的请求的 ApiResponse 。
func BadRequestResponse() *ApiResponse[any] {
	return &ApiResponse[any]{
		Code:    ErrorCodeBadRequest,
		Message: "bad request",
	}
}

// InternalErrorResponse 返回一个表示内部错误的 ApiResponse 。
func InternalErrorResponse() *ApiResponse[any] {
	return &ApiResponse[any]{
		Code:    ErrorCodeInternalError,
		Message: "internal error",
	}
}

// TokenErrorResponse 返回一个表示输入不合规的 ApiResponse ， Message 为错误的描述信息。
func TokenErrorResponse(e tokenv2.TokenError) *ApiResponse[any] {
	return &ApiResponse[any]{
		Code:    ErrorCodeTokenBase + int(e.Kind),
		Message: e.Message,
	}
}
