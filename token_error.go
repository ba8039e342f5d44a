package tokenv2

import (
	"errors"
	"fmt"

	"github.com/cmstar/go-errx"
)

/*
当前文件提供令牌生成过程中的错误类型。
这些错误都是对输入的校验失败，不是临时性的，重试不能解决。
*/

// ErrorKind 表示 [TokenError] 的错误种类。
type ErrorKind int

const (
	ErrorKind_None              ErrorKind = iota // 不是 TokenError ，仅作为 KindOf 的返回值。
	ErrorKind_InvalidFormat                      // query 参数或 body 的文本不符合可接受的格式。
	ErrorKind_MissingField                       // bearer token 或 shared key 为空。
	ErrorKind_MissingCredential                  // bearer token 去掉 scheme 前缀后没有可用的值。
)

// String 返回错误种类的名称。
func (k ErrorKind) String() string {
	switch k {
	case ErrorKind_None:
		return "None"
	case ErrorKind_InvalidFormat:
		return "InvalidFormat"
	case ErrorKind_MissingField:
		return "MissingField"
	case ErrorKind_MissingCredential:
		return "MissingCredential"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// TokenError 描述令牌生成过程中，因输入不合规而产生的错误。
// Message 是可以直接展示给使用者的描述信息， Error() 原样返回它。
type TokenError struct {
	errx.ErrorCause

	Kind    ErrorKind // Kind 记录错误种类。
	Message string    // Message 记录错误的描述信息。
}

var _ error = (*TokenError)(nil)

// Error 实现 error 接口。
func (e TokenError) Error() string {
	return e.Message
}

// CreateTokenError 创建一个 TokenError 。
// message 和 args 指定描述信息，使用 fmt.Sprintf() 格式化。 cause 是引起此错误的错误，可以为 nil ，
// 它不体现在 Error() 的返回值上。
func CreateTokenError(kind ErrorKind, cause error, message string, args ...any) TokenError {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}

	return TokenError{
		ErrorCause: errx.ErrorCause{Err: cause},
		Kind:       kind,
		Message:    message,
	}
}

// KindOf 返回错误链上第一个 [TokenError] 的种类。若没有，返回 [ErrorKind_None] 。
func KindOf(err error) ErrorKind {
	var e TokenError
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrorKind_None
}

// 各环节使用的错误描述。
const (
	messageQueryParamsNotObject = "Query params JSON must be an object"
	messageQueryParamsBadJson   = "Query params JSON is not valid JSON"
	messageQueryParamsBadFormat = "Query params must be JSON object or querystring"
	messageBodyDataBadJson      = "Body data must be valid JSON"
	messageBearerTokenRequired  = "Token is required"
	messageApiShareKeyRequired  = "API share key is required"
	messageInvalidBearerToken   = "Invalid bearer token"
)
