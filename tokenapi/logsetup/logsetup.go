// Package logsetup 提供一组预定义的 [tokenapi.LogSetup] ，以便快速实现 [tokenapi.ApiLogger] 。
package logsetup

import (
	"github.com/cmstar/go-tokenv2"
	"github.com/cmstar/go-tokenv2/tokenapi"
)

// Default 返回包含 RequestId 、 IP 、 URL 、 Input 、 Error 的 [tokenapi.LogSetupPipeline] 。
func Default() tokenapi.LogSetupPipeline {
	return tokenapi.NewLogSetupPipeline(RequestId, IP, URL, Input, Error)
}

// RequestId 输出请求的唯一标识，与回执的 X-Request-Id 头一致。
//
// 输出字段为： RequestId 。
//
// 这是一个单例。
var RequestId = requestId{}

type requestId struct{}

var _ tokenapi.LogSetup = (*requestId)(nil)

func (requestId) Setup(state *tokenapi.ApiState) {
	state.LogMessage = append(state.LogMessage, "RequestId", state.RequestId)
}

// IP 输出发起 HTTP 请求的客户端 IP 地址。
//
// 输出字段为： IP 。
//
// 这是一个单例。
var IP = ip{}

type ip struct{}

var _ tokenapi.LogSetup = (*ip)(nil)

func (ip) Setup(state *tokenapi.ApiState) {
	state.LogMessage = append(state.LogMessage, "IP", state.UserHost)
}

// URL 输出请求的路径，不含 query-string ，因为其中可能带有凭据。
//
// 输出字段为： URL 。
//
// 这是一个单例。
var URL = url{}

type url struct{}

var _ tokenapi.LogSetup = (*url)(nil)

func (url) Setup(state *tokenapi.ApiState) {
	state.LogMessage = append(state.LogMessage, "URL", state.RawRequest.URL.Path)
}

// Input 输出请求的概要信息，不包含凭据和密钥。
//
// 输出字段为：
//   - Format 请求格式， get 、 post 、 json 之一，请求格式无法识别时为空。
//   - Length 请求 body 的长度。
//   - Query/Body 是否给出了 query 参数和 body ，为 true 或 false 。
//   - Token/Key 是否给出了 bearer token 和 API share key ，为 true 或 false 。
//
// 这是一个单例。
var Input = input{}

type input struct{}

var _ tokenapi.LogSetup = (*input)(nil)

func (input) Setup(state *tokenapi.ApiState) {
	in := state.Input
	state.LogMessage = append(state.LogMessage,
		"Format", tokenapi.RequestFormat(state),
		"Length", tokenapi.RequestBodyLength(state),
		"Query", !tokenv2.IsBlank(in.QueryParamsText),
		"Body", !tokenv2.IsBlank(in.BodyDataText),
		"Token", !tokenv2.IsBlank(in.BearerToken),
		"Key", !tokenv2.IsBlank(in.ApiShareKey),
	)
}

// Error 根据当前的错误信息，判断错误的级别，并输出错误的描述信息。
//
// 输出字段为： ErrorType/Error 。
//
// 这是一个单例。
var Error = err{}

type err struct{}

var _ tokenapi.LogSetup = (*err)(nil)

func (err) Setup(state *tokenapi.ApiState) {
	if state.Error == nil {
		return
	}

	logLevel, errTypeName, errDescription := tokenapi.DescribeError(state.Error)

	state.LogLevel = logLevel
	state.LogMessage = append(state.LogMessage,
		"ErrorType", errTypeName,
		"Error", errDescription,
	)
}
