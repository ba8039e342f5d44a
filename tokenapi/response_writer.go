package tokenapi

import (
	"bytes"
	"encoding/json"
)

// jsonResponseWriter 实现 ApiResponseWriter ，将 ApiResponse 序列化为 JSON 。
type jsonResponseWriter struct {
}

// NewJsonResponseWriter 返回一个 ApiResponseWriter ，将 ApiState.Response 序列化为 JSON 。
// 该实现是无状态且线程安全的。
func NewJsonResponseWriter() ApiResponseWriter {
	return &jsonResponseWriter{}
}

// WriteResponse 实现 ApiResponseWriter.WriteResponse 。
func (*jsonResponseWriter) WriteResponse(state *ApiState) {
	state.MustHaveResponse()

	jsonBody, err := json.Marshal(state.Response)
	if err != nil {
		PanicApiError(state, err, "json encoding error")
	}

	state.ResponseContentType = ContentTypeJson
	state.ResponseBody = bytes.NewReader(jsonBody)
}
