package tokenapi

import (
	"io"
	"net/http/httptest"
	"strings"
)

// newStateForTest 基于 httptest 包创建用于测试的 ApiState 。 body 为空时请求没有 body 。
func newStateForTest(method, url, contentType, body string) (*ApiState, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, url, reader)
	if contentType != "" {
		req.Header.Set(HttpHeaderContentType, contentType)
	}

	rec := httptest.NewRecorder()
	return NewState(rec, req, nil), rec
}

// recordingLogger 返回一个记录全部 ApiState.LogMessage 的 ApiLogger ，用于不依赖 logsetup 包的测试。
func recordingLogger() LogSetupPipeline {
	return NewLogSetupPipeline(ToLogSetup(func(state *ApiState) {
		state.LogMessage = append(state.LogMessage, "Code", state.Response.Code)
	}))
}
