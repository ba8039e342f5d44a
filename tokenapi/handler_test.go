package tokenapi

import (
	"errors"
	"testing"

	"github.com/cmstar/go-logx"
	"github.com/cmstar/go-tokenv2/tokenv2test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHandlerFunc(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		url         string
		contentType string
		body        string
		wantBody    string
		wantLevel   string
		wantCode    string
	}{
		{
			"Success",
			"GET",
			"/token?bearerToken=Bearer+tok&apiShareKey=key",
			"",
			"",
			`{"Code":0,"Message":"","Data":"c867bccfdb05a1d904d3206962fb74bef4b9977a53db17fb8cf6dcef8fad0368"}`,
			"INFO",
			"0",
		},
		{
			"Scenario",
			"POST",
			"/token",
			"application/json",
			`{"queryParamsText":"a=1&b=2","bodyDataText":{"userId":123,"role":"admin"},"bearerToken":"Bearer mytoken","apiShareKey":"sharekey"}`,
			`{"Code":0,"Message":"","Data":"032d4fbffdfcfb533386c592afeba7992b24a44ff4b338685e73a7229c58add5"}`,
			"INFO",
			"0",
		},
		{
			"MissingField",
			"GET",
			"/token?apiShareKey=key",
			"",
			"",
			`{"Code":1002,"Message":"Token is required","Data":null}`,
			"INFO",
			"1002",
		},
		{
			"InvalidFormat",
			"POST",
			"/token",
			"application/x-www-form-urlencoded",
			"bearerToken=tok&apiShareKey=key&bodyDataText=%7Bbad",
			`{"Code":1001,"Message":"Body data must be valid JSON","Data":null}`,
			"INFO",
			"1001",
		},
		{
			"BadRequest",
			"POST",
			"/token",
			"application/json",
			"{bad",
			`{"Code":400,"Message":"bad request","Data":null}`,
			"INFO",
			"400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := tokenv2test.NewLogRecorder()
			handler := NewHandler("", recordingLogger())
			handlerFunc := CreateHandlerFunc(handler, logx.NewSingleLoggerLogFinder(logger))

			state, rec := newStateForTest(tt.method, tt.url, tt.contentType, tt.body)
			handlerFunc(rec, state.RawRequest)

			assert.Equal(t, 200, rec.Code)
			assert.Equal(t, ContentTypeJson, rec.Header().Get(HttpHeaderContentType))
			assert.Equal(t, tt.wantBody, rec.Body.String())

			logs := logger.Map()
			require.Len(t, logs, 1)
			assert.Equal(t, tt.wantLevel, logs[0]["level"])
			assert.Equal(t, tt.wantCode, logs[0]["Code"])
		})
	}
}

type panicCaller struct {
	v any
}

func (c panicCaller) Call(state *ApiState) {
	panic(c.v)
}

func TestCreateHandlerFunc_panic(t *testing.T) {
	for _, v := range []any{errors.New("boom"), "boom", 123} {
		handler := NewHandler("test", nil)
		handler.ApiCaller = panicCaller{v}

		var got *ApiState
		handler.ApiLogger = NewLogSetupPipeline(ToLogSetup(func(state *ApiState) {
			got = state
		}))

		logger := tokenv2test.NewLogRecorder()
		handlerFunc := CreateHandlerFunc(handler, logx.NewSingleLoggerLogFinder(logger))
		state, rec := newStateForTest("GET", "/token?bearerToken=tok&apiShareKey=key", "", "")
		handlerFunc(rec, state.RawRequest)

		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, `{"Code":500,"Message":"internal error","Data":null}`, rec.Body.String())

		require.NotNil(t, got)
		require.Error(t, got.Error)
		assert.Regexp(t, `^tokenapi: `, got.Error.Error())
	}
}

type badWriter struct {
	calls int
}

func (w *badWriter) WriteResponse(state *ApiState) {
	w.calls++
	if w.calls == 1 {
		PanicApiError(state, nil, "first write fails")
	}
	NewJsonResponseWriter().WriteResponse(state)
}

func TestCreateHandlerFunc_writeRetry(t *testing.T) {
	handler := NewHandler("test", nil)
	writer := new(badWriter)
	handler.ApiResponseWriter = writer

	handlerFunc := CreateHandlerFunc(handler, nil)
	state, rec := newStateForTest("GET", "/token?bearerToken=tok&apiShareKey=key", "", "")
	handlerFunc(rec, state.RawRequest)

	assert.Equal(t, 2, writer.calls)
	assert.Equal(t, `{"Code":500,"Message":"internal error","Data":null}`, rec.Body.String())
}

func TestNewHandler(t *testing.T) {
	h := NewHandler("", nil)
	assert.Equal(t, DefaultHandlerName, h.Name())
	assert.Equal(t, []string{"GET", "POST"}, h.SupportedHttpMethods())

	h = NewHandler("x", nil)
	assert.Equal(t, "x", h.Name())
}
