package logsetup

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
	"github.com/cmstar/go-tokenv2"
	"github.com/cmstar/go-tokenv2/tokenapi"
	"github.com/stretchr/testify/assert"
)

func TestRequestId(t *testing.T) {
	state := &tokenapi.ApiState{
		RequestId: "01ARZ3NDEKTSV4RRFFQ69G5FAV",
	}
	RequestId.Setup(state)

	assert.Equal(t, []any{"RequestId", "01ARZ3NDEKTSV4RRFFQ69G5FAV"}, state.LogMessage)
}

func TestIP(t *testing.T) {
	state := &tokenapi.ApiState{
		UserHost: "value",
	}
	IP.Setup(state)

	assert.Equal(t, logx.Level(0), state.LogLevel)
	assert.Equal(t, []any{"IP", "value"}, state.LogMessage)
}

func TestURL(t *testing.T) {
	state := &tokenapi.ApiState{
		RawRequest: httptest.NewRequest("GET", "/token?bearerToken=secret", nil),
	}
	URL.Setup(state)

	assert.Equal(t, logx.Level(0), state.LogLevel)
	assert.Equal(t, []any{"URL", "/token"}, state.LogMessage)
}

func TestInput(t *testing.T) {
	state := &tokenapi.ApiState{
		Input: tokenv2.DeriveInput{
			QueryParamsText: "a=1",
			BodyDataText:    " ",
			BearerToken:     "Bearer secret",
			ApiShareKey:     "secret-key",
		},
	}
	Input.Setup(state)

	want := []any{
		"Format", "",
		"Length", 0,
		"Query", true,
		"Body", false,
		"Token", true,
		"Key", true,
	}
	assert.Equal(t, want, state.LogMessage)
}

func TestError(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		state := &tokenapi.ApiState{}
		Error.Setup(state)

		assert.Equal(t, logx.Level(0), state.LogLevel)
		assert.Len(t, state.LogMessage, 0)
	})

	t.Run("TokenError", func(t *testing.T) {
		state := &tokenapi.ApiState{
			Error: tokenv2.CreateTokenError(tokenv2.ErrorKind_MissingField, nil, "Token is required"),
		}
		Error.Setup(state)

		assert.Equal(t, logx.LevelWarn, state.LogLevel)
		assert.Len(t, state.LogMessage, 4)
		assert.Equal(t, "ErrorType", state.LogMessage[0])
		assert.Equal(t, "TokenError", state.LogMessage[1])
		assert.Equal(t, "Error", state.LogMessage[2])
		assert.True(t, strings.Contains(state.LogMessage[3].(string), "Token is required"))
	})

	t.Run("BizError", func(t *testing.T) {
		state := &tokenapi.ApiState{
			Error: errx.NewBizError(100, "msg", nil),
		}
		Error.Setup(state)

		assert.Equal(t, logx.LevelWarn, state.LogLevel)
		assert.Equal(t, "BizError", state.LogMessage[1])
		assert.True(t, strings.Contains(state.LogMessage[3].(string), "msg"))
	})
}

func TestDefault(t *testing.T) {
	assert.Len(t, Default(), 5)
}
