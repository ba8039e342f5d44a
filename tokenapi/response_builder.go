package tokenapi

import (
	"errors"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-tokenv2"
)

// basicResponseBuilder 提供 ApiResponseBuilder 的标准实现。
type basicResponseBuilder struct {
}

// NewBasicResponseBuilder 返回一个预定义的 ApiResponseBuilder 的标准实现。
func NewBasicResponseBuilder() ApiResponseBuilder {
	return &basicResponseBuilder{}
}

// BuildResponse implements ApiResponseBuilder.BuildResponse
func (r *basicResponseBuilder) BuildResponse(state *ApiState) {
	if state.Error == nil {
		state.Response = SuccessResponse[any](state.Data)
		return
	}

	// ApiResponse 内容是返回给请求者的，不应该暴露内部细节。 TokenError 描述的是输入的问题，
	// BizError 是和具体业务高度关联的，可以给出具体信息；对于其他错误，只给一个笼统的信息。
	var tokenErr tokenv2.TokenError
	if errors.As(state.Error, &tokenErr) {
		state.Response = TokenErrorResponse(tokenErr)
		return
	}

	var bizErr errx.BizError
	if errors.As(state.Error, &bizErr) {
		state.Response = &ApiResponse[any]{
			Code:    bizErr.Code(),
			Message: bizErr.Message(),
		}
		return
	}

	var badRequestErr BadRequestError
	if errors.As(state.Error, &badRequestErr) {
		state.Response = BadRequestResponse()
		return
	}

	state.Response = InternalErrorResponse()
}
