package tokenapi

import "github.com/cmstar/go-tokenv2"

// basicCaller 提供 ApiCaller 的标准实现。
type basicCaller struct{}

// NewBasicCaller 返回一个预定义的 ApiCaller 的标准实现，使用 [tokenv2.DeriveToken] 生成令牌。
func NewBasicCaller() ApiCaller {
	return basicCaller{}
}

// Call 实现 ApiCaller.Call() 。
func (basicCaller) Call(state *ApiState) {
	state.Data, state.Error = tokenv2.DeriveToken(state.Input)
}
