package tokenapi

import (
	"net"
	"strings"
)

// basicUserHostResolver 提供 ApiUserHostResolver 的标准实现。
type basicUserHostResolver struct {
}

// NewBasicUserHostResolver 返回一个预定义的 ApiUserHostResolver 的标准实现。
// 优先使用 X-Forwarded-For 头给出的第一个地址，其次是 http.Request.RemoteAddr 。
func NewBasicUserHostResolver() ApiUserHostResolver {
	return &basicUserHostResolver{}
}

// FillUserHost 实现 ApiUserHostResolver.FillUserHost() 。
func (r *basicUserHostResolver) FillUserHost(state *ApiState) {
	ip := state.RawRequest.Header.Get(HttpHeaderForwardedFor)
	if ip == "" {
		ip = state.RawRequest.RemoteAddr
	}

	// X-Forwarded-For 头给的 IP 可能有多段，用逗号分割，第一个是客户端原始 IP 。
	if i := strings.IndexByte(ip, ','); i >= 0 {
		ip = ip[:i]
	}
	ip = strings.TrimSpace(ip)

	// 可能是“IP:PORT”，IPv6 带端口的形如“[fe80::1]:8080”。
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	} else if len(ip) > 2 && ip[0] == '[' && ip[len(ip)-1] == ']' {
		ip = ip[1 : len(ip)-1]
	}

	// IPv6 的本地地址“::1”统一转成“127.0.0.1”，以便于统计分析。
	if parsed := net.ParseIP(ip); parsed != nil && parsed.Equal(net.IPv6loopback) {
		ip = "127.0.0.1"
	}

	state.UserHost = ip
}
