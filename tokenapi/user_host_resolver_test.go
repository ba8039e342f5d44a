package tokenapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicUserHostResolver(t *testing.T) {
	testOne := func(ip, want string) {
		t.Run(ip, func(t *testing.T) {
			state := &ApiState{
				RawRequest: &http.Request{
					RemoteAddr: ip,
					Header:     http.Header{},
				},
			}
			NewBasicUserHostResolver().FillUserHost(state)
			assert.Equal(t, want, state.UserHost)
		})
	}

	testOne("", "")
	testOne("1.2.3.4", "1.2.3.4")
	testOne("1.2.3.4:666", "1.2.3.4")
	testOne("::1", "127.0.0.1")
	testOne("[::1]", "127.0.0.1")
	testOne("[::1]:1234", "127.0.0.1")
	testOne("[1:2::3:4]:1234", "1:2::3:4")
	testOne("fe80::2", "fe80::2")
	testOne("[fe80::1]:8080", "fe80::1")
	testOne("[fe80::1]", "fe80::1")
	testOne("2001:db8::1", "2001:db8::1")
	testOne("[2001:db8::1]:443", "2001:db8::1")
	testOne("1::1", "1::1")
	testOne("127.0.0.2:80", "127.0.0.2")

	// Bad IPs.
	testOne(":", "")
	testOne("[", "[")
	testOne("]", "]")
	testOne("100", "100")

	t.Run("X-Forwarded-For", func(t *testing.T) {
		state := &ApiState{
			RawRequest: &http.Request{
				RemoteAddr: "10.0.0.1:5000",
				Header:     http.Header{},
			},
		}
		state.RawRequest.Header.Set(HttpHeaderForwardedFor, "5.6.7.8, 10.0.0.2")
		NewBasicUserHostResolver().FillUserHost(state)
		assert.Equal(t, "5.6.7.8", state.UserHost)
	})

	t.Run("X-Forwarded-For-IPv6", func(t *testing.T) {
		for header, want := range map[string]string{
			"2001:db8::1, 10.0.0.2": "2001:db8::1",
			"::1, 10.0.0.2":         "127.0.0.1",
			"[fe80::1]:8080":        "fe80::1",
		} {
			state := &ApiState{
				RawRequest: &http.Request{
					RemoteAddr: "10.0.0.1:5000",
					Header:     http.Header{},
				},
			}
			state.RawRequest.Header.Set(HttpHeaderForwardedFor, header)
			NewBasicUserHostResolver().FillUserHost(state)
			assert.Equal(t, want, state.UserHost, header)
		}
	})
}
