package tokenv2

import (
	"strings"
	"unicode/utf8"
)

/*
当前文件按 WHATWG URL 标准实现 application/x-www-form-urlencoded 的解析和序列化，
结果与浏览器的 URLSearchParams 一致。
标准库 net/url 的实现与之有几处差异：非法的百分号转义会报错而不是原样保留；“~”不转义而“*”会被转义。
*/

// FormPair 是 application/x-www-form-urlencoded 中的一个参数。
type FormPair struct {
	Name  string
	Value string
}

// ParseFormUrlencoded 解析 application/x-www-form-urlencoded 格式的字符串，按出现顺序返回全部参数，
// 同名参数会全部保留。
//
// 给定的 query 可以以“?”开头，也可以不带；这和 URLSearchParams 的构造函数一致，只去掉一个“?”。
// 解析规则：
//   - 以“&”分割，空白的片段被忽略。
//   - 片段中第一个“=”之前是名称，之后是值；没有“=”时整个片段是名称，值为空字符串。
//   - “+”被视为空格；合法的百分号转义被解码，不合法的原样保留。
//   - 解码后的字节不是合法的 UTF-8 时，非法部分替换为 U+FFFD 。
func ParseFormUrlencoded(query string) []FormPair {
	if query == "" {
		return nil
	}

	left := 0
	if query[0] == '?' {
		left = 1
	}

	length := len(query)
	var res []FormPair

	for right := 0; left < length; left = right + 1 {
		right = strings.IndexByte(query[left:], '&')
		if right == -1 {
			right = length
		} else {
			// right 是切片 [left:] 里的相对位置，绝对位置得加上 left 。
			right += left
		}

		param := query[left:right]
		if param == "" {
			continue
		}

		name, value := param, ""
		if idx := strings.IndexByte(param, '='); idx >= 0 {
			name, value = param[:idx], param[idx+1:]
		}

		res = append(res, FormPair{
			Name:  decodeFormComponent(name),
			Value: decodeFormComponent(value),
		})
	}

	return res
}

// EncodeFormUrlencoded 将参数按给定顺序序列化为 application/x-www-form-urlencoded 格式，
// 参数间用“&”连接。没有参数时返回空字符串。
func EncodeFormUrlencoded(pairs []FormPair) string {
	b := new(strings.Builder)
	for i, p := range pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		writeFormComponent(b, p.Name)
		b.WriteByte('=')
		writeFormComponent(b, p.Value)
	}
	return b.String()
}

func decodeFormComponent(s string) string {
	// 多数参数不需要解码，直接返回以避免分配。
	if !strings.ContainsAny(s, "+%") && utf8.ValidString(s) {
		return s
	}

	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '+':
			buf = append(buf, ' ')

		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2

		default:
			buf = append(buf, c)
		}
	}

	return toValidUtf8(buf)
}

// 按 WHATWG 的 UTF-8 decode 规则，每个非法的最大子序列替换为一个 U+FFFD 。
func toValidUtf8(buf []byte) string {
	if utf8.Valid(buf) {
		return string(buf)
	}

	b := new(strings.Builder)
	b.Grow(len(buf))
	for len(buf) > 0 {
		r, size := utf8.DecodeRune(buf)
		if r == utf8.RuneError && size <= 1 {
			b.WriteRune(utf8.RuneError)
			buf = buf[invalidUtf8PrefixLen(buf):]
			continue
		}
		b.WriteRune(r)
		buf = buf[size:]
	}
	return b.String()
}

// invalidUtf8PrefixLen 返回以非法 UTF-8 开头的 buf 中，需要被一个 U+FFFD 替换掉的字节数，至少为 1 。
// 即一个合法的多字节序列的最长前缀（maximal subpart）。
func invalidUtf8PrefixLen(buf []byte) int {
	c := buf[0]

	var need int
	lo, hi := byte(0x80), byte(0xBF)
	switch {
	case c >= 0xC2 && c <= 0xDF:
		need = 1
	case c == 0xE0:
		need, lo = 2, 0xA0
	case c >= 0xE1 && c <= 0xEC, c == 0xEE, c == 0xEF:
		need = 2
	case c == 0xED:
		need, hi = 2, 0x9F
	case c == 0xF0:
		need, lo = 3, 0x90
	case c >= 0xF1 && c <= 0xF3:
		need = 3
	case c == 0xF4:
		need, hi = 3, 0x8F
	default:
		return 1
	}

	n := 1
	for ; n <= need && n < len(buf); n++ {
		if buf[n] < lo || buf[n] > hi {
			break
		}
		// 仅第二个字节有特殊范围。
		lo, hi = 0x80, 0xBF
	}
	return n
}

func writeFormComponent(b *strings.Builder, s string) {
	// Go 的字符串可能含有非法的 UTF-8 ，先将其规范化，与 USVString 一致。
	// 不成对的代理项各自替换为一个 U+FFFD 。
	if !utf8.ValidString(s) {
		s = toValidUtf8([]byte(replaceSurrogates(s)))
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			b.WriteByte('+')

		case isFormUnreserved(c):
			b.WriteByte(c)

		default:
			b.WriteByte('%')
			b.WriteByte(upperHex[c>>4])
			b.WriteByte(upperHex[c&0x0F])
		}
	}
}

const upperHex = "0123456789ABCDEF"

// application/x-www-form-urlencoded 的序列化中不需要转义的字符： ASCII 字母数字和“*-._”。
func isFormUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '*', c == '-', c == '.', c == '_':
		return true
	}
	return false
}

func isHex(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
