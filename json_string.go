package tokenv2

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

/*
JSON 字符串可以用 \uD800 这样的转义表示不成对的 UTF-16 代理项，它无法用合法的 UTF-8 表示。
为了在序列化时按 JSON.stringify 的方式原样输出（\ud800），解析时将其保存为 WTF-8 编码的 3 个字节
（ED A0..BF 80..BF）。这样的字节序列在合法的 UTF-8 中不会出现，解析前输入已被规范为合法的 UTF-8 。
*/

// jsonStr 返回 JSON 字符串解码后的值，不成对的代理项以 WTF-8 保存。
func jsonStr(r gjson.Result) string {
	raw := r.Raw
	if len(raw) < 2 || raw[0] != '"' || !strings.Contains(raw, `\u`) {
		return r.Str
	}
	return unquoteJsonString(raw[1 : len(raw)-1])
}

// unquoteJsonString 解码不含引号的 JSON 字符串内容，内容须已通过 gjson.Valid 校验。
func unquoteJsonString(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b = append(b, c)
			i++
			continue
		}

		switch s[i+1] {
		case 'b':
			b = append(b, '\b')
		case 'f':
			b = append(b, '\f')
		case 'n':
			b = append(b, '\n')
		case 'r':
			b = append(b, '\r')
		case 't':
			b = append(b, '\t')
		case 'u':
			r, ok := hex4(s, i+2)
			if !ok {
				b = append(b, s[i:i+2]...)
				break
			}
			i += 6

			if !utf16.IsSurrogate(r) {
				b = utf8.AppendRune(b, r)
				continue
			}

			// 高位代理项后紧跟低位代理项时合为一个字符。
			if r < 0xDC00 && i+1 < len(s) && s[i] == '\\' && s[i+1] == 'u' {
				if r2, ok := hex4(s, i+2); ok && r2 >= 0xDC00 && r2 <= 0xDFFF {
					b = utf8.AppendRune(b, utf16.DecodeRune(r, r2))
					i += 6
					continue
				}
			}

			b = appendSurrogate(b, r)
			continue
		default:
			// \" \\ \/
			b = append(b, s[i+1])
		}
		i += 2
	}
	return string(b)
}

func hex4(s string, start int) (rune, bool) {
	if start+4 > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+4], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}

func appendSurrogate(b []byte, r rune) []byte {
	return append(b, 0xE0|byte(r>>12), 0x80|byte(r>>6)&0x3F, 0x80|byte(r)&0x3F)
}

// surrogateAt 判断 s[i:] 是否以 WTF-8 编码的代理项开头，是则返回该代理项。
func surrogateAt(s string, i int) (rune, bool) {
	if i+2 >= len(s) || s[i] != 0xED || s[i+1] < 0xA0 || s[i+1] > 0xBF || s[i+2] < 0x80 || s[i+2] > 0xBF {
		return 0, false
	}
	return 0xD000 | rune(s[i+1]&0x3F)<<6 | rune(s[i+2]&0x3F), true
}

// replaceSurrogates 将 WTF-8 编码的代理项替换为 U+FFFD ，与 ECMAScript 将字符串编码为 UTF-8 时的行为一致。
func replaceSurrogates(s string) string {
	if !strings.Contains(s, "\xED") {
		return s
	}

	b := new(strings.Builder)
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if _, ok := surrogateAt(s, i); ok {
			b.WriteRune(utf8.RuneError)
			i += 3
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
