package tokenv2

import (
	"strings"
	"unicode"
)

// isJsSpace 判断字符是否属于 ECMAScript 的空白字符（WhiteSpace 与 LineTerminator）。
// 与 unicode.IsSpace 的差别在于： U+0085 不算空白，而 U+FEFF 算空白。
// String.prototype.trim 和正则中的 \s 都使用这组字符。
func isJsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r)
}

// trimJsSpace 去掉首尾的空白字符，等同 String.prototype.trim 。
func trimJsSpace(s string) string {
	return strings.TrimFunc(s, isJsSpace)
}

// IsBlank 判断字符串在去掉首尾空白后是否为空，空白的定义同 String.prototype.trim 。
func IsBlank(s string) bool {
	return trimJsSpace(s) == ""
}
