package tokenv2

import (
	"math"
	"strconv"
	"strings"
)

// FormatJsNumber 按 ECMAScript 的 Number::toString （十进制）规则格式化数字，
// 即 JavaScript 中 String(x) 的结果。
//
// 设最短可还原的十进制有效数字为 digits （长度为 k ），数值为 0.digits × 10^n ，则：
//   - k <= n <= 21 ：digits 后补 n-k 个 0 ，如 1e+21 以下的整数。
//   - 0 < n <= 21 ：小数点在第 n 位之后，如 1.5 。
//   - -6 < n <= 0 ：0. 后补 -n 个 0 再接 digits ，如 0.000001 。
//   - 其他：科学计数法，指数带符号，如 1e+21 、 1.5e-7 。
//
// 0 和 -0 均为 "0" ； NaN 为 "NaN" ；无穷为 "Infinity" 或 "-Infinity" 。
func FormatJsNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	if f < 0 {
		return "-" + FormatJsNumber(-f)
	}

	// 形如 "1.2345e+06" ，尾数部分是最短可还原的有效数字。
	e := strconv.FormatFloat(f, 'e', -1, 64)
	ePos := strings.IndexByte(e, 'e')
	mantissa, exp := e[:ePos], e[ePos+1:]

	digits := strings.Replace(mantissa, ".", "", 1)
	k := len(digits)
	x, _ := strconv.Atoi(exp)
	n := x + 1

	b := new(strings.Builder)
	switch {
	case k <= n && n <= 21:
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", n-k))

	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])

	case -6 < n && n <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -n))
		b.WriteString(digits)

	default:
		b.WriteByte(digits[0])
		if k > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 >= 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
		b.WriteString(strconv.Itoa(abs(n - 1)))
	}

	return b.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
