package tokenv2

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

// ValueKind 表示 [Value] 的 JSON 类型。
type ValueKind int

const (
	ValueKind_Null ValueKind = iota
	ValueKind_Bool
	ValueKind_Number
	ValueKind_String
	ValueKind_Array
	ValueKind_Object
)

// Value 是一个 JSON 值，其具体类型由 Kind 决定，仅对应的字段有意义。
// Object 保留成员的原始顺序，以保证序列化结果稳定。
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number float64
	String string
	Array  []*Value
	Object *OrderedMap[*Value]
}

// ParseBodyData 解析 body 文本。
//   - 去掉首尾空白后为空，返回 nil ，表示 body 不存在，这不是错误。
//   - 否则必须是合法的 JSON ，可以是任意类型的值；不合法时返回 [ErrorKind_InvalidFormat] 。
func ParseBodyData(text string) (*Value, error) {
	trimmed := trimJsSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	v, ok := parseJson(trimmed)
	if !ok {
		return nil, CreateTokenError(ErrorKind_InvalidFormat, nil, messageBodyDataBadJson)
	}
	return v, nil
}

// parseJson 解析 JSON 文本。文本不是合法的 JSON 时返回 false 。
// 文本中非法的 UTF-8 先按 WHATWG 的规则替换为 U+FFFD 。
func parseJson(text string) (*Value, bool) {
	if !utf8.ValidString(text) {
		text = toValidUtf8([]byte(text))
	}

	if !gjson.Valid(text) {
		return nil, false
	}
	return fromResult(gjson.Parse(text)), true
}

func fromResult(r gjson.Result) *Value {
	switch r.Type {
	case gjson.Null:
		return &Value{Kind: ValueKind_Null}

	case gjson.True:
		return &Value{Kind: ValueKind_Bool, Bool: true}

	case gjson.False:
		return &Value{Kind: ValueKind_Bool, Bool: false}

	case gjson.Number:
		return &Value{Kind: ValueKind_Number, Number: parseNumber(r.Raw)}

	case gjson.String:
		return &Value{Kind: ValueKind_String, String: jsonStr(r)}
	}

	if r.IsArray() {
		v := &Value{Kind: ValueKind_Array, Array: make([]*Value, 0)}
		r.ForEach(func(_, elem gjson.Result) bool {
			v.Array = append(v.Array, fromResult(elem))
			return true
		})
		return v
	}

	// 同名的成员，后面的值覆盖前面的，位置保持第一次出现的位置，和 JSON.parse 一致。
	v := &Value{Kind: ValueKind_Object, Object: NewOrderedMap[*Value]()}
	r.ForEach(func(key, member gjson.Result) bool {
		v.Object.Set(jsonStr(key), fromResult(member))
		return true
	})
	return v
}

// parseNumber 按 IEEE-754 双精度解析 JSON 数字。超出范围时得到 ±Inf ，与 JSON.parse 一致。
func parseNumber(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil && !math.IsInf(f, 0) {
		// gjson 已校验格式，这里不会出现语法错误。
		return 0
	}
	return f
}

// CanonicalJSON 返回值的规范 JSON 文本，与 ECMAScript 的 JSON.stringify 输出完全一致：
// 没有多余空白，对象成员按原始顺序输出，数字按 ECMAScript 的 Number 格式输出，非有限数输出为 null 。
func (v *Value) CanonicalJSON() string {
	b := new(strings.Builder)
	writeJson(b, v)
	return b.String()
}

func writeJson(b *strings.Builder, v *Value) {
	if v == nil {
		b.WriteString("null")
		return
	}

	switch v.Kind {
	case ValueKind_Null:
		b.WriteString("null")

	case ValueKind_Bool:
		b.WriteString(strconv.FormatBool(v.Bool))

	case ValueKind_Number:
		if math.IsInf(v.Number, 0) || math.IsNaN(v.Number) {
			b.WriteString("null")
		} else {
			b.WriteString(FormatJsNumber(v.Number))
		}

	case ValueKind_String:
		writeJsonString(b, v.String)

	case ValueKind_Array:
		b.WriteByte('[')
		for i, elem := range v.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			writeJson(b, elem)
		}
		b.WriteByte(']')

	case ValueKind_Object:
		b.WriteByte('{')
		first := true
		if v.Object != nil {
			v.Object.Range(func(key string, member *Value) bool {
				if !first {
					b.WriteByte(',')
				}
				first = false
				writeJsonString(b, key)
				b.WriteByte(':')
				writeJson(b, member)
				return true
			})
		}
		b.WriteByte('}')
	}
}

// writeJsonString 按 JSON.stringify 的规则输出带引号的字符串。
// 与 encoding/json 不同，这里不转义 <>& 和 U+2028 、 U+2029 ；不成对的代理项输出为 \udxxx 。
func writeJsonString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for i := 0; i < len(s); {
		if sr, ok := surrogateAt(s, i); ok {
			writeUnicodeEscape(b, sr)
			i += 3
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				writeUnicodeEscape(b, r)
			} else {
				// 非法的 UTF-8 字节得到 utf8.RuneError ，即输出 U+FFFD 。
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}

// writeUnicodeEscape 输出 \uxxxx ， HEX 为小写。
func writeUnicodeEscape(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteByte(lowerHex[r>>12&0x0F])
	b.WriteByte(lowerHex[r>>8&0x0F])
	b.WriteByte(lowerHex[r>>4&0x0F])
	b.WriteByte(lowerHex[r&0x0F])
}

const lowerHex = "0123456789abcdef"

// JsString 返回值在 ECMAScript 中调用 String(value) 的结果。
//   - null 为 "null" 。
//   - 数字按 ECMAScript 的 Number 格式输出，如 1e+21 、 Infinity 。
//   - 数组为各元素的 String() 值用“,”拼接， null 元素为空字符串。
//   - 对象为 "[object Object]" 。
func (v *Value) JsString() string {
	if v == nil {
		return "undefined"
	}

	switch v.Kind {
	case ValueKind_Null:
		return "null"

	case ValueKind_Bool:
		return strconv.FormatBool(v.Bool)

	case ValueKind_Number:
		return FormatJsNumber(v.Number)

	case ValueKind_String:
		return v.String

	case ValueKind_Array:
		b := new(strings.Builder)
		for i, elem := range v.Array {
			if i > 0 {
				b.WriteByte(',')
			}
			if elem != nil && elem.Kind != ValueKind_Null {
				b.WriteString(elem.JsString())
			}
		}
		return b.String()

	default:
		return "[object Object]"
	}
}
