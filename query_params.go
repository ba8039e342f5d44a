package tokenv2

import (
	"strings"
)

// QueryParams 是解析后的 query 参数表，key 唯一，按出现顺序排列，值总是字符串。
type QueryParams struct {
	*OrderedMap[string]
}

// NewQueryParams 创建一个空的 [QueryParams] 。
func NewQueryParams() *QueryParams {
	return &QueryParams{NewOrderedMap[string]()}
}

// Encode 按 application/x-www-form-urlencoded 格式序列化参数表，参数按其顺序输出。
// 空的参数表返回空字符串。
func (q *QueryParams) Encode() string {
	pairs := make([]FormPair, 0, q.Len())
	q.Range(func(key, value string) bool {
		pairs = append(pairs, FormPair{key, value})
		return true
	})
	return EncodeFormUrlencoded(pairs)
}

// ParseQueryParams 解析 query 参数的文本。支持两种格式：
//   - JSON object ，如 {"a":"1","b":2} 。值为 null 的成员被忽略，其余值均转换为其 String() 形式。
//   - query-string ，如 a=1&b=2 ，可以带“?”前缀。同名参数仅保留最后一个值。
//
// 去掉首尾空白后为空，返回 nil ，表示参数不存在，这不是错误。
// 以“{”开头的按 JSON 处理；否则若包含“=”则按 query-string 处理；
// 其他情况，或 JSON 不合法、不是 object 时，返回 [ErrorKind_InvalidFormat] 。
func ParseQueryParams(text string) (*QueryParams, error) {
	trimmed := trimJsSpace(text)
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "{") {
		return parseQueryParamsJson(trimmed)
	}

	if strings.Contains(trimmed, "=") {
		qs := strings.TrimPrefix(trimmed, "?")
		return parseQueryParamsString(qs), nil
	}

	return nil, CreateTokenError(ErrorKind_InvalidFormat, nil, messageQueryParamsBadFormat)
}

func parseQueryParamsJson(text string) (*QueryParams, error) {
	v, ok := parseJson(text)
	if !ok {
		return nil, CreateTokenError(ErrorKind_InvalidFormat, nil, messageQueryParamsBadJson)
	}

	if v.Kind != ValueKind_Object {
		return nil, CreateTokenError(ErrorKind_InvalidFormat, nil, messageQueryParamsNotObject)
	}

	q := NewQueryParams()
	v.Object.Range(func(key string, member *Value) bool {
		if member.Kind != ValueKind_Null {
			q.Set(key, member.JsString())
		}
		return true
	})
	return q, nil
}

func parseQueryParamsString(qs string) *QueryParams {
	q := NewQueryParams()
	for _, p := range ParseFormUrlencoded(qs) {
		q.Set(p.Name, p.Value)
	}
	return q
}
