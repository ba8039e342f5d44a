package tokenapi

import (
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/cmstar/go-conv"
	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-tokenv2"
	"github.com/tidwall/gjson"
)

const (
	// URL 上的元参数名称，用于指定请求格式。用于兼容不方便指定 Content-Type 的情况。
	meta_Param_Format = "~format"

	// 请求格式。
	requestFormat_Get  = "get"
	requestFormat_Post = "post"
	requestFormat_Json = "json"

	// 读取 body 时允许的最大的字节数。
	maxRequestBodySize = 10 * 1024 * 1024
)

// 用作在 ApiState 上存储自定义数据的 key 。
type customDataKey int

const (
	// 自定义字段。记录当前请求使用的格式（对应 requestFormat_* 常量）。
	customData_RequestFormat customDataKey = iota

	// 自定义字段。记录请求 body 的长度。
	customData_BodyLength
)

// Conv 是用于将请求参数转换为 [tokenv2.DeriveInput] 的 [conv.Conv] 实例，字段名称大小写不敏感。
var Conv = conv.Conv{
	Conf: conv.Config{
		FieldMatcherCreator: &conv.SimpleMatcherCreator{
			Conf: conv.SimpleMatcherConfig{
				CaseInsensitive: true,
			},
		},
	},
}

var deriveInputType = reflect.TypeOf(tokenv2.DeriveInput{})

// RequestFormat 返回 [ApiDecoder] 识别到的请求格式，为 get 、 post 、 json 之一。
// 若请求未被解析，返回空字符串。
func RequestFormat(state *ApiState) string {
	v, ok := state.GetCustomData(customData_RequestFormat)
	if !ok {
		return ""
	}
	return v.(string)
}

// RequestBodyLength 返回 [ApiDecoder] 读取到的请求 body 的长度。 GET 请求返回 0 。
func RequestBodyLength(state *ApiState) int {
	v, ok := state.GetCustomData(customData_BodyLength)
	if !ok {
		return 0
	}
	return v.(int)
}

// basicDecoder 提供 ApiDecoder 的标准实现。
type basicDecoder struct{}

// NewBasicDecoder 返回一个预定义的 ApiDecoder 的标准实现。
func NewBasicDecoder() ApiDecoder {
	return basicDecoder{}
}

// Decode 实现 ApiDecoder.Decode() 。
func (d basicDecoder) Decode(state *ApiState) {
	params, err := d.paramMap(state)
	if err != nil {
		state.Error = CreateBadRequestError(state, err, "bad request")
		return
	}

	v, err := Conv.ConvertType(params, deriveInputType)
	if err != nil {
		state.Error = CreateBadRequestError(state, err, "bad request")
		return
	}

	state.Input = v.(tokenv2.DeriveInput)
}

// paramMap 将各类参数存入 map[string]any ，值都是 string 。
//  1. 参数是大小写不敏感的， key 统一为小写。
//  2. URL 上的参数（query）总是会被读取，同名参数仅保留最后一个。
//  3. body 上的参数与 query 合并，同名参数使用 body 的值。
func (d basicDecoder) paramMap(state *ApiState) (map[string]any, error) {
	format, err := d.resolveFormat(state)
	if err != nil {
		return nil, err
	}
	state.SetCustomData(customData_RequestFormat, format)

	m := make(map[string]any)
	d.putPairs(m, state.Query)

	switch format {
	case requestFormat_Get:
		return m, nil

	case requestFormat_Post:
		body, err := d.readBody(state)
		if err != nil {
			return nil, err
		}
		d.putPairs(m, tokenv2.ParseFormUrlencoded(body))
		return m, nil

	case requestFormat_Json:
		body, err := d.readBody(state)
		if err != nil {
			return nil, err
		}
		if err := d.putJson(m, body); err != nil {
			return nil, err
		}
		return m, nil

	default:
		PanicApiError(state, nil, "unsupported format: %v", format)
	}

	return nil, nil // never run
}

// resolveFormat 确定请求格式，优先使用 URL 上的 ~format 参数，其次是 HTTP 方法和 Content-Type 头。
func (d basicDecoder) resolveFormat(state *ApiState) (string, error) {
	if format, ok := state.QueryValue(meta_Param_Format); ok {
		format = strings.ToLower(format)
		switch format {
		case requestFormat_Get, requestFormat_Post, requestFormat_Json:
			return format, nil
		}
		return "", errors.New("unknown format " + format)
	}

	req := state.RawRequest
	if req.Method == "GET" {
		return requestFormat_Get, nil
	}

	// Content-Type 可能带有参数，如 application/json; charset=utf-8 。
	contentType := req.Header.Get(HttpHeaderContentType)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	contentType = strings.ToLower(strings.TrimSpace(contentType))

	switch contentType {
	case ContentTypeJson:
		return requestFormat_Json, nil
	case ContentTypeForm, ContentTypeNone:
		return requestFormat_Post, nil
	}
	return "", errors.New("unsupported Content-Type " + contentType)
}

func (d basicDecoder) readBody(state *ApiState) (string, error) {
	if state.RawRequest.Body == nil {
		state.SetCustomData(customData_BodyLength, 0)
		return "", nil
	}

	// 多读一个字节，用于判断是否超出长度。
	reader := io.LimitReader(state.RawRequest.Body, maxRequestBodySize+1)
	buf := new(strings.Builder)
	if _, err := io.Copy(buf, reader); err != nil {
		return "", errx.Wrap("tokenapi: read body", err)
	}

	if buf.Len() > maxRequestBodySize {
		return "", errors.New("request body too large")
	}

	state.SetCustomData(customData_BodyLength, buf.Len())
	return buf.String(), nil
}

func (d basicDecoder) putPairs(m map[string]any, pairs []tokenv2.FormPair) {
	for _, p := range pairs {
		m[strings.ToLower(p.Name)] = p.Value
	}
}

// putJson 将 JSON object 的成员放入 m 。
// 字符串值直接使用；值为 null 的成员被忽略；其余的值使用其 JSON 原文，
// 这使得 queryParamsText 和 bodyDataText 可以直接给出 JSON object 。
func (d basicDecoder) putJson(m map[string]any, body string) error {
	if !gjson.Valid(body) {
		return errors.New("tokenapi: invalid JSON body")
	}

	root := gjson.Parse(body)
	if !root.IsObject() {
		return errors.New("tokenapi: JSON body must be an object")
	}

	root.ForEach(func(key, value gjson.Result) bool {
		name := strings.ToLower(key.String())
		switch value.Type {
		case gjson.Null:
			// 忽略。
		case gjson.String:
			m[name] = value.Str
		default:
			m[name] = value.Raw
		}
		return true
	})
	return nil
}
