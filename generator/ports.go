package generator

import (
	"errors"
	"fmt"
)

// PersistencePort 用于保存和恢复 [Form] 的输入。
// 读写都不会失败：读取不到时返回空字符串；写入空字符串表示删除。
type PersistencePort interface {
	Read(key string) string
	Write(key, value string)
}

// ClipboardPort 用于复制生成的令牌。
type ClipboardPort interface {
	WriteText(text string) error
}

// FallbackClipboard 返回一个 [ClipboardPort] ，先使用 primary 写入，失败时改用 fallback 。
// 两者都失败时，返回的错误包含两者的错误。
func FallbackClipboard(primary, fallback ClipboardPort) ClipboardPort {
	return fallbackClipboard{primary, fallback}
}

type fallbackClipboard struct {
	primary  ClipboardPort
	fallback ClipboardPort
}

func (c fallbackClipboard) WriteText(text string) error {
	err := c.primary.WriteText(text)
	if err == nil {
		return nil
	}

	if fallbackErr := c.fallback.WriteText(text); fallbackErr != nil {
		return errors.Join(err, fallbackErr)
	}
	return nil
}

// Field 表示 [Form] 上的一项输入。
type Field int

const (
	Field_QueryParams Field = iota // query 参数。
	Field_BodyData                 // body 。
	Field_Token                    // bearer token 。
	Field_ApiShareKey              // API share key 。
)

// keyPrefix 是各项输入在 PersistencePort 上的 key 的前缀。
const keyPrefix = "token-v2-generator."

// String 返回输入项的名称，如 queryParams 。
func (f Field) String() string {
	switch f {
	case Field_QueryParams:
		return "queryParams"
	case Field_BodyData:
		return "bodyData"
	case Field_Token:
		return "token"
	case Field_ApiShareKey:
		return "apiShareKey"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Key 返回输入项在 [PersistencePort] 上使用的 key ，如 token-v2-generator.queryParams 。
func (f Field) Key() string {
	return keyPrefix + f.String()
}

// Fields 返回全部输入项。
func Fields() []Field {
	return []Field{Field_QueryParams, Field_BodyData, Field_Token, Field_ApiShareKey}
}
