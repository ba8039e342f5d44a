package tokenv2

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
)

/* 当前文件提供令牌算法的实现。 */

// Sha256Hex 计算 SHA-256 ，返回小写的 HEX 格式，长度为 64 。
func Sha256Hex(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Derive 计算令牌。
//   - query 解析后的 query 参数，为 nil 表示不存在。
//   - body 解析后的 body ，为 nil 表示不存在。
//   - bearerRaw 原始的 Authorization 值，可以带“Bearer ”前缀。
//   - sharedKey 共享密钥，原样使用。
//
// bearerRaw 或 sharedKey 为空白时，返回 [ErrorKind_MissingField] ；
// 从 bearerRaw 取不出凭据时，返回 [ErrorKind_MissingCredential] 。
// 待签名串的构成见 [BuildDataToSign] 。
func Derive(query *QueryParams, body *Value, bearerRaw, sharedKey string) (string, error) {
	if IsBlank(bearerRaw) {
		return "", CreateTokenError(ErrorKind_MissingField, nil, messageBearerTokenRequired)
	}

	if IsBlank(sharedKey) {
		return "", CreateTokenError(ErrorKind_MissingField, nil, messageApiShareKeyRequired)
	}

	data, err := BuildDataToSign(query, body, bearerRaw, sharedKey)
	if err != nil {
		return "", err
	}

	return Sha256Hex(data), nil
}

// BuildDataToSign 构建用于计算令牌的串。各部分依次紧密拼接，没有分隔符：
//   - QUERY 是 query 参数的 application/x-www-form-urlencoded 序列化结果，参数不存在时此部分省略。
//     存在但为空的参数表，此部分是空字符串。
//   - BODY 是 body 的规范 JSON 文本，body 不存在时此部分省略。
//   - CREDENTIAL 是从 bearerRaw 中取出的凭据，见 [ExtractCredential] 。
//   - KEY 是共享密钥原文。
//
// 由于没有分隔符，不同的输入可能得到相同的串，比如 query 为“ab”的和 query 为“a”、 body 为“b”的。
// 对方 API 的签名方式即是如此，为保持兼容不做修改。
func BuildDataToSign(query *QueryParams, body *Value, bearerRaw, sharedKey string) ([]byte, error) {
	credential, err := ExtractCredential(bearerRaw)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)

	// QUERY
	if query != nil {
		buf.WriteString(query.Encode())
	}

	// BODY
	if body != nil {
		buf.WriteString(body.CanonicalJSON())
	}

	// CREDENTIAL
	buf.WriteString(credential)

	// KEY
	buf.WriteString(sharedKey)

	return buf.Bytes(), nil
}
