package tokenv2

import "strings"

// ExtractCredential 从 Authorization 值中取出实际的凭据，去掉可能存在的 scheme 前缀。
//
// 去掉首尾空白后，以连续的空白字符分割：
//   - 两段或更多时，取第二段，第一段的 scheme （如“Bearer”）被丢弃；
//   - 只有一段时，取这一段；
//   - 没有内容时，返回 [ErrorKind_MissingCredential] 。
//
// 例如“Bearer abc”和“abc”得到的都是“abc”。
func ExtractCredential(raw string) (string, error) {
	parts := strings.FieldsFunc(raw, isJsSpace)

	var credential string
	switch {
	case len(parts) >= 2:
		credential = parts[1]
	case len(parts) == 1:
		credential = parts[0]
	}

	if credential == "" {
		return "", CreateTokenError(ErrorKind_MissingCredential, nil, messageInvalidBearerToken)
	}
	return credential, nil
}
