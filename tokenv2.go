package tokenv2

// DeriveInput 是生成令牌所需的原始输入，各字段均为使用者输入的原文，未做任何处理。
type DeriveInput struct {
	QueryParamsText string // query 参数，JSON object 或 query-string ，可为空。
	BodyDataText    string // body ，任意 JSON 值，可为空。
	BearerToken     string // Authorization 值，可以带“Bearer ”前缀。
	ApiShareKey     string // 共享密钥。
}

// DeriveToken 根据原始输入生成令牌，这是令牌生成的唯一入口。
//
// 一次只报告一个错误，检查顺序为：
//  1. BearerToken 、 ApiShareKey 为空白，返回 [ErrorKind_MissingField] 。
//  2. QueryParamsText 格式错误，返回 [ErrorKind_InvalidFormat] 。 query 和 body 都有错误时，报告 query 的。
//  3. BodyDataText 格式错误，返回 [ErrorKind_InvalidFormat] 。
//  4. BearerToken 中取不出凭据，返回 [ErrorKind_MissingCredential] 。
//
// 这是一个纯函数，相同的输入总是得到相同的输出。
func DeriveToken(input DeriveInput) (string, error) {
	if IsBlank(input.BearerToken) {
		return "", CreateTokenError(ErrorKind_MissingField, nil, messageBearerTokenRequired)
	}

	if IsBlank(input.ApiShareKey) {
		return "", CreateTokenError(ErrorKind_MissingField, nil, messageApiShareKeyRequired)
	}

	query, err := ParseQueryParams(input.QueryParamsText)
	if err != nil {
		return "", err
	}

	body, err := ParseBodyData(input.BodyDataText)
	if err != nil {
		return "", err
	}

	return Derive(query, body, input.BearerToken, input.ApiShareKey)
}
