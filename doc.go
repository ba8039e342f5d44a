/*
tokenv2 实现 token v2 令牌的生成算法，用于复现某外部 API 使用的签名方式。

令牌由四项输入决定： query 参数、 body 、已有的 bearer token 以及双方共享的 API share key 。
生成过程不依赖时间、随机数或其他状态，相同的输入总是得到相同的令牌。

# 输入

  - query 参数：可以是 JSON object ，如 {"a":"1","b":2} ；也可以是 query-string ，如 a=1&b=2 或 ?a=1&b=2 。
    JSON 中值为 null 的成员被忽略，其余值转为字符串，数字按 JavaScript 的格式输出（如 1e+21 ）。
    query-string 中同名参数仅保留最后一个值。空白输入表示没有 query 参数。
  - body ：任意合法的 JSON 值。空白输入表示没有 body 。
  - bearer token ：如“Bearer mytoken”，前面的 scheme 部分被丢弃，取“mytoken”；也可以直接给“mytoken”。
  - API share key ：原样使用。

bearer token 和 API share key 是必填的。

# 算法

字符集统一使用 UTF-8 。令牌是待签名串的 SHA-256 值，输出为小写的 HEX 格式，长度为 64 。待签名串为：

	QUERY BODY CREDENTIAL KEY

各部分紧密拼接，中间没有任何分隔符：
 1. QUERY 是 query 参数按 application/x-www-form-urlencoded 序列化的结果，参数的顺序与输入一致。
    空格转为“+”，除 ASCII 字母数字和“*-._”外的字节都使用百分号转义（大写 HEX ）。
    没有 query 参数时此部分省略。
 2. BODY 是 body 的 JSON 文本，与 JavaScript 的 JSON.stringify 输出一致：没有空白，对象成员保持原始顺序。
    没有 body 时此部分省略。
 3. CREDENTIAL 是从 bearer token 中取出的凭据。
 4. KEY 是 API share key 。

注意：不论 query 参数以哪种格式给出，序列化结果都一样，比如 {"a":"1","b":"2"} 和 a=1&b=2 都得到 a=1&b=2 。
但参数的顺序会影响结果， b=2&a=1 与 a=1&b=2 得到的令牌不同。

# 例子1 - 完整的输入

	query 参数：   a=1&b=2
	body ：        {"userId":123, "role":"admin"}
	bearer token ：Bearer mytoken
	API share key ：sharekey

待签名串为：

	a=1&b=2{"userId":123,"role":"admin"}mytokensharekey

令牌为： 032d4fbffdfcfb533386c592afeba7992b24a44ff4b338685e73a7229c58add5

# 例子2 - 只有必填项

	bearer token ：Bearer tok
	API share key ：key

待签名串为 tokkey ，令牌为： c867bccfdb05a1d904d3206962fb74bef4b9977a53db17fb8cf6dcef8fad0368

# 错误

输入不合规时返回 [TokenError] ，通过 [KindOf] 可获取其种类：
  - [ErrorKind_InvalidFormat] query 参数或 body 格式错误。
  - [ErrorKind_MissingField] bearer token 或 API share key 为空白。
  - [ErrorKind_MissingCredential] bearer token 中取不出凭据。

一次只报告一个错误，顺序见 [DeriveToken] 。

# 并发

令牌的计算本身是同步的，可以并发调用。若输入频繁变化（比如随使用者的输入实时计算），
可使用 [Session] ，它总是只采纳最后一次提交的输入的结果，被取代的计算结果会被丢弃。
*/
package tokenv2
