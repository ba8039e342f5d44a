/*
tokenapi 将 [tokenv2.DeriveToken] 发布为一个 HTTP 接口。

请求参数（名称大小写不敏感）对应 [tokenv2.DeriveInput] 的各字段：

	queryParamsText / bodyDataText / bearerToken / apiShareKey

参数可以通过以下方式上送：
  - GET ：放在 URL 的 query-string 上；
  - POST ， Content-Type: application/x-www-form-urlencoded ：放在 body 上，与 URL 上的参数合并，同名时 body 优先；
  - POST ， Content-Type: application/json ： body 为一个 JSON object ，与 URL 上的参数合并，同名时 body 优先。
    queryParamsText 和 bodyDataText 可以直接给出 JSON 值，不必转义为字符串。

请求格式也可以通过 URL 上的 ~format 参数指定，取值为 get 、 post 、 json ，优先于 Content-Type 头。

回执的 HTTP 状态码总是 200 ， body 为 JSON ：

	{"Code":0,"Message":"","Data":"<token>"}

Code 为 0 表示成功，其他值为错误码：
  - 400 请求格式不正确；
  - 500 内部错误；
  - 1000 + [tokenv2.ErrorKind] 输入不合规，此时 Message 为 [tokenv2.TokenError] 的描述信息。

处理过程采用管道模式，每个环节由 [ApiHandler] 的一个接口定义，数据记录在 [ApiState] 上。
*/
package tokenapi
