/*
generator 提供令牌生成工具的交互模型：使用者逐项填写输入，工具实时计算并展示令牌。

[Form] 持有四项原始输入，每次修改后重新计算；输入通过 [PersistencePort] 保存，
下次创建 Form 时恢复；生成的令牌可通过 [ClipboardPort] 复制。

计算本身由 [tokenv2.Session] 完成，Form 只负责展示策略：
  - bearer token 或 API share key 为空白时，不计算、不提示错误；
  - query 参数或 body 格式错误时，直接展示错误，不计算；
  - 其余情况提交计算，计算完成前 [View.Generating] 为 true 。
*/
package generator
