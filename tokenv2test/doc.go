// tokenv2test 包提供用于测试 tokenv2 及其相关包的辅助方法。
package tokenv2test
