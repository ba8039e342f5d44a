package tokenv2test

import (
	"fmt"
	"strings"
	"sync"

	"github.com/cmstar/go-logx"
)

// NewLogRecorder 创建一个 LogRecorder 的新实例。
func NewLogRecorder() *LogRecorder {
	return &LogRecorder{
		buf: &strings.Builder{},
	}
}

// LogRecorder 实现 logx.Logger ，将全部日志追加记录在一个字符串上，每个日志末尾追加一个换行。
// 每个日志的字符串拼接格式为，格式化使用 fmt.Sprintf() ：
//
//	level={LEVEL} message={MESSAGE} KEY1=VALUE1 KEY2=VALUE2 ...
//
// 可被多个 goroutine 同时使用。
type LogRecorder struct {
	mu  sync.Mutex
	buf *strings.Builder
	m   []map[string]string
}

var _ logx.Logger = (*LogRecorder)(nil)

// Log 实现 Logger.Log() 。
func (l *LogRecorder) Log(level logx.Level, message string, keyValues ...any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := make(map[string]string)
	l.m = append(l.m, m)

	lv := logx.LevelToString(level)
	l.buf.WriteString("level=")
	l.buf.WriteString(lv)
	m["level"] = lv

	l.buf.WriteString(" message=")
	l.buf.WriteString(message)
	m["message"] = message

	length := len(keyValues)
	for i := 0; i < length-1; i += 2 {
		k := fmt.Sprintf("%v", keyValues[i])
		v := fmt.Sprintf("%v", keyValues[i+1])

		l.buf.WriteByte(' ')
		l.buf.WriteString(k)
		l.buf.WriteByte('=')
		l.buf.WriteString(v)

		m[k] = v
	}

	if length%2 != 0 {
		v := fmt.Sprintf("%v", keyValues[length-1])
		l.buf.WriteString(" UNKNOWN=")
		l.buf.WriteString(v)
		m["UNKNOWN"] = v
	}

	l.buf.WriteByte('\n')
	return nil
}

// LogFn 实现 Logger.LogFn() 。
func (l *LogRecorder) LogFn(level logx.Level, messageFactory func() (string, []any)) error {
	m, kv := messageFactory()
	return l.Log(level, m, kv...)
}

// String 返回当前记录的完整日志。
func (l *LogRecorder) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.buf == nil {
		return ""
	}
	return l.buf.String()
}

// Map 返回结构化日志的副本。每条日志使用一个 map 记录。
func (l *LogRecorder) Map() []map[string]string {
	l.mu.Lock()
	defer l.mu.Unlock()

	res := make([]map[string]string, len(l.m))
	copy(res, l.m)
	return res
}

// Find 返回第一条 message 为给定值的日志。不存在时返回 nil 。
func (l *LogRecorder) Find(message string) map[string]string {
	for _, m := range l.Map() {
		if m["message"] == message {
			return m
		}
	}
	return nil
}

// Len 返回已记录的日志条数。
func (l *LogRecorder) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.m)
}
