package tokenv2

import (
	"context"
	"sync"

	"github.com/cmstar/go-logx"
)

// Result 记录一次派生的结果。
type Result struct {
	Seq   uint64      // Seq 是 [Session.Submit] 返回的序号。
	Input DeriveInput // Input 是本次派生的输入。
	Token string      // Token 是生成的令牌，有错误时为空字符串。
	Err   error       // Err 记录派生失败的原因。
}

// ResultHandler 接收 [Session] 采纳的派生结果。
// 它在持有 Session 内部锁的情况下被调用，以保证结果按提交顺序生效，故不能在其中调用 Session 的方法。
type ResultHandler func(res Result)

// Session 以“最后输入优先”的方式执行令牌派生：每次提交都会取代之前尚未完成的派生，
// 只有最后一次提交的结果会被采纳，被取代的结果直接丢弃，不会覆盖较新的结果。
//
// Session 可被多个 goroutine 同时使用。零值不可用，需通过 [NewSession] 创建。
type Session struct {
	handler ResultHandler
	logger  logx.Logger
	derive  func(input DeriveInput) (string, error) // 测试时可替换。

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	latest Result
	has    bool
	wg     sync.WaitGroup
}

// NewSession 创建一个 [Session] 。
//   - handler 接收被采纳的结果，可为 nil ，此时只能通过 [Session.Latest] 读取结果。
//   - logger 用于输出调试日志，可为 nil 表示不记录日志。日志中不包含凭据和密钥。
func NewSession(handler ResultHandler, logger logx.Logger) *Session {
	return &Session{
		handler: handler,
		logger:  logger,
		derive:  DeriveToken,
	}
}

// Submit 提交一次派生，返回其序号。之前提交的、尚未完成的派生被取代。
// 派生在新的 goroutine 中执行；当 ctx 被取消，或在完成前有新的提交，其结果被丢弃。
func (s *Session) Submit(ctx context.Context, input DeriveInput) uint64 {
	s.mu.Lock()
	seq := s.supersede()
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(ctx, seq, input)
	return seq
}

// Cancel 取代所有尚未完成的派生，但不提交新的派生。
func (s *Session) Cancel() {
	s.mu.Lock()
	s.supersede()
	s.cancel = nil
	s.mu.Unlock()
}

// Wait 等待全部已启动的派生结束。
func (s *Session) Wait() {
	s.wg.Wait()
}

// Latest 返回最后一个被采纳的结果。尚没有结果时返回零值和 false 。
func (s *Session) Latest() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.has
}

// supersede 递增序号并取消正在执行的派生，返回新的序号。需持有锁。
func (s *Session) supersede() uint64 {
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	return s.seq
}

func (s *Session) run(ctx context.Context, seq uint64, input DeriveInput) {
	defer s.wg.Done()

	if ctx.Err() != nil {
		s.log(logx.LevelDebug, "derivation skipped", "Seq", seq)
		return
	}

	token, err := s.derive(input)

	s.mu.Lock()
	defer s.mu.Unlock()

	// ctx 在 supersede 时才会被取消，二者同在锁内完成，故这里判断序号即可，
	// ctx.Err() 用于处理调用者自己取消的情况。
	if seq != s.seq || ctx.Err() != nil {
		s.log(logx.LevelDebug, "derivation superseded", "Seq", seq, "Latest", s.seq)
		return
	}

	res := Result{
		Seq:   seq,
		Input: input,
		Token: token,
		Err:   err,
	}
	s.latest = res
	s.has = true

	if err != nil {
		s.log(logx.LevelDebug, "derivation failed", "Seq", seq, "ErrorKind", KindOf(err).String(), "Error", err.Error())
	} else {
		s.log(logx.LevelDebug, "derivation done", "Seq", seq)
	}

	if s.handler != nil {
		s.handler(res)
	}
}

func (s *Session) log(level logx.Level, message string, keyValues ...any) {
	if s.logger == nil {
		return
	}
	s.logger.Log(level, message, keyValues...)
}
