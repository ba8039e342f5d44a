package generator

import (
	"context"
	"errors"
	"sync"

	"github.com/cmstar/go-errx"
	"github.com/cmstar/go-logx"
	"github.com/cmstar/go-tokenv2"
)

// 展示在 [View.Hint] 上的提示。
const (
	HintGenerating = "Generating…"
	HintReady      = "Ready to copy."
	HintIdle       = "Enter Token + API share key to generate."
)

// messageDeriveFailed 在计算返回的错误不是 tokenv2.TokenError 时使用。
const messageDeriveFailed = "Failed to generate token"

// View 是 [Form] 当前的展示状态。
type View struct {
	Token      string // Token 是生成的令牌，没有时为空字符串。
	Error      string // Error 是需要展示给使用者的错误信息，没有错误时为空字符串。
	Generating bool   // Generating 表示正在等待计算结果。
	Hint       string // Hint 是对当前状态的提示，取值为 HintGenerating 、 HintReady 、 HintIdle 之一。
}

// Form 持有令牌生成工具的四项输入，在每次修改后重新计算令牌。
// 可被多个 goroutine 同时使用，需通过 [NewForm] 创建。
type Form struct {
	store     PersistencePort
	clipboard ClipboardPort
	logger    logx.Logger
	session   *tokenv2.Session

	mu         sync.Mutex
	input      tokenv2.DeriveInput
	token      string
	err        string
	generating bool
	pending    uint64 // 正在等待的计算的序号。
}

// NewForm 创建一个 [Form] ，并从 store 中恢复上次的输入。
//   - store 用于保存输入，为 nil 时不保存。
//   - clipboard 用于复制令牌，为 nil 时 [Form.Copy] 总是返回错误。
//   - logger 为 nil 时不记录日志。日志中不包含输入的内容。
func NewForm(store PersistencePort, clipboard ClipboardPort, logger logx.Logger) *Form {
	f := &Form{
		store:     store,
		clipboard: clipboard,
		logger:    logger,
		session:   tokenv2.NewSession(nil, logger),
	}

	if store != nil {
		f.input = tokenv2.DeriveInput{
			QueryParamsText: store.Read(Field_QueryParams.Key()),
			BodyDataText:    store.Read(Field_BodyData.Key()),
			BearerToken:     store.Read(Field_Token.Key()),
			ApiShareKey:     store.Read(Field_ApiShareKey.Key()),
		}
	}

	f.mu.Lock()
	f.recompute()
	f.mu.Unlock()

	return f
}

// Input 返回当前的输入。
func (f *Form) Input() tokenv2.DeriveInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.input
}

// Get 返回一项输入的值。
func (f *Form) Get(field Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *f.fieldPtr(field)
}

// Set 修改一项输入，保存并重新计算。值未变化时什么也不做。
func (f *Form) Set(field Field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.fieldPtr(field)
	if *p == value {
		return
	}
	*p = value

	if f.store != nil {
		f.store.Write(field.Key(), value)
	}

	f.log(logx.LevelDebug, "field changed", "Field", field.String())
	f.recompute()
}

// Clear 清空一项输入，等同于 Set(field, "") 。
func (f *Form) Clear(field Field) {
	f.Set(field, "")
}

// View 返回当前的展示状态。
func (f *Form) View() View {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.viewLocked()
}

// Copy 将当前的令牌写入剪贴板，返回是否写入了。没有令牌时什么也不做，返回 false 。
func (f *Form) Copy() (bool, error) {
	f.mu.Lock()
	token := f.viewLocked().Token
	f.mu.Unlock()

	if token == "" {
		return false, nil
	}

	if f.clipboard == nil {
		return false, errors.New("clipboard not available")
	}

	if err := f.clipboard.WriteText(token); err != nil {
		f.log(logx.LevelWarn, "copy failed", "Error", err.Error())
		return false, errx.Wrap("copy token", err)
	}
	return true, nil
}

// Wait 等待已提交的计算结束。
func (f *Form) Wait() {
	f.session.Wait()
}

// Close 放弃正在进行的计算并等待其结束。
func (f *Form) Close() {
	f.session.Cancel()
	f.session.Wait()
}

func (f *Form) fieldPtr(field Field) *string {
	switch field {
	case Field_QueryParams:
		return &f.input.QueryParamsText
	case Field_BodyData:
		return &f.input.BodyDataText
	case Field_Token:
		return &f.input.BearerToken
	case Field_ApiShareKey:
		return &f.input.ApiShareKey
	default:
		panic(errors.New("unknown field " + field.String()))
	}
}

// recompute 根据当前输入决定展示状态，必要时提交计算。需持有锁。
func (f *Form) recompute() {
	// 必填项未填写时不提示错误。
	if tokenv2.IsBlank(f.input.BearerToken) || tokenv2.IsBlank(f.input.ApiShareKey) {
		f.reset("")
		return
	}

	// query 和 body 都有错误时，展示 query 的。
	_, queryErr := tokenv2.ParseQueryParams(f.input.QueryParamsText)
	_, bodyErr := tokenv2.ParseBodyData(f.input.BodyDataText)
	if queryErr != nil {
		f.reset(queryErr.Error())
		return
	}
	if bodyErr != nil {
		f.reset(bodyErr.Error())
		return
	}

	f.err = ""
	f.generating = true
	f.pending = f.session.Submit(context.Background(), f.input)
}

// reset 放弃正在进行的计算，清除令牌并展示给定的错误。需持有锁。
func (f *Form) reset(message string) {
	f.session.Cancel()
	f.token = ""
	f.err = message
	f.generating = false
	f.pending = 0
}

// viewLocked 采纳已完成的计算结果，返回展示状态。需持有锁。
func (f *Form) viewLocked() View {
	if f.generating {
		// Session 只会采纳最后提交的计算，序号不一致说明结果还没出来。
		res, ok := f.session.Latest()
		if ok && res.Seq == f.pending {
			f.generating = false
			f.pending = 0

			if res.Err != nil {
				f.token = ""
				f.err = describeError(res.Err)
			} else {
				f.token = res.Token
				f.err = ""
			}
		}
	}

	v := View{
		Token:      f.token,
		Error:      f.err,
		Generating: f.generating,
	}

	switch {
	case v.Generating:
		v.Hint = HintGenerating
	case v.Token != "":
		v.Hint = HintReady
	default:
		v.Hint = HintIdle
	}

	return v
}

func (f *Form) log(level logx.Level, message string, keyValues ...any) {
	if f.logger == nil {
		return
	}
	f.logger.Log(level, message, keyValues...)
}

func describeError(err error) string {
	if tokenv2.KindOf(err) == tokenv2.ErrorKind_None {
		return messageDeriveFailed
	}
	return err.Error()
}
