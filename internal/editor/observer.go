package editor

import "github.com/google/uuid"

// ChangeKind 状态变化类型
type ChangeKind int

const (
	ChangeOpened      ChangeKind = iota // 会话打开
	ChangeClosed                        // 会话关闭（取消或应用）
	ChangeSelection                     // 选区变化
	ChangeGuides                        // 参考线或锁定状态变化
	ChangeViewport                      // 缩放/平移/容器尺寸
	ChangeInteraction                   // 拖拽状态、预览线
	ChangeRestored                      // 撤销/重做恢复
	ChangeCommitted                     // 拖拽结束，需要完整刷新
	ChangeStatus                        // 状态提示
)

// Change 通知给订阅者的变化
type Change struct {
	Kind    ChangeKind
	Session uuid.UUID
	Status  Status
	Result  *Result // 仅 ChangeClosed 且为应用时非空
}

type subscriber struct {
	id int
	fn func(Change)
}

// emitter 按订阅顺序通知，单个回调 panic 不影响其它回调
type emitter struct {
	nextID int
	subs   []subscriber
}

func (e *emitter) subscribe(fn func(Change)) func() {
	e.nextID++
	id := e.nextID
	e.subs = append(e.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range e.subs {
			if s.id == id {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				return
			}
		}
	}
}

func (e *emitter) emit(ch Change) {
	for _, s := range e.subs {
		e.call(s.fn, ch)
	}
}

func (e *emitter) call(fn func(Change), ch Change) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Warn("状态回调 panic", "change", ch.Kind, "panic", r)
		}
	}()
	fn(ch)
}
