package actors

import (
	"fmt"
	"reflect"

	"github.com/asynkron/protoactor-go/actor"

	"Game2048/internal/game/app"
)

// Dispatcher 按消息的具体类型分发到 handler。
type Dispatcher struct {
	handlers map[reflect.Type]reflect.Value
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		handlers: make(map[reflect.Type]reflect.Value),
	}
	d.registerAll()
	return d
}

func (d *Dispatcher) registerAll() {
	register(d, SH.HandleStart)
	register(d, SH.HandleMove)
	register(d, SH.HandleMenu)
	register(d, SH.HandleState)
}

// register 要求 Req 是指针类型的消息。
func register[Req any](d *Dispatcher, fn func(ctx actor.Context, a *SessionActor, req Req)) {
	reqType := reflect.TypeOf((*Req)(nil)).Elem()
	if reqType.Kind() != reflect.Ptr {
		panic("dispatcher req type must be pointer message")
	}
	d.handlers[reqType] = reflect.ValueOf(fn)
}

func (d *Dispatcher) Dispatch(ctx actor.Context, a *SessionActor, msg any) {
	if msg == nil {
		respond(ctx, &Reply{Err: app.ErrReqParam.WithData("reason", "nil message")})
		return
	}
	fn, ok := d.handlers[reflect.TypeOf(msg)]
	if !ok {
		respond(ctx, &Reply{Err: app.ErrReqParam.WithData("reason", fmt.Sprintf("no handler for %T", msg))})
		return
	}
	fn.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(a),
		reflect.ValueOf(msg),
	})
}

// respond 只在有发送方时回复，Send 过来的消息无人等待。
func respond(ctx actor.Context, r *Reply) {
	if ctx.Sender() == nil {
		return
	}
	ctx.Respond(r)
}
