package ws

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"Game2048/internal/shared/transport"
	"Game2048/modules/kit/logx"
)

type HandlerFunc func(ctx context.Context, req *WsMsgReq, resp *WsMsgResp)

// Group 是同一前缀下的一组处理器，例如 game.*。
type Group struct {
	prefix   string
	handlers map[string]HandlerFunc
}

func (g *Group) Handle(name string, h HandlerFunc) {
	g.handlers[name] = h
}

type Router struct {
	groups map[string]*Group
	log    logx.Logger
}

func NewRouter(l logx.Logger) *Router {
	if l == nil {
		l = logx.Nop()
	}
	return &Router{
		groups: make(map[string]*Group),
		log:    l,
	}
}

func (r *Router) Group(prefix string) *Group {
	if g, ok := r.groups[prefix]; ok {
		return g
	}
	g := &Group{prefix: prefix, handlers: make(map[string]HandlerFunc)}
	r.groups[prefix] = g
	return g
}

// Routes 返回已注册的完整路由名，已排序。
func (r *Router) Routes() []string {
	var out []string
	for prefix, g := range r.groups {
		for name := range g.handlers {
			out = append(out, prefix+"."+name)
		}
	}
	sort.Strings(out)
	return out
}

// Dispatch 按 req.Body.Name（group.name）路由，并写一条访问日志。
// resp 预置为系统错误，handler 漏设时不会出现“成功假象”。
func (r *Router) Dispatch(req *WsMsgReq, resp *WsMsgResp) {
	if req == nil || req.Body == nil || resp == nil || resp.Body == nil {
		setError(resp, transport.InvalidParam, "参数有误")
		return
	}
	ctx := transport.NewContext("WS "+req.Body.Name, "ws")
	resp.Body.Code = transport.SystemError
	resp.Body.Msg = nil
	defer func() {
		if p := recover(); p != nil {
			r.log.WithContext(ctx).Error("ws handler panic", zap.String("route", req.Body.Name), zap.String("panic", fmt.Sprint(p)))
			setError(resp, transport.SystemError, "系统繁忙，请稍后重试")
		}
		transport.SetBizCode(ctx, transport.BizCode(resp.Body.Code))
		transport.WriteAccessLog(ctx, r.log)
	}()

	h := r.lookup(req.Body.Name)
	if h == nil {
		setError(resp, transport.NotFound, "路由不存在")
		return
	}
	h(ctx, req, resp)
}

func (r *Router) lookup(route string) HandlerFunc {
	prefix, name, ok := strings.Cut(route, ".")
	if !ok || prefix == "" || name == "" || strings.Contains(name, ".") {
		return nil
	}
	g := r.groups[prefix]
	if g == nil {
		return nil
	}
	return g.handlers[name]
}

func setError(resp *WsMsgResp, code int, msg string) {
	if resp == nil || resp.Body == nil {
		return
	}
	resp.Body.Code = code
	resp.Body.Msg = msg
}
