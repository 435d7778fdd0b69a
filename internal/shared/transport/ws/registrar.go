package ws

// Registrar 由业务模块实现，把自己的路由挂到 ws Router。
type Registrar interface {
	WsRegister(r *Router)
}
