package interfaces

import (
	"github.com/gin-gonic/gin"
	gogrpc "google.golang.org/grpc"

	"Game2048/internal/game/interfaces/handler"
	"Game2048/internal/game/interfaces/handler/http"
	"Game2048/internal/game/interfaces/handler/rpc"
	ws2 "Game2048/internal/game/interfaces/handler/ws"
	"Game2048/internal/shared/session"
	transportgrpc "Game2048/internal/shared/transport/grpc"
	transporthttp "Game2048/internal/shared/transport/http"
	"Game2048/internal/shared/transport/ws"
)

type Module struct {
	wsHandler   *ws2.WsHandler
	httpHandler *http.HttpHandler
	rpcHandler  *rpc.RpcHandler
}

func New(rt handler.Runtime, s session.Manager, swipeThreshold float64) *Module {
	game := handler.NewGame(rt, s, swipeThreshold)
	return &Module{
		wsHandler:   ws2.NewWsHandler(game),
		httpHandler: http.NewHttpHandler(game),
		rpcHandler:  rpc.NewRpcHandler(game),
	}
}

func (m *Module) WsRegister(r *ws.Router) {
	m.wsHandler.RegisterRoutes(r)
}

func (m *Module) HttpRegister(g *gin.RouterGroup) {
	m.httpHandler.RegisterRoutes(g)
}

func (m *Module) RpcRegister(s gogrpc.ServiceRegistrar) {
	m.rpcHandler.RegisterService(s)
}

var _ ws.Registrar = (*Module)(nil)
var _ transporthttp.Registrar = (*Module)(nil)
var _ transportgrpc.Registrar = (*Module)(nil)
