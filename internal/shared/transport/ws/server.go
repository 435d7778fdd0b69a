package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"Game2048/modules/kit/logx"
)

// Server 把 HTTP 请求升级为 websocket，并为每条连接启动读写循环。
type Server struct {
	router   *Router
	log      logx.Logger
	upgrader websocket.Upgrader
}

func NewServer(r *Router, l logx.Logger) *Server {
	return &Server{
		router: r,
		log:    l,
		upgrader: websocket.Upgrader{
			// 跨域由 HTTP 层的 CORS 配置约束，这里不再校验。
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(resp http.ResponseWriter, req *http.Request) {
	wsConn, err := s.upgrader.Upgrade(resp, req, nil)
	if err != nil {
		s.log.Warn("websocket upgrade error", zap.Error(err))
		return
	}
	s.log.Info("websocket connected", zap.String("addr", wsConn.RemoteAddr().String()))

	conn := NewWsServer(wsConn, s.log)
	conn.Router(s.router)
	conn.Handshake()
	conn.Run()
}
