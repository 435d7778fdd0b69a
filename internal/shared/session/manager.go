// Package session 记录每局游戏当前由哪条 ws 连接控制，以及该连接持有的对局令牌。
package session

import (
	"sync"

	"Game2048/internal/shared/transport/ws"
)

// KickedMsg 对局被另一条连接接管时推给旧连接。
const KickedMsg = "game.kicked"

type Manager interface {
	// Bind 让 conn 成为对局 id 的控制方；原控制方收到 KickedMsg 推送。
	Bind(id int64, token string, conn ws.WSConn)
	// Token 只有当前控制方能取到令牌。
	Token(conn ws.WSConn, id int64) (string, bool)
	Owner(id int64) (ws.WSConn, bool)
	// Sessions 返回 conn 控制的对局数。
	Sessions(conn ws.WSConn) int
	UnbindConn(conn ws.WSConn)
	Unbind(id int64)
}

type binding struct {
	conn  ws.WSConn
	token string
}

type SessMgr struct {
	sync.RWMutex
	byID    map[int64]binding
	byConn  map[ws.WSConn]map[int64]struct{}
	watched map[ws.WSConn]struct{}
}

func NewSessMgr() Manager {
	return &SessMgr{
		byID:    make(map[int64]binding),
		byConn:  make(map[ws.WSConn]map[int64]struct{}),
		watched: make(map[ws.WSConn]struct{}),
	}
}

func (s *SessMgr) Bind(id int64, token string, conn ws.WSConn) {
	if conn == nil {
		return
	}
	if kicked := s.bind(id, token, conn); kicked != nil {
		// Push 可能因旧连接队列满而阻塞，放在锁外。
		kicked.Push(KickedMsg, map[string]any{"session_id": id})
	}
}

// bind 登记绑定，返回被挤掉的旧连接。
func (s *SessMgr) bind(id int64, token string, conn ws.WSConn) ws.WSConn {
	s.Lock()
	defer s.Unlock()

	// 每条连接只启动一个 watcher，连接关闭后自动解绑。
	if _, ok := s.watched[conn]; !ok {
		s.watched[conn] = struct{}{}
		go s.watchConnDone(conn)
	}

	var kicked ws.WSConn
	if old, ok := s.byID[id]; ok && old.conn != conn {
		s.dropLocked(old.conn, id)
		kicked = old.conn
	}
	s.byID[id] = binding{conn: conn, token: token}
	ids := s.byConn[conn]
	if ids == nil {
		ids = make(map[int64]struct{})
		s.byConn[conn] = ids
	}
	ids[id] = struct{}{}
	return kicked
}

func (s *SessMgr) watchConnDone(conn ws.WSConn) {
	<-conn.Done()
	s.UnbindConn(conn)
}

func (s *SessMgr) Token(conn ws.WSConn, id int64) (string, bool) {
	s.RLock()
	defer s.RUnlock()
	b, ok := s.byID[id]
	if !ok || b.conn != conn {
		return "", false
	}
	return b.token, true
}

func (s *SessMgr) Owner(id int64) (ws.WSConn, bool) {
	s.RLock()
	defer s.RUnlock()
	b, ok := s.byID[id]
	return b.conn, ok
}

func (s *SessMgr) Sessions(conn ws.WSConn) int {
	s.RLock()
	defer s.RUnlock()
	return len(s.byConn[conn])
}

func (s *SessMgr) UnbindConn(conn ws.WSConn) {
	s.Lock()
	defer s.Unlock()
	for id := range s.byConn[conn] {
		if s.byID[id].conn == conn {
			delete(s.byID, id)
		}
	}
	delete(s.byConn, conn)
	delete(s.watched, conn)
}

func (s *SessMgr) Unbind(id int64) {
	s.Lock()
	defer s.Unlock()
	if b, ok := s.byID[id]; ok {
		s.dropLocked(b.conn, id)
	}
}

func (s *SessMgr) dropLocked(conn ws.WSConn, id int64) {
	delete(s.byID, id)
	if ids := s.byConn[conn]; ids != nil {
		delete(ids, id)
		if len(ids) == 0 {
			delete(s.byConn, conn)
		}
	}
}
