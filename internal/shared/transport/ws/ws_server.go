package ws

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-think/openssl"
	"github.com/go-viper/mapstructure/v2"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"Game2048/internal/shared/security"
	"Game2048/internal/shared/utils"
	"Game2048/modules/kit/logx"
)

const (
	outQueueSize = 256
	keyLength    = 16
)

// WsServer 是一条已升级的 websocket 连接：读循环解压、解密、分发，写循环加密、压缩、发送。
type WsServer struct {
	conn     *websocket.Conn
	router   *Router
	outChan  chan *WsMsgResp
	property map[string]any
	sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
	// gorilla 连接不支持并发写，握手与写循环共用这把锁。
	wmu sync.Mutex
	log logx.Logger
}

func NewWsServer(wsConn *websocket.Conn, l logx.Logger) *WsServer {
	return &WsServer{
		conn:     wsConn,
		outChan:  make(chan *WsMsgResp, outQueueSize),
		property: make(map[string]any),
		done:     make(chan struct{}),
		log:      l,
	}
}

func (s *WsServer) Router(router *Router) {
	s.router = router
}

func (s *WsServer) SetProperty(key string, value any) {
	s.Lock()
	defer s.Unlock()
	s.property[key] = value
}

func (s *WsServer) GetProperty(key string) any {
	s.RLock()
	defer s.RUnlock()
	return s.property[key]
}

func (s *WsServer) RemoveProperty(key string) {
	s.Lock()
	defer s.Unlock()
	delete(s.property, key)
}

func (s *WsServer) Addr() string {
	return s.conn.RemoteAddr().String()
}

// Push 连接已关闭时丢弃。
func (s *WsServer) Push(name string, data any) {
	s.send(&WsMsgResp{Body: &RespBody{Name: name, Msg: data}})
}

func (s *WsServer) send(resp *WsMsgResp) {
	select {
	case s.outChan <- resp:
	case <-s.done:
	}
}

func (s *WsServer) Run() {
	go s.readMsgLoop()
	go s.writeMsgLoop()
}

func (s *WsServer) readMsgLoop() {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("ws readMsgLoop panic", zap.String("err", fmt.Sprintf("%v", err)))
		}
		s.Close()
	}()
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.log.Info("ws connection closed", zap.String("addr", s.Addr()), zap.Error(err))
			return
		}

		reqBody, err := s.decode(data)
		if err != nil {
			s.log.Warn("ws decode frame failed", zap.Error(err))
			continue
		}

		req := WsMsgReq{Body: reqBody, Conn: s}
		// req 和 resp 的 Seq 必须一致
		resp := WsMsgResp{Body: &RespBody{Seq: reqBody.Seq, Name: reqBody.Name}}
		if reqBody.Name == HeartbeatMsg {
			h := &Heartbeat{}
			_ = mapstructure.Decode(reqBody.Msg, h)
			h.STime = time.Now().UnixMilli()
			resp.Body.Msg = h
		} else {
			s.router.Dispatch(&req, &resp)
		}
		s.send(&resp)
	}
}

// decode 压缩 -> 解密 -> JSON；解密失败时重新握手。
func (s *WsServer) decode(data []byte) (*ReqBody, error) {
	plain, err := security.UnZip(data)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	key, _ := s.GetProperty(SecretKey).(string)
	if key == "" {
		return nil, fmt.Errorf("secret key not negotiated")
	}
	decrypted, err := security.AesCBCDecrypt(plain, []byte(key), []byte(key), openssl.ZEROS_PADDING)
	if err != nil {
		s.Handshake()
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	body := &ReqBody{}
	if err := json.Unmarshal(decrypted, body); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return body, nil
}

func (s *WsServer) writeMsgLoop() {
	for {
		select {
		case msg := <-s.outChan:
			if msg.Body.Name != HeartbeatMsg {
				s.log.Debug("ws write msg", zap.String("name", msg.Body.Name), zap.Int64("seq", msg.Body.Seq), zap.Int("code", msg.Body.Code))
			}
			s.write(msg)
		case <-s.done:
			return
		}
	}
}

func (s *WsServer) Close() {
	s.closeOnce.Do(func() {
		_ = s.conn.Close()
		close(s.done)
	})
}

func (s *WsServer) Done() <-chan struct{} {
	return s.done
}

func (s *WsServer) write(msg *WsMsgResp) {
	data, err := json.Marshal(msg.Body)
	if err != nil {
		s.log.Error("ws write marshal json error", zap.Error(err))
		return
	}
	key, _ := s.GetProperty(SecretKey).(string)
	if key == "" {
		s.log.Error("ws write without secret key", zap.String("name", msg.Body.Name))
		return
	}
	encrypted, err := security.AesCBCEncrypt(data, []byte(key), []byte(key), openssl.ZEROS_PADDING)
	if err != nil {
		s.log.Error("ws write encrypt error", zap.Error(err))
		return
	}
	s.writeBinary(encrypted)
}

// writeBinary 压缩后的数据是二进制字节流，必须走 BinaryMessage。
func (s *WsServer) writeBinary(data []byte) {
	zipped, err := security.Zip(data)
	if err != nil {
		s.log.Error("ws write zip error", zap.Error(err))
		return
	}
	s.wmu.Lock()
	defer s.wmu.Unlock()
	if err := s.conn.WriteMessage(websocket.BinaryMessage, zipped); err != nil {
		s.log.Warn("ws write error", zap.Error(err))
	}
}

// Handshake 下发本连接的 AES 密钥（只压缩不加密），之后的帧都用它加解密。
func (s *WsServer) Handshake() {
	key, _ := s.GetProperty(SecretKey).(string)
	if key == "" {
		key = utils.RandSeq(keyLength)
		s.SetProperty(SecretKey, key)
	}
	data, err := json.Marshal(&RespBody{Name: HandshakeMsg, Msg: &Handshake{Key: key}})
	if err != nil {
		s.log.Error("ws handshake marshal json error", zap.Error(err))
		return
	}
	s.writeBinary(data)
}
