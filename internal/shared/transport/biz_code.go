package transport

// BizCode 表示业务码的强类型封装，用于在日志上下文中减少误传风险。
type BizCode int

// 对客户端的业务码：0 成功，4xx 调用方问题，5xx 服务端问题。
const (
	OK           = 0
	InvalidParam = 400
	Unauthorized = 401
	Forbidden    = 403
	NotFound     = 404
	Conflict     = 409
	SystemError  = 500
	Unavailable  = 503
	Timeout      = 504
)

// Response HTTP/WS 统一响应体。
type Response struct {
	Code int    `json:"code"`
	Msg  any    `json:"msg,omitempty"`
	Err  string `json:"err,omitempty"`
}
