package errx

// 跨服务统一的系统类错误码。
// 业务域错误码（例如 GAME_NOT_PLAYING）由各业务自己定义，不放在 kit 里。

const (
	// CodeInternal 服务内部不可预期错误（兜底）。
	CodeInternal Code = "INTERNAL_ERROR"
	// CodeUnavailable 依赖不可用（DB/下游/actor 超时等）。
	CodeUnavailable Code = "SERVICE_UNAVAILABLE"
	// CodeTimeout 请求或依赖调用超时。
	CodeTimeout Code = "TIMEOUT"
	// CodeReqParamError 请求参数错误。
	CodeReqParamError Code = "CODE_REQ_PARAM_ERROR"
	// CodeUnauthorized 凭证缺失或无效。
	CodeUnauthorized Code = "UNAUTHORIZED"
)

// 哨兵错误：只允许通过 WithData/WithCause 派生新对象。
var (
	ErrInternal     = NewSys(CodeInternal, "服务器内部错误")
	ErrUnavailable  = NewSys(CodeUnavailable, "服务不可用")
	ErrTimeout      = NewSys(CodeTimeout, "请求超时")
	ErrReqParamERR  = NewBiz(CodeReqParamError, "请求参数错误")
	ErrUnauthorized = NewBiz(CodeUnauthorized, "未授权")
)
