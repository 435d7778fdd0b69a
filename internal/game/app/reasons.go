package app

type Reason struct {
	Code    string
	Message string
}

func (r Reason) ReasonCode() string {
	return r.Code
}

func NewReason(c, m string) Reason {
	return Reason{Code: c, Message: m}
}

var (
	// 业务拒绝 reason。
	ReasonTokenMissing  = NewReason("TOKEN_MISSING", "缺少对局令牌")
	ReasonTokenInvalid  = NewReason("TOKEN_INVALID", "对局令牌无效")
	ReasonBadDirection  = NewReason("BAD_DIRECTION", "无法识别的方向")
	ReasonBadBoardSize  = NewReason("BAD_BOARD_SIZE", "棋盘尺寸不合法")
	ReasonBadLimit      = NewReason("BAD_LIMIT", "排行榜条数不合法")
	ReasonBadPlayerName = NewReason("BAD_PLAYER_NAME", "玩家名不合法")
)

var (
	// 技术错误 reason，用于日志与排障。
	ReasonTokenIssue      = NewReason("TOKEN_ISSUE", "令牌签发失败")
	ReasonIDGenerate      = NewReason("ID_GENERATE", "对局 id 生成失败")
	ReasonResultSaveFail  = NewReason("RESULT_SAVE_FAIL", "成绩写入失败")
	ReasonResultQueryFail = NewReason("RESULT_QUERY_FAIL", "排行榜读取失败")
	ReasonActorTimeout    = NewReason("ACTOR_TIMEOUT", "对局 actor 响应超时")
)
