package app

import "Game2048/modules/kit/errx"

// Code 应用层错误码，直接对应对外协议。
type Code = errx.Code

const (
	CodeSessionNotFound Code = "GAME_SESSION_NOT_FOUND"
	CodeForbidden       Code = "GAME_FORBIDDEN"
	CodeInternalServer  Code = errx.CodeInternal
	CodeUnavailable     Code = errx.CodeUnavailable
)

type Error = errx.Error

var (
	ErrSessionNotFound = errx.NewBiz(CodeSessionNotFound, "对局不存在或已过期")
	ErrForbidden       = errx.NewBiz(CodeForbidden, "无权操作该对局")
	ErrReqParam        = errx.ErrReqParamERR
	ErrInternalServer  = errx.ErrInternal
	ErrUnavailable     = errx.ErrUnavailable
)
