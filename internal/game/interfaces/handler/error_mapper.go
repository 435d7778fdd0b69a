package handler

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"Game2048/internal/game/app"
	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/internal/shared/logs"
	"Game2048/internal/shared/transport"
	"Game2048/modules/kit/errx"
	"Game2048/modules/kit/logx"
)

const busyMsg = "系统繁忙，请稍后重试"

// BizCode 错误 -> 客户端业务码。
func BizCode(err error) int {
	switch {
	case err == nil:
		return transport.OK
	case errors.Is(err, app.ErrReqParam),
		errors.Is(err, domain.ErrInvalidDirection),
		errors.Is(err, domain.ErrInvalidBoard):
		return transport.InvalidParam
	case errors.Is(err, app.ErrForbidden):
		return transport.Forbidden
	case errors.Is(err, app.ErrSessionNotFound):
		return transport.NotFound
	case errors.Is(err, entity.ErrNotPlaying), errors.Is(err, entity.ErrBadScene):
		return transport.Conflict
	case errors.Is(err, errx.ErrTimeout):
		return transport.Timeout
	case errors.Is(err, app.ErrUnavailable):
		return transport.Unavailable
	default:
		return transport.SystemError
	}
}

// HandleError 记录 reason 并返回 (业务码, 对客户端的提示)。
// 业务拒绝原样返回提示；系统错误打印一次错误日志，对外只给统一提示。
func HandleError(ctx context.Context, err error) (int, string) {
	var e *errx.Error
	if errors.As(err, &e) {
		if reason := e.Reason(); reason != "" {
			transport.SetErrorReason(ctx, reason)
		} else {
			transport.SetErrorReason(ctx, string(e.Code()))
		}
		if !e.IsSys() {
			return BizCode(err), e.Msg()
		}
	}
	logx.ReportSysError(ctx, logx.NewZapLogger(logs.Logger()), logx.NewSysLog("game", err))
	return BizCode(err), busyMsg
}

// ToRPCError 把错误转换为 grpc status，消息与 HandleError 一致。
func ToRPCError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	_, msg := HandleError(ctx, err)
	var c codes.Code
	switch BizCode(err) {
	case transport.InvalidParam:
		c = codes.InvalidArgument
	case transport.Forbidden:
		c = codes.PermissionDenied
	case transport.NotFound:
		c = codes.NotFound
	case transport.Conflict:
		c = codes.FailedPrecondition
	case transport.Timeout:
		c = codes.DeadlineExceeded
	case transport.Unavailable:
		c = codes.Unavailable
	default:
		c = codes.Internal
	}
	return status.Error(c, msg)
}
