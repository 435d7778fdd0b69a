package grpc

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"Game2048/internal/shared/transport"
	"Game2048/modules/kit/logx"
)

// Dial 建立带 trace 注入的 grpc 连接（明文）。
func Dial(target string, extra ...gogrpc.DialOption) (*gogrpc.ClientConn, error) {
	opts := []gogrpc.DialOption{
		gogrpc.WithTransportCredentials(insecure.NewCredentials()),
		gogrpc.WithChainUnaryInterceptor(UnaryClientTraceInterceptor()),
	}
	conn, err := gogrpc.NewClient(target, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("dial %s failed: %w", target, err)
	}
	return conn, nil
}

// NewServer 创建带 trace 提取、访问日志与 panic 恢复的 grpc server。
func NewServer(log logx.Logger, extra ...gogrpc.ServerOption) *gogrpc.Server {
	if log == nil {
		log = logx.Nop()
	}
	opts := []gogrpc.ServerOption{
		gogrpc.ChainUnaryInterceptor(
			UnaryServerTraceInterceptor(),
			UnaryServerAccessLogInterceptor(log),
		),
	}
	return gogrpc.NewServer(append(opts, extra...)...)
}

// UnaryServerAccessLogInterceptor 每个 RPC 写一条访问日志，biz_code 由 grpc code 换算。
func UnaryServerAccessLogInterceptor(log logx.Logger) gogrpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *gogrpc.UnaryServerInfo,
		handler gogrpc.UnaryHandler,
	) (resp any, err error) {
		ctx = transport.NewContextWithParent(ctx, "RPC "+info.FullMethod, "rpc")
		defer func() {
			if p := recover(); p != nil {
				log.WithContext(ctx).Error("rpc handler panic", zap.String("method", info.FullMethod), zap.Any("panic", p))
				err = status.Error(codes.Internal, "internal error")
			}
			transport.SetBizCode(ctx, transport.BizCode(BizCodeFromStatus(status.Code(err))))
			if al := transport.FromContext(ctx); err != nil && al != nil && al.ErrorReason == "" {
				transport.SetErrorReason(ctx, status.Convert(err).Message())
			}
			transport.WriteAccessLog(ctx, log)
		}()
		return handler(ctx, req)
	}
}

// BizCodeFromStatus grpc code -> 客户端业务码。
func BizCodeFromStatus(c codes.Code) int {
	switch c {
	case codes.OK:
		return transport.OK
	case codes.InvalidArgument:
		return transport.InvalidParam
	case codes.Unauthenticated:
		return transport.Unauthorized
	case codes.PermissionDenied:
		return transport.Forbidden
	case codes.NotFound:
		return transport.NotFound
	case codes.FailedPrecondition, codes.AlreadyExists:
		return transport.Conflict
	case codes.Unavailable:
		return transport.Unavailable
	case codes.DeadlineExceeded:
		return transport.Timeout
	default:
		return transport.SystemError
	}
}
