package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// 服务没有 .proto，请求和响应都用 google.protobuf.Struct 承载 JSON 形状的 dto。
const ServiceName = "game2048.GameService"

type GameServiceServer interface {
	Create(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Start(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Move(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Menu(context.Context, *structpb.Struct) (*structpb.Struct, error)
	State(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Leaderboard(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type call func(GameServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unary(method string, fn call) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return fn(srv.(GameServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: "/" + ServiceName + "/" + method,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return fn(srv.(GameServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var GameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GameServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Create", Handler: unary("Create", GameServiceServer.Create)},
		{MethodName: "Start", Handler: unary("Start", GameServiceServer.Start)},
		{MethodName: "Move", Handler: unary("Move", GameServiceServer.Move)},
		{MethodName: "Menu", Handler: unary("Menu", GameServiceServer.Menu)},
		{MethodName: "State", Handler: unary("State", GameServiceServer.State)},
		{MethodName: "Leaderboard", Handler: unary("Leaderboard", GameServiceServer.Leaderboard)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "game2048/game.proto",
}

func RegisterGameServiceServer(s grpc.ServiceRegistrar, srv GameServiceServer) {
	s.RegisterService(&GameServiceDesc, srv)
}
