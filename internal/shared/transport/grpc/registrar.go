package grpc

import gogrpc "google.golang.org/grpc"

// Registrar 由业务模块实现，把服务注册到 grpc server。
type Registrar interface {
	RpcRegister(s gogrpc.ServiceRegistrar)
}
