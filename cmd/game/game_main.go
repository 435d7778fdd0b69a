package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	nethttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"Game2048/internal/game/actor"
	"Game2048/internal/game/app"
	"Game2048/internal/game/interfaces"
	"Game2048/internal/shared/config"
	"Game2048/internal/shared/logs"
	"Game2048/internal/shared/security"
	"Game2048/internal/shared/session"
	transportgrpc "Game2048/internal/shared/transport/grpc"
	transporthttp "Game2048/internal/shared/transport/http"
	"Game2048/internal/shared/transport/ws"
	"Game2048/internal/shared/utils"
	"Game2048/modules/kit/logx"
)

func main() {
	cfgPath := flag.String("config", "", "配置文件路径，默认向上查找 configs/conf.yml")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, func(next config.Config) {
		// 只有日志级别支持热更新，其余配置需要重启。
		logs.SetLevel(next.Log.Level)
		logs.Info("config reloaded", zap.String("level", logs.Level().String()))
	}, func(err error) {
		logs.Warn("config reload failed", zap.Error(err))
	})
	if err != nil {
		panic(err)
	}
	if err := logs.Init("game", cfg.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	logs.Info("conf", zap.Any("game", cfg.Game), zap.String("storage", cfg.Storage.Driver))

	baseLogger := logx.NewZapLogger(logs.Logger())

	results, closeResults, err := openResults(cfg)
	if err != nil {
		logs.Fatal("open result store failed", zap.Error(err))
	}
	defer closeResults()

	signer, err := security.NewSigner(cfg.Game.Secret(), cfg.Game.TokenTTL())
	if err != nil {
		logs.Fatal("init token signer failed", zap.Error(err))
	}
	idGen, err := utils.NewSnowflake(cfg.Game.NodeID)
	if err != nil {
		logs.Fatal("init id generator failed", zap.Error(err))
	}

	svc := app.NewGameService(results, signer, idGen.Next, baseLogger.Named("game"), app.Options{
		BoardSize:    cfg.Game.BoardSize,
		InitialTiles: cfg.Game.InitialTiles,
		Seed:         cfg.Game.Seed,
	})
	runtime := actor.NewRuntime(svc, actor.Options{
		AskTimeout:  cfg.Game.AskTimeout(),
		IdleTimeout: cfg.Game.IdleTimeout(),
	}, baseLogger.Named("actor"))
	defer runtime.Shutdown()

	gameModule := interfaces.New(runtime, session.NewSessMgr(), cfg.Game.SwipeThreshold)

	wsRouter := ws.NewRouter(baseLogger)
	wsModules := []ws.Registrar{
		gameModule,
	}
	for _, m := range wsModules {
		m.WsRegister(wsRouter)
	}

	httpAddr := addr(cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	httpServer := transporthttp.NewHttpServer(httpAddr, nil, baseLogger, transporthttp.Options{
		AllowOrigins: cfg.HTTPServer.AllowOrigins,
		Health: func(ctx context.Context) gin.H {
			n, err := runtime.Sessions(ctx)
			if err != nil {
				return gin.H{"sessions": -1}
			}
			return gin.H{"sessions": n}
		},
	})
	httpModules := []transporthttp.Registrar{
		gameModule,
	}
	for _, m := range httpModules {
		m.HttpRegister(httpServer.Group())
	}
	wsServer := ws.NewServer(wsRouter, baseLogger)
	httpServer.Engine().Any("/ws", gin.WrapH(wsServer))

	rpcAddr := addr(cfg.RPCServer.Host, cfg.RPCServer.Port)
	rpcServer := transportgrpc.NewServer(baseLogger)
	rpcModules := []transportgrpc.Registrar{
		gameModule,
	}
	for _, m := range rpcModules {
		m.RpcRegister(rpcServer)
	}
	lis, err := net.Listen("tcp", rpcAddr)
	if err != nil {
		logs.Fatal("listen game grpc failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logs.Info("game http server started", zap.String("addr", httpAddr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			errCh <- fmt.Errorf("game http serve failed: %w", err)
		}
	}()
	go func() {
		logs.Info("game grpc server started", zap.String("addr", rpcAddr))
		if err := rpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("game grpc serve failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		logs.Error("服务异常退出", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)

	stopCh := make(chan struct{})
	go func() {
		rpcServer.GracefulStop()
		close(stopCh)
	}()
	select {
	case <-stopCh:
	case <-shutdownCtx.Done():
		rpcServer.Stop()
	}
}

func addr(host string, port int) string {
	if host == "" {
		host = "0.0.0.0"
	}
	return fmt.Sprintf("%s:%d", host, port)
}
