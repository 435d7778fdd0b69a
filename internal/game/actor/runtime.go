package actor

import (
	"context"
	"time"

	protoactor "github.com/asynkron/protoactor-go/actor"

	"Game2048/internal/game/actors"
	"Game2048/internal/game/app"
	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/modules/kit/logx"
	"Game2048/modules/kit/tracex"
)

const (
	defaultAskTimeout  = 3 * time.Second
	defaultIdleTimeout = 30 * time.Minute
)

type Options struct {
	AskTimeout  time.Duration
	IdleTimeout time.Duration
}

// Runtime 是传输层访问对局的唯一入口：同一对局的请求经 actor 邮箱串行执行。
type Runtime struct {
	system  *protoactor.ActorSystem
	root    *protoactor.RootContext
	manager *protoactor.PID
	svc     *app.GameService
	timeout time.Duration
}

func NewRuntime(svc *app.GameService, opts Options, log logx.Logger) *Runtime {
	if opts.AskTimeout <= 0 {
		opts.AskTimeout = defaultAskTimeout
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = defaultIdleTimeout
	}

	system := protoactor.NewActorSystem()
	root := system.Root
	managerProps := protoactor.PropsFromProducer(func() protoactor.Actor {
		return actors.NewManagerActor(svc, opts.IdleTimeout, log)
	})
	manager := root.Spawn(managerProps)

	return &Runtime{
		system:  system,
		root:    root,
		manager: manager,
		svc:     svc,
		timeout: opts.AskTimeout,
	}
}

func (r *Runtime) Shutdown() {
	if r == nil {
		return
	}
	if r.root != nil && r.manager != nil {
		_ = r.root.StopFuture(r.manager).Wait()
	}
	if r.system != nil {
		r.system.Shutdown()
	}
}

func (r *Runtime) request(ctx context.Context, msg any) (*actors.Reply, error) {
	if r == nil || r.root == nil {
		return nil, app.ErrUnavailable.WithData("reason", "actor runtime 未初始化")
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, app.ErrUnavailable.WithReason(app.ReasonActorTimeout).WithCause(err)
		}
	}

	future := r.root.RequestFuture(r.manager, msg, r.timeoutFromContext(ctx))
	res, err := future.Result()
	if err != nil {
		return nil, app.ErrUnavailable.WithReason(app.ReasonActorTimeout).WithCause(err)
	}
	reply, ok := res.(*actors.Reply)
	if !ok || reply == nil {
		return nil, app.ErrInternalServer.WithData("reason", "actor 返回类型非法")
	}
	if reply.Err != nil {
		return nil, reply.Err
	}
	return reply, nil
}

func (r *Runtime) timeoutFromContext(ctx context.Context) time.Duration {
	if r.timeout <= 0 {
		return defaultAskTimeout
	}
	if ctx == nil {
		return r.timeout
	}
	deadline, ok := ctx.Deadline()
	if !ok {
		return r.timeout
	}
	remain := time.Until(deadline)
	if remain <= 0 {
		return time.Millisecond
	}
	if remain < r.timeout {
		return remain
	}
	return r.timeout
}

func meta(ctx context.Context) actors.Meta {
	if ctx == nil {
		return actors.Meta{}
	}
	tid, _ := tracex.TraceIDFrom(ctx)
	return actors.Meta{TraceID: tid}
}

// Create 新建对局，返回视图和对局令牌。
func (r *Runtime) Create(ctx context.Context, player string, size int) (entity.SessionView, string, error) {
	reply, err := r.request(ctx, &actors.CreateGame{Meta: meta(ctx), Player: player, Size: size})
	if err != nil {
		return entity.SessionView{}, "", err
	}
	return reply.View, reply.Token, nil
}

func (r *Runtime) Start(ctx context.Context, id entity.SessionID, token string) (entity.SessionView, []domain.Spawn, error) {
	if err := r.svc.VerifyToken(token, int64(id)); err != nil {
		return entity.SessionView{}, nil, err
	}
	reply, err := r.request(ctx, &actors.StartGame{Meta: meta(ctx), SessionID: id})
	if err != nil {
		return entity.SessionView{}, nil, err
	}
	return reply.View, reply.Spawns, nil
}

func (r *Runtime) Move(ctx context.Context, id entity.SessionID, token string, dir domain.Direction) (entity.SessionView, entity.MoveOutcome, error) {
	if err := r.svc.VerifyToken(token, int64(id)); err != nil {
		return entity.SessionView{}, entity.MoveOutcome{}, err
	}
	if !dir.Valid() {
		return entity.SessionView{}, entity.MoveOutcome{}, domain.ErrInvalidDirection.WithData("direction", int(dir))
	}
	reply, err := r.request(ctx, &actors.MoveGame{Meta: meta(ctx), SessionID: id, Direction: dir})
	if err != nil {
		return entity.SessionView{}, entity.MoveOutcome{}, err
	}
	if reply.Move == nil {
		return reply.View, entity.MoveOutcome{}, nil
	}
	return reply.View, *reply.Move, nil
}

func (r *Runtime) Menu(ctx context.Context, id entity.SessionID, token string) (entity.SessionView, error) {
	if err := r.svc.VerifyToken(token, int64(id)); err != nil {
		return entity.SessionView{}, err
	}
	reply, err := r.request(ctx, &actors.MenuGame{Meta: meta(ctx), SessionID: id})
	if err != nil {
		return entity.SessionView{}, err
	}
	return reply.View, nil
}

// State 只读查询，不要求令牌。
func (r *Runtime) State(ctx context.Context, id entity.SessionID) (entity.SessionView, error) {
	reply, err := r.request(ctx, &actors.GetState{Meta: meta(ctx), SessionID: id})
	if err != nil {
		return entity.SessionView{}, err
	}
	return reply.View, nil
}

// Leaderboard 直接查询成绩库，不经过 actor。
func (r *Runtime) Leaderboard(ctx context.Context, limit int) ([]entity.GameResult, error) {
	return r.svc.Leaderboard(ctx, limit)
}

// Sessions 返回当前在内存中的对局数。
func (r *Runtime) Sessions(ctx context.Context) (int, error) {
	if r == nil || r.root == nil {
		return 0, app.ErrUnavailable
	}
	res, err := r.root.RequestFuture(r.manager, &actors.SessionCount{}, r.timeoutFromContext(ctx)).Result()
	if err != nil {
		return 0, app.ErrUnavailable.WithReason(app.ReasonActorTimeout).WithCause(err)
	}
	reply, ok := res.(*actors.SessionCountReply)
	if !ok {
		return 0, app.ErrInternalServer.WithData("reason", "actor 返回类型非法")
	}
	return reply.N, nil
}
