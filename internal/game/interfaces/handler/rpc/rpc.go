package rpc

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/interfaces/handler"
	"Game2048/internal/game/interfaces/handler/dto"
)

// MetadataToken 令牌也可以放在 grpc metadata 里。
const MetadataToken = "authorization"

type RpcHandler struct {
	game *handler.Game
}

func NewRpcHandler(g *handler.Game) *RpcHandler {
	return &RpcHandler{game: g}
}

func (h *RpcHandler) RegisterService(s grpc.ServiceRegistrar) {
	RegisterGameServiceServer(s, h)
}

func (h *RpcHandler) Create(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req dto.CreateGameReq
	if err := decode(in, &req); err != nil {
		return nil, badParam()
	}
	view, token, err := h.game.Runtime.Create(ctx, req.Player, req.Size)
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(dto.CreateGameResp{Session: view, Token: token})
}

func (h *RpcHandler) Start(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := bindSession(in)
	if err != nil {
		return nil, err
	}
	view, spawns, err := h.game.Runtime.Start(ctx, entity.SessionID(req.SessionID), token(ctx, req.Token))
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(dto.StartGameResp{Session: view, Spawns: spawns})
}

func (h *RpcHandler) Move(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req dto.MoveReq
	if err := decode(in, &req); err != nil || req.SessionID <= 0 {
		return nil, badParam()
	}
	id := entity.SessionID(req.SessionID)

	dir, ok, err := req.Resolve(h.game.SwipeThreshold)
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	if !ok {
		view, err := h.game.Runtime.State(ctx, id)
		if err != nil {
			return nil, handler.ToRPCError(ctx, err)
		}
		return h.reply(dto.NewMoveGameResp(view, entity.MoveOutcome{}))
	}

	view, out, err := h.game.Runtime.Move(ctx, id, token(ctx, req.Token), dir)
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(dto.NewMoveGameResp(view, out))
}

func (h *RpcHandler) Menu(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := bindSession(in)
	if err != nil {
		return nil, err
	}
	view, err := h.game.Runtime.Menu(ctx, entity.SessionID(req.SessionID), token(ctx, req.Token))
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(view)
}

func (h *RpcHandler) State(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := bindSession(in)
	if err != nil {
		return nil, err
	}
	view, err := h.game.Runtime.State(ctx, entity.SessionID(req.SessionID))
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(view)
}

func (h *RpcHandler) Leaderboard(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	var req dto.LeaderboardReq
	if err := decode(in, &req); err != nil {
		return nil, badParam()
	}
	results, err := h.game.Runtime.Leaderboard(ctx, req.Limit)
	if err != nil {
		return nil, handler.ToRPCError(ctx, err)
	}
	return h.reply(dto.LeaderboardResp{Results: results})
}

func (h *RpcHandler) reply(v any) (*structpb.Struct, error) {
	out, err := encode(v)
	if err != nil {
		return nil, status.Error(codes.Internal, "响应编码失败")
	}
	return out, nil
}

func bindSession(in *structpb.Struct) (dto.SessionReq, error) {
	var req dto.SessionReq
	if err := decode(in, &req); err != nil || req.SessionID <= 0 {
		return req, badParam()
	}
	return req, nil
}

func badParam() error {
	return status.Error(codes.InvalidArgument, "参数有误")
}

// token 请求体里的优先，其次 metadata。
func token(ctx context.Context, given string) string {
	if given != "" {
		return given
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if vs := md.Get(MetadataToken); len(vs) > 0 {
		return strings.TrimSpace(vs[0])
	}
	return ""
}

var _ GameServiceServer = (*RpcHandler)(nil)
