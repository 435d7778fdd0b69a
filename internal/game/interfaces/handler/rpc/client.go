package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/interfaces/handler/dto"
)

// Client 是 GameService 的调用方封装，cmd/play 使用。
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) invoke(ctx context.Context, method string, req any, resp any) error {
	in, err := encode(req)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return err
	}
	return Unmarshal(out, resp)
}

func (c *Client) Create(ctx context.Context, player string, size int) (dto.CreateGameResp, error) {
	var resp dto.CreateGameResp
	err := c.invoke(ctx, "Create", dto.CreateGameReq{Player: player, Size: size}, &resp)
	return resp, err
}

func (c *Client) Start(ctx context.Context, id entity.SessionID, token string) (dto.StartGameResp, error) {
	var resp dto.StartGameResp
	err := c.invoke(ctx, "Start", dto.SessionReq{SessionID: int64(id), Token: token}, &resp)
	return resp, err
}

func (c *Client) Move(ctx context.Context, id entity.SessionID, token, direction string) (dto.MoveGameResp, error) {
	var resp dto.MoveGameResp
	req := dto.MoveReq{SessionReq: dto.SessionReq{SessionID: int64(id), Token: token}, Direction: direction}
	err := c.invoke(ctx, "Move", req, &resp)
	return resp, err
}

func (c *Client) Menu(ctx context.Context, id entity.SessionID, token string) (entity.SessionView, error) {
	var resp entity.SessionView
	err := c.invoke(ctx, "Menu", dto.SessionReq{SessionID: int64(id), Token: token}, &resp)
	return resp, err
}

func (c *Client) State(ctx context.Context, id entity.SessionID) (entity.SessionView, error) {
	var resp entity.SessionView
	err := c.invoke(ctx, "State", dto.SessionReq{SessionID: int64(id)}, &resp)
	return resp, err
}

func (c *Client) Leaderboard(ctx context.Context, limit int) (dto.LeaderboardResp, error) {
	var resp dto.LeaderboardResp
	err := c.invoke(ctx, "Leaderboard", dto.LeaderboardReq{Limit: limit}, &resp)
	return resp, err
}
