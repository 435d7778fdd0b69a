package http

import (
	"context"
	nethttp "net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/interfaces/handler"
	"Game2048/internal/game/interfaces/handler/dto"
	"Game2048/internal/shared/transport"
)

type HttpHandler struct {
	game *handler.Game
}

func NewHttpHandler(g *handler.Game) *HttpHandler {
	return &HttpHandler{game: g}
}

func (h *HttpHandler) RegisterRoutes(group *gin.RouterGroup) {
	api := group.Group("/api")
	games := api.Group("/games")
	games.POST("", h.Create)
	games.GET("/:id", h.State)
	games.POST("/:id/start", h.Start)
	games.POST("/:id/move", h.Move)
	games.POST("/:id/menu", h.Menu)
	api.GET("/leaderboard", h.Leaderboard)
}

func (h *HttpHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateGameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}

	view, token, err := h.game.Runtime.Create(ctx, req.Player, req.Size)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.CreateGameResp{Session: view, Token: token})
}

func (h *HttpHandler) State(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.game.Runtime.State(ctx, id)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, view)
}

func (h *HttpHandler) Start(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, spawns, err := h.game.Runtime.Start(ctx, id, token(c))
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.StartGameResp{Session: view, Spawns: spawns})
}

func (h *HttpHandler) Move(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req dto.MoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	dir, ok, err := req.Resolve(h.game.SwipeThreshold)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	if !ok {
		// 滑动距离不足，按无效输入处理，只回当前状态。
		view, err := h.game.Runtime.State(ctx, id)
		if err != nil {
			h.error(ctx, c, err)
			return
		}
		h.ok(c, dto.NewMoveGameResp(view, entity.MoveOutcome{}))
		return
	}

	view, out, err := h.game.Runtime.Move(ctx, id, token(c), dir)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.NewMoveGameResp(view, out))
}

func (h *HttpHandler) Menu(c *gin.Context) {
	ctx := c.Request.Context()
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	view, err := h.game.Runtime.Menu(ctx, id, token(c))
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, view)
}

func (h *HttpHandler) Leaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LeaderboardReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.fail(c, transport.InvalidParam, "参数有误")
		return
	}
	results, err := h.game.Runtime.Leaderboard(ctx, req.Limit)
	if err != nil {
		h.error(ctx, c, err)
		return
	}
	h.ok(c, dto.LeaderboardResp{Results: results})
}

func (h *HttpHandler) sessionID(c *gin.Context) (entity.SessionID, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		h.fail(c, transport.InvalidParam, "对局 id 有误")
		return 0, false
	}
	return entity.SessionID(id), true
}

func token(c *gin.Context) string {
	return c.GetHeader("Authorization")
}

func (h *HttpHandler) ok(c *gin.Context, data any) {
	c.JSON(nethttp.StatusOK, dto.Success(transport.OK, data))
}

func (h *HttpHandler) fail(c *gin.Context, code int, msg string) {
	c.JSON(nethttp.StatusOK, dto.Error(code, msg))
}

func (h *HttpHandler) error(ctx context.Context, c *gin.Context, err error) {
	code, msg := handler.HandleError(ctx, err)
	h.fail(c, code, msg)
}
