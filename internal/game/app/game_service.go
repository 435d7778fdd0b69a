package app

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/internal/game/errs"
	"Game2048/modules/kit/logx"
)

const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
	maxPlayerNameLen        = 32
)

// Options 是对局的默认参数，来自配置 game 段。
type Options struct {
	BoardSize    int
	InitialTiles int
	// Seed 非 0 时所有对局使用同一随机序列，便于复现。
	Seed int64
}

// Game 是一局游戏及其私有随机源，只属于一个 actor。
type Game struct {
	Session *entity.Session
	rng     domain.Rand
}

func (g *Game) View() entity.SessionView {
	return g.Session.Snapshot()
}

type GameService struct {
	results ResultRepo
	signer  TokenSigner
	nextID  IDGen
	log     Logger
	opts    Options
}

func NewGameService(results ResultRepo, signer TokenSigner, nextID IDGen, log Logger, opts Options) *GameService {
	if log == nil {
		log = logx.Nop()
	}
	if opts.BoardSize == 0 {
		opts.BoardSize = domain.DefaultSize
	}
	if opts.InitialTiles == 0 {
		opts.InitialTiles = domain.InitialTiles
	}
	return &GameService{
		results: results,
		signer:  signer,
		nextID:  nextID,
		log:     log,
		opts:    opts,
	}
}

// Create 新建一局（处于菜单场景）并签发对局令牌。size 为 0 时使用默认尺寸。
func (s *GameService) Create(ctx context.Context, player string, size int) (*Game, string, error) {
	player = strings.TrimSpace(player)
	if player == "" || utf8.RuneCountInString(player) > maxPlayerNameLen {
		return nil, "", ErrReqParam.WithReason(ReasonBadPlayerName).WithData("player", player)
	}
	if size == 0 {
		size = s.opts.BoardSize
	}
	if size < domain.MinSize || size > domain.MaxSize {
		return nil, "", ErrReqParam.WithReason(ReasonBadBoardSize).WithData("size", size)
	}

	id, err := s.nextID()
	if err != nil {
		return nil, "", ErrInternalServer.WithReason(ReasonIDGenerate).WithCause(err)
	}
	sess, err := entity.NewSession(entity.SessionID(id), player, size, s.opts.InitialTiles)
	if err != nil {
		return nil, "", ErrReqParam.WithReason(ReasonBadBoardSize).WithCause(err)
	}
	token, err := s.IssueToken(id, player)
	if err != nil {
		return nil, "", err
	}

	s.log.WithContext(ctx).Info("game created",
		zap.Int64("session_id", id), zap.String("player", player), zap.Int("size", size))
	return &Game{Session: sess, rng: domain.NewRand(s.opts.Seed)}, token, nil
}

// Start 开始或重新开始一局。
func (s *GameService) Start(ctx context.Context, g *Game) ([]domain.Spawn, error) {
	// 上一局写库失败时在重开前补写一次。
	s.recordIfOver(ctx, g)
	spawns, err := g.Session.Start(g.rng)
	if err != nil {
		return nil, err
	}
	s.recordIfOver(ctx, g)
	return spawns, nil
}

// Move 执行一次移动；对局因此结束时写入成绩。
func (s *GameService) Move(ctx context.Context, g *Game, dir domain.Direction) (entity.MoveOutcome, error) {
	out, err := g.Session.Move(dir, g.rng)
	if err != nil {
		return entity.MoveOutcome{}, err
	}
	if out.Finished {
		s.recordIfOver(ctx, g)
	}
	return out, nil
}

// Menu 返回主菜单。
func (s *GameService) Menu(ctx context.Context, g *Game) {
	s.recordIfOver(ctx, g)
	g.Session.Menu()
}

// recordIfOver 结束的对局只记录一次；写库失败只记日志，不影响本次操作。
func (s *GameService) recordIfOver(ctx context.Context, g *Game) {
	sess := g.Session
	if sess.Scene() != entity.SceneOver || sess.Recorded() {
		return
	}
	res := sess.Result()
	if s.results != nil {
		if err := s.results.Save(ctx, res); err != nil {
			logx.ReportSysError(ctx, s.log, logx.NewSysLog("game.record",
				ErrUnavailable.WithReason(ReasonResultSaveFail).
					WithData("session_id", int64(res.SessionID)).
					WithDataMap(errs.Describe(err)).
					WithCause(err)))
			return
		}
	}
	sess.MarkRecorded()
	s.log.WithContext(ctx).Info("game over",
		zap.Int64("session_id", int64(res.SessionID)),
		zap.String("player", res.PlayerID),
		zap.Int("score", res.Score),
		zap.Int("max_tile", res.MaxTile),
		zap.Int("moves", res.Moves))
}

// Leaderboard limit 为 0 时取默认值。
func (s *GameService) Leaderboard(ctx context.Context, limit int) ([]entity.GameResult, error) {
	if limit == 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit < 0 || limit > MaxLeaderboardLimit {
		return nil, ErrReqParam.WithReason(ReasonBadLimit).WithData("limit", limit)
	}
	if s.results == nil {
		return nil, nil
	}
	list, err := s.results.Top(ctx, limit)
	if err != nil {
		return nil, ErrUnavailable.WithReason(ReasonResultQueryFail).WithDataMap(errs.Describe(err)).WithCause(err)
	}
	return list, nil
}

func (s *GameService) IssueToken(sessionID int64, player string) (string, error) {
	token, err := s.signer.Award(sessionID, player)
	if err != nil {
		return "", ErrInternalServer.WithReason(ReasonTokenIssue).WithCause(err)
	}
	return token, nil
}

// VerifyToken 令牌必须存在且属于该对局。
func (s *GameService) VerifyToken(token string, sessionID int64) error {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return ErrForbidden.WithReason(ReasonTokenMissing)
	}
	if err := s.signer.Verify(token, sessionID); err != nil {
		return ErrForbidden.WithReason(ReasonTokenInvalid).WithData("session_id", sessionID).WithCause(err)
	}
	return nil
}

// IsBizError 判断是否为可直接返回给客户端的业务拒绝。
func IsBizError(err error) bool {
	var e *Error
	return errors.As(err, &e) && !e.IsSys()
}
