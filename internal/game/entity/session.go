package entity

import (
	"time"

	"Game2048/internal/game/domain"
)

type SessionID int64

var nowFunc = time.Now

// Session 是一局游戏的聚合根，只在所属 actor 内部被访问，不做并发保护。
type Session struct {
	id           SessionID
	playerID     string
	size         int
	initialTiles int

	board     domain.Board
	score     int
	best      int
	moves     int
	maxTile   int
	scene     Scene
	recorded  bool
	startedAt time.Time
	updatedAt time.Time
}

// MoveOutcome 是一次被接受的移动（含随后的 spawn）的完整结果。
type MoveOutcome struct {
	Result   domain.MoveResult
	Spawn    *domain.Spawn
	Finished bool
}

func NewSession(id SessionID, playerID string, size, initialTiles int) (*Session, error) {
	if size == 0 {
		size = domain.DefaultSize
	}
	if size < domain.MinSize || size > domain.MaxSize {
		return nil, domain.ErrInvalidBoard.WithData("size", size)
	}
	if initialTiles <= 0 {
		initialTiles = domain.InitialTiles
	}
	if initialTiles > size*size {
		initialTiles = size * size
	}
	board, _ := domain.NewBoard(size)
	now := nowFunc()
	return &Session{
		id:           id,
		playerID:     playerID,
		size:         size,
		initialTiles: initialTiles,
		board:        board,
		scene:        SceneMenu,
		updatedAt:    now,
	}, nil
}

// Start 从 Menu/Over 进入 Playing：新建空棋盘并生成初始方块，分数与步数清零，最高分保留。
func (s *Session) Start(rng domain.Rand) ([]domain.Spawn, error) {
	if s.scene == ScenePlaying {
		return nil, ErrBadScene.WithDataMap(map[string]any{"scene": s.scene.String(), "event": "start"})
	}
	board, spawns, err := domain.SeedBoard(s.size, s.initialTiles, rng)
	if err != nil {
		return nil, err
	}
	now := nowFunc()
	s.board = board
	s.score = 0
	s.moves = 0
	s.maxTile = board.MaxTile()
	s.recorded = false
	s.startedAt = now
	s.updatedAt = now
	s.scene = ScenePlaying
	// 初始方块就可能让小棋盘直接无路可走。
	if domain.IsGameOver(s.board) {
		s.scene = SceneOver
	}
	return spawns, nil
}

// Move 只在 Playing 下生效。无变化的移动不 spawn、不计步；
// 被接受的移动累加得分、生成一个方块，生成后若无路可走则进入 Over。
func (s *Session) Move(dir domain.Direction, rng domain.Rand) (MoveOutcome, error) {
	if s.scene != ScenePlaying {
		return MoveOutcome{}, ErrNotPlaying.WithData("scene", s.scene.String())
	}
	if !dir.Valid() {
		return MoveOutcome{}, domain.ErrInvalidDirection.WithData("direction", int(dir))
	}

	res := domain.ApplyMove(s.board, dir)
	out := MoveOutcome{Result: res}
	if !res.Moved {
		return out, nil
	}

	board, spawn, err := domain.SpawnTile(res.Board, rng)
	if err != nil {
		// 有方块移动过就一定留下了空格。
		return MoveOutcome{}, err
	}
	out.Spawn = &spawn

	s.board = board
	s.score += res.ScoreGained
	s.moves++
	if s.score > s.best {
		s.best = s.score
	}
	if m := board.MaxTile(); m > s.maxTile {
		s.maxTile = m
	}
	s.updatedAt = nowFunc()

	if domain.IsGameOver(board) {
		s.scene = SceneOver
		out.Finished = true
	}
	return out, nil
}

// Menu 任意场景回到主菜单；棋盘保留到下一次 Start。
func (s *Session) Menu() {
	s.scene = SceneMenu
	s.updatedAt = nowFunc()
}

// MarkRecorded 标记本局结果已写入排行榜，避免重复记录。
func (s *Session) MarkRecorded() {
	s.recorded = true
}

func (s *Session) Recorded() bool      { return s.recorded }
func (s *Session) ID() SessionID       { return s.id }
func (s *Session) PlayerID() string    { return s.playerID }
func (s *Session) Scene() Scene        { return s.scene }
func (s *Session) Board() domain.Board { return s.board }
func (s *Session) Score() int          { return s.score }

// SessionView 是会话的只读快照，供各传输层序列化。
type SessionView struct {
	ID        SessionID `json:"id,string"`
	PlayerID  string    `json:"player_id"`
	Size      int       `json:"size"`
	Scene     Scene     `json:"scene"`
	Status    string    `json:"status"`
	Board     [][]int   `json:"board"`
	Score     int       `json:"score"`
	BestScore int       `json:"best_score"`
	Moves     int       `json:"moves"`
	MaxTile   int       `json:"max_tile"`
	StartedAt time.Time `json:"started_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Session) Snapshot() SessionView {
	return SessionView{
		ID:        s.id,
		PlayerID:  s.playerID,
		Size:      s.size,
		Scene:     s.scene,
		Status:    domain.StatusOf(s.board).String(),
		Board:     s.board.Rows(),
		Score:     s.score,
		BestScore: s.best,
		Moves:     s.moves,
		MaxTile:   s.maxTile,
		StartedAt: s.startedAt,
		UpdatedAt: s.updatedAt,
	}
}

// Result 生成排行榜记录，只对已结束的对局有意义。
func (s *Session) Result() GameResult {
	return GameResult{
		SessionID:  s.id,
		PlayerID:   s.playerID,
		Score:      s.score,
		MaxTile:    s.maxTile,
		Moves:      s.moves,
		Size:       s.size,
		StartedAt:  s.startedAt,
		FinishedAt: s.updatedAt,
	}
}
