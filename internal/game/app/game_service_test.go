package app

import (
	"context"
	"errors"
	"testing"

	"Game2048/internal/game/domain"
	"Game2048/internal/game/entity"
	"Game2048/modules/kit/logx"
)

type fakeResults struct {
	saved   []entity.GameResult
	saveErr error
	top     []entity.GameResult
	topErr  error
	limit   int
}

func (r *fakeResults) Save(ctx context.Context, res entity.GameResult) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, res)
	return nil
}

func (r *fakeResults) Top(ctx context.Context, limit int) ([]entity.GameResult, error) {
	r.limit = limit
	return r.top, r.topErr
}

type fakeSigner struct {
	awardErr  error
	verifyErr error
}

func (s fakeSigner) Award(sessionID int64, player string) (string, error) {
	return "tok", s.awardErr
}

func (s fakeSigner) Verify(token string, sessionID int64) error {
	return s.verifyErr
}

// scripted 总是选第一个空格，Float64 依次返回 fs。
type scripted struct {
	fs []float64
	i  int
}

func (r *scripted) Intn(int) int { return 0 }
func (r *scripted) Float64() float64 {
	f := r.fs[r.i%len(r.fs)]
	r.i++
	return f
}

func newService(repo ResultRepo, signer TokenSigner) *GameService {
	return NewGameService(repo, signer, func() (int64, error) { return 100, nil }, logx.Nop(), Options{})
}

func TestCreate_参数校验(t *testing.T) {
	s := newService(&fakeResults{}, fakeSigner{})
	if _, _, err := s.Create(context.Background(), " ", 4); !errors.Is(err, ErrReqParam) {
		t.Fatalf("空玩家名应被拒绝, got=%v", err)
	}
	if _, _, err := s.Create(context.Background(), "p", 1); !errors.Is(err, ErrReqParam) {
		t.Fatalf("size=1 应被拒绝, got=%v", err)
	}
	g, token, err := s.Create(context.Background(), "p", 0)
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if token != "tok" || g.Session.ID() != 100 || g.View().Size != domain.DefaultSize {
		t.Fatalf("token=%s view=%+v", token, g.View())
	}
	if g.Session.Scene() != entity.SceneMenu {
		t.Fatalf("新对局应处于菜单")
	}
}

func TestCreate_签发失败返回系统错误(t *testing.T) {
	s := newService(&fakeResults{}, fakeSigner{awardErr: errors.New("boom")})
	_, _, err := s.Create(context.Background(), "p", 4)
	var e *Error
	if !errors.As(err, &e) || !e.IsSys() || !errors.Is(err, ErrInternalServer) {
		t.Fatalf("期望系统错误, got=%v", err)
	}
}

func TestCreate_id生成失败(t *testing.T) {
	s := NewGameService(nil, fakeSigner{}, func() (int64, error) { return 0, errors.New("clock") }, nil, Options{})
	if _, _, err := s.Create(context.Background(), "p", 4); !errors.Is(err, ErrInternalServer) {
		t.Fatalf("got=%v", err)
	}
}

// twoMoveGame 2x2 对局：初始 [[2,2],[0,0]]，
// 下移 -> [[4,0],[2,2]]，上移 -> [[4,2],[2,4]] 无路可走。
func twoMoveGame(t *testing.T, s *GameService) *Game {
	t.Helper()
	g, _, err := s.Create(context.Background(), "p", 2)
	if err != nil {
		t.Fatal(err)
	}
	g.rng = &scripted{fs: []float64{0.5, 0.5, 0.05, 0.05}}
	if _, err := s.Start(context.Background(), g); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestMove_对局结束写入成绩且只写一次(t *testing.T) {
	repo := &fakeResults{}
	s := newService(repo, fakeSigner{})
	g := twoMoveGame(t, s)

	out, err := s.Move(context.Background(), g, domain.Down)
	if err != nil || !out.Result.Moved || out.Finished {
		t.Fatalf("out=%+v err=%v board=\n%s", out, err, g.Session.Board())
	}
	out, err = s.Move(context.Background(), g, domain.Up)
	if err != nil || !out.Finished {
		t.Fatalf("最后一步应结束: out=%+v err=%v board=\n%s", out, err, g.Session.Board())
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved=%d", len(repo.saved))
	}
	got := repo.saved[0]
	if got.SessionID != 100 || got.PlayerID != "p" || got.Moves != 2 || got.MaxTile != 4 {
		t.Fatalf("result=%+v", got)
	}

	s.Menu(context.Background(), g)
	if len(repo.saved) != 1 {
		t.Fatalf("回菜单不应重复写入, saved=%d", len(repo.saved))
	}
}

func TestMove_写库失败不影响移动且重开前补写(t *testing.T) {
	repo := &fakeResults{saveErr: errors.New("db down")}
	s := newService(repo, fakeSigner{})
	g := twoMoveGame(t, s)
	for _, d := range []domain.Direction{domain.Down, domain.Up} {
		if _, err := s.Move(context.Background(), g, d); err != nil {
			t.Fatalf("move %v err=%v", d, err)
		}
	}
	if g.Session.Scene() != entity.SceneOver || g.Session.Recorded() {
		t.Fatalf("scene=%v recorded=%v", g.Session.Scene(), g.Session.Recorded())
	}

	repo.saveErr = nil
	if _, err := s.Start(context.Background(), g); err != nil {
		t.Fatalf("Start err=%v", err)
	}
	if len(repo.saved) != 1 || repo.saved[0].Moves != 2 {
		t.Fatalf("重开前应补写上一局, saved=%+v", repo.saved)
	}
}

func TestLeaderboard(t *testing.T) {
	repo := &fakeResults{top: []entity.GameResult{{Score: 10}}}
	s := newService(repo, fakeSigner{})

	list, err := s.Leaderboard(context.Background(), 0)
	if err != nil || len(list) != 1 || repo.limit != DefaultLeaderboardLimit {
		t.Fatalf("list=%v err=%v limit=%d", list, err, repo.limit)
	}
	if _, err := s.Leaderboard(context.Background(), MaxLeaderboardLimit+1); !errors.Is(err, ErrReqParam) {
		t.Fatalf("超限应被拒绝, got=%v", err)
	}
	repo.topErr = errors.New("timeout")
	if _, err := s.Leaderboard(context.Background(), 5); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("期望 ErrUnavailable, got=%v", err)
	}
}

func TestVerifyToken(t *testing.T) {
	s := newService(nil, fakeSigner{})
	if err := s.VerifyToken("", 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("空 token 应拒绝, got=%v", err)
	}
	if err := s.VerifyToken("Bearer tok", 1); err != nil {
		t.Fatalf("err=%v", err)
	}
	s = newService(nil, fakeSigner{verifyErr: errors.New("bad sig")})
	err := s.VerifyToken("tok", 1)
	if !errors.Is(err, ErrForbidden) || !IsBizError(err) {
		t.Fatalf("期望业务拒绝 ErrForbidden, got=%v", err)
	}
}
