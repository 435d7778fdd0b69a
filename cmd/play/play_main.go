package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc/status"

	"Game2048/internal/game/entity"
	"Game2048/internal/game/input"
	"Game2048/internal/game/interfaces/handler/rpc"
	"Game2048/internal/shared/config"
	"Game2048/internal/shared/logs"
	transportgrpc "Game2048/internal/shared/transport/grpc"
)

const help = "方向: w/a/s/d, h/j/k/l, up/down/left/right；n 新开一局，m 回菜单，q 退出"

func main() {
	target := flag.String("addr", "127.0.0.1:8002", "game grpc 地址")
	player := flag.String("player", "player", "玩家名")
	size := flag.Int("size", 4, "棋盘边长")
	flag.Parse()

	if err := logs.Init("play", config.LogConfig{Level: "warn"}); err != nil {
		panic(err)
	}
	defer logs.Sync()

	conn, err := transportgrpc.Dial(*target)
	if err != nil {
		logs.Fatal("dial game failed", zap.Error(err))
	}
	defer func() { _ = conn.Close() }()

	p := &play{client: rpc.NewClient(conn), out: os.Stdout}
	if err := p.run(os.Stdin, *player, *size); err != nil {
		logs.Fatal("play failed", zap.Error(err))
	}
}

type play struct {
	client *rpc.Client
	out    io.Writer
	id     entity.SessionID
	token  string
}

func (p *play) run(in io.Reader, player string, size int) error {
	ctx := context.Background()
	created, err := p.client.Create(ctx, player, size)
	if err != nil {
		return err
	}
	p.id, p.token = created.Session.ID, created.Token
	fmt.Fprintln(p.out, help)
	if err := p.start(ctx); err != nil {
		return err
	}

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case "q":
			return nil
		case "n":
			err = p.start(ctx)
		case "m":
			err = p.menu(ctx)
		default:
			err = p.move(ctx, line)
		}
		if err != nil {
			// 业务拒绝（例如结束后继续移动）只提示，不退出。
			if s, ok := status.FromError(err); ok {
				fmt.Fprintf(p.out, "! %s\n", s.Message())
				continue
			}
			return err
		}
	}
	return sc.Err()
}

func (p *play) start(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	resp, err := p.client.Start(ctx, p.id, p.token)
	if err != nil {
		return err
	}
	render(p.out, resp.Session)
	return nil
}

func (p *play) menu(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	view, err := p.client.Menu(ctx, p.id, p.token)
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "菜单  最高分 %d，输入 n 开始\n", view.BestScore)
	return nil
}

func (p *play) move(ctx context.Context, key string) error {
	dir, ok := input.FromKey(key)
	if !ok {
		fmt.Fprintln(p.out, help)
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	resp, err := p.client.Move(ctx, p.id, p.token, dir.String())
	if err != nil {
		return err
	}
	if !resp.Moved {
		fmt.Fprintln(p.out, "（无法移动）")
		return nil
	}
	render(p.out, resp.Session)
	if resp.Finished {
		fmt.Fprintf(p.out, "游戏结束  得分 %d  最大方块 %d  步数 %d，输入 n 再来一局\n",
			resp.Session.Score, resp.Session.MaxTile, resp.Session.Moves)
	}
	return nil
}

func render(w io.Writer, v entity.SessionView) {
	fmt.Fprintf(w, "得分 %d  最高 %d  步数 %d\n", v.Score, v.BestScore, v.Moves)
	for _, row := range v.Board {
		for _, cell := range row {
			if cell == 0 {
				fmt.Fprintf(w, "%6s", ".")
				continue
			}
			fmt.Fprintf(w, "%6d", cell)
		}
		fmt.Fprintln(w)
	}
}
