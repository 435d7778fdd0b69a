package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const sample = `
log:
  level: debug
httpserver:
  host: 127.0.0.1
  port: 8080
game:
  board_size: 5
  initial_tiles: 2
  ask_timeout_ms: 1500
  jwt_secret: from-file
storage:
  driver: memory
`

func writeConf(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "configs", "conf.yml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_显式路径(t *testing.T) {
	path := writeConf(t, t.TempDir(), sample)
	conf, err := Load[Config](path, nil, nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if conf.HTTPServer.Port != 8080 || conf.Game.BoardSize != 5 || conf.Storage.Driver != DriverMemory {
		t.Fatalf("conf=%+v", conf)
	}
	if conf.Game.AskTimeout().Milliseconds() != 1500 {
		t.Fatalf("ask timeout=%v", conf.Game.AskTimeout())
	}
}

func TestLoad_向上查找(t *testing.T) {
	root := t.TempDir()
	writeConf(t, root, sample)
	sub := filepath.Join(root, "cmd", "game")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	t.Chdir(sub)

	conf, err := Load[Config]("", nil, nil)
	if err != nil {
		t.Fatalf("Load err=%v", err)
	}
	if conf.Log.Level != "debug" {
		t.Fatalf("level=%s", conf.Log.Level)
	}
}

func TestLoad_文件不存在(t *testing.T) {
	_, err := Load[Config](filepath.Join(t.TempDir(), "nope.yml"), nil, nil)
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("期望 ErrConfigNotFound, got=%v", err)
	}
}

func TestGameConfig_Secret环境变量优先(t *testing.T) {
	g := GameConfig{JWTSecret: "from-file"}
	t.Setenv("JWT_SECRET", "")
	if g.Secret() != "from-file" {
		t.Fatalf("secret=%s", g.Secret())
	}
	t.Setenv("JWT_SECRET", "from-env")
	if g.Secret() != "from-env" {
		t.Fatalf("secret=%s", g.Secret())
	}
}
