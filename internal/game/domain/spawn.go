package domain

import (
	"math/rand"
	"time"
)

const (
	// FourProbability 新方块为 4 的概率，其余为 2。
	FourProbability = 0.1
	// InitialTiles 新开局时生成的方块数。
	InitialTiles = 2
)

// Rand 是 spawn 需要的随机源，*rand.Rand 直接满足。
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// NewRand 返回可复现的随机源；seed 为 0 时按当前时间播种。
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Spawn 描述一次新方块的生成位置与值。
type Spawn struct {
	Pos   Pos `json:"pos"`
	Value int `json:"value"`
}

// SpawnTile 在所有空格中等概率选一个，放入 2（90%）或 4（10%）。
// 满盘返回 ErrNoEmptyCell，调用方应先用 IsGameOver 判断。
func SpawnTile(b Board, rng Rand) (Board, Spawn, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return b, Spawn{}, ErrNoEmptyCell.WithData("size", b.size)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	pos := empty[rng.Intn(len(empty))]
	value := 2
	if rng.Float64() < FourProbability {
		value = 4
	}

	next := b.Clone()
	next.cells[next.index(pos)] = value
	return next, Spawn{Pos: pos, Value: value}, nil
}

// SeedBoard 创建空棋盘并放入 count 个初始方块。
func SeedBoard(size, count int, rng Rand) (Board, []Spawn, error) {
	b, err := NewBoard(size)
	if err != nil {
		return Board{}, nil, err
	}
	spawns := make([]Spawn, 0, count)
	for i := 0; i < count; i++ {
		var s Spawn
		b, s, err = SpawnTile(b, rng)
		if err != nil {
			return Board{}, nil, err
		}
		spawns = append(spawns, s)
	}
	return b, spawns, nil
}
