package domain

import (
	"math/rand"
	"testing"
)

func TestApplyMove_相邻一对向左合并(t *testing.T) {
	b := rowBoard(t, []int{2, 2, 0, 0})

	res := ApplyMove(b, Left)
	if !res.Moved {
		t.Fatalf("期望 moved=true")
	}
	if res.ScoreGained != 4 {
		t.Fatalf("期望 scoreGained=4, got=%d", res.ScoreGained)
	}
	if got := firstRow(res.Board); !equalInts(got, []int{4, 0, 0, 0}) {
		t.Fatalf("期望 [4 0 0 0], got=%v", got)
	}
	if len(res.Tiles) != 1 {
		t.Fatalf("期望一条位移记录, got=%v", res.Tiles)
	}
	want := TileMove{From: Pos{0, 1}, To: Pos{0, 0}, Value: 2, Merged: true}
	if res.Tiles[0] != want {
		t.Fatalf("位移记录不符: got=%+v want=%+v", res.Tiles[0], want)
	}
}

func TestApplyMove_交错值无法合并(t *testing.T) {
	b := rowBoard(t, []int{2, 4, 2, 4})

	res := ApplyMove(b, Left)
	if res.Moved {
		t.Fatalf("期望 moved=false")
	}
	if res.ScoreGained != 0 {
		t.Fatalf("期望 scoreGained=0, got=%d", res.ScoreGained)
	}
	if !res.Board.Equal(b) {
		t.Fatalf("期望棋盘不变, got=\n%v", res.Board)
	}
}

func TestApplyMove_四个相同值两两合并(t *testing.T) {
	b := rowBoard(t, []int{2, 2, 2, 2})

	res := ApplyMove(b, Left)
	if got := firstRow(res.Board); !equalInts(got, []int{4, 4, 0, 0}) {
		t.Fatalf("期望 [4 4 0 0], got=%v", got)
	}
	if res.ScoreGained != 8 {
		t.Fatalf("期望 scoreGained=8, got=%d", res.ScoreGained)
	}
}

func TestApplyMove_三个相同值只合并一对(t *testing.T) {
	cases := []struct {
		name string
		dir  Direction
		row  []int
		want []int
	}{
		{"left", Left, []int{2, 2, 2, 0}, []int{4, 2, 0, 0}},
		{"right", Right, []int{2, 2, 2, 0}, []int{0, 0, 2, 4}},
		{"no_chain", Left, []int{4, 2, 2, 0}, []int{4, 4, 0, 0}},
		{"gap", Left, []int{2, 0, 0, 2}, []int{4, 0, 0, 0}},
		{"blocked", Right, []int{2, 0, 4, 8}, []int{0, 2, 4, 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ApplyMove(rowBoard(t, tc.row), tc.dir)
			if got := firstRow(res.Board); !equalInts(got, tc.want) {
				t.Fatalf("row=%v dir=%v 期望 %v, got=%v", tc.row, tc.dir, tc.want, got)
			}
		})
	}
}

func TestApplyMove_纵向移动(t *testing.T) {
	b := mustBoard(t, [][]int{
		{2, 0, 0, 0},
		{2, 0, 0, 0},
		{4, 0, 0, 0},
		{4, 0, 0, 0},
	})

	down := ApplyMove(b, Down)
	if got := colOf(down.Board, 0); !equalInts(got, []int{0, 0, 4, 8}) {
		t.Fatalf("down 期望 [0 0 4 8], got=%v", got)
	}
	if down.ScoreGained != 12 {
		t.Fatalf("down 期望 scoreGained=12, got=%d", down.ScoreGained)
	}

	up := ApplyMove(b, Up)
	if got := colOf(up.Board, 0); !equalInts(got, []int{4, 8, 0, 0}) {
		t.Fatalf("up 期望 [4 8 0 0], got=%v", got)
	}
}

func TestApplyMove_不修改入参(t *testing.T) {
	b := rowBoard(t, []int{2, 2, 4, 4})
	before := b.Clone()

	_ = ApplyMove(b, Left)
	if !b.Equal(before) {
		t.Fatalf("期望入参棋盘不被修改, got=\n%v", b)
	}
}

func TestApplyMove_非法方向是空操作(t *testing.T) {
	b := rowBoard(t, []int{2, 2, 0, 0})
	res := ApplyMove(b, Direction(0))
	if res.Moved || !res.Board.Equal(b) {
		t.Fatalf("期望非法方向不改变棋盘")
	}
}

func TestApplyMove_质量守恒与空操作幂等(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	values := []int{0, 0, 0, 2, 2, 4, 4, 8, 16}

	for i := 0; i < 500; i++ {
		n := 2 + rng.Intn(4)
		rows := make([][]int, n)
		for r := range rows {
			rows[r] = make([]int, n)
			for c := range rows[r] {
				rows[r][c] = values[rng.Intn(len(values))]
			}
		}
		b := mustBoard(t, rows)

		for _, d := range Directions {
			res := ApplyMove(b, d)
			if res.Board.Sum() != b.Sum() {
				t.Fatalf("质量不守恒 dir=%v before=%d after=%d\n%v", d, b.Sum(), res.Board.Sum(), b)
			}
			want := valueCounts(b)
			for _, tm := range res.Tiles {
				if tm.Merged {
					want[tm.Value] -= 2
					want[tm.Value*2]++
				}
			}
			if got := valueCounts(res.Board); !sameCounts(got, want) {
				t.Fatalf("方块多重集不符 dir=%v got=%v want=%v\n%v", d, got, want, b)
			}
			if res.Moved == res.Board.Equal(b) {
				t.Fatalf("moved 标志与棋盘变化不一致 dir=%v moved=%v\n%v", d, res.Moved, b)
			}
			mergedScore := 0
			for _, tm := range res.Tiles {
				if tm.Merged {
					mergedScore += tm.Value * 2
				}
			}
			if mergedScore != res.ScoreGained {
				t.Fatalf("scoreGained 应等于新合并值之和 got=%d want=%d", res.ScoreGained, mergedScore)
			}
			if !res.Moved {
				again := ApplyMove(res.Board, d)
				if again.Moved || !again.Board.Equal(b) {
					t.Fatalf("空操作应幂等 dir=%v", d)
				}
			}
		}
	}
}

func valueCounts(b Board) map[int]int {
	out := map[int]int{}
	for r := 0; r < b.Size(); r++ {
		for c := 0; c < b.Size(); c++ {
			if v := b.At(Pos{Row: r, Col: c}); v != 0 {
				out[v]++
			}
		}
	}
	return out
}

func sameCounts(a, b map[int]int) bool {
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	for k, v := range b {
		if a[k] != v {
			return false
		}
	}
	return true
}

func TestApplyMove_合并不改变方块总和(t *testing.T) {
	b := rowBoard(t, []int{2, 2, 0, 0})
	res := ApplyMove(b, Left)
	if res.Board.Sum() != 4 || b.Sum() != 4 || res.ScoreGained != 4 {
		t.Fatalf("before=%d after=%d score=%d", b.Sum(), res.Board.Sum(), res.ScoreGained)
	}
}

func colOf(b Board, c int) []int {
	out := make([]int, b.Size())
	for r := range out {
		out[r] = b.At(Pos{Row: r, Col: c})
	}
	return out
}
