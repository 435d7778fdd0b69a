package domain

import (
	"errors"
	"testing"
)

func TestNewBoard_尺寸校验(t *testing.T) {
	if _, err := NewBoard(1); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("期望 size=1 被拒绝, err=%v", err)
	}
	if _, err := NewBoard(MaxSize + 1); !errors.Is(err, ErrInvalidBoard) {
		t.Fatalf("期望 size 超上限被拒绝, err=%v", err)
	}
	b, err := NewBoard(DefaultSize)
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if len(b.EmptyCells()) != 16 || b.Sum() != 0 {
		t.Fatalf("期望新棋盘全空")
	}
}

func TestBoardFromRows_拒绝非法输入(t *testing.T) {
	cases := map[string][][]int{
		"jagged":     {{2, 0}, {0}},
		"non_square": {{2, 0, 0}, {0, 0, 0}},
		"not_pow2":   {{3, 0}, {0, 0}},
		"negative":   {{-2, 0}, {0, 0}},
		"one":        {{1, 0}, {0, 0}},
	}
	for name, rows := range cases {
		if _, err := BoardFromRows(rows); !errors.Is(err, ErrInvalidBoard) {
			t.Fatalf("%s: 期望 ErrInvalidBoard, err=%v", name, err)
		}
	}
}

func TestBoard_Rows返回拷贝(t *testing.T) {
	b := mustBoard(t, [][]int{{2, 0}, {0, 4}})
	rows := b.Rows()
	rows[0][0] = 1024
	if b.At(Pos{0, 0}) != 2 {
		t.Fatalf("期望修改 Rows() 结果不影响棋盘")
	}
	if b.MaxTile() != 4 {
		t.Fatalf("期望 MaxTile=4, got=%d", b.MaxTile())
	}
	if b.String() != "2 .\n. 4" {
		t.Fatalf("String 输出不符: %q", b.String())
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(d.String())
		if err != nil || got != d {
			t.Fatalf("round-trip 失败 d=%v got=%v err=%v", d, got, err)
		}
		dr, dc := d.Vector()
		if (dr == 0) == (dc == 0) {
			t.Fatalf("期望恰好一个轴非零 d=%v (%d,%d)", d, dr, dc)
		}
	}
	if _, err := ParseDirection("diagonal"); !errors.Is(err, ErrInvalidDirection) {
		t.Fatalf("期望 ErrInvalidDirection, err=%v", err)
	}
	var d Direction
	if err := d.UnmarshalText([]byte("LEFT")); err != nil || d != Left {
		t.Fatalf("期望大小写不敏感, d=%v err=%v", d, err)
	}
}
