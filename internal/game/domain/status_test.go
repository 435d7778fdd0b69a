package domain

import "testing"

func TestIsGameOver(t *testing.T) {
	locked := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if !IsGameOver(locked) || StatusOf(locked) != Over {
		t.Fatalf("满盘且无相邻等值应结束")
	}
	if moves := AvailableMoves(locked); len(moves) != 0 {
		t.Fatalf("结束局面不应有可用方向, got=%v", moves)
	}

	horizontal := mustBoard(t, [][]int{
		{2, 2, 8, 4},
		{4, 8, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	if IsGameOver(horizontal) {
		t.Fatalf("满盘但有横向等值对时不应结束")
	}

	vertical := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 8},
		{4, 2, 4, 8},
	})
	if IsGameOver(vertical) {
		t.Fatalf("满盘但有纵向等值对时不应结束")
	}
	if moves := AvailableMoves(vertical); len(moves) != 2 {
		t.Fatalf("纵向等值对只允许上下移动, got=%v", moves)
	}

	open := mustBoard(t, [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 0, 4},
		{4, 2, 4, 2},
	})
	if IsGameOver(open) || StatusOf(open) != InProgress {
		t.Fatalf("有空格时不应结束")
	}
}

func TestIsGameOver_零值棋盘不算结束(t *testing.T) {
	if IsGameOver(Board{}) || StatusOf(Board{}) != InProgress {
		t.Fatalf("零值棋盘不应判定为结束")
	}
}
