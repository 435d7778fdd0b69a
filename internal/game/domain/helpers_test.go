package domain

import "testing"

func mustBoard(t *testing.T, rows [][]int) Board {
	t.Helper()
	b, err := BoardFromRows(rows)
	if err != nil {
		t.Fatalf("BoardFromRows err=%v rows=%v", err, rows)
	}
	return b
}

// rowBoard 把一行放在 n×n 空棋盘的第一行。
func rowBoard(t *testing.T, row []int) Board {
	t.Helper()
	n := len(row)
	rows := make([][]int, n)
	rows[0] = append([]int(nil), row...)
	for i := 1; i < n; i++ {
		rows[i] = make([]int, n)
	}
	return mustBoard(t, rows)
}

func firstRow(b Board) []int {
	return b.Rows()[0]
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
