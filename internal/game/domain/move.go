package domain

// TileMove 记录一次移动中单个方块的位移，展示层据此做滑动/合并动画。
type TileMove struct {
	From Pos `json:"from"`
	To   Pos `json:"to"`
	// Value 是移动前的方块值；合并后目标格为 Value*2。
	Value  int  `json:"value"`
	Merged bool `json:"merged"`
}

// MoveResult 是一次移动的完整结果。Board 总是新的副本，不与入参共享底层数据。
type MoveResult struct {
	Board       Board
	Moved       bool
	ScoreGained int
	Tiles       []TileMove
}

// ApplyMove 把棋盘上所有方块沿 d 方向尽量滑动并合并。
//
// 遍历顺序保证行进方向最远端的格子最先处理；每个格子在一次移动中最多作为合并目标一次，
// 合并标记只在本次调用内有效。方向非法时返回原棋盘副本且 Moved=false，
// 方向应在边界处用 ParseDirection 校验。
//
// 同一个 Board 上必须等上一次结果被完全消费后才能再次移动，调用方负责串行化。
func ApplyMove(b Board, d Direction) MoveResult {
	next := b.Clone()
	res := MoveResult{Board: next}

	dr, dc := d.Vector()
	if (dr == 0 && dc == 0) || next.size == 0 {
		return res
	}

	merged := make([]bool, len(next.cells))
	for _, r := range traversal(next.size, dr) {
		for _, c := range traversal(next.size, dc) {
			from := Pos{Row: r, Col: c}
			v := next.cells[next.index(from)]
			if v == 0 {
				continue
			}

			to, merge := next.slide(from, dr, dc, merged)
			if to == from {
				continue
			}

			next.cells[next.index(from)] = 0
			if merge {
				idx := next.index(to)
				next.cells[idx] = v * 2
				merged[idx] = true
				res.ScoreGained += v * 2
			} else {
				next.cells[next.index(to)] = v
			}
			res.Moved = true
			res.Tiles = append(res.Tiles, TileMove{From: from, To: to, Value: v, Merged: merge})
		}
	}
	return res
}

// slide 从 from 出发逐格前进：空格继续走；遇到等值且本轮未合并过的方块则合并并停下；
// 其他情况停在当前位置。
func (b Board) slide(from Pos, dr, dc int, merged []bool) (Pos, bool) {
	v := b.cells[b.index(from)]
	cur := from
	for {
		ahead := Pos{Row: cur.Row + dr, Col: cur.Col + dc}
		if !b.InBounds(ahead) {
			return cur, false
		}
		idx := b.index(ahead)
		switch nv := b.cells[idx]; {
		case nv == 0:
			cur = ahead
		case nv == v && !merged[idx]:
			return ahead, true
		default:
			return cur, false
		}
	}
}

// traversal 在 delta>0 时倒序遍历，否则正序。
func traversal(n, delta int) []int {
	order := make([]int, n)
	for i := range order {
		if delta > 0 {
			order[i] = n - 1 - i
		} else {
			order[i] = i
		}
	}
	return order
}
