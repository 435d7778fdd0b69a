package domain

// Status 由棋盘即时推导，不单独存储。
type Status int

const (
	InProgress Status = iota
	Over
)

func (s Status) String() string {
	if s == Over {
		return "over"
	}
	return "in_progress"
}

// IsGameOver 当且仅当没有空格且不存在横向/纵向相邻的等值方块。零值 Board 视为未结束。
func IsGameOver(b Board) bool {
	if b.size == 0 || !b.Full() {
		return false
	}
	n := b.size
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.cells[r*n+c]
			if c+1 < n && b.cells[r*n+c+1] == v {
				return false
			}
			if r+1 < n && b.cells[(r+1)*n+c] == v {
				return false
			}
		}
	}
	return true
}

func StatusOf(b Board) Status {
	if IsGameOver(b) {
		return Over
	}
	return InProgress
}

// AvailableMoves 返回会让棋盘发生变化的方向。
func AvailableMoves(b Board) []Direction {
	out := make([]Direction, 0, len(Directions))
	for _, d := range Directions {
		if ApplyMove(b, d).Moved {
			out = append(out, d)
		}
	}
	return out
}
