package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultSize = 4
	MinSize     = 2
	MaxSize     = 16
)

// Pos 是棋盘坐标，Row 向下增长，Col 向右增长。
type Pos struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board 是 N×N 的方块值网格，0 表示空格，其余为 >=2 的 2 的幂。
//
// Board 按值使用：所有返回新棋盘的操作都会复制底层数据，调用方持有的快照不会被修改。
type Board struct {
	size  int
	cells []int
}

// NewBoard 创建全空棋盘。
func NewBoard(size int) (Board, error) {
	if size < MinSize || size > MaxSize {
		return Board{}, ErrInvalidBoard.WithData("size", size)
	}
	return Board{size: size, cells: make([]int, size*size)}, nil
}

// BoardFromRows 按行构造棋盘，拒绝锯齿/非方阵以及非法方块值。
func BoardFromRows(rows [][]int) (Board, error) {
	n := len(rows)
	b, err := NewBoard(n)
	if err != nil {
		return Board{}, err
	}
	for r, row := range rows {
		if len(row) != n {
			return Board{}, ErrInvalidBoard.WithDataMap(map[string]any{"row": r, "len": len(row), "size": n})
		}
		for c, v := range row {
			if !validTile(v) {
				return Board{}, ErrInvalidBoard.WithDataMap(map[string]any{"row": r, "col": c, "value": v})
			}
			b.cells[r*n+c] = v
		}
	}
	return b, nil
}

func validTile(v int) bool {
	if v == 0 {
		return true
	}
	return v >= 2 && v&(v-1) == 0
}

func (b Board) Size() int {
	return b.size
}

func (b Board) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// At 返回坐标处的值；越界返回 0。
func (b Board) At(p Pos) int {
	if !b.InBounds(p) {
		return 0
	}
	return b.cells[p.Row*b.size+p.Col]
}

// Rows 返回按行拷贝出的二维切片，供序列化与展示使用。
func (b Board) Rows() [][]int {
	rows := make([][]int, b.size)
	for r := range rows {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return rows
}

func (b Board) Clone() Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	return Board{size: b.size, cells: cells}
}

func (b Board) Equal(o Board) bool {
	if b.size != o.size || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// EmptyCells 按行优先顺序返回所有空格。
func (b Board) EmptyCells() []Pos {
	out := make([]Pos, 0, len(b.cells))
	for i, v := range b.cells {
		if v == 0 {
			out = append(out, Pos{Row: i / b.size, Col: i % b.size})
		}
	}
	return out
}

func (b Board) Full() bool {
	for _, v := range b.cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// Sum 是所有方块值之和，移动前后保持不变：合并把两个 v 变成一个 2v。
func (b Board) Sum() int {
	total := 0
	for _, v := range b.cells {
		total += v
	}
	return total
}

func (b Board) MaxTile() int {
	m := 0
	for _, v := range b.cells {
		if v > m {
			m = v
		}
	}
	return m
}

func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[r*b.size+c]
			if v == 0 {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(v))
		}
		if r < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (b Board) index(p Pos) int {
	return p.Row*b.size + p.Col
}
