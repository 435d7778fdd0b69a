// Package input 把按键和滑动手势翻译成移动方向，属于表现层策略，引擎本身不关心。
package input

import (
	"math"
	"strings"

	"Game2048/internal/game/domain"
)

// DefaultSwipeThreshold 滑动距离（像素）不超过该值时忽略。
const DefaultSwipeThreshold = 50.0

var keys = map[string]domain.Direction{
	"arrowup":    domain.Up,
	"arrowdown":  domain.Down,
	"arrowleft":  domain.Left,
	"arrowright": domain.Right,
	"up":         domain.Up,
	"down":       domain.Down,
	"left":       domain.Left,
	"right":      domain.Right,
	"w":          domain.Up,
	"s":          domain.Down,
	"a":          domain.Left,
	"d":          domain.Right,
	"k":          domain.Up,
	"j":          domain.Down,
	"h":          domain.Left,
	"l":          domain.Right,
}

// FromKey 大小写不敏感；未知按键返回 false。
func FromKey(name string) (domain.Direction, bool) {
	d, ok := keys[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// FromSwipe 按位移 (dx, dy) 判断方向，dy 向下为正。
// 任一轴超过阈值才算滑动；取位移更大的轴，两轴相等时取纵向。
func FromSwipe(dx, dy, threshold float64) (domain.Direction, bool) {
	if threshold <= 0 {
		threshold = DefaultSwipeThreshold
	}
	ax, ay := math.Abs(dx), math.Abs(dy)
	if ax <= threshold && ay <= threshold {
		return 0, false
	}
	if ax > ay {
		if dx > 0 {
			return domain.Right, true
		}
		return domain.Left, true
	}
	if dy > 0 {
		return domain.Down, true
	}
	return domain.Up, true
}
