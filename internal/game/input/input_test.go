package input

import (
	"testing"

	"Game2048/internal/game/domain"
)

func TestFromKey(t *testing.T) {
	cases := []struct {
		key  string
		want domain.Direction
		ok   bool
	}{
		{"ArrowUp", domain.Up, true},
		{"ArrowDown", domain.Down, true},
		{"ArrowLeft", domain.Left, true},
		{"ArrowRight", domain.Right, true},
		{"W", domain.Up, true},
		{"a", domain.Left, true},
		{"s", domain.Down, true},
		{"d", domain.Right, true},
		{"h", domain.Left, true},
		{"j", domain.Down, true},
		{"k", domain.Up, true},
		{"l", domain.Right, true},
		{" right ", domain.Right, true},
		{"space", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := FromKey(c.key)
		if ok != c.ok || got != c.want {
			t.Fatalf("FromKey(%q)=(%v,%v), want (%v,%v)", c.key, got, ok, c.want, c.ok)
		}
	}
}

func TestFromSwipe(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
		want   domain.Direction
		ok     bool
	}{
		{"右滑", 120, 10, domain.Right, true},
		{"左滑", -80, 30, domain.Left, true},
		{"下滑", 5, 90, domain.Down, true},
		{"上滑", -20, -60, domain.Up, true},
		{"未过阈值", 50, -50, 0, false},
		{"对角相等取纵向", 80, 80, domain.Down, true},
		{"对角相等取纵向_向上", -80, -80, domain.Up, true},
	}
	for _, c := range cases {
		got, ok := FromSwipe(c.dx, c.dy, 0)
		if ok != c.ok || got != c.want {
			t.Fatalf("%s: FromSwipe(%v,%v)=(%v,%v), want (%v,%v)", c.name, c.dx, c.dy, got, ok, c.want, c.ok)
		}
	}
}

func TestFromSwipe_自定义阈值(t *testing.T) {
	if _, ok := FromSwipe(30, 0, 20); !ok {
		t.Fatalf("30px should pass threshold 20")
	}
	if _, ok := FromSwipe(30, 0, 40); ok {
		t.Fatalf("30px should not pass threshold 40")
	}
}
