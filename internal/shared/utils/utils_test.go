package utils

import (
	"errors"
	"testing"
)

func TestRandSeq_长度与字符集(t *testing.T) {
	s := RandSeq(16)
	if len(s) != 16 {
		t.Fatalf("len=%d", len(s))
	}
	for _, c := range s {
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9') {
			t.Fatalf("unexpected char %q", c)
		}
	}
}

func TestSnowflake_单调递增(t *testing.T) {
	sf, err := NewSnowflake(3)
	if err != nil {
		t.Fatalf("NewSnowflake err=%v", err)
	}
	prev, _ := sf.Next()
	for i := 0; i < 5000; i++ {
		id, err := sf.Next()
		if err != nil {
			t.Fatal(err)
		}
		if id <= prev {
			t.Fatalf("id not increasing: %d <= %d", id, prev)
		}
		prev = id
	}
	if _, err := NewSnowflake(-1); err == nil {
		t.Fatalf("期望节点号越界报错")
	}
	if _, err := NewSnowflake(MaxNodeID + 1); err == nil {
		t.Fatalf("期望节点号越界报错")
	}
}

func TestSnowflake_时钟回拨(t *testing.T) {
	sf, _ := NewSnowflake(1)
	clock := int64(1767225600000 + 1000)
	sf.now = func() int64 { return clock }
	if _, err := sf.Next(); err != nil {
		t.Fatal(err)
	}
	clock -= 1000
	if _, err := sf.Next(); !errors.Is(err, ErrClockBackwards) {
		t.Fatalf("got=%v", err)
	}
}
