package utils

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

const (
	// 2026-01-01 00:00:00 UTC，毫秒。
	idEpochMilli int64 = 1767225600000

	nodeBits uint8 = 10
	seqBits  uint8 = 12

	MaxNodeID int64 = 1<<nodeBits - 1
	maxSeq    int64 = 1<<seqBits - 1

	// 回拨在这个范围内时原地等待，超过则报错。
	maxBackwardMilli int64 = 10
)

var ErrClockBackwards = errors.New("snowflake: clock moved backwards")

// Snowflake 生成 41 位时间 + 10 位节点 + 12 位序号的 int64 id，同一节点内严格递增。
type Snowflake struct {
	mu     sync.Mutex
	nodeID int64
	lastTS int64
	seq    int64
	now    func() int64
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 || nodeID > MaxNodeID {
		return nil, fmt.Errorf("snowflake node id %d out of range [0,%d]", nodeID, MaxNodeID)
	}
	return &Snowflake{
		nodeID: nodeID,
		now:    func() int64 { return time.Now().UnixMilli() },
	}, nil
}

// Next 返回下一个 id。时钟回拨超过 maxBackwardMilli 时返回 ErrClockBackwards。
func (s *Snowflake) Next() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := s.now()
	if ts < s.lastTS {
		if s.lastTS-ts > maxBackwardMilli {
			return 0, fmt.Errorf("%w: %dms", ErrClockBackwards, s.lastTS-ts)
		}
		ts = s.waitUntil(s.lastTS)
	}

	if ts == s.lastTS {
		s.seq = (s.seq + 1) & maxSeq
		if s.seq == 0 {
			ts = s.waitUntil(s.lastTS + 1)
		}
	} else {
		s.seq = 0
	}

	s.lastTS = ts
	return (ts-idEpochMilli)<<(nodeBits+seqBits) | s.nodeID<<seqBits | s.seq, nil
}

func (s *Snowflake) waitUntil(target int64) int64 {
	ts := s.now()
	for ts < target {
		time.Sleep(100 * time.Microsecond)
		ts = s.now()
	}
	return ts
}
