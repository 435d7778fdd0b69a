// Package errs 是基础设施层的错误包装：记录发生位置与关键参数，保留根因。
package errs

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindInfra      Kind = "infra"
	KindDependency Kind = "dependency"
)

type Error struct {
	Op    string         // 发生位置：repo.result.Save
	Kind  Kind           // 粗分类
	Meta  map[string]any // 关键参数（session_id, limit...）
	Cause error          // 根因
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Wrap cause 为 nil 时返回 nil，调用方可以直接 return Wrap(...)。
func Wrap(op string, kind Kind, cause error, meta map[string]any) error {
	if cause == nil {
		return nil
	}
	return &Error{Op: op, Kind: kind, Cause: cause, Meta: meta}
}

// Describe 取链上第一个 *Error 的位置、分类和参数，用于附加到上层错误的 data；没有时返回 nil。
func Describe(err error) map[string]any {
	var e *Error
	if !errors.As(err, &e) {
		return nil
	}
	out := make(map[string]any, len(e.Meta)+2)
	for k, v := range e.Meta {
		out[k] = v
	}
	out["op"] = e.Op
	out["kind"] = string(e.Kind)
	return out
}
